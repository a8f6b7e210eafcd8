package antlr

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func TestInputStreamBasics(t *testing.T) {
	s := NewInputStream("abc")
	if got := s.Size(); got != 3 {
		t.Fatalf("Size = %d, want 3", got)
	}
	if got := s.LA(1); got != 'a' {
		t.Fatalf("LA(1) = %d, want 'a'", got)
	}
	if got := s.LA(3); got != 'c' {
		t.Fatalf("LA(3) = %d, want 'c'", got)
	}
	if got := s.LA(4); got != TokenEOF {
		t.Fatalf("LA(4) = %d, want EOF", got)
	}

	s.Consume()
	if got := s.Index(); got != 1 {
		t.Fatalf("Index = %d, want 1", got)
	}
	if got := s.LA(-1); got != 'a' {
		t.Fatalf("LA(-1) = %d, want 'a'", got)
	}

	s.Seek(0)
	if got := s.LA(1); got != 'a' {
		t.Fatalf("LA(1) after rewind = %d, want 'a'", got)
	}
	s.Seek(3)
	if got := s.LA(1); got != TokenEOF {
		t.Fatalf("LA(1) at end = %d, want EOF", got)
	}
}

func TestInputStreamDecodesCodePoints(t *testing.T) {
	s := NewInputStream("a\U0001F600b")
	if got := s.Size(); got != 3 {
		t.Fatalf("Size = %d, want 3 code points", got)
	}
	if got := s.LA(2); got != 0x1F600 {
		t.Fatalf("LA(2) = %#x, want U+1F600", got)
	}
}

func TestInputStreamGetTextClamps(t *testing.T) {
	s := NewInputStream("hello")
	if got := s.GetTextFromInterval(NewInterval(1, 3)); got != "ell" {
		t.Fatalf("GetText(1,3) = %q, want %q", got, "ell")
	}
	if got := s.GetTextFromInterval(NewInterval(3, 99)); got != "lo" {
		t.Fatalf("GetText(3,99) = %q, want %q", got, "lo")
	}
	if got := s.GetTextFromInterval(NewInterval(5, 5)); got != "" {
		t.Fatalf("GetText past end = %q, want empty", got)
	}
}

func TestInputStreamConsumeAtEOFPanics(t *testing.T) {
	s := NewInputStream("")
	defer func() {
		if recover() == nil {
			t.Fatal("Consume at EOF did not panic")
		}
	}()
	s.Consume()
}

func TestNewIOStreamUTF8(t *testing.T) {
	s, err := NewIOStream(strings.NewReader("héllo"))
	if err != nil {
		t.Fatalf("NewIOStream failed: %v", err)
	}
	if got := s.Size(); got != 5 {
		t.Fatalf("Size = %d, want 5", got)
	}
	if got := s.LA(2); got != 'é' {
		t.Fatalf("LA(2) = %d, want 'é'", got)
	}
}

func TestNewIOStreamUTF16BOM(t *testing.T) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	encoded, err := enc.String("hi")
	if err != nil {
		t.Fatalf("encoding failed: %v", err)
	}
	s, err := NewIOStream(strings.NewReader(encoded))
	if err != nil {
		t.Fatalf("NewIOStream failed: %v", err)
	}
	if got := s.Size(); got != 2 {
		t.Fatalf("Size = %d, want 2", got)
	}
	if s.LA(1) != 'h' || s.LA(2) != 'i' {
		t.Fatalf("decoded %q wrong: LA(1)=%d LA(2)=%d", encoded, s.LA(1), s.LA(2))
	}
}

func TestMarkReleaseAreBalancedNoOps(t *testing.T) {
	s := NewInputStream("x")
	m := s.Mark()
	s.Release(m)
	if got := s.Index(); got != 0 {
		t.Fatalf("Index after mark/release = %d, want 0", got)
	}
}
