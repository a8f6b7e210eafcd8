package antlr

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CharStream is the code-point input consumed by the lexer. LA(1) is the
// current symbol; LA returns TokenEOF past the end. Mark/Release pairs must
// balance across every exit path of a match.
type CharStream interface {
	Consume()
	LA(offset int) int
	Index() int
	Seek(index int)
	Mark() int
	Release(marker int)
	Size() int
	GetSourceName() string
	GetTextFromInterval(Interval) string
}

// InputStream is an in-memory CharStream over decoded code points.
type InputStream struct {
	name  string
	data  []rune
	index int
}

// NewInputStream decodes s into code points and positions the stream at 0.
func NewInputStream(s string) *InputStream {
	return &InputStream{
		name: "<string>",
		data: []rune(s),
	}
}

// NewIOStream reads all of r, decoding UTF-8 or BOM-marked UTF-16 input
// into code points.
func NewIOStream(r io.Reader) (*InputStream, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, fmt.Errorf("input stream: %w", err)
	}
	return &InputStream{
		name: "<reader>",
		data: []rune(string(data)),
	}, nil
}

// Consume advances past the current code point. Consuming at EOF panics.
func (s *InputStream) Consume() {
	if s.index >= len(s.data) {
		panic("input stream: cannot consume EOF")
	}
	s.index++
}

// LA returns the code point offset positions ahead (1-based), TokenEOF when
// the position is past the end, and 0 for offset 0.
func (s *InputStream) LA(offset int) int {
	if offset == 0 {
		return 0
	}
	if offset < 0 {
		offset++ // LA(-1) is the last consumed code point
	}
	pos := s.index + offset - 1
	if pos < 0 || pos >= len(s.data) {
		return TokenEOF
	}
	return int(s.data[pos])
}

func (s *InputStream) Index() int {
	return s.index
}

// Seek repositions the stream. Backward seeks reset the index directly;
// forward seeks consume up to the target or EOF.
func (s *InputStream) Seek(index int) {
	if index <= s.index {
		s.index = index
		return
	}
	if index > len(s.data) {
		index = len(s.data)
	}
	s.index = index
}

// Mark is a no-op for an in-memory stream; the whole input stays buffered.
func (s *InputStream) Mark() int {
	return -1
}

func (s *InputStream) Release(_ int) {}

func (s *InputStream) Size() int {
	return len(s.data)
}

func (s *InputStream) GetSourceName() string {
	return s.name
}

// SetSourceName labels the stream for error messages.
func (s *InputStream) SetSourceName(name string) {
	s.name = name
}

// GetTextFromInterval returns the text in the inclusive interval, clamping
// the stop to the last code point.
func (s *InputStream) GetTextFromInterval(iv Interval) string {
	start, stop := iv.Start, iv.Stop
	if stop >= len(s.data) {
		stop = len(s.data) - 1
	}
	if start < 0 || start >= len(s.data) || stop < start {
		return ""
	}
	return string(s.data[start : stop+1])
}

func (s *InputStream) String() string {
	return string(s.data)
}
