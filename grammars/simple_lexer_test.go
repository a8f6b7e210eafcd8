package grammars

import (
	"testing"

	antlr "github.com/bhamiltoncx/antlr4"
)

type tokenExpectation struct {
	tokenType int
	text      string
}

func checkTokens(t *testing.T, lexer *antlr.BaseLexer, want []tokenExpectation) {
	t.Helper()
	for i, w := range want {
		tok := lexer.NextToken()
		if tok.GetTokenType() != w.tokenType {
			t.Fatalf("token %d type = %d (%q), want %d", i, tok.GetTokenType(), tok.GetText(), w.tokenType)
		}
		if w.text != "" && tok.GetText() != w.text {
			t.Fatalf("token %d text = %q, want %q", i, tok.GetText(), w.text)
		}
	}
	if tok := lexer.NextToken(); tok.GetTokenType() != antlr.TokenEOF {
		t.Fatalf("trailing token %q, want EOF", tok.GetText())
	}
}

type recordingListener struct {
	messages []string
}

func (l *recordingListener) SyntaxError(_ antlr.TokenSource, _ any, _, _ int, msg string, _ error) {
	l.messages = append(l.messages, msg)
}

func TestMaximalMunch(t *testing.T) {
	lexer := NewSimpleLexer(antlr.NewInputStream("  123 45"))
	checkTokens(t, lexer, []tokenExpectation{
		{SimpleInt, "123"},
		{SimpleInt, "45"},
	})
}

func TestAlternativePriority(t *testing.T) {
	// "ifx" is an ID by longest match; bare "if" matches both IF and ID
	// at the same length and the earlier alternative wins.
	lexer := NewSimpleLexer(antlr.NewInputStream("ifx if"))
	checkTokens(t, lexer, []tokenExpectation{
		{SimpleID, "ifx"},
		{SimpleIf, "if"},
	})
}

func TestNonGreedyCommentStopsAtFirstTerminator(t *testing.T) {
	lexer := NewSimpleLexer(antlr.NewInputStream("/* a */ /* b */"))
	checkTokens(t, lexer, []tokenExpectation{
		{SimpleComment, "/* a */"},
		{SimpleComment, "/* b */"},
	})
}

func TestEmptyInputEmitsEOF(t *testing.T) {
	lexer := NewSimpleLexer(antlr.NewInputStream(""))
	tok := lexer.NextToken()
	if tok.GetTokenType() != antlr.TokenEOF {
		t.Fatalf("token type = %d, want EOF", tok.GetTokenType())
	}
	if tok.GetLine() != 1 || tok.GetColumn() != 0 {
		t.Fatalf("EOF at %d:%d, want 1:0", tok.GetLine(), tok.GetColumn())
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	lexer := NewSimpleLexer(antlr.NewInputStream("ab"))
	lexer.NextToken()
	first := lexer.NextToken()
	if first.GetTokenType() != antlr.TokenEOF {
		t.Fatalf("expected EOF, got %d", first.GetTokenType())
	}
	for i := 0; i < 3; i++ {
		tok := lexer.NextToken()
		if tok.GetTokenType() != antlr.TokenEOF {
			t.Fatalf("call %d returned %d, want EOF", i, tok.GetTokenType())
		}
		if tok.GetLine() != first.GetLine() || tok.GetColumn() != first.GetColumn() {
			t.Fatalf("call %d EOF at %d:%d, want %d:%d",
				i, tok.GetLine(), tok.GetColumn(), first.GetLine(), first.GetColumn())
		}
	}
}

func TestRecoverySkipsUnrecognizedCharacter(t *testing.T) {
	lexer := NewSimpleLexer(antlr.NewInputStream("12$34"))
	listener := &recordingListener{}
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(listener)

	checkTokens(t, lexer, []tokenExpectation{
		{SimpleInt, "12"},
		{SimpleInt, "34"},
	})
	if len(listener.messages) != 1 {
		t.Fatalf("listener saw %d errors, want 1: %v", len(listener.messages), listener.messages)
	}
	if want := "token recognition error at: '$'"; listener.messages[0] != want {
		t.Fatalf("message = %q, want %q", listener.messages[0], want)
	}
}

func TestAcceptSnapshotRestoresPosition(t *testing.T) {
	input := antlr.NewInputStream("ab\n12")
	lexer := NewSimpleLexer(input)

	tok := lexer.NextToken()
	if tok.GetTokenType() != SimpleID || tok.GetLine() != 1 || tok.GetColumn() != 0 {
		t.Fatalf("first token %q at %d:%d", tok.GetText(), tok.GetLine(), tok.GetColumn())
	}
	if got := input.Index(); got != 2 {
		t.Fatalf("input index after ID = %d, want 2", got)
	}

	tok = lexer.NextToken()
	if tok.GetTokenType() != SimpleInt || tok.GetLine() != 2 || tok.GetColumn() != 0 {
		t.Fatalf("second token %q at %d:%d, want 2:0", tok.GetText(), tok.GetLine(), tok.GetColumn())
	}
	if tok.GetStart() != 3 || tok.GetStop() != 4 {
		t.Fatalf("second token spans %d..%d, want 3..4", tok.GetStart(), tok.GetStop())
	}
}

func TestSecondScanReusesDFA(t *testing.T) {
	input := antlr.NewInputStream("if abc 123")
	lexer := NewSimpleLexer(input)

	first := tokenTypes(lexer)
	dfa := lexer.Interpreter.GetDFA(antlr.DefaultMode)
	states := dfa.NumStates()
	if dfa.S0() == nil {
		t.Fatal("s0 not cached after first scan")
	}

	lexer.Reset()
	second := tokenTypes(lexer)

	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("token %d differs: %d vs %d", i, first[i], second[i])
		}
	}
	if got := dfa.NumStates(); got != states {
		t.Fatalf("second scan grew the DFA: %d -> %d states", states, got)
	}
}

func TestClearDFARebuilds(t *testing.T) {
	lexer := NewSimpleLexer(antlr.NewInputStream("abc"))
	tokenTypes(lexer)
	if lexer.Interpreter.GetDFA(antlr.DefaultMode).NumStates() == 0 {
		t.Fatal("no DFA states after scan")
	}
	lexer.Interpreter.ClearDFA()
	if got := lexer.Interpreter.GetDFA(antlr.DefaultMode).NumStates(); got != 0 {
		t.Fatalf("DFA has %d states after ClearDFA", got)
	}
	lexer.Reset()
	checkTokens(t, lexer, []tokenExpectation{{SimpleID, "abc"}})
}

func tokenTypes(lexer *antlr.BaseLexer) []int {
	var types []int
	for _, tok := range lexer.GetAllTokens() {
		types = append(types, tok.GetTokenType())
	}
	return types
}
