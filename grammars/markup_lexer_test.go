package grammars

import (
	"testing"

	antlr "github.com/bhamiltoncx/antlr4"
)

func TestModeSwitch(t *testing.T) {
	lexer := NewMarkupLexer(antlr.NewInputStream("<<abc>>"))
	checkTokens(t, lexer, []tokenExpectation{
		{MarkupOpen, "<<"},
		{MarkupWord, "abc"},
		{MarkupClose, ">>"},
	})
	if got := lexer.Mode(); got != antlr.DefaultMode {
		t.Fatalf("mode after balanced input = %d, want default", got)
	}
}

func TestModeStackBalancesAcrossTokens(t *testing.T) {
	lexer := NewMarkupLexer(antlr.NewInputStream("<<ab>> <<cd>>"))
	checkTokens(t, lexer, []tokenExpectation{
		{MarkupOpen, "<<"},
		{MarkupWord, "ab"},
		{MarkupClose, ">>"},
		{MarkupOpen, "<<"},
		{MarkupWord, "cd"},
		{MarkupClose, ">>"},
	})
	if got := lexer.Mode(); got != antlr.DefaultMode {
		t.Fatalf("mode after input = %d, want default", got)
	}
}

func TestPopEmptyModeStackPanics(t *testing.T) {
	lexer := NewMarkupLexer(antlr.NewInputStream(""))
	defer func() {
		if recover() == nil {
			t.Fatal("PopMode on empty stack did not panic")
		}
	}()
	lexer.PopMode()
}

func TestUnbalancedCloseIsRecovered(t *testing.T) {
	// '>>' has no meaning in the default mode; both code points are
	// reported and skipped.
	lexer := NewMarkupLexer(antlr.NewInputStream(">> <<ab>>"))
	listener := &recordingListener{}
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(listener)

	checkTokens(t, lexer, []tokenExpectation{
		{MarkupOpen, "<<"},
		{MarkupWord, "ab"},
		{MarkupClose, ">>"},
	})
	if len(listener.messages) != 2 {
		t.Fatalf("listener saw %d errors, want 2: %v", len(listener.messages), listener.messages)
	}
}

func TestPerModeDFAsGrowIndependently(t *testing.T) {
	lexer := NewMarkupLexer(antlr.NewInputStream("<<ab>>"))
	tokenTypes(lexer)
	if got := lexer.Interpreter.GetDFA(antlr.DefaultMode).NumStates(); got == 0 {
		t.Fatal("default-mode DFA is empty after scan")
	}
	if got := lexer.Interpreter.GetDFA(MarkupInnerMode).NumStates(); got == 0 {
		t.Fatal("inner-mode DFA is empty after scan")
	}
}
