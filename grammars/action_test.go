package grammars

import (
	"testing"

	antlr "github.com/bhamiltoncx/antlr4"
)

const actionDirective = 1

// actionLexerATN builds a rule with a custom action in the middle:
//
//	DIRECTIVE : '#' {record()} [a-z]+ ;
//
// The action is position-dependent: it must observe the input as it was
// right after the '#', not at the end of the token.
func actionLexerATN() *antlr.ATN {
	b := NewBuilder()
	mode := b.Mode()

	b.Rule(mode, actionDirective).
		Atom('#').
		Command(antlr.NewLexerCustomAction(0, 0)).
		Plus(func(r *RuleBuilder) { r.Range('a', 'z') }).
		Done()

	return b.Build()
}

func TestCustomActionRunsAtRecordedPosition(t *testing.T) {
	input := antlr.NewInputStream("#abc")
	lexer := antlr.NewBaseLexer(actionLexerATN(), input)

	var indexAtAction, runs int
	lexer.ActionFunc = func(ruleIndex, actionIndex int) {
		runs++
		indexAtAction = input.Index()
	}

	tok := lexer.NextToken()
	if tok.GetTokenType() != actionDirective || tok.GetText() != "#abc" {
		t.Fatalf("token = %d %q, want DIRECTIVE %q", tok.GetTokenType(), tok.GetText(), "#abc")
	}
	if runs != 1 {
		t.Fatalf("action ran %d times, want exactly once", runs)
	}
	if indexAtAction != 1 {
		t.Fatalf("action observed index %d, want 1 (just after '#')", indexAtAction)
	}
	// The executor restores the stream after the replay.
	if got := input.Index(); got != 4 {
		t.Fatalf("input index after emit = %d, want 4", got)
	}
}

func TestCustomActionOffsetsShareDFAStates(t *testing.T) {
	// Two directives of the same shape reuse the same DFA states even
	// though their absolute positions differ, because action offsets are
	// bound relative to the token start.
	mkLexer := func(src string) (*antlr.BaseLexer, *int) {
		input := antlr.NewInputStream(src)
		lexer := antlr.NewBaseLexer(actionLexerATN(), input)
		runs := 0
		lexer.ActionFunc = func(_, _ int) { runs++ }
		return lexer, &runs
	}

	lexer, runs := mkLexer("#ab")
	tokenTypes(lexer)
	oneDirective := lexer.Interpreter.GetDFA(antlr.DefaultMode).NumStates()
	if *runs != 1 {
		t.Fatalf("first run count = %d, want 1", *runs)
	}

	lexer, runs = mkLexer("#ab #ab")
	// The bare '#...' grammar has no whitespace rule; lex the directives
	// around a recovery skip of the blank.
	lexer.RemoveErrorListeners()
	tokenTypes(lexer)
	if *runs != 2 {
		t.Fatalf("second run count = %d, want 2", *runs)
	}
	twoDirectives := lexer.Interpreter.GetDFA(antlr.DefaultMode).NumStates()
	if twoDirectives != oneDirective {
		t.Fatalf("identical directives grew the DFA: %d vs %d states", twoDirectives, oneDirective)
	}
}
