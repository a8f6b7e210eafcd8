package grammars

import (
	antlr "github.com/bhamiltoncx/antlr4"
)

// Token types produced by NewMarkupLexer.
const (
	MarkupOpen = iota + 1
	MarkupClose
	MarkupWord
	MarkupWS
)

// MarkupInnerMode is the mode entered between '<<' and '>>'.
const MarkupInnerMode = 1

// MarkupLexerATN builds the ATN for a two-mode bracket language:
//
//	OPEN  : '<<' -> pushMode(INNER) ;
//	WS    : [ \t\r\n]+ -> skip ;
//	mode INNER;
//	CLOSE : '>>' -> popMode ;
//	WORD  : [a-z]+ ;
func MarkupLexerATN() *antlr.ATN {
	b := NewBuilder()
	defaultMode := b.Mode()
	innerMode := b.Mode()

	b.Rule(defaultMode, MarkupOpen).
		Literal("<<").
		Command(antlr.NewLexerPushModeAction(innerMode)).
		Done()

	ws := antlr.NewIntervalSet()
	ws.AddOne(' ')
	ws.AddOne('\t')
	ws.AddOne('\r')
	ws.AddOne('\n')
	b.Rule(defaultMode, MarkupWS).Plus(func(r *RuleBuilder) {
		r.Set(ws)
	}).Command(antlr.NewLexerSkipAction()).Done()

	b.Rule(innerMode, MarkupClose).
		Literal(">>").
		Command(antlr.NewLexerPopModeAction()).
		Done()

	b.Rule(innerMode, MarkupWord).Plus(func(r *RuleBuilder) {
		r.Range('a', 'z')
	}).Done()

	return b.Build()
}

// NewMarkupLexer returns a lexer for the bracket language.
func NewMarkupLexer(input antlr.CharStream) *antlr.BaseLexer {
	return antlr.NewBaseLexer(MarkupLexerATN(), input)
}
