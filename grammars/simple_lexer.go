package grammars

import (
	antlr "github.com/bhamiltoncx/antlr4"
)

// Token types produced by NewSimpleLexer.
const (
	SimpleIf = iota + 1
	SimpleID
	SimpleInt
	SimpleComment
	SimpleWS
)

// SimpleLexerATN builds the ATN for a small expression-language lexer:
//
//	IF      : 'if' ;
//	ID      : [a-z]+ ;
//	INT     : [0-9]+ ;
//	COMMENT : '/*' .*? '*/' ;
//	WS      : [ \t\r\n]+ -> skip ;
//
// IF is declared before ID, so "if" on its own is an IF while "ifx" is an
// ID by longest match.
func SimpleLexerATN() *antlr.ATN {
	b := NewBuilder()
	mode := b.Mode()

	b.Rule(mode, SimpleIf).Literal("if").Done()

	b.Rule(mode, SimpleID).Plus(func(r *RuleBuilder) {
		r.Range('a', 'z')
	}).Done()

	b.Rule(mode, SimpleInt).Plus(func(r *RuleBuilder) {
		r.Range('0', '9')
	}).Done()

	b.Rule(mode, SimpleComment).
		Literal("/*").
		NonGreedyStar(func(r *RuleBuilder) { r.Wildcard() }).
		Literal("*/").
		Done()

	ws := antlr.NewIntervalSet()
	ws.AddOne(' ')
	ws.AddOne('\t')
	ws.AddOne('\r')
	ws.AddOne('\n')
	b.Rule(mode, SimpleWS).Plus(func(r *RuleBuilder) {
		r.Set(ws)
	}).Command(antlr.NewLexerSkipAction()).Done()

	return b.Build()
}

// NewSimpleLexer returns a lexer for the simple expression language.
func NewSimpleLexer(input antlr.CharStream) *antlr.BaseLexer {
	return antlr.NewBaseLexer(SimpleLexerATN(), input)
}
