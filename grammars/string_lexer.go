package grammars

import (
	antlr "github.com/bhamiltoncx/antlr4"
)

// Token types produced by NewStringLexer.
const (
	StringLit = iota + 1
	StringWS
)

// StringInnerMode is the mode entered after an opening quote.
const StringInnerMode = 1

// StringLexerATN builds the ATN for a quoted-string language exercising
// MORE: the opening quote, the body pieces, and the closing quote all
// accumulate into one STRING token.
//
//	OPEN  : '\'' -> more, pushMode(STR) ;
//	WS    : [ \t\r\n]+ -> skip ;
//	mode STR;
//	CLOSE : '\'' -> type(STRING), popMode ;
//	TEXT  : ~['\r\n]+ -> more ;
func StringLexerATN() *antlr.ATN {
	b := NewBuilder()
	defaultMode := b.Mode()
	strMode := b.Mode()

	b.Rule(defaultMode, antlr.TokenInvalidType).
		Atom('\'').
		Command(antlr.NewLexerMoreAction()).
		Command(antlr.NewLexerPushModeAction(strMode)).
		Done()

	ws := antlr.NewIntervalSet()
	ws.AddOne(' ')
	ws.AddOne('\t')
	ws.AddOne('\r')
	ws.AddOne('\n')
	b.Rule(defaultMode, StringWS).Plus(func(r *RuleBuilder) {
		r.Set(ws)
	}).Command(antlr.NewLexerSkipAction()).Done()

	b.Rule(strMode, antlr.TokenInvalidType).
		Atom('\'').
		Command(antlr.NewLexerTypeAction(StringLit)).
		Command(antlr.NewLexerPopModeAction()).
		Done()

	stop := antlr.NewIntervalSet()
	stop.AddOne('\'')
	stop.AddOne('\r')
	stop.AddOne('\n')
	b.Rule(strMode, antlr.TokenInvalidType).Plus(func(r *RuleBuilder) {
		r.NotSet(stop)
	}).Command(antlr.NewLexerMoreAction()).Done()

	return b.Build()
}

// NewStringLexer returns a lexer for the quoted-string language.
func NewStringLexer(input antlr.CharStream) *antlr.BaseLexer {
	return antlr.NewBaseLexer(StringLexerATN(), input)
}
