package antlr

import (
	"fmt"
	"strings"
)

// Token type and channel constants shared by the lexer and the token types
// emitted from grammars. Grammar token types start at 1; 0 marks a token
// whose type has not been decided yet.
const (
	TokenEOF         = -1
	TokenInvalidType = 0

	TokenDefaultChannel = 0
	TokenHiddenChannel  = 1
)

// Token is one lexeme produced by a token source.
type Token interface {
	GetTokenType() int
	GetChannel() int
	GetStart() int
	GetStop() int
	GetLine() int
	GetColumn() int
	GetText() string
	SetText(string)
	GetTokenIndex() int
	SetTokenIndex(int)
	GetSource() *TokenSourceCharStreamPair
}

// TokenSource produces tokens, usually a lexer driving a CharStream.
type TokenSource interface {
	NextToken() Token
	GetLine() int
	GetCharPositionInLine() int
	GetInputStream() CharStream
	GetSourceName() string
	GetTokenFactory() TokenFactory
}

// TokenSourceCharStreamPair ties a token back to the source and stream it
// was read from.
type TokenSourceCharStreamPair struct {
	TokenSource TokenSource
	CharStream  CharStream
}

// TokenFactory creates tokens on behalf of a token source. When text is
// empty the token lazily reads its text from the stream interval.
type TokenFactory interface {
	Create(source *TokenSourceCharStreamPair, tokenType int, text string, channel, start, stop, line, column int) Token
}

// CommonToken is the default Token implementation.
type CommonToken struct {
	source     *TokenSourceCharStreamPair
	tokenType  int
	channel    int
	start      int
	stop       int
	tokenIndex int
	line       int
	column     int
	text       string
}

// NewCommonToken returns a token spanning [start, stop] in the source stream.
func NewCommonToken(source *TokenSourceCharStreamPair, tokenType int, channel, start, stop int) *CommonToken {
	t := &CommonToken{
		source:     source,
		tokenType:  tokenType,
		channel:    channel,
		start:      start,
		stop:       stop,
		tokenIndex: -1,
	}
	if source != nil && source.TokenSource != nil {
		t.line = source.TokenSource.GetLine()
		t.column = source.TokenSource.GetCharPositionInLine()
	} else {
		t.column = -1
	}
	return t
}

func (t *CommonToken) GetTokenType() int  { return t.tokenType }
func (t *CommonToken) GetChannel() int    { return t.channel }
func (t *CommonToken) GetStart() int      { return t.start }
func (t *CommonToken) GetStop() int       { return t.stop }
func (t *CommonToken) GetLine() int       { return t.line }
func (t *CommonToken) GetColumn() int     { return t.column }
func (t *CommonToken) GetTokenIndex() int { return t.tokenIndex }

func (t *CommonToken) SetTokenIndex(i int) { t.tokenIndex = i }

func (t *CommonToken) GetSource() *TokenSourceCharStreamPair { return t.source }

// GetText returns the override text if set, otherwise the slice of the
// underlying stream the token spans.
func (t *CommonToken) GetText() string {
	if t.text != "" {
		return t.text
	}
	if t.source == nil || t.source.CharStream == nil {
		return ""
	}
	input := t.source.CharStream
	n := input.Size()
	if t.start < n && t.stop < n {
		return input.GetTextFromInterval(NewInterval(t.start, t.stop))
	}
	return "<EOF>"
}

func (t *CommonToken) SetText(text string) { t.text = text }

func (t *CommonToken) String() string {
	text := t.GetText()
	if text == "" {
		text = "<no text>"
	} else {
		text = strings.NewReplacer("\n", "\\n", "\r", "\\r", "\t", "\\t").Replace(text)
	}
	return fmt.Sprintf("[@%d,%d:%d='%s',<%d>,%d:%d]",
		t.tokenIndex, t.start, t.stop, text, t.tokenType, t.line, t.column)
}

// CommonTokenFactory builds CommonToken values. The zero value is usable.
type CommonTokenFactory struct{}

// CommonTokenFactoryDefault is the factory installed on new lexers.
var CommonTokenFactoryDefault = &CommonTokenFactory{}

func (f *CommonTokenFactory) Create(source *TokenSourceCharStreamPair, tokenType int, text string, channel, start, stop, line, column int) Token {
	t := NewCommonToken(source, tokenType, channel, start, stop)
	t.line = line
	t.column = column
	if text != "" {
		t.SetText(text)
	}
	return t
}
