package antlr

import (
	"fmt"
	"os"
	"strings"
)

// LexerNoViableAltException reports that no alternative of the current
// mode could consume the input at startIndex. The driver recovers by
// skipping one code point; the exception reaches callers only through
// error listeners.
type LexerNoViableAltException struct {
	startIndex     int
	deadEndConfigs *ConfigSet
	input          CharStream
}

// NewLexerNoViableAltException captures the dead-end state of a failed
// match attempt.
func NewLexerNoViableAltException(input CharStream, startIndex int, deadEndConfigs *ConfigSet) *LexerNoViableAltException {
	return &LexerNoViableAltException{
		startIndex:     startIndex,
		deadEndConfigs: deadEndConfigs,
		input:          input,
	}
}

// StartIndex returns the input index where the failed match began.
func (e *LexerNoViableAltException) StartIndex() int {
	return e.startIndex
}

// DeadEndConfigs returns the configurations the simulator held when it
// gave up.
func (e *LexerNoViableAltException) DeadEndConfigs() *ConfigSet {
	return e.deadEndConfigs
}

// Input returns the stream the failure occurred on.
func (e *LexerNoViableAltException) Input() CharStream {
	return e.input
}

func (e *LexerNoViableAltException) Error() string {
	symbol := ""
	if e.startIndex >= 0 && e.startIndex < e.input.Size() {
		symbol = escapeWhitespace(e.input.GetTextFromInterval(NewInterval(e.startIndex, e.startIndex)))
	}
	return fmt.Sprintf("LexerNoViableAltException('%s')", symbol)
}

func escapeWhitespace(s string) string {
	return strings.NewReplacer("\n", "\\n", "\r", "\\r", "\t", "\\t").Replace(s)
}

// ErrorListener receives syntax errors from a lexer. The offending symbol
// is nil for lexer errors; e is the underlying recognition exception.
type ErrorListener interface {
	SyntaxError(recognizer TokenSource, offendingSymbol any, line, column int, msg string, e error)
}

// ConsoleErrorListener writes errors to stderr. It is the listener
// installed on new lexers.
type ConsoleErrorListener struct{}

func (l *ConsoleErrorListener) SyntaxError(_ TokenSource, _ any, line, column int, msg string, _ error) {
	fmt.Fprintf(os.Stderr, "line %d:%d %s\n", line, column, msg)
}

// proxyErrorListener fans one callback out to every registered listener.
type proxyErrorListener struct {
	listeners []ErrorListener
}

func (p *proxyErrorListener) SyntaxError(recognizer TokenSource, offendingSymbol any, line, column int, msg string, e error) {
	for _, l := range p.listeners {
		l.SyntaxError(recognizer, offendingSymbol, line, column, msg, e)
	}
}
