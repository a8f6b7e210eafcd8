package antlr

// Out-of-band token types directing the driver: Skip discards the current
// token and starts over, More keeps accumulating into it.
const (
	LexerSkip = -3
	LexerMore = -2
)

// Lexer is the driver surface the simulator and deferred actions talk
// back to.
type Lexer interface {
	TokenSource

	Emit() Token

	Skip()
	More()
	SetType(int)
	SetChannel(int)
	SetMode(int)
	PushMode(int)
	PopMode() int

	// Sempred and Action are the user hooks compiled into the grammar:
	// Sempred must be a pure predicate, Action may have side effects.
	Sempred(ruleIndex, predIndex int) bool
	Action(ruleIndex, actionIndex int)
}

// BaseLexer drives a LexerATNSimulator over a CharStream, turning matches
// into tokens. Grammars with user predicates or actions set SempredFunc
// and ActionFunc.
type BaseLexer struct {
	Interpreter *LexerATNSimulator

	// SempredFunc evaluates semantic predicate predIndex of ruleIndex.
	// Nil means every predicate holds.
	SempredFunc func(ruleIndex, predIndex int) bool

	// ActionFunc runs custom action actionIndex of ruleIndex.
	ActionFunc func(ruleIndex, actionIndex int)

	// TokenStartCharIndex, TokenStartLine and TokenStartColumn record
	// where the token being built began.
	TokenStartCharIndex int
	TokenStartLine      int
	TokenStartColumn    int

	input      CharStream
	factory    TokenFactory
	sourcePair *TokenSourceCharStreamPair

	token     Token
	hitEOF    bool
	channel   int
	tokenType int
	mode      int
	modeStack []int
	text      string

	listeners []ErrorListener
}

// NewBaseLexer returns a lexer for atn reading input, with the console
// error listener installed.
func NewBaseLexer(atn *ATN, input CharStream) *BaseLexer {
	b := &BaseLexer{
		input:               input,
		factory:             CommonTokenFactoryDefault,
		TokenStartCharIndex: -1,
		TokenStartLine:      -1,
		TokenStartColumn:    -1,
		channel:             TokenDefaultChannel,
		tokenType:           TokenInvalidType,
		mode:                DefaultMode,
		listeners:           []ErrorListener{&ConsoleErrorListener{}},
	}
	b.sourcePair = &TokenSourceCharStreamPair{TokenSource: b, CharStream: input}
	b.Interpreter = NewLexerATNSimulator(b, atn)
	return b
}

// Reset rewinds the input and clears all lexer state.
func (b *BaseLexer) Reset() {
	if b.input != nil {
		b.input.Seek(0)
	}
	b.token = nil
	b.tokenType = TokenInvalidType
	b.channel = TokenDefaultChannel
	b.TokenStartCharIndex = -1
	b.TokenStartLine = -1
	b.TokenStartColumn = -1
	b.text = ""
	b.hitEOF = false
	b.mode = DefaultMode
	b.modeStack = b.modeStack[:0]
	b.Interpreter.reset()
}

// NextToken matches the next token on the input stream. Recognition
// errors are reported to the error listeners, the offending code point
// skipped, and matching resumes; only EOF ends the token stream.
func (b *BaseLexer) NextToken() Token {
	if b.input == nil {
		panic("lexer: NextToken requires a non-nil input stream")
	}

	// Unbuffered streams drop text behind released marks; hold one for
	// the whole token so its text stays reachable.
	tokenStartMarker := b.input.Mark()
	defer b.input.Release(tokenStartMarker)

	for {
		if b.hitEOF {
			b.emitEOF()
			return b.token
		}
		b.token = nil
		b.channel = TokenDefaultChannel
		b.TokenStartCharIndex = b.input.Index()
		b.TokenStartColumn = b.Interpreter.GetCharPositionInLine()
		b.TokenStartLine = b.Interpreter.GetLine()
		b.text = ""
		skipped := false
		for {
			b.tokenType = TokenInvalidType
			ttype := b.safeMatch()
			if b.input.LA(1) == TokenEOF {
				b.hitEOF = true
			}
			if b.tokenType == TokenInvalidType {
				b.tokenType = ttype
			}
			if b.tokenType == LexerSkip {
				skipped = true
				break
			}
			if b.tokenType != LexerMore {
				break
			}
		}
		if skipped {
			continue
		}
		if b.token == nil {
			b.Emit()
		}
		return b.token
	}
}

// safeMatch converts a no-viable-alternative panic into SKIP after
// reporting and recovery.
func (b *BaseLexer) safeMatch() (ret int) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*LexerNoViableAltException)
			if !ok {
				panic(r)
			}
			b.notifyListeners(e)
			b.Recover(e)
			ret = LexerSkip
		}
	}()
	return b.Interpreter.Match(b.input, b.mode)
}

// Skip directs the driver to discard the current token and look for
// another.
func (b *BaseLexer) Skip() {
	b.tokenType = LexerSkip
}

// More directs the driver to keep consuming into the current token.
func (b *BaseLexer) More() {
	b.tokenType = LexerMore
}

// SetMode switches the lexer to mode m without touching the stack.
func (b *BaseLexer) SetMode(m int) {
	b.mode = m
}

// PushMode saves the current mode and enters m.
func (b *BaseLexer) PushMode(m int) {
	b.modeStack = append(b.modeStack, b.mode)
	b.mode = m
}

// PopMode restores the most recently pushed mode. Popping with nothing
// pushed is a grammar bug and panics.
func (b *BaseLexer) PopMode() int {
	if len(b.modeStack) == 0 {
		panic("lexer: pop from empty mode stack")
	}
	b.mode = b.modeStack[len(b.modeStack)-1]
	b.modeStack = b.modeStack[:len(b.modeStack)-1]
	return b.mode
}

// Mode returns the current lexer mode.
func (b *BaseLexer) Mode() int {
	return b.mode
}

// Emit builds a token for the text matched since the token start through
// the token factory and records it as the lexer's current token.
func (b *BaseLexer) Emit() Token {
	t := b.factory.Create(b.sourcePair, b.tokenType, b.text, b.channel,
		b.TokenStartCharIndex, b.input.Index()-1, b.TokenStartLine, b.TokenStartColumn)
	b.token = t
	return t
}

func (b *BaseLexer) emitEOF() Token {
	t := b.factory.Create(b.sourcePair, TokenEOF, "", TokenDefaultChannel,
		b.input.Index(), b.input.Index()-1, b.GetLine(), b.GetCharPositionInLine())
	b.token = t
	return t
}

// GetAllTokens drains the stream, returning every token before EOF.
func (b *BaseLexer) GetAllTokens() []Token {
	var tokens []Token
	for t := b.NextToken(); t.GetTokenType() != TokenEOF; t = b.NextToken() {
		tokens = append(tokens, t)
	}
	return tokens
}

// Sempred dispatches to SempredFunc; with none installed every predicate
// holds.
func (b *BaseLexer) Sempred(ruleIndex, predIndex int) bool {
	if b.SempredFunc == nil {
		return true
	}
	return b.SempredFunc(ruleIndex, predIndex)
}

// Action dispatches to ActionFunc; with none installed custom actions are
// no-ops.
func (b *BaseLexer) Action(ruleIndex, actionIndex int) {
	if b.ActionFunc != nil {
		b.ActionFunc(ruleIndex, actionIndex)
	}
}

// SetType overrides the type of the token being built.
func (b *BaseLexer) SetType(t int) {
	b.tokenType = t
}

// GetType returns the type of the token being built.
func (b *BaseLexer) GetType() int {
	return b.tokenType
}

// SetChannel routes the token being built to channel v.
func (b *BaseLexer) SetChannel(v int) {
	b.channel = v
}

// SetText overrides the text of the token being built.
func (b *BaseLexer) SetText(text string) {
	b.text = text
}

// GetText returns the text matched so far for the token being built, or
// its override.
func (b *BaseLexer) GetText() string {
	if b.text != "" {
		return b.text
	}
	return b.Interpreter.GetText(b.input)
}

// SetTokenFactory replaces the factory tokens are built with.
func (b *BaseLexer) SetTokenFactory(f TokenFactory) {
	b.factory = f
}

func (b *BaseLexer) GetTokenFactory() TokenFactory {
	return b.factory
}

func (b *BaseLexer) GetInputStream() CharStream {
	return b.input
}

func (b *BaseLexer) GetSourceName() string {
	return b.input.GetSourceName()
}

func (b *BaseLexer) GetLine() int {
	return b.Interpreter.GetLine()
}

func (b *BaseLexer) GetCharPositionInLine() int {
	return b.Interpreter.GetCharPositionInLine()
}

// AddErrorListener registers l alongside the existing listeners.
func (b *BaseLexer) AddErrorListener(l ErrorListener) {
	b.listeners = append(b.listeners, l)
}

// RemoveErrorListeners drops all listeners, console default included.
func (b *BaseLexer) RemoveErrorListeners() {
	b.listeners = nil
}

func (b *BaseLexer) notifyListeners(e *LexerNoViableAltException) {
	start := b.TokenStartCharIndex
	stop := b.input.Index()
	text := escapeWhitespace(b.input.GetTextFromInterval(NewInterval(start, stop)))
	msg := "token recognition error at: '" + text + "'"
	proxy := &proxyErrorListener{listeners: b.listeners}
	proxy.SyntaxError(b, nil, b.TokenStartLine, b.TokenStartColumn, msg, e)
}

// Recover skips one code point so matching can resume. The simulator does
// the consuming so line and column stay correct.
func (b *BaseLexer) Recover(_ *LexerNoViableAltException) {
	if b.input.LA(1) != TokenEOF {
		b.Interpreter.Consume(b.input)
	}
}
