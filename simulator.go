package antlr

// simState snapshots the most recent accept seen during one match: the
// input index one past the token's last character and the line/column the
// simulator will rewind to if this accept wins.
type simState struct {
	index    int
	line     int
	column   int
	dfaState *DFAState
}

func (s *simState) reset() {
	s.index = -1
	s.line = 0
	s.column = -1
	s.dfaState = nil
}

// LexerATNSimulator matches one token per call by walking the mode's DFA
// where edges exist and simulating the ATN where they do not, interning
// every newly computed configuration set as a DFA state so the next scan
// takes the fast path. A simulator instance is single-threaded; the ATN it
// reads is shared and immutable.
type LexerATNSimulator struct {
	atn           *ATN
	recog         Lexer
	decisionToDFA []*DFA
	contextCache  *PredictionContextCache

	// Line and CharPositionInLine are the authoritative lexer position,
	// updated by Consume and rewound by accept.
	Line               int
	CharPositionInLine int

	mode       int
	startIndex int
	prevAccept simState

	// MatchCalls counts Match invocations, exposed for instrumentation.
	MatchCalls int
}

// NewLexerATNSimulator returns a simulator over atn reporting actions and
// predicates to recog, which may be nil (predicates then evaluate true).
func NewLexerATNSimulator(recog Lexer, atn *ATN) *LexerATNSimulator {
	dfas := make([]*DFA, atn.NumModes())
	for mode := range dfas {
		dfas[mode] = NewDFA(atn.ModeStartState(mode), mode)
	}
	l := &LexerATNSimulator{
		atn:           atn,
		recog:         recog,
		decisionToDFA: dfas,
		contextCache:  NewPredictionContextCache(),
		Line:          1,
		mode:          DefaultMode,
		startIndex:    -1,
	}
	l.prevAccept.reset()
	return l
}

// ATN returns the network the simulator runs.
func (l *LexerATNSimulator) ATN() *ATN {
	return l.atn
}

// Match consumes one token's worth of input in the given mode and returns
// its token type. On success the input is left one past the token's last
// character. On failure it panics with *LexerNoViableAltException, leaving
// the input where the matcher gave up.
func (l *LexerATNSimulator) Match(input CharStream, mode int) int {
	l.MatchCalls++
	l.mode = mode
	mark := input.Mark()
	defer input.Release(mark)

	l.startIndex = input.Index()
	l.prevAccept.reset()

	s0 := l.decisionToDFA[mode].S0()
	if s0 == nil {
		return l.matchATN(input)
	}
	return l.execATN(input, s0)
}

func (l *LexerATNSimulator) reset() {
	l.prevAccept.reset()
	l.startIndex = -1
	l.Line = 1
	l.CharPositionInLine = 0
	l.mode = DefaultMode
}

// ClearDFA throws away all cached DFA states. Subsequent matches rebuild
// them from the ATN.
func (l *LexerATNSimulator) ClearDFA() {
	for mode := range l.decisionToDFA {
		l.decisionToDFA[mode] = NewDFA(l.atn.ModeStartState(mode), mode)
	}
}

// GetDFA returns the DFA grown for a mode.
func (l *LexerATNSimulator) GetDFA(mode int) *DFA {
	return l.decisionToDFA[mode]
}

// matchATN computes the mode's start closure, interns it as a DFA state,
// and hands off to execATN. The state becomes the mode's s0 only when the
// closure traversed no predicate.
func (l *LexerATNSimulator) matchATN(input CharStream) int {
	startState := l.atn.ModeStartState(l.mode)

	s0Closure := l.computeStartState(input, startState)
	suppressEdge := s0Closure.HasSemanticContext()
	s0Closure.SetHasSemanticContext(false)

	next := l.addDFAState(s0Closure, suppressEdge)
	return l.execATN(input, next)
}

func (l *LexerATNSimulator) execATN(input CharStream, ds0 *DFAState) int {
	if ds0.isAcceptState {
		// A zero-length token is still a token.
		l.captureSimState(input, ds0)
	}
	t := input.LA(1)
	s := ds0

	for {
		// Reuse a previously computed edge when there is one; otherwise
		// fall back to reach/closure over the state's configurations and
		// intern the result so the edge exists next time.
		target := l.getExistingTargetState(s, t)
		if target == nil {
			target = l.computeTargetState(input, s, t)
		}
		if target == dfaErrorState {
			break
		}
		// Consume before capturing the accept so the snapshot holds the
		// line and column the lexer will have at the end of the token.
		if t != TokenEOF {
			l.Consume(input)
		}
		if target.isAcceptState {
			l.captureSimState(input, target)
			if t == TokenEOF {
				break
			}
		}
		t = input.LA(1)
		s = target
	}

	return l.failOrAccept(input, s.configs, t)
}

// getExistingTargetState returns the cached edge target for symbol t, or
// nil when none has been installed. Symbols outside the DFA edge window
// never have cached edges.
func (l *LexerATNSimulator) getExistingTargetState(s *DFAState, t int) *DFAState {
	if t < MinDFAEdge || t > MaxDFAEdge {
		return nil
	}
	return s.getEdge(t)
}

// computeTargetState runs reach on s's configurations for symbol t and
// interns the result. An empty reach installs the error sentinel so the
// dead end is memoized.
func (l *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) *DFAState {
	reach := NewConfigSet()
	l.getReachableConfigSet(input, s.configs, reach, t)

	if reach.Len() == 0 {
		if !reach.HasSemanticContext() {
			l.addDFAEdge(s, t, dfaErrorState, nil)
		}
		return dfaErrorState
	}
	return l.addDFAEdge(s, t, nil, reach)
}

func (l *LexerATNSimulator) failOrAccept(input CharStream, reach *ConfigSet, t int) int {
	if l.prevAccept.dfaState != nil {
		l.accept(input, l.prevAccept.dfaState.executor, l.startIndex,
			l.prevAccept.index, l.prevAccept.line, l.prevAccept.column)
		return l.prevAccept.dfaState.prediction
	}
	if t == TokenEOF && input.Index() == l.startIndex {
		return TokenEOF
	}
	panic(NewLexerNoViableAltException(input, l.startIndex, reach))
}

// getReachableConfigSet fills reach with every configuration reachable
// from closure by consuming t. Once an alternative reaches an accept
// state, its remaining non-greedy configurations are skipped: they would
// only produce longer matches the non-greedy decision forbids.
func (l *LexerATNSimulator) getReachableConfigSet(input CharStream, closure, reach *ConfigSet, t int) {
	skipAlt := -1
	for _, cfg := range closure.Configs() {
		currentAltReachedAcceptState := cfg.alt == skipAlt
		if currentAltReachedAcceptState && cfg.passedThroughNonGreedyDecision {
			continue
		}
		for _, trans := range cfg.state.Transitions() {
			if !trans.Matches(t, MinChar, MaxChar) {
				continue
			}
			executor := cfg.executor
			if executor != nil {
				executor = executor.fixOffsetBeforeMatch(input.Index() - l.startIndex)
			}
			next := cfg.deriveWithExecutor(trans.Target, executor)
			if l.closure(input, next, reach, currentAltReachedAcceptState, true, t == TokenEOF) {
				// The rest of this alternative's configurations have
				// lower priority than the accept just found.
				skipAlt = cfg.alt
				break
			}
		}
	}
}

func (l *LexerATNSimulator) accept(input CharStream, executor *LexerActionExecutor, startIndex, index, line, charPos int) {
	// Seek to one past the last character of the winning token.
	input.Seek(index)
	l.Line = line
	l.CharPositionInLine = charPos
	if executor != nil && l.recog != nil {
		executor.execute(l.recog, input, startIndex)
	}
}

// computeStartState closures every alternative of the mode start state.
// The i-th outgoing transition becomes alternative i+1 with an empty call
// stack.
func (l *LexerATNSimulator) computeStartState(input CharStream, p *ATNState) *ConfigSet {
	configs := NewConfigSet()
	for i, t := range p.Transitions() {
		cfg := newATNConfig(t.Target, i+1, EmptyPredictionContext)
		l.closure(input, cfg, configs, false, false, false)
	}
	return configs
}

// closure adds config and every configuration reachable from it without
// consuming input. Alternatives are ordered by preference, so the walk
// reports as soon as an accept state is reached; later configurations of
// the same alternative that crossed a non-greedy decision are then left
// out.
func (l *LexerATNSimulator) closure(input CharStream, config *ATNConfig, configs *ConfigSet,
	currentAltReachedAcceptState, speculative, treatEOFAsEpsilon bool) bool {

	if config.state.IsRuleStop() {
		ctx := config.context
		if ctx == nil || ctx.hasEmptyPath() {
			if ctx == nil || ctx.isEmpty() {
				configs.Add(config)
				return true
			}
			configs.Add(config.deriveWithContext(config.state, EmptyPredictionContext))
			currentAltReachedAcceptState = true
		}
		if ctx != nil && !ctx.isEmpty() {
			for i := 0; i < ctx.length(); i++ {
				if ctx.getReturnState(i) == emptyReturnState {
					continue
				}
				returnState := l.atn.State(ctx.getReturnState(i))
				cfg := config.deriveWithContext(returnState, ctx.GetParent(i))
				currentAltReachedAcceptState = l.closure(input, cfg, configs,
					currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
			}
		}
		return currentAltReachedAcceptState
	}

	if !config.state.EpsilonOnly() {
		if !currentAltReachedAcceptState || !config.passedThroughNonGreedyDecision {
			configs.Add(config)
		}
	}
	for _, trans := range config.state.Transitions() {
		if cfg := l.getEpsilonTarget(input, config, trans, configs, speculative, treatEOFAsEpsilon); cfg != nil {
			currentAltReachedAcceptState = l.closure(input, cfg, configs,
				currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
		}
	}
	return currentAltReachedAcceptState
}

// getEpsilonTarget maps one transition to the configuration it produces
// without consuming input, or nil when the transition is not an epsilon
// here. Side effect: traversing a predicate marks configs as carrying
// semantic context.
func (l *LexerATNSimulator) getEpsilonTarget(input CharStream, config *ATNConfig, trans Transition,
	configs *ConfigSet, speculative, treatEOFAsEpsilon bool) *ATNConfig {

	switch trans.Kind {
	case TransitionRule:
		newCtx := l.contextCache.Add(SingletonPredictionContext(config.context, trans.FollowState.Number))
		return config.deriveWithContext(trans.Target, newCtx)

	case TransitionPrecedence:
		panic("lexer: precedence predicates are not supported in lexers")

	case TransitionPredicate:
		// A predicate seen while computing reach poisons the edge: the DFA
		// would never ask again, but the answer can change between scans.
		// The target state is still usable for the current scan.
		configs.SetHasSemanticContext(true)
		if l.evaluatePredicate(input, trans.RuleIndex, trans.PredIndex, speculative) {
			return config.derive(trans.Target)
		}
		return nil

	case TransitionAction:
		if config.context == nil || config.context.hasEmptyPath() {
			// Execute actions anywhere in the start rule for a token.
			//
			// TODO: when the start rule is reached again through a rule
			// transition, hasEmptyPath() is true but isEmpty() is not, and
			// this config would need to split into an empty-path context
			// and the rest before the action could be recorded correctly.
			// The closure walk produces one configuration per transition,
			// so the split is not representable; such actions are recorded
			// against the whole config.
			executor := appendAction(config.executor, l.atn.LexerAction(trans.ActionIndex))
			return config.deriveWithExecutor(trans.Target, executor)
		}
		// Ignore actions in referenced rules.
		return config.derive(trans.Target)

	case TransitionEpsilon:
		return config.derive(trans.Target)

	case TransitionAtom, TransitionRange, TransitionSet:
		// EOF never matches a label, but at the end of input the match
		// transitions that accept EOF-as-epsilon keep alternatives alive.
		if treatEOFAsEpsilon && trans.Matches(TokenEOF, MinChar, MaxChar) {
			return config.derive(trans.Target)
		}
	}
	return nil
}

// evaluatePredicate asks the recognizer about a semantic predicate. In
// speculative mode the lexer has not consumed the current character yet,
// so one character is consumed first and every observable position field
// restored afterwards, leaving the predicate's view consistent with what
// the lexer will see at accept time.
func (l *LexerATNSimulator) evaluatePredicate(input CharStream, ruleIndex, predIndex int, speculative bool) bool {
	if l.recog == nil {
		return true
	}
	if !speculative {
		return l.recog.Sempred(ruleIndex, predIndex)
	}

	savedColumn := l.CharPositionInLine
	savedLine := l.Line
	index := input.Index()
	marker := input.Mark()
	defer func() {
		l.CharPositionInLine = savedColumn
		l.Line = savedLine
		input.Seek(index)
		input.Release(marker)
	}()

	l.Consume(input)
	return l.recog.Sempred(ruleIndex, predIndex)
}

func (l *LexerATNSimulator) captureSimState(input CharStream, dfaState *DFAState) {
	l.prevAccept.index = input.Index()
	l.prevAccept.line = l.Line
	l.prevAccept.column = l.CharPositionInLine
	l.prevAccept.dfaState = dfaState
}

// addDFAEdge interns cfgs as the target state (unless to is already the
// error sentinel) and installs the edge from from on t. Edges are not
// installed for symbols outside the DFA window, nor for targets whose
// configuration set traversed a predicate.
func (l *LexerATNSimulator) addDFAEdge(from *DFAState, t int, to *DFAState, cfgs *ConfigSet) *DFAState {
	if to == nil && cfgs != nil {
		suppressEdge := cfgs.HasSemanticContext()
		cfgs.SetHasSemanticContext(false)

		to = l.addDFAState(cfgs, true)
		if suppressEdge {
			return to
		}
	}
	if t < MinDFAEdge || t > MaxDFAEdge {
		return to
	}
	from.setEdge(t, to)
	return to
}

// addDFAState interns configs as a DFA state, detecting the first
// rule-stop configuration so the state knows which token it accepts. When
// suppressS0 is false the interned state also becomes the mode's s0.
func (l *LexerATNSimulator) addDFAState(configs *ConfigSet, suppressS0 bool) *DFAState {
	dfa := l.decisionToDFA[l.mode]

	proposed := dfa.findState(configs)
	if proposed == nil {
		proposed = newDFAState(configs)
		for _, cfg := range configs.Configs() {
			if cfg.state.IsRuleStop() {
				proposed.isAcceptState = true
				proposed.executor = cfg.executor
				proposed.prediction = l.atn.RuleToTokenType(cfg.state.RuleIndex)
				break
			}
		}
		configs.Freeze()
		dfa.addState(proposed)
	}
	if !suppressS0 {
		dfa.setS0(proposed)
	}
	return proposed
}

// GetText returns the text matched so far during the current match call.
func (l *LexerATNSimulator) GetText(input CharStream) string {
	return input.GetTextFromInterval(NewInterval(l.startIndex, input.Index()-1))
}

// Consume advances the input one code point, tracking line and column.
func (l *LexerATNSimulator) Consume(input CharStream) {
	if input.LA(1) == '\n' {
		l.Line++
		l.CharPositionInLine = 0
	} else {
		l.CharPositionInLine++
	}
	input.Consume()
}

// GetLine returns the 1-based line of the next character to be consumed.
func (l *LexerATNSimulator) GetLine() int {
	return l.Line
}

// GetCharPositionInLine returns the 0-based column of the next character
// to be consumed.
func (l *LexerATNSimulator) GetCharPositionInLine() int {
	return l.CharPositionInLine
}
