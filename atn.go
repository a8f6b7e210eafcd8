package antlr

// Lexer vocabulary bounds. EOF is carried alongside but is never a member
// of a transition label.
const (
	MinChar = 0x0000
	MaxChar = 0x10FFFF
)

// DefaultMode is the mode every lexer starts in.
const DefaultMode = 0

// ATNStateKind tags the role a state plays in the grammar's ATN.
type ATNStateKind uint8

const (
	StateBasic ATNStateKind = iota
	StateRuleStart
	StateBlockStart
	StatePlusBlockStart
	StateStarBlockStart
	StateTokenStart
	StateRuleStop
	StateBlockEnd
	StateStarLoopBack
	StateStarLoopEntry
	StatePlusLoopBack
	StateLoopEnd
)

var atnStateKindNames = []string{
	"basic",
	"rule_start",
	"block_start",
	"plus_block_start",
	"star_block_start",
	"token_start",
	"rule_stop",
	"block_end",
	"star_loop_back",
	"star_loop_entry",
	"plus_loop_back",
	"loop_end",
}

func (k ATNStateKind) String() string {
	if int(k) >= len(atnStateKindNames) {
		return "invalid"
	}
	return atnStateKindNames[k]
}

// ATNState is one node of the ATN graph. States and their transitions are
// frozen once the grammar is loaded.
type ATNState struct {
	Number    int
	RuleIndex int
	Kind      ATNStateKind

	// NonGreedy marks decision states compiled from non-greedy subrules.
	// Configurations that pass through such a state are deprioritized once
	// their alternative has reached an accept state.
	NonGreedy bool

	epsilonOnly bool
	transitions []Transition
}

// AddTransition appends t to the state's ordered outgoing edges.
func (s *ATNState) AddTransition(t Transition) {
	if len(s.transitions) == 0 {
		s.epsilonOnly = t.IsEpsilon()
	} else if s.epsilonOnly != t.IsEpsilon() {
		s.epsilonOnly = false
	}
	s.transitions = append(s.transitions, t)
}

// Transitions returns the ordered outgoing edges. Callers must not mutate.
func (s *ATNState) Transitions() []Transition {
	return s.transitions
}

// EpsilonOnly reports whether every outgoing transition is an epsilon.
func (s *ATNState) EpsilonOnly() bool {
	return s.epsilonOnly
}

// IsRuleStop reports whether the state accepts its rule.
func (s *ATNState) IsRuleStop() bool {
	return s.Kind == StateRuleStop
}

// IsDecision reports whether the state chooses between alternatives.
func (s *ATNState) IsDecision() bool {
	switch s.Kind {
	case StateBlockStart, StatePlusBlockStart, StateStarBlockStart,
		StateTokenStart, StateStarLoopEntry, StatePlusLoopBack:
		return true
	}
	return false
}

// ATN is the immutable transition network compiled from a lexer grammar.
// All slices are indexed by the identifiers the grammar compiler assigned:
// state number, mode, rule index, action index.
type ATN struct {
	states           []*ATNState
	modeToStartState []*ATNState
	ruleToStartState []*ATNState
	ruleToStopState  []*ATNState
	ruleToTokenType  []int
	lexerActions     []LexerAction
}

// NewATN assembles the graph from compiled grammar tables. The caller hands
// over ownership; the graph must not be mutated afterwards.
func NewATN(states []*ATNState, modeToStartState, ruleToStartState, ruleToStopState []*ATNState, ruleToTokenType []int, lexerActions []LexerAction) *ATN {
	return &ATN{
		states:           states,
		modeToStartState: modeToStartState,
		ruleToStartState: ruleToStartState,
		ruleToStopState:  ruleToStopState,
		ruleToTokenType:  ruleToTokenType,
		lexerActions:     lexerActions,
	}
}

// State returns the state with the given number.
func (a *ATN) State(number int) *ATNState {
	return a.states[number]
}

// NumStates returns the number of states in the graph.
func (a *ATN) NumStates() int {
	return len(a.states)
}

// ModeStartState returns the TokenStart state of the given mode.
func (a *ATN) ModeStartState(mode int) *ATNState {
	return a.modeToStartState[mode]
}

// NumModes returns the number of lexer modes.
func (a *ATN) NumModes() int {
	return len(a.modeToStartState)
}

// RuleStopState returns the accepting state of the given rule.
func (a *ATN) RuleStopState(ruleIndex int) *ATNState {
	return a.ruleToStopState[ruleIndex]
}

// RuleToTokenType maps a rule index to the token type its accept commits.
func (a *ATN) RuleToTokenType(ruleIndex int) int {
	return a.ruleToTokenType[ruleIndex]
}

// LexerAction returns the deferred action at actionIndex.
func (a *ATN) LexerAction(actionIndex int) LexerAction {
	return a.lexerActions[actionIndex]
}

// NextTokens computes the set of code points that can start a match from s
// with the given call stack, for error reporting. A nil context treats a
// rule stop like the empty call stack: it contributes TokenEOF and no
// return state is followed.
func (a *ATN) NextTokens(s *ATNState, ctx *PredictionContext) *IntervalSet {
	out := NewIntervalSet()
	seen := make(map[int]bool)
	a.look(s, ctx, out, seen)
	out.SetReadOnly(true)
	return out
}

func (a *ATN) look(s *ATNState, ctx *PredictionContext, out *IntervalSet, seen map[int]bool) {
	if seen[s.Number] {
		return
	}
	seen[s.Number] = true
	defer delete(seen, s.Number)

	if s.IsRuleStop() {
		if ctx == nil || ctx.isEmpty() || ctx.hasEmptyPath() {
			out.AddOne(TokenEOF)
		}
		if ctx != nil && !ctx.isEmpty() {
			for i := 0; i < ctx.length(); i++ {
				if ctx.getReturnState(i) == emptyReturnState {
					continue
				}
				a.look(a.states[ctx.getReturnState(i)], ctx.GetParent(i), out, seen)
			}
			return
		}
		return
	}
	for _, t := range s.transitions {
		switch t.Kind {
		case TransitionRule:
			a.look(t.Target, SingletonPredictionContext(ctx, t.FollowState.Number), out, seen)
		case TransitionAtom, TransitionRange, TransitionSet:
			out.AddSet(t.Label)
		case TransitionNotSet:
			out.AddSet(t.Label.ComplementRange(MinChar, MaxChar))
		case TransitionWildcard:
			out.AddRange(MinChar, MaxChar)
		default:
			if t.IsEpsilon() {
				a.look(t.Target, ctx, out, seen)
			}
		}
	}
}
