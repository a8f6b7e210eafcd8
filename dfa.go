package antlr

import (
	"fmt"
	"sort"
	"strings"
)

// DFA edge tables cover only this code-point window. Symbols outside it
// never install edges and always pay the cost of ATN simulation, keeping
// the tables small while the ASCII fast path stays hot.
const (
	MinDFAEdge = 0
	MaxDFAEdge = 127
)

// dfaErrorState is the shared dead-end sentinel. Installing it as an edge
// memoizes that a symbol leads nowhere from a state.
var dfaErrorState = &DFAState{stateNumber: -1}

// DFAState is an interned configuration set plus its outgoing edge table.
// Identity is the configuration set: two states with equal sets are the
// same state.
type DFAState struct {
	stateNumber int
	configs     *ConfigSet

	// edges[t-MinDFAEdge] is the target on symbol t, nil when not yet
	// computed, dfaErrorState when t is a known dead end. Allocated on the
	// first edge.
	edges []*DFAState

	isAcceptState bool

	// prediction is the token type committed when this state accepts.
	prediction int

	executor *LexerActionExecutor
}

func newDFAState(configs *ConfigSet) *DFAState {
	return &DFAState{stateNumber: -1, configs: configs, prediction: TokenInvalidType}
}

// Configs returns the interned configuration set.
func (d *DFAState) Configs() *ConfigSet {
	return d.configs
}

// IsAcceptState reports whether reaching this state commits a token.
func (d *DFAState) IsAcceptState() bool {
	return d.isAcceptState
}

// Prediction returns the committed token type of an accept state.
func (d *DFAState) Prediction() int {
	return d.prediction
}

// StateNumber returns the intern order of the state within its DFA.
func (d *DFAState) StateNumber() int {
	return d.stateNumber
}

func (d *DFAState) getEdge(t int) *DFAState {
	if d.edges == nil {
		return nil
	}
	return d.edges[t-MinDFAEdge]
}

func (d *DFAState) setEdge(t int, target *DFAState) {
	if d.edges == nil {
		d.edges = make([]*DFAState, MaxDFAEdge-MinDFAEdge+1)
	}
	d.edges[t-MinDFAEdge] = target
}

func (d *DFAState) String() string {
	if d == dfaErrorState {
		return "ERROR"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "s%d", d.stateNumber)
	if d.isAcceptState {
		fmt.Fprintf(&sb, "=>%d", d.prediction)
	}
	return sb.String()
}

// DFA is the lazily built automaton for one lexer mode. States are interned
// by configuration-set equality and grow monotonically; ClearDFA on the
// simulator throws whole DFAs away rather than removing states.
type DFA struct {
	atnStartState *ATNState
	mode          int

	s0     *DFAState
	states map[uint64][]*DFAState
	count  int
}

// NewDFA returns an empty DFA rooted at the mode's TokenStart state.
func NewDFA(atnStartState *ATNState, mode int) *DFA {
	return &DFA{
		atnStartState: atnStartState,
		mode:          mode,
		states:        make(map[uint64][]*DFAState),
	}
}

// S0 returns the start state, nil until the first match in this mode.
func (d *DFA) S0() *DFAState {
	return d.s0
}

func (d *DFA) setS0(s *DFAState) {
	d.s0 = s
}

// findState returns the interned state with a configuration set equal to
// configs, if any.
func (d *DFA) findState(configs *ConfigSet) *DFAState {
	for _, s := range d.states[configs.Hash()] {
		if s.configs.Equals(configs) {
			return s
		}
	}
	return nil
}

// addState interns s, assigning the next state number.
func (d *DFA) addState(s *DFAState) {
	s.stateNumber = d.count
	d.count++
	h := s.configs.Hash()
	d.states[h] = append(d.states[h], s)
}

// NumStates returns the number of interned states.
func (d *DFA) NumStates() int {
	return d.count
}

// States returns the interned states ordered by state number.
func (d *DFA) States() []*DFAState {
	out := make([]*DFAState, 0, d.count)
	for _, bucket := range d.states {
		out = append(out, bucket...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].stateNumber < out[j].stateNumber })
	return out
}

func (d *DFA) String() string {
	var sb strings.Builder
	for _, s := range d.States() {
		if s.edges == nil {
			continue
		}
		for t, target := range s.edges {
			if target == nil {
				continue
			}
			fmt.Fprintf(&sb, "%s-%q->%s\n", s, rune(t+MinDFAEdge), target)
		}
	}
	return sb.String()
}
