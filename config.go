package antlr

import (
	"fmt"
	"strings"
)

// ATNConfig is one point in the nondeterministic simulation: an ATN state,
// the mode alternative that led there, the rule-invocation stack, the
// actions deferred so far, and whether the path crossed a non-greedy
// decision. All five fields participate in equality; the executor and the
// non-greedy flag must not be dropped or the DFA cache conflates states
// whose accepts behave differently.
type ATNConfig struct {
	state    *ATNState
	alt      int
	context  *PredictionContext
	executor *LexerActionExecutor

	passedThroughNonGreedyDecision bool

	cachedHash uint64
}

// newATNConfig starts a fresh configuration at a mode start alternative.
func newATNConfig(state *ATNState, alt int, context *PredictionContext) *ATNConfig {
	c := &ATNConfig{state: state, alt: alt, context: context}
	c.cachedHash = c.computeHash()
	return c
}

// derive carries c to state, keeping context and executor. The non-greedy
// flag propagates and latches when the new state is a non-greedy decision.
func (c *ATNConfig) derive(state *ATNState) *ATNConfig {
	return c.deriveWith(state, c.context, c.executor)
}

func (c *ATNConfig) deriveWithContext(state *ATNState, context *PredictionContext) *ATNConfig {
	return c.deriveWith(state, context, c.executor)
}

func (c *ATNConfig) deriveWithExecutor(state *ATNState, executor *LexerActionExecutor) *ATNConfig {
	return c.deriveWith(state, c.context, executor)
}

func (c *ATNConfig) deriveWith(state *ATNState, context *PredictionContext, executor *LexerActionExecutor) *ATNConfig {
	out := &ATNConfig{
		state:    state,
		alt:      c.alt,
		context:  context,
		executor: executor,

		passedThroughNonGreedyDecision: c.passedThroughNonGreedyDecision || (state.IsDecision() && state.NonGreedy),
	}
	out.cachedHash = out.computeHash()
	return out
}

func (c *ATNConfig) computeHash() uint64 {
	h := hashInit(7)
	h = hashUpdate(h, uint64(c.state.Number))
	h = hashUpdate(h, uint64(c.alt))
	if c.context != nil {
		h = hashUpdate(h, c.context.Hash())
	}
	h = hashUpdate(h, c.executor.hash())
	if c.passedThroughNonGreedyDecision {
		h = hashUpdate(h, 1)
	}
	return hashFinish(h, 5)
}

// State returns the ATN state of the configuration.
func (c *ATNConfig) State() *ATNState { return c.state }

// Alt returns the mode alternative of the configuration.
func (c *ATNConfig) Alt() int { return c.alt }

// Context returns the rule-invocation stack of the configuration.
func (c *ATNConfig) Context() *PredictionContext { return c.context }

// Executor returns the deferred actions accumulated on this path.
func (c *ATNConfig) Executor() *LexerActionExecutor { return c.executor }

// Hash returns the structural hash over all five fields.
func (c *ATNConfig) Hash() uint64 { return c.cachedHash }

// Equals compares all five fields.
func (c *ATNConfig) Equals(other *ATNConfig) bool {
	if c == other {
		return true
	}
	if other == nil ||
		c.state.Number != other.state.Number ||
		c.alt != other.alt ||
		c.passedThroughNonGreedyDecision != other.passedThroughNonGreedyDecision {
		return false
	}
	if !c.executor.equals(other.executor) {
		return false
	}
	switch {
	case c.context == nil:
		return other.context == nil
	case other.context == nil:
		return false
	}
	return c.context.Equals(other.context)
}

func (c *ATNConfig) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%d,%d", c.state.Number, c.alt)
	if c.context != nil && !c.context.isEmpty() {
		sb.WriteString(",[")
		sb.WriteString(c.context.String())
		sb.WriteByte(']')
	}
	if c.passedThroughNonGreedyDecision {
		sb.WriteString(",nongreedy")
	}
	if c.executor != nil {
		sb.WriteString(",exec")
	}
	sb.WriteByte(')')
	return sb.String()
}

// ConfigSet is an insertion-ordered, deduplicated set of configurations.
// Order matters: reach walks configurations in the order closure produced
// them, which is what makes alternative priority deterministic. A set
// promoted into a DFA state is frozen; adding to a frozen set panics.
type ConfigSet struct {
	configs []*ATNConfig
	lookup  map[uint64][]int

	// hasSemanticContext is set when closure traverses a predicate
	// transition; such a set must not be reachable through a static DFA
	// edge because the predicate may answer differently next scan.
	hasSemanticContext bool

	readOnly   bool
	cachedHash uint64
}

// NewConfigSet returns an empty mutable set.
func NewConfigSet() *ConfigSet {
	return &ConfigSet{lookup: make(map[uint64][]int)}
}

// Add appends config unless an equal configuration is already present.
// Reports whether the set changed.
func (s *ConfigSet) Add(config *ATNConfig) bool {
	if s.readOnly {
		panic("config set: add to read-only set")
	}
	h := config.Hash()
	for _, i := range s.lookup[h] {
		if s.configs[i].Equals(config) {
			return false
		}
	}
	s.lookup[h] = append(s.lookup[h], len(s.configs))
	s.configs = append(s.configs, config)
	return true
}

// Len returns the number of configurations.
func (s *ConfigSet) Len() int {
	return len(s.configs)
}

// Configs returns the configurations in insertion order. Callers must not
// mutate.
func (s *ConfigSet) Configs() []*ATNConfig {
	return s.configs
}

// HasSemanticContext reports whether a predicate was traversed while
// building the set.
func (s *ConfigSet) HasSemanticContext() bool {
	return s.hasSemanticContext
}

// SetHasSemanticContext records predicate traversal.
func (s *ConfigSet) SetHasSemanticContext(v bool) {
	s.hasSemanticContext = v
}

// Freeze makes the set immutable and caches its hash.
func (s *ConfigSet) Freeze() {
	if s.readOnly {
		return
	}
	s.readOnly = true
	h := hashInit(11)
	for _, c := range s.configs {
		h = hashUpdate(h, c.Hash())
	}
	s.cachedHash = hashFinish(h, len(s.configs))
}

// IsReadOnly reports whether the set has been frozen.
func (s *ConfigSet) IsReadOnly() bool {
	return s.readOnly
}

// Hash returns the structural hash over the ordered configurations.
func (s *ConfigSet) Hash() uint64 {
	if s.readOnly {
		return s.cachedHash
	}
	h := hashInit(11)
	for _, c := range s.configs {
		h = hashUpdate(h, c.Hash())
	}
	return hashFinish(h, len(s.configs))
}

// Equals compares the ordered configurations; the semantic-context marker
// and frozenness are transient and do not participate.
func (s *ConfigSet) Equals(other *ConfigSet) bool {
	if s == other {
		return true
	}
	if other == nil || len(s.configs) != len(other.configs) {
		return false
	}
	for i, c := range s.configs {
		if !c.Equals(other.configs[i]) {
			return false
		}
	}
	return true
}

func (s *ConfigSet) String() string {
	parts := make([]string, len(s.configs))
	for i, c := range s.configs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
