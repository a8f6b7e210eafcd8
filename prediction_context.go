package antlr

import (
	"strconv"
	"strings"
)

// emptyReturnState marks a context path that returns to the grammar root;
// popping it leaves the empty context.
const emptyReturnState = 0x7FFFFFFF

type predictionContextKind uint8

const (
	contextEmpty predictionContextKind = iota
	contextSingleton
	contextArray
)

// PredictionContext is a persistent stack of ATN return states. Nodes are
// immutable and structurally shared; two contexts are interchangeable iff
// they are structurally equal. The array variant keeps its return states
// sorted so merged contexts stay canonical.
type PredictionContext struct {
	kind         predictionContextKind
	cachedHash   uint64
	parents      []*PredictionContext
	returnStates []int
}

// EmptyPredictionContext is the context of a token matched from a mode
// start state with no rule invocations on the stack.
var EmptyPredictionContext = &PredictionContext{
	kind:         contextEmpty,
	cachedHash:   hashFinish(hashInit(1), 0),
	returnStates: []int{emptyReturnState},
}

// SingletonPredictionContext pushes returnState onto parent. A nil parent
// is treated as empty; pushing emptyReturnState onto the empty context
// returns the empty context itself.
func SingletonPredictionContext(parent *PredictionContext, returnState int) *PredictionContext {
	if returnState == emptyReturnState && (parent == nil || parent.isEmpty()) {
		return EmptyPredictionContext
	}
	if parent == nil {
		parent = EmptyPredictionContext
	}
	return &PredictionContext{
		kind:         contextSingleton,
		cachedHash:   hashContext([]*PredictionContext{parent}, []int{returnState}),
		parents:      []*PredictionContext{parent},
		returnStates: []int{returnState},
	}
}

func arrayPredictionContext(parents []*PredictionContext, returnStates []int) *PredictionContext {
	return &PredictionContext{
		kind:         contextArray,
		cachedHash:   hashContext(parents, returnStates),
		parents:      parents,
		returnStates: returnStates,
	}
}

func hashContext(parents []*PredictionContext, returnStates []int) uint64 {
	h := hashInit(1)
	for _, p := range parents {
		if p == nil {
			h = hashUpdate(h, 0)
		} else {
			h = hashUpdate(h, p.cachedHash)
		}
	}
	for _, r := range returnStates {
		h = hashUpdate(h, uint64(r))
	}
	return hashFinish(h, len(parents)+len(returnStates))
}

func (c *PredictionContext) isEmpty() bool {
	return c.kind == contextEmpty
}

// hasEmptyPath reports whether some path through the context reaches the
// grammar root without further returns.
func (c *PredictionContext) hasEmptyPath() bool {
	return c.returnStates[len(c.returnStates)-1] == emptyReturnState
}

// length is the number of (parent, returnState) pairs at this node.
func (c *PredictionContext) length() int {
	return len(c.returnStates)
}

func (c *PredictionContext) getReturnState(i int) int {
	return c.returnStates[i]
}

// GetParent returns the i-th parent, nil for the empty path.
func (c *PredictionContext) GetParent(i int) *PredictionContext {
	if c.kind == contextEmpty {
		return nil
	}
	return c.parents[i]
}

// Hash returns the structural hash, cached at construction.
func (c *PredictionContext) Hash() uint64 {
	return c.cachedHash
}

// Equals reports structural equality.
func (c *PredictionContext) Equals(other *PredictionContext) bool {
	if c == other {
		return true
	}
	if other == nil || c.kind != other.kind || c.cachedHash != other.cachedHash {
		return false
	}
	if len(c.returnStates) != len(other.returnStates) {
		return false
	}
	for i, r := range c.returnStates {
		if r != other.returnStates[i] {
			return false
		}
	}
	for i, p := range c.parents {
		if p == nil {
			if other.parents[i] != nil {
				return false
			}
			continue
		}
		if !p.Equals(other.parents[i]) {
			return false
		}
	}
	return true
}

func (c *PredictionContext) String() string {
	if c.isEmpty() {
		return "$"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range c.returnStates {
		if i > 0 {
			sb.WriteByte(',')
		}
		if r == emptyReturnState {
			sb.WriteByte('$')
			continue
		}
		sb.WriteString(strconv.Itoa(r))
		if c.parents[i] != nil && !c.parents[i].isEmpty() {
			sb.WriteByte(' ')
			sb.WriteString(c.parents[i].String())
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// merge combines two contexts that arrived at the same ATN state through
// different call stacks, producing the minimal context covering both.
func merge(a, b *PredictionContext) *PredictionContext {
	if a == b || a.Equals(b) {
		return a
	}
	if a.isEmpty() || b.isEmpty() {
		return mergeRoot(a, b)
	}
	if a.kind == contextSingleton && b.kind == contextSingleton {
		return mergeSingletons(a, b)
	}
	return mergeArrays(a, b)
}

// mergeRoot handles merges involving the empty context: the result must
// cover the empty path, so the other side collapses into a node that also
// carries emptyReturnState.
func mergeRoot(a, b *PredictionContext) *PredictionContext {
	if a.isEmpty() && b.isEmpty() {
		return EmptyPredictionContext
	}
	if a.isEmpty() {
		a, b = b, a
	}
	// a is non-empty, b is empty.
	parents := make([]*PredictionContext, 0, a.length()+1)
	returnStates := make([]int, 0, a.length()+1)
	for i := 0; i < a.length(); i++ {
		if a.getReturnState(i) == emptyReturnState {
			continue
		}
		parents = append(parents, a.GetParent(i))
		returnStates = append(returnStates, a.getReturnState(i))
	}
	parents = append(parents, nil)
	returnStates = append(returnStates, emptyReturnState)
	return arrayPredictionContext(parents, returnStates)
}

func mergeSingletons(a, b *PredictionContext) *PredictionContext {
	ra, rb := a.getReturnState(0), b.getReturnState(0)
	if ra == rb {
		parent := merge(a.GetParent(0), b.GetParent(0))
		return SingletonPredictionContext(parent, ra)
	}
	if ra > rb {
		a, b = b, a
		ra, rb = rb, ra
	}
	return arrayPredictionContext(
		[]*PredictionContext{a.GetParent(0), b.GetParent(0)},
		[]int{ra, rb},
	)
}

// mergeArrays walks both sorted return-state lists, merging parents of
// equal return states and interleaving the rest.
func mergeArrays(a, b *PredictionContext) *PredictionContext {
	var parents []*PredictionContext
	var returnStates []int
	i, j := 0, 0
	for i < a.length() && j < b.length() {
		ra, rb := a.getReturnState(i), b.getReturnState(j)
		switch {
		case ra == rb:
			pa, pb := a.GetParent(i), b.GetParent(j)
			if pa == nil || pb == nil {
				if pa != pb {
					panic("prediction context: mismatched empty-path parents")
				}
				parents = append(parents, pa)
			} else if pa.Equals(pb) {
				parents = append(parents, pa)
			} else {
				parents = append(parents, merge(pa, pb))
			}
			returnStates = append(returnStates, ra)
			i++
			j++
		case ra < rb:
			parents = append(parents, a.GetParent(i))
			returnStates = append(returnStates, ra)
			i++
		default:
			parents = append(parents, b.GetParent(j))
			returnStates = append(returnStates, rb)
			j++
		}
	}
	for ; i < a.length(); i++ {
		parents = append(parents, a.GetParent(i))
		returnStates = append(returnStates, a.getReturnState(i))
	}
	for ; j < b.length(); j++ {
		parents = append(parents, b.GetParent(j))
		returnStates = append(returnStates, b.getReturnState(j))
	}
	if len(returnStates) == 1 {
		return SingletonPredictionContext(parents[0], returnStates[0])
	}
	return arrayPredictionContext(parents, returnStates)
}

// PredictionContextCache hash-conses contexts so structurally equal stacks
// share one node. The cache belongs to a single simulator; sharing across
// simulators requires external synchronization.
type PredictionContextCache struct {
	entries map[uint64][]*PredictionContext
}

// NewPredictionContextCache returns an empty cache.
func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{entries: make(map[uint64][]*PredictionContext)}
}

// Add returns the canonical node equal to ctx, adding it if absent.
func (c *PredictionContextCache) Add(ctx *PredictionContext) *PredictionContext {
	if ctx.isEmpty() {
		return EmptyPredictionContext
	}
	for _, existing := range c.entries[ctx.cachedHash] {
		if existing.Equals(ctx) {
			return existing
		}
	}
	c.entries[ctx.cachedHash] = append(c.entries[ctx.cachedHash], ctx)
	return ctx
}

// Len returns the number of interned contexts.
func (c *PredictionContextCache) Len() int {
	n := 0
	for _, bucket := range c.entries {
		n += len(bucket)
	}
	return n
}
