// Package grammars holds hand-built lexer grammars used to exercise the
// runtime, and the small ATN construction helper they share. Each grammar
// file declares its token types and a New*Lexer constructor, mirroring
// what a grammar compiler would emit.
package grammars

import (
	antlr "github.com/bhamiltoncx/antlr4"
)

// Builder assembles a lexer ATN one rule at a time. Rules attach to the
// mode they were declared in; fragment rules attach to no mode and are
// reached through Call.
type Builder struct {
	states     []*antlr.ATNState
	modes      []*antlr.ATNState
	ruleStarts []*antlr.ATNState
	ruleStops  []*antlr.ATNState
	ruleTypes  []int
	actions    []antlr.LexerAction
}

// NewBuilder returns a builder with no modes or rules.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) state(kind antlr.ATNStateKind, ruleIndex int) *antlr.ATNState {
	s := &antlr.ATNState{
		Number:    len(b.states),
		RuleIndex: ruleIndex,
		Kind:      kind,
	}
	b.states = append(b.states, s)
	return s
}

// Mode declares the next lexer mode and returns its index. The first call
// declares the default mode.
func (b *Builder) Mode() int {
	s := b.state(antlr.StateTokenStart, -1)
	b.modes = append(b.modes, s)
	return len(b.modes) - 1
}

// Rule starts a token rule in the given mode committing tokenType on
// accept.
func (b *Builder) Rule(mode, tokenType int) *RuleBuilder {
	r := b.newRule(tokenType)
	b.modes[mode].AddTransition(antlr.NewEpsilonTransition(r.start))
	return r
}

// Fragment starts a rule reachable only through Call from other rules.
func (b *Builder) Fragment() *RuleBuilder {
	return b.newRule(antlr.TokenInvalidType)
}

func (b *Builder) newRule(tokenType int) *RuleBuilder {
	ruleIndex := len(b.ruleStarts)
	start := b.state(antlr.StateRuleStart, ruleIndex)
	stop := b.state(antlr.StateRuleStop, ruleIndex)
	b.ruleStarts = append(b.ruleStarts, start)
	b.ruleStops = append(b.ruleStops, stop)
	b.ruleTypes = append(b.ruleTypes, tokenType)
	return &RuleBuilder{b: b, ruleIndex: ruleIndex, start: start, stop: stop, cur: start}
}

// Build hands the finished graph to the runtime. The builder must not be
// used afterwards.
func (b *Builder) Build() *antlr.ATN {
	return antlr.NewATN(b.states, b.modes, b.ruleStarts, b.ruleStops, b.ruleTypes, b.actions)
}

// RuleBuilder appends elements to one rule, left to right.
type RuleBuilder struct {
	b         *Builder
	ruleIndex int
	start     *antlr.ATNState
	stop      *antlr.ATNState
	cur       *antlr.ATNState
}

// Index returns the rule's index, usable with Call.
func (r *RuleBuilder) Index() int {
	return r.ruleIndex
}

func (r *RuleBuilder) step(t func(target *antlr.ATNState) antlr.Transition) *RuleBuilder {
	next := r.b.state(antlr.StateBasic, r.ruleIndex)
	r.cur.AddTransition(t(next))
	r.cur = next
	return r
}

// Atom matches exactly cp.
func (r *RuleBuilder) Atom(cp rune) *RuleBuilder {
	return r.step(func(target *antlr.ATNState) antlr.Transition {
		return antlr.NewCodePointTransition(target, int(cp))
	})
}

// Literal matches the code points of s in sequence.
func (r *RuleBuilder) Literal(s string) *RuleBuilder {
	for _, cp := range s {
		r.Atom(cp)
	}
	return r
}

// Range matches any code point in [lo, hi].
func (r *RuleBuilder) Range(lo, hi rune) *RuleBuilder {
	return r.step(func(target *antlr.ATNState) antlr.Transition {
		return antlr.NewCodePointRangeTransition(target, int(lo), int(hi))
	})
}

// Set matches any member of set.
func (r *RuleBuilder) Set(set *antlr.IntervalSet) *RuleBuilder {
	return r.step(func(target *antlr.ATNState) antlr.Transition {
		return antlr.NewSetTransition(target, set)
	})
}

// NotSet matches any in-vocabulary code point not in set.
func (r *RuleBuilder) NotSet(set *antlr.IntervalSet) *RuleBuilder {
	return r.step(func(target *antlr.ATNState) antlr.Transition {
		return antlr.NewNotSetTransition(target, set)
	})
}

// Wildcard matches any in-vocabulary code point.
func (r *RuleBuilder) Wildcard() *RuleBuilder {
	return r.step(func(target *antlr.ATNState) antlr.Transition {
		return antlr.NewWildcardTransition(target)
	})
}

// Pred gates the rule on sempred(ruleIndex, predIndex).
func (r *RuleBuilder) Pred(predIndex int) *RuleBuilder {
	ruleIndex := r.ruleIndex
	return r.step(func(target *antlr.ATNState) antlr.Transition {
		return antlr.NewPredicateTransition(target, ruleIndex, predIndex, false)
	})
}

// Command defers a lexer action (skip, more, pushMode, ...) to token-emit
// time.
func (r *RuleBuilder) Command(action antlr.LexerAction) *RuleBuilder {
	actionIndex := len(r.b.actions)
	r.b.actions = append(r.b.actions, action)
	return r.step(func(target *antlr.ATNState) antlr.Transition {
		return antlr.NewActionTransition(target, actionIndex)
	})
}

// Call invokes another rule, usually a fragment, and resumes here.
func (r *RuleBuilder) Call(callee *RuleBuilder) *RuleBuilder {
	next := r.b.state(antlr.StateBasic, r.ruleIndex)
	r.cur.AddTransition(antlr.NewRuleTransition(callee.start, callee.ruleIndex, next))
	r.cur = next
	return r
}

// Plus matches body one or more times, greedily.
func (r *RuleBuilder) Plus(body func(*RuleBuilder)) *RuleBuilder {
	entry := r.b.state(antlr.StatePlusBlockStart, r.ruleIndex)
	r.cur.AddTransition(antlr.NewEpsilonTransition(entry))

	sub := &RuleBuilder{b: r.b, ruleIndex: r.ruleIndex, start: entry, stop: r.stop, cur: entry}
	body(sub)

	loopBack := r.b.state(antlr.StatePlusLoopBack, r.ruleIndex)
	loopEnd := r.b.state(antlr.StateLoopEnd, r.ruleIndex)
	sub.cur.AddTransition(antlr.NewEpsilonTransition(loopBack))
	loopBack.AddTransition(antlr.NewEpsilonTransition(entry))
	loopBack.AddTransition(antlr.NewEpsilonTransition(loopEnd))
	r.cur = loopEnd
	return r
}

// Star matches body zero or more times, greedily.
func (r *RuleBuilder) Star(body func(*RuleBuilder)) *RuleBuilder {
	return r.star(body, false)
}

// NonGreedyStar matches body zero or more times, preferring the shortest
// match that lets the rest of the rule succeed.
func (r *RuleBuilder) NonGreedyStar(body func(*RuleBuilder)) *RuleBuilder {
	return r.star(body, true)
}

func (r *RuleBuilder) star(body func(*RuleBuilder), nonGreedy bool) *RuleBuilder {
	entry := r.b.state(antlr.StateStarLoopEntry, r.ruleIndex)
	entry.NonGreedy = nonGreedy
	blockStart := r.b.state(antlr.StateStarBlockStart, r.ruleIndex)
	loopEnd := r.b.state(antlr.StateLoopEnd, r.ruleIndex)

	r.cur.AddTransition(antlr.NewEpsilonTransition(entry))
	if nonGreedy {
		// Exit before body: closure then discovers the shortest
		// continuation first, and once it accepts, the body
		// configurations that crossed this decision are suppressed.
		entry.AddTransition(antlr.NewEpsilonTransition(loopEnd))
		entry.AddTransition(antlr.NewEpsilonTransition(blockStart))
	} else {
		entry.AddTransition(antlr.NewEpsilonTransition(blockStart))
		entry.AddTransition(antlr.NewEpsilonTransition(loopEnd))
	}

	sub := &RuleBuilder{b: r.b, ruleIndex: r.ruleIndex, start: blockStart, stop: r.stop, cur: blockStart}
	body(sub)

	loopBack := r.b.state(antlr.StateStarLoopBack, r.ruleIndex)
	sub.cur.AddTransition(antlr.NewEpsilonTransition(loopBack))
	loopBack.AddTransition(antlr.NewEpsilonTransition(entry))
	r.cur = loopEnd
	return r
}

// Done closes the rule with an epsilon into its stop state.
func (r *RuleBuilder) Done() {
	r.cur.AddTransition(antlr.NewEpsilonTransition(r.stop))
}
