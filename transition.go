package antlr

import (
	"fmt"
	"strconv"
)

// TransitionKind tags the variant of an ATN transition.
type TransitionKind uint8

const (
	TransitionEpsilon TransitionKind = iota + 1
	TransitionRange
	TransitionRule
	TransitionPredicate
	TransitionAtom
	TransitionAction
	TransitionSet
	TransitionNotSet
	TransitionWildcard
	TransitionPrecedence
)

var transitionKindNames = []string{
	"invalid",
	"epsilon",
	"range",
	"rule",
	"predicate",
	"atom",
	"action",
	"set",
	"not_set",
	"wildcard",
	"precedence",
}

func (k TransitionKind) String() string {
	if int(k) >= len(transitionKindNames) {
		return "invalid"
	}
	return transitionKindNames[k]
}

// Transition is one directed, labeled edge of the ATN. The meaning of the
// operand fields depends on Kind:
//
//   - Atom: Label holds the single code point
//   - Range: Label holds [lo, hi]
//   - Set, NotSet: Label holds the matched (or excluded) set
//   - Rule: FollowState, RuleIndex
//   - Predicate: RuleIndex, PredIndex, CtxDependent
//   - Action: ActionIndex
//   - Precedence: Precedence (rejected by the lexer simulator)
type Transition struct {
	Kind   TransitionKind
	Target *ATNState

	Label *IntervalSet

	FollowState *ATNState
	RuleIndex   int

	PredIndex    int
	CtxDependent bool

	ActionIndex int
	Precedence  int
}

// NewAtomTransition matches exactly the code point cp.
func NewAtomTransition(target *ATNState, cp int) Transition {
	return Transition{Kind: TransitionAtom, Target: target, Label: NewIntervalSetOf(cp, cp)}
}

// NewRangeTransition matches any code point in [lo, hi].
func NewRangeTransition(target *ATNState, lo, hi int) Transition {
	return Transition{Kind: TransitionRange, Target: target, Label: NewIntervalSetOf(lo, hi)}
}

// NewSetTransition matches any member of set.
func NewSetTransition(target *ATNState, set *IntervalSet) Transition {
	if set == nil {
		set = NewIntervalSetOf(TokenInvalidType, TokenInvalidType)
	}
	return Transition{Kind: TransitionSet, Target: target, Label: set}
}

// NewNotSetTransition matches any in-vocabulary code point not in set.
func NewNotSetTransition(target *ATNState, set *IntervalSet) Transition {
	t := NewSetTransition(target, set)
	t.Kind = TransitionNotSet
	return t
}

// NewEpsilonTransition consumes no input.
func NewEpsilonTransition(target *ATNState) Transition {
	return Transition{Kind: TransitionEpsilon, Target: target}
}

// NewRuleTransition invokes the rule starting at target and resumes at
// followState when the rule's stop state is reached.
func NewRuleTransition(target *ATNState, ruleIndex int, followState *ATNState) Transition {
	return Transition{Kind: TransitionRule, Target: target, RuleIndex: ruleIndex, FollowState: followState}
}

// NewPredicateTransition gates the path on sempred(ruleIndex, predIndex).
func NewPredicateTransition(target *ATNState, ruleIndex, predIndex int, ctxDependent bool) Transition {
	return Transition{Kind: TransitionPredicate, Target: target, RuleIndex: ruleIndex, PredIndex: predIndex, CtxDependent: ctxDependent}
}

// NewActionTransition defers lexerActions[actionIndex] to token emit time.
func NewActionTransition(target *ATNState, actionIndex int) Transition {
	return Transition{Kind: TransitionAction, Target: target, ActionIndex: actionIndex}
}

// NewWildcardTransition matches any in-vocabulary code point.
func NewWildcardTransition(target *ATNState) Transition {
	return Transition{Kind: TransitionWildcard, Target: target}
}

// NewPrecedenceTransition is only meaningful in parser ATNs; the lexer
// simulator rejects it.
func NewPrecedenceTransition(target *ATNState, precedence int) Transition {
	return Transition{Kind: TransitionPrecedence, Target: target, Precedence: precedence}
}

// NewCodePointTransition matches one code point, choosing the atom or set
// representation depending on whether cp is in a supplementary plane.
func NewCodePointTransition(target *ATNState, cp int) Transition {
	if isSupplementary(cp) {
		return NewSetTransition(target, NewIntervalSetOf(cp, cp))
	}
	return NewAtomTransition(target, cp)
}

// NewCodePointRangeTransition matches [lo, hi], choosing range or set
// representation the same way as NewCodePointTransition.
func NewCodePointRangeTransition(target *ATNState, lo, hi int) Transition {
	if isSupplementary(lo) || isSupplementary(hi) {
		return NewSetTransition(target, NewIntervalSetOf(lo, hi))
	}
	return NewRangeTransition(target, lo, hi)
}

func isSupplementary(cp int) bool {
	return cp > 0xFFFF
}

// IsEpsilon reports whether the transition consumes no input symbol.
func (t Transition) IsEpsilon() bool {
	switch t.Kind {
	case TransitionEpsilon, TransitionRule, TransitionPredicate, TransitionAction, TransitionPrecedence:
		return true
	}
	return false
}

// Matches reports whether the transition accepts symbol given the
// vocabulary bounds.
func (t Transition) Matches(symbol, minVocab, maxVocab int) bool {
	switch t.Kind {
	case TransitionAtom, TransitionRange, TransitionSet:
		return t.Label.Contains(symbol)
	case TransitionNotSet:
		return symbol >= minVocab && symbol <= maxVocab && !t.Label.Contains(symbol)
	case TransitionWildcard:
		return symbol >= minVocab && symbol <= maxVocab
	}
	return false
}

func (t Transition) String() string {
	switch t.Kind {
	case TransitionAtom, TransitionRange, TransitionSet:
		return t.Label.String()
	case TransitionNotSet:
		return "~" + t.Label.String()
	case TransitionWildcard:
		return "."
	case TransitionRule:
		return "rule_" + strconv.Itoa(t.RuleIndex)
	case TransitionPredicate:
		return fmt.Sprintf("pred_%d:%d", t.RuleIndex, t.PredIndex)
	case TransitionAction:
		return "action_" + strconv.Itoa(t.ActionIndex)
	case TransitionPrecedence:
		return strconv.Itoa(t.Precedence) + " >= _p"
	}
	return t.Kind.String()
}
