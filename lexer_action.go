package antlr

import (
	"fmt"
	"strconv"
)

// LexerActionType tags the variant of a deferred lexer command.
type LexerActionType uint8

const (
	LexerActionChannel LexerActionType = iota
	LexerActionCustom
	LexerActionMode
	LexerActionMore
	LexerActionPopMode
	LexerActionPushMode
	LexerActionSkip
	LexerActionSetType
)

// LexerAction is one deferred side effect recorded while simulating a rule
// and replayed at token-emit time. Operands by Type:
//
//   - Channel: A is the channel
//   - Custom: A is the rule index, B the action index
//   - Mode, PushMode: A is the mode
//   - Type: A is the token type
//
// Custom actions are position-dependent: before replay they are bound to a
// fixed offset from the token start (Indexed set, Offset holding the bound
// offset) so the executor can seek the input to the point where the action
// appeared in the rule.
type LexerAction struct {
	Type    LexerActionType
	A, B    int
	Offset  int
	Indexed bool
}

// NewLexerSkipAction discards the current token.
func NewLexerSkipAction() LexerAction { return LexerAction{Type: LexerActionSkip} }

// NewLexerMoreAction carries the matched text into the next token.
func NewLexerMoreAction() LexerAction { return LexerAction{Type: LexerActionMore} }

// NewLexerTypeAction overrides the emitted token type.
func NewLexerTypeAction(tokenType int) LexerAction {
	return LexerAction{Type: LexerActionSetType, A: tokenType}
}

// NewLexerChannelAction routes the token to a channel.
func NewLexerChannelAction(channel int) LexerAction {
	return LexerAction{Type: LexerActionChannel, A: channel}
}

// NewLexerModeAction switches the lexer mode.
func NewLexerModeAction(mode int) LexerAction {
	return LexerAction{Type: LexerActionMode, A: mode}
}

// NewLexerPushModeAction pushes the current mode and enters mode.
func NewLexerPushModeAction(mode int) LexerAction {
	return LexerAction{Type: LexerActionPushMode, A: mode}
}

// NewLexerPopModeAction restores the previously pushed mode.
func NewLexerPopModeAction() LexerAction { return LexerAction{Type: LexerActionPopMode} }

// NewLexerCustomAction invokes recognizer.Action(ruleIndex, actionIndex).
func NewLexerCustomAction(ruleIndex, actionIndex int) LexerAction {
	return LexerAction{Type: LexerActionCustom, A: ruleIndex, B: actionIndex}
}

// isPositionDependent reports whether replay must happen at the input
// position where the action was recorded.
func (a LexerAction) isPositionDependent() bool {
	return a.Type == LexerActionCustom
}

func (a LexerAction) execute(lexer Lexer) {
	switch a.Type {
	case LexerActionSkip:
		lexer.Skip()
	case LexerActionMore:
		lexer.More()
	case LexerActionSetType:
		lexer.SetType(a.A)
	case LexerActionChannel:
		lexer.SetChannel(a.A)
	case LexerActionMode:
		lexer.SetMode(a.A)
	case LexerActionPushMode:
		lexer.PushMode(a.A)
	case LexerActionPopMode:
		lexer.PopMode()
	case LexerActionCustom:
		lexer.Action(a.A, a.B)
	}
}

func (a LexerAction) hash() uint64 {
	h := hashInit(uint64(a.Type))
	h = hashUpdate(h, uint64(a.A))
	h = hashUpdate(h, uint64(a.B))
	h = hashUpdate(h, uint64(a.Offset))
	if a.Indexed {
		h = hashUpdate(h, 1)
	}
	return hashFinish(h, 4)
}

func (a LexerAction) String() string {
	switch a.Type {
	case LexerActionSkip:
		return "skip"
	case LexerActionMore:
		return "more"
	case LexerActionSetType:
		return "type(" + strconv.Itoa(a.A) + ")"
	case LexerActionChannel:
		return "channel(" + strconv.Itoa(a.A) + ")"
	case LexerActionMode:
		return "mode(" + strconv.Itoa(a.A) + ")"
	case LexerActionPushMode:
		return "pushMode(" + strconv.Itoa(a.A) + ")"
	case LexerActionPopMode:
		return "popMode"
	case LexerActionCustom:
		return fmt.Sprintf("custom(%d,%d)", a.A, a.B)
	}
	return "invalid"
}

// LexerActionExecutor replays an ordered list of lexer actions once the
// winning accept has been committed and the input repositioned. Executors
// are immutable; append and offset fix-up return new values.
type LexerActionExecutor struct {
	actions    []LexerAction
	cachedHash uint64
}

// NewLexerActionExecutor wraps actions. The slice is owned by the executor.
func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	e := &LexerActionExecutor{actions: actions}
	h := hashInit(57)
	for _, a := range actions {
		h = hashUpdate(h, a.hash())
	}
	e.cachedHash = hashFinish(h, len(actions))
	return e
}

// appendAction returns an executor running e's actions followed by action.
// A nil e acts as the empty executor.
func appendAction(e *LexerActionExecutor, action LexerAction) *LexerActionExecutor {
	if e == nil {
		return NewLexerActionExecutor([]LexerAction{action})
	}
	actions := make([]LexerAction, len(e.actions)+1)
	copy(actions, e.actions)
	actions[len(e.actions)] = action
	return NewLexerActionExecutor(actions)
}

// fixOffsetBeforeMatch binds every unbound position-dependent action to
// offset (relative to the token start). Returns e unchanged when nothing
// needs binding.
func (e *LexerActionExecutor) fixOffsetBeforeMatch(offset int) *LexerActionExecutor {
	var updated []LexerAction
	for i, a := range e.actions {
		if a.isPositionDependent() && !a.Indexed {
			if updated == nil {
				updated = make([]LexerAction, len(e.actions))
				copy(updated, e.actions)
			}
			updated[i].Indexed = true
			updated[i].Offset = offset
		}
	}
	if updated == nil {
		return e
	}
	return NewLexerActionExecutor(updated)
}

// execute replays the actions in order. The input must be positioned one
// past the end of the matched token; it is restored there before returning.
func (e *LexerActionExecutor) execute(lexer Lexer, input CharStream, startIndex int) {
	requiresSeek := false
	stopIndex := input.Index()
	defer func() {
		if requiresSeek {
			input.Seek(stopIndex)
		}
	}()
	for _, a := range e.actions {
		if a.Indexed {
			input.Seek(startIndex + a.Offset)
			requiresSeek = startIndex+a.Offset != stopIndex
		} else if a.isPositionDependent() {
			input.Seek(stopIndex)
			requiresSeek = false
		}
		a.execute(lexer)
	}
}

func (e *LexerActionExecutor) hash() uint64 {
	if e == nil {
		return 61
	}
	return e.cachedHash
}

func (e *LexerActionExecutor) equals(other *LexerActionExecutor) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if e.cachedHash != other.cachedHash || len(e.actions) != len(other.actions) {
		return false
	}
	for i, a := range e.actions {
		if a != other.actions[i] {
			return false
		}
	}
	return true
}
