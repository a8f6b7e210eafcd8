package antlr

import "testing"

func TestAppendActionBuildsFromNil(t *testing.T) {
	e := appendAction(nil, NewLexerSkipAction())
	if len(e.actions) != 1 || e.actions[0].Type != LexerActionSkip {
		t.Fatalf("appendAction(nil) = %v", e.actions)
	}

	e2 := appendAction(e, NewLexerPushModeAction(3))
	if len(e2.actions) != 2 {
		t.Fatalf("len = %d, want 2", len(e2.actions))
	}
	if len(e.actions) != 1 {
		t.Fatal("append mutated the original executor")
	}
}

func TestFixOffsetBeforeMatchBindsCustomActionsOnly(t *testing.T) {
	e := NewLexerActionExecutor([]LexerAction{
		NewLexerCustomAction(0, 0),
		NewLexerSkipAction(),
	})
	fixed := e.fixOffsetBeforeMatch(4)
	if fixed == e {
		t.Fatal("executor with unbound custom action was returned unchanged")
	}
	if !fixed.actions[0].Indexed || fixed.actions[0].Offset != 4 {
		t.Fatalf("custom action not bound: %+v", fixed.actions[0])
	}
	if fixed.actions[1].Indexed {
		t.Fatal("position-independent action was bound")
	}
	if e.actions[0].Indexed {
		t.Fatal("fix-up mutated the original executor")
	}

	// A second fix-up finds nothing unbound and returns the receiver.
	if again := fixed.fixOffsetBeforeMatch(9); again != fixed {
		t.Fatal("already-bound executor was rebuilt")
	}
}

func TestFixOffsetBeforeMatchNoCustomActions(t *testing.T) {
	e := NewLexerActionExecutor([]LexerAction{NewLexerSkipAction(), NewLexerMoreAction()})
	if got := e.fixOffsetBeforeMatch(2); got != e {
		t.Fatal("executor without position-dependent actions was rebuilt")
	}
}

func TestExecutorEqualsAndHash(t *testing.T) {
	a := NewLexerActionExecutor([]LexerAction{NewLexerTypeAction(5), NewLexerPopModeAction()})
	b := NewLexerActionExecutor([]LexerAction{NewLexerTypeAction(5), NewLexerPopModeAction()})
	c := NewLexerActionExecutor([]LexerAction{NewLexerTypeAction(6)})

	if !a.equals(b) {
		t.Fatal("equal executors compare unequal")
	}
	if a.hash() != b.hash() {
		t.Fatal("equal executors hash differently")
	}
	if a.equals(c) {
		t.Fatal("different executors compare equal")
	}

	var nilExec *LexerActionExecutor
	if nilExec.hash() != 61 {
		t.Fatal("nil executor hash changed")
	}
	if nilExec.equals(a) || a.equals(nilExec) {
		t.Fatal("nil executor compared equal to non-nil")
	}
	if !nilExec.equals(nil) {
		t.Fatal("nil executor not equal to itself")
	}
}

func TestLexerActionStrings(t *testing.T) {
	tests := []struct {
		action LexerAction
		want   string
	}{
		{NewLexerSkipAction(), "skip"},
		{NewLexerMoreAction(), "more"},
		{NewLexerTypeAction(3), "type(3)"},
		{NewLexerChannelAction(1), "channel(1)"},
		{NewLexerModeAction(2), "mode(2)"},
		{NewLexerPushModeAction(2), "pushMode(2)"},
		{NewLexerPopModeAction(), "popMode"},
		{NewLexerCustomAction(1, 4), "custom(1,4)"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}
