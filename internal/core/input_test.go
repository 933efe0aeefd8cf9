package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set(ActionJump) should be visible through Has")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestEdgeLatchFiresOncePerPress(t *testing.T) {
	var l EdgeLatch

	held := NewInputFrame()
	held.Set(ActionJump)
	released := NewInputFrame()

	sequence := []struct {
		in   InputFrame
		want bool
	}{
		{held, true},      // press
		{held, false},     // still held
		{held, false},     // still held
		{released, false}, // release
		{held, true},      // press again
	}

	for i, step := range sequence {
		got := l.Latch(step.in).Has(ActionJump)
		if got != step.want {
			t.Errorf("tick %d: jump edge = %v, expected %v", i, got, step.want)
		}
	}
}

func TestEdgeLatchIndependentActions(t *testing.T) {
	var l EdgeLatch

	first := NewInputFrame()
	first.Set(ActionJump)
	l.Latch(first)

	second := NewInputFrame()
	second.Set(ActionJump)
	second.Set(ActionBuy)
	out := l.Latch(second)

	if out.Has(ActionJump) {
		t.Error("held jump should not fire again")
	}
	if !out.Has(ActionBuy) {
		t.Error("newly pressed buy should fire")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
