package core

import "testing"

func TestInputFrameCountsRepeatedPresses(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	if !f.Has(ActionLeft) {
		t.Fatal("Has(Left) should be true")
	}
	if f.Count(ActionLeft) != 2 {
		t.Errorf("Count(Left) = %d, expected 2", f.Count(ActionLeft))
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) should be false")
	}

	expected := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(f.Order) != len(expected) {
		t.Fatalf("Order = %v, expected %v", f.Order, expected)
	}
	for i, a := range expected {
		if f.Order[i] != a {
			t.Errorf("Order[%d] = %v, expected %v", i, f.Order[i], a)
		}
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionDown) || len(f.Order) != 0 {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionDown) || len(clone.Order) != 1 {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) || f.Count(ActionPause) != 0 {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotate.String() != "Rotate" {
		t.Errorf("ActionRotate.String() = %q", ActionRotate.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
