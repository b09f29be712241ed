package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp) // must not panic on nil map
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.SetPointer(300, 200)
	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear should drop actions")
	}
	if !f.HasPointer || f.Pointer != (Point{X: 300, Y: 200}) {
		t.Errorf("Clear should keep pointer, got %+v (has=%v)", f.Pointer, f.HasPointer)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.SetPointer(1, 2)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionDown) {
		t.Error("clone should be independent of the original")
	}
	if c.Pointer != (Point{X: 1, Y: 2}) {
		t.Errorf("clone pointer = %+v", c.Pointer)
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
