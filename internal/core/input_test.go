package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame("w", "left")
	f.Press("w")

	got := f.Pressed()
	want := []Key{"w", "left", "w"}
	if len(got) != len(want) {
		t.Fatalf("Pressed() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pressed()[%d] = %q, expected %q", i, got[i], want[i])
		}
	}

	if !f.Has("left") || f.Has("down") {
		t.Error("Has() reports wrong membership")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame("p")
	clone := f.Clone()
	f.Clear()

	if !f.Empty() || f.Has("p") {
		t.Error("Clear() should empty the frame")
	}
	if clone.Empty() || !clone.Has("p") {
		t.Error("Clone() should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has("x") {
		t.Error("zero frame should have no keys")
	}
	f.Press("x")
	if !f.Has("x") {
		t.Error("zero frame should accept presses")
	}
}
