package slidingmenu

import (
	"testing"
	"time"
)

func TestTransition_ShouldReachTarget(t *testing.T) {
	var tr transition
	now := time.Unix(1700000000, 0)

	tr.set(1)
	if !tr.Animating() {
		t.Fatalf("transition should be running after set")
	}
	if !tr.update(now) {
		t.Fatalf("first frame should keep the transition running")
	}
	if v := tr.Value(); v != 0 {
		t.Errorf("first frame should not move the value, got %v", v)
	}

	now = now.Add(transitionDuration / 2)
	if !tr.update(now) {
		t.Fatalf("transition should still run halfway")
	}
	if v := tr.Value(); v <= 0 || v >= 1 {
		t.Errorf("halfway value expected in (0, 1), got %v", v)
	}

	now = now.Add(transitionDuration)
	if tr.update(now) {
		t.Errorf("transition should be finished")
	}
	if v := tr.Value(); v != 1 {
		t.Errorf("final value expected to be 1, got %v", v)
	}
	if tr.update(now.Add(time.Second)) {
		t.Errorf("finished transition should not request more frames")
	}
}

func TestTransition_ShouldReverseFromCurrentValue(t *testing.T) {
	var tr transition
	now := time.Unix(1700000000, 0)

	tr.set(1)
	tr.update(now)
	now = now.Add(transitionDuration / 2)
	tr.update(now)
	mid := tr.Value()

	tr.set(0)
	tr.update(now)
	if v := tr.Value(); v != mid {
		t.Errorf("reversing should start from %v, got %v", mid, v)
	}
	now = now.Add(transitionDuration)
	tr.update(now)
	if v := tr.Value(); v != 0 {
		t.Errorf("reversed transition expected to end at 0, got %v", v)
	}
}

func TestTransition_ShouldJumpWithoutClock(t *testing.T) {
	var tr transition
	tr.set(1)
	if tr.update(time.Time{}) {
		t.Errorf("a zero frame time should finish the transition")
	}
	if v := tr.Value(); v != 1 {
		t.Errorf("expected 1, got %v", v)
	}
}
