package slidingmenu

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transitionDuration is the time a full open or close transition takes.
const transitionDuration = 250 * time.Millisecond

// transition eases a progress value in [0, 1] towards its target.
// The drawer offset and the overlay opacity are both derived from it.
type transition struct {
	tween  *gween.Tween
	value  float32
	target float32
	last   time.Time
}

// set retargets the transition. A transition interrupted halfway
// continues from the current value and takes proportionally less time.
func (t *transition) set(target float32) {
	if target == t.target {
		return
	}
	t.target = target
	span := target - t.value
	if span < 0 {
		span = -span
	}
	if span == 0 {
		t.tween = nil
		return
	}
	d := float32(transitionDuration.Seconds()) * span
	t.tween = gween.New(t.value, target, d, ease.OutCubic)
	t.last = time.Time{}
}

// update advances the transition to now and reports whether it's still running.
func (t *transition) update(now time.Time) bool {
	if t.tween == nil {
		return false
	}
	if now.IsZero() {
		t.finish()
		return false
	}
	// The first frame after set only records the start time.
	if t.last.IsZero() {
		t.last = now
		return true
	}
	dt := now.Sub(t.last)
	t.last = now
	v, done := t.tween.Update(float32(dt.Seconds()))
	if done {
		t.finish()
		return false
	}
	t.value = v
	return true
}

func (t *transition) finish() {
	t.tween = nil
	t.value = t.target
}

// Value returns the current progress.
func (t *transition) Value() float32 {
	return t.value
}

// Animating reports whether a transition is in flight.
func (t *transition) Animating() bool {
	return t.tween != nil
}
