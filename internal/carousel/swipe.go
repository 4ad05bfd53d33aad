package carousel

import (
	"math"
	"time"
)

// DefaultSwipeThreshold is the minimum swipe power that counts as a
// deliberate page turn.
const DefaultSwipeThreshold = 10000

// Power is the displacement-times-velocity score of a drag gesture.
func Power(offset, velocity float64) float64 {
	return math.Abs(offset) * velocity
}

// Swipe converts a finished drag into at most one navigation. A strongly
// negative power (flung left) moves forward, a strongly positive one moves
// back. It reports whether the index changed.
func (r *Rotator[T]) Swipe(offset, velocity, threshold float64) bool {
	p := Power(offset, velocity)
	var delta int
	switch {
	case p < -threshold:
		delta = 1
	case p > threshold:
		delta = -1
	default:
		return false
	}
	r.mu.Lock()
	ch, ok := r.stepLocked(delta, CauseSwipe)
	r.mu.Unlock()
	if ok {
		r.notify(ch)
	}
	return ok
}

// velocityWindow bounds the samples used to estimate release velocity.
const velocityWindow = 100 * time.Millisecond

type dragSample struct {
	x  float64
	at time.Time
}

// DragTracker accumulates pointer samples for one drag gesture and reports
// the offset and release velocity in pixels.
type DragTracker struct {
	pxPerCell float64
	active    bool
	origin    float64
	samples   []dragSample
}

// NewDragTracker returns a tracker converting terminal columns to pixels at
// pxPerCell. Non-positive values fall back to 1.
func NewDragTracker(pxPerCell float64) *DragTracker {
	if pxPerCell <= 0 {
		pxPerCell = 1
	}
	return &DragTracker{pxPerCell: pxPerCell}
}

// Active reports whether a drag is in progress.
func (d *DragTracker) Active() bool { return d.active }

// Press starts a drag at column x.
func (d *DragTracker) Press(x int, at time.Time) {
	d.active = true
	d.origin = float64(x) * d.pxPerCell
	d.samples = append(d.samples[:0], dragSample{x: d.origin, at: at})
}

// Move records an intermediate sample. Ignored when no drag is active.
func (d *DragTracker) Move(x int, at time.Time) {
	if !d.active {
		return
	}
	d.samples = append(d.samples, dragSample{x: float64(x) * d.pxPerCell, at: at})
	d.trim(at)
}

// Offset is the current displacement from the press point.
func (d *DragTracker) Offset() float64 {
	if !d.active || len(d.samples) == 0 {
		return 0
	}
	return d.samples[len(d.samples)-1].x - d.origin
}

// Release ends the drag at column x and returns the total offset and the
// velocity over the trailing window, both in pixels (per second).
func (d *DragTracker) Release(x int, at time.Time) (offset, velocity float64) {
	if !d.active {
		return 0, 0
	}
	d.Move(x, at)
	d.active = false

	last := d.samples[len(d.samples)-1]
	first := d.samples[0]
	offset = last.x - d.origin
	if dt := last.at.Sub(first.at).Seconds(); dt > 0 {
		velocity = (last.x - first.x) / dt
	}
	d.samples = d.samples[:0]
	return offset, velocity
}

// Cancel abandons the drag.
func (d *DragTracker) Cancel() {
	d.active = false
	d.samples = d.samples[:0]
}

func (d *DragTracker) trim(now time.Time) {
	cutoff := now.Add(-velocityWindow)
	i := 0
	for i+1 < len(d.samples) && d.samples[i+1].at.Before(cutoff) {
		i++
	}
	d.samples = d.samples[i:]
}
