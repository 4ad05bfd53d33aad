// Package counter animates numeric statistics from zero to their target in a
// fixed number of evenly spaced steps.
package counter

import (
	"math"
	"sync"
	"time"

	"github.com/ensigniasec/wanderwise/internal/clock"
)

// Spec configures one counter run.
type Spec struct {
	Target   float64
	Duration time.Duration
	Steps    int
	Decimal  bool
}

// Interval is the spacing between updates.
func (s Spec) Interval() time.Duration {
	return s.Duration / time.Duration(s.steps())
}

func (s Spec) steps() int {
	if s.Steps <= 0 {
		return 1
	}
	return s.Steps
}

// Frames returns the display value after each of the steps updates. The last
// frame is exactly target; earlier frames never exceed it.
func Frames(target float64, steps int, decimal bool) []float64 {
	if steps <= 0 {
		steps = 1
	}
	out := make([]float64, steps)
	for k := 1; k <= steps; k++ {
		out[k-1] = frame(target, steps, k, decimal)
	}
	return out
}

func frame(target float64, steps, k int, decimal bool) float64 {
	if k >= steps {
		return target
	}
	v := target / float64(steps) * float64(k)
	if decimal {
		v = math.Round(v*10) / 10
	} else {
		v = math.Floor(v)
	}
	return math.Min(v, target)
}

// Update is delivered after every step.
type Update struct {
	Value float64
	Step  int
	Done  bool
}

// Counter runs one animated count on a Clock.
type Counter struct {
	clock    clock.Clock
	onUpdate func(Update)

	mu      sync.Mutex
	spec    Spec
	value   float64
	step    int
	done    bool
	running bool
	timer   clock.Timer
	gen     uint64
}

// New returns an idle Counter. onUpdate may be nil.
func New(c clock.Clock, onUpdate func(Update)) *Counter {
	if c == nil {
		c = clock.Real()
	}
	return &Counter{clock: c, onUpdate: onUpdate}
}

// Start resets the display value to zero and schedules spec.Steps updates.
// A run already in progress is cancelled first.
func (c *Counter) Start(spec Spec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.spec = spec
	c.value = 0
	c.step = 0
	c.done = false
	c.running = true
	c.scheduleLocked()
}

// Stop cancels every pending update. The value freezes where it is.
func (c *Counter) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// Value returns the current display value.
func (c *Counter) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Done reports whether the target has been reached.
func (c *Counter) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Running reports whether updates are still scheduled.
func (c *Counter) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Updates returns how many updates have been applied in the current run.
func (c *Counter) Updates() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Progress is the fraction of the run completed, in [0, 1].
func (c *Counter) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return 1
	}
	return float64(c.step) / float64(c.spec.steps())
}

func (c *Counter) stopLocked() {
	c.gen++
	c.running = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Counter) scheduleLocked() {
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.spec.Interval(), func() { c.advance(gen) })
}

func (c *Counter) advance(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.running || c.done {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	steps := c.spec.steps()
	c.step++
	c.value = frame(c.spec.Target, steps, c.step, c.spec.Decimal)
	if c.step >= steps {
		c.done = true
		c.running = false
	} else {
		c.scheduleLocked()
	}
	u := Update{Value: c.value, Step: c.step, Done: c.done}
	c.mu.Unlock()

	if c.onUpdate != nil {
		c.onUpdate(u)
	}
}
