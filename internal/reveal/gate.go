// Package reveal provides the one-way visibility latch that gates entrance
// animations and counters, and a staggered reveal built on top of it.
package reveal

import "sync"

// Gate latches once an observed element becomes sufficiently visible.
type Gate struct {
	threshold float64

	mu       sync.Mutex
	visible  bool
	handlers []func()
}

// New returns a gate that opens once at least threshold of the element is
// in view. threshold is clamped into [0, 1].
func New(threshold float64) *Gate {
	switch {
	case threshold < 0:
		threshold = 0
	case threshold > 1:
		threshold = 1
	}
	return &Gate{threshold: threshold}
}

// Threshold returns the configured visible fraction.
func (g *Gate) Threshold() float64 { return g.threshold }

// OnReveal registers fn to run exactly once when the gate opens. Handlers
// run in registration order. If the gate is already open fn runs immediately.
func (g *Gate) OnReveal(fn func()) {
	if fn == nil {
		return
	}
	g.mu.Lock()
	if g.visible {
		g.mu.Unlock()
		fn()
		return
	}
	g.handlers = append(g.handlers, fn)
	g.mu.Unlock()
}

// Observe feeds the current visible fraction. It reports true only on the
// call that opens the gate; later signals, including zero, never close it.
func (g *Gate) Observe(ratio float64) bool {
	g.mu.Lock()
	if g.visible || !g.meets(ratio) {
		g.mu.Unlock()
		return false
	}
	g.visible = true
	handlers := g.handlers
	g.handlers = nil
	g.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
	return true
}

// Visible reports whether the gate has opened.
func (g *Gate) Visible() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.visible
}

func (g *Gate) meets(ratio float64) bool {
	if ratio <= 0 {
		return false
	}
	return ratio >= g.threshold
}

// Ratio returns the fraction of the span [elemTop, elemTop+elemHeight) that
// lies inside the window [viewTop, viewTop+viewHeight).
func Ratio(elemTop, elemHeight, viewTop, viewHeight int) float64 {
	if elemHeight <= 0 || viewHeight <= 0 {
		return 0
	}
	top := max(elemTop, viewTop)
	bottom := min(elemTop+elemHeight, viewTop+viewHeight)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(elemHeight)
}
