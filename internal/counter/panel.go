package counter

import (
	"strconv"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/ensigniasec/wanderwise/internal/clock"
)

// Format renders a counter value for display: grouped thousands for
// integers, one decimal place otherwise.
func Format(v float64, decimal bool) string {
	if decimal {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return humanize.Comma(int64(v))
}

// Panel drives a group of counters that start together, such as the
// statistics section.
type Panel struct {
	specs    []Spec
	counters []*Counter

	mu      sync.Mutex
	started bool
}

// NewPanel builds one counter per spec. onUpdate receives the index of the
// counter that changed and may be nil.
func NewPanel(c clock.Clock, specs []Spec, onUpdate func(i int, u Update)) *Panel {
	p := &Panel{specs: append([]Spec(nil), specs...)}
	for i := range specs {
		i := i
		var cb func(Update)
		if onUpdate != nil {
			cb = func(u Update) { onUpdate(i, u) }
		}
		p.counters = append(p.counters, New(c, cb))
	}
	return p
}

// Len returns the number of counters.
func (p *Panel) Len() int { return len(p.counters) }

// Start runs every counter once. Later calls are ignored so a panel
// animates a single time per mount.
func (p *Panel) Start() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return false
	}
	p.started = true
	for i, c := range p.counters {
		c.Start(p.specs[i])
	}
	return true
}

// Started reports whether Start has run.
func (p *Panel) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

// Stop cancels all pending updates.
func (p *Panel) Stop() {
	for _, c := range p.counters {
		c.Stop()
	}
}

// Value returns the display value of counter i.
func (p *Panel) Value(i int) float64 { return p.counters[i].Value() }

// Progress returns the completed fraction of counter i.
func (p *Panel) Progress(i int) float64 { return p.counters[i].Progress() }

// Values returns every display value in order.
func (p *Panel) Values() []float64 {
	out := make([]float64, len(p.counters))
	for i, c := range p.counters {
		out[i] = c.Value()
	}
	return out
}

// Done reports whether every counter reached its target.
func (p *Panel) Done() bool {
	for _, c := range p.counters {
		if !c.Done() {
			return false
		}
	}
	return true
}
