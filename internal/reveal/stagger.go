package reveal

import (
	"sync"
	"time"

	"github.com/ensigniasec/wanderwise/internal/clock"
)

// Stagger shows a fixed number of items one after another once started.
// The first item appears immediately, the rest every step.
type Stagger struct {
	clock  clock.Clock
	total  int
	step   time.Duration
	onShow func(shown int)

	mu      sync.Mutex
	shown   int
	started bool
	stopped bool
	timer   clock.Timer
}

// NewStagger returns a stagger over total items. onShow, if set, receives
// the new shown count after each reveal.
func NewStagger(c clock.Clock, total int, step time.Duration, onShow func(shown int)) *Stagger {
	if c == nil {
		c = clock.Real()
	}
	return &Stagger{clock: c, total: total, step: step, onShow: onShow}
}

// Attach starts the stagger when g opens.
func (s *Stagger) Attach(g *Gate) {
	g.OnReveal(s.Start)
}

// Start reveals the first item and schedules the rest. Only the first call
// has any effect.
func (s *Stagger) Start() {
	s.mu.Lock()
	if s.started || s.stopped || s.total <= 0 {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()
	s.reveal()
}

// Shown returns how many items are visible.
func (s *Stagger) Shown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

// Stop cancels any pending reveal.
func (s *Stagger) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Stagger) reveal() {
	s.mu.Lock()
	if s.stopped || s.shown >= s.total {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.shown++
	shown := s.shown
	if shown < s.total {
		if s.step <= 0 {
			s.shown = s.total
			shown = s.total
		} else {
			s.timer = s.clock.AfterFunc(s.step, s.reveal)
		}
	}
	s.mu.Unlock()

	if s.onShow != nil {
		s.onShow(shown)
	}
}
