// Package carousel implements the rotating selection controller shared by the
// destination carousel, the hero word rotation and the testimonial slider.
package carousel

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/wanderwise/internal/clock"
)

var (
	// ErrIndexOutOfRange is returned by GoTo for an index outside the list.
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
	// ErrDisabled is returned by GoTo on a rotator built over an empty list.
	ErrDisabled = errors.New("carousel: rotator disabled")
)

// Cause records what triggered an index change.
type Cause int

const (
	CauseNext Cause = iota
	CausePrev
	CauseJump
	CauseAuto
	CauseSwipe
)

func (c Cause) String() string {
	switch c {
	case CauseNext:
		return "next"
	case CausePrev:
		return "prev"
	case CauseJump:
		return "jump"
	case CauseAuto:
		return "auto"
	case CauseSwipe:
		return "swipe"
	default:
		return "unknown"
	}
}

// Change describes a single index transition.
type Change struct {
	Index     int
	Previous  int
	Direction int
	Cause     Cause
}

// Option configures a Rotator.
type Option func(*options)

type options struct {
	interval time.Duration
	clock    clock.Clock
	onChange func(Change)
	log      logrus.FieldLogger
}

// WithInterval enables auto-advance every d. Zero disables it.
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithClock sets the timer source. Defaults to clock.Real().
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithOnChange registers a callback invoked after every index change. It runs
// on the goroutine that caused the change, outside the rotator's lock.
func WithOnChange(fn func(Change)) Option {
	return func(o *options) { o.onChange = fn }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// Rotator holds a current index into a fixed list and advances it manually
// or on a timer.
type Rotator[T any] struct {
	items    []T
	interval time.Duration
	clock    clock.Clock
	onChange func(Change)
	log      logrus.FieldLogger

	mu        sync.Mutex
	index     int
	direction int
	paused    bool
	started   bool
	closed    bool
	timer     clock.Timer
	due       time.Time
	// gen invalidates a timer callback that raced a Stop.
	gen uint64
}

// New builds a Rotator over items. The slice is copied. An empty list yields
// a disabled rotator on which navigation is a no-op.
func New[T any](items []T, opts ...Option) *Rotator[T] {
	o := options{clock: clock.Real()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = l
	}
	cp := make([]T, len(items))
	copy(cp, items)
	return &Rotator[T]{
		items:     cp,
		interval:  o.interval,
		clock:     o.clock,
		onChange:  o.onChange,
		log:       o.log,
		direction: 1,
	}
}

// Len returns the number of items.
func (r *Rotator[T]) Len() int { return len(r.items) }

// Enabled reports whether the rotator has anything to rotate through.
func (r *Rotator[T]) Enabled() bool { return len(r.items) > 0 }

// Items returns a copy of the list.
func (r *Rotator[T]) Items() []T {
	cp := make([]T, len(r.items))
	copy(cp, r.items)
	return cp
}

// Index returns the current index.
func (r *Rotator[T]) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Current returns the item at the current index. The zero value is returned
// for a disabled rotator.
func (r *Rotator[T]) Current() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		var zero T
		return zero
	}
	return r.items[r.index]
}

// Direction returns the sign of the most recent navigation.
func (r *Rotator[T]) Direction() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.direction
}

// Paused reports whether auto-advance is suspended.
func (r *Rotator[T]) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused
}

// Next moves forward one item, wrapping at the end.
func (r *Rotator[T]) Next() {
	r.step(1, CauseNext)
}

// Prev moves back one item, wrapping at the start.
func (r *Rotator[T]) Prev() {
	r.step(-1, CausePrev)
}

// GoTo jumps to index i. Out-of-range indices are rejected and leave the
// state untouched.
func (r *Rotator[T]) GoTo(i int) error {
	if len(r.items) == 0 {
		return ErrDisabled
	}
	if i < 0 || i >= len(r.items) {
		return ErrIndexOutOfRange
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	prev := r.index
	r.direction = 1
	if i < prev {
		r.direction = -1
	}
	r.index = i
	ch := Change{Index: i, Previous: prev, Direction: r.direction, Cause: CauseJump}
	r.mu.Unlock()

	r.notify(ch)
	return nil
}

// Start arms auto-advance. It is a no-op without an interval, on an empty
// list, while paused or once closed.
func (r *Rotator[T]) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.started {
		return
	}
	r.started = true
	r.armLocked()
}

// Pause suspends auto-advance and cancels the pending tick.
func (r *Rotator[T]) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.paused || r.closed {
		return
	}
	r.paused = true
	r.disarmLocked()
	r.log.WithField("index", r.index).Debug("rotator paused")
}

// Resume restarts auto-advance with a full interval.
func (r *Rotator[T]) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.paused || r.closed {
		return
	}
	r.paused = false
	if r.started {
		r.armLocked()
	}
	r.log.WithField("index", r.index).Debug("rotator resumed")
}

// Close cancels auto-advance permanently. Every later call is a no-op.
func (r *Rotator[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.disarmLocked()
}

func (r *Rotator[T]) step(delta int, cause Cause) {
	r.mu.Lock()
	ch, ok := r.stepLocked(delta, cause)
	r.mu.Unlock()
	if ok {
		r.notify(ch)
	}
}

func (r *Rotator[T]) stepLocked(delta int, cause Cause) (Change, bool) {
	n := len(r.items)
	if n == 0 || r.closed {
		return Change{}, false
	}
	prev := r.index
	r.direction = delta
	r.index = (r.index + delta + n) % n
	return Change{Index: r.index, Previous: prev, Direction: delta, Cause: cause}, true
}

// armLocked schedules the next auto-advance tick. Caller must hold r.mu.
func (r *Rotator[T]) armLocked() {
	if r.interval <= 0 || len(r.items) == 0 || r.paused || r.closed {
		return
	}
	r.scheduleLocked(r.clock.Now().Add(r.interval))
}

// rearmLocked schedules the tick after the one that just fired, one interval
// after its due time, so callback latency does not stretch the period. Ticks
// missed entirely are skipped rather than replayed.
func (r *Rotator[T]) rearmLocked() {
	if r.interval <= 0 || r.paused || r.closed {
		return
	}
	now := r.clock.Now()
	next := r.due.Add(r.interval)
	for !next.After(now) {
		next = next.Add(r.interval)
	}
	r.scheduleLocked(next)
}

func (r *Rotator[T]) scheduleLocked(due time.Time) {
	r.disarmLocked()
	gen := r.gen
	r.due = due
	r.timer = r.clock.AfterFunc(due.Sub(r.clock.Now()), func() { r.tick(gen) })
}

// disarmLocked stops the pending tick. Caller must hold r.mu.
func (r *Rotator[T]) disarmLocked() {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Rotator[T]) tick(gen uint64) {
	r.mu.Lock()
	if gen != r.gen || r.paused || r.closed {
		r.mu.Unlock()
		return
	}
	r.timer = nil
	ch, ok := r.stepLocked(1, CauseAuto)
	r.rearmLocked()
	r.mu.Unlock()

	if ok {
		r.notify(ch)
	}
}

func (r *Rotator[T]) notify(ch Change) {
	r.log.WithFields(logrus.Fields{"index": ch.Index, "cause": ch.Cause.String()}).Debug("rotator moved")
	if r.onChange != nil {
		r.onChange(ch)
	}
}
