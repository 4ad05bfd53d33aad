package clock

import (
	"sort"
	"sync"
	"time"

	benclock "github.com/benbjohnson/clock"
)

// Fake is a manually advanced Clock on top of a mock clock. Timers fire only
// from Advance, in fire-time order with ties broken by creation order, and
// every callback has returned by the time Advance does.
//
// The mock hands due callbacks to its own goroutines, so Fake steps it one
// due time at a time and runs the callbacks itself once the mock has
// released them.
type Fake struct {
	mock *benclock.Mock

	mu    sync.Mutex
	seq   uint64
	armed map[*fakeTimer]struct{}

	firedMu sync.Mutex
	firedC  *sync.Cond
	fired   int
}

type fakeTimer struct {
	clock *Fake
	timer *benclock.Timer
	at    time.Time
	seq   uint64
	fn    func()
	done  bool
}

// NewFake returns a Fake clock positioned at start.
func NewFake(start time.Time) *Fake {
	m := benclock.NewMock()
	m.Set(start)
	f := &Fake{mock: m, armed: make(map[*fakeTimer]struct{})}
	f.firedC = sync.NewCond(&f.firedMu)
	return f
}

// Now returns the fake's current time.
func (f *Fake) Now() time.Time {
	return f.mock.Now()
}

// AfterFunc schedules fn to run once the clock has been advanced by d.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	d = max(d, 0)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{clock: f, at: f.mock.Now().Add(d), seq: f.seq, fn: fn}
	t.timer = f.mock.AfterFunc(d, f.release)
	f.armed[t] = struct{}{}
	return t
}

// Advance moves the clock forward by d, running every timer that falls due.
// Timers scheduled by callbacks during the advance fire too when due.
func (f *Fake) Advance(d time.Duration) {
	target := f.mock.Now().Add(d)
	for {
		f.mu.Lock()
		now := f.mock.Now()
		batch := f.dueLocked(target)
		if len(batch) == 0 {
			if target.After(now) {
				f.mock.Add(target.Sub(now))
			}
			f.mu.Unlock()
			return
		}
		for _, t := range batch {
			delete(f.armed, t)
		}
		f.mock.Add(batch[0].at.Sub(now))
		f.mu.Unlock()

		f.await(len(batch))
		for _, t := range batch {
			if fn := t.claim(); fn != nil {
				fn()
			}
		}
	}
}

// Pending reports how many timers are armed.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.armed)
}

// dueLocked returns the armed timers sharing the earliest fire time at or
// before target, in creation order.
func (f *Fake) dueLocked(target time.Time) []*fakeTimer {
	var batch []*fakeTimer
	for t := range f.armed {
		if t.at.After(target) {
			continue
		}
		switch {
		case len(batch) == 0 || t.at.Before(batch[0].at):
			batch = append(batch[:0], t)
		case t.at.Equal(batch[0].at):
			batch = append(batch, t)
		}
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].seq < batch[j].seq })
	return batch
}

func (f *Fake) release() {
	f.firedMu.Lock()
	f.fired++
	f.firedC.Broadcast()
	f.firedMu.Unlock()
}

// await blocks until the mock has released n callbacks.
func (f *Fake) await(n int) {
	f.firedMu.Lock()
	defer f.firedMu.Unlock()
	for f.fired < n {
		f.firedC.Wait()
	}
	f.fired -= n
}

// claim marks t as fired and returns its callback, or nil when an earlier
// callback in the same batch stopped it.
func (t *fakeTimer) claim() func() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	return t.fn
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	delete(t.clock.armed, t)
	t.timer.Stop()
	return true
}
