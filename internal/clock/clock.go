// Package clock abstracts the wall-clock timer primitive used by the page
// controllers so tests can drive time explicitly.
package clock

import (
	"time"

	benclock "github.com/benbjohnson/clock"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the timer. It reports true when the call prevented the
	// callback from running.
	Stop() bool
}

// Clock schedules callbacks in the future.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct {
	c benclock.Clock
}

// Real returns a Clock backed by the runtime timers.
func Real() Clock { return realClock{c: benclock.New()} }

func (r realClock) Now() time.Time { return r.c.Now() }

func (r realClock) AfterFunc(d time.Duration, f func()) Timer {
	return r.c.AfterFunc(d, f)
}
