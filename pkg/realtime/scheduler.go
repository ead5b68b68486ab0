package realtime

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Timer is a pending callback that can be canceled before it fires.
// Stop reports whether the call prevented the callback from running.
type Timer interface {
	Stop() bool
}

// Scheduler runs callbacks after a delay. Callbacks run on their own
// goroutine, so they must take whatever locks they need.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// NewScheduler schedules on clock. Production passes clockwork.NewRealClock();
// tests pass a fake clock and advance it.
func NewScheduler(clock clockwork.Clock) Scheduler {
	return clockScheduler{clock: clock}
}

// WallClock returns a Scheduler on the real clock.
func WallClock() Scheduler {
	return NewScheduler(clockwork.NewRealClock())
}

type clockScheduler struct {
	clock clockwork.Clock
}

func (s clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return s.clock.AfterFunc(d, f)
}
