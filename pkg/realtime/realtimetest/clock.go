// Package realtimetest drives realtime.Scheduler callbacks from tests.
package realtimetest

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"cardd/pkg/realtime"
)

// Clock is a realtime.Scheduler on a clockwork fake clock. The fake clock
// runs each callback on its own goroutine; Advance waits for every callback
// that came due to return, so tests can assert right after it.
type Clock struct {
	fake  *clockwork.FakeClock
	sched realtime.Scheduler
	fired chan struct{}

	mu     sync.Mutex
	timers map[*timer]time.Time
}

// NewClock creates a Clock whose fake time starts now.
func NewClock() *Clock {
	fake := clockwork.NewFakeClock()
	return &Clock{
		fake:   fake,
		sched:  realtime.NewScheduler(fake),
		fired:  make(chan struct{}, 64),
		timers: make(map[*timer]time.Time),
	}
}

// AfterFunc implements realtime.Scheduler.
func (c *Clock) AfterFunc(d time.Duration, f func()) realtime.Timer {
	t := &timer{c: c}
	c.mu.Lock()
	c.timers[t] = c.fake.Now().Add(d)
	c.mu.Unlock()
	t.inner = c.sched.AfterFunc(d, func() {
		defer func() { c.fired <- struct{}{} }()
		f()
	})
	return t
}

// Advance moves the fake clock forward by d and returns once every callback
// due within d has run. It reports how many ran. Timers scheduled by those
// callbacks start counting from the new time.
func (c *Clock) Advance(d time.Duration) int {
	c.mu.Lock()
	end := c.fake.Now().Add(d)
	due := 0
	for t, at := range c.timers {
		if !at.After(end) {
			delete(c.timers, t)
			due++
		}
	}
	c.mu.Unlock()

	c.fake.Advance(d)
	for i := 0; i < due; i++ {
		select {
		case <-c.fired:
		case <-time.After(5 * time.Second):
			panic("realtimetest: scheduled callback did not return")
		}
	}
	return due
}

// Pending reports how many timers are scheduled and neither fired nor stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

type timer struct {
	c     *Clock
	inner realtime.Timer
}

func (t *timer) Stop() bool {
	if !t.inner.Stop() {
		return false
	}
	t.c.mu.Lock()
	delete(t.c.timers, t)
	t.c.mu.Unlock()
	return true
}
