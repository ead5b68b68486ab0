package realtime

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestScheduler_FiresWhenClockAdvances(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewScheduler(clock)
	fired := make(chan struct{})
	s.AfterFunc(time.Second, func() { close(fired) })

	clock.Advance(500 * time.Millisecond)
	select {
	case <-fired:
		t.Fatal("callback ran before its delay")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(500 * time.Millisecond)
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("callback did not run after its delay")
	}
}

func TestScheduler_StopPreventsCallback(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewScheduler(clock)
	timer := s.AfterFunc(time.Second, func() {
		t.Error("stopped timer should not fire")
	})
	if !timer.Stop() {
		t.Fatal("Stop should report true for a pending timer")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}
	clock.Advance(time.Minute)
	time.Sleep(20 * time.Millisecond)
}

func TestWallClock_AfterFuncStop(t *testing.T) {
	timer := WallClock().AfterFunc(time.Hour, func() {
		t.Error("callback should not run")
	})
	if !timer.Stop() {
		t.Error("Stop should report true for a pending timer")
	}
}
