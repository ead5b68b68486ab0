package realtimetest

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestClock_AdvanceWaitsForDueCallbacks(t *testing.T) {
	c := NewClock()
	var ran atomic.Int32
	c.AfterFunc(time.Second, func() { ran.Add(1) })
	c.AfterFunc(2*time.Second, func() { ran.Add(1) })

	if n := c.Advance(500 * time.Millisecond); n != 0 {
		t.Fatalf("ran %d callbacks, want 0", n)
	}
	if n := c.Advance(2 * time.Second); n != 2 {
		t.Fatalf("ran %d callbacks, want 2", n)
	}
	if ran.Load() != 2 {
		t.Errorf("counter %d, want 2", ran.Load())
	}
	if c.Pending() != 0 {
		t.Errorf("Pending %d, want 0", c.Pending())
	}
}

func TestClock_StoppedTimerIsNotPending(t *testing.T) {
	c := NewClock()
	timer := c.AfterFunc(time.Second, func() {
		t.Error("stopped timer should not fire")
	})
	if c.Pending() != 1 {
		t.Fatalf("Pending %d, want 1", c.Pending())
	}
	if !timer.Stop() {
		t.Fatal("Stop should report true for a pending timer")
	}
	if c.Pending() != 0 {
		t.Errorf("Pending %d, want 0", c.Pending())
	}
	if n := c.Advance(time.Minute); n != 0 {
		t.Errorf("ran %d callbacks, want 0", n)
	}
}

func TestClock_ChainedTimerCountsFromNewTime(t *testing.T) {
	c := NewClock()
	var ran atomic.Int32
	c.AfterFunc(time.Second, func() {
		ran.Add(1)
		c.AfterFunc(time.Second, func() { ran.Add(1) })
	})

	c.Advance(time.Second)
	if ran.Load() != 1 || c.Pending() != 1 {
		t.Fatalf("after first step ran=%d pending=%d, want 1 and 1", ran.Load(), c.Pending())
	}
	c.Advance(time.Second)
	if ran.Load() != 2 {
		t.Errorf("ran %d, want 2", ran.Load())
	}
}
