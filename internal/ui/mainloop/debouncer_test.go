package mainloop

import (
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock records scheduled callbacks so tests decide when they fire.
type fakeClock struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) func() bool {
	t := &fakeTimer{delay: d, fn: fn}
	c.timers = append(c.timers, t)
	return func() bool {
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		return true
	}
}

// fire runs a timer even when stopped, as a timer racing its Stop would.
func (c *fakeClock) fire(i int) {
	c.timers[i].fired = true
	c.timers[i].fn()
}

func TestDebouncerRunsLatestAfterDelay(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(300*time.Millisecond, clock.AfterFunc)

	got := ""
	d.Trigger(func() { got = "first" })
	d.Trigger(func() { got = "second" })

	if len(clock.timers) != 2 {
		t.Fatalf("expected 2 scheduled timers, got %d", len(clock.timers))
	}
	if !clock.timers[0].stopped {
		t.Fatalf("expected first timer to be stopped by the second trigger")
	}
	if clock.timers[1].delay != 300*time.Millisecond {
		t.Fatalf("expected 300ms delay, got %s", clock.timers[1].delay)
	}

	clock.fire(1)
	if got != "second" {
		t.Fatalf("expected latest callback to run, got %q", got)
	}
	if d.Pending() {
		t.Fatalf("expected nothing pending after firing")
	}
}

func TestDebouncerSupersededTimerDoesNotRun(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(time.Second, clock.AfterFunc)

	calls := 0
	d.Trigger(func() { calls++ })
	d.Trigger(func() { calls += 10 })

	clock.fire(0)
	if calls != 0 {
		t.Fatalf("expected superseded callback to be dropped, got %d", calls)
	}
	clock.fire(1)
	if calls != 10 {
		t.Fatalf("expected only the latest callback, got %d", calls)
	}
}

func TestDebouncerCancelIsExact(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(time.Second, clock.AfterFunc)

	ran := false
	d.Trigger(func() { ran = true })
	if !d.Cancel() {
		t.Fatalf("expected Cancel to report a pending callback")
	}

	// The timer fires anyway, racing the cancel.
	clock.fire(0)
	if ran {
		t.Fatalf("expected cancelled callback not to run")
	}
	if d.Cancel() {
		t.Fatalf("expected second Cancel to report nothing pending")
	}
}

func TestDebouncerCloseDropsWork(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(time.Second, clock.AfterFunc)

	ran := false
	d.Trigger(func() { ran = true })
	d.Close()
	clock.fire(0)

	d.Trigger(func() { ran = true })
	if len(clock.timers) != 1 {
		t.Fatalf("expected no timer after close, got %d", len(clock.timers))
	}
	if ran {
		t.Fatalf("expected no callback after close")
	}
}

func TestDebouncerWithRealTimer(t *testing.T) {
	d := NewDebouncer(5*time.Millisecond, nil)

	var calls atomic.Int32
	done := make(chan struct{})
	d.Trigger(func() { calls.Add(1) })
	d.Trigger(func() {
		calls.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("debounced callback never ran")
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected exactly one call, got %d", n)
	}
}
