package mainloop

import (
	"sync"
	"time"
)

// AfterFunc schedules fn after d. The returned stop reports whether the
// call was prevented.
type AfterFunc func(d time.Duration, fn func()) (stop func() bool)

// TimerAfterFunc is the AfterFunc backed by time.AfterFunc.
func TimerAfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Debouncer runs only the latest triggered callback once the delay has
// passed without a new trigger. Cancel is exact: a callback whose timer
// already fired but which has not started yet is dropped.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	after   AfterFunc
	gen     uint64
	stop    func() bool
	pending bool
	closed  bool
}

func NewDebouncer(delay time.Duration, after AfterFunc) *Debouncer {
	if after == nil {
		after = TimerAfterFunc
	}
	return &Debouncer{delay: delay, after: after}
}

// Trigger replaces any pending callback with fn and restarts the delay.
func (d *Debouncer) Trigger(fn func()) {
	if fn == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.cancelLocked()
	d.gen++
	gen := d.gen
	d.pending = true
	after, delay := d.after, d.delay
	d.mu.Unlock()

	stop := after(delay, func() {
		d.mu.Lock()
		if d.closed || gen != d.gen || !d.pending {
			d.mu.Unlock()
			return
		}
		d.pending = false
		d.stop = nil
		d.mu.Unlock()

		fn()
	})

	d.mu.Lock()
	if gen == d.gen && d.pending {
		d.stop = stop
	} else if stop != nil {
		stop()
	}
	d.mu.Unlock()
}

// Cancel drops the pending callback. It reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

func (d *Debouncer) cancelLocked() bool {
	was := d.pending
	d.gen++
	d.pending = false
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
	return was
}

// Pending reports whether a callback is waiting for its delay.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// SetDelay changes the delay used by later triggers.
func (d *Debouncer) SetDelay(delay time.Duration) {
	d.mu.Lock()
	d.delay = delay
	d.mu.Unlock()
}

// Close cancels pending work; later triggers are ignored.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.cancelLocked()
	d.closed = true
	d.mu.Unlock()
}
