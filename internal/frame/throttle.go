package frame

import "time"

// Scheduler is the part of Loop a Throttler needs.
type Scheduler interface {
	AfterFunc(d time.Duration, cb Callback) Handle
	RequestFrame(cb Callback) Handle
	Cancel(h Handle)
}

// Throttler rate-limits a repeating callback independently of how often
// Throttle itself is called. At most one timer is pending at a time; when it
// fires the pending flag clears and the callback runs on the next frame.
type Throttler struct {
	sched   Scheduler
	pending bool
	timer   Handle
	frame   Handle
}

// NewThrottler creates a throttler on the given scheduler.
func NewThrottler(s Scheduler) *Throttler {
	return &Throttler{sched: s}
}

// Throttle schedules cb to run 1/ratePerSecond from now unless a run is
// already pending. A non-positive rate never schedules anything.
func (t *Throttler) Throttle(ratePerSecond float64, cb Callback) {
	if t.pending || ratePerSecond <= 0 {
		return
	}
	t.pending = true
	window := time.Duration(float64(time.Second) / ratePerSecond)
	t.timer = t.sched.AfterFunc(window, func() {
		t.pending = false
		t.timer = 0
		t.frame = t.sched.RequestFrame(cb)
	})
}

// Pending reports whether a throttle window is open.
func (t *Throttler) Pending() bool {
	return t.pending
}

// Stop cancels any pending timer or queued callback.
func (t *Throttler) Stop() {
	if t.timer != 0 {
		t.sched.Cancel(t.timer)
		t.timer = 0
	}
	if t.frame != 0 {
		t.sched.Cancel(t.frame)
		t.frame = 0
	}
	t.pending = false
}
