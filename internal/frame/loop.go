// Package frame provides a single-owner, virtual-time frame scheduler.
//
// A Loop mirrors the browser pairing of requestAnimationFrame and setTimeout:
// callbacks requested with RequestFrame run on the next Tick, and timers set
// with AfterFunc fire on the first Tick whose clock reaches their deadline.
// Everything runs on the goroutine that calls Tick, so state mutated from
// callbacks needs no locking.
package frame

import (
	"sort"
	"time"
)

// Handle identifies a pending frame request or timer.
type Handle uint64

// Callback is work scheduled on a Loop.
type Callback func()

type entry struct {
	id        Handle
	at        time.Duration // timer deadline; unused for frame requests
	cb        Callback
	cancelled bool
}

// Loop is a cancellable frame scheduler driven by explicit Tick calls.
type Loop struct {
	now    time.Duration
	nextID Handle
	frames []*entry
	timers []*entry
}

// NewLoop creates an idle loop at time zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop's virtual clock.
func (l *Loop) Now() time.Duration {
	return l.now
}

// RequestFrame schedules cb to run once on the next Tick.
func (l *Loop) RequestFrame(cb Callback) Handle {
	e := l.newEntry(cb)
	l.frames = append(l.frames, e)
	return e.id
}

// AfterFunc schedules cb to run on the first Tick at or after now+d.
func (l *Loop) AfterFunc(d time.Duration, cb Callback) Handle {
	e := l.newEntry(cb)
	e.at = l.now + d
	l.timers = append(l.timers, e)
	return e.id
}

// Cancel stops a pending frame request or timer. Unknown or already
// fired handles are ignored.
func (l *Loop) Cancel(h Handle) {
	l.frames = cancelIn(l.frames, h)
	l.timers = cancelIn(l.timers, h)
}

// Pending returns the number of frame requests waiting for the next Tick.
func (l *Loop) Pending() int {
	return len(l.frames)
}

// Tick advances the clock by dt, fires due timers, then runs the frame
// requests queued before this Tick. Requests made while running are
// deferred to the next Tick. It returns the number of frame callbacks run.
func (l *Loop) Tick(dt time.Duration) int {
	l.now += dt
	l.fireTimers()

	batch := l.frames
	l.frames = nil

	ran := 0
	for _, e := range batch {
		if e.cancelled {
			continue
		}
		e.cancelled = true
		e.cb()
		ran++
	}
	return ran
}

// fireTimers runs every timer whose deadline has passed, earliest first.
func (l *Loop) fireTimers() {
	var due, rest []*entry
	for _, e := range l.timers {
		if e.at <= l.now {
			due = append(due, e)
		} else {
			rest = append(rest, e)
		}
	}
	l.timers = rest

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, e := range due {
		if e.cancelled {
			continue
		}
		e.cancelled = true
		e.cb()
	}
}

func (l *Loop) newEntry(cb Callback) *entry {
	l.nextID++
	return &entry{id: l.nextID, cb: cb}
}

func cancelIn(list []*entry, h Handle) []*entry {
	for i, e := range list {
		if e.id == h {
			e.cancelled = true
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
