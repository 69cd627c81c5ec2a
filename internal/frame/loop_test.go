package frame

import (
	"testing"
	"time"
)

const tick60 = time.Second / 60

func TestRequestFrameRunsOnNextTick(t *testing.T) {
	l := NewLoop()
	runs := 0
	l.RequestFrame(func() { runs++ })

	if runs != 0 {
		t.Fatal("callback should not run before Tick")
	}
	if ran := l.Tick(tick60); ran != 1 {
		t.Errorf("Tick() ran %d callbacks, expected 1", ran)
	}
	l.Tick(tick60)
	if runs != 1 {
		t.Errorf("callback ran %d times, expected exactly 1", runs)
	}
}

func TestSelfRequestingLoop(t *testing.T) {
	l := NewLoop()
	frames := 0
	var loop Callback
	loop = func() {
		l.RequestFrame(loop)
		frames++
	}
	l.RequestFrame(loop)

	for i := 0; i < 10; i++ {
		l.Tick(tick60)
	}
	if frames != 10 {
		t.Errorf("loop ran %d frames, expected 10", frames)
	}
	if l.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", l.Pending())
	}
}

func TestCancelFrame(t *testing.T) {
	l := NewLoop()
	runs := 0
	h := l.RequestFrame(func() { runs++ })
	l.Cancel(h)
	l.Tick(tick60)

	if runs != 0 {
		t.Error("cancelled frame request should not run")
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", l.Pending())
	}
}

func TestCancelStopsSelfRequestingLoop(t *testing.T) {
	l := NewLoop()
	frames := 0
	var handle Handle
	var loop Callback
	loop = func() {
		handle = l.RequestFrame(loop)
		frames++
	}
	handle = l.RequestFrame(loop)

	l.Tick(tick60)
	l.Tick(tick60)
	l.Cancel(handle)
	l.Tick(tick60)
	l.Tick(tick60)

	if frames != 2 {
		t.Errorf("loop ran %d frames after cancel, expected 2", frames)
	}
}

func TestAfterFunc(t *testing.T) {
	l := NewLoop()
	fired := 0
	l.AfterFunc(50*time.Millisecond, func() { fired++ })

	l.Tick(40 * time.Millisecond)
	if fired != 0 {
		t.Fatal("timer fired before its deadline")
	}
	l.Tick(10 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("timer fired %d times at its deadline, expected 1", fired)
	}
	l.Tick(time.Second)
	if fired != 1 {
		t.Errorf("timer fired %d times, expected 1", fired)
	}
	if l.Now() != 1050*time.Millisecond {
		t.Errorf("Now() = %v, expected 1.05s", l.Now())
	}
}

func TestTimersFireInDeadlineOrder(t *testing.T) {
	l := NewLoop()
	var order []int
	l.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
	l.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
	l.AfterFunc(20*time.Millisecond, func() { order = append(order, 2) })

	l.Tick(time.Second)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, expected [1 2 3]", order)
	}
}

func TestTimerRequestedFrameRunsSameTick(t *testing.T) {
	l := NewLoop()
	runs := 0
	l.AfterFunc(10*time.Millisecond, func() {
		l.RequestFrame(func() { runs++ })
	})

	l.Tick(10 * time.Millisecond)
	if runs != 1 {
		t.Errorf("frame requested by a due timer ran %d times, expected 1", runs)
	}
}
