package utils

import "time"

// Timer measures one elapsed interval. It starts on construction; Stop
// freezes the reading.
type Timer struct {
	start    time.Time
	duration time.Duration
	stopped  bool
}

// NewTimer returns a running timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Stop records the time elapsed since construction and returns it. Further
// calls return the first reading.
func (t *Timer) Stop() time.Duration {
	if !t.stopped {
		t.duration = time.Since(t.start)
		t.stopped = true
	}
	return t.duration
}

// Elapsed returns the frozen reading after Stop, or the running time before it.
func (t *Timer) Elapsed() time.Duration {
	if t.stopped {
		return t.duration
	}
	return time.Since(t.start)
}
