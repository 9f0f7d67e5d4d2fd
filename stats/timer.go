package stats

import "time"

// Timer measures monotonic elapsed time. It backs both the main-thread
// delta and the worker throttle in continuous sampling.
type Timer struct {
	start time.Time
	lap   time.Time
}

// NewTimer creates a started timer.
func NewTimer() *Timer {
	now := time.Now()
	return &Timer{start: now, lap: now}
}

// Elapsed returns seconds since the timer was created.
func (t *Timer) Elapsed() float64 {
	return time.Since(t.start).Seconds()
}

// Tick returns seconds since the previous Tick call (or since creation for
// the first call) and starts a new lap.
func (t *Timer) Tick() float64 {
	now := time.Now()
	d := now.Sub(t.lap).Seconds()
	t.lap = now
	return d
}
