package clock

import "time"

// Timer measures time since its last Begin. The zero value is not started
// and reports zero elapsed time.
type Timer struct {
	start   time.Time
	started bool
}

// Begin (re)starts the timer at now.
func (t *Timer) Begin(now time.Time) {
	t.start = now
	t.started = true
}

// Started reports whether Begin has been called.
func (t *Timer) Started() bool {
	return t.started
}

// Look returns the time elapsed since Begin. Times before the start clamp to zero.
func (t *Timer) Look(now time.Time) time.Duration {
	if !t.started {
		return 0
	}
	d := now.Sub(t.start)
	if d < 0 {
		return 0
	}
	return d
}

// Millis returns Look in fractional milliseconds.
func (t *Timer) Millis(now time.Time) float32 {
	return float32(t.Look(now)) / float32(time.Millisecond)
}
