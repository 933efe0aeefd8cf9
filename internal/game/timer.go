package game

import "math"

// Timer is a repeating countdown driven by tick durations.
type Timer struct {
	duration float64
	elapsed  float64
}

// NewTimer creates a repeating timer that fires every d seconds.
func NewTimer(d float64) Timer {
	return Timer{duration: d}
}

// Tick advances the timer by dt and reports whether it fired. A tick long
// enough to cover several periods fires once and keeps the remainder.
func (t *Timer) Tick(dt float64) bool {
	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}
	if t.duration > 0 {
		t.elapsed = math.Mod(t.elapsed, t.duration)
	} else {
		t.elapsed = 0
	}
	return true
}

// Duration returns the current period.
func (t *Timer) Duration() float64 {
	return t.duration
}

// SetDuration changes the period for the following cycles. Time already
// elapsed in the current cycle is kept.
func (t *Timer) SetDuration(d float64) {
	t.duration = d
}

// Remaining returns the time until the timer next fires.
func (t *Timer) Remaining() float64 {
	return math.Max(0, t.duration-t.elapsed)
}

// Reset restarts the current cycle with period d.
func (t *Timer) Reset(d float64) {
	t.duration = d
	t.elapsed = 0
}
