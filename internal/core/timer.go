package core

import "time"

// FixedStep paces generations at a steady rate independent of the frame rate.
// It is driven by the caller's clock so it can be fed frame deltas directly.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting hz generations per second.
func NewFixedStep(hz float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFrequency(hz)
	return fs
}

// SetFrequency changes the rate. Non-positive values fall back to 1 Hz.
func (f *FixedStep) SetFrequency(hz float64) {
	if hz <= 0 {
		hz = 1
	}
	f.step = time.Duration(float64(time.Second) / hz)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// Interval returns the time between generations.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether a generation is due. At most one generation is
// reported per call and the accumulator resets, so a stalled frame never
// causes a burst of catch-up generations.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}

// Reset forgets accumulated time, e.g. after unpausing.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
