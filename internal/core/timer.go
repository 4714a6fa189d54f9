package core

import "time"

// FixedStep paces simulation updates so that at most one step happens per
// configured delay, independent of how often the front end polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// DefaultDelay is the pause between generations when none is configured.
const DefaultDelay = 500 * time.Millisecond

// NewFixedStep constructs a FixedStep that fires once per delay. The first
// poll fires immediately.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetDelay(delay)
	fs.accumulator = fs.step
	return fs
}

// SetDelay changes the pause between steps.
func (f *FixedStep) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	f.step = delay
}

// Delay returns the configured pause between steps.
func (f *FixedStep) Delay() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Long stalls must not trigger a burst of catch-up steps.
		if f.accumulator > f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
