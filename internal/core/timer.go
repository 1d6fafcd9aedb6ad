package core

import "time"

// maxCatchUp bounds how many ticks Due reports after a long stall so a paused
// window does not replay seconds of simulation in one frame.
const maxCatchUp = 8

// FixedStep helps run simulation updates at a steady interval regardless of
// the frame rate driving it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// DefaultTickInterval is used when no positive interval is given.
const DefaultTickInterval = 10 * time.Millisecond

// NewFixedStep constructs a FixedStep controller that releases one tick per
// interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick spacing. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	f.step = interval
}

// Interval reports the current tick spacing.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports how many ticks have elapsed since the previous call.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
	}
	return n
}
