package core

import "time"

// FixedStep paces a host loop at a steady rate measured in wall-clock time.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the target rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Step returns the duration of one step.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the host should run one more step.
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
		return true
	}
	return false
}

// FrameAccumulator decides on which display frames a logical tick fires.
//
// It is an integer fixed-point accumulator: every frame adds ticksPerSecond and
// a tick fires once the total reaches displayFPS, which is then subtracted.
// That yields exactly ticksPerSecond ticks per displayFPS frames, even when
// displayFPS/ticksPerSecond is not a whole number.
type FrameAccumulator struct {
	displayFPS int
	tps        int
	acc        int
	frames     int
}

// NewFrameAccumulator builds an accumulator for the given rates. Non-positive
// values fall back to 60 fps and 10 ticks per second.
func NewFrameAccumulator(displayFPS, ticksPerSecond int) *FrameAccumulator {
	if displayFPS <= 0 {
		displayFPS = 60
	}
	if ticksPerSecond <= 0 {
		ticksPerSecond = 10
	}
	return &FrameAccumulator{displayFPS: displayFPS, tps: ticksPerSecond}
}

// Advance records one display frame and reports whether a logical tick fires.
func (a *FrameAccumulator) Advance() bool {
	a.frames++
	a.acc += a.tps
	if a.acc >= a.displayFPS {
		a.acc = min(a.acc-a.displayFPS, a.displayFPS-1)
		a.frames = 0
		return true
	}
	return false
}

// ElapsedFrames returns the frames seen since the last tick.
func (a *FrameAccumulator) ElapsedFrames() int { return a.frames }

// FramesPerTick returns displayFPS / ticksPerSecond.
func (a *FrameAccumulator) FramesPerTick() float64 {
	return float64(a.displayFPS) / float64(a.tps)
}
