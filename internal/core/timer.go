package core

import "time"

// maxCatchUp bounds how many ticks a single poll may report, so a
// stalled render loop does not trigger a burst of generations.
const maxCatchUp = 4

// FixedStep schedules simulation ticks at a steady cadence independent
// of how often the caller's loop polls it.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given
// ticks per second.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{}
	f.SetTPS(tps)
	return f
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 40
	}
	f.interval = time.Second / time.Duration(tps)
}

// Interval returns the duration between scheduled ticks.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// Due reports how many ticks have come due since the previous call,
// capped so a long stall cannot cause an unbounded burst.
func (f *FixedStep) Due() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.interval && n < maxCatchUp {
		f.accumulator -= f.interval
		n++
	}
	if n == maxCatchUp {
		f.accumulator = 0
	}
	return n
}
