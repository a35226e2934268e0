package chip8

import "time"

const (
	// DefaultCPUHz is the default number of instructions executed per second.
	DefaultCPUHz = 700

	// MaxCPUHz is the highest supported instruction rate.
	MaxCPUHz = 1_000_000

	nanosPerSecond = int64(time.Second)

	// maxChunk bounds the span that is scheduled at once, which keeps all
	// due time comparisons within int64.
	maxChunk = time.Second
)

type tickKind uint8

const (
	cpuTick tickKind = iota
	timerTick
)

// clock apportions elapsed time into CPU and timer ticks. The phase of each
// clock is kept as the fraction of a tick that elapsed since its last tick,
// scaled to nanoseconds times rate, so no time is lost between calls.
type clock struct {
	cpuHz      int64
	cpuPhase   int64
	timerPhase int64
}

// advance calls fn for every tick that is due within elapsed, ordered by due time.
// A timer tick that is due at the same instant as a CPU tick runs first.
// It stops at the first error returned by fn.
func (c *clock) advance(elapsed time.Duration, fn func(tickKind) error) error {
	for elapsed > 0 {
		chunk := min(elapsed, maxChunk)
		elapsed -= chunk
		if err := c.advanceChunk(int64(chunk), fn); err != nil {
			return err
		}
	}
	return nil
}

func (c *clock) advanceChunk(nanos int64, fn func(tickKind) error) error {
	cpuStart := c.cpuPhase
	timerStart := c.timerPhase

	cpuTotal := cpuStart + nanos*c.cpuHz
	timerTotal := timerStart + nanos*TimerHz
	cpuTicks := cpuTotal / nanosPerSecond
	timerTicks := timerTotal / nanosPerSecond
	c.cpuPhase = cpuTotal % nanosPerSecond
	c.timerPhase = timerTotal % nanosPerSecond

	// The i-th CPU tick of this chunk is due (i*1s - cpuStart) / cpuHz after the
	// chunk start, the j-th timer tick (j*1s - timerStart) / TimerHz after it.
	// Both sides are compared cross multiplied to stay in integer arithmetic.
	i, j := int64(1), int64(1)
	for i <= cpuTicks || j <= timerTicks {
		timerFirst := j <= timerTicks &&
			(i > cpuTicks || (j*nanosPerSecond-timerStart)*c.cpuHz <= (i*nanosPerSecond-cpuStart)*TimerHz)

		kind := cpuTick
		if timerFirst {
			kind = timerTick
			j++
		} else {
			i++
		}
		if err := fn(kind); err != nil {
			return err
		}
	}
	return nil
}

func (c *clock) reset() {
	c.cpuPhase = 0
	c.timerPhase = 0
}
