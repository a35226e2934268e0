package chip8

import (
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

type tickRecorder struct {
	ticks []tickKind
	cpu   int
	timer int
}

func (r *tickRecorder) record(kind tickKind) error {
	r.ticks = append(r.ticks, kind)
	if kind == cpuTick {
		r.cpu++
	} else {
		r.timer++
	}
	return nil
}

func TestClockCounts(t *testing.T) {
	tests := []struct {
		name    string
		cpuHz   int64
		elapsed time.Duration
		cpu     int
		timer   int
	}{
		{"default rate", DefaultCPUHz, time.Second, 700, 60},
		{"span longer than a chunk", DefaultCPUHz, 3*time.Second + 500*time.Millisecond, 2450, 210},
		{"cpu slower than timer", 30, time.Second, 30, 60},
		{"less than a tick", DefaultCPUHz, time.Millisecond, 0, 0},
		{"fast cpu", MaxCPUHz, time.Second, MaxCPUHz, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := clock{cpuHz: tt.cpuHz}
			var r tickRecorder
			assert.NoError(t, c.advance(tt.elapsed, r.record))
			assert.Equal(t, tt.cpu, r.cpu)
			assert.Equal(t, tt.timer, r.timer)
		})
	}
}

func TestClockCarriesPhase(t *testing.T) {
	c := clock{cpuHz: DefaultCPUHz}
	var r tickRecorder
	for range 1000 {
		assert.NoError(t, c.advance(time.Millisecond, r.record))
	}
	assert.Equal(t, 700, r.cpu)
	assert.Equal(t, 60, r.timer)
	assert.Equal(t, int64(0), c.cpuPhase)
	assert.Equal(t, int64(0), c.timerPhase)
}

func TestClockOrder(t *testing.T) {
	t.Run("timer first on tie", func(t *testing.T) {
		c := clock{cpuHz: 120}
		var r tickRecorder
		assert.NoError(t, c.advance(50*time.Millisecond, r.record))

		// CPU ticks at 8.3ms intervals, timer ticks at 16.6ms intervals
		expected := []tickKind{cpuTick, timerTick, cpuTick, cpuTick, timerTick, cpuTick, cpuTick, timerTick, cpuTick}
		assert.Equal(t, expected, r.ticks)
	})

	t.Run("cpu is not starved by a faster timer", func(t *testing.T) {
		c := clock{cpuHz: 30}
		var r tickRecorder
		assert.NoError(t, c.advance(100*time.Millisecond, r.record))

		expected := []tickKind{timerTick, timerTick, cpuTick, timerTick, timerTick, cpuTick, timerTick, timerTick, cpuTick}
		assert.Equal(t, expected, r.ticks)
	})

	t.Run("same order in small steps", func(t *testing.T) {
		c := clock{cpuHz: 120}
		var r tickRecorder
		for range 50 {
			assert.NoError(t, c.advance(time.Millisecond, r.record))
		}
		expected := []tickKind{cpuTick, timerTick, cpuTick, cpuTick, timerTick, cpuTick, cpuTick, timerTick, cpuTick}
		assert.Equal(t, expected, r.ticks)
	})
}

func TestClockStopsOnError(t *testing.T) {
	errStop := errors.New("stop")
	c := clock{cpuHz: DefaultCPUHz}

	calls := 0
	err := c.advance(time.Second, func(tickKind) error {
		calls++
		if calls == 3 {
			return errStop
		}
		return nil
	})
	assert.True(t, errors.Is(err, errStop))
	assert.Equal(t, 3, calls)
}
