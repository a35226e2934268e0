// Package runner implements the driver loop that connects a CHIP-8 core to a frontend.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

const (
	// FrameRate is the default number of driver loop iterations per second.
	FrameRate = 60

	// DefaultMaxElapsed is the default limit of emulated time per loop iteration.
	DefaultMaxElapsed = 250 * time.Millisecond
)

// ErrQuit is returned by Run when the frontend requested to quit.
var ErrQuit = errors.New("quit requested")

// Frontend is the input and output surface of the emulator.
type Frontend interface {
	// Poll updates the keypad state from the input device.
	// It returns true when the user requested to quit.
	Poll(keypad *chip8.Keypad) (bool, error)
	// Render outputs a frame. sound reports whether the tone should currently play.
	Render(frame *chip8.Frame, sound bool) error
}

// Config contains the runner configuration.
type Config struct {
	Interval   time.Duration    // wall-clock duration of one loop iteration
	MaxElapsed time.Duration    // elapsed time above this limit is dropped, for example after a host suspend
	Now        func() time.Time // time source, defaults to time.Now
}

// DefaultConfig returns the default runner configuration.
func DefaultConfig() Config {
	return Config{
		Interval:   time.Second / FrameRate,
		MaxElapsed: DefaultMaxElapsed,
		Now:        time.Now,
	}
}

// Runner drives a core in real time.
type Runner struct {
	logger   *log.Logger
	core     *chip8.Core
	frontend Frontend
	cfg      Config

	sound    bool
	rendered bool
}

// New returns a new runner with the default configuration.
func New(logger *log.Logger, core *chip8.Core, frontend Frontend) *Runner {
	return NewWithConfig(logger, core, frontend, DefaultConfig())
}

// NewWithConfig returns a new runner with the given configuration.
func NewWithConfig(logger *log.Logger, core *chip8.Core, frontend Frontend, cfg Config) *Runner {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second / FrameRate
	}
	if cfg.MaxElapsed <= 0 {
		cfg.MaxElapsed = DefaultMaxElapsed
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Runner{
		logger:   logger,
		core:     core,
		frontend: frontend,
		cfg:      cfg,
	}
}

// Run executes the core until the context is cancelled, the frontend requests to
// quit or the core halts. Quitting returns ErrQuit, a halted core returns its error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	last := r.cfg.Now()
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("running emulation: %w", err)
		}

		now := r.cfg.Now()
		elapsed := now.Sub(last)
		last = now

		if err := r.Step(elapsed); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("running emulation: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Step runs one iteration of the driver loop: input is polled, the core advances
// by the elapsed time and the frame is rendered if it changed.
// Elapsed time is capped at the configured maximum, the emulation does not catch up
// on time the host spent suspended.
func (r *Runner) Step(elapsed time.Duration) error {
	quit, err := r.frontend.Poll(r.core.Keypad())
	if err != nil {
		return fmt.Errorf("polling input: %w", err)
	}
	if quit {
		r.logger.Debug("Quit requested by frontend")
		return ErrQuit
	}

	if elapsed > r.cfg.MaxElapsed {
		r.logger.Debug("Dropping elapsed time",
			log.Stringer("elapsed", elapsed),
			log.Stringer("max", r.cfg.MaxElapsed))
		elapsed = r.cfg.MaxElapsed
	}

	advanceErr := r.core.Advance(elapsed)

	// the frame is rendered before reporting a halt so the last screen stays visible
	if err := r.render(); err != nil {
		return err
	}
	if advanceErr != nil {
		return fmt.Errorf("advancing core: %w", advanceErr)
	}
	return nil
}

func (r *Runner) render() error {
	sound := r.core.SoundActive()
	if r.rendered && !r.core.FrameDirty() && sound == r.sound {
		return nil
	}

	frame := r.core.Framebuffer()
	if err := r.frontend.Render(&frame, sound); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	r.core.ClearFrameDirty()
	r.sound = sound
	r.rendered = true
	return nil
}
