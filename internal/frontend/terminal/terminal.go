// Package terminal implements a frontend that runs the emulator inside a text terminal.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/palette"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Start if the input is not an interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal, use the desktop frontend instead")

// Config contains the terminal frontend configuration.
type Config struct {
	Palette   palette.Palette
	HoldPolls int // polls a key stays pressed after its last arrival

	In  *os.File  // input terminal, defaults to os.Stdin
	Out io.Writer // output, defaults to os.Stdout
}

// DefaultConfig returns the default terminal frontend configuration.
func DefaultConfig() Config {
	return Config{
		Palette:   palette.Default,
		HoldPolls: DefaultHoldPolls,
		In:        os.Stdin,
		Out:       os.Stdout,
	}
}

// Frontend reads keys from a raw mode terminal and draws frames with block characters.
type Frontend struct {
	logger   *log.Logger
	in       *os.File
	fd       int
	input    *input
	renderer *renderer

	oldTermState *term.State
}

// New returns a new terminal frontend. Start has to be called before it is used.
func New(logger *log.Logger, cfg Config) *Frontend {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Frontend{
		logger:   logger,
		in:       cfg.In,
		fd:       int(cfg.In.Fd()),
		input:    newInput(cfg.HoldPolls),
		renderer: newRenderer(cfg.Out, cfg.Palette),
	}
}

// Start puts the terminal into raw mode and begins reading keys in a goroutine.
// Call Stop to restore the terminal.
func (f *Frontend) Start() error {
	if !term.IsTerminal(f.fd) {
		return ErrNotTerminal
	}

	if width, height, err := term.GetSize(f.fd); err == nil && (width < Columns || height < Rows) {
		f.logger.Warn("Terminal is smaller than the display",
			log.Int("width", width),
			log.Int("height", height),
			log.Int("required_width", Columns),
			log.Int("required_height", Rows))
	}

	oldState, err := term.MakeRaw(f.fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	f.oldTermState = oldState

	if err := f.renderer.writeControl(clearScreen, hideCursor); err != nil {
		f.Stop()
		return err
	}

	go f.input.read(f.in)
	return nil
}

// Stop ends the key reading and restores the terminal state.
func (f *Frontend) Stop() {
	f.input.stop()
	_ = f.renderer.writeControl(resetColors, showCursor, "\r\n")

	if f.oldTermState != nil {
		_ = term.Restore(f.fd, f.oldTermState)
		f.oldTermState = nil
	}
}

// Poll applies the keys typed since the last poll to the keypad.
// ESC and Ctrl+C request quitting.
func (f *Frontend) Poll(keypad *chip8.Keypad) (bool, error) {
	return f.input.poll(keypad), nil
}

// Render draws the frame.
func (f *Frontend) Render(frame *chip8.Frame, sound bool) error {
	return f.renderer.render(frame, sound)
}
