// Package desktop implements a frontend that runs the emulator in a window.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/palette"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

const title = "retrochip8"

// keys maps the host keys of the keypad layout to ebiten keys.
var keys = map[rune]ebiten.Key{
	'1': ebiten.KeyDigit1, '2': ebiten.KeyDigit2, '3': ebiten.KeyDigit3, '4': ebiten.KeyDigit4,
	'q': ebiten.KeyQ, 'w': ebiten.KeyW, 'e': ebiten.KeyE, 'r': ebiten.KeyR,
	'a': ebiten.KeyA, 's': ebiten.KeyS, 'd': ebiten.KeyD, 'f': ebiten.KeyF,
	'z': ebiten.KeyZ, 'x': ebiten.KeyX, 'c': ebiten.KeyC, 'v': ebiten.KeyV,
}

// Config contains the desktop frontend configuration.
type Config struct {
	Palette palette.Palette
	Scale   int // window size multiplier of the 64x32 display
}

// DefaultConfig returns the default desktop frontend configuration.
func DefaultConfig() Config {
	return Config{
		Palette: palette.Default,
		Scale:   10,
	}
}

// Frontend shows the display in a window and reads the keypad from the keyboard.
type Frontend struct {
	logger       *log.Logger
	cfg          Config
	isKeyPressed func(ebiten.Key) bool

	image       *ebiten.Image
	pixels      []byte
	pixelsDirty bool
	sound       bool
}

// New returns a new desktop frontend.
func New(logger *log.Logger, cfg Config) *Frontend {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	f := &Frontend{
		logger:       logger,
		cfg:          cfg,
		isKeyPressed: ebiten.IsKeyPressed,
		pixels:       cfg.Palette.RGBA(&chip8.Frame{}),
		pixelsDirty:  true,
	}
	return f
}

// Poll sets the keypad to the state of the mapped keyboard keys.
// ESC requests quitting.
func (f *Frontend) Poll(keypad *chip8.Keypad) (bool, error) {
	if f.isKeyPressed(ebiten.KeyEscape) {
		return true, nil
	}
	for i, r := range keymap.Layout {
		keypad.SetPressed(chip8.Key(i), f.isKeyPressed(keys[r]))
	}
	return false, nil
}

// Render converts the frame to pixels that are uploaded on the next draw.
func (f *Frontend) Render(frame *chip8.Frame, sound bool) error {
	f.cfg.Palette.FillRGBA(frame, f.pixels)
	f.pixelsDirty = true

	if sound != f.sound {
		f.sound = sound
		if sound {
			ebiten.SetWindowTitle(title + " ♪")
		} else {
			ebiten.SetWindowTitle(title)
		}
	}
	return nil
}

// Run opens the window and drives the runner from the ebiten game loop until the
// window is closed, the context is cancelled or the runner stops.
func (f *Frontend) Run(ctx context.Context, r *runner.Runner) error {
	ebiten.SetWindowSize(chip8.DisplayWidth*f.cfg.Scale, chip8.DisplayHeight*f.cfg.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{
		ctx:      ctx,
		frontend: f,
		runner:   r,
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	if g.err != nil {
		return g.err
	}
	// closing the window is handled like a quit request
	return runner.ErrQuit
}

// game adapts the frontend to the ebiten.Game interface.
type game struct {
	ctx      context.Context
	frontend *Frontend
	runner   *runner.Runner
	err      error
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.err = fmt.Errorf("running emulation: %w", err)
		return ebiten.Termination
	}

	elapsed := time.Second / time.Duration(ebiten.TPS())
	if err := g.runner.Step(elapsed); err != nil {
		if !errors.Is(err, runner.ErrQuit) {
			g.frontend.logger.Debug("Stopping game loop", log.Err(err))
		}
		g.err = err
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.frontend
	if f.image == nil {
		f.image = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
	}
	if f.pixelsDirty {
		f.image.WritePixels(f.pixels)
		f.pixelsDirty = false
	}
	screen.DrawImage(f.image, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth, chip8.DisplayHeight
}
