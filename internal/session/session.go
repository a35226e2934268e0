// Package session runs a ROM file from loading to the end of the emulation.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/frontend/desktop"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnsupportedSystem is returned for ROM files of other systems.
var ErrUnsupportedSystem = errors.New("unsupported system")

// Run loads the ROM of the options and runs it in the selected frontend until
// the user quits, the context is cancelled or the core halts.
// Quitting is not reported as an error.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	core, err := Prepare(logger, opts)
	if err != nil {
		return err
	}

	pal, err := config.Palette(opts)
	if err != nil {
		return err
	}

	switch opts.Frontend {
	case options.FrontendDesktop:
		cfg := desktop.DefaultConfig()
		cfg.Palette = pal
		cfg.Scale = opts.Scale
		frontend := desktop.New(logger, cfg)
		err = frontend.Run(ctx, runner.New(logger, core, frontend))

	default:
		cfg := terminal.DefaultConfig()
		cfg.Palette = pal
		frontend := terminal.New(logger, cfg)
		if err := frontend.Start(); err != nil {
			return fmt.Errorf("starting terminal: %w", err)
		}
		err = runner.New(logger, core, frontend).Run(ctx)
		frontend.Stop()
	}

	return finish(logger, core, err)
}

// Prepare loads the ROM of the options and creates the core for it.
func Prepare(logger *log.Logger, opts options.Program) (*chip8.Core, error) {
	system := detector.New(logger).Detect(opts.Input)
	if system != arch.CHIP8System {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSystem, system)
	}

	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	cfg, err := config.CoreConfig(logger, opts)
	if err != nil {
		return nil, fmt.Errorf("creating core config: %w", err)
	}

	core, err := chip8.NewWithConfig(rom, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating core: %w", err)
	}

	app.PrintInfo(logger, opts, rom)
	return core, nil
}

// finish translates the end of an emulation run into the error returned to the caller.
func finish(logger *log.Logger, core *chip8.Core, err error) error {
	switch {
	case err == nil, errors.Is(err, runner.ErrQuit):
		logger.Debug("Emulation stopped", log.Stringer("state", core.State()))
		return nil

	case core.State() == chip8.StateHalted:
		regs := core.Registers()
		frame := core.Framebuffer()
		logger.Error("Emulation halted",
			log.Int("lit_pixels", frame.Lit()),
			log.Hex("pc", regs.PC),
			log.Hex("i", regs.I),
			log.Uint8("sp", regs.SP),
			log.Err(err))
		return err

	default:
		return err
	}
}
