// Package config turns program options into the settings of the application components.
package config

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/palette"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Quirks returns the quirk settings of a preset name.
func Quirks(preset string) (chip8.Quirks, error) {
	switch preset {
	case options.QuirksDefault, "":
		return chip8.DefaultQuirks, nil
	case options.QuirksCosmac:
		return chip8.CosmacQuirks, nil
	case options.QuirksModern:
		return chip8.ModernQuirks, nil
	default:
		return chip8.Quirks{}, fmt.Errorf("unsupported quirk preset '%s'", preset)
	}
}

// CoreConfig creates the virtual machine configuration from the program options.
func CoreConfig(logger *log.Logger, opts options.Program) (chip8.Config, error) {
	quirks, err := Quirks(opts.Quirks)
	if err != nil {
		return chip8.Config{}, err
	}

	cfg := chip8.DefaultConfig()
	cfg.CPUHz = opts.CPUHz
	cfg.Quirks = quirks
	cfg.Seed = opts.Seed
	cfg.SkipInvalidOpcodes = opts.SkipInvalid
	cfg.Logger = logger
	return cfg, nil
}

// Palette returns the display colours of the program options.
func Palette(opts options.Program) (palette.Palette, error) {
	pal, err := palette.New(opts.Foreground, opts.Background)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("creating palette: %w", err)
	}
	return pal, nil
}
