// Package app provides the main application helpers for the emulator.
package app

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints application version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintInfo prints the information about the ROM and the emulation settings.
func PrintInfo(logger *log.Logger, opts options.Program, rom []byte) {
	if opts.Quiet {
		return
	}

	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(rom)),
		log.Int("cpu_hz", opts.CPUHz),
		log.String("quirks", opts.Quirks),
		log.String("ui", opts.Frontend),
	)
	if opts.SkipInvalid {
		logger.Warn("Invalid opcodes will be skipped, this is not standard CHIP-8 behavior")
	}
}
