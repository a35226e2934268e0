package app

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

func TestPrintQuiet(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.New()
	opts.Quiet = true

	PrintBanner(logger, opts, "1.0.0", "0123456789abcdef", "2026-01-01")
	PrintInfo(logger, opts, []byte{0x00, 0xE0})
}

func TestPrint(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.New()
	opts.Input = "pong.ch8"
	opts.SkipInvalid = true

	PrintBanner(logger, opts, "dev", "", "unknown")
	PrintInfo(logger, opts, []byte{0x00, 0xE0})
}
