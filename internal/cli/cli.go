// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
)

const keyboardLayout = `keyboard layout:
  CHIP-8:     Keyboard:
  1 2 3 C     1 2 3 4
  4 5 6 D  -> Q W E R
  7 8 9 E     A S D F
  A 0 B F     Z X C V

press ESC to exit the emulator.
`

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text, the flag defaults and the keyboard layout.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
	fmt.Print(keyboardLayout)
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	opts.Quirks = strings.ToLower(opts.Quirks)

	if err := validateChoice("frontend", opts.Frontend,
		options.FrontendTerminal, options.FrontendDesktop); err != nil {
		return err
	}
	if err := validateChoice("quirk preset", opts.Quirks,
		options.QuirksDefault, options.QuirksCosmac, options.QuirksModern); err != nil {
		return err
	}

	if opts.CPUHz < 1 || opts.CPUHz > chip8.MaxCPUHz {
		return fmt.Errorf("unsupported CPU rate %d Hz, valid range: 1-%d", opts.CPUHz, chip8.MaxCPUHz)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("unsupported scale factor %d, has to be at least 1", opts.Scale)
	}
	return nil
}

func validateChoice(name, value string, valid ...string) error {
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return fmt.Errorf("unsupported %s: %s. Valid options: %s",
		name, value, strings.Join(valid, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "rom", "", "CHIP-8 ROM file to run")
	flags.IntVar(&opts.CPUHz, "cpu", opts.CPUHz, "instructions executed per second")
	flags.StringVar(&opts.Quirks, "quirks", opts.Quirks, "instruction quirk preset (default/cosmac/modern)")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 for time based")
	flags.BoolVar(&opts.SkipInvalid, "skip-invalid", false, "skip invalid opcodes instead of halting (non-standard)")
	flags.StringVar(&opts.Frontend, "ui", opts.Frontend, "frontend to use (terminal/desktop)")
	flags.StringVar(&opts.Foreground, "fg", opts.Foreground, "colour name of lit pixels")
	flags.StringVar(&opts.Background, "bg", opts.Background, "colour name of unlit pixels")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window scale factor of the desktop frontend")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
