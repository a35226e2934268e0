// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendTerminal = "terminal"
	FrontendDesktop  = "desktop"
)

// Quirk preset names.
const (
	QuirksDefault = "default"
	QuirksCosmac  = "cosmac"
	QuirksModern  = "modern"
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"rom" usage:"CHIP-8 ROM file to run"`
}

// Emulation contains options of the virtual machine.
type Emulation struct {
	CPUHz       int    `flag:"cpu" usage:"instructions executed per second" default:"700"`
	Quirks      string `flag:"quirks" usage:"instruction quirk preset: default, cosmac, modern" default:"default"`
	Seed        uint64 `flag:"seed" usage:"seed of the random number generator, 0 for time based"`
	SkipInvalid bool   `flag:"skip-invalid" usage:"skip invalid opcodes instead of halting (non-standard)"`
}

// Display contains options of the frontends.
type Display struct {
	Frontend   string `flag:"ui" usage:"frontend: terminal, desktop" default:"terminal"`
	Foreground string `flag:"fg" usage:"colour name of lit pixels" default:"white"`
	Background string `flag:"bg" usage:"colour name of unlit pixels" default:"black"`
	Scale      int    `flag:"scale" usage:"window scale factor of the desktop frontend" default:"10"`
}

// Flags contains behavior options.
type Flags struct {
	Debug bool `flag:"debug" usage:"enable debug logging"`
	Quiet bool `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Emulation
	Display
	Flags
}

// New returns the program options with default values.
func New() Program {
	return Program{
		Emulation: Emulation{
			CPUHz:  700,
			Quirks: QuirksDefault,
		},
		Display: Display{
			Frontend:   FrontendTerminal,
			Foreground: "white",
			Background: "black",
			Scale:      10,
		},
	}
}
