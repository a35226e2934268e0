package chip8

import (
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// State is the execution state of the core.
type State uint8

// Execution states.
const (
	// StateRunning fetches and executes an instruction on every step.
	StateRunning State = iota
	// StateWaitingForKey polls the keypad on every step until a key is newly pressed.
	StateWaitingForKey
	// StateHalted is entered on a fatal error, steps return that error until Reset.
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWaitingForKey:
		return "waiting for key"
	case StateHalted:
		return "halted"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Config contains the settings of a core.
type Config struct {
	// CPUHz is the number of instructions executed per second of elapsed time.
	CPUHz int

	Quirks Quirks

	// Random provides the bytes for Cxkk. If nil a source seeded with Seed is used.
	Random RandomSource
	Seed   uint64

	// SkipInvalidOpcodes is a non-standard compatibility mode that logs and skips
	// unknown opcodes instead of halting.
	SkipInvalidOpcodes bool

	// Logger receives debug and warning messages. If nil only errors are logged.
	Logger *log.Logger
}

// DefaultConfig returns the default core configuration.
func DefaultConfig() Config {
	return Config{
		CPUHz:  DefaultCPUHz,
		Quirks: DefaultQuirks,
	}
}

// Core is the CHIP-8 interpreter. It exclusively owns all machine state and is not
// safe for concurrent use, the driver calls it from a single goroutine.
type Core struct {
	memory    Memory
	registers Registers
	timers    Timers
	display   Framebuffer
	keypad    Keypad
	clock     clock

	program []byte

	state        State
	waitRegister uint8
	err          error

	quirks      Quirks
	random      RandomSource
	skipInvalid bool
	logger      *log.Logger
}

// New creates a core with the default configuration and loads the program.
func New(program []byte) (*Core, error) {
	return NewWithConfig(program, DefaultConfig())
}

// NewWithConfig creates a core with the given configuration and loads the program.
// It returns a *LoadError if the program does not fit into memory.
func NewWithConfig(program []byte, cfg Config) (*Core, error) {
	if len(program) > MaxProgramSize {
		return nil, &LoadError{Size: len(program)}
	}
	if cfg.CPUHz < 1 || cfg.CPUHz > MaxCPUHz {
		return nil, fmt.Errorf("invalid CPU rate %d Hz, supported range is 1-%d", cfg.CPUHz, MaxCPUHz)
	}

	logger := cfg.Logger
	if logger == nil {
		logCfg := log.DefaultConfig()
		logCfg.Level = log.ErrorLevel
		logger = log.NewWithConfig(logCfg)
	}
	random := cfg.Random
	if random == nil {
		random = NewRandomSource(cfg.Seed)
	}

	c := &Core{
		program:     append([]byte(nil), program...),
		quirks:      cfg.Quirks,
		random:      random,
		skipInvalid: cfg.SkipInvalidOpcodes,
		logger:      logger,
		clock:       clock{cpuHz: int64(cfg.CPUHz)},
	}
	c.display.clip = cfg.Quirks.ClipSprites
	c.Reset()

	c.logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Int("cpu_hz", cfg.CPUHz))
	return c, nil
}

// Reset restores the power-on state and reloads the program. It is the only way
// to recover from a halt.
func (c *Core) Reset() {
	c.memory.load(c.program)
	c.registers.reset()
	c.timers = Timers{}
	c.display.Clear()
	c.keypad.reset()
	c.clock.reset()
	c.state = StateRunning
	c.waitRegister = 0
	c.err = nil
}

// Step executes a single instruction. While waiting for a key it only polls the
// keypad, storing the key and resuming execution on the next step once a key
// was newly pressed. A returned error is fatal and halts the core.
func (c *Core) Step() error {
	switch c.state {
	case StateHalted:
		return c.err

	case StateWaitingForKey:
		key, ok := c.keypad.PollNewlyPressed()
		if !ok {
			return nil
		}
		c.registers.V[c.waitRegister] = uint8(key)
		c.state = StateRunning
		c.logger.Debug("Key wait finished",
			log.Stringer("key", key),
			log.Uint8("register", c.waitRegister))
		return nil
	}

	pc := c.registers.PC
	opcode := uint16(c.memory.Read(pc))<<8 | uint16(c.memory.Read(pc+1))
	c.registers.PC = (pc + OpcodeSize) & MaxAddress

	ins, err := Decode(opcode)
	if err != nil {
		if c.skipInvalid {
			c.logger.Warn("Skipping invalid opcode",
				log.Hex("address", pc),
				log.Hex("opcode", opcode))
			return nil
		}
		return c.halt(ErrInvalidOpcode, pc, opcode)
	}

	if err := c.execute(ins); err != nil {
		return c.halt(err, pc, opcode)
	}
	return nil
}

func (c *Core) halt(kind error, pc, opcode uint16) error {
	c.state = StateHalted
	c.err = &ExecutionError{
		Kind:   kind,
		PC:     pc,
		Opcode: opcode,
	}
	return c.err
}

// TickTimers decrements the delay and sound timer by one if they are nonzero.
func (c *Core) TickTimers() {
	c.timers.Tick()
}

// Advance runs all CPU steps and timer ticks that are due within the elapsed time.
// Fractions of a tick carry over to the next call. It stops and returns the error
// of a step that halted the core.
func (c *Core) Advance(elapsed time.Duration) error {
	if c.state == StateHalted {
		return c.err
	}
	if elapsed <= 0 {
		return nil
	}

	return c.clock.advance(elapsed, func(kind tickKind) error {
		if kind == timerTick {
			c.TickTimers()
			return nil
		}
		return c.Step()
	})
}

// State returns the execution state.
func (c *Core) State() State {
	return c.state
}

// Err returns the error that halted the core, or nil.
func (c *Core) Err() error {
	return c.err
}

// WaitRegister returns the register that receives the key of a pending key wait.
func (c *Core) WaitRegister() uint8 {
	return c.waitRegister
}

// Registers returns a copy of the register file.
func (c *Core) Registers() Registers {
	return c.registers
}

// Memory returns a copy of the memory.
func (c *Core) Memory() Memory {
	return c.memory
}

// Timers returns the current timer values.
func (c *Core) Timers() Timers {
	return c.timers
}

// SoundActive returns whether the sound timer is nonzero and a tone should be audible.
func (c *Core) SoundActive() bool {
	return c.timers.SoundActive()
}

// Framebuffer returns a snapshot of the display.
func (c *Core) Framebuffer() Frame {
	return c.display.Snapshot()
}

// FrameDirty returns whether the display changed since the last ClearFrameDirty call.
func (c *Core) FrameDirty() bool {
	return c.display.Dirty()
}

// ClearFrameDirty marks the current display content as rendered.
func (c *Core) ClearFrameDirty() {
	c.display.ClearDirty()
}

// Keypad returns the keypad for the input collaborator to update.
func (c *Core) Keypad() *Keypad {
	return &c.keypad
}

// SetKey updates the state of a key.
func (c *Core) SetKey(key Key, pressed bool) {
	c.keypad.SetPressed(key, pressed)
}
