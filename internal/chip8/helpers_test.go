package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type fixedRandom struct {
	value uint8
}

func (f fixedRandom) Byte() uint8 {
	return f.value
}

// assemble converts opcodes into big-endian program bytes.
func assemble(opcodes ...uint16) []byte {
	program := make([]byte, 0, len(opcodes)*OpcodeSize)
	for _, opcode := range opcodes {
		program = append(program, byte(opcode>>8), byte(opcode))
	}
	return program
}

func newTestCore(t *testing.T, quirks Quirks, opcodes ...uint16) *Core {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Quirks = quirks
	cfg.Random = fixedRandom{value: 0xA5}
	cfg.Logger = log.NewTestLogger(t)

	c, err := NewWithConfig(assemble(opcodes...), cfg)
	assert.NoError(t, err)
	return c
}

// steps executes n instructions and fails the test on any error.
func steps(t *testing.T, c *Core, n int) {
	t.Helper()
	for range n {
		assert.NoError(t, c.Step())
	}
}
