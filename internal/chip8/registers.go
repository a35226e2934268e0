package chip8

const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, which receives carry, borrow and collision flags.
	FlagRegister = 0xF

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16
)

// Registers is the register file of the machine.
type Registers struct {
	V     [RegisterCount]uint8
	I     uint16
	PC    uint16
	SP    uint8 // number of used stack entries, 0-StackDepth
	Stack [StackDepth]uint16
}

func (r *Registers) reset() {
	*r = Registers{PC: ProgramStart}
}

// push stores a return address on the stack.
func (r *Registers) push(address uint16) error {
	if int(r.SP) >= StackDepth {
		return ErrStackOverflow
	}
	r.Stack[r.SP] = address
	r.SP++
	return nil
}

// pop removes the topmost return address from the stack.
func (r *Registers) pop() (uint16, error) {
	if r.SP == 0 {
		return 0, ErrStackUnderflow
	}
	r.SP--
	return r.Stack[r.SP], nil
}

// setFlag sets VF to 1 if the condition is true and to 0 otherwise.
func (r *Registers) setFlag(condition bool) {
	if condition {
		r.V[FlagRegister] = 1
	} else {
		r.V[FlagRegister] = 0
	}
}
