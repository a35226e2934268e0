package chip8

import (
	"errors"
	"fmt"
)

// Errors reported by the core. Use errors.Is to test the kind of a returned error.
var (
	ErrProgramTooLarge = errors.New("program too large for memory")
	ErrInvalidOpcode   = errors.New("invalid opcode")
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
)

// LoadError is returned when a program can not be loaded into memory.
type LoadError struct {
	Size int // size of the rejected program in bytes
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading program of %d bytes: %s, maximum is %d bytes",
		e.Size, ErrProgramTooLarge, MaxProgramSize)
}

// Unwrap returns ErrProgramTooLarge.
func (e *LoadError) Unwrap() error {
	return ErrProgramTooLarge
}

// ExecutionError is a fatal error that halted the core while executing an instruction.
type ExecutionError struct {
	Kind   error  // one of ErrInvalidOpcode, ErrStackOverflow, ErrStackUnderflow
	PC     uint16 // address the opcode was fetched from
	Opcode uint16
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing opcode %04X at address %03X: %s", e.Opcode, e.PC, e.Kind)
}

// Unwrap returns the kind of the error.
func (e *ExecutionError) Unwrap() error {
	return e.Kind
}
