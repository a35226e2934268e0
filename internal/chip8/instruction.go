package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// OpcodeSize is the size of an instruction in bytes.
const OpcodeSize = 2

// Op identifies a decoded instruction variant.
type Op uint8

// Instruction variants, named after the nibble patterns they are decoded from.
const (
	OpInvalid Op = iota
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1nnn
	OpCall       // 2nnn
	OpSeImm      // 3xkk
	OpSneImm     // 4xkk
	OpSeReg      // 5xy0
	OpLdImm      // 6xkk
	OpAddImm     // 7xkk
	OpLdReg      // 8xy0
	OpOr         // 8xy1
	OpAnd        // 8xy2
	OpXor        // 8xy3
	OpAddReg     // 8xy4
	OpSub        // 8xy5
	OpShr        // 8xy6
	OpSubn       // 8xy7
	OpShl        // 8xyE
	OpSneReg     // 9xy0
	OpLdI        // Annn
	OpJpV0       // Bnnn
	OpRnd        // Cxkk
	OpDrw        // Dxyn
	OpSkp        // Ex9E
	OpSknp       // ExA1
	OpLdVxDT     // Fx07
	OpLdVxK      // Fx0A
	OpLdDTVx     // Fx15
	OpLdSTVx     // Fx18
	OpAddI       // Fx1E
	OpLdF        // Fx29
	OpLdB        // Fx33
	OpLdIVx      // Fx55
	OpLdVxI      // Fx65
)

// mnemonics maps every variant to the instruction definition of the retrogolib
// CHIP-8 instruction set.
var mnemonics = map[Op]*chip8.Instruction{
	OpCls:    chip8.ClsInst,
	OpRet:    chip8.RetInst,
	OpJp:     chip8.JpInst,
	OpCall:   chip8.CallInst,
	OpSeImm:  chip8.SeInst,
	OpSneImm: chip8.SneInst,
	OpSeReg:  chip8.SeInst,
	OpLdImm:  chip8.LdInst,
	OpAddImm: chip8.AddInst,
	OpLdReg:  chip8.LdInst,
	OpOr:     chip8.OrInst,
	OpAnd:    chip8.AndInst,
	OpXor:    chip8.XorInst,
	OpAddReg: chip8.AddInst,
	OpSub:    chip8.SubInst,
	OpShr:    chip8.ShrInst,
	OpSubn:   chip8.SubnInst,
	OpShl:    chip8.ShlInst,
	OpSneReg: chip8.SneInst,
	OpLdI:    chip8.LdInst,
	OpJpV0:   chip8.JpInst,
	OpRnd:    chip8.RndInst,
	OpDrw:    chip8.DrwInst,
	OpSkp:    chip8.SkpInst,
	OpSknp:   chip8.SknpInst,
	OpLdVxDT: chip8.LdInst,
	OpLdVxK:  chip8.LdInst,
	OpLdDTVx: chip8.LdInst,
	OpLdSTVx: chip8.LdInst,
	OpAddI:   chip8.AddInst,
	OpLdF:    chip8.LdInst,
	OpLdB:    chip8.LdInst,
	OpLdIVx:  chip8.LdInst,
	OpLdVxI:  chip8.LdInst,
}

// Instruction is a decoded opcode. Only the operand fields used by the
// variant carry meaningful values.
type Instruction struct {
	Op     Op
	Opcode uint16
	X      uint8  // register index from the second nibble
	Y      uint8  // register index from the third nibble
	N      uint8  // 4 bit immediate from the fourth nibble
	KK     uint8  // 8 bit immediate from the low byte
	NNN    uint16 // 12 bit address from the low 3 nibbles
}

// Decode converts an opcode into an instruction. Unknown encodings return
// an error wrapping ErrInvalidOpcode.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0F,
		Y:      uint8(opcode>>4) & 0x0F,
		N:      uint8(opcode) & 0x0F,
		KK:     uint8(opcode),
		NNN:    opcode & 0x0FFF,
	}

	ins.Op = decodeOp(opcode, ins.N, ins.KK)
	if ins.Op == OpInvalid {
		return ins, fmt.Errorf("%w: %04X", ErrInvalidOpcode, opcode)
	}
	return ins, nil
}

func decodeOp(opcode uint16, n, kk uint8) Op {
	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
	case 0x1:
		return OpJp
	case 0x2:
		return OpCall
	case 0x3:
		return OpSeImm
	case 0x4:
		return OpSneImm
	case 0x5:
		if n == 0 {
			return OpSeReg
		}
	case 0x6:
		return OpLdImm
	case 0x7:
		return OpAddImm
	case 0x8:
		return decodeALU(n)
	case 0x9:
		if n == 0 {
			return OpSneReg
		}
	case 0xA:
		return OpLdI
	case 0xB:
		return OpJpV0
	case 0xC:
		return OpRnd
	case 0xD:
		return OpDrw
	case 0xE:
		switch kk {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF:
		return decodeMisc(kk)
	}
	return OpInvalid
}

func decodeALU(n uint8) Op {
	switch n {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	}
	return OpInvalid
}

func decodeMisc(kk uint8) Op {
	switch kk {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddI
	case 0x29:
		return OpLdF
	case 0x33:
		return OpLdB
	case 0x55:
		return OpLdIVx
	case 0x65:
		return OpLdVxI
	}
	return OpInvalid
}

// Name returns the assembler mnemonic of the instruction.
func (i Instruction) Name() string {
	ins, ok := mnemonics[i.Op]
	if !ok {
		return ""
	}
	return ins.Name
}

// IsSkip returns whether the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	switch i.Op {
	case OpSeImm, OpSneImm, OpSeReg, OpSneReg, OpSkp, OpSknp:
		return true
	default:
		return false
	}
}

// String returns the instruction in assembler syntax.
func (i Instruction) String() string {
	if i.Op == OpInvalid {
		return fmt.Sprintf("invalid $%04X", i.Opcode)
	}

	params := i.params()
	if params == "" {
		return i.Name()
	}
	return fmt.Sprintf("%s %s", i.Name(), params)
}

func (i Instruction) params() string {
	switch i.Op {
	case OpCls, OpRet:
		return ""
	case OpJp, OpCall:
		return fmt.Sprintf("$%03X", i.NNN)
	case OpJpV0:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case OpSeImm, OpSneImm, OpLdImm, OpAddImm, OpRnd:
		return fmt.Sprintf("V%X, $%02X", i.X, i.KK)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpShr, OpSubn, OpShl:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case OpLdI:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, %d", i.X, i.Y, i.N)
	case OpSkp, OpSknp:
		return fmt.Sprintf("V%X", i.X)
	case OpLdVxDT:
		return fmt.Sprintf("V%X, DT", i.X)
	case OpLdVxK:
		return fmt.Sprintf("V%X, K", i.X)
	case OpLdDTVx:
		return fmt.Sprintf("DT, V%X", i.X)
	case OpLdSTVx:
		return fmt.Sprintf("ST, V%X", i.X)
	case OpAddI:
		return fmt.Sprintf("I, V%X", i.X)
	case OpLdF:
		return fmt.Sprintf("F, V%X", i.X)
	case OpLdB:
		return fmt.Sprintf("B, V%X", i.X)
	case OpLdIVx:
		return fmt.Sprintf("[I], V%X", i.X)
	case OpLdVxI:
		return fmt.Sprintf("V%X, [I]", i.X)
	}
	return ""
}
