package chip8

import "github.com/retroenv/retrogolib/log"

// execute runs a decoded instruction. PC already points to the next instruction.
func (c *Core) execute(ins Instruction) error {
	r := &c.registers
	v := &r.V
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCls:
		c.display.Clear()

	case OpRet:
		address, err := r.pop()
		if err != nil {
			return err
		}
		r.PC = address

	case OpJp:
		r.PC = ins.NNN

	case OpCall:
		if err := r.push(r.PC); err != nil {
			return err
		}
		r.PC = ins.NNN

	case OpSeImm:
		c.skipIf(v[x] == ins.KK)

	case OpSneImm:
		c.skipIf(v[x] != ins.KK)

	case OpSeReg:
		c.skipIf(v[x] == v[y])

	case OpSneReg:
		c.skipIf(v[x] != v[y])

	case OpLdImm:
		v[x] = ins.KK

	case OpAddImm:
		v[x] += ins.KK

	case OpLdReg:
		v[x] = v[y]

	case OpOr:
		v[x] |= v[y]
		c.resetFlagAfterLogic()

	case OpAnd:
		v[x] &= v[y]
		c.resetFlagAfterLogic()

	case OpXor:
		v[x] ^= v[y]
		c.resetFlagAfterLogic()

	case OpAddReg:
		sum := uint16(v[x]) + uint16(v[y])
		v[x] = uint8(sum)
		r.setFlag(sum > 0xFF)

	case OpSub:
		noBorrow := v[x] >= v[y]
		v[x] -= v[y]
		r.setFlag(noBorrow)

	case OpSubn:
		noBorrow := v[y] >= v[x]
		v[x] = v[y] - v[x]
		r.setFlag(noBorrow)

	case OpShr:
		value := c.shiftSource(x, y)
		v[x] = value >> 1
		v[FlagRegister] = value & 0x01

	case OpShl:
		value := c.shiftSource(x, y)
		v[x] = value << 1
		v[FlagRegister] = value >> 7

	case OpLdI:
		r.I = ins.NNN

	case OpJpV0:
		r.PC = (ins.NNN + uint16(v[0])) & MaxAddress

	case OpRnd:
		v[x] = c.random.Byte() & ins.KK

	case OpDrw:
		c.draw(v[x], v[y], ins.N)

	case OpSkp:
		c.skipIf(c.keypad.IsPressed(Key(v[x])))

	case OpSknp:
		c.skipIf(!c.keypad.IsPressed(Key(v[x])))

	case OpLdVxDT:
		v[x] = c.timers.Delay

	case OpLdVxK:
		c.waitForKey(x)

	case OpLdDTVx:
		c.timers.Delay = v[x]

	case OpLdSTVx:
		c.timers.Sound = v[x]

	case OpAddI:
		r.I += uint16(v[x])

	case OpLdF:
		r.I = FontAddress(v[x])

	case OpLdB:
		value := v[x]
		c.memory.write(r.I, value/100)
		c.memory.write(r.I+1, value/10%10)
		c.memory.write(r.I+2, value%10)

	case OpLdIVx:
		for i := uint16(0); i <= uint16(x); i++ {
			c.memory.write(r.I+i, v[i])
		}
		if c.quirks.LoadStoreIncrementsI {
			r.I += uint16(x) + 1
		}

	case OpLdVxI:
		for i := uint16(0); i <= uint16(x); i++ {
			v[i] = c.memory.Read(r.I + i)
		}
		if c.quirks.LoadStoreIncrementsI {
			r.I += uint16(x) + 1
		}

	default:
		return ErrInvalidOpcode
	}

	return nil
}

// skipIf skips the next instruction if the condition is true.
func (c *Core) skipIf(condition bool) {
	if condition {
		c.registers.PC = (c.registers.PC + OpcodeSize) & MaxAddress
	}
}

func (c *Core) resetFlagAfterLogic() {
	if c.quirks.LogicResetsVF {
		c.registers.V[FlagRegister] = 0
	}
}

func (c *Core) shiftSource(x, y uint8) uint8 {
	if c.quirks.ShiftUsesVY {
		return c.registers.V[y]
	}
	return c.registers.V[x]
}

// draw blits an n byte sprite read from memory at I to the position x, y and
// sets VF to the collision flag.
func (c *Core) draw(x, y, n uint8) {
	sprite := make([]byte, n)
	for row := range sprite {
		sprite[row] = c.memory.Read(c.registers.I + uint16(row))
	}
	collision := c.display.DrawSprite(int(x), int(y), sprite)
	c.registers.setFlag(collision)
}

// waitForKey enters the key wait state, the key is stored in Vx once it is pressed.
func (c *Core) waitForKey(x uint8) {
	c.state = StateWaitingForKey
	c.waitRegister = x
	c.keypad.BeginWait()
	c.logger.Debug("Waiting for key", log.Uint8("register", x))
}
