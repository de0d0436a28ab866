package nes

// Addressing modes.
// References:
//   https://www.nesdev.org/wiki/CPU_addressing_modes
//   http://www.6502.org/tutorials/6502opcodes.html

type addressingMode int

const (
	implied addressingMode = iota
	accumulator
	immediate
	zeroPage
	zeroPageX
	zeroPageY
	relative
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
)

// size returns the instruction length in bytes including the opcode.
func (mode addressingMode) size() uint16 {
	switch mode {
	case implied, accumulator:
		return 1
	case absolute, absoluteX, absoluteY, indirect:
		return 3
	}
	return 2
}

// Every addressing function leaves the effective address in addrAbs (or the
// branch offset in addrRel) and returns 1 when an indexed access crossed a
// page boundary.

func (c *CPU) imp(m memory) byte {
	return 0
}

func (c *CPU) acc(m memory) byte {
	c.fetched = c.a
	return 0
}

func (c *CPU) imm(m memory) byte {
	c.addrAbs = c.pc
	c.pc++
	return 0
}

func (c *CPU) zp0(m memory) byte {
	c.addrAbs = uint16(m.CPURead(c.pc, false))
	c.pc++
	return 0
}

// zpx wraps within the zero page.
func (c *CPU) zpx(m memory) byte {
	c.addrAbs = uint16(m.CPURead(c.pc, false)+c.x) & 0x00FF
	c.pc++
	return 0
}

func (c *CPU) zpy(m memory) byte {
	c.addrAbs = uint16(m.CPURead(c.pc, false)+c.y) & 0x00FF
	c.pc++
	return 0
}

// rel sign-extends the 8 bit offset.
func (c *CPU) rel(m memory) byte {
	c.addrRel = uint16(m.CPURead(c.pc, false))
	c.pc++
	if c.addrRel&0x80 != 0 {
		c.addrRel |= 0xFF00
	}
	return 0
}

func (c *CPU) abs(m memory) byte {
	c.addrAbs = c.read16(m, c.pc)
	c.pc += 2
	return 0
}

func (c *CPU) abx(m memory) byte {
	base := c.read16(m, c.pc)
	c.pc += 2
	c.addrAbs = base + uint16(c.x)
	return pageCrossed(base, c.addrAbs)
}

func (c *CPU) aby(m memory) byte {
	base := c.read16(m, c.pc)
	c.pc += 2
	c.addrAbs = base + uint16(c.y)
	return pageCrossed(base, c.addrAbs)
}

// ind reproduces the hardware bug: a pointer at $xxFF takes its high byte
// from $xx00 instead of the next page.
func (c *CPU) ind(m memory) byte {
	ptr := c.read16(m, c.pc)
	c.pc += 2
	lo := uint16(m.CPURead(ptr, false))
	var hi uint16
	if ptr&0x00FF == 0x00FF {
		hi = uint16(m.CPURead(ptr&0xFF00, false))
	} else {
		hi = uint16(m.CPURead(ptr+1, false))
	}
	c.addrAbs = hi<<8 | lo
	return 0
}

// izx is (zp,X). The pointer never leaves the zero page.
func (c *CPU) izx(m memory) byte {
	t := m.CPURead(c.pc, false)
	c.pc++
	lo := uint16(m.CPURead(uint16(t+c.x), false))
	hi := uint16(m.CPURead(uint16(t+c.x+1), false))
	c.addrAbs = hi<<8 | lo
	return 0
}

// izy is (zp),Y.
func (c *CPU) izy(m memory) byte {
	t := m.CPURead(c.pc, false)
	c.pc++
	lo := uint16(m.CPURead(uint16(t), false))
	hi := uint16(m.CPURead(uint16(t+1), false))
	base := hi<<8 | lo
	c.addrAbs = base + uint16(c.y)
	return pageCrossed(base, c.addrAbs)
}

func pageCrossed(a, b uint16) byte {
	if a&0xFF00 != b&0xFF00 {
		return 1
	}
	return 0
}
