package nes

type instruction struct {
	mnemonic string
	mode     addressingMode
	address  func(*CPU, memory) byte
	execute  func(*CPU, memory) byte
	cycles   byte
}

// instructions is indexed by opcode. Undefined opcodes are 2 cycle no-ops.
// https://www.nesdev.org/obelisk-6502-guide/reference.html
var instructions = [256]instruction{
	{"BRK", implied, (*CPU).imp, (*CPU).brk, 7},     // 0x00
	{"ORA", indirectX, (*CPU).izx, (*CPU).ora, 6},   // 0x01
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x02
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x03
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x04
	{"ORA", zeroPage, (*CPU).zp0, (*CPU).ora, 3},    // 0x05
	{"ASL", zeroPage, (*CPU).zp0, (*CPU).asl, 5},    // 0x06
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x07
	{"PHP", implied, (*CPU).imp, (*CPU).php, 3},     // 0x08
	{"ORA", immediate, (*CPU).imm, (*CPU).ora, 2},   // 0x09
	{"ASL", accumulator, (*CPU).acc, (*CPU).asl, 2}, // 0x0A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x0B
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x0C
	{"ORA", absolute, (*CPU).abs, (*CPU).ora, 4},    // 0x0D
	{"ASL", absolute, (*CPU).abs, (*CPU).asl, 6},    // 0x0E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x0F
	{"BPL", relative, (*CPU).rel, (*CPU).bpl, 2},    // 0x10
	{"ORA", indirectY, (*CPU).izy, (*CPU).ora, 5},   // 0x11
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x12
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x13
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x14
	{"ORA", zeroPageX, (*CPU).zpx, (*CPU).ora, 4},   // 0x15
	{"ASL", zeroPageX, (*CPU).zpx, (*CPU).asl, 6},   // 0x16
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x17
	{"CLC", implied, (*CPU).imp, (*CPU).clc, 2},     // 0x18
	{"ORA", absoluteY, (*CPU).aby, (*CPU).ora, 4},   // 0x19
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x1A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x1B
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x1C
	{"ORA", absoluteX, (*CPU).abx, (*CPU).ora, 4},   // 0x1D
	{"ASL", absoluteX, (*CPU).abx, (*CPU).asl, 7},   // 0x1E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x1F
	{"JSR", absolute, (*CPU).abs, (*CPU).jsr, 6},    // 0x20
	{"AND", indirectX, (*CPU).izx, (*CPU).and, 6},   // 0x21
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x22
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x23
	{"BIT", zeroPage, (*CPU).zp0, (*CPU).bit, 3},    // 0x24
	{"AND", zeroPage, (*CPU).zp0, (*CPU).and, 3},    // 0x25
	{"ROL", zeroPage, (*CPU).zp0, (*CPU).rol, 5},    // 0x26
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x27
	{"PLP", implied, (*CPU).imp, (*CPU).plp, 4},     // 0x28
	{"AND", immediate, (*CPU).imm, (*CPU).and, 2},   // 0x29
	{"ROL", accumulator, (*CPU).acc, (*CPU).rol, 2}, // 0x2A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x2B
	{"BIT", absolute, (*CPU).abs, (*CPU).bit, 4},    // 0x2C
	{"AND", absolute, (*CPU).abs, (*CPU).and, 4},    // 0x2D
	{"ROL", absolute, (*CPU).abs, (*CPU).rol, 6},    // 0x2E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x2F
	{"BMI", relative, (*CPU).rel, (*CPU).bmi, 2},    // 0x30
	{"AND", indirectY, (*CPU).izy, (*CPU).and, 5},   // 0x31
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x32
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x33
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x34
	{"AND", zeroPageX, (*CPU).zpx, (*CPU).and, 4},   // 0x35
	{"ROL", zeroPageX, (*CPU).zpx, (*CPU).rol, 6},   // 0x36
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x37
	{"SEC", implied, (*CPU).imp, (*CPU).sec, 2},     // 0x38
	{"AND", absoluteY, (*CPU).aby, (*CPU).and, 4},   // 0x39
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x3A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x3B
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x3C
	{"AND", absoluteX, (*CPU).abx, (*CPU).and, 4},   // 0x3D
	{"ROL", absoluteX, (*CPU).abx, (*CPU).rol, 7},   // 0x3E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x3F
	{"RTI", implied, (*CPU).imp, (*CPU).rti, 6},     // 0x40
	{"EOR", indirectX, (*CPU).izx, (*CPU).eor, 6},   // 0x41
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x42
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x43
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x44
	{"EOR", zeroPage, (*CPU).zp0, (*CPU).eor, 3},    // 0x45
	{"LSR", zeroPage, (*CPU).zp0, (*CPU).lsr, 5},    // 0x46
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x47
	{"PHA", implied, (*CPU).imp, (*CPU).pha, 3},     // 0x48
	{"EOR", immediate, (*CPU).imm, (*CPU).eor, 2},   // 0x49
	{"LSR", accumulator, (*CPU).acc, (*CPU).lsr, 2}, // 0x4A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x4B
	{"JMP", absolute, (*CPU).abs, (*CPU).jmp, 3},    // 0x4C
	{"EOR", absolute, (*CPU).abs, (*CPU).eor, 4},    // 0x4D
	{"LSR", absolute, (*CPU).abs, (*CPU).lsr, 6},    // 0x4E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x4F
	{"BVC", relative, (*CPU).rel, (*CPU).bvc, 2},    // 0x50
	{"EOR", indirectY, (*CPU).izy, (*CPU).eor, 5},   // 0x51
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x52
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x53
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x54
	{"EOR", zeroPageX, (*CPU).zpx, (*CPU).eor, 4},   // 0x55
	{"LSR", zeroPageX, (*CPU).zpx, (*CPU).lsr, 6},   // 0x56
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x57
	{"CLI", implied, (*CPU).imp, (*CPU).cli, 2},     // 0x58
	{"EOR", absoluteY, (*CPU).aby, (*CPU).eor, 4},   // 0x59
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x5A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x5B
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x5C
	{"EOR", absoluteX, (*CPU).abx, (*CPU).eor, 4},   // 0x5D
	{"LSR", absoluteX, (*CPU).abx, (*CPU).lsr, 7},   // 0x5E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x5F
	{"RTS", implied, (*CPU).imp, (*CPU).rts, 6},     // 0x60
	{"ADC", indirectX, (*CPU).izx, (*CPU).adc, 6},   // 0x61
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x62
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x63
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x64
	{"ADC", zeroPage, (*CPU).zp0, (*CPU).adc, 3},    // 0x65
	{"ROR", zeroPage, (*CPU).zp0, (*CPU).ror, 5},    // 0x66
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x67
	{"PLA", implied, (*CPU).imp, (*CPU).pla, 4},     // 0x68
	{"ADC", immediate, (*CPU).imm, (*CPU).adc, 2},   // 0x69
	{"ROR", accumulator, (*CPU).acc, (*CPU).ror, 2}, // 0x6A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x6B
	{"JMP", indirect, (*CPU).ind, (*CPU).jmp, 5},    // 0x6C
	{"ADC", absolute, (*CPU).abs, (*CPU).adc, 4},    // 0x6D
	{"ROR", absolute, (*CPU).abs, (*CPU).ror, 6},    // 0x6E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x6F
	{"BVS", relative, (*CPU).rel, (*CPU).bvs, 2},    // 0x70
	{"ADC", indirectY, (*CPU).izy, (*CPU).adc, 5},   // 0x71
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x72
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x73
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x74
	{"ADC", zeroPageX, (*CPU).zpx, (*CPU).adc, 4},   // 0x75
	{"ROR", zeroPageX, (*CPU).zpx, (*CPU).ror, 6},   // 0x76
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x77
	{"SEI", implied, (*CPU).imp, (*CPU).sei, 2},     // 0x78
	{"ADC", absoluteY, (*CPU).aby, (*CPU).adc, 4},   // 0x79
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x7A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x7B
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x7C
	{"ADC", absoluteX, (*CPU).abx, (*CPU).adc, 4},   // 0x7D
	{"ROR", absoluteX, (*CPU).abx, (*CPU).ror, 7},   // 0x7E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x7F
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x80
	{"STA", indirectX, (*CPU).izx, (*CPU).sta, 6},   // 0x81
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x82
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x83
	{"STY", zeroPage, (*CPU).zp0, (*CPU).sty, 3},    // 0x84
	{"STA", zeroPage, (*CPU).zp0, (*CPU).sta, 3},    // 0x85
	{"STX", zeroPage, (*CPU).zp0, (*CPU).stx, 3},    // 0x86
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x87
	{"DEY", implied, (*CPU).imp, (*CPU).dey, 2},     // 0x88
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x89
	{"TXA", implied, (*CPU).imp, (*CPU).txa, 2},     // 0x8A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x8B
	{"STY", absolute, (*CPU).abs, (*CPU).sty, 4},    // 0x8C
	{"STA", absolute, (*CPU).abs, (*CPU).sta, 4},    // 0x8D
	{"STX", absolute, (*CPU).abs, (*CPU).stx, 4},    // 0x8E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x8F
	{"BCC", relative, (*CPU).rel, (*CPU).bcc, 2},    // 0x90
	{"STA", indirectY, (*CPU).izy, (*CPU).sta, 6},   // 0x91
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x92
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x93
	{"STY", zeroPageX, (*CPU).zpx, (*CPU).sty, 4},   // 0x94
	{"STA", zeroPageX, (*CPU).zpx, (*CPU).sta, 4},   // 0x95
	{"STX", zeroPageY, (*CPU).zpy, (*CPU).stx, 4},   // 0x96
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x97
	{"TYA", implied, (*CPU).imp, (*CPU).tya, 2},     // 0x98
	{"STA", absoluteY, (*CPU).aby, (*CPU).sta, 5},   // 0x99
	{"TXS", implied, (*CPU).imp, (*CPU).txs, 2},     // 0x9A
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x9B
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x9C
	{"STA", absoluteX, (*CPU).abx, (*CPU).sta, 5},   // 0x9D
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x9E
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0x9F
	{"LDY", immediate, (*CPU).imm, (*CPU).ldy, 2},   // 0xA0
	{"LDA", indirectX, (*CPU).izx, (*CPU).lda, 6},   // 0xA1
	{"LDX", immediate, (*CPU).imm, (*CPU).ldx, 2},   // 0xA2
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xA3
	{"LDY", zeroPage, (*CPU).zp0, (*CPU).ldy, 3},    // 0xA4
	{"LDA", zeroPage, (*CPU).zp0, (*CPU).lda, 3},    // 0xA5
	{"LDX", zeroPage, (*CPU).zp0, (*CPU).ldx, 3},    // 0xA6
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xA7
	{"TAY", implied, (*CPU).imp, (*CPU).tay, 2},     // 0xA8
	{"LDA", immediate, (*CPU).imm, (*CPU).lda, 2},   // 0xA9
	{"TAX", implied, (*CPU).imp, (*CPU).tax, 2},     // 0xAA
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xAB
	{"LDY", absolute, (*CPU).abs, (*CPU).ldy, 4},    // 0xAC
	{"LDA", absolute, (*CPU).abs, (*CPU).lda, 4},    // 0xAD
	{"LDX", absolute, (*CPU).abs, (*CPU).ldx, 4},    // 0xAE
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xAF
	{"BCS", relative, (*CPU).rel, (*CPU).bcs, 2},    // 0xB0
	{"LDA", indirectY, (*CPU).izy, (*CPU).lda, 5},   // 0xB1
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xB2
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xB3
	{"LDY", zeroPageX, (*CPU).zpx, (*CPU).ldy, 4},   // 0xB4
	{"LDA", zeroPageX, (*CPU).zpx, (*CPU).lda, 4},   // 0xB5
	{"LDX", zeroPageY, (*CPU).zpy, (*CPU).ldx, 4},   // 0xB6
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xB7
	{"CLV", implied, (*CPU).imp, (*CPU).clv, 2},     // 0xB8
	{"LDA", absoluteY, (*CPU).aby, (*CPU).lda, 4},   // 0xB9
	{"TSX", implied, (*CPU).imp, (*CPU).tsx, 2},     // 0xBA
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xBB
	{"LDY", absoluteX, (*CPU).abx, (*CPU).ldy, 4},   // 0xBC
	{"LDA", absoluteX, (*CPU).abx, (*CPU).lda, 4},   // 0xBD
	{"LDX", absoluteY, (*CPU).aby, (*CPU).ldx, 4},   // 0xBE
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xBF
	{"CPY", immediate, (*CPU).imm, (*CPU).cpy, 2},   // 0xC0
	{"CMP", indirectX, (*CPU).izx, (*CPU).cmp, 6},   // 0xC1
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xC2
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xC3
	{"CPY", zeroPage, (*CPU).zp0, (*CPU).cpy, 3},    // 0xC4
	{"CMP", zeroPage, (*CPU).zp0, (*CPU).cmp, 3},    // 0xC5
	{"DEC", zeroPage, (*CPU).zp0, (*CPU).dec, 5},    // 0xC6
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xC7
	{"INY", implied, (*CPU).imp, (*CPU).iny, 2},     // 0xC8
	{"CMP", immediate, (*CPU).imm, (*CPU).cmp, 2},   // 0xC9
	{"DEX", implied, (*CPU).imp, (*CPU).dex, 2},     // 0xCA
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xCB
	{"CPY", absolute, (*CPU).abs, (*CPU).cpy, 4},    // 0xCC
	{"CMP", absolute, (*CPU).abs, (*CPU).cmp, 4},    // 0xCD
	{"DEC", absolute, (*CPU).abs, (*CPU).dec, 6},    // 0xCE
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xCF
	{"BNE", relative, (*CPU).rel, (*CPU).bne, 2},    // 0xD0
	{"CMP", indirectY, (*CPU).izy, (*CPU).cmp, 5},   // 0xD1
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xD2
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xD3
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xD4
	{"CMP", zeroPageX, (*CPU).zpx, (*CPU).cmp, 4},   // 0xD5
	{"DEC", zeroPageX, (*CPU).zpx, (*CPU).dec, 6},   // 0xD6
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xD7
	{"CLD", implied, (*CPU).imp, (*CPU).cld, 2},     // 0xD8
	{"CMP", absoluteY, (*CPU).aby, (*CPU).cmp, 4},   // 0xD9
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xDA
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xDB
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xDC
	{"CMP", absoluteX, (*CPU).abx, (*CPU).cmp, 4},   // 0xDD
	{"DEC", absoluteX, (*CPU).abx, (*CPU).dec, 7},   // 0xDE
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xDF
	{"CPX", immediate, (*CPU).imm, (*CPU).cpx, 2},   // 0xE0
	{"SBC", indirectX, (*CPU).izx, (*CPU).sbc, 6},   // 0xE1
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xE2
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xE3
	{"CPX", zeroPage, (*CPU).zp0, (*CPU).cpx, 3},    // 0xE4
	{"SBC", zeroPage, (*CPU).zp0, (*CPU).sbc, 3},    // 0xE5
	{"INC", zeroPage, (*CPU).zp0, (*CPU).inc, 5},    // 0xE6
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xE7
	{"INX", implied, (*CPU).imp, (*CPU).inx, 2},     // 0xE8
	{"SBC", immediate, (*CPU).imm, (*CPU).sbc, 2},   // 0xE9
	{"NOP", implied, (*CPU).imp, (*CPU).nop, 2},     // 0xEA
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xEB
	{"CPX", absolute, (*CPU).abs, (*CPU).cpx, 4},    // 0xEC
	{"SBC", absolute, (*CPU).abs, (*CPU).sbc, 4},    // 0xED
	{"INC", absolute, (*CPU).abs, (*CPU).inc, 6},    // 0xEE
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xEF
	{"BEQ", relative, (*CPU).rel, (*CPU).beq, 2},    // 0xF0
	{"SBC", indirectY, (*CPU).izy, (*CPU).sbc, 5},   // 0xF1
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xF2
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xF3
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xF4
	{"SBC", zeroPageX, (*CPU).zpx, (*CPU).sbc, 4},   // 0xF5
	{"INC", zeroPageX, (*CPU).zpx, (*CPU).inc, 6},   // 0xF6
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xF7
	{"SED", implied, (*CPU).imp, (*CPU).sed, 2},     // 0xF8
	{"SBC", absoluteY, (*CPU).aby, (*CPU).sbc, 4},   // 0xF9
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xFA
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xFB
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xFC
	{"SBC", absoluteX, (*CPU).abx, (*CPU).sbc, 4},   // 0xFD
	{"INC", absoluteX, (*CPU).abx, (*CPU).inc, 7},   // 0xFE
	{"???", implied, (*CPU).imp, (*CPU).xxx, 2},     // 0xFF
}

// fetch reads the operand at the effective address. Implied and accumulator
// instructions operate on fetched as set by the addressing function.
func (c *CPU) fetch(m memory) byte {
	if c.mode != implied && c.mode != accumulator {
		c.fetched = m.CPURead(c.addrAbs, false)
	}
	return c.fetched
}

// store writes a read-modify-write result back to A or memory.
func (c *CPU) store(m memory, data byte) {
	if c.mode == accumulator {
		c.a = data
	} else {
		m.CPUWrite(c.addrAbs, data)
	}
}

func (c *CPU) setZN(x byte) {
	c.p.set(flagZ, x == 0)
	c.p.set(flagN, x&0x80 != 0)
}

// branch takes one extra cycle, and another one when the target is on a
// different page.
func (c *CPU) branch(cond bool) {
	if !cond {
		return
	}
	c.cycles++
	c.addrAbs = c.pc + c.addrRel
	if c.addrAbs&0xFF00 != c.pc&0xFF00 {
		c.cycles++
	}
	c.pc = c.addrAbs
}

func (c *CPU) compare(m memory, reg byte) {
	data := c.fetch(m)
	c.p.set(flagC, reg >= data)
	c.setZN(reg - data)
}

// ADC - Add with Carry.
func (c *CPU) adc(m memory) byte {
	data := uint16(c.fetch(m))
	a := uint16(c.a)
	res := a + data + c.p.carry()
	c.p.set(flagC, res > 0xFF)
	// Overflow when both operands share a sign the result does not.
	c.p.set(flagV, (^(a^data))&(a^res)&0x80 != 0)
	c.a = byte(res)
	c.setZN(c.a)
	return 1
}

// AND - And.
func (c *CPU) and(m memory) byte {
	c.a &= c.fetch(m)
	c.setZN(c.a)
	return 1
}

// ASL - Arithmetic Shift Left.
func (c *CPU) asl(m memory) byte {
	data := c.fetch(m)
	c.p.set(flagC, data&0x80 != 0)
	data <<= 1
	c.setZN(data)
	c.store(m, data)
	return 0
}

// BCC - Branch on Carry Clear.
func (c *CPU) bcc(m memory) byte {
	c.branch(!c.p.has(flagC))
	return 0
}

// BCS - Branch on Carry Set.
func (c *CPU) bcs(m memory) byte {
	c.branch(c.p.has(flagC))
	return 0
}

// BEQ - Branch on Equal.
func (c *CPU) beq(m memory) byte {
	c.branch(c.p.has(flagZ))
	return 0
}

// BIT - test BITS.
func (c *CPU) bit(m memory) byte {
	data := c.fetch(m)
	c.p.set(flagZ, c.a&data == 0)
	c.p.set(flagN, data&0x80 != 0)
	c.p.set(flagV, data&0x40 != 0)
	return 0
}

// BMI - Branch on Minus.
func (c *CPU) bmi(m memory) byte {
	c.branch(c.p.has(flagN))
	return 0
}

// BNE - Branch on Not Equal.
func (c *CPU) bne(m memory) byte {
	c.branch(!c.p.has(flagZ))
	return 0
}

// BPL - Branch on Plus.
func (c *CPU) bpl(m memory) byte {
	c.branch(!c.p.has(flagN))
	return 0
}

// BRK - Break Interrupt.
// The byte after BRK is padding, the pushed return address skips it.
func (c *CPU) brk(m memory) byte {
	c.pc++
	c.push(m, byte(c.pc>>8))
	c.push(m, byte(c.pc))
	c.push(m, byte(c.p|flagB|flagU))
	c.p.set(flagI, true)
	c.pc = c.read16(m, irqVector)
	return 0
}

// BVC - Branch on Overflow Clear.
func (c *CPU) bvc(m memory) byte {
	c.branch(!c.p.has(flagV))
	return 0
}

// BVS - Branch on Overflow Set.
func (c *CPU) bvs(m memory) byte {
	c.branch(c.p.has(flagV))
	return 0
}

// CLC - Clear Carry.
func (c *CPU) clc(m memory) byte {
	c.p.set(flagC, false)
	return 0
}

// CLD - Clear Decimal.
func (c *CPU) cld(m memory) byte {
	c.p.set(flagD, false)
	return 0
}

// CLI - Clear Interrupt.
func (c *CPU) cli(m memory) byte {
	c.p.set(flagI, false)
	return 0
}

// CLV - Clear Overflow.
func (c *CPU) clv(m memory) byte {
	c.p.set(flagV, false)
	return 0
}

// CMP - Compare Accumulator.
func (c *CPU) cmp(m memory) byte {
	c.compare(m, c.a)
	return 1
}

// CPX - Compare X register.
func (c *CPU) cpx(m memory) byte {
	c.compare(m, c.x)
	return 0
}

// CPY - Compare Y register.
func (c *CPU) cpy(m memory) byte {
	c.compare(m, c.y)
	return 0
}

// DEC - Decrement Memory.
func (c *CPU) dec(m memory) byte {
	data := c.fetch(m) - 1
	m.CPUWrite(c.addrAbs, data)
	c.setZN(data)
	return 0
}

// DEX - Decrement X Register.
func (c *CPU) dex(m memory) byte {
	c.x--
	c.setZN(c.x)
	return 0
}

// DEY - Decrement Y Register.
func (c *CPU) dey(m memory) byte {
	c.y--
	c.setZN(c.y)
	return 0
}

// EOR - Exclusive OR.
func (c *CPU) eor(m memory) byte {
	c.a ^= c.fetch(m)
	c.setZN(c.a)
	return 1
}

// INC - Increment Memory.
func (c *CPU) inc(m memory) byte {
	data := c.fetch(m) + 1
	m.CPUWrite(c.addrAbs, data)
	c.setZN(data)
	return 0
}

// INX - Increment X Register.
func (c *CPU) inx(m memory) byte {
	c.x++
	c.setZN(c.x)
	return 0
}

// INY - Increment Y Register.
func (c *CPU) iny(m memory) byte {
	c.y++
	c.setZN(c.y)
	return 0
}

// JMP - Jump.
func (c *CPU) jmp(m memory) byte {
	c.pc = c.addrAbs
	return 0
}

// JSR - Jump to Subroutine.
// The pushed address is the last byte of the JSR instruction.
func (c *CPU) jsr(m memory) byte {
	c.pc--
	c.push(m, byte(c.pc>>8))
	c.push(m, byte(c.pc))
	c.pc = c.addrAbs
	return 0
}

// LDA - Load Accumulator.
func (c *CPU) lda(m memory) byte {
	c.a = c.fetch(m)
	c.setZN(c.a)
	return 1
}

// LDX - Load X Register.
func (c *CPU) ldx(m memory) byte {
	c.x = c.fetch(m)
	c.setZN(c.x)
	return 1
}

// LDY - Load Y Register.
func (c *CPU) ldy(m memory) byte {
	c.y = c.fetch(m)
	c.setZN(c.y)
	return 1
}

// LSR - Logical Shift Right.
func (c *CPU) lsr(m memory) byte {
	data := c.fetch(m)
	c.p.set(flagC, data&0x01 != 0)
	data >>= 1
	c.setZN(data)
	c.store(m, data)
	return 0
}

// NOP - No Operation.
func (c *CPU) nop(m memory) byte {
	return 0
}

// ORA - Logical Inclusive OR.
func (c *CPU) ora(m memory) byte {
	c.a |= c.fetch(m)
	c.setZN(c.a)
	return 1
}

// PHA - Push Accumulator.
func (c *CPU) pha(m memory) byte {
	c.push(m, c.a)
	return 0
}

// PHP - Push Processor Status.
// B and U are always set on the pushed copy.
func (c *CPU) php(m memory) byte {
	c.push(m, byte(c.p|flagB|flagU))
	return 0
}

// PLA - Pull Accumulator.
func (c *CPU) pla(m memory) byte {
	c.a = c.pop(m)
	c.setZN(c.a)
	return 0
}

// PLP - Pull Processor Status.
func (c *CPU) plp(m memory) byte {
	c.p = status(c.pop(m))&^flagB | flagU
	return 0
}

// ROL - Rotate Left.
func (c *CPU) rol(m memory) byte {
	data := c.fetch(m)
	res := data<<1 | byte(c.p.carry())
	c.p.set(flagC, data&0x80 != 0)
	c.setZN(res)
	c.store(m, res)
	return 0
}

// ROR - Rotate Right.
func (c *CPU) ror(m memory) byte {
	data := c.fetch(m)
	res := byte(c.p.carry())<<7 | data>>1
	c.p.set(flagC, data&0x01 != 0)
	c.setZN(res)
	c.store(m, res)
	return 0
}

// RTI - Return from Interrupt.
func (c *CPU) rti(m memory) byte {
	c.p = status(c.pop(m))&^flagB | flagU
	lo := uint16(c.pop(m))
	hi := uint16(c.pop(m))
	c.pc = hi<<8 | lo
	return 0
}

// RTS - Return from Subroutine.
func (c *CPU) rts(m memory) byte {
	lo := uint16(c.pop(m))
	hi := uint16(c.pop(m))
	c.pc = (hi<<8 | lo) + 1
	return 0
}

// SBC - Subtract with Carry.
// A - M - (1 - C) is A + ^M + C, so it shares ADC's flag logic.
func (c *CPU) sbc(m memory) byte {
	data := uint16(c.fetch(m)) ^ 0x00FF
	a := uint16(c.a)
	res := a + data + c.p.carry()
	c.p.set(flagC, res&0xFF00 != 0)
	c.p.set(flagV, (res^a)&(res^data)&0x80 != 0)
	c.a = byte(res)
	c.setZN(c.a)
	return 1
}

// SEC - Set Carry.
func (c *CPU) sec(m memory) byte {
	c.p.set(flagC, true)
	return 0
}

// SED - Set Decimal.
// The flag is kept but the NES ALU ignores it.
func (c *CPU) sed(m memory) byte {
	c.p.set(flagD, true)
	return 0
}

// SEI - Set Interrupt.
func (c *CPU) sei(m memory) byte {
	c.p.set(flagI, true)
	return 0
}

// STA - Store A Register.
func (c *CPU) sta(m memory) byte {
	m.CPUWrite(c.addrAbs, c.a)
	return 0
}

// STX - Store X Register.
func (c *CPU) stx(m memory) byte {
	m.CPUWrite(c.addrAbs, c.x)
	return 0
}

// STY - Store Y Register.
func (c *CPU) sty(m memory) byte {
	m.CPUWrite(c.addrAbs, c.y)
	return 0
}

// TAX - Transfer A to X.
func (c *CPU) tax(m memory) byte {
	c.x = c.a
	c.setZN(c.x)
	return 0
}

// TAY - Transfer A to Y.
func (c *CPU) tay(m memory) byte {
	c.y = c.a
	c.setZN(c.y)
	return 0
}

// TSX - Transfer S to X.
func (c *CPU) tsx(m memory) byte {
	c.x = c.s
	c.setZN(c.x)
	return 0
}

// TXA - Transfer X to A.
func (c *CPU) txa(m memory) byte {
	c.a = c.x
	c.setZN(c.a)
	return 0
}

// TXS - Transfer X to S.
func (c *CPU) txs(m memory) byte {
	c.s = c.x
	return 0
}

// TYA - Transfer Y to A.
func (c *CPU) tya(m memory) byte {
	c.a = c.y
	c.setZN(c.a)
	return 0
}

// xxx is every undefined opcode.
func (c *CPU) xxx(m memory) byte {
	return 0
}
