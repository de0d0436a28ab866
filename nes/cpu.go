package nes

import "fmt"

// CPU emulates NES CPU - is custom 6502 made by RICOH.
// References:
//   https://en.wikipedia.org/wiki/MOS_Technology_6502
//   http://www.6502.org/tutorials/6502opcodes.html
//   http://hp.vector.co.jp/authors/VA042397/nes/6502.html (In Japanese)

const CPUFrequency = 1789773

const (
	nmiVector   uint16 = 0xFFFA
	resetVector uint16 = 0xFFFC
	irqVector   uint16 = 0xFFFE
	stackPage   uint16 = 0x0100
)

// memory is everything the CPU can see. The CPU never keeps a reference to
// it, the owner passes it on every call.
type memory interface {
	CPURead(address uint16, readOnly bool) byte
	CPUWrite(address uint16, data byte)
}

// CPU executes a whole instruction on the first cycle and then idles until
// the cycle count of that instruction has passed.
type CPU struct {
	a  byte   // Accumulator register
	x  byte   // Index register
	y  byte   // Index register
	s  byte   // Stack pointer
	pc uint16 // Program counter
	p  status // Processor status flag bits

	opcode  byte
	mode    addressingMode
	fetched byte
	addrAbs uint16
	addrRel uint16
	cycles  byte   // Remaining cycles of the current instruction
	clocks  uint64 // Cycles since reset
}

// Registers is a copy of the programmer visible CPU state.
type Registers struct {
	A  byte
	X  byte
	Y  byte
	S  byte
	P  byte
	PC uint16
}

func (r Registers) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X", r.A, r.X, r.Y, r.P, r.S, r.PC)
}

// Registers returns the current register values.
func (c *CPU) Registers() Registers {
	return Registers{A: c.a, X: c.x, Y: c.y, S: c.s, P: byte(c.p), PC: c.pc}
}

// Cycles returns the number of CPU cycles since reset.
func (c *CPU) Cycles() uint64 {
	return c.clocks
}

// reset loads PC from the reset vector. Nothing is written to the stack,
// S starts at 0xFD as on power up.
func (c *CPU) reset(m memory) {
	c.a = 0
	c.x = 0
	c.y = 0
	c.s = 0xFD
	c.p = flagU | flagI
	c.pc = c.read16(m, resetVector)
	c.addrAbs = 0
	c.addrRel = 0
	c.fetched = 0
	c.clocks = 0
	c.cycles = 8
}

// irq is the maskable interrupt. Ignored while I is set.
func (c *CPU) irq(m memory) {
	if c.p.has(flagI) {
		return
	}
	c.interrupt(m, irqVector)
	c.cycles = 7
}

// nmi is non-maskable interrupt, this will be triggered by PPU.
func (c *CPU) nmi(m memory) {
	c.interrupt(m, nmiVector)
	c.cycles = 8
}

// interrupt pushes PC and status with B clear, then jumps through vector.
func (c *CPU) interrupt(m memory, vector uint16) {
	c.push(m, byte(c.pc>>8))
	c.push(m, byte(c.pc))
	c.push(m, byte(c.p&^flagB|flagU))
	c.p.set(flagI, true)
	c.pc = c.read16(m, vector)
}

// clock advances the CPU by one cycle.
func (c *CPU) clock(m memory) {
	if c.cycles == 0 {
		c.opcode = m.CPURead(c.pc, false)
		c.pc++
		c.p.set(flagU, true)
		inst := &instructions[c.opcode]
		c.mode = inst.mode
		c.cycles = inst.cycles
		// The page crossing penalty only applies when the operation reads.
		extraAddress := inst.address(c, m)
		extraExecute := inst.execute(c, m)
		c.cycles += extraAddress & extraExecute
		c.p.set(flagU, true)
	}
	c.clocks++
	c.cycles--
}

// complete reports whether the CPU is at an instruction boundary.
func (c *CPU) complete() bool {
	return c.cycles == 0
}

// step runs clocks until the current instruction, or the one starting now,
// is finished. It returns the number of cycles spent.
func (c *CPU) step(m memory) int {
	n := 0
	for {
		c.clock(m)
		n++
		if c.complete() {
			return n
		}
	}
}

func (c *CPU) read16(m memory, address uint16) uint16 {
	lo := uint16(m.CPURead(address, false))
	hi := uint16(m.CPURead(address+1, false))
	return hi<<8 | lo
}

// push pushes data to stack.
// "With the 6502, the stack is always on page one ($100-$1FF) and works top down."
func (c *CPU) push(m memory, data byte) {
	m.CPUWrite(stackPage|uint16(c.s), data)
	c.s--
}

// pop pops data from stack.
func (c *CPU) pop(m memory) byte {
	c.s++
	return m.CPURead(stackPage|uint16(c.s), false)
}
