package nes

import (
	"fmt"
	"strings"
)

// Disassemble decodes the instruction at address without side effects and
// returns its text and the address of the next instruction.
func (b *Bus) Disassemble(address uint16) (string, uint16) {
	opcode := b.CPURead(address, true)
	inst := instructions[opcode]
	size := inst.mode.size()
	lo := b.CPURead(address+1, true)
	hi := b.CPURead(address+2, true)
	word := uint16(hi)<<8 | uint16(lo)

	var operand string
	switch inst.mode {
	case accumulator:
		operand = "A"
	case immediate:
		operand = fmt.Sprintf("#$%02X", lo)
	case zeroPage:
		operand = fmt.Sprintf("$%02X", lo)
	case zeroPageX:
		operand = fmt.Sprintf("$%02X,X", lo)
	case zeroPageY:
		operand = fmt.Sprintf("$%02X,Y", lo)
	case relative:
		offset := uint16(lo)
		if offset&0x80 != 0 {
			offset |= 0xFF00
		}
		operand = fmt.Sprintf("$%04X", address+2+offset)
	case absolute:
		operand = fmt.Sprintf("$%04X", word)
	case absoluteX:
		operand = fmt.Sprintf("$%04X,X", word)
	case absoluteY:
		operand = fmt.Sprintf("$%04X,Y", word)
	case indirect:
		operand = fmt.Sprintf("($%04X)", word)
	case indirectX:
		operand = fmt.Sprintf("($%02X,X)", lo)
	case indirectY:
		operand = fmt.Sprintf("($%02X),Y", lo)
	}

	raw := make([]string, 0, 3)
	for i := uint16(0); i < size; i++ {
		raw = append(raw, fmt.Sprintf("%02X", b.CPURead(address+i, true)))
	}
	text := fmt.Sprintf("$%04X: %-8s  %s %s", address, strings.Join(raw, " "), inst.mnemonic, operand)
	return strings.TrimRight(text, " "), address + size
}

// Trace formats the instruction at PC and the registers, close to the
// nestest.log layout.
func (b *Bus) Trace() string {
	text, _ := b.Disassemble(b.cpu.pc)
	return fmt.Sprintf("%-40s %s CYC:%d", text, b.cpu.Registers(), b.cpu.clocks)
}
