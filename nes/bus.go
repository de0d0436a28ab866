package nes

import (
	"github.com/golang/glog"
)

const (
	oamDMAAddress  uint16 = 0x4014
	joypad1Address uint16 = 0x4016
	joypad2Address uint16 = 0x4017
)

// dma copies a page of CPU memory into OAM, one byte every two half steps.
// https://www.nesdev.org/wiki/PPU_registers#OAMDMA
type dma struct {
	page     byte
	cursor   byte
	data     byte
	active   bool
	writing  bool   // the next half step writes data to OAM
	transfer uint64 // completed transfers, for debugging
}

// Bus connects the CPU, the PPU, the work RAM, the controllers and the
// cartridge, and drives the master clock.
//
// CPU memory map
// 0x0000 - 0x07FF	WRAM
// 0x0800 - 0x1FFF	WRAM Mirror
// 0x2000 - 0x2007	PPU Registers
// 0x2008 - 0x3FFF	PPU Registers Mirror
// 0x4000 - 0x401F	I/O Port
// 0x4020 - 0x5FFF	Extended RAM
// 0x6000 - 0x7FFF	Battery Backup RAM
// 0x8000 - 0xBFFF	ProgramROM Low
// 0xC000 - 0xFFFF	ProgramROM High
type Bus struct {
	cpu         CPU
	ppu         *PPU
	ppuBus      *PPUBus
	wram        *RAM
	cartridge   *Cartridge
	controllers [2]*Controller
	dma         dma
	clocks      uint64 // master clock
}

// NewBus creates a bus without a cartridge.
func NewBus() *Bus {
	ppuBus := NewPPUBus(NewRAM())
	return &Bus{
		ppu:         NewPPU(ppuBus),
		ppuBus:      ppuBus,
		wram:        NewRAM(),
		controllers: [2]*Controller{NewController(), NewController()},
	}
}

// InsertCartridge connects a cartridge to both the CPU and the PPU side and
// clears work RAM and nametables as a power cycle does. It must be called
// before the first Clock.
func (b *Bus) InsertCartridge(c *Cartridge) {
	b.cartridge = c
	b.ppuBus.cartridge = c
	b.wram.clear()
	b.ppuBus.vram.clear()
	b.ppuBus.palette = [32]byte{}
}

// Cartridge returns the inserted cartridge, or nil.
func (b *Bus) Cartridge() *Cartridge {
	return b.cartridge
}

// Reset resets the CPU and PPU. RAM keeps its content like the reset button.
func (b *Bus) Reset() {
	b.cpu.reset(b)
	b.ppu.reset()
	b.dma = dma{}
	b.clocks = 0
	glog.Infof("Reset: PC=0x%04x", b.cpu.pc)
}

// CPURead reads a byte. A readOnly read has no side effects on any device,
// the debugger and disassembler use it.
func (b *Bus) CPURead(address uint16, readOnly bool) byte {
	if b.cartridge != nil {
		if data, ok := b.cartridge.cpuRead(address); ok {
			return data
		}
	}
	switch {
	case address < 0x2000:
		return b.wram.read(address)
	case address < 0x4000:
		return b.ppu.cpuRead(address, readOnly)
	case address == joypad1Address:
		return b.controllers[0].read(readOnly)
	case address == joypad2Address:
		return b.controllers[1].read(readOnly)
	}
	if glog.V(3) {
		glog.Infof("Unmapped CPU bus read: address=0x%04x", address)
	}
	return 0
}

// CPUWrite writes a byte.
func (b *Bus) CPUWrite(address uint16, data byte) {
	if b.cartridge != nil && b.cartridge.cpuWrite(address, data) {
		return
	}
	switch {
	case address < 0x2000:
		b.wram.write(address, data)
	case address < 0x4000:
		b.ppu.cpuWrite(address, data)
	case address == oamDMAAddress:
		b.dma.page = data
		b.dma.cursor = 0
		b.dma.writing = false
		b.dma.active = true
	case address == joypad1Address:
		// One strobe line reaches both ports.
		b.controllers[0].write(data)
		b.controllers[1].write(data)
	default:
		if glog.V(3) {
			glog.Infof("Unmapped CPU bus write: address=0x%04x, data=0x%02x", address, data)
		}
	}
}

// Clock advances the system by one master (PPU) cycle. The CPU, or the DMA
// when a transfer is running, gets every third cycle.
func (b *Bus) Clock() {
	b.ppu.clock()
	if b.clocks%3 == 0 {
		if b.dma.active {
			b.dmaClock()
		} else {
			b.cpu.clock(b)
		}
	}
	if b.ppu.nmi {
		b.ppu.nmi = false
		b.cpu.nmi(b)
	}
	b.clocks++
}

// dmaClock is one half step: a read from the source page, then a write to
// OAM. 256 bytes take 512 half steps. Real hardware spends one more cycle
// when the transfer starts on an odd CPU cycle, this does not.
func (b *Bus) dmaClock() {
	if !b.dma.writing {
		b.dma.data = b.CPURead(uint16(b.dma.page)<<8|uint16(b.dma.cursor), false)
		b.dma.writing = true
		return
	}
	b.ppu.oam[b.dma.cursor] = b.dma.data
	b.dma.cursor++
	b.dma.writing = false
	if b.dma.cursor == 0 {
		b.dma.active = false
		b.dma.transfer++
	}
}

// IRQ enters the maskable interrupt immediately unless the I flag is set.
func (b *Bus) IRQ() {
	b.cpu.irq(b)
}

// Frame returns the PPU frame buffer.
func (b *Bus) Frame() *Frame {
	return b.ppu.frame
}

// FrameComplete reports whether the PPU entered vblank since the last
// AcknowledgeFrame.
func (b *Bus) FrameComplete() bool {
	return b.ppu.frameComplete
}

// AcknowledgeFrame clears the frame complete flag.
func (b *Bus) AcknowledgeFrame() {
	b.ppu.frameComplete = false
}

// SetController sets the buttons of port 0 or 1, A in bit 7.
func (b *Bus) SetController(port int, state byte) {
	b.controllers[port&1].SetState(state)
}

// Controller returns the controller on port 0 or 1.
func (b *Bus) Controller(port int) *Controller {
	return b.controllers[port&1]
}

// Clocks returns the master cycles since reset.
func (b *Bus) Clocks() uint64 {
	return b.clocks
}

// CPURegisters returns a copy of the CPU registers.
func (b *Bus) CPURegisters() Registers {
	return b.cpu.Registers()
}
