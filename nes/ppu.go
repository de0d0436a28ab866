package nes

// PPU stands for Picture Processing Unit, renders 256px x 240px image for a screen.
// PPU is 3x faster than CPU and rendering 1 frame requires 341x262=89342 cycles (Each cycles writes a dot).
//
// This PPU implementation includes PPU registers as well.
// References:
//   https://www.nesdev.org/wiki/PPU
//   https://www.nesdev.org/wiki/PPU_rendering
//   https://pgate1.at-ninja.jp/NES_on_FPGA/nes_ppu.htm (In Japanese)
type PPU struct {
	bus   *PPUBus
	frame *Frame

	// Registers for PPU.
	// Reference:
	//   https://www.nesdev.org/wiki/PPU_registers
	//   https://www.nesdev.org/wiki/PPU_scrolling
	ctrl    byte // PPUCTRL $2000
	mask    byte // PPUMASK $2001
	status  byte // PPUSTATUS $2002
	oamAddr byte // OAMADDR $2003
	v       loopy
	t       loopy
	fineX   byte
	// w indicates whether the next PPUSCROLL/PPUADDR write is the second one.
	w bool
	// buffer for PPUDATA $2007
	buffer byte

	oam [256]byte

	// cycle, scanline indicates which pixel is processing.
	// scanline -1 is the pre-render line.
	cycle    int
	scanline int
	frames   uint64

	frameComplete bool
	nmi           bool

	// background pipeline
	nextTileID     byte
	nextTileAttr   byte
	nextTileLo     byte
	nextTileHi     byte
	shiftPatternLo uint16
	shiftPatternHi uint16
	shiftAttrLo    uint16
	shiftAttrHi    uint16

	sprites sprites
}

const (
	ctrlNametable       byte = 0x03
	ctrlIncrement32     byte = 0x04
	ctrlSpriteTable     byte = 0x08
	ctrlBackgroundTable byte = 0x10
	ctrlSpriteSize      byte = 0x20
	ctrlNMI             byte = 0x80

	maskGreyscale      byte = 0x01
	maskBackgroundLeft byte = 0x02
	maskSpritesLeft    byte = 0x04
	maskBackground     byte = 0x08
	maskSprites        byte = 0x10

	statusOverflow   byte = 0x20
	statusSprite0Hit byte = 0x40
	statusVBlank     byte = 0x80
)

// NewPPU creates a PPU.
func NewPPU(bus *PPUBus) *PPU {
	p := &PPU{
		bus:   bus,
		frame: &Frame{},
	}
	p.reset()
	return p
}

// reset starts the PPU on the first visible line.
func (p *PPU) reset() {
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.v = 0
	p.t = 0
	p.fineX = 0
	p.w = false
	p.buffer = 0
	p.cycle = 0
	p.scanline = 0
	p.frameComplete = false
	p.nmi = false
	p.nextTileID = 0
	p.nextTileAttr = 0
	p.nextTileLo = 0
	p.nextTileHi = 0
	p.shiftPatternLo = 0
	p.shiftPatternHi = 0
	p.shiftAttrLo = 0
	p.shiftAttrHi = 0
	p.sprites = sprites{}
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskBackground|maskSprites) != 0
}

func (p *PPU) increment() loopy {
	if p.ctrl&ctrlIncrement32 != 0 {
		return 32
	}
	return 1
}

// readPalette applies the greyscale bit of PPUMASK.
func (p *PPU) readPalette(address uint16) byte {
	data := p.bus.read(address)
	if p.mask&maskGreyscale != 0 {
		return data & 0x30
	}
	return data & 0x3F
}

// cpuRead reads the register selected by the low 3 bits of address.
// readOnly reads have no side effects.
func (p *PPU) cpuRead(address uint16, readOnly bool) byte {
	address &= 0x0007
	if readOnly {
		switch address {
		case 0x0000:
			return p.ctrl
		case 0x0001:
			return p.mask
		case 0x0002:
			return p.status
		case 0x0004:
			return p.oam[p.oamAddr]
		case 0x0007:
			return p.buffer
		}
		return 0
	}
	switch address {
	case 0x0002:
		return p.readPPUSTATUS()
	case 0x0004:
		return p.oam[p.oamAddr]
	case 0x0007:
		return p.readPPUDATA()
	}
	// Write only registers read as open bus.
	return 0
}

// cpuWrite writes the register selected by the low 3 bits of address.
func (p *PPU) cpuWrite(address uint16, data byte) {
	switch address & 0x0007 {
	case 0x0000:
		p.writePPUCTRL(data)
	case 0x0001:
		p.mask = data
	case 0x0002:
		// PPUSTATUS is read only.
	case 0x0003:
		p.oamAddr = data
	case 0x0004:
		p.oam[p.oamAddr] = data
		p.oamAddr++
	case 0x0005:
		p.writePPUSCROLL(data)
	case 0x0006:
		p.writePPUADDR(data)
	case 0x0007:
		p.writePPUDATA(data)
	}
}

// readPPUSTATUS reads PPUSTATUS ($2002), the low bits are stale PPUDATA buffer.
func (p *PPU) readPPUSTATUS() byte {
	data := p.status&0xE0 | p.buffer&0x1F
	p.status &^= statusVBlank
	p.w = false
	return data
}

// writePPUCTRL writes PPUCTRL ($2000), the nametable bits go to t.
func (p *PPU) writePPUCTRL(data byte) {
	p.ctrl = data
	p.t = p.t&0xF3FF | loopy(data&ctrlNametable)<<10
}

// writePPUSCROLL writes PPUSCROLL ($2005), X first then Y.
func (p *PPU) writePPUSCROLL(data byte) {
	if !p.w {
		p.fineX = data & 0x07
		p.t = p.t&0xFFE0 | loopy(data>>3)
		p.w = true
	} else {
		p.t = p.t&0x8C1F | loopy(data&0xF8)<<2 | loopy(data&0x07)<<12
		p.w = false
	}
}

// writePPUADDR writes PPUADDR ($2006), high byte first.
func (p *PPU) writePPUADDR(data byte) {
	if !p.w {
		p.t = p.t&0x00FF | loopy(data&0x3F)<<8
		p.w = true
	} else {
		p.t = p.t&0xFF00 | loopy(data)
		p.v = p.t
		p.w = false
	}
}

// readPPUDATA reads PPUDATA ($2007).
// Reads are delayed by one through the buffer, except for palette memory.
func (p *PPU) readPPUDATA() byte {
	address := uint16(p.v) & 0x3FFF
	data := p.buffer
	p.buffer = p.bus.read(address)
	if address >= 0x3F00 {
		data = p.readPalette(address)
	}
	p.v = (p.v + p.increment()) & 0x3FFF
	return data
}

// writePPUDATA writes PPUDATA ($2007).
func (p *PPU) writePPUDATA(data byte) {
	p.bus.write(uint16(p.v), data)
	p.v = (p.v + p.increment()) & 0x3FFF
}

func (p *PPU) loadBackgroundShifters() {
	p.shiftPatternLo = p.shiftPatternLo&0xFF00 | uint16(p.nextTileLo)
	p.shiftPatternHi = p.shiftPatternHi&0xFF00 | uint16(p.nextTileHi)
	var lo, hi uint16
	if p.nextTileAttr&0x01 != 0 {
		lo = 0xFF
	}
	if p.nextTileAttr&0x02 != 0 {
		hi = 0xFF
	}
	p.shiftAttrLo = p.shiftAttrLo&0xFF00 | lo
	p.shiftAttrHi = p.shiftAttrHi&0xFF00 | hi
}

func (p *PPU) updateShifters() {
	if p.mask&maskBackground != 0 {
		p.shiftPatternLo <<= 1
		p.shiftPatternHi <<= 1
		p.shiftAttrLo <<= 1
		p.shiftAttrHi <<= 1
	}
	if p.mask&maskSprites != 0 && p.cycle <= 257 {
		p.sprites.shift()
	}
}

// fetchBackground runs one cycle of the 8 cycle tile fetch.
func (p *PPU) fetchBackground() {
	switch p.cycle % 8 {
	case 1:
		p.loadBackgroundShifters()
		p.nextTileID = p.bus.read(0x2000 | uint16(p.v)&0x0FFF)
	case 3:
		v := uint16(p.v)
		attr := p.bus.read(0x23C0 | v&0x0C00 | (v>>4)&0x38 | (v>>2)&0x07)
		// Each attribute byte covers 4x4 tiles, 2 bits per 2x2 quadrant.
		if p.v.coarseY()&0x02 != 0 {
			attr >>= 4
		}
		if p.v.coarseX()&0x02 != 0 {
			attr >>= 2
		}
		p.nextTileAttr = attr & 0x03
	case 5:
		p.nextTileLo = p.bus.read(p.backgroundPatternAddress())
	case 7:
		p.nextTileHi = p.bus.read(p.backgroundPatternAddress() + 8)
		if p.renderingEnabled() {
			p.v.incrementX()
		}
	}
}

func (p *PPU) backgroundPatternAddress() uint16 {
	return uint16(p.ctrl&ctrlBackgroundTable)<<8 + uint16(p.nextTileID)<<4 + p.v.fineY()
}

// clock emulates a cycle of PPU and each cycles renders a pixel for NTSC,
// so PPU renders a pixel (left to right, top to bottom) respectively.
// PPU renders 256x240 pixels but it actually processes 341x262 area.
// Reference:
//   https://www.nesdev.org/wiki/PPU_rendering
//   https://www.nesdev.org/wiki/File:Ntsc_timing.png
func (p *PPU) clock() {
	if p.scanline >= -1 && p.scanline < 240 {
		if p.scanline == -1 && p.cycle == 1 {
			p.status &^= statusVBlank | statusSprite0Hit | statusOverflow
			p.sprites.clear()
		}
		if (p.cycle >= 2 && p.cycle <= 257) || (p.cycle >= 321 && p.cycle <= 337) {
			p.updateShifters()
			p.fetchBackground()
		}
		if p.renderingEnabled() {
			switch {
			case p.cycle == 256:
				p.v.incrementY()
			case p.cycle == 257:
				p.loadBackgroundShifters()
				p.v.copyHorizontal(p.t)
			case p.scanline == -1 && p.cycle >= 280 && p.cycle <= 304:
				p.v.copyVertical(p.t)
			}
		}
		if p.cycle == 257 && p.scanline >= 0 {
			p.evaluateSprites()
		}
		if p.cycle == 340 {
			p.fetchSprites()
		}
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.status |= statusVBlank
		if p.ctrl&ctrlNMI != 0 {
			p.nmi = true
		}
		p.frameComplete = true
	}

	if p.scanline >= 0 && p.scanline < 240 && p.cycle >= 1 && p.cycle <= 256 && p.renderingEnabled() {
		p.renderPixel()
	}

	p.cycle++
	if p.cycle >= 341 {
		p.cycle = 0
		p.scanline++
		if p.scanline >= 261 {
			p.scanline = -1
			p.frames++
		}
	}
}

// backgroundPixel returns the 2 bit pattern and palette of the current dot.
func (p *PPU) backgroundPixel() (byte, byte) {
	if p.mask&maskBackground == 0 {
		return 0, 0
	}
	if p.mask&maskBackgroundLeft == 0 && p.cycle <= 8 {
		return 0, 0
	}
	mux := uint16(0x8000) >> p.fineX
	var pixel, palette byte
	if p.shiftPatternLo&mux != 0 {
		pixel |= 0x01
	}
	if p.shiftPatternHi&mux != 0 {
		pixel |= 0x02
	}
	if p.shiftAttrLo&mux != 0 {
		palette |= 0x01
	}
	if p.shiftAttrHi&mux != 0 {
		palette |= 0x02
	}
	return pixel, palette
}

// renderPixel mixes background and sprites and writes the dot to the frame.
// Reference: https://www.nesdev.org/wiki/PPU_sprite_priority
func (p *PPU) renderPixel() {
	bgPixel, bgPalette := p.backgroundPixel()
	fgPixel, fgPalette, fgFront, sprite0 := p.spritePixel()

	var pixel, palette byte
	switch {
	case bgPixel == 0 && fgPixel == 0:
	case bgPixel == 0:
		pixel, palette = fgPixel, fgPalette
	case fgPixel == 0:
		pixel, palette = bgPixel, bgPalette
	default:
		if fgFront {
			pixel, palette = fgPixel, fgPalette
		} else {
			pixel, palette = bgPixel, bgPalette
		}
		if sprite0 && p.sprites.zeroOnLine && p.sprite0HitAllowed() {
			p.status |= statusSprite0Hit
		}
	}
	c := p.readPalette(0x3F00 + uint16(palette)<<2 + uint16(pixel))
	p.frame.set(p.cycle-1, p.scanline, colors[c])
}

// sprite0HitAllowed checks the rendering switches and the dot position.
// x=255 never hits, the left 8 dots do not hit while either side is clipped.
func (p *PPU) sprite0HitAllowed() bool {
	if p.mask&(maskBackground|maskSprites) != maskBackground|maskSprites {
		return false
	}
	first := 1
	if p.mask&(maskBackgroundLeft|maskSpritesLeft) != maskBackgroundLeft|maskSpritesLeft {
		first = 9
	}
	return p.cycle >= first && p.cycle < 256
}
