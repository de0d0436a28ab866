package nes

// Sprite evaluation and rendering.
// References:
//   https://www.nesdev.org/wiki/PPU_OAM
//   https://www.nesdev.org/wiki/PPU_sprite_evaluation

const maxSpritesPerLine = 8

const (
	spritePalette  byte = 0x03
	spriteBehind   byte = 0x20
	spriteFlipH    byte = 0x40
	spriteFlipV    byte = 0x80
	oamEntrySize        = 4
	oamEntries          = 64
	spriteHeight8       = 8
	spriteHeight16      = 16
)

// oamEntry is one 4 byte OAM record.
type oamEntry struct {
	y    byte
	tile byte
	attr byte
	x    byte
}

func (p *PPU) oamEntry(i int) oamEntry {
	b := p.oam[i*oamEntrySize : i*oamEntrySize+oamEntrySize]
	return oamEntry{y: b[0], tile: b[1], attr: b[2], x: b[3]}
}

// sprites holds the up to 8 sprites of the line being drawn.
type sprites struct {
	entries    [maxSpritesPerLine]oamEntry
	patternLo  [maxSpritesPerLine]byte
	patternHi  [maxSpritesPerLine]byte
	count      int
	zeroNext   bool // sprite 0 is among the sprites found for the next line
	zeroOnLine bool // sprite 0 is among the sprites of this line
}

func (s *sprites) clear() {
	*s = sprites{}
}

// shift advances each sprite one dot, first counting down its X position.
func (s *sprites) shift() {
	for i := 0; i < s.count; i++ {
		if s.entries[i].x > 0 {
			s.entries[i].x--
		} else {
			s.patternLo[i] <<= 1
			s.patternHi[i] <<= 1
		}
	}
}

func (p *PPU) spriteHeight() int {
	if p.ctrl&ctrlSpriteSize != 0 {
		return spriteHeight16
	}
	return spriteHeight8
}

// evaluateSprites finds the sprites that intersect the current scanline.
// OAM Y is one less than the first line of the sprite, so the result is
// drawn on the next line.
func (p *PPU) evaluateSprites() {
	height := p.spriteHeight()
	s := &p.sprites
	s.count = 0
	s.zeroNext = false
	s.patternLo = [maxSpritesPerLine]byte{}
	s.patternHi = [maxSpritesPerLine]byte{}
	found := 0
	for i := 0; i < oamEntries && found <= maxSpritesPerLine; i++ {
		e := p.oamEntry(i)
		diff := p.scanline - int(e.y)
		if diff < 0 || diff >= height {
			continue
		}
		if found < maxSpritesPerLine {
			if i == 0 {
				s.zeroNext = true
			}
			s.entries[found] = e
			s.count++
		}
		found++
	}
	if found > maxSpritesPerLine {
		p.status |= statusOverflow
	}
}

// fetchSprites loads pattern rows of the evaluated sprites at the end of
// the line.
func (p *PPU) fetchSprites() {
	s := &p.sprites
	s.zeroOnLine = s.zeroNext
	height := p.spriteHeight()
	for i := 0; i < s.count; i++ {
		e := s.entries[i]
		row := uint16(p.scanline - int(e.y))
		if e.attr&spriteFlipV != 0 {
			row = uint16(height-1) - row
		}
		var address uint16
		if height == spriteHeight8 {
			address = uint16(p.ctrl&ctrlSpriteTable)<<9 | uint16(e.tile)<<4 | row
		} else {
			tile := uint16(e.tile & 0xFE)
			if row >= 8 {
				tile++
				row -= 8
			}
			address = uint16(e.tile&0x01)<<12 | tile<<4 | row
		}
		lo := p.bus.read(address)
		hi := p.bus.read(address + 8)
		if e.attr&spriteFlipH != 0 {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}
		s.patternLo[i] = lo
		s.patternHi[i] = hi
	}
}

// spritePixel returns the first opaque sprite dot: its pattern, palette,
// whether it is in front of the background and whether it is sprite 0.
func (p *PPU) spritePixel() (byte, byte, bool, bool) {
	if p.mask&maskSprites == 0 {
		return 0, 0, false, false
	}
	if p.mask&maskSpritesLeft == 0 && p.cycle <= 8 {
		return 0, 0, false, false
	}
	s := &p.sprites
	for i := 0; i < s.count; i++ {
		e := s.entries[i]
		if e.x != 0 {
			continue
		}
		pixel := (s.patternHi[i]>>7)<<1 | s.patternLo[i]>>7
		if pixel == 0 {
			continue
		}
		return pixel, e.attr&spritePalette + 4, e.attr&spriteBehind == 0, i == 0
	}
	return 0, 0, false, false
}

func reverseBits(b byte) byte {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}
