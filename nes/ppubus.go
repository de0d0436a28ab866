package nes

// PPUBus is the PPU address space. It owns the nametable and palette memory
// and forwards pattern table accesses to the cartridge.
type PPUBus struct {
	vram      *RAM
	palette   [32]byte
	cartridge *Cartridge
}

// NewPPUBus creates a new Bus for PPU.
func NewPPUBus(vram *RAM) *PPUBus {
	return &PPUBus{vram: vram}
}

// nametable index for each quarter of $2000-$2FFF.
var mirrorLookup = [2][4]uint16{
	Horizontal: {0, 0, 1, 1},
	Vertical:   {0, 1, 0, 1},
}

func (b *PPUBus) nametableAddress(address uint16) uint16 {
	address &= 0x0FFF
	table := mirrorLookup[b.cartridge.Mirror()][address/0x0400]
	return table*0x0400 + address&0x03FF
}

// $3F10/$3F14/$3F18/$3F1C mirror $3F00/$3F04/$3F08/$3F0C.
func paletteAddress(address uint16) uint16 {
	address &= 0x001F
	if address&0x0013 == 0x0010 {
		address &= 0x000F
	}
	return address
}

// read reads data.
// Address        Size	  Description
// -------------------------------------
// $0000-$0FFF	  $1000	  Pattern table 0
// $1000-$1FFF	  $1000	  Pattern table 1
// $2000-$23FF	  $0400	  Nametable 0
// $2400-$27FF	  $0400	  Nametable 1
// $2800-$2BFF	  $0400	  Nametable 2
// $2C00-$2FFF	  $0400	  Nametable 3
// $3000-$3EFF	  $0F00	  Mirrors of $2000-$2EFF
// $3F00-$3F1F	  $0020	  Palette RAM indexes
// $3F20-$3FFF	  $00E0	  Mirrors of $3F00-$3F1F
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *PPUBus) read(address uint16) byte {
	address &= 0x3FFF
	switch {
	case address >= 0x3F00:
		return b.palette[paletteAddress(address)]
	case b.cartridge == nil:
		// Pattern tables and the mirroring of nametables live on the cartridge.
		return 0
	case address < 0x2000:
		data, _ := b.cartridge.ppuRead(address)
		return data
	default:
		return b.vram.read(b.nametableAddress(address))
	}
}

// write writes data. Pattern table writes only land on CHR RAM.
func (b *PPUBus) write(address uint16, data byte) {
	address &= 0x3FFF
	switch {
	case address >= 0x3F00:
		b.palette[paletteAddress(address)] = data
	case b.cartridge == nil:
		// dropped
	case address < 0x2000:
		b.cartridge.ppuWrite(address, data)
	default:
		b.vram.write(b.nametableAddress(address), data)
	}
}
