package nes

import (
	"fmt"
	"testing"
)

// newTestPPU returns a PPU wired to a cartridge with 8KB of CHR RAM.
func newTestPPU(t *testing.T, flags6 byte) *PPU {
	t.Helper()
	c, err := NewCartridge(newTestROM(1, 0, flags6, nil))
	if err != nil {
		t.Fatal(err)
	}
	bus := NewPPUBus(NewRAM())
	bus.cartridge = c
	return NewPPU(bus)
}

const cyclesPerFrame = 341 * 262

func TestFrameTiming(t *testing.T) {
	p := newTestPPU(t, 0)
	p.mask = maskBackground
	frames := 0
	vblankSet, vblankCleared := false, false
	for i := 0; i < cyclesPerFrame; i++ {
		p.clock()
		if p.frameComplete {
			frames++
			p.frameComplete = false
		}
		if p.status&statusVBlank != 0 {
			vblankSet = true
		} else if vblankSet {
			vblankCleared = true
		}
	}
	if frames != 1 {
		t.Fatalf("frames: got=%d, want=1", frames)
	}
	if !vblankSet || !vblankCleared {
		t.Fatalf("vblank: set=%t, cleared=%t", vblankSet, vblankCleared)
	}
	if p.scanline != 0 || p.cycle != 0 {
		t.Fatalf("position: got=(%d, %d), want=(0, 0)", p.scanline, p.cycle)
	}
}

func TestNMIRequest(t *testing.T) {
	p := newTestPPU(t, 0)
	p.cpuWrite(0x0000, ctrlNMI)
	for !p.frameComplete {
		p.clock()
		if p.nmi {
			break
		}
	}
	if !p.nmi {
		t.Fatalf("NMI not requested")
	}
	if p.scanline != 241 || p.cycle != 2 {
		t.Fatalf("NMI position: got=(%d, %d), want=(241, 2)", p.scanline, p.cycle)
	}
}

func TestPPUSTATUSRead(t *testing.T) {
	p := newTestPPU(t, 0)
	p.status = statusVBlank | statusSprite0Hit
	p.buffer = 0x1F
	p.w = true
	if got := p.cpuRead(0x0002, true); got != p.status {
		t.Fatalf("read only: got=0x%02x, want=0x%02x", got, p.status)
	}
	if p.status&statusVBlank == 0 {
		t.Fatalf("read only read cleared vblank")
	}
	if got := p.cpuRead(0x0002, false); got != 0xDF {
		t.Fatalf("PPUSTATUS: got=0x%02x, want=0xdf", got)
	}
	if p.status&statusVBlank != 0 {
		t.Fatalf("vblank not cleared")
	}
	if p.w {
		t.Fatalf("address latch not reset")
	}
}

func TestPPUSCROLLAndPPUCTRL(t *testing.T) {
	p := newTestPPU(t, 0)
	p.cpuWrite(0x0000, 0x03)
	if p.t != 0x0C00 {
		t.Fatalf("t after PPUCTRL: got=0x%04x, want=0x0c00", uint16(p.t))
	}
	p.cpuWrite(0x0005, 0x7D) // X = 125
	if p.fineX != 5 || p.t.coarseX() != 15 {
		t.Fatalf("after X: fineX=%d coarseX=%d", p.fineX, p.t.coarseX())
	}
	p.cpuWrite(0x0005, 0x5E) // Y = 94
	if got, want := uint16(p.t), uint16(0x6D6F); got != want {
		t.Fatalf("t after Y: got=0x%04x, want=0x%04x", got, want)
	}
	if p.w {
		t.Fatalf("latch not toggled back")
	}
}

func TestPPUDATA(t *testing.T) {
	p := newTestPPU(t, 0)
	write := func(address uint16, data ...byte) {
		p.cpuWrite(0x0006, byte(address>>8))
		p.cpuWrite(0x0006, byte(address))
		for _, d := range data {
			p.cpuWrite(0x0007, d)
		}
	}
	write(0x2108, 0xAB, 0xCD)
	if p.v != 0x210A {
		t.Fatalf("v: got=0x%04x, want=0x210a", uint16(p.v))
	}

	write(0x2108)
	if got := p.cpuRead(0x0007, false); got != 0x00 {
		t.Fatalf("first buffered read: got=0x%02x, want=0x00", got)
	}
	if got := p.cpuRead(0x0007, false); got != 0xAB {
		t.Fatalf("second read: got=0x%02x, want=0xab", got)
	}
	if got := p.cpuRead(0x0007, false); got != 0xCD {
		t.Fatalf("third read: got=0x%02x, want=0xcd", got)
	}

	// Increment by 32.
	p.cpuWrite(0x0000, ctrlIncrement32)
	write(0x2000, 1, 2)
	if p.v != 0x2040 {
		t.Fatalf("v: got=0x%04x, want=0x2040", uint16(p.v))
	}
	if got := p.bus.read(0x2020); got != 2 {
		t.Fatalf("0x2020: got=%d, want=2", got)
	}

	// Palette reads are not delayed and 0x3F10 mirrors 0x3F00.
	p.cpuWrite(0x0000, 0)
	write(0x3F10, 0x21)
	write(0x3F00)
	if got := p.cpuRead(0x0007, false); got != 0x21 {
		t.Fatalf("palette read: got=0x%02x, want=0x21", got)
	}

	// v wraps at 0x3FFF.
	write(0x3FFF, 0x0F)
	if p.v != 0x0000 {
		t.Fatalf("v after 0x3fff: got=0x%04x, want=0", uint16(p.v))
	}
}

func TestNametableMirroring(t *testing.T) {
	for _, test := range []struct {
		name   string
		flags6 byte
		same   [2]uint16
		differ [2]uint16
	}{
		{"horizontal", 0x00, [2]uint16{0x2000, 0x2400}, [2]uint16{0x2000, 0x2800}},
		{"vertical", 0x01, [2]uint16{0x2000, 0x2800}, [2]uint16{0x2000, 0x2400}},
	} {
		t.Run(test.name, func(t *testing.T) {
			p := newTestPPU(t, test.flags6)
			p.bus.write(test.same[0]+5, 0x77)
			if got := p.bus.read(test.same[1] + 5); got != 0x77 {
				t.Fatalf("0x%04x: got=0x%02x, want=0x77", test.same[1]+5, got)
			}
			if got := p.bus.read(test.differ[1] + 5); got != 0 {
				t.Fatalf("0x%04x: got=0x%02x, want=0", test.differ[1]+5, got)
			}
			// $3000-$3EFF mirrors $2000-$2EFF.
			if got := p.bus.read(test.same[0] + 0x1005); got != 0x77 {
				t.Fatalf("0x%04x: got=0x%02x, want=0x77", test.same[0]+0x1005, got)
			}
		})
	}
}

func TestOAMDATA(t *testing.T) {
	p := newTestPPU(t, 0)
	p.cpuWrite(0x0003, 0xFE)
	p.cpuWrite(0x0004, 0x11)
	p.cpuWrite(0x0004, 0x22)
	if p.oam[0xFE] != 0x11 || p.oam[0xFF] != 0x22 || p.oamAddr != 0x00 {
		t.Fatalf("oam: 0x%02x 0x%02x, oamAddr=0x%02x", p.oam[0xFE], p.oam[0xFF], p.oamAddr)
	}
	p.cpuWrite(0x0003, 0xFF)
	if got := p.cpuRead(0x0004, false); got != 0x22 {
		t.Fatalf("OAMDATA: got=0x%02x, want=0x22", got)
	}
}

func TestLoopyIncrement(t *testing.T) {
	v := loopy(0x001F) // coarse X 31
	v.incrementX()
	if v != loopyNametableX {
		t.Fatalf("incrementX: got=0x%04x, want=0x%04x", uint16(v), uint16(loopyNametableX))
	}
	v = loopy(0x7000 | 29<<5) // fine Y 7, coarse Y 29
	v.incrementY()
	if v != loopyNametableY {
		t.Fatalf("incrementY row 29: got=0x%04x, want=0x%04x", uint16(v), uint16(loopyNametableY))
	}
	v = loopy(0x7000 | 31<<5)
	v.incrementY()
	if v != 0 {
		t.Fatalf("incrementY row 31: got=0x%04x, want=0", uint16(v))
	}
	v = loopy(0x1000)
	v.incrementY()
	if v != 0x2000 {
		t.Fatalf("incrementY fine: got=0x%04x, want=0x2000", uint16(v))
	}
}

// setupSolidScreen fills tile 0 with color 1 and sets the background and
// sprite palettes.
func setupSolidScreen(p *PPU) {
	for i := uint16(0); i < 8; i++ {
		p.bus.write(i, 0xFF)
	}
	p.bus.write(0x3F00, 0x21)
	p.bus.write(0x3F01, 0x16)
	p.bus.write(0x3F11, 0x30)
}

func TestBackgroundRendering(t *testing.T) {
	p := newTestPPU(t, 0)
	setupSolidScreen(p)
	p.mask = maskBackground | maskBackgroundLeft
	// The first frame starts without the pre-render fetches.
	for i := 0; i < cyclesPerFrame*2; i++ {
		p.clock()
	}
	want := colors[0x16]
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if got := p.frame.At(x, y); got != want {
				t.Fatalf("pixel (%d, %d): got=%v, want=%v", x, y, got, want)
			}
		}
	}
}

func TestBackgroundLeftClip(t *testing.T) {
	p := newTestPPU(t, 0)
	setupSolidScreen(p)
	p.mask = maskBackground
	for i := 0; i < cyclesPerFrame*2; i++ {
		p.clock()
	}
	if got := p.frame.At(7, 100); got != colors[0x21] {
		t.Fatalf("clipped pixel: got=%v, want=%v", got, colors[0x21])
	}
	if got := p.frame.At(8, 100); got != colors[0x16] {
		t.Fatalf("visible pixel: got=%v, want=%v", got, colors[0x16])
	}
}

func TestSpriteZeroHit(t *testing.T) {
	p := newTestPPU(t, 0)
	setupSolidScreen(p)
	copy(p.oam[:], []byte{0x10, 0x00, 0x00, 0x20}) // y, tile, attr, x
	for i := 4; i < len(p.oam); i++ {
		p.oam[i] = 0xFF
	}
	p.mask = maskBackground | maskBackgroundLeft | maskSprites | maskSpritesLeft
	for p.scanline != 17 || p.cycle != 1 {
		p.clock()
	}
	if p.status&statusSprite0Hit != 0 {
		t.Fatalf("sprite 0 hit before the sprite line")
	}
	for p.scanline != 18 {
		p.clock()
	}
	if p.status&statusSprite0Hit == 0 {
		t.Fatalf("sprite 0 hit not set")
	}
	if got := p.frame.At(0x20, 17); got != colors[0x30] {
		t.Fatalf("sprite pixel: got=%v, want=%v", got, colors[0x30])
	}
	if got := p.frame.At(0x20+8, 17); got != colors[0x16] {
		t.Fatalf("pixel right of sprite: got=%v, want=%v", got, colors[0x16])
	}
}

func TestSpritePriorityAndFlip(t *testing.T) {
	p := newTestPPU(t, 0)
	setupSolidScreen(p)
	// Tile 1 has only its leftmost column set.
	for i := uint16(0); i < 8; i++ {
		p.bus.write(0x10+i, 0x80)
	}
	copy(p.oam[:], []byte{
		0x30, 0x01, spriteFlipH, 0x40, // flipped, column 7 drawn
		0x50, 0x01, spriteBehind, 0x40, // behind the background
	})
	for i := 8; i < len(p.oam); i++ {
		p.oam[i] = 0xFF
	}
	p.mask = maskBackground | maskBackgroundLeft | maskSprites | maskSpritesLeft
	for p.scanline != 0x52 {
		p.clock()
	}
	if got := p.frame.At(0x40+7, 0x31); got != colors[0x30] {
		t.Fatalf("flipped sprite pixel: got=%v, want=%v", got, colors[0x30])
	}
	if got := p.frame.At(0x40, 0x31); got != colors[0x16] {
		t.Fatalf("flipped sprite, transparent side: got=%v, want=%v", got, colors[0x16])
	}
	if got := p.frame.At(0x40, 0x51); got != colors[0x16] {
		t.Fatalf("sprite behind background: got=%v, want=%v", got, colors[0x16])
	}
}

func TestSpriteOverflow(t *testing.T) {
	p := newTestPPU(t, 0)
	for i := range p.oam {
		p.oam[i] = 0xFF
	}
	for i := 0; i < 9; i++ {
		p.oam[i*4] = 0x20
		p.oam[i*4+3] = byte(i * 8)
	}
	p.mask = maskSprites
	for p.scanline != 0x21 {
		p.clock()
	}
	if p.status&statusOverflow == 0 {
		t.Fatalf("overflow not set")
	}
	if p.sprites.count != maxSpritesPerLine {
		t.Fatalf("sprites: got=%d, want=%d", p.sprites.count, maxSpritesPerLine)
	}
}

func TestGreyscale(t *testing.T) {
	p := newTestPPU(t, 0)
	p.bus.write(0x3F00, 0x2A)
	p.mask = maskGreyscale
	if got := p.readPalette(0x3F00); got != 0x20 {
		t.Fatalf("greyscale: got=0x%02x, want=0x20", got)
	}
}

func TestPPUBusWithoutCartridge(t *testing.T) {
	bus := NewPPUBus(NewRAM())
	bus.write(0x3F01, 0x2A)
	bus.write(0x3F10, 0x21) // mirrors $3F00
	if got := bus.read(0x3F01); got != 0x2A {
		t.Fatalf("palette 0x3f01: got=0x%02x, want=0x2a", got)
	}
	if got := bus.read(0x3F20); got != 0x21 {
		t.Fatalf("palette 0x3f20: got=0x%02x, want=0x21", got)
	}
	bus.write(0x2005, 0x77)
	if got := bus.read(0x2005); got != 0 {
		t.Fatalf("nametable without cartridge: got=0x%02x, want=0", got)
	}
	if got := bus.read(0x0010); got != 0 {
		t.Fatalf("pattern table without cartridge: got=0x%02x, want=0", got)
	}
}

// renderTwoFrames runs past the first frame, which starts without the
// pre-render fetches, and through the second one.
func renderTwoFrames(p *PPU) {
	for i := 0; i < cyclesPerFrame*2; i++ {
		p.clock()
	}
}

func TestBackgroundColumns(t *testing.T) {
	for _, scroll := range []int{0, 3, 13} {
		t.Run(fmt.Sprintf("scroll %d", scroll), func(t *testing.T) {
			p := newTestPPU(t, 0)
			// Tile 0 is color 1 (low plane), tile 1 is color 2 (high plane).
			for i := uint16(0); i < 8; i++ {
				p.bus.write(0x0000+i, 0xFF)
				p.bus.write(0x0018+i, 0xFF)
			}
			for row := uint16(0); row < 30; row++ {
				for col := uint16(0); col < 32; col++ {
					p.bus.write(0x2000+row*32+col, byte(col%2))
				}
			}
			p.bus.write(0x3F00, 0x21)
			p.bus.write(0x3F01, 0x16)
			p.bus.write(0x3F02, 0x2A)
			p.cpuWrite(0x0005, byte(scroll))
			p.cpuWrite(0x0005, 0)
			p.mask = maskBackground | maskBackgroundLeft
			renderTwoFrames(p)

			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					want := colors[0x16]
					if (x+scroll)/8%2 == 1 {
						want = colors[0x2A]
					}
					if got := p.frame.At(x, y); got != want {
						t.Fatalf("pixel (%d, %d): got=%v, want=%v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestBackgroundAttributes(t *testing.T) {
	// 0xE4 is 11 10 01 00: top left uses palette 0, top right 1,
	// bottom left 2, bottom right 3.
	quadrants := []byte{0x16, 0x2A, 0x12, 0x28}
	for _, scroll := range []int{0, 8} {
		t.Run(fmt.Sprintf("scroll %d", scroll), func(t *testing.T) {
			p := newTestPPU(t, 0)
			setupSolidScreen(p)
			for i := uint16(0); i < 64; i++ {
				p.bus.write(0x23C0+i, 0xE4)
			}
			for i, c := range quadrants {
				p.bus.write(0x3F01+uint16(i)*4, c)
			}
			p.cpuWrite(0x0005, byte(scroll))
			p.cpuWrite(0x0005, 0)
			p.mask = maskBackground | maskBackgroundLeft
			renderTwoFrames(p)

			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					q := (y/16%2)*2 + (x+scroll)/16%2
					if got, want := p.frame.At(x, y), colors[quadrants[q]]; got != want {
						t.Fatalf("pixel (%d, %d) quadrant %d: got=%v, want=%v", x, y, q, got, want)
					}
				}
			}
		})
	}
}
