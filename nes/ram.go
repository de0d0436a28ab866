package nes

const ramSize = 0x0800

// RAM is 2KB of memory, used as CPU work RAM and as the PPU nametables.
// Addresses beyond 2KB mirror.
type RAM struct {
	data [ramSize]byte
}

// NewRAM creates a RAM for both PPU and CPU.
func NewRAM() *RAM {
	return &RAM{}
}

// read reads data
func (r *RAM) read(address uint16) byte {
	return r.data[address&(ramSize-1)]
}

// write writes data
func (r *RAM) write(address uint16, x byte) {
	r.data[address&(ramSize-1)] = x
}

// clear zeroes the whole RAM.
func (r *RAM) clear() {
	r.data = [ramSize]byte{}
}
