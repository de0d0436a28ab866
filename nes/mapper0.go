package nes

// Mapper0: https://www.nesdev.org/wiki/NROM
type mapper0 struct {
	prgBanks byte
	chrBanks byte
}

func newMapper0(prgBanks, chrBanks byte) *mapper0 {
	return &mapper0{prgBanks: prgBanks, chrBanks: chrBanks}
}

// CPU $8000-$BFFF: First 16 KB of ROM.
// CPU $C000-$FFFF: Last 16 KB of ROM (NROM-256) or mirror of $8000-$BFFF (NROM-128).
func (m *mapper0) cpuMapRead(address uint16) (uint32, bool) {
	if address < 0x8000 || m.prgBanks == 0 {
		return 0, false
	}
	if m.prgBanks > 1 {
		return uint32(address & 0x7FFF), true
	}
	return uint32(address & 0x3FFF), true
}

// NROM has no PRG RAM, every write is refused.
func (m *mapper0) cpuMapWrite(address uint16, data byte) (uint32, bool) {
	return 0, false
}

func (m *mapper0) ppuMapRead(address uint16) (uint32, bool) {
	if address < 0x2000 {
		return uint32(address), true
	}
	return 0, false
}

func (m *mapper0) ppuMapWrite(address uint16) (uint32, bool) {
	if address < 0x2000 {
		return uint32(address), true
	}
	return 0, false
}
