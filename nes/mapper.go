package nes

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMapper is recorded on a cartridge whose mapper is not implemented.
var ErrUnsupportedMapper = errors.New("unsupported mapper")

// Mapper translates CPU and PPU addresses into offsets of the cartridge memory.
// The bool reports whether the mapper claims the address.
type Mapper interface {
	cpuMapRead(address uint16) (uint32, bool)
	cpuMapWrite(address uint16, data byte) (uint32, bool)
	ppuMapRead(address uint16) (uint32, bool)
	ppuMapWrite(address uint16) (uint32, bool)
}

// newMapper returns the mapper for number. Unknown numbers get NROM and a
// non-nil error describing the fallback.
func newMapper(number byte, prgBanks, chrBanks byte) (Mapper, error) {
	switch number {
	case 0:
		return newMapper0(prgBanks, chrBanks), nil
	}
	return newMapper0(prgBanks, chrBanks), fmt.Errorf("%w: %d", ErrUnsupportedMapper, number)
}
