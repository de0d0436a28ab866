package nes

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

const (
	chrROMSizeUnit      int  = 0x2000 // 8 KB
	prgROMSizeUnit      int  = 0x4000 // 16 KB
	inesHeaderSizeBytes int  = 16     // The valid INES header has 16 bytes
	trainerSizeBytes    int  = 512
	msDOSEOF            byte = 0x1A
)

var (
	// ErrInvalidHeader is returned when the buffer does not start with a valid iNES header.
	ErrInvalidHeader = errors.New("invalid iNES header")
	// ErrTruncatedROM is returned when the buffer is shorter than the banks the header declares.
	ErrTruncatedROM = errors.New("truncated iNES image")
)

// MirrorMode is the nametable arrangement wired on the cartridge board.
type MirrorMode int

const (
	Horizontal MirrorMode = iota
	Vertical
)

func (m MirrorMode) String() string {
	if m == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Cartridge holds PRG and CHR memory of a loaded ROM image.
// https://www.nesdev.org/wiki/INES
type Cartridge struct {
	prgROM   []byte
	chrROM   []byte // CHR RAM when chrRAM is true
	chrRAM   bool
	prgBanks byte
	chrBanks byte
	mapperID byte
	mirror   MirrorMode
	flags6   byte // https://www.nesdev.org/wiki/INES#Flags_6
	flags7   byte // https://www.nesdev.org/wiki/INES#Flags_7
	mapper   Mapper
	warning  error
}

// isValid checks whether the buffer starts with the iNES magic.
func isValid(data []byte) bool {
	return len(data) >= inesHeaderSizeBytes &&
		data[0] == byte('N') &&
		data[1] == byte('E') &&
		data[2] == byte('S') &&
		data[3] == msDOSEOF
}

// NewCartridge parses an iNES image. The returned cartridge does not share
// memory with data.
func NewCartridge(data []byte) (*Cartridge, error) {
	if !isValid(data) {
		return nil, ErrInvalidHeader
	}
	c := &Cartridge{
		prgBanks: data[4],
		chrBanks: data[5],
		flags6:   data[6],
		flags7:   data[7],
	}
	c.mapperID = (c.flags7 & 0xF0) | (c.flags6 >> 4)
	if c.flags6&0x01 == 1 {
		c.mirror = Vertical
	}
	offset := inesHeaderSizeBytes
	if c.flags6&0x04 != 0 {
		offset += trainerSizeBytes
	}
	prgSize := int(c.prgBanks) * prgROMSizeUnit
	chrSize := int(c.chrBanks) * chrROMSizeUnit
	if len(data) < offset+prgSize+chrSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrTruncatedROM, offset+prgSize+chrSize, len(data))
	}
	c.prgROM = make([]byte, prgSize)
	copy(c.prgROM, data[offset:offset+prgSize])
	offset += prgSize
	if c.chrBanks == 0 {
		c.chrROM = make([]byte, chrROMSizeUnit)
		c.chrRAM = true
	} else {
		c.chrROM = make([]byte, chrSize)
		copy(c.chrROM, data[offset:offset+chrSize])
	}
	c.mapper, c.warning = newMapper(c.mapperID, c.prgBanks, c.chrBanks)
	if c.warning != nil {
		glog.Warningf("%v, treating as NROM", c.warning)
	}
	glog.Infof("Cartridge: mapper=%d, PRG=%dKB, CHR=%dKB (ram=%t), mirror=%s",
		c.mapperID, prgSize/1024, len(c.chrROM)/1024, c.chrRAM, c.mirror)
	return c, nil
}

// MapperID returns the mapper number declared by the header.
func (c *Cartridge) MapperID() byte {
	return c.mapperID
}

// Mirror returns the nametable mirroring mode.
func (c *Cartridge) Mirror() MirrorMode {
	return c.mirror
}

// Warning returns the non-fatal problem found while loading, if any.
func (c *Cartridge) Warning() error {
	return c.warning
}

// cpuRead returns the PRG byte and true when the mapper claims the address.
func (c *Cartridge) cpuRead(address uint16) (byte, bool) {
	mapped, ok := c.mapper.cpuMapRead(address)
	if !ok {
		return 0, false
	}
	return c.prgROM[mapped], true
}

// cpuWrite returns true when the mapper claims the address.
func (c *Cartridge) cpuWrite(address uint16, data byte) bool {
	mapped, ok := c.mapper.cpuMapWrite(address, data)
	if !ok {
		return false
	}
	c.prgROM[mapped] = data
	return true
}

func (c *Cartridge) ppuRead(address uint16) (byte, bool) {
	mapped, ok := c.mapper.ppuMapRead(address)
	if !ok {
		return 0, false
	}
	return c.chrROM[mapped], true
}

// ppuWrite only succeeds on CHR RAM.
func (c *Cartridge) ppuWrite(address uint16, data byte) bool {
	if !c.chrRAM {
		return false
	}
	mapped, ok := c.mapper.ppuMapWrite(address)
	if !ok {
		return false
	}
	c.chrROM[mapped] = data
	return true
}
