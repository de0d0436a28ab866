package nes

import (
	"fmt"

	"github.com/golang/glog"
)

// Console is the whole machine as the host sees it.
type Console struct {
	bus    *Bus
	frames uint64
}

// NewConsole creates a console with no cartridge inserted.
func NewConsole() *Console {
	return &Console{bus: NewBus()}
}

// Load parses an iNES image, inserts it and resets. On error the console
// is left as it was.
func (c *Console) Load(rom []byte) error {
	cartridge, err := NewCartridge(rom)
	if err != nil {
		return fmt.Errorf("loading cartridge: %w", err)
	}
	c.bus.InsertCartridge(cartridge)
	c.Reset()
	return nil
}

// Reset presses the reset button.
func (c *Console) Reset() {
	c.bus.Reset()
	c.frames = 0
}

// StepFrame runs the machine until the PPU completes a frame and returns it.
// The frame is overwritten by the next call.
func (c *Console) StepFrame() *Frame {
	for !c.bus.FrameComplete() {
		c.bus.Clock()
	}
	c.bus.AcknowledgeFrame()
	c.frames++
	if glog.V(2) {
		glog.Infof("Frame %d, %s", c.frames, c.bus.CPURegisters())
	}
	return c.bus.Frame()
}

// SetButtons sets the buttons of a controller port, indexed by ButtonA..ButtonRight.
func (c *Console) SetButtons(port int, buttons [8]bool) {
	c.bus.Controller(port).Set(buttons)
}

// Frames returns the frames completed since reset.
func (c *Console) Frames() uint64 {
	return c.frames
}

// Bus returns the system bus.
func (c *Console) Bus() *Bus {
	return c.bus
}
