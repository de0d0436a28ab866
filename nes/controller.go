package nes

// Reference:
//   http://hp.vector.co.jp/authors/VA042397/nes/joypad.html (In Japanese)
//   https://www.nesdev.org/wiki/Controller_reading
//   https://www.nesdev.org/wiki/Standard_controller

type button int

// Controller bit assignments, 1 means pressed otherwise 0.
// bit    7 6      5     4  3    2    1     0
// button A B Select Start Up Down Left Right
const (
	ButtonA button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is a standard joypad, read serially through $4016/$4017.
type Controller struct {
	state  byte // the host's current buttons
	shift  byte // snapshot being shifted out
	strobe bool
}

func NewController() *Controller {
	return &Controller{}
}

// Set replaces the pressed buttons, indexed by ButtonA..ButtonRight.
func (c *Controller) Set(buttons [8]bool) {
	var state byte
	for i, pressed := range buttons {
		if pressed {
			state |= 0x80 >> i
		}
	}
	c.state = state
}

// SetState replaces the pressed buttons with a bit mask, A in bit 7.
func (c *Controller) SetState(state byte) {
	c.state = state
}

// State returns the pressed buttons, A in bit 7.
func (c *Controller) State() byte {
	return c.state
}

// read returns the next button, A first. After 8 reads it returns 0.
// While strobe is on it keeps reporting A.
func (c *Controller) read(readOnly bool) byte {
	if c.strobe {
		return c.state >> 7
	}
	data := c.shift >> 7
	if !readOnly {
		c.shift <<= 1
	}
	return data
}

// write writes strobe.
// https://bugzmanov.github.io/nes_ebook/chapter_7.html
// - strobe bit on - controller reports only status of the button A on every read
// - strobe bit off - controller cycles through all buttons
func (c *Controller) write(data byte) {
	c.strobe = data&1 == 1
	c.shift = c.state
}
