package nes

// status is the 6502 processor status register.
// https://www.nesdev.org/wiki/Status_flags
type status byte

const (
	flagC status = 1 << iota // carry
	flagZ                    // zero
	flagI                    // IRQ disable
	flagD                    // decimal - no effect on NES
	flagB                    // break - only exists on the stack
	flagU                    // unused - always 1
	flagV                    // overflow
	flagN                    // negative
)

func (s status) has(f status) bool {
	return s&f != 0
}

func (s *status) set(f status, v bool) {
	if v {
		*s |= f
	} else {
		*s &^= f
	}
}

// carry returns the carry flag as 0 or 1 for arithmetic.
func (s status) carry() uint16 {
	return uint16(s & flagC)
}

// String formats the register the way debuggers do, "NV-BDIZC" with clear
// flags in lower case.
func (s status) String() string {
	const names = "czidbuvn"
	res := make([]byte, 8)
	for i := 0; i < 8; i++ {
		ch := names[i]
		if s&(1<<i) != 0 {
			ch -= 'a' - 'A'
		}
		res[7-i] = ch
	}
	return string(res)
}
