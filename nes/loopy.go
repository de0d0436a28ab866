package nes

// loopy is the layout of the PPU internal v and t registers.
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
//
// Reference: https://www.nesdev.org/wiki/PPU_scrolling
type loopy uint16

const (
	loopyCoarseX    loopy = 0x001F
	loopyCoarseY    loopy = 0x03E0
	loopyNametableX loopy = 0x0400
	loopyNametableY loopy = 0x0800
	loopyFineY      loopy = 0x7000

	loopyHorizontal = loopyNametableX | loopyCoarseX
	loopyVertical   = loopyFineY | loopyNametableY | loopyCoarseY
)

func (l loopy) coarseX() uint16 {
	return uint16(l & loopyCoarseX)
}

func (l loopy) coarseY() uint16 {
	return uint16(l&loopyCoarseY) >> 5
}

func (l loopy) fineY() uint16 {
	return uint16(l&loopyFineY) >> 12
}

// incrementX moves to the next tile, switching the horizontal nametable after
// the 32nd column.
func (l *loopy) incrementX() {
	if l.coarseX() == 31 {
		*l &^= loopyCoarseX
		*l ^= loopyNametableX
	} else {
		*l++
	}
}

// incrementY moves to the next pixel row. Row 29 is the last one of a
// nametable, rows 30 and 31 wrap without switching nametables.
func (l *loopy) incrementY() {
	if l.fineY() < 7 {
		*l += 0x1000
		return
	}
	*l &^= loopyFineY
	y := l.coarseY()
	switch y {
	case 29:
		y = 0
		*l ^= loopyNametableY
	case 31:
		y = 0
	default:
		y++
	}
	*l = *l&^loopyCoarseY | loopy(y<<5)
}

func (l *loopy) copyHorizontal(t loopy) {
	*l = *l&^loopyHorizontal | t&loopyHorizontal
}

func (l *loopy) copyVertical(t loopy) {
	*l = *l&^loopyVertical | t&loopyVertical
}
