package nes

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/golang/glog"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// ErrQuit is returned by DebugConsole.Run when the user quits.
var ErrQuit = errors.New("quit")

// DebugConsole a NES console for debugging, you can execute some commands through stdio.
// commands:
//   s, step [N|Nf|Nd]:
//     execute N instructions, N frames (f) or N instructions printing each (d).
//   p, print [cpu|ppu|cartridge|controller|wram|vram|oam|stack]:
//     print.
//   br, breakpoint 0xADDR:
//     set a break point, "br" alone lists them.
//   d, disasm [0xADDR] [N]:
//     disassemble N instructions, from PC by default.
//   shot FILE [SCALE]:
//     save the last frame as PNG.
//   graph FILE:
//     write the CPU and PPU structs as a Graphviz graph.
//   run:
//     run until a key is pressed or a break point is hit.
//   irq:
//     raise the IRQ line, ignored while the I flag is set.
//   r, reset:
//     reset.
//   q, quit:
//     quit.
type DebugConsole struct {
	*Console
	in          *bufio.Reader
	out         io.Writer
	tty         *os.File // keyboard for run, nil disables it
	breakpoints []uint16
}

// NewDebugConsole wraps console. Commands are read from in, output goes to out.
func NewDebugConsole(console *Console, in io.Reader, out io.Writer, tty *os.File) *DebugConsole {
	return &DebugConsole{
		Console: console,
		in:      bufio.NewReader(in),
		out:     out,
		tty:     tty,
	}
}

var stepArgRe = regexp.MustCompile(`^([0-9]+)([fd]?)$`)

// stepInstruction runs the master clock until the next instruction has
// started and finished, and returns the CPU cycles spent.
func (c *DebugConsole) stepInstruction() int {
	b := c.bus
	start := b.cpu.clocks
	// Leave the current boundary, then run to the next one.
	for b.cpu.complete() && b.cpu.clocks == start {
		b.Clock()
	}
	for !b.cpu.complete() || b.dma.active {
		b.Clock()
	}
	if b.FrameComplete() {
		b.AcknowledgeFrame()
		c.frames++
	}
	return int(b.cpu.clocks - start)
}

func (c *DebugConsole) basePrint() {
	b := c.bus
	fmt.Fprintln(c.out, "--------------------------------------------------")
	fmt.Fprintf(c.out, "Executed cycles: %d (master clock %d)\n", b.cpu.Cycles(), b.Clocks())
	fmt.Fprintf(c.out, "Rendered frame: %d\n", c.frames)
	fmt.Fprintf(c.out, "CPU: %s [%s]\n", b.cpu.Registers(), b.cpu.p)
	fmt.Fprintf(c.out, "PPU: cycle=%d, scanline=%d, v=0x%04x, t=0x%04x\n",
		b.ppu.cycle, b.ppu.scanline, uint16(b.ppu.v), uint16(b.ppu.t))
	text, _ := b.Disassemble(b.cpu.pc)
	fmt.Fprintln(c.out, "Next: "+text)
}

func (c *DebugConsole) dump(data []byte, base uint16) {
	for i := 0; i < len(data); i += 16 {
		fmt.Fprintf(c.out, "%04x:", int(base)+i)
		for j := i; j < i+16 && j < len(data); j++ {
			fmt.Fprintf(c.out, " %02x", data[j])
		}
		fmt.Fprintln(c.out)
	}
}

func (c *DebugConsole) printCommand(args []string) {
	if len(args) < 2 {
		c.basePrint()
		return
	}
	b := c.bus
	switch args[1] {
	case "c", "cpu":
		fmt.Fprintf(c.out, "%+v\n", b.cpu)
	case "p", "ppu":
		fmt.Fprintf(c.out, "ctrl=0x%02x mask=0x%02x status=0x%02x oamaddr=0x%02x fineX=%d w=%t frames=%d\n",
			b.ppu.ctrl, b.ppu.mask, b.ppu.status, b.ppu.oamAddr, b.ppu.fineX, b.ppu.w, b.ppu.frames)
	case "ca", "cartridge":
		cart := b.Cartridge()
		if cart == nil {
			fmt.Fprintln(c.out, "no cartridge")
			return
		}
		fmt.Fprintf(c.out, "mapper=%d prg=%d chr=%d chrRAM=%t mirror=%s\n",
			cart.MapperID(), cart.prgBanks, cart.chrBanks, cart.chrRAM, cart.Mirror())
		if cart.Warning() != nil {
			fmt.Fprintf(c.out, "warning: %v\n", cart.Warning())
		}
	case "ct", "controller":
		fmt.Fprintf(c.out, "1P=%08b 2P=%08b\n", b.controllers[0].State(), b.controllers[1].State())
	case "wr", "wram":
		c.dump(b.wram.data[:], 0x0000)
	case "vr", "vram":
		c.dump(b.ppuBus.vram.data[:], 0x2000)
	case "oam":
		c.dump(b.ppu.oam[:], 0)
	case "st", "stack":
		c.dump(b.wram.data[0x100:0x200], 0x0100)
	default:
		fmt.Fprintf(c.out, "Unknown print target %q\n", args[1])
	}
}

func (c *DebugConsole) checkBreak() bool {
	for _, br := range c.breakpoints {
		if br == c.bus.cpu.pc {
			fmt.Fprintf(c.out, "Break at: 0x%04x\n", br)
			return true
		}
	}
	return false
}

func (c *DebugConsole) stepCommand(args []string) (int, error) {
	if len(args) < 2 {
		return c.stepInstruction(), nil
	}
	m := stepArgRe.FindStringSubmatch(args[1])
	if m == nil {
		return 0, fmt.Errorf("invalid step count %q", args[1])
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	cycles := 0
	switch m[2] {
	case "f":
		target := c.frames + uint64(num)
		for c.frames < target {
			cycles += c.stepInstruction()
			if c.checkBreak() {
				break
			}
		}
	case "d":
		for i := 0; i < num; i++ {
			fmt.Fprintln(c.out, c.bus.Trace())
			cycles += c.stepInstruction()
			if c.checkBreak() {
				break
			}
		}
	default:
		for i := 0; i < num; i++ {
			cycles += c.stepInstruction()
			if c.checkBreak() {
				break
			}
		}
	}
	return cycles, nil
}

func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}

func (c *DebugConsole) breakPointCommand(args []string) error {
	if len(args) < 2 {
		for _, br := range c.breakpoints {
			fmt.Fprintf(c.out, "0x%04x\n", br)
		}
		return nil
	}
	address, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	c.breakpoints = append(c.breakpoints, address)
	return nil
}

func (c *DebugConsole) disasmCommand(args []string) error {
	address := c.bus.cpu.pc
	count := 10
	if len(args) > 1 {
		a, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		address = a
	}
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[2], err)
		}
		count = n
	}
	for i := 0; i < count; i++ {
		var text string
		text, address = c.bus.Disassemble(address)
		fmt.Fprintln(c.out, text)
	}
	return nil
}

func (c *DebugConsole) shotCommand(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: shot FILE [SCALE]")
	}
	scale := 1
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid scale %q: %w", args[2], err)
		}
		scale = n
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, c.bus.Frame().Scaled(scale)); err != nil {
		return fmt.Errorf("encoding %s: %w", args[1], err)
	}
	fmt.Fprintf(c.out, "Saved %s\n", args[1])
	return nil
}

func (c *DebugConsole) graphCommand(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: graph FILE")
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, &c.bus.cpu, &c.bus.ppu.sprites, &c.bus.dma)
	fmt.Fprintf(c.out, "Wrote %s\n", args[1])
	return nil
}

// runCommand runs whole frames until a key is pressed on the tty. The tty
// is put in cbreak mode with non-blocking reads while running.
func (c *DebugConsole) runCommand() error {
	if c.tty == nil {
		return errors.New("run needs a terminal")
	}
	fd := c.tty.Fd()
	var saved, cbreak unix.Termios
	if err := termios.Tcgetattr(fd, &saved); err != nil {
		return fmt.Errorf("reading terminal attributes: %w", err)
	}
	cbreak = saved
	termios.Cfmakecbreak(&cbreak)
	cbreak.Cc[unix.VMIN] = 0
	cbreak.Cc[unix.VTIME] = 0
	if err := termios.Tcsetattr(fd, termios.TCIFLUSH, &cbreak); err != nil {
		return fmt.Errorf("setting cbreak mode: %w", err)
	}
	defer termios.Tcsetattr(fd, termios.TCIFLUSH, &saved)

	fmt.Fprintln(c.out, "Running, press any key to stop.")
	key := make([]byte, 1)
	for {
		target := c.frames + 1
		for c.frames < target {
			c.stepInstruction()
			if c.checkBreak() {
				return nil
			}
		}
		if n, _ := c.tty.Read(key); n > 0 {
			return nil
		}
	}
}

// Command executes one command line.
func (c *DebugConsole) Command(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "p", "print":
		c.printCommand(args)
	case "s", "step":
		cycles, err := c.stepCommand(args)
		c.basePrint()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Executed %d CPU cycles, %d PPU cycles.\n", cycles, 3*cycles)
	case "br", "breakpoint":
		return c.breakPointCommand(args)
	case "d", "disasm":
		return c.disasmCommand(args)
	case "shot":
		return c.shotCommand(args)
	case "graph":
		return c.graphCommand(args)
	case "run":
		err := c.runCommand()
		c.basePrint()
		return err
	case "irq":
		c.bus.IRQ()
		c.basePrint()
	case "r", "reset":
		c.Reset()
	case "q", "quit":
		fmt.Fprintln(c.out, "Quitting.")
		return ErrQuit
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

// Run reads commands until quit or the end of input.
func (c *DebugConsole) Run() error {
	for {
		fmt.Fprintf(c.out, "Debugger mode, 'q' to quit \n>> ")
		line, err := c.in.ReadString('\n')
		if line != "" {
			if cerr := c.Command(line); cerr != nil {
				if errors.Is(cerr, ErrQuit) {
					return nil
				}
				glog.Warning(cerr)
				fmt.Fprintln(c.out, cerr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
