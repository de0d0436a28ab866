package nes

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var debugProgram = []byte{
	0xA9, 0x01, // LDA #$01
	0xA2, 0x02, // LDX #$02
	0x4C, 0x04, 0x80, // JMP $8004
}

func newTestDebugConsole(t *testing.T, input string) (*DebugConsole, *bytes.Buffer) {
	t.Helper()
	console := NewConsole()
	if err := console.Load(newTestROM(1, 1, 0, debugProgram)); err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	return NewDebugConsole(console, strings.NewReader(input), out, nil), out
}

func TestDebugStep(t *testing.T) {
	c, out := newTestDebugConsole(t, "")
	// The first step finishes the reset sequence.
	if err := c.Command("s 3"); err != nil {
		t.Fatal(err)
	}
	regs := c.bus.CPURegisters()
	if regs.A != 0x01 || regs.X != 0x02 || regs.PC != 0x8004 {
		t.Fatalf("after s 3: %s", regs)
	}
	if got, want := c.bus.cpu.clocks, uint64(8+2+2); got != want {
		t.Fatalf("clocks: got=%d, want=%d", got, want)
	}
	if !strings.Contains(out.String(), "Next: $8004") {
		t.Fatalf("output does not show the next instruction:\n%s", out)
	}
	if err := c.Command("s x"); err == nil {
		t.Fatalf("s x: want error")
	}
}

func TestDebugStepFrames(t *testing.T) {
	c, _ := newTestDebugConsole(t, "")
	if err := c.Command("step 2f"); err != nil {
		t.Fatal(err)
	}
	if c.Frames() != 2 {
		t.Fatalf("frames: got=%d, want=2", c.Frames())
	}
}

func TestDebugStepTrace(t *testing.T) {
	c, out := newTestDebugConsole(t, "")
	c.Command("s") // reset sequence
	out.Reset()
	if err := c.Command("s 2d"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"LDA #$01", "LDX #$02", "CYC:8"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("trace missing %q:\n%s", want, out)
		}
	}
}

func TestDebugBreakpoint(t *testing.T) {
	c, out := newTestDebugConsole(t, "")
	if err := c.Command("br 0x8004"); err != nil {
		t.Fatal(err)
	}
	if err := c.Command("br zz"); err == nil {
		t.Fatalf("br zz: want error")
	}
	if err := c.Command("s 100"); err != nil {
		t.Fatal(err)
	}
	if pc := c.bus.CPURegisters().PC; pc != 0x8004 {
		t.Fatalf("pc: got=0x%04x, want=0x8004", pc)
	}
	if !strings.Contains(out.String(), "Break at: 0x8004") {
		t.Fatalf("no break message:\n%s", out)
	}
	out.Reset()
	c.Command("br")
	if got := out.String(); got != "0x8004\n" {
		t.Fatalf("breakpoint list: got=%q", got)
	}
}

func TestDebugDisasm(t *testing.T) {
	c, out := newTestDebugConsole(t, "")
	if err := c.Command("d 0x8000 3"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: got=%d, want=3\n%s", len(lines), out)
	}
	for i, want := range []string{"$8000: A9 01", "$8002: A2 02", "$8004: 4C 04 80"} {
		if !strings.HasPrefix(lines[i], want) {
			t.Fatalf("line %d: got=%q, want prefix %q", i, lines[i], want)
		}
	}
	if !strings.HasSuffix(lines[2], "JMP $8004") {
		t.Fatalf("line 2: got=%q", lines[2])
	}
}

func TestDebugPrint(t *testing.T) {
	c, out := newTestDebugConsole(t, "")
	for _, test := range []struct {
		command string
		want    string
	}{
		{"p cartridge", "mapper=0 prg=1 chr=1 chrRAM=false mirror=horizontal"},
		{"p controller", "1P=00000000 2P=00000000"},
		{"p ppu", "ctrl=0x00 mask=0x00"},
		{"p stack", "01f0:"},
		{"p", "Executed cycles: 0 (master clock 0)"},
		{"p nothing", "Unknown print target"},
	} {
		out.Reset()
		if err := c.Command(test.command); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), test.want) {
			t.Fatalf("%s: output does not contain %q:\n%s", test.command, test.want, out)
		}
	}
}

func TestDebugPrintClocksAndWarning(t *testing.T) {
	c, out := newTestDebugConsole(t, "")
	c.Command("s 2")
	if !strings.Contains(out.String(), "Executed cycles: 10 (master clock 28)") {
		t.Fatalf("clock counts missing:\n%s", out)
	}

	rom := newTestROM(1, 1, 0x10, debugProgram) // mapper 1
	if err := c.Load(rom); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	c.Command("p cartridge")
	for _, want := range []string{"mapper=1 ", "warning: unsupported mapper: 1"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("p cartridge: output does not contain %q:\n%s", want, out)
		}
	}
}

func TestDebugIRQ(t *testing.T) {
	c, _ := newTestDebugConsole(t, "")
	c.Command("s 3")
	// I is set after reset, the request is ignored.
	if err := c.Command("irq"); err != nil {
		t.Fatal(err)
	}
	if regs := c.bus.CPURegisters(); regs.PC != 0x8004 || regs.S != 0xFD {
		t.Fatalf("masked irq: %s", regs)
	}
	c.bus.cpu.p.set(flagI, false)
	c.Command("irq")
	regs := c.bus.CPURegisters()
	if regs.PC != 0x8000 || regs.S != 0xFA || regs.P&byte(flagI) == 0 {
		t.Fatalf("irq: %s", regs)
	}
	if got := c.bus.CPURead(0x01FB, true); got&byte(flagB) != 0 || got&byte(flagU) == 0 {
		t.Fatalf("pushed status: got=%08b, want B clear and U set", got)
	}
	if got := c.bus.CPURead(0x01FC, true); got != 0x04 {
		t.Fatalf("pushed PC low: got=0x%02x, want=0x04", got)
	}
}

func TestDebugReset(t *testing.T) {
	c, _ := newTestDebugConsole(t, "")
	c.Command("s 3")
	if err := c.Command("reset"); err != nil {
		t.Fatal(err)
	}
	if regs := c.bus.CPURegisters(); regs.PC != 0x8000 || regs.A != 0 || regs.X != 0 {
		t.Fatalf("after reset: %s", regs)
	}
}

func TestDebugShotAndGraph(t *testing.T) {
	c, _ := newTestDebugConsole(t, "")
	dir := t.TempDir()
	shot := filepath.Join(dir, "frame.png")
	if err := c.Command("shot " + shot + " 2"); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(shot)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != Width*2 || b.Dy() != Height*2 {
		t.Fatalf("png size: got=%dx%d, want=%dx%d", b.Dx(), b.Dy(), Width*2, Height*2)
	}

	graph := filepath.Join(dir, "cpu.dot")
	if err := c.Command("graph " + graph); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(graph)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("digraph")) {
		t.Fatalf("graph output is not a digraph:\n%s", data)
	}

	if err := c.Command("shot"); err == nil {
		t.Fatalf("shot without a file: want error")
	}
}

func TestDebugCommandErrors(t *testing.T) {
	c, _ := newTestDebugConsole(t, "")
	if err := c.Command("bogus"); err == nil {
		t.Fatalf("bogus: want error")
	}
	if err := c.Command("run"); err == nil || !strings.Contains(err.Error(), "terminal") {
		t.Fatalf("run without a tty: got=%v", err)
	}
	if err := c.Command("q"); err != ErrQuit {
		t.Fatalf("q: got=%v, want=%v", err, ErrQuit)
	}
	if err := c.Command("   "); err != nil {
		t.Fatalf("blank line: got=%v", err)
	}
}

func TestDebugRunNeedsATerminal(t *testing.T) {
	c, _ := newTestDebugConsole(t, "")
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	c.tty = r
	err = c.Command("run")
	if err == nil || !strings.Contains(err.Error(), "reading terminal attributes") {
		t.Fatalf("run on a pipe: got=%v", err)
	}
	if pc := c.bus.CPURegisters().PC; pc != 0x8000 {
		t.Fatalf("run on a pipe executed code: pc=0x%04x", pc)
	}
}

func TestDebugRun(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
	}{
		{"quit", "s 3\nbogus\nq\nnot read\n"},
		{"eof", "s 3"},
	} {
		t.Run(test.name, func(t *testing.T) {
			c, out := newTestDebugConsole(t, test.input)
			if err := c.Run(); err != nil {
				t.Fatal(err)
			}
			if c.bus.CPURegisters().X != 0x02 {
				t.Fatalf("s 3 did not run: %s", c.bus.CPURegisters())
			}
			if test.name == "quit" && !strings.Contains(out.String(), "Quitting.") {
				t.Fatalf("no quit message:\n%s", out)
			}
		})
	}
}
