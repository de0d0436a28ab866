package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/golang/glog"

	"github.com/jyane/nescore/nes"
	"github.com/jyane/nescore/statsview"
	"github.com/jyane/nescore/ui"
)

var (
	path       = flag.String("path", "./rom/sample1.nes", "path to NES ROM file")
	width      = flag.Int("width", nes.Width*4, "window width")
	height     = flag.Int("height", nes.Height*4, "window height")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	debug      = flag.Bool("debug", false, "run the terminal debugger instead of the window")
	stats      = flag.String("statsview", "", "serve runtime statistics over HTTP on this address, e.g. "+statsview.DefaultAddress)
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	defer glog.Flush()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	if *stats != "" {
		if err := statsview.Launch(os.Stderr, *stats); err != nil {
			glog.Fatal("Failed to start stats server: ", err)
		}
	}
	buf, err := os.ReadFile(*path)
	if err != nil {
		glog.Fatalf("Failed to read %s: %v", *path, err)
	}
	console := nes.NewConsole()
	if err := console.Load(buf); err != nil {
		glog.Fatalln("Failed to initiate Console: ", err)
	}
	if *debug {
		if err := nes.NewDebugConsole(console, os.Stdin, os.Stdout, os.Stdin).Run(); err != nil {
			glog.Errorf("Debugger: %v", err)
		}
		return
	}
	ui.Start(console, *width, *height)
}
