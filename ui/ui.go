package ui

import (
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/jyane/nescore/nes"
)

// framePeriod is the NTSC frame rate, about 60.1 frames per second.
const framePeriod = time.Second * 341 * 262 / (nes.CPUFrequency * 3)

func mainLoop(window *glfw.Window, console *nes.Console, scr *screen) {
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()
	for !window.ShouldClose() {
		for port := 0; port < 2; port++ {
			console.SetButtons(port, getKeys(window, port))
		}
		scr.update(console.StepFrame())
		scr.draw(window.GetFramebufferSize())
		window.SwapBuffers()
		glfw.PollEvents()
		<-ticker.C
	}
	glog.Infof("Window closed after %d frames", console.Frames())
}

// Start opens a window and runs console in it until the window is closed.
// It must be called from the main OS thread.
func Start(console *nes.Console, width int, height int) {
	if err := glfw.Init(); err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(width, height, "nescore", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	glog.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
	scr, err := newScreen()
	if err != nil {
		glog.Fatalln(err)
	}
	defer scr.destroy()
	window.SetKeyCallback(onKey(console))
	mainLoop(window, console, scr)
}
