package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/jyane/nescore/nes"
)

// keymaps holds the keys of each controller port, indexed by nes.ButtonA..nes.ButtonRight.
// 1P: WASD for directions, J for A, H for B, F for select, G for start.
// 2P: arrows for directions, period for A, comma for B, right shift for select, enter for start.
var keymaps = [2][8]glfw.Key{
	{glfw.KeyJ, glfw.KeyH, glfw.KeyF, glfw.KeyG, glfw.KeyW, glfw.KeyS, glfw.KeyA, glfw.KeyD},
	{glfw.KeyPeriod, glfw.KeyComma, glfw.KeyRightShift, glfw.KeyEnter, glfw.KeyUp, glfw.KeyDown, glfw.KeyLeft, glfw.KeyRight},
}

// getKeys gets the buttons pressed for a controller port.
func getKeys(window *glfw.Window, port int) [8]bool {
	var keys [8]bool
	for button, key := range keymaps[port] {
		keys[button] = window.GetKey(key) == glfw.Press
	}
	return keys
}

// onKey handles keys that control the emulator rather than the game.
func onKey(console *nes.Console) glfw.KeyCallback {
	return func(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			window.SetShouldClose(true)
		case glfw.KeyR:
			console.Reset()
		}
	}
}
