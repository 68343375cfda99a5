package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"orbdash/internal/game"
)

func initWindow(width, height int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	if width <= 0 {
		width = game.WindowWidth
	}
	if height <= 0 {
		height = game.WindowHeight
	}
	window, err := glfw.CreateWindow(width, height, game.WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// keyName maps a glfw key to the name game.Input understands.
// Keys the game does not use map to "".
func keyName(k glfw.Key) string {
	switch k {
	case glfw.KeyUp:
		return game.KeyArrowUp
	case glfw.KeyDown:
		return game.KeyArrowDown
	case glfw.KeyLeft:
		return game.KeyArrowLeft
	case glfw.KeyRight:
		return game.KeyArrowRight
	case glfw.KeyW:
		return game.KeyW
	case glfw.KeyA:
		return game.KeyA
	case glfw.KeyS:
		return game.KeyS
	case glfw.KeyD:
		return game.KeyD
	case glfw.KeySpace:
		return game.KeySpace
	}
	return ""
}

// bindInput forwards key and focus callbacks to in. Callbacks run inside
// glfw.PollEvents, on the loop goroutine.
func bindInput(window *glfw.Window, in *game.Input) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		name := keyName(key)
		if name == "" {
			return
		}
		switch action {
		case glfw.Press:
			in.KeyDown(name)
		case glfw.Release:
			in.KeyUp(name)
		}
		// glfw.Repeat is dropped; Input ignores repeats of held keys anyway.
	})
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			in.ReleaseAll()
		}
	})
}
