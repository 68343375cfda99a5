package desktop

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"orbdash/internal/game"
)

// Screen shake on death, in logical pixels and seconds.
const (
	deathShake         = 6.0
	deathShakeDuration = 0.35
)

// Run opens the window and drives the game until it is closed.
// events may be nil; pass a bus to observe game events (e.g. for audio).
func Run(settings game.Settings, events *game.EventBus, logger *log.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if events == nil {
		events = game.NewEventBus()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	window, err := initWindow(settings.Width, settings.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Printf("desktop: OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	winW, winH := window.GetSize()
	hud := game.NewHUDState()
	g := game.NewGame(game.Options{
		Width:  float64(winW),
		Height: float64(winH),
		Seed:   settings.Seed,
		Clock:  game.ClockFunc(func() float64 { return glfw.GetTime() * 1000 }),
		HUD:    hud,
		Events: events,
		Logger: logger,
	})
	bindInput(window, g.Input)

	var cam Camera
	shakeRng := game.NewRand(settings.Seed ^ 0x5AC3)
	events.Subscribe(game.EventDeath, func(game.Event) {
		cam.AddShake(deathShake, deathShakeDuration)
	})

	g.Start()
	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		ww, wh := window.GetSize()
		if fbW <= 0 || fbH <= 0 || ww <= 0 || wh <= 0 {
			continue // minimised
		}
		if ww != winW || wh != winH {
			winW, winH = ww, wh
			g.Resize(float64(winW), float64(winH))
		}

		// Logical pixels scale by the device pixel ratio; below the minimum
		// canvas size the play area is shrunk to fit instead.
		w, h := g.Size()
		dpr := float64(fbW) / float64(winW)
		cam.Fit(w, h, min(float64(fbW)/w, float64(fbH)/h))

		now := glfw.GetTime()
		cam.UpdateShake(now-last, shakeRng)
		last = now

		rend.BeginFrame(cam.Shaken(), fbW, fbH)
		g.Frame(rend)
		rend.EndFrame()

		// HUD uses framebuffer pixels, no shake.
		RenderHUD(rend, hud, fbW, fbH, float32(dpr))

		window.SwapBuffers()
	}

	logger.Printf("desktop: window closed after %d runs, best score %d", g.Session.Runs+1, g.Session.Best)
	return nil
}
