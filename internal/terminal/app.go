package terminal

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"orbdash/internal/game"
)

// FrameDuration paces the terminal loop.
const FrameDuration = time.Second / 60

// App binds a game to a tcell screen. All methods run on the loop goroutine.
type App struct {
	screen tcell.Screen
	game   *game.Game
	canvas *Canvas
	hud    *game.HUDState
	keys   *heldKeys
	log    *log.Logger

	now   func() time.Time
	start time.Time
	cols  int
}

// NewApp wires a game to an initialised screen.
func NewApp(screen tcell.Screen, settings game.Settings, events *game.EventBus, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	a := &App{
		screen: screen,
		hud:    game.NewHUDState(),
		keys:   newHeldKeys(),
		log:    logger,
		now:    time.Now,
	}
	a.start = a.now()

	cols, rows := screen.Size()
	a.cols = cols
	a.canvas = NewCanvas(cols, rows-hudRows)
	w, h := a.canvas.LogicalSize()

	a.game = game.NewGame(game.Options{
		Width:  w,
		Height: h,
		Seed:   settings.Seed,
		Clock:  game.ClockFunc(a.nowMs),
		HUD:    a.hud,
		Events: events,
		Logger: logger,
	})
	return a
}

func (a *App) nowMs() float64 {
	return float64(a.now().Sub(a.start)) / float64(time.Millisecond)
}

// Game returns the running game.
func (a *App) Game() *game.Game { return a.game }

// Start spawns the first targets and draws the opening frame.
func (a *App) Start() {
	a.game.Start()
	w, h := a.game.Size()
	a.log.Printf("terminal: %dx%d cells, play area %.0fx%.0f", a.canvas.cols, a.canvas.rows+hudRows, w, h)
}

// Handle processes one event and reports whether the app should quit.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		if name := keyName(ev); name != "" {
			a.keys.press(name, a.now(), a.game.Input)
		}
	case *tcell.EventResize:
		a.resize()
	case *tcell.EventFocus:
		if !ev.Focused {
			a.keys.releaseAll(a.game.Input)
		}
	}
	return false
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	a.cols = cols
	a.canvas.Resize(cols, rows-hudRows)
	a.game.Resize(a.canvas.LogicalSize())
	a.screen.Sync()
}

// Frame releases expired keys, advances the game and redraws the screen.
func (a *App) Frame() {
	a.keys.expire(a.now(), a.game.Input)
	a.game.Frame(a.canvas)
	a.canvas.Flush(a.screen, hudRows)
	drawHUD(a.screen, a.hud, a.cols)
	a.screen.Show()
}

// Run initialises screen and plays until the player quits.
// events may be nil; pass a bus to observe game events (e.g. for audio).
func Run(screen tcell.Screen, settings game.Settings, events *game.EventBus, logger *log.Logger) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.EnableFocus()
	screen.Clear()

	a := NewApp(screen, settings, events, logger)
	a.Start()

	// PollEvent returns nil once the screen is finalised.
	input := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(input)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case input <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-input:
			if !ok || a.Handle(ev) {
				a.log.Printf("terminal: quit after %d runs, best score %d", a.game.Session.Runs+1, a.game.Session.Best)
				return nil
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}
