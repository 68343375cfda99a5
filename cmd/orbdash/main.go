// Command orbdash is a small arcade game: steer an orb, collect targets,
// dodge hazards and dash out of trouble.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"orbdash/internal/audio"
	"orbdash/internal/desktop"
	"orbdash/internal/game"
	"orbdash/internal/terminal"
)

// glfw and the GL context must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() (code int) {
	settings, err := loadSettings(os.Args[1:], ".env", os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "orbdash: %v\n", err)
		return 2
	}

	if f := setupLogging(settings.Debug); f != nil {
		defer f.Close()
	}
	logger := log.Default()

	// Frontends restore the screen in their own defers before this runs.
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("crash: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "orbdash crashed: %v\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	logger.Printf("orbdash: frontend=%s seed=%d muted=%v", settings.Frontend, settings.Seed, settings.Muted)

	events := game.NewEventBus()
	sfx, err := audio.New(settings.Muted)
	if err != nil {
		logger.Printf("audio init failed (continuing without sound): %v", err)
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		sfx.Attach(events)
	}

	if err := runFrontend(settings, events, logger); err != nil {
		logger.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "orbdash: %v\n", err)
		return 1
	}
	return 0
}

func runFrontend(settings game.Settings, events *game.EventBus, logger *log.Logger) error {
	switch settings.Frontend {
	case game.FrontendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		return terminal.Run(screen, settings, events, logger)
	default:
		return desktop.Run(settings, events, logger)
	}
}
