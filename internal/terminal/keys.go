package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"orbdash/internal/game"
)

// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until it stops repeating. The first press gets a longer
// hold to bridge the auto-repeat delay.
const (
	keyInitialHold = 500 * time.Millisecond
	keyRepeatHold  = 150 * time.Millisecond
)

// heldKeys emulates key-up events from press timestamps.
type heldKeys struct {
	until map[string]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{until: make(map[string]time.Time)}
}

// press records a key event. Only the first press of a hold reaches in.
func (h *heldKeys) press(name string, now time.Time, in *game.Input) {
	if _, held := h.until[name]; held {
		h.until[name] = now.Add(keyRepeatHold)
		return
	}
	h.until[name] = now.Add(keyInitialHold)
	in.KeyDown(name)
}

// expire releases keys whose hold has run out.
func (h *heldKeys) expire(now time.Time, in *game.Input) {
	for name, until := range h.until {
		if now.After(until) {
			delete(h.until, name)
			in.KeyUp(name)
		}
	}
}

// releaseAll drops every held key, e.g. on resize or focus loss.
func (h *heldKeys) releaseAll(in *game.Input) {
	clear(h.until)
	in.ReleaseAll()
}

// keyName maps a tcell key event to the name game.Input understands.
// Keys the game does not use map to "".
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyArrowUp
	case tcell.KeyDown:
		return game.KeyArrowDown
	case tcell.KeyLeft:
		return game.KeyArrowLeft
	case tcell.KeyRight:
		return game.KeyArrowRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return game.KeySpace
		case 'w', 'W':
			return game.KeyW
		case 'a', 'A':
			return game.KeyA
		case 's', 'S':
			return game.KeyS
		case 'd', 'D':
			return game.KeyD
		}
	}
	return ""
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
