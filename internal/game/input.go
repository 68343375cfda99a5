package game

import "strings"

// Key names follow the browser KeyboardEvent.key vocabulary, lower-cased.
const (
	KeyArrowUp    = "arrowup"
	KeyArrowDown  = "arrowdown"
	KeyArrowLeft  = "arrowleft"
	KeyArrowRight = "arrowright"
	KeyW          = "w"
	KeyA          = "a"
	KeyS          = "s"
	KeyD          = "d"
	KeySpace      = " "
)

// Input tracks held keys and fires the dash handler on the dash key's
// down edge. Frontends feed it from the loop goroutine only.
type Input struct {
	held   map[string]bool
	onDash func()
}

func NewInput() *Input {
	return &Input{held: make(map[string]bool)}
}

// SetDashHandler registers the callback run once per dash key press.
func (in *Input) SetDashHandler(fn func()) {
	in.onDash = fn
}

// KeyDown records a press. Repeats of a held key are ignored.
func (in *Input) KeyDown(key string) {
	k := normalizeKey(key)
	if in.held[k] {
		return
	}
	in.held[k] = true
	if k == KeySpace && in.onDash != nil {
		in.onDash()
	}
}

// KeyUp records a release.
func (in *Input) KeyUp(key string) {
	delete(in.held, normalizeKey(key))
}

// ReleaseAll clears every held key, e.g. when the window loses focus.
func (in *Input) ReleaseAll() {
	clear(in.held)
}

// IsPressed reports whether key is held (case-insensitive).
func (in *Input) IsPressed(key string) bool {
	return in.held[normalizeKey(key)]
}

// MovementAxis returns the held direction with each component in {-1,0,1}.
func (in *Input) MovementAxis() (ax, ay float64) {
	if in.IsPressed(KeyArrowRight) || in.IsPressed(KeyD) {
		ax++
	}
	if in.IsPressed(KeyArrowLeft) || in.IsPressed(KeyA) {
		ax--
	}
	if in.IsPressed(KeyArrowDown) || in.IsPressed(KeyS) {
		ay++
	}
	if in.IsPressed(KeyArrowUp) || in.IsPressed(KeyW) {
		ay--
	}
	return ax, ay
}

func normalizeKey(key string) string {
	switch k := strings.ToLower(key); k {
	case "space", "spacebar":
		return KeySpace
	default:
		return k
	}
}
