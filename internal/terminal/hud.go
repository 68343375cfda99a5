package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"orbdash/internal/game"
)

const (
	hudRows     = 1
	hudBarCells = 10
	hudHint     = "WASD/←↑↓→ move · SPACE dash · ESC quit"
)

// drawText writes text at (x, y), advancing by each rune's cell width,
// and returns the column after the last rune.
func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		s.SetContent(x, y, ch, nil, st)
		x += w
	}
	return x
}

// cooldownBar renders readiness as filled and empty cells.
func cooldownBar(frac float64) string {
	n := int(game.Clamp(frac, 0, 1)*hudBarCells + 0.5)
	return strings.Repeat("█", n) + strings.Repeat("░", hudBarCells-n)
}

// drawHUD fills the status row: score and level on the left, the dash
// bar after them, and the key hint right-aligned when it fits.
func drawHUD(s tcell.Screen, hud *game.HUDState, width int) {
	bg := tcellColor(game.Palette.Background)
	text := tcell.StyleDefault.Foreground(tcellColor(game.Palette.HUDText)).Background(bg)
	dim := tcell.StyleDefault.Foreground(tcellColor(game.Palette.HUDDim)).Background(bg)
	bar := tcell.StyleDefault.Foreground(tcellColor(game.Palette.Cooldown)).Background(bg)

	for x := 0; x < width; x++ {
		s.SetContent(x, 0, ' ', nil, text)
	}

	left := fmt.Sprintf(" %s  %s  Dash ", hud.ScoreText(), hud.LevelText())
	left = runewidth.Truncate(left, width, "")
	x := drawText(s, 0, 0, left, text)
	if x+hudBarCells <= width {
		x = drawText(s, x, 0, cooldownBar(hud.Cooldown), bar)
	}

	hint := hudHint + " "
	if hw := runewidth.StringWidth(hint); x+2+hw <= width {
		drawText(s, width-hw, 0, hint, dim)
	}
}
