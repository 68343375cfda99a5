package desktop

import "orbdash/internal/game"

const (
	hudMargin    = 12  // screen coordinates, before content scale
	hudBarWidth  = 120 // cooldown bar
	hudBarHeight = 6
	hudTextScale = 1.4
	hudHint      = "WASD/Arrows move  SPACE dash  ESC quit"
)

// RenderHUD draws score, level and the dash cooldown bar in framebuffer
// pixels. dpr is the framebuffer/window ratio.
func RenderHUD(r *Renderer, hud *game.HUDState, fbW, fbH int, dpr float32) {
	text := game.Palette.HUDText
	dim := game.Palette.HUDDim

	s := hudTextScale * dpr
	m := int(hudMargin * dpr)
	lineH := int(float32(fontCellH)*s) + int(4*dpr)

	r.DrawString(hud.ScoreText(), m, m, s, text)
	r.DrawString(hud.LevelText(), m, m+lineH, s, text)

	// Cooldown bar: dim track, filled in proportion to readiness.
	bx := float32(m)
	by := float32(m + 2*lineH + int(2*dpr))
	bw := hudBarWidth * dpr
	bh := hudBarHeight * dpr
	r.DrawRect(bx, by, bw, bh, dim, 1)
	r.DrawRect(bx, by, bw*float32(hud.CooldownPercent())/100, bh, game.Palette.Cooldown, 1)

	hs := s * 0.75
	r.DrawString(hudHint, fbW/2-TextWidth(hudHint, hs)/2, fbH-m-int(float32(fontCellH)*hs), hs, dim)

	r.FlushText(fbW, fbH)
}
