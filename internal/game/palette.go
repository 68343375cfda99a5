package game

import colorful "github.com/lucasb-eyer/go-colorful"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex parses a "#rrggbb" colour. Invalid input yields black.
func Hex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// Floats returns the colour as normalised float32 channels.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Colorful converts to a go-colorful colour for blending.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// Blend mixes c toward o by t in [0,1].
func (c RGB) Blend(o RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	r, g, b := c.Colorful().BlendRgb(o.Colorful(), t).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

var Palette = struct {
	Background RGB
	Grid       RGB
	Player     RGB
	Trail      RGB
	Glow       RGB
	Target     RGB
	TargetRing RGB
	Hazard     RGB
	Explosion  RGB
	HUDText    RGB
	HUDDim     RGB
	Cooldown   RGB
}{
	Background: Hex("#0b1120"),
	Grid:       Hex("#1f2937"),
	Player:     Hex("#22d3ee"),
	Trail:      Hex("#22d3ee"),
	Glow:       Hex("#22d3ee"),
	Target:     Hex("#f97316"),
	TargetRing: Hex("#f97316"),
	Hazard:     Hex("#ef4444"),
	Explosion:  Hex("#ef4444"),
	HUDText:    Hex("#e5e7eb"),
	HUDDim:     Hex("#374151"),
	Cooldown:   Hex("#22d3ee"),
}
