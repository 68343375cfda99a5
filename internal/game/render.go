package game

import "math"

// Canvas is an immediate-mode 2D drawing surface in logical pixels.
// SetAlpha and SetShadow are sticky until changed.
type Canvas interface {
	Clear(width, height float64)
	SetAlpha(a float64)
	SetShadow(col RGB, blur float64) // blur <= 0 disables
	Line(x0, y0, x1, y1 float64, col RGB)
	FillCircle(x, y, r float64, col RGB)
	StrokeCircle(x, y, r float64, col RGB, alpha float64)
}

// Scene is a read-only view of everything drawn in a frame.
type Scene struct {
	Width, Height float64
	Targets       []Target
	Hazards       []Hazard
	Player        *Player
	Particles     []Particle
}

// DrawScene renders back to front: grid, targets, hazards, player, particles.
func DrawScene(c Canvas, s Scene) {
	c.Clear(s.Width, s.Height)
	drawGrid(c, s.Width, s.Height)
	drawTargets(c, s.Targets)
	drawHazards(c, s.Hazards)
	if s.Player != nil {
		drawPlayer(c, s.Player)
	}
	drawParticles(c, s.Particles)
}

func drawGrid(c Canvas, w, h float64) {
	c.SetAlpha(GridAlpha)
	for x := 0.0; x < w; x += GridSpacing {
		c.Line(x, 0, x, h, Palette.Grid)
	}
	for y := 0.0; y < h; y += GridSpacing {
		c.Line(0, y, w, y, Palette.Grid)
	}
	c.SetAlpha(1)
}

func drawTargets(c Canvas, targets []Target) {
	for _, t := range targets {
		c.FillCircle(t.X, t.Y, t.R, t.Color)
		c.StrokeCircle(t.X, t.Y, t.R+TargetRingGap, Palette.TargetRing, TargetRingAlpha)
	}
}

func drawHazards(c Canvas, hazards []Hazard) {
	for _, hz := range hazards {
		c.FillCircle(hz.X, hz.Y, hz.R, hz.Color)
	}
}

func drawPlayer(c Canvas, p *Player) {
	for _, t := range p.Trail {
		c.SetAlpha(math.Max(t.Life, 0))
		c.FillCircle(t.X, t.Y, TrailRadius*t.Life, Palette.Trail)
	}
	c.SetAlpha(1)

	c.SetShadow(Palette.Glow, PlayerGlowBlur)
	c.FillCircle(p.X, p.Y, p.R, p.Color)
	c.SetShadow(RGB{}, 0)
}

func drawParticles(c Canvas, particles []Particle) {
	for _, p := range particles {
		c.SetAlpha(math.Max(p.Life, 0))
		c.FillCircle(p.X, p.Y, p.R, Palette.Explosion)
	}
	c.SetAlpha(1)
}
