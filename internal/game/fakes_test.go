package game

import "fmt"

// recordingHUD keeps every value it was sent.
type recordingHUD struct {
	scores    []int
	levels    []int
	cooldowns []float64
}

func (h *recordingHUD) UpdateScore(s int) { h.scores = append(h.scores, s) }
func (h *recordingHUD) UpdateLevel(l int) { h.levels = append(h.levels, l) }
func (h *recordingHUD) UpdateCooldown(f float64) { h.cooldowns = append(h.cooldowns, f) }

func (h *recordingHUD) lastScore() int { return h.scores[len(h.scores)-1] }
func (h *recordingHUD) lastLevel() int { return h.levels[len(h.levels)-1] }

// drawOp is one recorded canvas call.
type drawOp struct {
	name  string
	x, y  float64
	r     float64
	col   RGB
	alpha float64 // SetAlpha value or StrokeCircle alpha
	blur  float64
}

func (op drawOp) String() string {
	return fmt.Sprintf("%s(%.1f,%.1f r=%.1f a=%.2f)", op.name, op.x, op.y, op.r, op.alpha)
}

// recordingCanvas logs draw calls in order.
type recordingCanvas struct {
	ops   []drawOp
	alpha float64 // alpha in effect, for checks on fills
}

func (c *recordingCanvas) Clear(w, h float64) {
	c.ops = append(c.ops, drawOp{name: "clear", x: w, y: h})
}

func (c *recordingCanvas) SetAlpha(a float64) {
	c.alpha = a
	c.ops = append(c.ops, drawOp{name: "alpha", alpha: a})
}

func (c *recordingCanvas) SetShadow(col RGB, blur float64) {
	c.ops = append(c.ops, drawOp{name: "shadow", col: col, blur: blur})
}

func (c *recordingCanvas) Line(x0, y0, x1, y1 float64, col RGB) {
	c.ops = append(c.ops, drawOp{name: "line", x: x0, y: y0, col: col, alpha: c.alpha})
}

func (c *recordingCanvas) FillCircle(x, y, r float64, col RGB) {
	c.ops = append(c.ops, drawOp{name: "fill", x: x, y: y, r: r, col: col, alpha: c.alpha})
}

func (c *recordingCanvas) StrokeCircle(x, y, r float64, col RGB, alpha float64) {
	c.ops = append(c.ops, drawOp{name: "stroke", x: x, y: y, r: r, col: col, alpha: alpha})
}

func (c *recordingCanvas) count(name string) int {
	n := 0
	for _, op := range c.ops {
		if op.name == name {
			n++
		}
	}
	return n
}

// heldAxis is a fixed AxisSource.
type heldAxis struct{ x, y float64 }

func (a heldAxis) MovementAxis() (float64, float64) { return a.x, a.y }
