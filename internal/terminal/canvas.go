// Package terminal runs the game in a terminal using tcell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"orbdash/internal/game"
)

// Each terminal cell shows two vertically stacked pixels with '▀':
// foreground is the upper pixel, background the lower one.
const halfBlock = '▀'

// Glow strength at the edge of a shadowed circle.
const glowStrength = 0.6

// Canvas rasterises game draw calls into a half-block framebuffer.
// Pixels are square, and the logical play area is scaled so that it is
// never smaller than the game's minimum canvas.
type Canvas struct {
	cols, rows int // cells
	pw, ph     int // pixels
	scale      float64
	pix        []game.RGB

	alpha      float64
	shadowCol  game.RGB
	shadowBlur float64
}

var _ game.Canvas = (*Canvas)(nil)

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{alpha: 1}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the framebuffer for cols x rows cells.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	c.cols, c.rows = cols, rows
	c.pw, c.ph = cols, rows*2
	c.scale = max(game.MinCanvasWidth/float64(c.pw), game.MinCanvasHeight/float64(c.ph))
	c.pix = make([]game.RGB, c.pw*c.ph)
}

// LogicalSize is the play area the framebuffer covers, in logical pixels.
func (c *Canvas) LogicalSize() (float64, float64) {
	return float64(c.pw) * c.scale, float64(c.ph) * c.scale
}

// Scale is the number of logical pixels per framebuffer pixel.
func (c *Canvas) Scale() float64 { return c.scale }

// PixelSize is the framebuffer size in pixels.
func (c *Canvas) PixelSize() (int, int) { return c.pw, c.ph }

// Pixel returns the colour at framebuffer pixel (x, y).
func (c *Canvas) Pixel(x, y int) game.RGB {
	if x < 0 || y < 0 || x >= c.pw || y >= c.ph {
		return game.RGB{}
	}
	return c.pix[y*c.pw+x]
}

func (c *Canvas) plot(x, y int, col game.RGB, a float64) {
	if x < 0 || y < 0 || x >= c.pw || y >= c.ph || a <= 0 {
		return
	}
	i := y*c.pw + x
	c.pix[i] = c.pix[i].Blend(col, a)
}

func (c *Canvas) Clear(width, height float64) {
	bg := game.Palette.Background
	for i := range c.pix {
		c.pix[i] = bg
	}
}

func (c *Canvas) SetAlpha(a float64) {
	c.alpha = game.Clamp(a, 0, 1)
}

func (c *Canvas) SetShadow(col game.RGB, blur float64) {
	c.shadowCol = col
	c.shadowBlur = blur
}

// Line steps one pixel at a time along the major axis.
func (c *Canvas) Line(x0, y0, x1, y1 float64, col game.RGB) {
	px0, py0 := x0/c.scale, y0/c.scale
	px1, py1 := x1/c.scale, y1/c.scale
	steps := int(math.Ceil(max(math.Abs(px1-px0), math.Abs(py1-py0))))
	if steps == 0 {
		c.plot(int(px0), int(py0), col, c.alpha)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := px0 + (px1-px0)*t
		y := py0 + (py1-py0)*t
		c.plot(int(math.Floor(x)), int(math.Floor(y)), col, c.alpha)
	}
}

// FillCircle colours every pixel whose centre lies inside the circle. A
// circle smaller than a pixel still lights the pixel under its centre.
func (c *Canvas) FillCircle(x, y, r float64, col game.RGB) {
	if r <= 0 || c.alpha <= 0 {
		return
	}
	if c.shadowBlur > 0 {
		c.glow(x, y, r)
	}
	hit := c.eachPixel(x, y, r, func(px, py int, d float64) {
		if d <= r {
			c.plot(px, py, col, c.alpha)
		}
	})
	if !hit {
		c.plot(int(x/c.scale), int(y/c.scale), col, c.alpha)
	}
}

// StrokeCircle draws a ring one framebuffer pixel wide.
func (c *Canvas) StrokeCircle(x, y, r float64, col game.RGB, alpha float64) {
	if r <= 0 {
		return
	}
	half := c.scale / 2
	c.eachPixel(x, y, r+half, func(px, py int, d float64) {
		if math.Abs(d-r) <= half {
			c.plot(px, py, col, c.alpha*alpha)
		}
	})
}

// glow blends a halo of the shadow colour that fades out over shadowBlur.
func (c *Canvas) glow(x, y, r float64) {
	outer := r + c.shadowBlur
	c.eachPixel(x, y, outer, func(px, py int, d float64) {
		if d <= r || d > outer {
			return
		}
		f := 1 - (d-r)/c.shadowBlur
		c.plot(px, py, c.shadowCol, c.alpha*glowStrength*f*f)
	})
}

// eachPixel calls fn for every pixel in the bounding box of a circle,
// with the logical distance from the pixel centre to (x, y). It reports
// whether any pixel centre was inside radius r.
func (c *Canvas) eachPixel(x, y, r float64, fn func(px, py int, d float64)) bool {
	s := c.scale
	minX := max(int(math.Floor((x-r)/s)), 0)
	maxX := min(int(math.Ceil((x+r)/s)), c.pw-1)
	minY := max(int(math.Floor((y-r)/s)), 0)
	maxY := min(int(math.Ceil((y+r)/s)), c.ph-1)
	hit := false
	for py := minY; py <= maxY; py++ {
		cy := (float64(py) + 0.5) * s
		for px := minX; px <= maxX; px++ {
			cx := (float64(px) + 0.5) * s
			d := math.Hypot(cx-x, cy-y)
			if d <= r {
				hit = true
			}
			fn(px, py, d)
		}
	}
	return hit
}

// Flush writes the framebuffer to screen starting at cell row top.
func (c *Canvas) Flush(screen tcell.Screen, top int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			upper := c.pix[(2*row)*c.pw+col]
			lower := c.pix[(2*row+1)*c.pw+col]
			st := tcell.StyleDefault.Foreground(tcellColor(upper)).Background(tcellColor(lower))
			screen.SetContent(col, top+row, halfBlock, nil, st)
		}
	}
}

func tcellColor(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
