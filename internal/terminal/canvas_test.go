package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"orbdash/internal/game"
)

// 64x21 cells is a 64x42 pixel framebuffer at exactly 10 logical px per pixel.
func newTestCanvas(t *testing.T) *Canvas {
	t.Helper()
	c := NewCanvas(64, 21)
	if c.Scale() != 10 {
		t.Fatalf("scale = %v, want 10", c.Scale())
	}
	c.Clear(640, 420)
	return c
}

var red = game.Hex("#ff0000")

func TestCanvasLogicalSizeMeetsMinimum(t *testing.T) {
	tests := []struct{ cols, rows int }{
		{80, 23}, {200, 60}, {20, 5}, {1, 1}, {0, 0},
	}
	for _, tt := range tests {
		c := NewCanvas(tt.cols, tt.rows)
		w, h := c.LogicalSize()
		if w < game.MinCanvasWidth-1e-9 || h < game.MinCanvasHeight-1e-9 {
			t.Errorf("%dx%d: logical %.1fx%.1f below minimum", tt.cols, tt.rows, w, h)
		}
		pw, ph := c.PixelSize()
		if got, want := w/h, float64(pw)/float64(ph); got-want > 1e-9 || want-got > 1e-9 {
			t.Errorf("%dx%d: aspect %.3f, want square pixels %.3f", tt.cols, tt.rows, got, want)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := newTestCanvas(t)
	if got := c.Pixel(10, 10); got != game.Palette.Background {
		t.Fatalf("pixel = %v, want background", got)
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := newTestCanvas(t)
	c.FillCircle(320, 210, 30, red)
	if got := c.Pixel(32, 21); got != red {
		t.Errorf("centre pixel = %v, want red", got)
	}
	if got := c.Pixel(0, 0); got != game.Palette.Background {
		t.Errorf("corner pixel = %v, want background", got)
	}
}

func TestCanvasTinyCircleLightsOnePixel(t *testing.T) {
	c := newTestCanvas(t)
	c.FillCircle(100, 100, 2, red)
	if got := c.Pixel(10, 10); got != red {
		t.Fatalf("pixel under centre = %v, want red", got)
	}
}

func TestCanvasAlphaBlends(t *testing.T) {
	c := newTestCanvas(t)
	c.SetAlpha(0.5)
	c.FillCircle(320, 210, 30, red)
	got := c.Pixel(32, 21)
	if got == red || got == game.Palette.Background {
		t.Fatalf("half-alpha pixel = %v, want a blend", got)
	}
	c.SetAlpha(0)
	c.Clear(640, 420)
	c.FillCircle(320, 210, 30, red)
	if got := c.Pixel(32, 21); got != game.Palette.Background {
		t.Fatalf("zero-alpha pixel = %v, want background", got)
	}
}

func TestCanvasStrokeCircleIsHollow(t *testing.T) {
	c := newTestCanvas(t)
	c.StrokeCircle(320, 210, 50, red, 1)
	if got := c.Pixel(32, 21); got != game.Palette.Background {
		t.Errorf("inside pixel = %v, want background", got)
	}
	if got := c.Pixel(36, 21); got != red {
		t.Errorf("ring pixel = %v, want red", got)
	}
}

func TestCanvasShadowGlow(t *testing.T) {
	c := newTestCanvas(t)
	c.SetShadow(red, 20)
	c.FillCircle(320, 210, 10, game.Palette.Player)
	// Pixel (33,21) is ~15.8 from the centre: outside the disc, inside the glow.
	if got := c.Pixel(33, 21); got == game.Palette.Background {
		t.Error("no glow outside the disc")
	}
	c.SetShadow(game.RGB{}, 0)
	c.Clear(640, 420)
	c.FillCircle(320, 210, 10, game.Palette.Player)
	if got := c.Pixel(33, 21); got != game.Palette.Background {
		t.Errorf("glow drawn with shadow off: %v", got)
	}
}

func TestCanvasLine(t *testing.T) {
	c := newTestCanvas(t)
	c.Line(0, 100, 640, 100, red)
	for _, x := range []int{0, 31, 63} {
		if got := c.Pixel(x, 10); got != red {
			t.Errorf("pixel (%d,10) = %v, want red", x, got)
		}
	}
	if got := c.Pixel(5, 11); got != game.Palette.Background {
		t.Errorf("pixel off the line = %v", got)
	}
}

func TestCanvasFlushHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(64, 22)

	c := newTestCanvas(t)
	c.FillCircle(105, 105, 4, red) // pixel (10,10): upper half of cell row 5
	c.Flush(screen, hudRows)

	mainc, _, style, _ := screen.GetContent(10, hudRows+5)
	if mainc != halfBlock {
		t.Fatalf("cell rune = %q, want %q", mainc, halfBlock)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcellColor(red) {
		t.Errorf("foreground = %v, want red", fg)
	}
	if bg != tcellColor(game.Palette.Background) {
		t.Errorf("background = %v, want palette background", bg)
	}
}
