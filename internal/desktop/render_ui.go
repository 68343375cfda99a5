package desktop

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"orbdash/internal/game"
)

// Font atlas layout: printable ASCII in a 16x8 grid of 7x13 cells.
const (
	fontCols   = 16
	fontRows   = 8
	fontCellW  = 7
	fontCellH  = 13
	fontAtlasW = fontCols * fontCellW
	fontAtlasH = fontRows * fontCellH

	// Cell 127 (DEL) is filled solid and used for bars.
	solidCell = 127
)

// buildFontAtlas rasterises basicfont's 7x13 face into a white-on-clear atlas.
func buildFontAtlas() *image.NRGBA {
	atlas := image.NewNRGBA(image.Rect(0, 0, fontAtlasW, fontAtlasH))
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: atlas, Src: image.White, Face: face}
	for c := 32; c < 127; c++ {
		col, row := c%fontCols, c/fontCols
		d.Dot = fixed.P(col*fontCellW, row*fontCellH+face.Ascent)
		d.DrawString(string(rune(c)))
	}
	col, row := solidCell%fontCols, solidCell/fontCols
	cell := image.Rect(col*fontCellW, row*fontCellH, (col+1)*fontCellW, (row+1)*fontCellH)
	draw.Draw(atlas, cell, image.White, image.Point{}, draw.Src)
	return atlas
}

// InitFont uploads the font atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	atlas := buildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		fontAtlasW, fontAtlasH, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 256*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// cellUV returns the atlas UV rectangle of character code c.
func cellUV(c int) (u0, v0, u1, v1 float32) {
	column, row := c%fontCols, c/fontCols
	u0 = float32(column*fontCellW) / fontAtlasW
	v0 = float32(row*fontCellH) / fontAtlasH
	u1 = float32((column+1)*fontCellW) / fontAtlasW
	v1 = float32((row+1)*fontCellH) / fontAtlasH
	return
}

// quad queues two triangles covering (x,y)-(x+w,y+h) in screen pixels.
func (r *Renderer) quad(x, y, w, h, u0, v0, u1, v1 float32, col game.RGB, alpha float32) {
	cr, cg, cb := col.Floats()
	r.textBuf = append(r.textBuf,
		x, y, u0, v0, cr, cg, cb, alpha,
		x+w, y, u1, v0, cr, cg, cb, alpha,
		x, y+h, u0, v1, cr, cg, cb, alpha,
		x+w, y, u1, v0, cr, cg, cb, alpha,
		x+w, y+h, u1, v1, cr, cg, cb, alpha,
		x, y+h, u0, v1, cr, cg, cb, alpha,
	)
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col game.RGB) {
	if ch < 32 || ch > 126 {
		return
	}
	u0, v0, u1, v1 := cellUV(int(ch))
	r.quad(sx, sy, fontCellW*scale, fontCellH*scale, u0, v0, u1, v1, col, 1)
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col game.RGB) {
	advance := float32(fontCellW) * scale
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// DrawRect queues a solid rectangle in screen pixels.
func (r *Renderer) DrawRect(x, y, w, h float32, col game.RGB, alpha float32) {
	if w <= 0 || h <= 0 {
		return
	}
	u0, v0, u1, v1 := cellUV(solidCell)
	// Sample the cell centre so NEAREST filtering never bleeds into neighbours.
	cu, cv := (u0+u1)/2, (v0+v1)/2
	r.quad(x, y, w, h, cu, cv, cu, cv, col, alpha)
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	n := 0
	for range text {
		n++
	}
	return int(float32(n*fontCellW) * scale)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
