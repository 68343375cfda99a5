package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"orbdash/internal/game"
)

const (
	spriteFloats = 8 // x, y, size, r, g, b, a, ring
	lineFloats   = 6 // x, y, r, g, b, a

	// Soft cap on buffered floats before a forced flush.
	maxBatchFloats = 64 * 1024
)

// Glow brightness relative to the fill colour.
const glowGain = 0.85

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type batchKind int

const (
	batchNone batchKind = iota
	batchLines
	batchSprites
	batchGlow
)

// Renderer is a game.Canvas backed by OpenGL. Draw calls are batched and
// flushed whenever the primitive kind changes, so submission order is kept.
type Renderer struct {
	// Disc/ring program.
	spriteProg    uint32
	spriteVAO     uint32
	spriteVBO     uint32
	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Glow (radial light) program. Shares spriteVAO, additive blend only.
	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32

	// Grid line program.
	lineProg        uint32
	lineVAO         uint32
	lineVBO         uint32
	lineUCamera     int32
	lineUZoom       int32
	lineUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Per-frame state.
	cam        Camera
	fbW, fbH   int
	alpha      float64
	shadowCol  game.RGB
	shadowBlur float64
	kind       batchKind
	buf        []float32
}

var _ game.Canvas = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, discFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("line program: %w", err)
	}

	r := &Renderer{
		spriteProg: spriteProg,
		glowProg:   glowProg,
		lineProg:   lineProg,
		alpha:      1,
		buf:        make([]float32, 0, 4096),
	}

	// Sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxBatchFloats*4, nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRing (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	// Line VAO/VBO.
	var lVAO, lVBO uint32
	gl.GenVertexArrays(1, &lVAO)
	gl.GenBuffers(1, &lVBO)
	gl.BindVertexArray(lVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lVBO)

	lstride := int32(lineFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxBatchFloats*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, lstride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, lstride, glOffset(2*4))
	r.lineVAO = lVAO
	r.lineVBO = lVBO

	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	r.lineUCamera = gl.GetUniformLocation(lineProg, gl.Str("uCamera\x00"))
	r.lineUZoom = gl.GetUniformLocation(lineProg, gl.Str("uZoom\x00"))
	r.lineUResolution = gl.GetUniformLocation(lineProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.lineVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.lineVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteProg, r.glowProg, r.lineProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame sets the viewport and camera for the following draw calls.
func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	r.cam = cam
	r.fbW, r.fbH = fbW, fbH
	r.alpha = 1
	r.shadowBlur = 0
	r.kind = batchNone
	r.buf = r.buf[:0]
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
}

// EndFrame flushes any pending geometry.
func (r *Renderer) EndFrame() {
	r.flush()
}

func (r *Renderer) Clear(width, height float64) {
	r.flush()
	cr, cg, cb := game.Palette.Background.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) SetAlpha(a float64) {
	r.alpha = game.Clamp(a, 0, 1)
}

func (r *Renderer) SetShadow(col game.RGB, blur float64) {
	r.shadowCol = col
	r.shadowBlur = blur
}

func (r *Renderer) Line(x0, y0, x1, y1 float64, col game.RGB) {
	r.use(batchLines)
	cr, cg, cb := col.Floats()
	a := float32(r.alpha)
	r.buf = append(r.buf,
		float32(x0), float32(y0), cr, cg, cb, a,
		float32(x1), float32(y1), cr, cg, cb, a,
	)
}

func (r *Renderer) FillCircle(x, y, rad float64, col game.RGB) {
	if rad <= 0 {
		return
	}
	if r.shadowBlur > 0 {
		r.use(batchGlow)
		k := float32(glowGain * r.alpha)
		gr, gg, gb := r.shadowCol.Floats()
		r.buf = append(r.buf,
			float32(x), float32(y), float32(2*(rad+r.shadowBlur)),
			gr*k, gg*k, gb*k, 1, 0,
		)
	}
	r.use(batchSprites)
	cr, cg, cb := col.Floats()
	r.buf = append(r.buf,
		float32(x), float32(y), float32(2*rad),
		cr, cg, cb, float32(r.alpha), 0,
	)
}

// StrokeCircle draws a one logical pixel ring centred on radius rad.
func (r *Renderer) StrokeCircle(x, y, rad float64, col game.RGB, alpha float64) {
	if rad <= 0 {
		return
	}
	r.use(batchSprites)
	outer := rad + 0.5
	cr, cg, cb := col.Floats()
	r.buf = append(r.buf,
		float32(x), float32(y), float32(2*outer),
		cr, cg, cb, float32(r.alpha*alpha), float32(1/outer),
	)
}

// use switches the active batch, flushing the previous one.
func (r *Renderer) use(kind batchKind) {
	if r.kind != kind || len(r.buf) >= maxBatchFloats-spriteFloats*2 {
		r.flush()
		r.kind = kind
	}
}

func (r *Renderer) flush() {
	if len(r.buf) == 0 {
		r.kind = batchNone
		return
	}

	switch r.kind {
	case batchLines:
		r.DrawLines(r.buf, r.cam, r.fbW, r.fbH)
	case batchSprites:
		r.DrawSprites(r.buf, r.cam, r.fbW, r.fbH, false)
	case batchGlow:
		r.DrawGlowSprites(r.buf, r.cam, r.fbW, r.fbH)
	}

	r.buf = r.buf[:0]
	r.kind = batchNone
}
