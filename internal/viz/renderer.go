package viz

import (
	"math"

	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/xform"
)

// CanvasRenderer draws scene output onto a braille Canvas. Clip space maps
// x in [-1, 1] to the canvas width and y in [-1, 1] to its height, y up.
type CanvasRenderer struct {
	Canvas     *Canvas
	Background orrery.RGBA
	Draws      int
}

func NewCanvasRenderer(w, h int) *CanvasRenderer {
	return &CanvasRenderer{Canvas: NewCanvas(w, h)}
}

// Aspect is the width/height ratio of the canvas in dots. A braille cell is
// roughly twice as tall as it is wide, which the 2x4 dot grid cancels out.
func (r *CanvasRenderer) Aspect() float64 {
	return float64(r.Canvas.PixelWidth()) / float64(r.Canvas.PixelHeight())
}

func (r *CanvasRenderer) Resize(w, h int) {
	if w == r.Canvas.Width && h == r.Canvas.Height {
		return
	}
	r.Canvas = NewCanvas(w, h)
}

func (r *CanvasRenderer) Clear(bg orrery.RGBA) error {
	r.Background = bg
	r.Canvas.Clear()
	r.Draws = 0
	return nil
}

// ClearWithDepth is Clear; the canvas has no depth buffer and relies on
// draw order.
func (r *CanvasRenderer) ClearWithDepth(bg orrery.RGBA) error {
	return r.Clear(bg)
}

func (r *CanvasRenderer) UploadAndDraw(vertices []orrery.Vertex, m xform.Mat4, c orrery.Color, wireframe bool) error {
	r.Draws++
	if wireframe {
		for i := 0; i+1 < len(vertices); i += 2 {
			x0, y0, ok0 := r.toPixel(m, vertices[i])
			x1, y1, ok1 := r.toPixel(m, vertices[i+1])
			if !ok0 || !ok1 || !onCanvas(r.Canvas, x0, y0, x1, y1) {
				continue
			}
			r.Canvas.DrawLine(int(x0), int(y0), int(x1), int(y1), c)
		}
		return nil
	}

	for i := 0; i+2 < len(vertices); i += 3 {
		x0, y0, ok0 := r.toPixel(m, vertices[i])
		x1, y1, ok1 := r.toPixel(m, vertices[i+1])
		x2, y2, ok2 := r.toPixel(m, vertices[i+2])
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		r.Canvas.FillTriangle(x0, y0, x1, y1, x2, y2, c)
	}
	return nil
}

func (r *CanvasRenderer) String() string { return r.Canvas.String() }
func (r *CanvasRenderer) Styled() string { return r.Canvas.Styled() }

func (r *CanvasRenderer) toPixel(m xform.Mat4, v orrery.Vertex) (float64, float64, bool) {
	p := m.TransformVertex(v)
	if !p.IsFinite() {
		return 0, 0, false
	}
	px := (p.X + 1) / 2 * float64(r.Canvas.PixelWidth())
	py := (1 - p.Y) / 2 * float64(r.Canvas.PixelHeight())
	return px, py, true
}

// onCanvas rejects segments with an endpoint so far away that Bresenham
// would walk millions of dots.
func onCanvas(c *Canvas, x0, y0, x1, y1 float64) bool {
	limit := 4 * float64(c.PixelWidth()+c.PixelHeight())
	for _, v := range []float64{x0, y0, x1, y1} {
		if math.Abs(v) > limit {
			return false
		}
	}
	return true
}
