package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/xform"
)

// WindowRenderer draws scene output into the current raylib frame. It must
// be used between rl.BeginDrawing and rl.EndDrawing.
type WindowRenderer struct {
	Width, Height int32
}

func NewWindowRenderer() *WindowRenderer {
	r := &WindowRenderer{}
	r.Sync()
	return r
}

// Sync picks up the current window size.
func (r *WindowRenderer) Sync() {
	r.Width = int32(rl.GetScreenWidth())
	r.Height = int32(rl.GetScreenHeight())
}

func (r *WindowRenderer) Clear(bg orrery.RGBA) error {
	rl.ClearBackground(toColor(bg.RGB(), bg.A))
	return nil
}

// ClearWithDepth also resets depth; 2D drawing keeps no depth so it only
// clears color.
func (r *WindowRenderer) ClearWithDepth(bg orrery.RGBA) error {
	return r.Clear(bg)
}

func (r *WindowRenderer) UploadAndDraw(vertices []orrery.Vertex, m xform.Mat4, c orrery.Color, wireframe bool) error {
	col := toColor(c, 1)

	if wireframe {
		for i := 0; i+1 < len(vertices); i += 2 {
			a, ok0 := r.toScreen(m, vertices[i])
			b, ok1 := r.toScreen(m, vertices[i+1])
			if !ok0 || !ok1 {
				continue
			}
			rl.DrawLineV(a, b, col)
		}
		return nil
	}

	for i := 0; i+2 < len(vertices); i += 3 {
		a, ok0 := r.toScreen(m, vertices[i])
		b, ok1 := r.toScreen(m, vertices[i+1])
		c, ok2 := r.toScreen(m, vertices[i+2])
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		// raylib culls clockwise triangles
		if cross(a, b, c) > 0 {
			b, c = c, b
		}
		rl.DrawTriangle(a, b, c, col)
	}
	return nil
}

func (r *WindowRenderer) toScreen(m xform.Mat4, v orrery.Vertex) (rl.Vector2, bool) {
	p := m.TransformVertex(v)
	if !p.IsFinite() {
		return rl.Vector2{}, false
	}
	return rl.NewVector2(
		float32((p.X+1)/2*float64(r.Width)),
		float32((1-p.Y)/2*float64(r.Height)),
	), true
}

func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func toColor(c orrery.Color, alpha float64) rl.Color {
	r, g, b := c.RGB255()
	a := alpha
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return rl.NewColor(r, g, b, uint8(a*255))
}
