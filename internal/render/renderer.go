package render

import (
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/xform"
)

type Renderer interface {
	Clear(bg orrery.RGBA) error
	ClearWithDepth(bg orrery.RGBA) error
	// UploadAndDraw draws vertices transformed by m. Solid vertex lists are
	// triangle lists; wireframe vertex lists are line lists.
	UploadAndDraw(vertices []orrery.Vertex, m xform.Mat4, c orrery.Color, wireframe bool) error
}

type DrawCall struct {
	Vertices  []orrery.Vertex
	Matrix    xform.Mat4
	Color     orrery.Color
	Wireframe bool
}

// Recorder is a Renderer that keeps every call. FailOn, when set, is consulted
// with the zero-based draw index and its error is returned for that call.
type Recorder struct {
	Clears      []orrery.RGBA
	DepthClears int
	Calls       []DrawCall
	FailOn      func(i int) error
}

func (r *Recorder) Clear(bg orrery.RGBA) error {
	r.Clears = append(r.Clears, bg)
	return nil
}

func (r *Recorder) ClearWithDepth(bg orrery.RGBA) error {
	r.Clears = append(r.Clears, bg)
	r.DepthClears++
	return nil
}

func (r *Recorder) UploadAndDraw(vertices []orrery.Vertex, m xform.Mat4, c orrery.Color, wireframe bool) error {
	i := len(r.Calls)
	r.Calls = append(r.Calls, DrawCall{Vertices: vertices, Matrix: m, Color: c, Wireframe: wireframe})
	if r.FailOn != nil {
		return r.FailOn(i)
	}
	return nil
}

func (r *Recorder) Reset() {
	r.Clears = r.Clears[:0]
	r.DepthClears = 0
	r.Calls = r.Calls[:0]
}
