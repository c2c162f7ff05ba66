package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/shape"
	"github.com/san-kum/orrery/internal/starfield"
	"github.com/san-kum/orrery/internal/xform"
)

const (
	// depthFalloff and minDepthScale shape the pseudo-perspective shrink.
	depthFalloff  = 0.1
	minDepthScale = 0.1

	starFOV   = math.Pi / 4
	starNear  = 0.1
	starFar   = 1000
	starScale = 0.004
)

// Scene holds the per-session render settings.
type Scene struct {
	Wireframe  bool
	Background orrery.RGBA
	Rings      int
	Segments   int
	Stars      []starfield.Star
}

func NewScene() *Scene {
	return &Scene{
		Background: orrery.RGBA{A: 1},
		Rings:      shape.DefaultSphereSegments,
		Segments:   shape.DefaultSphereSegments,
	}
}

// Placement is where and how large one body is drawn this frame.
type Placement struct {
	Index  int
	Name   string
	Screen orrery.Vec2
	Depth  float64
	Radius float64
	Matrix xform.Mat4
	Color  orrery.Color
}

// DepthFactor is 1 / max(0.1, 1 + depth·0.1): farther bodies shrink, and the
// floor stops the factor from exploding or flipping sign for large negative
// depth.
func DepthFactor(depth float64) float64 {
	return 1 / math.Max(minDepthScale, 1+depth*depthFalloff)
}

// Place computes the placement of one body without drawing it.
func Place(index int, b orbit.Body, cam *camera.Camera) Placement {
	pos := orbit.PositionOf(b)
	screen, depth := cam.Project(pos, cam.Center())

	scaleFactor := 1 / cam.ZoomDivisor()
	radius := b.Radius * scaleFactor * DepthFactor(depth)

	return Placement{
		Index:  index,
		Name:   b.Name,
		Screen: screen,
		Depth:  depth,
		Radius: radius,
		Matrix: xform.AspectCorrected(0, 1, screen, cam.Aspect()),
		Color:  b.Color,
	}
}

// Placements returns one placement per body, in draw order.
func Placements(sys *orbit.System, cam *camera.Camera) []Placement {
	out := make([]Placement, 0, sys.Len())
	for i := 0; i < sys.Len(); i++ {
		b, _ := sys.BodyAt(i)
		out = append(out, Place(i, b, cam))
	}
	return out
}

// Render clears the frame, draws the starfield, then every body in index
// order. A failed draw is recorded and the pass carries on; the joined
// errors are returned once every body has been attempted. Only a failed
// clear aborts the frame.
func (s *Scene) Render(r Renderer, sys *orbit.System, cam *camera.Camera) error {
	if err := r.ClearWithDepth(s.Background); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	var errs []error
	errs = append(errs, s.renderStars(r, cam)...)

	for _, p := range Placements(sys, cam) {
		verts := shape.Generate(shape.NewSphere(p.Radius, s.Rings, s.Segments), s.Wireframe)
		if err := r.UploadAndDraw(verts, p.Matrix, p.Color, s.Wireframe); err != nil {
			errs = append(errs, &DrawError{Index: p.Index, Name: p.Name, Err: err})
		}
	}
	return errors.Join(errs...)
}

// renderStars draws the backdrop through a perspective projection of the
// camera orientation only, so stars wheel with the view but never translate.
func (s *Scene) renderStars(r Renderer, cam *camera.Camera) []error {
	if len(s.Stars) == 0 {
		return nil
	}
	proj := xform.Perspective(starFOV, cam.Aspect(), starNear, starFar)

	var errs []error
	for i, st := range s.Stars {
		v := cam.Orient(st.Position)
		// view space looks down -Z; positive depth is in front
		clip := proj.Transform4(v.X, v.Y, -v.Z, 1)
		if clip[3] <= 0 {
			continue
		}
		ndc := orrery.Vec2{X: clip[0] / clip[3], Y: clip[1] / clip[3]}
		if math.Abs(ndc.X) > 1 || math.Abs(ndc.Y) > 1 {
			continue
		}

		verts := shape.Generate(shape.NewDisc(st.Size*starScale, 6), s.Wireframe)
		m := xform.Screen(0, 1, ndc)
		c := orrery.Color{R: st.Brightness, G: st.Brightness, B: st.Brightness}
		if err := r.UploadAndDraw(verts, m, c, s.Wireframe); err != nil {
			errs = append(errs, &DrawError{Index: i, Name: "star", Err: err})
		}
	}
	return errs
}
