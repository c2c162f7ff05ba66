// Package shape tessellates the primitive shapes the renderer draws.
//
// Shapes are a closed set of kinds handled by one generation function.
// Solid output is always a triangle list and wireframe output is always a
// line list (vertex pairs), so a renderer only needs those two modes.
// Generation is pure; nothing is cached between calls.
package shape

import (
	"fmt"
	"math"

	"github.com/san-kum/orrery/internal/orrery"
)

type Kind int

const (
	Triangle Kind = iota
	Disc
	Rectangle
	Sphere
)

func (k Kind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case Disc:
		return "disc"
	case Rectangle:
		return "rectangle"
	case Sphere:
		return "sphere"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

const (
	DefaultDiscSegments   = 32
	DefaultSphereSegments = 16
)

// Spec describes one shape request. Size is the radius for discs and spheres
// and a uniform scale for the unit triangle and rectangle. Segments is the
// rim resolution (longitude for spheres); Rings is the sphere's latitude count.
type Spec struct {
	Kind     Kind
	Size     float64
	Segments int
	Rings    int
}

func NewSphere(radius float64, rings, segments int) Spec {
	return Spec{Kind: Sphere, Size: radius, Segments: segments, Rings: rings}
}

func NewDisc(radius float64, segments int) Spec {
	return Spec{Kind: Disc, Size: radius, Segments: segments}
}

// Generate returns the vertex list for s.
func Generate(s Spec, wireframe bool) []orrery.Vertex {
	switch s.Kind {
	case Triangle:
		return triangle(s.Size, wireframe)
	case Disc:
		return disc(s.Size, orDefault(s.Segments, DefaultDiscSegments), wireframe)
	case Rectangle:
		return rectangle(s.Size, wireframe)
	case Sphere:
		return sphere(s.Size, orDefault(s.Rings, DefaultSphereSegments), orDefault(s.Segments, DefaultSphereSegments), wireframe)
	}
	return nil
}

func triangle(size float64, wireframe bool) []orrery.Vertex {
	a := orrery.V(0, 0.5*size, 0)
	b := orrery.V(-0.5*size, -0.5*size, 0)
	c := orrery.V(0.5*size, -0.5*size, 0)
	if wireframe {
		return []orrery.Vertex{a, b, b, c, c, a}
	}
	return []orrery.Vertex{a, b, c}
}

func rectangle(size float64, wireframe bool) []orrery.Vertex {
	h := 0.5 * size
	bl := orrery.V(-h, -h, 0)
	br := orrery.V(h, -h, 0)
	tr := orrery.V(h, h, 0)
	tl := orrery.V(-h, h, 0)
	if wireframe {
		return []orrery.Vertex{bl, br, br, tr, tr, tl, tl, bl}
	}
	return []orrery.Vertex{bl, br, tr, bl, tr, tl}
}

func disc(radius float64, segments int, wireframe bool) []orrery.Vertex {
	rim := make([]orrery.Vertex, segments+1)
	for i := 0; i <= segments; i++ {
		a := float64(i) * 2 * math.Pi / float64(segments)
		rim[i] = orrery.V(radius*math.Cos(a), radius*math.Sin(a), 0)
	}

	out := make([]orrery.Vertex, 0, segments*3)
	center := orrery.Vertex{}
	for i := 0; i < segments; i++ {
		if wireframe {
			out = append(out, rim[i], rim[i+1])
		} else {
			out = append(out, center, rim[i], rim[i+1])
		}
	}
	return out
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
