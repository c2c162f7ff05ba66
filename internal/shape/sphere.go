package shape

import (
	"math"

	"github.com/san-kum/orrery/internal/orrery"
)

// sphere builds a UV sphere with Y as the polar axis. Solid output is two
// triangles per latitude/longitude quad; wireframe output is one meridian and
// one parallel segment per quad, skipping the degenerate parallels at the
// north pole.
func sphere(radius float64, rings, segments int, wireframe bool) []orrery.Vertex {
	point := func(lat, lon int) orrery.Vertex {
		theta := float64(lat) * math.Pi / float64(rings)
		phi := float64(lon) * 2 * math.Pi / float64(segments)
		st, ct := math.Sin(theta), math.Cos(theta)
		return orrery.V(radius*st*math.Cos(phi), radius*ct, radius*st*math.Sin(phi))
	}

	if wireframe {
		out := make([]orrery.Vertex, 0, (2*rings-1)*segments*2)
		for lat := 0; lat < rings; lat++ {
			for lon := 0; lon < segments; lon++ {
				out = append(out, point(lat, lon), point(lat+1, lon))
				if lat > 0 {
					out = append(out, point(lat, lon), point(lat, lon+1))
				}
			}
		}
		return out
	}

	out := make([]orrery.Vertex, 0, rings*segments*6)
	for lat := 0; lat < rings; lat++ {
		for lon := 0; lon < segments; lon++ {
			p11 := point(lat, lon)
			p21 := point(lat+1, lon)
			p12 := point(lat, lon+1)
			p22 := point(lat+1, lon+1)
			out = append(out,
				p11, p21, p12,
				p21, p22, p12,
			)
		}
	}
	return out
}
