// Package starfield scatters background stars on a spherical shell.
package starfield

import (
	"math"
	"math/rand"

	"github.com/san-kum/orrery/internal/orrery"
)

type Star struct {
	Position   orrery.Vec3
	Brightness float64 // 0..1
	Size       float64 // point size
}

// Generate places n stars uniformly over directions at 0.8–1.0 of radius.
// One in ten stars is bright (0.8–1.0) and large (3–6); the rest are dim
// (0.3–0.7) and small (1–3). The same seed always yields the same sky.
func Generate(n int, radius float64, seed int64) []Star {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, 0, n)

	for i := 0; i < n; i++ {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		r := radius * (0.8 + 0.2*rng.Float64())

		pos := orrery.Vec3{
			X: r * math.Sin(phi) * math.Cos(theta),
			Y: r * math.Sin(phi) * math.Sin(theta),
			Z: r * math.Cos(phi),
		}

		var brightness, size float64
		if rng.Float64() > 0.9 {
			brightness = 0.8 + 0.2*rng.Float64()
			size = 3.0 + 3.0*rng.Float64()
		} else {
			brightness = 0.3 + 0.4*rng.Float64()
			size = 1.0 + 2.0*rng.Float64()
		}

		stars = append(stars, Star{Position: pos, Brightness: brightness, Size: size})
	}
	return stars
}
