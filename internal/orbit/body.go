package orbit

import (
	"math"

	"github.com/san-kum/orrery/internal/orrery"
)

const TwoPi = 2 * math.Pi

type Body struct {
	Name        string
	Radius      float64 // relative rendering size
	OrbitRadius float64 // distance from the origin
	OrbitSpeed  float64 // radians per unit of simulated time
	Angle       float64 // current phase in [0, 2π)
	Color       orrery.Color
	Central     bool
}

func NewBody(name string, radius, orbitRadius, orbitSpeed float64, color orrery.Color) Body {
	return Body{
		Name:        name,
		Radius:      radius,
		OrbitRadius: orbitRadius,
		OrbitSpeed:  orbitSpeed,
		Color:       color,
	}
}

// NewCentral returns a body pinned to the origin.
func NewCentral(name string, radius float64, color orrery.Color) Body {
	return Body{Name: name, Radius: radius, Color: color, Central: true}
}

// WithPhase returns a copy of b starting at the given angle.
func (b Body) WithPhase(angle float64) Body {
	b.Angle = WrapAngle(angle)
	return b
}

func (b *Body) advance(dt, timeScale float64) {
	if b.Central {
		return
	}
	b.Angle = WrapAngle(b.Angle + b.OrbitSpeed*dt*timeScale)
}

// Position is the body's world position; see PositionOf.
func (b Body) Position() orrery.Vec3 {
	if b.Central {
		return orrery.Vec3{}
	}
	return orrery.Vec3{
		X: b.OrbitRadius * math.Cos(b.Angle),
		Y: 0,
		Z: b.OrbitRadius * math.Sin(b.Angle),
	}
}

// PositionOf returns the origin for a central body and
// (r·cos θ, 0, r·sin θ) otherwise.
func PositionOf(b Body) orrery.Vec3 { return b.Position() }

// WrapAngle maps a into [0, 2π). Non-finite input yields 0.
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// a tiny negative remainder can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}
