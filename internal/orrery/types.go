package orrery

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Lerp blends v toward o; t=0 yields v, t=1 yields o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X*(1-t) + o.X*t,
		v.Y*(1-t) + o.Y*t,
		v.Z*(1-t) + o.Z*t,
	}
}

func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

type Vec2 struct {
	X, Y float64
}

func (v Vec2) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) }

// Vertex is one position in an uploaded vertex list.
type Vertex [3]float32

func V(x, y, z float64) Vertex { return Vertex{float32(x), float32(y), float32(z)} }

func (v Vertex) Vec3() Vec3 { return Vec3{float64(v[0]), float64(v[1]), float64(v[2])} }

// Color is a linear RGB triple. Components are expected in [0,1] but are not
// clamped until they reach an output device.
type Color struct {
	R, G, B float64
}

func (c Color) Scale(f float64) Color { return Color{c.R * f, c.G * f, c.B * f} }

// Colorful converts to an sRGB color for display.
func (c Color) Colorful() colorful.Color {
	return colorful.LinearRgb(c.R, c.G, c.B)
}

// Hex returns the clamped sRGB hex form, e.g. "#ffe500".
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// RGB255 returns clamped 8-bit sRGB channels.
func (c Color) RGB255() (r, g, b uint8) {
	return c.Colorful().Clamped().RGB255()
}

type RGBA struct {
	R, G, B, A float64
}

func (c RGBA) RGB() Color { return Color{c.R, c.G, c.B} }

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
