// Package xform builds 4x4 transform matrices.
//
// Matrices are stored row-major and points are treated as row vectors, so a
// point is transformed as p' = p·M and Multiply(a, b) applies a first, then b.
// This is the memory layout WebGL-style uniforms expect, with translation in
// elements 12..14. Compositions are always spelled out by the caller in the
// order they apply; nothing here infers an order.
package xform

import (
	"math"

	"github.com/san-kum/orrery/internal/orrery"
)

type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Multiply returns a·b.
func Multiply(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[r*4+k] * b[k*4+c]
			}
			m[r*4+c] = sum
		}
	}
	return m
}

// Compose multiplies left to right: Compose(object, view, proj) = object·view·proj.
func Compose(ms ...Mat4) Mat4 {
	out := Identity()
	for _, m := range ms {
		out = Multiply(out, m)
	}
	return out
}

func RotationX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func RotationY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func Translation(v orrery.Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

func Scaling(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Perspective builds an OpenGL-style projection (camera looking down -Z,
// near/far mapped to [-1,1]) with f = 1/tan(fov/2).
func Perspective(fov, aspect, near, far float64) Mat4 {
	aspect = sanitizeAspect(aspect)
	f := 1 / math.Tan(fov/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Screen places a unit shape in screen space: rotate (counter-clockwise),
// scale uniformly, then translate.
func Screen(rotation, scale float64, t orrery.Vec2) Mat4 {
	c, s := math.Cos(rotation)*scale, math.Sin(rotation)*scale
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		t.X, t.Y, 0, 1,
	}
}

// AspectCorrected is Screen followed by compressing x by 1/aspect, so that
// shapes stay round on a viewport that is wider than it is tall. Invalid
// aspect ratios fall back to 1.
func AspectCorrected(rotation, scale float64, t orrery.Vec2, aspect float64) Mat4 {
	aspect = sanitizeAspect(aspect)
	return Multiply(Screen(rotation, scale, t), Scaling(1/aspect, 1, 1))
}

// Transform4 applies m to the homogeneous row vector (x, y, z, w).
func (m Mat4) Transform4(x, y, z, w float64) [4]float64 {
	var out [4]float64
	for c := 0; c < 4; c++ {
		out[c] = x*m[c] + y*m[4+c] + z*m[8+c] + w*m[12+c]
	}
	return out
}

// TransformPoint applies m to p (w=1) and divides by the resulting w unless
// it is 0 or 1.
func (m Mat4) TransformPoint(p orrery.Vec3) orrery.Vec3 {
	h := m.Transform4(p.X, p.Y, p.Z, 1)
	if h[3] != 0 && h[3] != 1 {
		return orrery.Vec3{X: h[0] / h[3], Y: h[1] / h[3], Z: h[2] / h[3]}
	}
	return orrery.Vec3{X: h[0], Y: h[1], Z: h[2]}
}

func (m Mat4) TransformVertex(v orrery.Vertex) orrery.Vec3 {
	return m.TransformPoint(v.Vec3())
}

// Float32 narrows m for upload as a uniform.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

func sanitizeAspect(a float64) float64 {
	if a <= 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return 1
	}
	return a
}
