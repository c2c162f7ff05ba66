// Package camera implements the orbiting view: zoom, yaw/pitch, and a look-at
// center that eases toward a followed body.
//
// The camera never holds a reference to the simulation. Each frame the host
// resolves the followed body's position and passes it to AdvanceTransition.
//
// Project is an orthographic-with-zoom approximation, not a perspective
// divide: far bodies are not foreshortened here, only by the depth-scaled
// radius applied by the scene renderer.
package camera

import (
	"math"

	"github.com/san-kum/orrery/internal/orrery"
)

const (
	// MinDistance floors the zoom divisor.
	MinDistance = 1e-4

	DefaultDistance           = 3.0
	DefaultTransitionDuration = 1.0
)

type Camera struct {
	Distance float64
	AngleX   float64 // pitch
	AngleY   float64 // yaw

	followed int // -1 = origin
	current  orrery.Vec3
	target   orrery.Vec3
	progress float64
	duration float64
	aspect   float64
}

func New() *Camera {
	return &Camera{
		Distance: DefaultDistance,
		followed: -1,
		progress: 1.0,
		duration: DefaultTransitionDuration,
		aspect:   1.0,
	}
}

func (c *Camera) SetDistance(d float64) { c.Distance = d }

func (c *Camera) SetAngles(x, y float64) {
	c.AngleX = x
	c.AngleY = y
}

// Rotate adds to the current pitch and yaw.
func (c *Camera) Rotate(dx, dy float64) {
	c.AngleX += dx
	c.AngleY += dy
}

// ZoomDivisor is Distance floored to MinDistance.
func (c *Camera) ZoomDivisor() float64 {
	if math.IsNaN(c.Distance) || c.Distance < MinDistance {
		return MinDistance
	}
	return c.Distance
}

// SetAspect records the viewport shape. Non-positive sizes are ignored.
func (c *Camera) SetAspect(width, height float64) {
	if width <= 0 || height <= 0 || math.IsNaN(width) || math.IsNaN(height) {
		return
	}
	c.aspect = width / height
}

func (c *Camera) Aspect() float64 { return c.aspect }

func (c *Camera) SetTransitionDuration(seconds float64) {
	if seconds <= 0 || math.IsNaN(seconds) {
		seconds = DefaultTransitionDuration
	}
	c.duration = seconds
}

func (c *Camera) TransitionDuration() float64 { return c.duration }

// Follow selects the body index the center eases toward; a negative index
// means the origin. It restarts the transition from wherever the center is
// now, so re-targeting mid-ease never jumps.
func (c *Camera) Follow(index int) {
	if index < 0 {
		index = -1
	}
	c.followed = index
	c.progress = 0
}

func (c *Camera) Unfollow() { c.Follow(-1) }

func (c *Camera) Followed() (int, bool) {
	return c.followed, c.followed >= 0
}

func (c *Camera) Progress() float64   { return c.progress }
func (c *Camera) Settled() bool       { return c.progress >= 1 }
func (c *Camera) Center() orrery.Vec3 { return c.current }
func (c *Camera) Target() orrery.Vec3 { return c.target }

// AdvanceTransition moves the transition forward by dt and eases the center
// toward target, which the caller resolves from the followed body (or the
// origin). Once settled the center tracks target exactly.
func (c *Camera) AdvanceTransition(dt float64, target orrery.Vec3) {
	if c.progress < 1 && !math.IsNaN(dt) && !math.IsInf(dt, 0) {
		c.progress += dt / c.duration
		c.progress = math.Max(0, math.Min(1, c.progress))
	}

	c.target = target
	if c.progress >= 1 {
		c.current = target
		return
	}
	c.current = c.current.Lerp(target, Ease(c.progress))
}

// Ease is smoothstep, t²(3−2t): zero slope at both ends.
func Ease(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Orient applies yaw then pitch to p without translation or zoom.
func (c *Camera) Orient(p orrery.Vec3) orrery.Vec3 {
	cy, sy := math.Cos(c.AngleY), math.Sin(c.AngleY)
	x := p.X*cy - p.Z*sy
	z := p.X*sy + p.Z*cy

	cx, sx := math.Cos(c.AngleX), math.Sin(c.AngleX)
	y := p.Y*cx - z*sx
	z = p.Y*sx + z*cx

	return orrery.Vec3{X: x, Y: y, Z: z}
}

// Project maps a world point to screen space around center. The returned
// depth is the rotated Z; larger means farther away.
func (c *Camera) Project(p, center orrery.Vec3) (orrery.Vec2, float64) {
	r := c.Orient(p.Sub(center))
	d := c.ZoomDivisor()
	return orrery.Vec2{X: r.X / d, Y: r.Y / d}, r.Z
}
