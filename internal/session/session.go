// Package session is the host-facing control surface. A Session owns one
// orbital system, one camera and one scene, and runs a frame as advance,
// then ease the camera, then render. It is not safe for concurrent use.
package session

import (
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/render"
	"github.com/san-kum/orrery/internal/starfield"
)

type Session struct {
	sys   *orbit.System
	cam   *camera.Camera
	scene *render.Scene

	time   float64
	frames int
}

// New wraps sys with a default camera and scene.
func New(sys *orbit.System) *Session {
	return &Session{
		sys:   sys,
		cam:   camera.New(),
		scene: render.NewScene(),
	}
}

// FromConfig validates cfg and builds a session from it.
func FromConfig(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sys := orbit.NewSystem(cfg.OrbitBodies()...)
	sys.SetTimeScale(cfg.TimeScale)

	s := New(sys)
	s.cam.SetDistance(cfg.Camera.Distance)
	s.cam.SetAngles(cfg.Camera.AngleX, cfg.Camera.AngleY)
	s.cam.SetTransitionDuration(cfg.Camera.Transition)
	if cfg.Camera.Follow >= 0 {
		s.cam.Follow(cfg.Camera.Follow)
	}

	s.scene.Wireframe = cfg.Wireframe
	s.scene.Background = cfg.BackgroundRGBA()
	s.scene.Stars = starfield.Generate(cfg.Stars.Count, cfg.Stars.Radius, cfg.Stars.Seed)
	return s, nil
}

// Update runs one frame step: the system advances by dt, then the camera
// eases toward the followed body's new position.
func (s *Session) Update(dt float64) {
	s.sys.Advance(dt)
	s.cam.AdvanceTransition(dt, s.FollowTarget())
	s.time += dt
	s.frames++
}

// FollowTarget is the followed body's current position, or the origin when
// nothing (or an index past the end) is followed.
func (s *Session) FollowTarget() orrery.Vec3 {
	i, ok := s.cam.Followed()
	if !ok {
		return orrery.Vec3{}
	}
	p, ok := s.sys.PositionAt(i)
	if !ok {
		return orrery.Vec3{}
	}
	return p
}

func (s *Session) Render(r render.Renderer) error {
	return s.scene.Render(r, s.sys, s.cam)
}

func (s *Session) SetCameraDistance(d float64) { s.cam.SetDistance(d) }

func (s *Session) SetCameraAngles(x, y float64) { s.cam.SetAngles(x, y) }

// Follow selects a body by index; a negative index follows the origin.
func (s *Session) Follow(i int) { s.cam.Follow(i) }

func (s *Session) SetTimeScale(scale float64) { s.sys.SetTimeScale(scale) }

// Resize updates the aspect ratio only.
func (s *Session) Resize(width, height float64) { s.cam.SetAspect(width, height) }

func (s *Session) SetWireframe(on bool) { s.scene.Wireframe = on }

func (s *Session) SetBackground(bg orrery.RGBA) { s.scene.Background = bg }

func (s *Session) BodyCount() int { return s.sys.Len() }

func (s *Session) BodyName(i int) (string, bool) { return s.sys.Name(i) }

// Time is the simulated time accumulated by Update.
func (s *Session) Time() float64 { return s.time }
func (s *Session) Frames() int   { return s.frames }

func (s *Session) Camera() *camera.Camera { return s.cam }
func (s *Session) System() *orbit.System  { return s.sys }
func (s *Session) Scene() *render.Scene   { return s.scene }

// Reset rewinds the system to its starting angles and the clock to zero.
// Camera settings are kept.
func (s *Session) Reset() {
	s.sys.Reset()
	s.time = 0
	s.frames = 0
}
