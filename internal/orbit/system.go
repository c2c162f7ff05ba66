package orbit

import "github.com/san-kum/orrery/internal/orrery"

type System struct {
	bodies    []Body
	initial   []float64
	timeScale float64
}

// NewSystem copies bodies into a new system; their order is fixed from here on.
func NewSystem(bodies ...Body) *System {
	s := &System{
		bodies:    make([]Body, len(bodies)),
		initial:   make([]float64, len(bodies)),
		timeScale: 1.0,
	}
	for i, b := range bodies {
		if b.Central {
			b.Angle = 0
		}
		b.Angle = WrapAngle(b.Angle)
		s.bodies[i] = b
		s.initial[i] = b.Angle
	}
	return s
}

// Advance moves every orbiting body by speed·dt·timeScale radians.
// A negative dt or time scale rewinds deterministically.
func (s *System) Advance(dt float64) {
	for i := range s.bodies {
		s.bodies[i].advance(dt, s.timeScale)
	}
}

// SetTimeScale takes effect on the next Advance. Zero freezes, negative
// reverses.
func (s *System) SetTimeScale(scale float64) { s.timeScale = scale }
func (s *System) TimeScale() float64         { return s.timeScale }

func (s *System) Len() int { return len(s.bodies) }

func (s *System) BodyAt(i int) (Body, bool) {
	if i < 0 || i >= len(s.bodies) {
		return Body{}, false
	}
	return s.bodies[i], true
}

func (s *System) Name(i int) (string, bool) {
	b, ok := s.BodyAt(i)
	return b.Name, ok
}

func (s *System) PositionAt(i int) (orrery.Vec3, bool) {
	b, ok := s.BodyAt(i)
	if !ok {
		return orrery.Vec3{}, false
	}
	return b.Position(), true
}

// Bodies returns a copy of the cast in index order.
func (s *System) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

func (s *System) Names() []string {
	names := make([]string, len(s.bodies))
	for i, b := range s.bodies {
		names[i] = b.Name
	}
	return names
}

// Angles snapshots the current phase of every body.
func (s *System) Angles() []float64 {
	out := make([]float64, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Angle
	}
	return out
}

// Reset returns every body to the phase it was constructed with.
func (s *System) Reset() {
	for i := range s.bodies {
		s.bodies[i].Angle = s.initial[i]
	}
}
