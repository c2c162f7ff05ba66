package orbit

import "github.com/san-kum/orrery/internal/orrery"

// SolarBodies is the default cast: the Sun and eight planets. Sizes and
// distances are chosen for visibility, not to scale.
func SolarBodies() []Body {
	return []Body{
		NewCentral("Sun", 0.15, orrery.Color{R: 1.0, G: 0.9, B: 0.0}),

		NewBody("Mercury", 0.03, 0.5, 0.04, orrery.Color{R: 0.7, G: 0.7, B: 0.7}),
		NewBody("Venus", 0.06, 0.8, 0.03, orrery.Color{R: 0.9, G: 0.8, B: 0.5}),
		NewBody("Earth", 0.06, 1.2, 0.02, orrery.Color{R: 0.2, G: 0.5, B: 0.8}),
		NewBody("Mars", 0.04, 1.6, 0.015, orrery.Color{R: 0.8, G: 0.4, B: 0.2}),

		NewBody("Jupiter", 0.12, 2.5, 0.008, orrery.Color{R: 0.8, G: 0.7, B: 0.6}),
		NewBody("Saturn", 0.10, 3.5, 0.006, orrery.Color{R: 0.9, G: 0.8, B: 0.6}),
		NewBody("Uranus", 0.08, 4.5, 0.004, orrery.Color{R: 0.5, G: 0.8, B: 0.9}),
		NewBody("Neptune", 0.08, 5.5, 0.003, orrery.Color{R: 0.3, G: 0.5, B: 0.9}),
	}
}

func SolarSystem() *System {
	return NewSystem(SolarBodies()...)
}
