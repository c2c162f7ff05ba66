// Package orrery provides the value types shared by the orbit simulation,
// the camera and the rendering pipeline.
//
// The package defines the plain data that flows between components:
//
//   - [Vec3], [Vec2]: world and screen-space points
//   - [Vertex]: a single-precision vertex handed to a renderer
//   - [Color], [RGBA]: linear colors and clear colors
//
// Nothing in here holds state across frames. Components exchange these values
// per call rather than keeping references to one another.
//
// # Example
//
//	sys := orbit.SolarSystem()
//	cam := camera.New()
//	sys.Advance(dt)
//	cam.AdvanceTransition(dt, orrery.Vec3{})
//	screen, depth := cam.Project(sys.Bodies()[3].Position(), cam.Center())
//
// # Thread Safety
//
// Values are immutable by convention; the stateful components built on top of
// them (System, Camera, Session) are NOT safe for concurrent use.
package orrery
