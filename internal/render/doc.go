// Package render turns the simulation and camera state into draw calls.
//
// [Renderer] is the drawing-surface capability: it clears the frame and
// draws vertex lists under a matrix and a color, in solid (triangle list) or
// wireframe (line list) mode. Implementations live elsewhere: a braille
// terminal canvas (viz), an SVG writer (export) and a raylib window (gui).
//
// [Scene] is the composition pass. For every body, in index order, it
// projects the body's position through the camera, shrinks the radius with
// depth and zoom, builds a screen-space matrix and issues one draw call.
// Later bodies draw over earlier ones; no depth testing is assumed.
//
// # Example
//
//	scene := render.NewScene()
//	rec := &render.Recorder{}
//	if err := scene.Render(rec, sys, cam); err != nil {
//	    // per-body failures, every body was still attempted
//	}
package render
