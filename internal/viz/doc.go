// Package viz draws scenes into the terminal.
//
// [Canvas] is a braille dot grid with one color per cell. [CanvasRenderer]
// implements render.Renderer on top of it, filling triangle lists and
// drawing line lists after mapping clip space onto the dot grid. The
// lipgloss styles and themes in this package are shared by the TUI.
package viz
