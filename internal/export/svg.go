package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/viz"
	"github.com/san-kum/orrery/internal/xform"
)

// SVGRenderer records one frame as SVG elements. Clip space maps onto a
// Width x Height viewBox with y up.
type SVGRenderer struct {
	Width, Height int
	Precision     int

	background orrery.RGBA
	elems      []string
}

func NewSVGRenderer(width, height int) *SVGRenderer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &SVGRenderer{Width: width, Height: height, Precision: 2, background: orrery.RGBA{A: 1}}
}

func (s *SVGRenderer) Aspect() float64 {
	return float64(s.Width) / float64(s.Height)
}

func (s *SVGRenderer) Clear(bg orrery.RGBA) error {
	s.background = bg
	s.elems = s.elems[:0]
	return nil
}

// ClearWithDepth is Clear; SVG paints in document order.
func (s *SVGRenderer) ClearWithDepth(bg orrery.RGBA) error {
	return s.Clear(bg)
}

func (s *SVGRenderer) UploadAndDraw(vertices []orrery.Vertex, m xform.Mat4, c orrery.Color, wireframe bool) error {
	var sb strings.Builder
	hex := c.Hex()

	if wireframe {
		for i := 0; i+1 < len(vertices); i += 2 {
			x0, y0, ok0 := s.toView(m, vertices[i])
			x1, y1, ok1 := s.toView(m, vertices[i+1])
			if !ok0 || !ok1 {
				continue
			}
			fmt.Fprintf(&sb, "M%s,%s L%s,%s ", s.num(x0), s.num(y0), s.num(x1), s.num(y1))
		}
		if sb.Len() > 0 {
			s.elems = append(s.elems, fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="%s"/>`,
				hex, strings.TrimSpace(sb.String())))
		}
		return nil
	}

	for i := 0; i+2 < len(vertices); i += 3 {
		x0, y0, ok0 := s.toView(m, vertices[i])
		x1, y1, ok1 := s.toView(m, vertices[i+1])
		x2, y2, ok2 := s.toView(m, vertices[i+2])
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		fmt.Fprintf(&sb, "M%s,%s L%s,%s L%s,%sZ ",
			s.num(x0), s.num(y0), s.num(x1), s.num(y1), s.num(x2), s.num(y2))
	}
	if sb.Len() > 0 {
		s.elems = append(s.elems, fmt.Sprintf(`<path fill="%s" stroke="%s" stroke-width="0.5" d="%s"/>`,
			hex, hex, strings.TrimSpace(sb.String())))
	}
	return nil
}

// Elements is the number of shapes drawn since the last clear.
func (s *SVGRenderer) Elements() int { return len(s.elems) }

// String returns the full SVG document.
func (s *SVGRenderer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, s.background.RGB().Hex())
	for _, e := range s.elems {
		sb.WriteString(e)
		sb.WriteString("\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func (s *SVGRenderer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func (s *SVGRenderer) toView(m xform.Mat4, v orrery.Vertex) (float64, float64, bool) {
	p := m.TransformVertex(v)
	if !p.IsFinite() {
		return 0, 0, false
	}
	x := (p.X + 1) / 2 * float64(s.Width)
	y := (1 - p.Y) / 2 * float64(s.Height)
	return x, y, true
}

func (s *SVGRenderer) num(v float64) string {
	return fmt.Sprintf("%.*f", s.Precision, v)
}

// CanvasToSVG converts a braille canvas to SVG dots in each cell's color.
func CanvasToSVG(canvas *viz.Canvas, scale float64, bg orrery.RGBA) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg.RGB().Hex())

	dotRadius := scale * 0.4

	for y := 0; y < canvas.PixelHeight(); y++ {
		for x := 0; x < canvas.PixelWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fill := canvas.Colors[y/4][x/2].Hex()
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TrajectoryToSVG draws a polyline through points, fitted to the image with
// ten percent padding. Fewer than two points yields "".
func TrajectoryToSVG(points []orrery.Vec2, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
