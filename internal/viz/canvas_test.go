package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/orrery"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != rune(blank+0x1) {
		t.Errorf("expected %q, got %q", rune(blank+0x1), c.Grid[0][0])
	}
	if c.Grid[0][1] != rune(blank+0x80) {
		t.Errorf("expected %q, got %q", rune(blank+0x80), c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(2, 3) {
		t.Error("IsSet disagrees with Set")
	}

	c.Unset(3, 3)
	if c.Grid[0][1] != blank {
		t.Errorf("expected blank after unset, got %q", c.Grid[0][1])
	}

	// out of range is ignored
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	red := orrery.Color{R: 1}
	c.DrawLine(0, 0, 7, 0, red)
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("dot %d not set", x)
		}
	}
	if c.Colors[0][3] != red {
		t.Errorf("expected red cell, got %v", c.Colors[0][3])
	}
}

func TestCanvasFillTriangle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillTriangle(0, 0, 20, 0, 0, 20, orrery.Color{G: 1})
	if !c.IsSet(1, 1) {
		t.Error("expected interior dot set")
	}
	if c.IsSet(19, 19) {
		t.Error("expected dot outside hypotenuse unset")
	}

	// winding must not matter
	d := NewCanvas(10, 5)
	d.FillTriangle(0, 0, 0, 20, 20, 0, orrery.Color{G: 1})
	if d.String() != c.String() {
		t.Error("clockwise and counter-clockwise fills differ")
	}
}

func TestCanvasFillTriangleOffCanvas(t *testing.T) {
	c := NewCanvas(3, 3)
	c.FillTriangle(-1e12, -1e12, 1e12, -1e12, 0, 1e12, orrery.Color{B: 1})
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			if !c.IsSet(x, y) {
				t.Fatalf("dot %d,%d not covered by enclosing triangle", x, y)
			}
		}
	}
}

func TestCanvasStyled(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetColor(0, 0, orrery.Color{R: 1})
	out := c.Styled()
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
	if !strings.Contains(out, string(rune(blank+0x1))) {
		t.Error("styled output lost the lit cell")
	}
}
