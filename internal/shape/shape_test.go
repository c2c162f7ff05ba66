package shape

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/orrery"
)

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		name      string
		spec      Spec
		wireframe bool
		want      int
	}{
		{"triangle solid", Spec{Kind: Triangle, Size: 1}, false, 3},
		{"triangle lines", Spec{Kind: Triangle, Size: 1}, true, 6},
		{"rectangle solid", Spec{Kind: Rectangle, Size: 1}, false, 6},
		{"rectangle lines", Spec{Kind: Rectangle, Size: 1}, true, 8},
		{"disc solid", NewDisc(1, 12), false, 36},
		{"disc lines", NewDisc(1, 12), true, 24},
		{"disc default segments", Spec{Kind: Disc, Size: 1}, false, DefaultDiscSegments * 3},
		{"sphere solid", NewSphere(1, 16, 16), false, 16 * 16 * 6},
		{"sphere lines", NewSphere(1, 4, 8), true, (4*8 + 3*8) * 2},
		{"unknown kind", Spec{Kind: Kind(42)}, false, 0},
	}
	for _, tt := range tests {
		got := Generate(tt.spec, tt.wireframe)
		if len(got) != tt.want {
			t.Errorf("%s: %d vertices, want %d", tt.name, len(got), tt.want)
		}
		if tt.wireframe && len(got)%2 != 0 {
			t.Errorf("%s: line list has odd length %d", tt.name, len(got))
		}
		if !tt.wireframe && len(got)%3 != 0 {
			t.Errorf("%s: triangle list length %d not a multiple of 3", tt.name, len(got))
		}
	}
}

func TestSphereVerticesOnSurface(t *testing.T) {
	const r = 0.37
	for _, wire := range []bool{false, true} {
		for _, v := range Generate(NewSphere(r, 8, 12), wire) {
			if d := v.Vec3().Length(); math.Abs(d-r) > 1e-6 {
				t.Fatalf("vertex %v at distance %v, want %v", v, d, r)
			}
		}
	}
}

func TestDiscVerticesWithinRadius(t *testing.T) {
	verts := Generate(NewDisc(2, 16), false)
	for i, v := range verts {
		d := v.Vec3().Length()
		if i%3 == 0 {
			if d != 0 {
				t.Fatalf("fan center not at origin: %v", v)
			}
			continue
		}
		if math.Abs(d-2) > 1e-5 {
			t.Fatalf("rim vertex %v at %v", v, d)
		}
	}
}

func TestZeroSizeIsDegenerateNotEmpty(t *testing.T) {
	verts := Generate(NewSphere(0, 4, 4), false)
	if len(verts) == 0 {
		t.Fatal("expected vertices for zero radius")
	}
	for _, v := range verts {
		if v != (orrery.Vertex{}) {
			t.Fatalf("zero radius vertex %v", v)
		}
	}
}

func TestKindString(t *testing.T) {
	if Sphere.String() != "sphere" || Kind(9).String() != "kind(9)" {
		t.Errorf("unexpected names %s %s", Sphere, Kind(9))
	}
}
