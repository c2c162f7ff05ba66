package starfield

import (
	"reflect"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(50, 20, 7)
	b := Generate(50, 20, 7)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce the same stars")
	}
	c := Generate(50, 20, 8)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds should differ")
	}
}

func TestGenerateBounds(t *testing.T) {
	const radius = 20
	stars := Generate(500, radius, 1)
	if len(stars) != 500 {
		t.Fatalf("got %d stars", len(stars))
	}
	for _, s := range stars {
		d := s.Position.Length()
		if d < 0.8*radius-1e-9 || d > radius+1e-9 {
			t.Errorf("star at distance %v outside shell", d)
		}
		if s.Brightness < 0.3 || s.Brightness > 1 {
			t.Errorf("brightness %v out of range", s.Brightness)
		}
		if s.Size < 1 || s.Size > 6 {
			t.Errorf("size %v out of range", s.Size)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	if Generate(0, 10, 1) != nil || Generate(-3, 10, 1) != nil {
		t.Error("expected nil for non-positive count")
	}
}
