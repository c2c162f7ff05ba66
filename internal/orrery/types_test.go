package orrery

import (
	"math"
	"testing"
)

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, -4, 6}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("lerp(1) = %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid != (Vec3{1, -2, 3}) {
		t.Errorf("lerp(0.5) = %v", mid)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("expected finite vector")
	}
	if (Vec3{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if (Vec2{0, math.Inf(1)}).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestColorHexClamps(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{0, 0, 0}, "#000000"},
		{Color{1, 1, 1}, "#ffffff"},
		{Color{2, -1, 1}, "#ff00ff"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestVertexRoundTrip(t *testing.T) {
	v := V(0.5, -0.25, 1)
	p := v.Vec3()
	if p.X != 0.5 || p.Y != -0.25 || p.Z != 1 {
		t.Errorf("unexpected vec3 %v", p)
	}
}
