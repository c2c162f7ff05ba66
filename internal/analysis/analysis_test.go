package analysis

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/session"
	"github.com/san-kum/orrery/internal/sim"
)

func TestPowerSpectrumPeak(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*4*float64(i)/float64(n))
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2+1 {
		t.Fatalf("expected %d bins, got %d", n/2+1, len(ps))
	}
	if ps[0] > 1e-9 {
		t.Errorf("expected mean removed, DC = %v", ps[0])
	}
	for k := range ps {
		if k != 4 && ps[k] > ps[4] {
			t.Errorf("bin %d (%v) exceeds peak %v", k, ps[k], ps[4])
		}
	}
}

func TestDominantPeriodOfOrbit(t *testing.T) {
	sys := orbit.NewSystem(orbit.NewBody("p", 0.1, 1, 0.5, orrery.Color{}))
	r := sim.New(session.New(sys))
	result, err := r.Run(context.Background(), sim.Config{Dt: 0.1, Duration: 200})
	if err != nil {
		t.Fatal(err)
	}
	xs, _ := result.Series(0, "x")

	got, err := DominantPeriod(xs, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	want := ExpectedPeriod(0.5, 1)
	if math.Abs(got-want)/want > 0.02 {
		t.Errorf("expected period ~%.3f, got %.3f", want, got)
	}
}

func TestDominantPeriodErrors(t *testing.T) {
	if _, err := DominantPeriod([]float64{1, 2}, 0.1); !errors.Is(err, orrery.ErrEmptyTrace) {
		t.Errorf("expected ErrEmptyTrace, got %v", err)
	}
	if _, err := DominantPeriod([]float64{1, 2, 3, 4}, 0); !errors.Is(err, orrery.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	p, err := DominantPeriod([]float64{2, 2, 2, 2, 2}, 1)
	if err != nil || !math.IsInf(p, 1) {
		t.Errorf("expected +Inf for flat series, got %v %v", p, err)
	}
}

func TestExpectedPeriod(t *testing.T) {
	if got := ExpectedPeriod(1, -2); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("expected π, got %v", got)
	}
	if !math.IsInf(ExpectedPeriod(0.3, 0), 1) {
		t.Error("expected frozen period to be infinite")
	}
}

func TestCircularity(t *testing.T) {
	var track []orrery.Vec2
	for i := 0; i < 50; i++ {
		a := float64(i) * 0.3
		track = append(track, orrery.Vec2{X: 2 * math.Cos(a), Y: 2 * math.Sin(a)})
	}
	mean, dev, err := Circularity(track)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mean-2) > 1e-12 || dev > 1e-12 {
		t.Errorf("expected circle of radius 2, got mean %v dev %v", mean, dev)
	}

	if _, _, err := Circularity(nil); !errors.Is(err, orrery.ErrEmptyTrace) {
		t.Errorf("expected ErrEmptyTrace, got %v", err)
	}
}

func TestTrackToASCII(t *testing.T) {
	if TrackToASCII(nil, 10, 10) != "" {
		t.Error("expected empty plot")
	}
	out := TrackToASCII([]orrery.Vec2{{X: 1, Y: 0}, {X: -1, Y: 0}}, 21, 5)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	if strings.Count(out, "•") != 2 || strings.Count(out, "+") != 1 {
		t.Errorf("unexpected plot:\n%s", out)
	}
}
