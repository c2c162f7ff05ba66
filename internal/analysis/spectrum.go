package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/orrery/internal/orrery"
)

// minSamples is the shortest series a period can be estimated from.
const minSamples = 4

// PowerSpectrum returns |X[k]| for k in [0, n/2] of the mean-removed series.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spec := fft.FFTReal(centered)
	ps := make([]float64, len(spec)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency estimates the strongest frequency in samples taken every
// dt, in cycles per unit time. The peak bin is refined by fitting a parabola
// through its neighbours.
func DominantFrequency(samples []float64, dt float64) (float64, error) {
	if len(samples) < minSamples {
		return 0, fmt.Errorf("%w: need %d samples, got %d", orrery.ErrEmptyTrace, minSamples, len(samples))
	}
	if !(dt > 0) {
		return 0, fmt.Errorf("%w: dt must be positive, got %v", orrery.ErrInvalidConfig, dt)
	}

	ps := PowerSpectrum(samples)
	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if ps[peak] == 0 {
		return 0, nil
	}

	bin := float64(peak)
	if peak > 0 && peak < len(ps)-1 {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if den := a - 2*b + c; den != 0 {
			bin += 0.5 * (a - c) / den
		}
	}
	return bin / (float64(len(samples)) * dt), nil
}

// DominantPeriod is 1/DominantFrequency; a flat series has period +Inf.
func DominantPeriod(samples []float64, dt float64) (float64, error) {
	f, err := DominantFrequency(samples, dt)
	if err != nil {
		return 0, err
	}
	if f == 0 {
		return math.Inf(1), nil
	}
	return 1 / f, nil
}

// ExpectedPeriod is the time one revolution takes, 2π/|speed·timeScale|.
func ExpectedPeriod(speed, timeScale float64) float64 {
	w := math.Abs(speed * timeScale)
	if w == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / w
}
