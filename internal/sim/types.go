package sim

import (
	"fmt"

	"github.com/san-kum/orrery/internal/orrery"
)

type Config struct {
	Dt       float64
	Duration float64
}

func DefaultConfig() Config {
	return Config{Dt: 0.016, Duration: 60}
}

// Frame is the scene state after one update.
type Frame struct {
	Step      int
	Time      float64
	Angles    []float64
	Positions []orrery.Vec3
	Center    orrery.Vec3
}

type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Frame)

func (f ObserverFunc) OnFrame(fr Frame) { f(fr) }

// Recorder keeps every frame it observes.
type Recorder struct {
	Frames []Frame
}

func (r *Recorder) OnFrame(f Frame) { r.Frames = append(r.Frames, f) }

type Result struct {
	Names      []string
	Times      []float64
	Angles     [][]float64
	Positions  [][]orrery.Vec3
	Centers    []orrery.Vec3
	StepsTaken int
	Errors     []error
}

// Series returns one body's samples of a column: "angle", "x", "y" or "z".
func (r *Result) Series(body int, column string) ([]float64, bool) {
	if body < 0 || body >= len(r.Names) {
		return nil, false
	}
	out := make([]float64, len(r.Times))
	for i := range r.Times {
		switch column {
		case "angle":
			out[i] = r.Angles[i][body]
		case "x":
			out[i] = r.Positions[i][body].X
		case "y":
			out[i] = r.Positions[i][body].Y
		case "z":
			out[i] = r.Positions[i][body].Z
		default:
			return nil, false
		}
	}
	return out, true
}

type SimError struct {
	Time    float64
	Step    int
	Message string
	Err     error
}

func (e SimError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("step %d (t=%.4f): %s: %v", e.Step, e.Time, e.Message, e.Err)
	}
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

func (e SimError) Unwrap() error { return e.Err }
