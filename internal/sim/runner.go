// Package sim drives a session headlessly for a fixed number of frames and
// records what happened.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/render"
	"github.com/san-kum/orrery/internal/session"
)

// MaxSteps bounds a single run.
const MaxSteps = 10_000_000

type Runner struct {
	sess      *session.Session
	renderer  render.Renderer
	observers []Observer
}

func New(sess *session.Session) *Runner {
	return &Runner{
		sess:      sess,
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// SetRenderer makes every frame render into rd. Draw failures are recorded
// in Result.Errors and the run continues.
func (r *Runner) SetRenderer(rd render.Renderer) { r.renderer = rd }

func (r *Runner) Session() *session.Session { return r.sess }

// Run records the starting frame and then Duration/Dt updates. On
// cancellation the partial result is returned with the context error.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := Steps(cfg)
	result := &Result{
		Names:     r.sess.System().Names(),
		Times:     make([]float64, 0, steps+1),
		Angles:    make([][]float64, 0, steps+1),
		Positions: make([][]orrery.Vec3, 0, steps+1),
		Centers:   make([]orrery.Vec3, 0, steps+1),
		Errors:    make([]error, 0),
	}

	result.record(r.snapshot(0))

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.sess.Update(cfg.Dt)
		f := r.snapshot(i + 1)

		if r.renderer != nil {
			if err := r.sess.Render(r.renderer); err != nil {
				result.Errors = append(result.Errors, SimError{Time: f.Time, Step: f.Step, Message: "render", Err: err})
			}
		}

		for _, obs := range r.observers {
			obs.OnFrame(f)
		}

		result.record(f)
		result.StepsTaken++
	}

	return result, nil
}

// RunWithCallback updates until Duration elapses or callback returns false.
// The callback sees the frame before each update.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(Frame) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	for i := 0; i < Steps(cfg); i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(r.snapshot(i)) {
			return nil
		}
		r.sess.Update(cfg.Dt)
	}

	return nil
}

// Steps is the number of updates a run of cfg performs. Tiny float error in
// Duration/Dt does not drop the last frame.
func Steps(cfg Config) int {
	return int(math.Floor(cfg.Duration/cfg.Dt + 1e-9))
}

func (r *Runner) snapshot(step int) Frame {
	sys := r.sess.System()
	f := Frame{
		Step:      step,
		Time:      r.sess.Time(),
		Angles:    sys.Angles(),
		Positions: make([]orrery.Vec3, sys.Len()),
		Center:    r.sess.Camera().Center(),
	}
	for i := range f.Positions {
		f.Positions[i], _ = sys.PositionAt(i)
	}
	return f
}

func (res *Result) record(f Frame) {
	res.Times = append(res.Times, f.Time)
	res.Angles = append(res.Angles, f.Angles)
	res.Positions = append(res.Positions, f.Positions)
	res.Centers = append(res.Centers, f.Center)
}

func validateConfig(cfg Config) error {
	if !(cfg.Dt > 0) {
		return fmt.Errorf("%w: dt must be positive, got %f", orrery.ErrInvalidConfig, cfg.Dt)
	}
	if !(cfg.Duration > 0) {
		return fmt.Errorf("%w: duration must be positive, got %f", orrery.ErrInvalidConfig, cfg.Duration)
	}
	if cfg.Duration/cfg.Dt > MaxSteps {
		return fmt.Errorf("%w: %g steps exceeds %d", orrery.ErrInvalidConfig, cfg.Duration/cfg.Dt, MaxSteps)
	}
	return nil
}
