package sim

import (
	"context"
	"sync"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/session"
)

// Ensemble runs one independent session per scene config concurrently.
// Each goroutine owns its session outright.
type Ensemble struct {
	scenes []*config.Config
}

func NewEnsemble(scenes ...*config.Config) *Ensemble {
	return &Ensemble{scenes: scenes}
}

// Run returns results in scene order. The first error, in scene order,
// fails the whole batch.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(e.scenes))
	errs := make([]error, len(e.scenes))

	var wg sync.WaitGroup
	for i, scene := range e.scenes {
		wg.Add(1)
		go func(idx int, scene *config.Config) {
			defer wg.Done()

			sess, err := session.FromConfig(scene)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = New(sess).Run(ctx, cfg)
		}(i, scene)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
