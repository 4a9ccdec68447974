package health

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meupdi/pdi/core/logger"
)

// CheckFunc checks one dependency.
type CheckFunc func(context.Context) error

// Check names a CheckFunc.
type Check struct {
	Name string
	Run  CheckFunc
}

// Result is the outcome of one check.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// OK reports whether the check passed.
func (r Result) OK() bool { return r.Err == nil }

// Report holds results in the order the checks were given.
type Report struct {
	Results []Result
}

// Ready reports whether every check passed.
func (r Report) Ready() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// Failed returns the failing results.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Liveness always succeeds.
func Liveness(context.Context) error { return nil }

// Readiness runs all checks concurrently and logs each failure.
// A nil Run is treated as Liveness.
func Readiness(ctx context.Context, log *slog.Logger, checks ...Check) Report {
	if log == nil {
		log = logger.Nop()
	}

	results := make([]Result, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range checks {
		run := c.Run
		if run == nil {
			run = Liveness
		}
		g.Go(func() error {
			start := time.Now()
			err := run(gctx)
			results[i] = Result{Name: c.Name, Err: err, Duration: time.Since(start)}
			if err != nil {
				log.ErrorContext(ctx, "Readiness check failed",
					logger.Component(c.Name),
					logger.Error(err),
					logger.Elapsed(start),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return Report{Results: results}
}
