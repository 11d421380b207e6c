package lint

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/treelint/pkg/syntax"
)

// UnitResult holds the outcome of one compilation unit's pass.
type UnitResult struct {
	Path        string
	Category    syntax.FileCategory
	Diagnostics []Diagnostic
	Stats       PassStats
	Cancelled   bool
}

// RunResult aggregates per-unit results for one run. Units appear in
// input order; diagnostics within a unit in traversal order.
type RunResult struct {
	RunID    string
	Units    []UnitResult
	Duration time.Duration
}

// TotalDiagnostics returns the number of diagnostics across all units.
func (r *RunResult) TotalDiagnostics() int {
	n := 0
	for _, u := range r.Units {
		n += len(u.Diagnostics)
	}
	return n
}

// Runner applies an active registry to many compilation units. A single
// unit's pass is always synchronous; parallelism is applied only across
// independent units, which share nothing but the read-only registry.
type Runner struct {
	registry *Registry
	log      *slog.Logger

	// Workers bounds concurrent unit passes. Zero means min(NumCPU, 4).
	Workers int
}

// NewRunner creates a runner for the given registry.
func NewRunner(reg *Registry, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{registry: reg, log: log}
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	if n := runtime.NumCPU(); n < 4 {
		return n
	}
	return 4
}

// Run analyzes every unit and collects results in input order. A unit
// whose pass is cancelled discards its partial diagnostics and is marked
// Cancelled; the context error is returned alongside the partial result.
func (r *Runner) Run(ctx context.Context, units []*syntax.Unit) (*RunResult, error) {
	started := time.Now()
	result := &RunResult{
		RunID: uuid.NewString(),
		Units: make([]UnitResult, len(units)),
	}

	r.log.Debug("lint run started",
		"run_id", result.RunID,
		"units", len(units),
		"rules", r.registry.Len(),
		"workers", r.workers(),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for i, unit := range units {
		g.Go(func() error {
			d := NewDispatcher(r.registry, unit, r.log)
			diags, stats, err := d.Run(gctx)

			res := UnitResult{
				Path:     unit.Path,
				Category: unit.Category,
				Stats:    stats,
			}
			if err != nil {
				res.Cancelled = errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
				r.log.Warn("unit pass abandoned", "run_id", result.RunID, "unit", unit.Path, "error", err)
			} else {
				res.Diagnostics = diags
			}
			result.Units[i] = res
			return nil
		})
	}

	// Goroutines never return errors; cancellation is reported per unit.
	_ = g.Wait()
	result.Duration = time.Since(started)

	r.log.Debug("lint run finished",
		"run_id", result.RunID,
		"diagnostics", result.TotalDiagnostics(),
		"duration", result.Duration,
	)

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}
