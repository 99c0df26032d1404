package search

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/permtour/tour"
)

// Result is the best tour found by Run.
//
// Trajectory is the index of the trajectory that produced Tour, Iterations
// the number of tabu steps it executed, and Diversity the tour.Distance
// between Tour and that trajectory's final current tour. LowerBound is the
// 1-tree bound (0 when disabled) and Gap = (Fitness − LowerBound)/Fitness,
// clamped to [0, 1].
type Result struct {
	Tour       []int   `yaml:"tour"`
	Fitness    float64 `yaml:"fitness"`
	LowerBound float64 `yaml:"lower_bound"`
	Gap        float64 `yaml:"gap"`
	Trajectory int     `yaml:"trajectory"`
	Iterations int     `yaml:"iterations"`
	Diversity  int     `yaml:"diversity"`
}

// Run searches for a low-cost closed tour over cm.
//
// Steps:
//  1. Validate cfg and resolve options.
//  2. Derive one tour.Rand per trajectory from a root seeded with cfg.Seed,
//     sequentially, so that streams do not depend on scheduling.
//  3. Run the trajectories under an errgroup bounded by Options.Parallelism.
//  4. Pick the cheapest result; ties go to the lowest trajectory index.
//  5. Attach the 1-tree lower bound, using the result as upper bound.
//
// Errors: tour.ErrNilCostModel, tour.ErrInvalidDimension, ErrInvalidConfig,
// ctx.Err() on cancellation, or the first operator error of any trajectory.
func Run(ctx context.Context, cm tour.CostModel, cfg Config, opts ...Option) (Result, error) {
	if cm == nil {
		return Result{}, tour.ErrNilCostModel
	}
	if cm.Size() <= 0 {
		return Result{}, tour.ErrInvalidDimension
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	strategy, err := cfg.LocalSearch()
	if err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var (
		root    = tour.NewRand(cfg.Seed)
		results = make([]Result, cfg.Trajectories)
		begin   = time.Now()
		i       int
	)
	g, gctx := errgroup.WithContext(ctx)
	if o.Parallelism > 0 {
		g.SetLimit(o.Parallelism)
	}
	for i = 0; i < cfg.Trajectories; i++ {
		tr := &trajectory{
			id:       i,
			cm:       cm,
			rs:       root.Derive(uint64(i)),
			cfg:      cfg,
			strategy: strategy,
			log:      o.Logger,
		}
		g.Go(func() error {
			res, err := tr.run(gctx)
			if err != nil {
				return err
			}
			results[tr.id] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		o.Logger.Warn("search aborted", zap.Error(err))
		return Result{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Fitness < best.Fitness {
			best = r
		}
	}
	if o.BoundIterations > 0 {
		if err = attachBound(cm, &best, o.BoundIterations); err != nil {
			return Result{}, err
		}
	}
	o.Logger.Info("search finished",
		zap.Int("n", cm.Size()),
		zap.Int("trajectories", cfg.Trajectories),
		zap.Int("best_trajectory", best.Trajectory),
		zap.Float64("fitness", best.Fitness),
		zap.Float64("gap", best.Gap),
		zap.Duration("elapsed", time.Since(begin)))

	return best, nil
}

// attachBound fills LowerBound and Gap of r.
func attachBound(cm tour.CostModel, r *Result, iters int) error {
	bc := tour.DefaultBoundConfig()
	bc.MaxIter = iters
	bc.Upper = r.Fitness
	lb, err := tour.LowerBound(cm, bc)
	if err != nil {
		return err
	}
	r.LowerBound = lb
	if r.Fitness > 0 {
		r.Gap = math.Min(math.Max((r.Fitness-lb)/r.Fitness, 0), 1)
	}

	return nil
}
