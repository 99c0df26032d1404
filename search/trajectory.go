package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/permtour/tour"
)

// trajectory is one independent search thread. It owns its random stream,
// its tabu list and its tours; only the cost model is shared.
type trajectory struct {
	id       int
	cm       tour.CostModel
	rs       *tour.Rand
	cfg      Config
	strategy tour.Strategy
	log      *zap.Logger

	cur, best       []int
	curFit, bestFit float64
	escapes         int
}

// run executes cfg.Iterations tabu steps and returns the best tour seen.
//
// Complexity: O(I·S·N) for the sampled steps plus one Descend per escape.
func (tr *trajectory) run(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := tr.start(); err != nil {
		return Result{}, err
	}

	var (
		tabu  = NewTabuList(tr.cfg.TabuTenure)
		stall int
		it    int
		err   error
	)
	for it = 0; it < tr.cfg.Iterations; it++ {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		if err = tr.step(tabu); err != nil {
			return Result{}, err
		}
		if tr.improve() {
			stall = 0
			continue
		}
		stall++
		if stall < tr.cfg.StallLimit {
			continue
		}
		if err = tr.escape(); err != nil {
			return Result{}, err
		}
		tr.improve()
		stall = 0
	}

	div, err := tour.Distance(tr.best, tr.cur)
	if err != nil {
		return Result{}, err
	}
	tr.log.Debug("trajectory finished",
		zap.Int("trajectory", tr.id),
		zap.Float64("fitness", tr.bestFit),
		zap.Int("escapes", tr.escapes),
		zap.Int("diversity", div))

	return Result{
		Tour:       tr.best,
		Fitness:    tr.bestFit,
		Trajectory: tr.id,
		Iterations: it,
		Diversity:  div,
	}, nil
}

// start builds the initial tour with GRC and descends it to a 2-opt optimum.
func (tr *trajectory) start() error {
	var err error
	if tr.cur, err = tour.GRCSolution(tr.cm, tr.rs, tr.cfg.RCLThreshold); err != nil {
		return err
	}
	if err = tr.settle(); err != nil {
		return err
	}
	tr.best = tour.CopyTour(tr.cur)
	tr.bestFit = tr.curFit

	return nil
}

// settle runs Descend on cur and refreshes curFit.
func (tr *trajectory) settle() error {
	var err error
	if _, err = tour.Descend(tr.cm, tr.cur, tr.strategy, 0); err != nil {
		return err
	}
	tr.curFit, err = tour.Fitness(tr.cm, tr.cur)

	return err
}

// step samples NeighborSamples swap neighbours of cur and moves to the
// cheapest admissible one. A tabu swap is admissible only if it beats the
// best tour of this trajectory. If every sample is tabu, cur stays put.
func (tr *trajectory) step(tabu *TabuList) error {
	if len(tr.cur) < 2 {
		return nil
	}

	var (
		chosen    []int
		chosenFit float64
		chosenMv  tour.Move
		cand      []int
		f         float64
		mv        tour.Move
		s         int
		err       error
	)
	for s = 0; s < tr.cfg.NeighborSamples; s++ {
		if cand, err = tour.Neighbor(tr.rs, tr.cur); err != nil {
			return err
		}
		if mv, err = tour.GetTabu(tr.cur, cand); err != nil {
			return err
		}
		if f, err = tour.Fitness(tr.cm, cand); err != nil {
			return err
		}
		if tabu.Contains(mv) && f >= tr.bestFit {
			continue
		}
		if chosen == nil || f < chosenFit {
			chosen, chosenFit, chosenMv = cand, f, mv
		}
	}
	if chosen == nil {
		return nil
	}
	tr.cur, tr.curFit = chosen, chosenFit
	tabu.Push(chosenMv)

	return nil
}

// improve promotes cur to best when it is strictly cheaper.
func (tr *trajectory) improve() bool {
	if tr.curFit >= tr.bestFit {
		return false
	}
	tr.best = tour.CopyTour(tr.cur)
	tr.bestFit = tr.curFit

	return true
}

// escape leaves a stalled region. Even escapes perturb cur with
// cfg.Perturbations random swaps; odd escapes relink cur toward best.
// Both end with a full descent.
func (tr *trajectory) escape() error {
	var err error
	if tr.escapes%2 == 0 {
		err = tour.Perturbate(tr.rs, tr.cur, tr.cfg.Perturbations)
	} else {
		err = tr.relink()
	}
	if err != nil {
		return err
	}
	tr.escapes++
	if err = tr.settle(); err != nil {
		return err
	}
	tr.log.Debug("trajectory escaped",
		zap.Int("trajectory", tr.id),
		zap.Int("escape", tr.escapes),
		zap.Float64("fitness", tr.curFit))

	return nil
}

// relink replaces cur by a uniform positional crossover of cur and best.
// Each position takes best's value or cur's value with equal probability;
// the duplicates this creates are removed by tour.Repair.
func (tr *trajectory) relink() error {
	var (
		child = make([]int, len(tr.cur))
		coin  int
		i     int
		err   error
	)
	for i = range child {
		if coin, err = tr.rs.UniformInt(0, 1); err != nil {
			return err
		}
		if coin == 0 {
			child[i] = tr.best[i]
		} else {
			child[i] = tr.cur[i]
		}
	}
	if err = tour.Repair(tr.cm, tr.rs, child); err != nil {
		return err
	}
	tr.cur = child

	return nil
}
