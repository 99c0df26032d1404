// Package search drives the operators of package tour as a multi-start,
// tabu-guided local search.
//
// What:
//
//   - Run starts Config.Trajectories independent trajectories, each on its
//     own derived tour.Rand, and returns the best tour found.
//   - A trajectory builds a GRC start, descends with 2-opt, and then moves
//     through sampled swap neighbourhoods while a FIFO TabuList forbids
//     undoing recent swaps.
//   - When a trajectory stalls it escapes, alternating between a random
//     perturbation and a relink toward its best tour (positional crossover
//     followed by tour.Repair).
//
// Determinism:
//
//   - For a fixed Config (Seed included) and cost model, Run returns the same
//     Result regardless of goroutine scheduling.
//
// Concurrency:
//
//   - Trajectories run in parallel under golang.org/x/sync/errgroup; the cost
//     model is only read. Cancelling ctx stops every trajectory at its next
//     iteration boundary and Run returns ctx.Err().
//
// Logging:
//
//   - Run logs through an injected *zap.Logger (WithLogger); the default is a
//     no-op logger.
package search
