// Package tour - pairwise-swap local search (2-opt swap neighbourhood).
//
// The neighbourhood of a tour is every tour obtained by exchanging the
// elements at two positions i < j. Candidates are enumerated in the fixed
// order j = 1..N-1, i = 0..j-1 and scored with the full closed-cycle fitness.
//
//   - LocalSearch2OptFirst: apply the first strictly improving swap.
//   - LocalSearch2OptBest:  scan everything, apply the single best swap if it
//     strictly improves.
//
// Each call applies at most one move; neither iterates to convergence.
// Descend repeats a strategy until the tour is stable (or a round budget is
// spent), which is how callers reach a local optimum.
//
// Complexity: one call is O(N²) candidates × O(N) fitness = O(N³).
package tour

import "fmt"

// Strategy selects the acceptance rule of a local-search pass.
type Strategy int

const (
	// FirstImprovement accepts the first strictly improving swap.
	FirstImprovement Strategy = iota
	// BestImprovement accepts the best strictly improving swap.
	BestImprovement
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case FirstImprovement:
		return "first"
	case BestImprovement:
		return "best"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "first"/"best" onto a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "first":
		return FirstImprovement, nil
	case "best":
		return BestImprovement, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}
}

// LocalSearch2OptFirst tentatively swaps every pair in enumeration order and
// keeps the first swap that strictly lowers the fitness. It reports whether a
// swap was kept; otherwise t is unchanged.
//
// Errors: ErrNilCostModel, ErrInvalidDimension, ErrNotPermutation.
//
// Complexity: O(N³) time, O(1) extra space.
func LocalSearch2OptFirst(cm CostModel, t []int) (bool, error) {
	if _, err := checkPermutation(cm, t); err != nil {
		return false, err
	}

	return firstImprovement(cm, t), nil
}

// LocalSearch2OptBest evaluates every pair and applies the swap with the
// lowest resulting fitness, only if it is strictly lower than the fitness of
// t. It reports whether a swap was applied.
//
// Errors: ErrNilCostModel, ErrInvalidDimension, ErrNotPermutation.
//
// Complexity: O(N³) time, O(1) extra space.
func LocalSearch2OptBest(cm CostModel, t []int) (bool, error) {
	if _, err := checkPermutation(cm, t); err != nil {
		return false, err
	}

	return bestImprovement(cm, t), nil
}

// LocalSearch runs one pass of the given strategy.
func LocalSearch(cm CostModel, t []int, s Strategy) (bool, error) {
	switch s {
	case FirstImprovement:
		return LocalSearch2OptFirst(cm, t)
	case BestImprovement:
		return LocalSearch2OptBest(cm, t)
	default:
		return false, ErrUnknownStrategy
	}
}

// Descend re-applies strategy s until a pass applies no move or maxRounds
// passes have applied one (maxRounds == 0 means no limit). It returns the
// number of applied moves. Fitness strictly decreases with every move, so the
// loop terminates.
//
// Errors: ErrNilCostModel, ErrInvalidDimension, ErrNotPermutation,
// ErrUnknownStrategy, ErrInvalidRange for maxRounds < 0.
//
// Complexity: O(moves · N³).
func Descend(cm CostModel, t []int, s Strategy, maxRounds int) (int, error) {
	if _, err := checkPermutation(cm, t); err != nil {
		return 0, err
	}
	if maxRounds < 0 {
		return 0, ErrInvalidRange
	}

	var pass func(CostModel, []int) bool
	switch s {
	case FirstImprovement:
		pass = firstImprovement
	case BestImprovement:
		pass = bestImprovement
	default:
		return 0, ErrUnknownStrategy
	}

	var moves int
	for maxRounds == 0 || moves < maxRounds {
		if !pass(cm, t) {
			break
		}
		moves++
	}

	return moves, nil
}

// firstImprovement is the unchecked kernel of LocalSearch2OptFirst.
func firstImprovement(cm CostModel, t []int) bool {
	var (
		base = fitness(cm, t)
		i, j int
	)
	for j = 1; j < len(t); j++ {
		for i = 0; i < j; i++ {
			t[i], t[j] = t[j], t[i]
			if fitness(cm, t) < base {
				return true // keep the swap
			}
			t[i], t[j] = t[j], t[i] // undo
		}
	}

	return false
}

// bestImprovement is the unchecked kernel of LocalSearch2OptBest.
func bestImprovement(cm CostModel, t []int) bool {
	var (
		best         = fitness(cm, t)
		bestI, bestJ = -1, -1
		i, j         int
		f            float64
	)
	for j = 1; j < len(t); j++ {
		for i = 0; i < j; i++ {
			t[i], t[j] = t[j], t[i]
			f = fitness(cm, t)
			if f < best {
				best = f
				bestI, bestJ = i, j
			}
			t[i], t[j] = t[j], t[i]
		}
	}
	if bestI < 0 {
		return false
	}
	t[bestI], t[bestJ] = t[bestJ], t[bestI]

	return true
}
