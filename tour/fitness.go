// Package tour - closed-cycle fitness.
//
// Fitness is the only scoring rule in the package: every constructor, local
// search and driver compares tours through it.
//
// Design:
//   - Strict sentinels at the boundary; the unchecked fitness kernel is used
//     inside loops that already validated their input.
//   - Stable summation: rounded to 1e-9 so that the same cycle read from a
//     different start, or summed in a different order, scores identically.
package tour

import "math"

// roundScale controls final fitness stabilization precision (1e-9).
const roundScale = 1e9

// Fitness returns Σ cost(t[i-1], t[i]) for i=1..N-1 plus cost(t[N-1], t[0]).
//
// Contract:
//   - cm is non-nil with Size() ≥ 1 (ErrNilCostModel, ErrInvalidDimension).
//   - len(t) == cm.Size() (ErrInvalidDimension).
//   - every element lies in [0, N) (ErrNotPermutation). Duplicates are not
//     rejected; they are scored like any other sequence.
//
// Complexity: O(N) time, O(1) space.
func Fitness(cm CostModel, t []int) (float64, error) {
	n, err := checkTour(cm, t)
	if err != nil {
		return 0, err
	}
	if err = checkElements(t, n); err != nil {
		return 0, err
	}

	return fitness(cm, t), nil
}

// fitness is the unchecked kernel of Fitness.
//
// Complexity: O(N).
func fitness(cm CostModel, t []int) float64 {
	var (
		sum  float64
		i    int
		last = len(t) - 1
	)
	for i = 1; i <= last; i++ {
		sum += cm.Cost(t[i-1], t[i])
	}
	sum += cm.Cost(t[last], t[0]) // closing edge

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
