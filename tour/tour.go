// Package tour - structural helpers that do not depend on costs.
//
//   - CopyTour: independent copy for parallel trajectories.
//   - RotateToStart: cyclic shift so that a given element comes first.
//   - Identity: the tour 0, 1, ..., n-1.
package tour

// CopyTour returns an independent copy of t.
//
// Complexity: O(N) time and space.
func CopyTour(t []int) []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t))
	copy(out, t)

	return out
}

// RotateToStart returns a fresh copy of t shifted cyclically so that
// out[0] == start. The cycle (and hence its fitness) is unchanged.
//
// Errors: ErrInvalidDimension for an empty tour, ErrNotPermutation when start
// does not occur in t.
//
// Complexity: O(N) time and space.
func RotateToStart(t []int, start int) ([]int, error) {
	if len(t) == 0 {
		return nil, ErrInvalidDimension
	}

	var (
		n     = len(t)
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if t[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrNotPermutation
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}

	return out, nil
}

// Identity returns the tour 0, 1, ..., n-1, or ErrInvalidDimension for n ≤ 0.
//
// Complexity: O(N).
func Identity(n int) ([]int, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	out := make([]int, n)

	var i int
	for i = range out {
		out[i] = i
	}

	return out, nil
}
