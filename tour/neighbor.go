// Package tour - random swap operators.
//
//   - Neighbor:   one swap of two distinct positions, on a copy.
//   - Perturbate: k independent swaps, in place; a position may be swapped
//     with itself, which is a no-op for that iteration.
package tour

// Neighbor returns a copy of t with two distinct, uniformly drawn positions
// swapped. The second position is redrawn until it differs from the first.
// t is not modified.
//
// Errors: ErrInvalidDimension when len(t) < 2, ErrNilRandomSource, or any
// error of rs.
//
// Complexity: O(N) time and space for the copy; expected O(1) draws.
func Neighbor(rs RandomSource, t []int) ([]int, error) {
	if len(t) < 2 {
		return nil, ErrInvalidDimension
	}
	if err := checkSource(rs); err != nil {
		return nil, err
	}

	var (
		last = len(t) - 1
		a, b int
		err  error
	)
	if a, err = rs.UniformInt(0, last); err != nil {
		return nil, err
	}
	b = a
	for b == a {
		if b, err = rs.UniformInt(0, last); err != nil {
			return nil, err
		}
	}
	if a < 0 || a > last || b < 0 || b > last {
		return nil, ErrInvalidRange
	}

	out := CopyTour(t)
	out[a], out[b] = out[b], out[a]

	return out, nil
}

// Perturbate applies k independent random swaps to t in place. Both
// positions of each swap are drawn uniformly from [0, N).
//
// Errors: ErrInvalidDimension for an empty tour, ErrInvalidRange for k < 0,
// ErrNilRandomSource, or any error of rs. A source failure mid-way leaves
// the swaps already applied in place; t is still a permutation.
//
// Complexity: O(k) time, O(1) space.
func Perturbate(rs RandomSource, t []int, k int) error {
	if len(t) == 0 {
		return ErrInvalidDimension
	}
	if k < 0 {
		return ErrInvalidRange
	}
	if err := checkSource(rs); err != nil {
		return err
	}

	var (
		last   = len(t) - 1
		i      int
		p1, p2 int
		err    error
	)
	for i = 0; i < k; i++ {
		if p1, err = rs.UniformInt(0, last); err != nil {
			return err
		}
		if p2, err = rs.UniformInt(0, last); err != nil {
			return err
		}
		if p1 < 0 || p1 > last || p2 < 0 || p2 > last {
			return ErrInvalidRange
		}
		t[p1], t[p2] = t[p2], t[p1]
	}

	return nil
}
