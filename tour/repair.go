// Package tour - structural repair of candidate tours.
//
// Repair turns an arbitrary int slice of length N into a permutation of
// [0, N) without looking at costs. Recombination-style operators (positional
// crossover, swarm position updates) produce duplicates; Repair fixes them.
package tour

// Repair restores the permutation invariant of t in place.
//
// Algorithm:
//   - One left-to-right scan marks the first occurrence of every in-range value
//     as visited. Later repeats of a visited value, and values outside [0, N),
//     are marked as positions to rewrite. First occurrences are never touched.
//   - Each marked position, left to right, receives the k-th currently missing
//     value (ascending), k drawn uniformly from [1, missing]; that value is
//     then marked visited.
//
// All draws happen before t is modified, so a failing RandomSource leaves t
// unchanged. A valid permutation is left untouched and consumes no draws.
//
// Errors: ErrNilCostModel, ErrInvalidDimension, ErrNilRandomSource,
// ErrInvalidRange (a draw outside [1, missing]), or any error of rs.
//
// Complexity: O(N) scan + O(R·N) for R rewritten positions; O(N) space.
func Repair(cm CostModel, rs RandomSource, t []int) error {
	n, err := checkTour(cm, t)
	if err != nil {
		return err
	}
	if err = checkSource(rs); err != nil {
		return err
	}

	var (
		visited  = make([]bool, n)
		repeated = make([]int, 0)
		seen     int
		i, v     int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n || visited[v] {
			repeated = append(repeated, i)
			continue
		}
		visited[v] = true
		seen++
	}
	if len(repeated) == 0 {
		return nil
	}

	// Each rewrite shrinks the missing count by one, so the ranges of all
	// draws are known up front: [1, m], [1, m-1], ..., with m = N - seen.
	var (
		missing = n - seen
		picks   = make([]int, len(repeated))
	)
	for i = range picks {
		if picks[i], err = rs.UniformInt(1, missing-i); err != nil {
			return err
		}
		if picks[i] < 1 || picks[i] > missing-i {
			return ErrInvalidRange
		}
	}

	var (
		c int
		k int
	)
	for i = range repeated {
		k = picks[i]
		for c = 0; c < n; c++ {
			if visited[c] {
				continue
			}
			k--
			if k == 0 {
				t[repeated[i]] = c
				visited[c] = true
				break
			}
		}
	}

	return nil
}
