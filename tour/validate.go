// Package tour - argument checks shared by every operator.
//
// Design principles:
//   - Checks run at the operator boundary, before any mutation.
//   - Sentinel errors only (types.go); no logging, no panics on user input.
//   - O(1) for shape checks, O(n) for permutation checks.
package tour

// checkModel returns N for a usable cost model.
//
// Complexity: O(1).
func checkModel(cm CostModel) (int, error) {
	if cm == nil {
		return 0, ErrNilCostModel
	}
	n := cm.Size()
	if n <= 0 {
		return 0, ErrInvalidDimension
	}

	return n, nil
}

// checkTour validates the model and that len(t) == N.
//
// Complexity: O(1).
func checkTour(cm CostModel, t []int) (int, error) {
	n, err := checkModel(cm)
	if err != nil {
		return 0, err
	}
	if len(t) != n {
		return 0, ErrInvalidDimension
	}

	return n, nil
}

// checkSource rejects a nil RandomSource.
//
// Complexity: O(1).
func checkSource(rs RandomSource) error {
	if rs == nil {
		return ErrNilRandomSource
	}

	return nil
}

// checkElements verifies every element of t lies in [0, n).
// Duplicates are not detected; see ValidatePermutation.
//
// Complexity: O(n).
func checkElements(t []int, n int) error {
	var i int
	for i = range t {
		if t[i] < 0 || t[i] >= n {
			return ErrNotPermutation
		}
	}

	return nil
}

// ValidatePermutation checks that t is a permutation of {0..n-1} of length n.
//
// Errors: ErrInvalidDimension for n ≤ 0 or len(t) != n; ErrNotPermutation for
// an out-of-range element or a duplicate.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t []int, n int) error {
	if n <= 0 || len(t) != n {
		return ErrInvalidDimension
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n {
			return ErrNotPermutation
		}
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// checkPermutation combines checkTour and ValidatePermutation.
//
// Complexity: O(n).
func checkPermutation(cm CostModel, t []int) (int, error) {
	n, err := checkTour(cm, t)
	if err != nil {
		return 0, err
	}
	if err = ValidatePermutation(t, n); err != nil {
		return 0, err
	}

	return n, nil
}
