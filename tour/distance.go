package tour

// Distance counts the positions i in [0, N-1) where the adjacent pair
// (a[i], a[i+1]) differs from (b[i], b[i+1]). The closing pair (a[N-1], a[0])
// is never compared. The result lies in [0, N-1] for N ≥ 1.
//
// This is a coarse diversity signal, not a metric over cycles: rotations of
// the same cycle are reported as far apart.
//
// Errors: ErrInvalidDimension when the lengths differ.
//
// Complexity: O(N) time, O(1) space.
func Distance(a, b []int) (int, error) {
	if len(a) != len(b) {
		return 0, ErrInvalidDimension
	}

	var (
		d int
		i int
	)
	for i = 0; i+1 < len(a); i++ {
		if a[i] != b[i] || a[i+1] != b[i+1] {
			d++
		}
	}

	return d, nil
}
