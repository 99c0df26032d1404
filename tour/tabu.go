package tour

// GetTabu returns the move that turns src into dst, assuming the two tours
// differ by exactly one transposition: the first position where they differ
// is located and the pair of values found there is returned as (min, max).
// Identical tours yield NoMove.
//
// The single-transposition precondition is not checked. For tours that differ
// in more places, the result describes the first differing position only.
//
// Errors: ErrInvalidDimension when the lengths differ.
//
// Complexity: O(N) time, O(1) space.
func GetTabu(src, dst []int) (Move, error) {
	if len(src) != len(dst) {
		return NoMove, ErrInvalidDimension
	}

	var i int
	for i = range src {
		if src[i] != dst[i] {
			return NewMove(src[i], dst[i]), nil
		}
	}

	return NoMove, nil
}
