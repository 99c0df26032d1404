package tour

import "errors"

var (
	// ErrInvalidDimension is returned when the problem size is not positive or a
	// tour's length disagrees with CostModel.Size().
	ErrInvalidDimension = errors.New("tour: invalid dimension")

	// ErrInvalidRange is returned by RandomSource implementations when lo > hi,
	// and by operators when a sampled value or a count falls outside its range.
	ErrInvalidRange = errors.New("tour: invalid range")

	// ErrNotPermutation is returned when a tour holds a duplicate or an
	// out-of-range element where a permutation is required.
	ErrNotPermutation = errors.New("tour: not a permutation")

	// ErrNilCostModel is returned when a nil CostModel is supplied.
	ErrNilCostModel = errors.New("tour: nil cost model")

	// ErrNilRandomSource is returned when a nil RandomSource is supplied.
	ErrNilRandomSource = errors.New("tour: nil random source")

	// ErrInvalidThreshold is returned when an RCL threshold is NaN or outside [0,1].
	ErrInvalidThreshold = errors.New("tour: RCL threshold must lie in [0,1]")

	// ErrUnknownStrategy is returned for an unsupported local-search strategy.
	ErrUnknownStrategy = errors.New("tour: unknown local search strategy")
)

// CostModel exposes the problem size and a symmetric pairwise cost.
// Implementations must be safe for concurrent reads and must not change
// while an operator runs.
type CostModel interface {
	// Size returns N, the number of elements.
	Size() int

	// Cost returns the cost between elements i and j, both in [0, Size()).
	// Cost(i, j) == Cost(j, i).
	Cost(i, j int) float64
}

// RandomSource draws uniform integers from the inclusive range [lo, hi].
// Successive calls must be statistically independent. lo > hi must fail with
// ErrInvalidRange, never be clamped.
type RandomSource interface {
	UniformInt(lo, hi int) (int, error)
}

// Move is the unordered pair of values exchanged by one transposition,
// stored as A = min, B = max. Moves are comparable with ==.
type Move struct {
	A int
	B int
}

// NoMove is returned by GetTabu for identical tours.
var NoMove = Move{A: -1, B: -1}

// NewMove returns the normalized Move for values u and v.
func NewMove(u, v int) Move {
	if u > v {
		u, v = v, u
	}

	return Move{A: u, B: v}
}

// IsNone reports whether m is the NoMove sentinel.
func (m Move) IsNone() bool {
	return m == NoMove
}
