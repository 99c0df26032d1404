// Package tour_test provides the helpers shared across *_test.go files of
// this package: scripted random sources, small cost models and assertions.
package tour_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/permtour/matrix"
	"github.com/katalvlaran/permtour/tour"
	"github.com/stretchr/testify/require"
)

// seedDet is the deterministic seed used by property tests.
const seedDet = uint64(7)

// errScriptExhausted is returned by script once every value was consumed.
var errScriptExhausted = errors.New("script exhausted")

// script is a RandomSource replaying a fixed sequence of draws. Values are
// returned verbatim (even when outside [lo, hi]) so that tests can exercise
// the operators' own range checks.
type script struct {
	vals []int
	pos  int
}

var _ tour.RandomSource = (*script)(nil)

func newScript(vals ...int) *script { return &script{vals: vals} }

func (s *script) UniformInt(lo, hi int) (int, error) {
	if lo > hi {
		return 0, tour.ErrInvalidRange
	}
	if s.pos >= len(s.vals) {
		return 0, errScriptExhausted
	}
	v := s.vals[s.pos]
	s.pos++

	return v, nil
}

// failingSource fails every draw; used to prove that no draw happens.
type failingSource struct{}

var errNoDraw = errors.New("unexpected draw")

func (failingSource) UniformInt(lo, hi int) (int, error) {
	return 0, fmt.Errorf("UniformInt(%d,%d): %w", lo, hi, errNoDraw)
}

// sliceModel is an unvalidated CostModel over a square [][]float64.
type sliceModel [][]float64

func (m sliceModel) Size() int             { return len(m) }
func (m sliceModel) Cost(i, j int) float64 { return m[i][j] }

// ringModel returns the N-ring instance: cost 1 between cyclic neighbours,
// 5 between every other pair, 0 on the diagonal.
func ringModel(t *testing.T, n int) *matrix.CostMatrix {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			switch {
			case i == j:
				rows[i][j] = 0
			case (i+1)%n == j || (j+1)%n == i:
				rows[i][j] = 1
			default:
				rows[i][j] = 5
			}
		}
	}
	cm, err := matrix.NewCostMatrixFromRows(rows)
	require.NoError(t, err)

	return cm
}

// randomModel returns a symmetric matrix of integer costs in [0, 9].
func randomModel(t *testing.T, n int, seed uint64) *matrix.CostMatrix {
	t.Helper()
	var (
		rs   = tour.NewRand(seed)
		rows = make([][]float64, n)
	)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := rs.UniformInt(0, 9)
			require.NoError(t, err)
			rows[i][j] = float64(v)
			rows[j][i] = float64(v)
		}
	}
	cm, err := matrix.NewCostMatrixFromRows(rows)
	require.NoError(t, err)

	return cm
}

// randomTour draws a permutation of [0, cm.Size()).
func randomTour(t *testing.T, cm tour.CostModel, rs tour.RandomSource) []int {
	t.Helper()
	tr, err := tour.RandomSolution(cm, rs)
	require.NoError(t, err)

	return tr
}

// mustFitness evaluates tr and fails the test on error.
func mustFitness(t *testing.T, cm tour.CostModel, tr []int) float64 {
	t.Helper()
	f, err := tour.Fitness(cm, tr)
	require.NoError(t, err)

	return f
}

// requirePermutation asserts tr is a permutation of [0, n).
func requirePermutation(t *testing.T, tr []int, n int) {
	t.Helper()
	require.NoError(t, tour.ValidatePermutation(tr, n), "not a permutation: %v", tr)
}

// swapped returns a copy of tr with positions a and b exchanged.
func swapped(tr []int, a, b int) []int {
	out := tour.CopyTour(tr)
	out[a], out[b] = out[b], out[a]

	return out
}
