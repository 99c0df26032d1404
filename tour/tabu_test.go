package tour_test

import (
	"testing"

	"github.com/katalvlaran/permtour/tour"
	"github.com/stretchr/testify/require"
)

func TestGetTabu_IdenticalTours(t *testing.T) {
	tr := []int{3, 1, 0, 2}
	m, err := tour.GetTabu(tr, tour.CopyTour(tr))
	require.NoError(t, err)
	require.Equal(t, tour.NoMove, m)
	require.True(t, m.IsNone())
}

func TestGetTabu_EverySingleSwap(t *testing.T) {
	const n = 7
	cm := randomModel(t, n, seedDet)
	tr := randomTour(t, cm, tour.NewRand(seedDet))

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				continue
			}
			want := tour.Move{A: min(tr[a], tr[b]), B: max(tr[a], tr[b])}

			m, err := tour.GetTabu(tr, swapped(tr, a, b))
			require.NoError(t, err)
			require.Equal(t, want, m, "swap %d<->%d", a, b)
			require.False(t, m.IsNone())

			// The move is unordered: the reverse direction reports the same pair.
			m, err = tour.GetTabu(swapped(tr, a, b), tr)
			require.NoError(t, err)
			require.Equal(t, want, m)
		}
	}
}

// For tours that differ by more than one swap only the first differing
// position is reported.
func TestGetTabu_FirstDifferenceOnly(t *testing.T) {
	m, err := tour.GetTabu([]int{0, 1, 2, 3}, []int{1, 2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, tour.Move{A: 0, B: 1}, m)
}

func TestGetTabu_LengthMismatch(t *testing.T) {
	m, err := tour.GetTabu([]int{0, 1}, []int{0, 1, 2})
	require.ErrorIs(t, err, tour.ErrInvalidDimension)
	require.Equal(t, tour.NoMove, m)
}

func TestNewMove_Normalizes(t *testing.T) {
	require.Equal(t, tour.Move{A: 2, B: 5}, tour.NewMove(5, 2))
	require.Equal(t, tour.NewMove(5, 2), tour.NewMove(2, 5))
}
