package tour_test

import (
	"testing"

	"github.com/katalvlaran/permtour/tour"
	"github.com/stretchr/testify/require"
)

func TestFitness_RingScenario(t *testing.T) {
	cm := ringModel(t, 4)

	require.Equal(t, 4.0, mustFitness(t, cm, []int{0, 1, 2, 3}))
	// 0-2:5, 2-1:1, 1-3:5, 3-0:1
	require.Equal(t, 12.0, mustFitness(t, cm, []int{0, 2, 1, 3}))
}

func TestFitness_CountsClosingEdge(t *testing.T) {
	cm := sliceModel{
		{0, 1, 9},
		{1, 0, 2},
		{9, 2, 0},
	}
	// 0-1:1, 1-2:2, closing 2-0:9
	require.Equal(t, 12.0, mustFitness(t, cm, []int{0, 1, 2}))
}

func TestFitness_SingleElement(t *testing.T) {
	require.Equal(t, 3.0, mustFitness(t, sliceModel{{3}}, []int{0}))
}

func TestFitness_RotationInvariant(t *testing.T) {
	const n = 9
	cm := randomModel(t, n, seedDet)
	tr := randomTour(t, cm, tour.NewRand(seedDet))
	want := mustFitness(t, cm, tr)

	for start := 0; start < n; start++ {
		rot, err := tour.RotateToStart(tr, start)
		require.NoError(t, err)
		require.Equal(t, start, rot[0])
		require.Equal(t, want, mustFitness(t, cm, rot), "rotation to %d", start)
	}
}

func TestFitness_Errors(t *testing.T) {
	cm := ringModel(t, 4)

	_, err := tour.Fitness(nil, []int{0})
	require.ErrorIs(t, err, tour.ErrNilCostModel)

	_, err = tour.Fitness(sliceModel{}, []int{})
	require.ErrorIs(t, err, tour.ErrInvalidDimension)

	_, err = tour.Fitness(cm, []int{0, 1, 2})
	require.ErrorIs(t, err, tour.ErrInvalidDimension)

	_, err = tour.Fitness(cm, []int{0, 1, 2, 4})
	require.ErrorIs(t, err, tour.ErrNotPermutation)

	_, err = tour.Fitness(cm, []int{0, -1, 2, 3})
	require.ErrorIs(t, err, tour.ErrNotPermutation)
}
