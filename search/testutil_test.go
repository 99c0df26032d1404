package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permtour/matrix"
	"github.com/katalvlaran/permtour/search"
	"github.com/katalvlaran/permtour/tour"
)

// ring4 is the 4-element ring: neighbours cost 1, opposite elements cost 5.
// Every closed tour is either the ring (fitness 4) or one swap away from it.
func ring4(t *testing.T) *matrix.CostMatrix {
	t.Helper()
	cm, err := matrix.NewCostMatrixFromRows([][]float64{
		{0, 1, 5, 1},
		{1, 0, 1, 5},
		{5, 1, 0, 1},
		{1, 5, 1, 0},
	})
	require.NoError(t, err)

	return cm
}

// circle places n points evenly on the unit circle, Euclidean costs.
func circle(t *testing.T, n int) *matrix.CostMatrix {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			ai := 2 * math.Pi * float64(i) / float64(n)
			aj := 2 * math.Pi * float64(j) / float64(n)
			rows[i][j] = math.Hypot(math.Cos(ai)-math.Cos(aj), math.Sin(ai)-math.Sin(aj))
		}
	}
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	cm, err := matrix.NewCostMatrix(d, 1e-9)
	require.NoError(t, err)

	return cm
}

// smallConfig keeps test runs short.
func smallConfig() search.Config {
	cfg := search.DefaultConfig()
	cfg.Iterations = 40
	cfg.Trajectories = 3
	cfg.StallLimit = 5
	cfg.NeighborSamples = 6
	cfg.Seed = 11

	return cfg
}

// requireResult checks that res carries a permutation of [0, n) whose
// recomputed fitness equals the reported one.
func requireResult(t *testing.T, cm tour.CostModel, res search.Result) {
	t.Helper()
	require.NoError(t, tour.ValidatePermutation(res.Tour, cm.Size()))
	f, err := tour.Fitness(cm, res.Tour)
	require.NoError(t, err)
	require.Equal(t, f, res.Fitness)
	require.GreaterOrEqual(t, res.Diversity, 0)
	if cm.Size() > 1 {
		require.LessOrEqual(t, res.Diversity, cm.Size()-1)
	}
}
