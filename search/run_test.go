package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/permtour/matrix"
	"github.com/katalvlaran/permtour/search"
	"github.com/katalvlaran/permtour/tour"
)

func TestRun_Ring4FindsOptimum(t *testing.T) {
	cm := ring4(t)
	for _, s := range []string{"first", "best"} {
		t.Run(s, func(t *testing.T) {
			cfg := smallConfig()
			cfg.Strategy = s
			res, err := search.Run(context.Background(), cm, cfg)
			require.NoError(t, err)
			requireResult(t, cm, res)
			require.Equal(t, 4.0, res.Fitness)
			require.Equal(t, 4.0, res.LowerBound)
			require.Zero(t, res.Gap, "the ring is certified optimal")
			require.Equal(t, cfg.Iterations, res.Iterations)
			require.GreaterOrEqual(t, res.Trajectory, 0)
			require.Less(t, res.Trajectory, cfg.Trajectories)
		})
	}
}

func TestRun_ValidResultOnCircle(t *testing.T) {
	cm := circle(t, 12)
	res, err := search.Run(context.Background(), cm, smallConfig())
	require.NoError(t, err)
	requireResult(t, cm, res)
}

func TestRun_BoundDisabled(t *testing.T) {
	cm := circle(t, 8)
	res, err := search.Run(context.Background(), cm, smallConfig(), search.WithBoundIterations(0))
	require.NoError(t, err)
	require.Zero(t, res.LowerBound)
	require.Zero(t, res.Gap)

	res, err = search.Run(context.Background(), cm, smallConfig())
	require.NoError(t, err)
	require.Positive(t, res.LowerBound)
	require.LessOrEqual(t, res.LowerBound, res.Fitness+1e-9)
	require.GreaterOrEqual(t, res.Gap, 0.0)
	require.LessOrEqual(t, res.Gap, 1.0)
}

func TestRun_Deterministic(t *testing.T) {
	cm := circle(t, 10)
	cfg := smallConfig()

	a, err := search.Run(context.Background(), cm, cfg, search.WithParallelism(1))
	require.NoError(t, err)
	b, err := search.Run(context.Background(), cm, cfg, search.WithParallelism(4))
	require.NoError(t, err)
	require.Equal(t, a, b, "scheduling must not change the result")
}

func TestRun_TinyProblems(t *testing.T) {
	for _, rows := range [][][]float64{
		{{0}},
		{{0, 3}, {3, 0}},
	} {
		cm, err := matrix.NewCostMatrixFromRows(rows)
		require.NoError(t, err)
		res, err := search.Run(context.Background(), cm, smallConfig())
		require.NoError(t, err)
		requireResult(t, cm, res)
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := search.Run(context.Background(), nil, smallConfig())
	require.ErrorIs(t, err, tour.ErrNilCostModel)

	cfg := smallConfig()
	cfg.Iterations = 0
	_, err = search.Run(context.Background(), ring4(t), cfg)
	require.ErrorIs(t, err, search.ErrInvalidConfig)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Run(ctx, circle(t, 8), smallConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cm := ring4(t)

	res, err := search.Run(context.Background(), cm, smallConfig(), search.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("search finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, res.Fitness, fields["fitness"])
	require.Equal(t, int64(res.Trajectory), fields["best_trajectory"])
}
