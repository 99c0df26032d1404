package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permtour/search"
	"github.com/katalvlaran/permtour/tour"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := search.DefaultConfig()
	require.NoError(t, cfg.Validate())

	s, err := cfg.LocalSearch()
	require.NoError(t, err)
	require.Equal(t, tour.FirstImprovement, s)
}

func TestConfig_Validate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		edit func(*search.Config)
	}{
		{"zero iterations", func(c *search.Config) { c.Iterations = 0 }},
		{"zero trajectories", func(c *search.Config) { c.Trajectories = 0 }},
		{"too many trajectories", func(c *search.Config) { c.Trajectories = search.MaxTrajectories + 1 }},
		{"negative rcl", func(c *search.Config) { c.RCLThreshold = -0.1 }},
		{"rcl above one", func(c *search.Config) { c.RCLThreshold = 1.5 }},
		{"nan rcl", func(c *search.Config) { c.RCLThreshold = math.NaN() }},
		{"negative perturbations", func(c *search.Config) { c.Perturbations = -1 }},
		{"negative tenure", func(c *search.Config) { c.TabuTenure = -1 }},
		{"zero samples", func(c *search.Config) { c.NeighborSamples = 0 }},
		{"zero stall", func(c *search.Config) { c.StallLimit = 0 }},
		{"unknown strategy", func(c *search.Config) { c.Strategy = "steepest" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := search.DefaultConfig()
			tc.edit(&cfg)
			require.ErrorIs(t, cfg.Validate(), search.ErrInvalidConfig)
		})
	}
}

func TestConfig_Validate_Bounds(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.RCLThreshold = 1
	cfg.Trajectories = search.MaxTrajectories
	cfg.Perturbations = 0
	cfg.TabuTenure = 0
	cfg.Strategy = "best"
	require.NoError(t, cfg.Validate())
}
