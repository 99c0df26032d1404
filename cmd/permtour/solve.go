package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/permtour/matrix"
	"github.com/katalvlaran/permtour/search"
)

func newSolveCmd(a *app) *cobra.Command {
	def := search.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a low-cost closed tour",
		Long: `Loads a cost matrix, runs the multi-start tabu search and prints the best
tour as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd)
		},
	}
	f := cmd.Flags()
	f.String("matrix", "", "Cost matrix file, YAML or JSON (required)")
	f.Float64("tol", matrix.DefaultSymmetryTol, "Symmetry tolerance for the cost matrix")
	f.Bool("closure", false, "Fill missing (.inf) entries with shortest path costs")
	f.Int("iterations", def.Iterations, "Tabu steps per trajectory")
	f.Int("trajectories", def.Trajectories, "Independent trajectories")
	f.Float64("rcl", def.RCLThreshold, "Relative RCL threshold for the start tour, in [0,1]")
	f.Int("perturbations", def.Perturbations, "Random swaps per perturbation escape")
	f.Int("tenure", def.TabuTenure, "Tabu list length")
	f.Int("samples", def.NeighborSamples, "Neighbours sampled per step")
	f.Int("stall", def.StallLimit, "Non-improving steps before an escape")
	f.String("strategy", def.Strategy, "Local search strategy: first or best")
	f.Uint64("seed", def.Seed, "Random seed, 0 selects the default seed")
	f.Int("parallelism", 0, "Concurrent trajectories, 0 means GOMAXPROCS")
	f.Int("bound-iterations", search.DefaultOptions().BoundIterations, "1-tree lower bound budget, 0 disables the bound")
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command) error {
	if err := a.bind(cmd); err != nil {
		return err
	}
	var cfg search.Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}

	path := a.v.GetString("matrix")
	cm, err := loadModel(path, a.v.GetFloat64("tol"), a.v.GetBool("closure"))
	if err != nil {
		return err
	}
	a.logger.Info("starting search",
		zap.String("matrix", path),
		zap.Int("n", cm.Size()),
		zap.Int("iterations", cfg.Iterations),
		zap.Int("trajectories", cfg.Trajectories),
		zap.String("strategy", cfg.Strategy),
		zap.Uint64("seed", cfg.Seed))

	res, err := search.Run(cmd.Context(), cm, cfg,
		search.WithLogger(a.logger),
		search.WithParallelism(a.v.GetInt("parallelism")),
		search.WithBoundIterations(a.v.GetInt("bound-iterations")))
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err = enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return enc.Close()
}
