package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/permtour/matrix"
	"github.com/katalvlaran/permtour/tour"
)

// evaluation is the YAML document printed by eval.
type evaluation struct {
	Tour    []int   `yaml:"tour"`
	Fitness float64 `yaml:"fitness"`
}

func newEvalCmd(a *app) *cobra.Command {
	var (
		path    string
		tol     float64
		closure bool
		order   []int
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print the closed-tour cost of a given order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadModel(path, tol, closure)
			if err != nil {
				return err
			}
			if err = tour.ValidatePermutation(order, cm.Size()); err != nil {
				return fmt.Errorf("tour %v: %w", order, err)
			}
			f, err := tour.Fitness(cm, order)
			if err != nil {
				return err
			}

			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(evaluation{Tour: order, Fitness: f})
		},
	}
	cmd.Flags().StringVar(&path, "matrix", "", "Cost matrix file, YAML or JSON (required)")
	cmd.Flags().Float64Var(&tol, "tol", matrix.DefaultSymmetryTol, "Symmetry tolerance for the cost matrix")
	cmd.Flags().BoolVar(&closure, "closure", false, "Fill missing (.inf) entries with shortest path costs")
	cmd.Flags().IntSliceVar(&order, "tour", nil, "Comma-separated permutation, e.g. 0,2,1,3 (required)")
	_ = cmd.MarkFlagRequired("matrix")
	_ = cmd.MarkFlagRequired("tour")

	return cmd
}
