package search

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/permtour/tour"
)

// Default values used by DefaultConfig.
const (
	DefaultIterations      = 200
	DefaultTrajectories    = 4
	DefaultRCLThreshold    = 0.2
	DefaultPerturbations   = 3
	DefaultTabuTenure      = 7
	DefaultNeighborSamples = 16
	DefaultStallLimit      = 25
	MaxTrajectories        = 256
)

// Config holds the tunables of Run. The mapstructure keys are the ones the
// permtour CLI binds through viper.
type Config struct {
	Iterations      int     `mapstructure:"iterations" yaml:"iterations" validate:"min=1"`
	Trajectories    int     `mapstructure:"trajectories" yaml:"trajectories" validate:"min=1,max=256"`
	RCLThreshold    float64 `mapstructure:"rcl" yaml:"rcl" validate:"min=0,max=1"`
	Perturbations   int     `mapstructure:"perturbations" yaml:"perturbations" validate:"min=0"`
	TabuTenure      int     `mapstructure:"tenure" yaml:"tenure" validate:"min=0"`
	NeighborSamples int     `mapstructure:"samples" yaml:"samples" validate:"min=1"`
	StallLimit      int     `mapstructure:"stall" yaml:"stall" validate:"min=1"`
	Strategy        string  `mapstructure:"strategy" yaml:"strategy" validate:"oneof=first best"`
	Seed            uint64  `mapstructure:"seed" yaml:"seed"`
}

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// DefaultConfig returns a Config that passes Validate.
func DefaultConfig() Config {
	return Config{
		Iterations:      DefaultIterations,
		Trajectories:    DefaultTrajectories,
		RCLThreshold:    DefaultRCLThreshold,
		Perturbations:   DefaultPerturbations,
		TabuTenure:      DefaultTabuTenure,
		NeighborSamples: DefaultNeighborSamples,
		StallLimit:      DefaultStallLimit,
		Strategy:        tour.FirstImprovement.String(),
	}
}

// Validate checks every field against its declared bounds. Failures wrap
// ErrInvalidConfig.
func (c Config) Validate() error {
	if math.IsNaN(c.RCLThreshold) {
		return fmt.Errorf("%w: rcl is NaN", ErrInvalidConfig)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// LocalSearch returns the parsed Strategy field.
func (c Config) LocalSearch() (tour.Strategy, error) {
	return tour.ParseStrategy(c.Strategy)
}
