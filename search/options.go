package search

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/permtour/tour"
)

// Options configures Run beyond the numeric Config.
//
// Logger      - destination for progress records. Default zap.NewNop().
// Parallelism - maximum number of trajectories running at once.
//
//	Values ≤ 0 mean GOMAXPROCS.
//
// BoundIterations - subgradient budget of the 1-tree lower bound reported
//
//	in Result. 0 skips the bound.
type Options struct {
	Logger          *zap.Logger
	Parallelism     int
	BoundIterations int
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelism bounds the number of concurrently running trajectories.
func WithParallelism(p int) Option {
	return func(o *Options) {
		o.Parallelism = p
	}
}

// WithBoundIterations sets the lower-bound budget; 0 disables the bound.
func WithBoundIterations(iters int) Option {
	return func(o *Options) {
		o.BoundIterations = iters
	}
}

// DefaultOptions returns the Options used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Logger:          zap.NewNop(),
		Parallelism:     runtime.GOMAXPROCS(0),
		BoundIterations: tour.DefaultBoundConfig().MaxIter,
	}
}
