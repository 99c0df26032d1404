package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/permtour/matrix"
)

// envPrefix namespaces environment overrides, e.g. PERMTOUR_ITERATIONS.
const envPrefix = "PERMTOUR"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	logger     *zap.Logger
	logLevel   string
	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "permtour",
		Short: "Closed-tour permutation search over a cost matrix",
		Long: `permtour builds, repairs and improves closed tours over a symmetric cost
matrix with greedy randomized construction, swap local search and a
multi-start tabu search.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Optional YAML config file with search settings")

	root.AddCommand(newSolveCmd(a), newEvalCmd(a), newVersionCmd())

	return root
}

// newLogger builds a production zap logger writing JSON to stderr, so that
// command output on stdout stays machine-readable.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.Sampling = nil

	return cfg.Build()
}

// bind wires cmd's flags, PERMTOUR_* variables and the optional config file
// into a.v. Explicit flags win over the file, the file wins over defaults.
func (a *app) bind(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if a.configPath == "" {
		return nil
	}
	a.v.SetConfigFile(a.configPath)
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", a.configPath, err)
	}
	a.logger.Debug("config loaded", zap.String("path", a.v.ConfigFileUsed()))

	return nil
}

// loadModel reads the matrix at path and validates it as a cost model. With
// closure set, missing (.inf) entries are first filled by MetricClosure.
func loadModel(path string, tol float64, closure bool) (*matrix.CostMatrix, error) {
	if !closure {
		return matrix.LoadCostMatrix(path, tol)
	}
	d, err := matrix.LoadDense(path)
	if err != nil {
		return nil, err
	}
	if d, err = matrix.MetricClosure(d); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return matrix.NewCostMatrix(d, tol)
}
