// Command zigzag walks a square grid along its anti-diagonals and prints the
// signed sum, negating every prime it visits.
//
// With no flags it runs over the built-in 3×3 sample and prints:
//
//	Zigzag sum = 11
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/zigzag/config"
	"github.com/katalvlaran/zigzag/zigzag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags holds the command-line switches of one invocation.
type rootFlags struct {
	configPath string
	order      string
	verbose    bool
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals so tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	var (
		flags  rootFlags
		cfg    *config.Config
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "zigzag",
		Short: "Signed zigzag sum over a square integer grid",
		Long: `zigzag visits a square grid one anti-diagonal at a time, alternating
direction on each diagonal, and sums the cells with every prime negated.

Without --config it uses the sample grid {{1,2,3},{4,5,6},{7,8,9}}.
--order legacy replays the historical walk that skipped even diagonals.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err = newLogger(cmd, cfg.Logging.Level, flags.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "YAML file with matrix, order and logging settings")
	cmd.Flags().StringVar(&flags.order, "order", "", "walk order: classic or legacy (overrides config)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every visited cell")

	return cmd
}

// loadConfig resolves the run configuration: defaults, then --config, then
// an explicit --order.
func loadConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("order") {
		cfg.Order = flags.order
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// run walks the configured grid and prints the result line.
func run(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) error {
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return err
	}

	logger.Debug("walking grid",
		zap.Int("size", grid.Size()),
		zap.Stringer("order", mode),
	)

	sum, err := zigzag.Sum(grid,
		zigzag.WithMode(mode),
		zigzag.WithOnVisit(func(v zigzag.Visit) error {
			logger.Debug("visit",
				zap.Int("step", v.Step),
				zap.Int("diagonal", v.Diagonal),
				zap.Int("row", v.Row),
				zap.Int("col", v.Col),
				zap.Int("value", v.Value),
				zap.Bool("prime", v.Prime),
				zap.Int("contribution", v.Contribution),
			)
			return nil
		}),
	)
	if err != nil {
		return err
	}

	logger.Debug("walk complete", zap.Int("sum", sum))
	fmt.Fprintf(cmd.OutOrStdout(), "Zigzag sum = %d\n", sum)

	return nil
}

// newLogger builds a production JSON logger that writes to the command's
// stderr at the configured level; --verbose forces debug.
func newLogger(cmd *cobra.Command, levelName string, verbose bool) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if levelName != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(levelName))
		if err != nil {
			return nil, err
		}
		level.SetLevel(parsed)
	}
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(cmd.ErrOrStderr()), level)

	return zap.New(core), nil
}
