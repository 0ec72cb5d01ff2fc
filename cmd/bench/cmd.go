package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	tspbench "github.com/katalvlaran/littletsp/bench"
)

// Config collects the flags of the bench command.
type Config struct {
	Sizes     []int
	Runs      int
	Seed      int64
	Symmetric bool
	Workers   int
	Timeout   time.Duration
	Plot      string
	Metrics   string
}

func NewBenchCommand() *cobra.Command {
	d := tspbench.DefaultOptions()
	cfg := Config{
		Sizes:   d.Sizes,
		Runs:    d.Runs,
		Seed:    d.Seed,
		Workers: d.Workers,
		Timeout: d.Timeout,
	}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compares the exact and greedy methods over several matrix sizes",
		Long: `Runs both methods on one random matrix per size and prints average cost,
average time and the deviation of the greedy cost from the optimum. For instance:

  littletsp bench --sizes 4,6,8,10,12 --runs 5 --plot bench.png
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	flags := cmd.Flags()
	flags.IntSliceVar(&cfg.Sizes, "sizes", cfg.Sizes, "matrix sizes to benchmark")
	flags.IntVar(&cfg.Runs, "runs", cfg.Runs, "repetitions per size and method")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generator seed")
	flags.BoolVar(&cfg.Symmetric, "symmetric", false, "benchmark symmetric matrices")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent solves")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "cutoff of one exact solve before falling back to greedy (0 = none)")
	flags.StringVar(&cfg.Plot, "plot", "", "save time and cost charts to this file (.png, .svg, .pdf)")
	flags.StringVar(&cfg.Metrics, "metrics", "", "write Prometheus text metrics to this file")

	return cmd
}

// Run executes the benchmark described by cfg and writes the table to w.
func Run(ctx context.Context, w io.Writer, cfg Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logr.FromContextOrDiscard(ctx)

	rep, err := tspbench.Run(ctx,
		tspbench.WithSizes(cfg.Sizes...),
		tspbench.WithRuns(cfg.Runs),
		tspbench.WithSeed(cfg.Seed),
		tspbench.WithSymmetric(cfg.Symmetric),
		tspbench.WithWorkers(cfg.Workers),
		tspbench.WithTimeout(cfg.Timeout),
		tspbench.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if err = tspbench.WriteTable(w, rep); err != nil {
		return err
	}

	if cfg.Plot != "" {
		if err = tspbench.Plot(rep, cfg.Plot); err != nil {
			return fmt.Errorf("error writing plot (%s): %w", cfg.Plot, err)
		}
		logger.V(1).Info("plot written", "path", cfg.Plot)
	}
	if cfg.Metrics != "" {
		if err = rep.Metrics.WriteTextfile(cfg.Metrics); err != nil {
			return fmt.Errorf("error writing metrics (%s): %w", cfg.Metrics, err)
		}
		logger.V(1).Info("metrics written", "path", cfg.Metrics)
	}

	return nil
}
