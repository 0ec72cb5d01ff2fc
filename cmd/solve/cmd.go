package solve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/render"
	"github.com/katalvlaran/littletsp/tsp"
)

// Config collects the flags of the solve command.
type Config struct {
	In          string
	Size        int
	Seed        int64
	Symmetric   bool
	Method      string
	PrintMatrix bool
	Timeout     time.Duration
}

func NewSolveCommand() *cobra.Command {
	cfg := Config{Size: 5, Method: "both"}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solves a TSP instance read from a file or generated at random",
		Long: `Solves a TSP instance with the exact method, the greedy method or both.
The matrix is read from --in (txt, csv, bin or npy, by extension) or generated
from --size/--seed/--symmetric. For instance:

  littletsp solve --size 8 --seed 52 --method both --print-matrix
  littletsp solve --in cities.csv --method exact -vv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	bindFlags(cmd.Flags(), &cfg)
	cmd.MarkFlagsMutuallyExclusive("in", "size")

	return cmd
}

func bindFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.StringVar(&cfg.In, "in", "", "read the cost matrix from this file")
	flags.IntVar(&cfg.Size, "size", cfg.Size, "number of cities of a generated matrix")
	flags.Int64Var(&cfg.Seed, "seed", 0, "generator seed (0 selects the default seed)")
	flags.BoolVar(&cfg.Symmetric, "symmetric", false, "generate a symmetric matrix")
	flags.StringVar(&cfg.Method, "method", cfg.Method, "exact, greedy or both")
	flags.BoolVar(&cfg.PrintMatrix, "print-matrix", false, "print the cost matrix before solving")
	flags.DurationVar(&cfg.Timeout, "timeout", 0, "abort the exact search after this long (0 = no limit)")
}

// ParseMethods maps the --method value to the methods to run.
func ParseMethods(s string) ([]tsp.Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "little", "greedy", "nearest":
		return []tsp.Method{tsp.ParseMethod(s)}, nil
	case "both", "":
		return []tsp.Method{tsp.MethodExact, tsp.MethodGreedy}, nil
	default:
		return nil, fmt.Errorf("unknown method %q: want exact, greedy or both", s)
	}
}

// Run loads or generates the matrix described by cfg, solves it and writes
// the report to w.
func Run(ctx context.Context, w io.Writer, cfg Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logr.FromContextOrDiscard(ctx)

	methods, err := ParseMethods(cfg.Method)
	if err != nil {
		return err
	}
	m, err := loadMatrix(cfg)
	if err != nil {
		return err
	}
	logger.V(1).Info("matrix ready", "cities", m.Rows(), "source", source(cfg))

	if cfg.PrintMatrix {
		if err = render.Matrix(w, m); err != nil {
			return err
		}
	}

	for _, method := range methods {
		start := time.Now()
		res, timedOut, err := solveWithCutoff(ctx, m, method, cfg.Timeout, logger)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("%s solve: %w", method, err)
		}
		logger.V(1).Info("solved", "method", method.String(), "cost", res.Cost,
			"nodes", res.Stats.Nodes, "pruned", res.Stats.Pruned, "elapsed", elapsed, "timedOut", timedOut)

		if timedOut {
			if err = render.Fallback(w, method, cfg.Timeout); err != nil {
				return err
			}
			method = tsp.MethodGreedy
		}
		if err = render.Solution(w, method, res, elapsed); err != nil {
			return err
		}
	}

	return nil
}

// solveWithCutoff runs one method under the optional timeout. An exact
// search cut off by the timeout is replaced by the greedy tour and reported
// as timedOut; cancellation of ctx itself is returned as an error.
func solveWithCutoff(ctx context.Context, m matrix.Matrix, method tsp.Method, timeout time.Duration, logger logr.Logger) (tsp.Result, bool, error) {
	solveCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		solveCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	res, err := tsp.Solve(m, method, searchOptions(solveCtx, logger)...)
	if !errors.Is(err, tsp.ErrCanceled) || ctx.Err() != nil {
		return res, false, err
	}
	logger.V(1).Info("search cut off, falling back to greedy", "method", method.String(), "timeout", timeout)
	res, err = tsp.Solve(m, tsp.MethodGreedy)

	return res, true, err
}

func loadMatrix(cfg Config) (*matrix.Dense, error) {
	if cfg.In != "" {
		m, err := matrix.ImportFile(cfg.In)
		if err != nil {
			return nil, fmt.Errorf("error reading matrix file (%s): %w", cfg.In, err)
		}
		if _, err = matrix.ValidateCosts(m); err != nil {
			return nil, fmt.Errorf("invalid matrix file (%s): %w", cfg.In, err)
		}
		return m, nil
	}

	return matrix.Random(cfg.Size, cfg.Seed, cfg.Symmetric)
}

func source(cfg Config) string {
	if cfg.In != "" {
		return cfg.In
	}

	return fmt.Sprintf("random(seed=%d, symmetric=%t)", cfg.Seed, cfg.Symmetric)
}

// searchOptions routes the search hooks to the logger: incumbents at V(2),
// every expanded node at V(3).
func searchOptions(ctx context.Context, logger logr.Logger) []tsp.Option {
	opts := []tsp.Option{tsp.WithContext(ctx)}
	if l := logger.V(2); l.Enabled() {
		opts = append(opts, tsp.WithOnImprove(func(cost float64, tour []int) {
			l.Info("new best tour", "cost", cost, "route", render.Path(tour))
		}))
	}
	if l := logger.V(3); l.Enabled() {
		opts = append(opts, tsp.WithOnNode(func(ev tsp.NodeEvent) {
			l.Info("node",
				"depth", ev.Depth,
				"edge", render.CityName(ev.From)+"→"+render.CityName(ev.To),
				"reduction", ev.Reduction,
				"cost", ev.Cost,
				"bound", ev.Bound,
				"pruned", ev.Pruned)
		}))
	}

	return opts
}
