package root

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/littletsp/cmd/bench"
	"github.com/katalvlaran/littletsp/cmd/generate"
	"github.com/katalvlaran/littletsp/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "littletsp",
		Short: "Exact and greedy solvers for the travelling salesman problem",
		Long: `littletsp solves travelling salesman instances given as cost matrices.

The exact method is Little's branch-and-bound with matrix reduction; the
greedy method is the nearest-neighbor heuristic. Matrices can be generated,
read from txt/csv/bin/npy files, and both methods can be benchmarked.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if noColor {
				color.NoColor = true
			}
			logger := funcr.New(func(prefix, args string) {
				if prefix != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), prefix, args)
					return
				}
				fmt.Fprintln(cmd.ErrOrStderr(), args)
			}, funcr.Options{Verbosity: verbosity})
			cmd.SetContext(logr.NewContext(cmd.Context(), logger))
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity; repeat for more detail (-vvv traces every search node)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(generate.NewGenerateCommand())
	rootCmd.AddCommand(bench.NewBenchCommand())

	return rootCmd
}
