package generate

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/littletsp/matrix"
)

// Config collects the flags of the generate command.
type Config struct {
	Size      int
	Seed      int64
	Symmetric bool
	Out       string
}

func NewGenerateCommand() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a random cost matrix",
		Long: `Generates a random cost matrix with integer costs in [1, 100) and an
infinite diagonal. Without --out the matrix is printed as text; otherwise
the format follows the file extension (.txt, .csv, .bin, .npy). For instance:

  littletsp generate --size 10 --seed 52 --symmetric --out cities.csv
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Size < 1 {
				return fmt.Errorf("invalid size %d: must be >= 1", cfg.Size)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&cfg.Size, "size", 0, "number of cities")
	flags.Int64Var(&cfg.Seed, "seed", 0, "generator seed (0 selects the default seed)")
	flags.BoolVar(&cfg.Symmetric, "symmetric", false, "mirror the upper triangle into the lower one")
	flags.StringVar(&cfg.Out, "out", "", "write the matrix to this file")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

// Run generates the matrix described by cfg and writes it to cfg.Out, or
// as text to w when no file is given.
func Run(ctx context.Context, w io.Writer, cfg Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logr.FromContextOrDiscard(ctx)

	m, err := matrix.Random(cfg.Size, cfg.Seed, cfg.Symmetric)
	if err != nil {
		return err
	}
	if cfg.Out == "" {
		return matrix.Export(w, m, matrix.FormatText)
	}

	if err = matrix.ExportFile(cfg.Out, m); err != nil {
		return fmt.Errorf("error writing matrix file (%s): %w", cfg.Out, err)
	}
	logger.V(1).Info("matrix written", "path", cfg.Out, "size", cfg.Size, "seed", cfg.Seed, "symmetric", cfg.Symmetric)
	_, err = fmt.Fprintf(w, "wrote %dx%d matrix to %s\n", cfg.Size, cfg.Size, cfg.Out)

	return err
}
