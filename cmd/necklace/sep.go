package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/linstald/master-thesis-scripts/batch"
)

type sepOptions struct {
	workers int
	out     string
}

func newSepCmd(a *app) *cobra.Command {
	var opts sepOptions
	cmd := &cobra.Command{
		Use:   "sep [FILE|DIR]",
		Short: "Compute the separability of every necklace of a file",
		Long: `Compute the separability of every necklace of a file, one necklace per
line, and write "<sep>,<necklace>" lines in input order.

Without an argument (or with "-") necklaces are read from standard input.
For a directory, every file whose name starts with "neck" is scanned into
DIR/sep/sep_<name>; --out is ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := "-"
			if len(args) == 1 {
				in = args[0]
			}
			return a.runSep(cmd, in, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "concurrent workers (0 uses every CPU)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default standard output)")
	return cmd
}

func (a *app) runSep(cmd *cobra.Command, in string, opts sepOptions) (err error) {
	ctx := cmd.Context()
	bopts := []batch.Option{batch.WithWorkers(opts.workers), batch.WithLogger(a.log)}
	if a.tokens {
		bopts = append(bopts, batch.WithTokens())
	}

	var r io.Reader = cmd.InOrStdin()
	if in != "-" {
		info, err := os.Stat(in)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return batch.ScanDir(ctx, in, bopts...)
		}
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("sep: %w", err)
		}
		defer func() { err = multierr.Append(err, f.Close()) }()
		w = f
	}
	return batch.ScanSeparability(ctx, r, w, bopts...)
}
