package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linstald/master-thesis-scripts/batch"
)

func newSplitCmd(a *app) *cobra.Command {
	var chunk int
	cmd := &cobra.Command{
		Use:   "split FILE OUTDIR",
		Short: "Split a necklace file into chunks of at most --chunk lines",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := batch.Split(args[0], args[1], chunk)
			if err != nil {
				return err
			}
			a.log.Info("split done", zap.String("file", args[0]), zap.Int("chunks", len(files)))
			return nil
		},
	}
	cmd.Flags().IntVar(&chunk, "chunk", batch.DefaultChunk, "lines per chunk file")
	return cmd
}

func newCombineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "combine DIR OUT",
		Short: "Concatenate the *.txt files of a directory in name order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := batch.Combine(args[0], args[1]); err != nil {
				return err
			}
			a.log.Info("combine done", zap.String("dir", args[0]), zap.String("out", args[1]))
			return nil
		},
	}
}
