package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linstald/master-thesis-scripts/generator"
	"github.com/linstald/master-thesis-scripts/necklace"
)

type generateOptions struct {
	colours   int
	count     int
	seed      int64
	pump      bool
	enumerate string
	sep       int
}

func newGenerateCmd(a *app) *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random irreducible necklaces or enumerate all necklaces over an alphabet",
		Example: `  necklace generate --colours 8 --count 10 --pump
  necklace generate --enumerate abc --sep 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.enumerate != "" {
				limit := 0
				if cmd.Flags().Changed("count") {
					limit = opts.count
				}
				return a.runEnumerate(cmd, opts, limit)
			}
			return a.runRandom(cmd, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.colours, "colours", "n", 6, "number of colours of random necklaces")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 1, "number of necklaces to print (all when enumerating, unless set)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&opts.pump, "pump", false, "repeat every bead a random number of times")
	cmd.Flags().StringVar(&opts.enumerate, "enumerate", "", "enumerate the necklaces over this alphabet instead")
	cmd.Flags().IntVar(&opts.sep, "sep", 1, "separability slack of the enumeration length bound")
	return cmd
}

func (a *app) runRandom(cmd *cobra.Command, opts generateOptions) error {
	rng := generator.WithRand(rand.New(rand.NewSource(opts.seed)))
	out := cmd.OutOrStdout()
	for i := 0; i < opts.count; i++ {
		beads, err := generator.RandomIrreducible(opts.colours, rng)
		if err != nil {
			return err
		}
		if opts.pump {
			beads = generator.Pump(beads, rng)
		}
		fmt.Fprintln(out, necklace.New(beads))
	}
	a.log.Debug("generated random necklaces", zap.Int("count", opts.count), zap.Int("colours", opts.colours), zap.Int64("seed", opts.seed))
	return nil
}

// runEnumerate prints at most limit necklaces; limit 0 prints all.
func (a *app) runEnumerate(cmd *cobra.Command, opts generateOptions, limit int) error {
	out := cmd.OutOrStdout()
	printed := 0
	for beads := range generator.Enumerate(a.splitTokens(opts.enumerate), opts.sep) {
		if limit > 0 && printed == limit {
			break
		}
		fmt.Fprintln(out, necklace.New(beads))
		printed++
	}
	a.log.Debug("enumerated necklaces", zap.Int("count", printed), zap.String("alphabet", opts.enumerate))
	return nil
}
