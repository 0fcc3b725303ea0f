package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linstald/master-thesis-scripts/alphacut"
	"github.com/linstald/master-thesis-scripts/necklace"
)

type solveOptions struct {
	alpha           map[string]int
	bruteForceLimit int
}

func newSolveCmd(a *app) *cobra.Command {
	var opts solveOptions
	cmd := &cobra.Command{
		Use:   "solve NECKLACE",
		Short: "Compute the alpha cut and the negalpha cut of a necklace",
		Long: `Compute the alpha cut and the negalpha cut of a necklace.

A necklace is written as a string of letters, one bead per letter
("aabbcabc"); other characters are ignored. With --tokens it is read
as comma-separated colour tokens ("1,2,1,3").
Colours missing from --alpha get the value 1. Both cuts are checked
before they are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringToIntVar(&opts.alpha, "alpha", nil, "alpha values as colour=count pairs, e.g. a=2,b=1")
	cmd.Flags().IntVar(&opts.bruteForceLimit, "brute-force-limit", alphacut.DefaultBruteForceLimit,
		"largest colour count whose irreducible necklaces are solved by enumeration")
	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, text string, opts solveOptions) error {
	nk := a.parse(text)
	alpha := necklace.UnitAlpha(nk)
	for c, v := range opts.alpha {
		if !nk.HasColour(c) {
			return fmt.Errorf("solve: colour %q does not occur in %s", c, nk)
		}
		alpha[c] = v
	}

	if nk.NumColours() <= necklace.MaxSeparabilityColours {
		if ok, serr := nk.IsSeparable(); serr == nil && !ok {
			a.log.Warn("necklace is not n-separable, an alpha cut may not exist", zap.String("necklace", nk.String()))
		}
	}

	s := alphacut.New(
		alphacut.WithLogger(a.log),
		alphacut.WithBruteForceLimit(opts.bruteForceLimit),
	)
	cut, negCut, err := s.FindAlphaCut(nk, alpha)
	if err != nil {
		return err
	}
	if err := nk.Verify(cut, alpha); err != nil {
		return fmt.Errorf("solve: alpha cut %v: %w", cut, err)
	}
	if err := nk.Verify(negCut, nk.NegAlpha(alpha)); err != nil {
		return fmt.Errorf("solve: negalpha cut %v: %w", negCut, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "necklace:     %s\n", nk)
	fmt.Fprintf(out, "alpha cut:    %v\n", cut)
	fmt.Fprintf(out, "negalpha cut: %v\n", negCut)
	return nil
}
