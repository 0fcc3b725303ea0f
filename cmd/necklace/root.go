package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/linstald/master-thesis-scripts/logger"
	"github.com/linstald/master-thesis-scripts/necklace"
)

// envPrefix is prepended to every setting read from the environment,
// e.g. NECKLACE_LOG_LEVEL.
const envPrefix = "NECKLACE"

// app holds what the subcommands share once the root command has run.
type app struct {
	log    *zap.Logger
	tokens bool
}

// parse reads a necklace in the encoding selected by --tokens.
func (a *app) parse(s string) *necklace.Necklace {
	if a.tokens {
		return necklace.ParseTokens(s)
	}
	return necklace.Parse(s)
}

// splitTokens splits an alphabet in the encoding selected by --tokens.
func (a *app) splitTokens(s string) []string {
	if a.tokens {
		return necklace.SplitTokens(s)
	}
	return necklace.Tokens(s)
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:          "necklace",
		Short:        "Alpha cuts, separability and generators for necklaces",
		SilenceUsage: true,
	}
	root.PersistentFlags().Int("log-level", logger.InfoLevel, "minimum log level (-1 debug, 0 info, 1 warn, 2 error)")
	root.PersistentFlags().String("log-encoding", logger.EncodingConsole, "log encoding (console or json)")
	root.PersistentFlags().BoolVar(&a.tokens, "tokens", false, "read necklaces as comma-separated colour tokens instead of one letter per bead")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		viper.SetEnvPrefix(envPrefix)
		viper.AutomaticEnv()
		for key, flag := range map[string]string{"LOG_LEVEL": "log-level", "LOG_ENCODING": "log-encoding"} {
			if err := viper.BindPFlag(key, root.PersistentFlags().Lookup(flag)); err != nil {
				return fmt.Errorf("bind %s: %w", flag, err)
			}
		}
		log, err := logger.New()
		if err != nil {
			return err
		}
		a.log = log
		return nil
	}
	root.PersistentPostRun = func(*cobra.Command, []string) {
		_ = a.log.Sync()
	}

	root.AddCommand(
		newSolveCmd(a),
		newGenerateCmd(a),
		newSepCmd(a),
		newSplitCmd(a),
		newCombineCmd(a),
	)
	return root
}
