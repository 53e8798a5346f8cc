// SPDX-License-Identifier: MIT

// slitsim runs the double-slit models from the command line.
//
// Usage:
//
//	slitsim validate [--config slitsim.yaml] [--parallel N]
//	slitsim evolve [--steps N] [--quantum]
//	slitsim pattern [--points N] [--wavelength λ] ...
//	slitsim entropy p1 p2 ...
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/slitsim/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// errChecksFailed is returned by validate when at least one check failed.
// The summary has already been printed, so main only sets the exit status.
var errChecksFailed = errors.New("validation checks failed")

// rootOptions carries the global flags and the logger built from them.
type rootOptions struct {
	logLevel string
	pretty   bool
	log      zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "slitsim",
		Short: "Classical, quantum and wave models of the double-slit experiment",
		Long: "slitsim evolves the six-node double-slit system as a Markov chain and as\n" +
			"a quantum walk, computes the two-source interference pattern, and runs\n" +
			"the reference checks of all models.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.log = logger.New(logger.Config{
				Level:  opts.logLevel,
				Pretty: opts.pretty,
				Out:    cmd.ErrOrStderr(),
			})
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error, off")
	f.BoolVar(&opts.pretty, "pretty", false, "Human-readable console logs")

	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newEvolveCmd(opts))
	cmd.AddCommand(newPatternCmd(opts))
	cmd.AddCommand(newEntropyCmd(opts))

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
