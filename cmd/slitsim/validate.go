// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slitsim/validation"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var flags struct {
		config   string
		parallel int
		workers  int
	}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the reference checks of every model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := validation.DefaultConfig()
			if flags.config != "" {
				var err error
				if cfg, err = validation.LoadConfig(flags.config); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("parallel") {
				cfg.Parallel = flags.parallel
			}
			if cmd.Flags().Changed("workers") {
				cfg.Wave.Workers = flags.workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts.log.Debug().Interface("config", cfg).Msg("starting validation")
			suite := validation.NewSuite(opts.log, validation.ReferenceChecks(cfg), validation.WithParallel(cfg.Parallel))
			rep := suite.Run(cmd.Context())

			out := cmd.OutOrStdout()
			for _, r := range rep.Results {
				if r.Passed() {
					fmt.Fprintf(out, "PASS %s\n", r.Name)
				} else {
					fmt.Fprintf(out, "FAIL %s: %v\n", r.Name, r.Err)
				}
			}
			fmt.Fprintln(out, rep)

			if !rep.OK() {
				return errChecksFailed
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.config, "config", "", "YAML config overlaid on the reference defaults")
	f.IntVar(&flags.parallel, "parallel", 1, "Number of checks run concurrently")
	f.IntVar(&flags.workers, "workers", 1, "Workers for the interference pattern")

	return cmd
}
