// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slitsim/entropy"
)

func newEntropyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "entropy p1 [p2 ...]",
		Short: "Print the Shannon entropy of a distribution in bits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("probability %d: %w", i, err)
				}
				p[i] = v
			}
			h, err := entropy.Shannon(p)
			if err != nil {
				return err
			}
			opts.log.Debug().Int("outcomes", len(p)).Float64("max_bits", entropy.MaxBits(len(p))).Msg("entropy computed")

			fmt.Fprintf(cmd.OutOrStdout(), "%.12g bits\n", h)
			return nil
		},
	}
}
