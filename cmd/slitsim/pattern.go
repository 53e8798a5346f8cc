// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slitsim/wave"
)

func newPatternCmd(opts *rootOptions) *cobra.Command {
	p := wave.DefaultParams()
	var workers int

	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Print the normalized two-slit interference pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if workers < 1 {
				return fmt.Errorf("--workers=%d must be >= 1", workers)
			}
			pat, err := wave.Compute(p, wave.WithWorkers(workers))
			if err != nil {
				return err
			}
			opts.log.Info().Int("points", pat.Len()).Int("fringes", len(pat.Fringes())).
				Float64("min", pat.Min()).Msg("pattern computed")

			out := cmd.OutOrStdout()
			for i := range pat.Intensity {
				fmt.Fprintf(out, "%+.6e %.6f\n", pat.Points[i], pat.Intensity[i])
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.SlitDistance, "slit-distance", p.SlitDistance, "Slit separation d (m)")
	f.Float64Var(&p.Wavelength, "wavelength", p.Wavelength, "Wavelength λ (m)")
	f.Float64Var(&p.ScreenDistance, "screen-distance", p.ScreenDistance, "Slit-to-screen distance L (m)")
	f.Float64Var(&p.ScreenWidth, "screen-width", p.ScreenWidth, "Width of the sampled screen (m)")
	f.IntVar(&p.NumPoints, "points", p.NumPoints, "Number of screen samples")
	f.IntVar(&workers, "workers", 1, "Goroutines filling the pattern")

	return cmd
}
