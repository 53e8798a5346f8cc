// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slitsim/evolve"
	"github.com/katalvlaran/slitsim/matrix"
	"github.com/katalvlaran/slitsim/topology"
)

func newEvolveCmd(opts *rootOptions) *cobra.Command {
	var flags struct {
		steps    int
		quantum  bool
		conserve float64
		markdown bool
	}

	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Evolve the double-slit system from the source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			var eopts []evolve.Option
			if flags.conserve > 0 {
				eopts = append(eopts, evolve.WithConservationCheck(flags.conserve))
			}

			if flags.quantum {
				t := topology.QuantumDoubleSlit()
				m, err := matrix.ComplexFromTopology(t)
				if err != nil {
					return err
				}
				s0, err := evolve.CBasis(t.Len(), 0)
				if err != nil {
					return err
				}
				res, err := evolve.Quantum(m, s0, flags.steps, eopts...)
				if err != nil {
					return err
				}
				opts.log.Info().Str("model", "quantum").Int("steps", flags.steps).
					Float64("total", res.Total).Msg("evolved")

				w := newTable(table.Row{"node", "kind", "amplitude", "probability"}, 3, 4)
				for i, n := range t.Nodes() {
					a := res.Amplitudes[i]
					w.AppendRow(table.Row{n.ID, n.Kind, fmt.Sprintf("%+.6f%+.6fi", real(a), imag(a)),
						fmt.Sprintf("%.6f", res.Probabilities[i])})
				}
				w.AppendFooter(table.Row{"total", "", "", fmt.Sprintf("%.6f", res.Total)})
				fmt.Fprintln(out, renderTable(w, flags.markdown))
				return nil
			}

			t := topology.ClassicalDoubleSlit()
			m, err := matrix.FromTopology(t)
			if err != nil {
				return err
			}
			s0, err := evolve.Basis(t.Len(), 0)
			if err != nil {
				return err
			}
			s, err := evolve.Probabilistic(m, s0, flags.steps, eopts...)
			if err != nil {
				return err
			}
			opts.log.Info().Str("model", "probabilistic").Int("steps", flags.steps).Msg("evolved")

			w := newTable(table.Row{"node", "kind", "probability"}, 3)
			for i, n := range t.Nodes() {
				w.AppendRow(table.Row{n.ID, n.Kind, fmt.Sprintf("%.6f", s[i])})
			}
			w.AppendFooter(table.Row{"total", "", fmt.Sprintf("%.6f", floats.Sum(s))})
			fmt.Fprintln(out, renderTable(w, flags.markdown))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.steps, "steps", 2, "Number of evolution steps")
	f.BoolVar(&flags.quantum, "quantum", false, "Evolve complex amplitudes instead of probabilities")
	f.BoolVar(&flags.markdown, "markdown", false, "Render the state as a Markdown table")
	f.Float64Var(&flags.conserve, "check-conservation", 0, "Fail when total probability drifts from 1 by more than this (0 disables)")

	return cmd
}
