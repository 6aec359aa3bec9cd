package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsvensson/h2si/internal/roundtrip"
	"github.com/spf13/cobra"
)

func (a *app) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Round-trip random colours through both encodings and report the error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings
			report, err := roundtrip.Run(cmd.Context(), roundtrip.Options{Samples: s.Samples, Seed: s.Seed})
			if err != nil {
				return err
			}

			a.printReport(cmd.OutOrStdout(), report)

			if !report.Within(s.Tolerance) {
				return fmt.Errorf("round-trip error exceeds tolerance %g", s.Tolerance)
			}
			return nil
		},
	}

	cmd.Flags().Int("samples", 100_000, "number of random colours")
	cmd.Flags().Uint64("seed", 1, "random seed")
	cmd.Flags().Float64("tolerance", 1e-10, "largest acceptable absolute error")
	a.bind("samples", cmd.Flags().Lookup("samples"))
	a.bind("seed", cmd.Flags().Lookup("seed"))
	a.bind("tolerance", cmd.Flags().Lookup("tolerance"))
	return cmd
}

func (a *app) printReport(w io.Writer, r roundtrip.Report) {
	fmt.Fprintf(w, "%d samples\n\n", r.Samples)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "path\tchannel\tmax\tmean\tstddev\tp99")
	for _, p := range []struct {
		name string
		rep  roundtrip.PathReport
	}{
		{"complex", r.Complex},
		{"components", r.Components},
	} {
		for _, c := range []struct {
			name  string
			stats roundtrip.Stats
		}{
			{"H", p.rep.H}, {"S", p.rep.S}, {"I", p.rep.I},
		} {
			fmt.Fprintf(tw, "%s\t%s\t%.3e\t%.3e\t%.3e\t%.3e\n",
				p.name, c.name, c.stats.Max, c.stats.Mean, c.stats.StdDev, c.stats.P99)
		}
	}
	tw.Flush()

	fmt.Fprintf(w, "\ncomplex %s, components %s, equivalence %.3e\n",
		r.Complex.Elapsed, r.Components.Elapsed, r.Equivalence)
}
