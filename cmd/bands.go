package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/stationmap/internal/propagation"
)

var (
	bandsAt             string
	bandsMinReliability int
	bandsFutureHours    int
)

var bandsCmd = &cobra.Command{
	Use:   "bands [FILE|-]",
	Short: "Recommend HF bands from a 24-hour reliability table",
	Long: `Reads a prediction table (a JSON array of 24 objects mapping MHz to a
reliability fraction, indexed by UTC hour) from FILE or stdin and lists the
frequencies usable now and over the coming hours.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseReference(bandsAt, time.Now())
		if err != nil {
			return err
		}

		opts := cfg.Propagation
		if cmd.Flags().Changed("min-reliability") {
			opts.MinReliabilityPct = bandsMinReliability
		}
		if cmd.Flags().Changed("future-hours") {
			opts.FutureHours = bandsFutureHours
		}

		data, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		table, err := propagation.ParseTable(data)
		if err != nil {
			return eris.Wrap(err, "bands: parse table")
		}

		sel, err := propagation.SelectBands(table, ref, opts)
		if err != nil {
			return eris.Wrap(err, "bands: select")
		}

		zap.L().Debug("bands selected",
			zap.Time("reference", ref),
			zap.Int("min_reliability_pct", opts.MinReliabilityPct),
			zap.Int("future_hours", opts.FutureHours),
			zap.Int("now", len(sel.Now)),
			zap.Int("future", len(sel.Future)),
		)

		return render(cmd.OutOrStdout(), outputFormat, sel, func(w io.Writer) {
			formatSelection(w, ref, sel)
		})
	},
}

// parseReference parses an RFC 3339 instant, or returns now when s is empty.
func parseReference(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "parse --at %q", s)
	}
	return t.UTC(), nil
}

func formatSelection(w io.Writer, ref time.Time, sel propagation.Selection) {
	fmt.Fprintf(w, "=== Now (%s) ===\n", propagation.HourLabel(ref.UTC().Hour()))
	if len(sel.Now) == 0 {
		fmt.Fprintln(w, "  no band meets the reliability threshold")
	}
	for _, r := range sel.Now {
		fmt.Fprintf(w, "  %-9s %8.3f MHz %4d%%\n", r.Band, r.FrequencyMHz, r.ReliabilityPct)
	}

	groups := propagation.GroupByHour(sel.Future)
	if len(groups) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Upcoming ===")
	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", g.Time)
		for _, r := range g.Bands {
			fmt.Fprintf(w, "  %-9s %8.3f MHz %4d%%\n", r.Band, r.FrequencyMHz, r.ReliabilityPct)
		}
	}
}

var bandplanCmd = &cobra.Command{
	Use:   "bandplan",
	Short: "List the HF amateur bands used for labelling",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bands := propagation.Bands()
		return render(cmd.OutOrStdout(), outputFormat, bands, func(w io.Writer) {
			fmt.Fprintf(w, "%-5s %10s %10s\n", "BAND", "LOW MHZ", "HIGH MHZ")
			for _, b := range bands {
				fmt.Fprintf(w, "%-5s %10.3f %10.3f\n", b.Name, b.LowMHz, b.HighMHz)
			}
		})
	},
}

func init() {
	bandsCmd.Flags().StringVar(&bandsAt, "at", "", "reference instant in RFC 3339 (default: now)")
	bandsCmd.Flags().IntVar(&bandsMinReliability, "min-reliability", propagation.DefaultMinReliabilityPct, "minimum reliability percentage (default: propagation.min_reliability_pct)")
	bandsCmd.Flags().IntVar(&bandsFutureHours, "future-hours", propagation.DefaultFutureHours, "hours to look ahead (default: propagation.future_hours)")
	rootCmd.AddCommand(bandsCmd, bandplanCmd)
}
