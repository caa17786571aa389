package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/dosecalc/internal/config"
	"github.com/rshade/dosecalc/internal/consumption"
	"github.com/rshade/dosecalc/internal/logging"
)

// NicotineParams holds the flags of the nicotine command.
// Exported for testing.
type NicotineParams struct {
	Percent  float64
	Capacity float64
	Days     float64
	Output   string
}

// NewNicotineCmd creates the "nicotine" command that converts a vape into
// daily nicotine and a pack-per-day equivalent.
func NewNicotineCmd() *cobra.Command {
	var params NicotineParams

	cmd := &cobra.Command{
		Use:   "nicotine",
		Short: "Calculate daily nicotine and pack-per-day equivalent",
		Long: `Calculate nicotine intake from a vape:

  mg/mL         = percent × 10
  total mg      = mg/mL × capacity (mL)
  daily mg      = total mg ÷ days to finish
  pack-per-day  = daily mg ÷ 21

Usage periods under one day are accepted and flagged with a warning.`,
		Example: `  # 5% nicotine, 18 mL, finished in a week
  dosecalc nicotine

  # 3% nicotine, 2 mL a day
  dosecalc nicotine --percent 3 --capacity 2 --days 1 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeNicotine(cmd, params)
		},
	}

	cmd.Flags().Float64Var(&params.Percent, "percent", consumption.DefaultNicotinePercent,
		"Nicotine strength in percent (0-50)")
	cmd.Flags().Float64Var(&params.Capacity, "capacity", consumption.DefaultCapacityMl, "Vape capacity in mL")
	cmd.Flags().Float64Var(&params.Days, "days", consumption.DefaultDaysToFinish, "Days to finish the vape")
	cmd.Flags().StringVarP(&params.Output, "output", "o", config.OutputFormatTable,
		"Output format (table, json, ndjson)")

	return cmd
}

// NicotineOverridesFromFlags collects the explicitly set nicotine flags.
// Exported for testing.
func NicotineOverridesFromFlags(cmd *cobra.Command, params NicotineParams) consumption.NicotineOverrides {
	var o consumption.NicotineOverrides
	flags := cmd.Flags()
	if flags.Changed("percent") {
		o.Percent = &params.Percent
	}
	if flags.Changed("capacity") {
		o.CapacityMl = &params.Capacity
	}
	if flags.Changed("days") {
		o.Days = &params.Days
	}
	return o
}

func executeNicotine(cmd *cobra.Command, params NicotineParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	format, err := resolveOutputFormat(params.Output, cmd.Flags().Changed("output"))
	if err != nil {
		return inputError(err)
	}

	preset := config.GetGlobalConfig().Nicotine.Input()
	in := NicotineOverridesFromFlags(cmd, params).Apply(preset)

	report, err := consumption.EstimateNicotine(in)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Msg("invalid nicotine input")
		return inputError(err)
	}

	if report.Warning != "" {
		log.Warn().Ctx(ctx).Float64("days_to_finish", in.DaysToFinish).Msg(report.Warning)
		cmd.PrintErrf("Warning: %s\n", report.Warning)
	}

	log.Info().Ctx(ctx).
		Str("operation", "nicotine").
		Float64("packs_per_day", report.Result.PacksPerDayEquivalent).
		Dur("duration_ms", time.Since(start)).
		Msg("nicotine consumption computed")

	return renderNicotineReport(cmd.OutOrStdout(), format, report)
}

func renderNicotineReport(w io.Writer, format string, report consumption.NicotineReport) error {
	if format != config.OutputFormatTable {
		return renderJSON(w, format, report)
	}

	writeHeading(w, "Nicotine Consumption")
	for _, h := range report.Headlines {
		fmt.Fprintln(w, h)
	}
	fmt.Fprintln(w)

	if err := writeDetails(w, report.Details); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Calculation:")
	for _, c := range report.Calculations {
		fmt.Fprintf(w, "  %s\n", c)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, report.Visual)
	return nil
}
