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

// DrinksParams holds the flags of the drinks command.
// Exported for testing.
type DrinksParams struct {
	Beverage string
	Volume   float64
	Unit     string
	ABV      float64
	Quantity int
	Output   string
}

// NewDrinksCmd creates the "drinks" command that converts a beverage into
// standard drinks. Flags that are not set fall back to the config presets.
func NewDrinksCmd() *cobra.Command {
	var params DrinksParams

	cmd := &cobra.Command{
		Use:   "drinks",
		Short: "Calculate standard alcoholic drinks",
		Long: `Calculate standard drinks as volume (mL) × ABV ÷ 17.05, multiplied by the
number of drinks.

Choosing --beverage without --abv uses the beverage's default ABV
(beer 0.05, wine 0.12, spirits 0.40, cocktail 0.15, custom 0.05).
Choosing --unit without --volume uses the unit preset (330 mL, 0.33 L, 12 fl oz).`,
		Example: `  # One 330 mL beer
  dosecalc drinks

  # Two large glasses of wine
  dosecalc drinks --beverage wine --volume 250 --quantity 2

  # Half a liter of 8% craft beer as JSON
  dosecalc drinks --unit L --volume 0.5 --abv 0.08 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeDrinks(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Beverage, "beverage", string(consumption.BeverageBeer),
		"Beverage category (beer, wine, spirits, cocktail, custom)")
	cmd.Flags().Float64Var(&params.Volume, "volume", consumption.DefaultVolumeMl, "Volume of one drink in --unit")
	cmd.Flags().StringVar(&params.Unit, "unit", string(consumption.UnitMilliliters), "Volume unit (mL, L, fl oz)")
	cmd.Flags().Float64Var(&params.ABV, "abv", consumption.BeverageBeer.DefaultABV(),
		"Alcohol by volume as a decimal (0.05 = 5%)")
	cmd.Flags().IntVar(&params.Quantity, "quantity", consumption.DefaultQuantity, "Number of drinks")
	cmd.Flags().StringVarP(&params.Output, "output", "o", config.OutputFormatTable,
		"Output format (table, json, ndjson)")

	return cmd
}

// DrinkOverridesFromFlags collects the explicitly set drink flags.
// Exported for testing.
func DrinkOverridesFromFlags(cmd *cobra.Command, params DrinksParams) consumption.DrinkOverrides {
	var o consumption.DrinkOverrides
	flags := cmd.Flags()
	if flags.Changed("beverage") {
		o.Beverage = params.Beverage
	}
	if flags.Changed("volume") {
		o.Volume = &params.Volume
	}
	if flags.Changed("unit") {
		o.Unit = params.Unit
	}
	if flags.Changed("abv") {
		o.ABV = &params.ABV
	}
	if flags.Changed("quantity") {
		o.Quantity = &params.Quantity
	}
	return o
}

func executeDrinks(cmd *cobra.Command, params DrinksParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	format, err := resolveOutputFormat(params.Output, cmd.Flags().Changed("output"))
	if err != nil {
		return inputError(err)
	}

	preset, err := config.GetGlobalConfig().Drinks.Request()
	if err != nil {
		return inputError(fmt.Errorf("drinks defaults in config: %w", err))
	}

	req, err := DrinkOverridesFromFlags(cmd, params).Apply(preset)
	if err != nil {
		return inputError(err)
	}

	report, err := consumption.EstimateDrinks(req)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Msg("invalid drink input")
		return inputError(err)
	}

	log.Info().Ctx(ctx).
		Str("operation", "drinks").
		Str("beverage", string(req.Beverage)).
		Float64("total_standard_drinks", report.Result.TotalStandardDrinks).
		Dur("duration_ms", time.Since(start)).
		Msg("standard drinks computed")

	return renderDrinkReport(cmd.OutOrStdout(), format, report)
}

func renderDrinkReport(w io.Writer, format string, report consumption.DrinkReport) error {
	if format != config.OutputFormatTable {
		return renderJSON(w, format, report)
	}

	writeHeading(w, "Standard Drinks")
	fmt.Fprintln(w, report.Headline)
	fmt.Fprintln(w)

	if err := writeDetails(w, report.Details); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Calculation: %s\n", report.Calculation)

	if len(report.Breakdown) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Breakdown:")
		if err := writeDetails(w, report.Breakdown); err != nil {
			return err
		}
	}

	if report.Visual != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, report.Visual)
	}
	return nil
}
