package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/dosecalc/internal/config"
	"github.com/rshade/dosecalc/internal/consumption"
	"github.com/rshade/dosecalc/internal/tui"
)

// Reference table names accepted as the argument of the reference command.
const (
	referenceDrinks   = "drinks"
	referenceNicotine = "nicotine"
)

// referenceOutput is the JSON shape of the reference command.
type referenceOutput struct {
	Drinks   []consumption.DrinkReference    `json:"drinks,omitempty"`
	Nicotine []consumption.NicotineReference `json:"nicotine,omitempty"`
	Notes    []string                        `json:"notes"`
}

// NewReferenceCmd creates the "reference" command that prints the static
// standard drink and nicotine strength tables.
func NewReferenceCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "reference [drinks|nicotine]",
		Short:     "Show standard drink and nicotine reference tables",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{referenceDrinks, referenceNicotine},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutputFormat(output, cmd.Flags().Changed("output"))
			if err != nil {
				return inputError(err)
			}

			which := ""
			if len(args) == 1 {
				which = args[0]
			}
			return renderReference(cmd.OutOrStdout(), format, which, tui.IsTTY())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.OutputFormatTable, "Output format (table, json, ndjson)")
	return cmd
}

// renderReference writes the selected tables ("" selects both). Table output
// to a terminal is styled; otherwise it is plain text.
func renderReference(w io.Writer, format, which string, styled bool) error {
	showDrinks := which == "" || which == referenceDrinks
	showNicotine := which == "" || which == referenceNicotine

	if format != config.OutputFormatTable {
		out := referenceOutput{Notes: consumption.HealthNotes()}
		if showDrinks {
			out.Drinks = consumption.DrinkReferenceTable()
		}
		if showNicotine {
			out.Nicotine = consumption.NicotineReferenceTable()
		}
		return renderJSON(w, format, out)
	}

	if styled {
		if showDrinks {
			fmt.Fprintln(w, tui.RenderDrinkReference())
			fmt.Fprintln(w)
		}
		if showNicotine {
			fmt.Fprintln(w, tui.RenderNicotineReference())
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, tui.RenderHealthNotes())
		return nil
	}

	if showDrinks {
		if err := writeDrinkReference(w); err != nil {
			return err
		}
	}
	if showNicotine {
		if err := writeNicotineReference(w); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Health Information:")
	for _, note := range consumption.HealthNotes() {
		fmt.Fprintf(w, "  - %s\n", note)
	}
	return nil
}

func writeDrinkReference(w io.Writer) error {
	writeHeading(w, "Standard Drink Reference")
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "Beverage\tTypical Volume\tABV\tStandard Drinks")
	fmt.Fprintln(tw, "--------\t--------------\t---\t---------------")
	for _, row := range consumption.DrinkReferenceTable() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Beverage, row.TypicalVolume, row.ABVDisplay, row.StandardDrinks)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func writeNicotineReference(w io.Writer) error {
	writeHeading(w, "Nicotine Strength Reference")
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "Strength\tmg/mL\tExample (%g mL/day)\n", consumption.ReferenceDailyMl)
	fmt.Fprintln(tw, "--------\t-----\t------------------")
	for _, row := range consumption.NicotineReferenceTable() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.PercentDisplay, row.MgPerMl, row.Example)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}
