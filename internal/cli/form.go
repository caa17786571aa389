package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/dosecalc/internal/config"
	"github.com/rshade/dosecalc/internal/logging"
	"github.com/rshade/dosecalc/internal/tui"
)

// NewFormCmd creates the "form" command that runs the interactive calculator.
func NewFormCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Interactive standard drink and nicotine calculator",
		Long: `Launch an interactive terminal form with a standard drinks tab and a nicotine
tab. Results update as you type. When the form exits, the result of the
active tab is printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeForm(cmd, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.OutputFormatTable,
		"Output format for the final result (table, json, ndjson)")
	return cmd
}

func executeForm(cmd *cobra.Command, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !tui.IsInteractive() {
		return errors.New("form requires an interactive terminal; use the drinks or nicotine commands instead")
	}

	format, err := resolveOutputFormat(output, cmd.Flags().Changed("output"))
	if err != nil {
		return inputError(err)
	}

	cfg := config.GetGlobalConfig()
	drinkPreset, err := cfg.Drinks.Request()
	if err != nil {
		return inputError(fmt.Errorf("drinks defaults in config: %w", err))
	}

	log.Debug().Ctx(ctx).Msg("launching interactive form")

	model := tui.NewFormModel(ctx, drinkPreset, cfg.Nicotine.Input())
	program := tea.NewProgram(model, tea.WithContext(ctx))

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running interactive form: %w", err)
	}

	formModel, ok := finalModel.(*tui.FormModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T, expected *tui.FormModel", finalModel)
	}

	return printFinalResult(cmd, format, formModel)
}

// printFinalResult prints the active tab's last valid result after the form exits.
func printFinalResult(cmd *cobra.Command, format string, m *tui.FormModel) error {
	w := cmd.OutOrStdout()

	if m.ActiveTab() == tui.TabNicotine {
		report, err := m.NicotineReport()
		if err != nil || report == nil {
			return nil
		}
		return renderNicotineReport(w, format, *report)
	}

	report, err := m.DrinkReport()
	if err != nil || report == nil {
		return nil
	}
	return renderDrinkReport(w, format, *report)
}
