package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/dosecalc/internal/config"
	"github.com/rshade/dosecalc/internal/consumption"
	"github.com/rshade/dosecalc/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// baseLogger is logger without the component field, for other components.
var baseLogger zerolog.Logger //nolint:gochecknoglobals // Set once per command in setupLogging

// NewRootCmd creates the root Cobra command for the dosecalc CLI.
// It loads configuration, wires up logging and tracing, and registers the
// calculator, reference, form, serve and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "dosecalc",
		Short: "Standard drink and nicotine consumption calculator",
		Long: `dosecalc converts beverage and vape parameters into standard alcoholic
drinks and daily nicotine intake with a pack-per-day equivalent.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	// Unparseable flag values are invalid input too. Subcommands inherit this.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return inputError(fmt.Errorf("%w: %w", consumption.ErrInvalidInput, err))
	})

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "",
		"YAML overlay merged over the config file (whole sections are replaced)")
	cmd.AddCommand(
		NewDrinksCmd(), NewNicotineCmd(), NewReferenceCmd(),
		NewFormCmd(), NewServeCmd(), newConfigCmd(), NewVersionCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Standard drinks for two 150 mL glasses of wine
  dosecalc drinks --beverage wine --volume 150 --quantity 2

  # A pint in fluid ounces, as JSON
  dosecalc drinks --unit "fl oz" --volume 16 --abv 0.045 --output json

  # Nicotine from an 18 mL, 5% vape finished in 7 days
  dosecalc nicotine --percent 5 --capacity 18 --days 7

  # Reference tables
  dosecalc reference

  # Interactive form
  dosecalc form

  # HTTP API on :8080
  dosecalc serve --addr :8080

  # Initialize configuration
  dosecalc config init`

// loadConfig resolves the effective configuration and installs it globally.
func loadConfig(cmd *cobra.Command) error {
	cfg := config.New()

	if err := applyOverlay(cmd, cfg); err != nil {
		return fmt.Errorf("loading config overlay: %w", err)
	}

	config.SetGlobalConfig(cfg)
	return nil
}

// applyOverlay merges the --config overlay, if any, over cfg. It runs after
// environment overrides so overlay sections win.
func applyOverlay(cmd *cobra.Command, cfg *config.Config) error {
	overlay, _ := cmd.Flags().GetString("config")
	if overlay == "" {
		return nil
	}
	return config.ShallowMergeYAML(cfg, overlay)
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
