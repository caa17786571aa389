package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/dosecalc/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness:

- YAML syntax and schema version (major version must match)
- Output format and logging settings
- Drink and nicotine presets against the calculator limits
- Server address and timeouts`,
		Example: `  # Validate current configuration
  dosecalc config validate

  # Validate and show detailed information
  dosecalc config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path := config.ResolveConfigPath()

	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cmd.Printf("No configuration file at %s; built-in defaults apply\n", path)
		cfg = config.DefaultConfig()
	case err != nil:
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	// Same order as command startup: file, environment, then overlay.
	cfg.ApplyEnv(os.LookupEnv)
	if err = applyOverlay(cmd, cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Schema version: %s\n", cfg.Version)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Drinks preset: %s, %s, quantity %d\n", cfg.Drinks.Beverage, cfg.Drinks.Unit, cfg.Drinks.Quantity)
	cmd.Printf("  Nicotine preset: %g%%, %g mL, %g days\n",
		cfg.Nicotine.Percent, cfg.Nicotine.CapacityMl, cfg.Nicotine.Days)
	cmd.Printf("  Server address: %s\n", cfg.Server.Address)
}
