package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/dosecalc/internal/config"
	"github.com/rshade/dosecalc/internal/consumption"
)

// NewConfigShowCmd creates the config show command that prints the effective
// configuration (file, overlay and environment applied).
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()

			switch output {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(cfg); err != nil {
					return err
				}
				return enc.Close()
			case config.OutputFormatJSON, config.OutputFormatNDJSON:
				return renderJSON(cmd.OutOrStdout(), output, cfg)
			default:
				return inputError(fmt.Errorf("%w: output format must be one of yaml, json, ndjson, got %q",
					consumption.ErrInvalidInput, output))
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format (yaml, json, ndjson)")
	return cmd
}
