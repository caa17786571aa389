package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/dosecalc/internal/config"
	"github.com/rshade/dosecalc/pkg/version"
)

// versionInfo is the JSON shape of the version command.
type versionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
}

// NewVersionCmd creates the "version" command that prints build metadata.
func NewVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version, commit and build date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output, cmd.Flags().Changed("output"))
			if err != nil {
				return inputError(err)
			}

			if format != config.OutputFormatTable {
				return renderJSON(cmd.OutOrStdout(), format, versionInfo{
					Version:   version.GetVersion(),
					GitCommit: version.GetGitCommit(),
					BuildDate: version.GetBuildDate(),
				})
			}

			cmd.Printf("dosecalc %s\n", version.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.OutputFormatTable, "Output format (table, json, ndjson)")
	return cmd
}
