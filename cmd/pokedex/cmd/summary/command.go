// Package summary provides the summary command for catalog aggregates.
package summary

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/pokedex/cmd/application"
	"github.com/agentstation/pokedex/internal/cmd/output"
	"github.com/agentstation/pokedex/pkg/aggregate"
)

// NewCommand creates the summary command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Aliases: []string{"stats"},
		GroupID: "core",
		Short:   "Show catalog aggregates",
		Long: `Summary prints the distinct species count, the per-type and
per-generation histograms, and the sorted lists of types and generations.

A pokemon with two types counts once for each type.`,
		Example: `  pokedex summary
  pokedex summary -o markdown > SUMMARY.md
  pokedex summary -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			if format == "" {
				format = output.DetectFormat("")
			}

			return output.Summary(cmd.OutOrStdout(), format, aggregate.Summarize(cat))
		},
	}
}
