// Package validate provides the validate command for catalog documents.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/pokedex/cmd/application"
	"github.com/agentstation/pokedex/internal/cmd/emoji"
	"github.com/agentstation/pokedex/internal/embedded"
	"github.com/agentstation/pokedex/pkg/catalogs"
)

// NewCommand creates the validate command. It loads a document on its own,
// so it runs without the startup catalog.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:         "validate [path]",
		GroupID:     "management",
		Short:       "Check that a catalog document loads",
		Annotations: map[string]string{application.AnnotationSkipCatalog: "true"},
		Long: `Validate parses a catalog document and checks every record.

The whole document is rejected if any record is invalid; the error names
the record index and the offending field. Without a path the embedded
sample catalog is checked.`,
		Example: `  pokedex validate pokemon.json
  pokedex validate data/pokemon.yaml.gz
  pokedex validate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cat *catalogs.Catalog
				err error
			)
			if len(args) == 1 {
				cat, err = catalogs.LoadFile(args[0])
			} else {
				cat, err = catalogs.LoadFS(embedded.FS, embedded.CatalogPath)
			}
			if err != nil {
				app.Logger().Debug().Err(err).Msg("Validation failed")
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d records valid\n", emoji.Success, cat.Source(), cat.Len())
			return err
		},
	}
}
