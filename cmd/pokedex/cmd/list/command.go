// Package list provides the list command for querying the catalog.
package list

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/pokedex/cmd/application"
	"github.com/agentstation/pokedex/internal/cmd/output"
	"github.com/agentstation/pokedex/internal/server/filter"
	"github.com/agentstation/pokedex/pkg/catalogs"
	"github.com/agentstation/pokedex/pkg/constants"
	"github.com/agentstation/pokedex/pkg/errors"
	"github.com/agentstation/pokedex/pkg/query"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	var params filter.Params

	cmd := &cobra.Command{
		Use:     "list [number|name]",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "Query the catalog or show one pokemon",
		Long: `List filters, sorts and paginates the catalog.

With an argument it shows a single pokemon instead: a number looks it up
by number, anything else by exact, case-sensitive name.

Filters combine with AND. name is a case-insensitive substring match;
type1, type2 and generation are case-insensitive exact matches.

Sort keys: ` + strings.Join(query.SortKeys(), ", ") + `. Unknown keys leave
catalog order unchanged.`,
		Example: `  pokedex list                                 # First page of the catalog
  pokedex list 25                              # Pokemon number 25
  pokedex list Charizard                       # First pokemon named Charizard
  pokedex list --type1 fire --sort weight --desc
  pokedex list --name saur --page 2 --page-size 10 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if len(args) == 1 {
				record, err := lookup(cat, args[0])
				if err != nil {
					return err
				}
				return output.Record(cmd.OutOrStdout(), format, record)
			}

			if desc, _ := cmd.Flags().GetBool("desc"); desc {
				params.SortDirection = string(query.Desc)
			}

			spec, err := filter.ParseSpec(params)
			if err != nil {
				return err
			}

			page, err := query.Query(cat, spec)
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Int("total", query.Count(cat, spec.Filters)).
				Int("page", page.Number).
				Int("returned", len(page.Records)).
				Msg("Query complete")

			return output.Records(cmd.OutOrStdout(), format, page.Records)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&params.Page, "page", "", "page number, 1-based (default "+strconv.Itoa(constants.DefaultPage)+")")
	flags.StringVar(&params.PageSize, "page-size", "", "records per page (default "+strconv.Itoa(constants.DefaultPageSize)+")")
	flags.StringVar(&params.ID, "id", "", "exact number")
	flags.StringVar(&params.Name, "name", "", "case-insensitive substring of the name")
	flags.StringVar(&params.Type1, "type1", "", "primary type")
	flags.StringVar(&params.Type2, "type2", "", "secondary type")
	flags.StringVar(&params.Generation, "generation", "", "generation label, e.g. \"Generation I\"")
	flags.StringVar(&params.MovesCount, "moves-count", "", "exact number of moves")
	flags.StringVar(&params.Sort, "sort", "", "sort key")
	flags.StringVar(&params.SortDirection, "sort-direction", "", "asc or desc (default asc)")
	flags.Bool("desc", false, "shortcut for --sort-direction desc")

	return cmd
}

// lookup resolves a number or exact name to a record.
func lookup(cat *catalogs.Catalog, arg string) (*catalogs.Record, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		if r, ok := cat.ByID(id); ok {
			return r, nil
		}
		return nil, errors.NewNotFoundError("pokemon", arg)
	}

	if r, ok := cat.ByName(arg); ok {
		return r, nil
	}
	return nil, errors.NewNotFoundError("pokemon", arg)
}
