// Package application provides the application interface for Pokedex commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            catalog, err := app.Catalog()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use catalog
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    CatalogFunc: func() (*catalogs.Catalog, error) {
//	        return catalogs.MustNew(records...), nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/pokedex/pkg/catalogs"
)

// Application provides the application interface that commands need.
// The App struct from cmd/pokedex/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Catalog returns the catalog loaded at startup. It never loads on demand;
	// if startup loading did not happen or failed, it returns an error.
	Catalog() (*catalogs.Catalog, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, markdown).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}

// AnnotationSkipCatalog marks a command that runs without the startup catalog,
// such as version or validate. Set it in cobra.Command.Annotations to "true".
const AnnotationSkipCatalog = "pokedex.skip-catalog"
