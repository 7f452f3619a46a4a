// Package app provides the application context and dependency management
// for the pokedex CLI. It centralizes configuration, logging and the
// catalog, which is loaded exactly once before a command runs.
package app

import (
	"context"
	"io/fs"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/pokedex/cmd/application"
	"github.com/agentstation/pokedex/internal/embedded"
	"github.com/agentstation/pokedex/pkg/catalogs"
	"github.com/agentstation/pokedex/pkg/constants"
	"github.com/agentstation/pokedex/pkg/errors"
)

// App represents the pokedex application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Set once by LoadCatalog, read-only afterwards
	mu      sync.RWMutex
	catalog *catalogs.Catalog
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment and
// config file, which functional options may replace.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// LoadCatalog reads the catalog from the configured source and keeps it for
// the life of the process. The embedded sample is used when requested or when
// no data path is set and the default file does not exist. Calling it again
// after a successful load returns the loaded catalog.
func (a *App) LoadCatalog() (*catalogs.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	cat, err := a.loadFromSource()
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to load catalog")
		return nil, err
	}

	a.logger.Debug().
		Str("source", cat.Source()).
		Int("records", cat.Len()).
		Msg("Catalog loaded")

	a.catalog = cat
	return cat, nil
}

func (a *App) loadFromSource() (*catalogs.Catalog, error) {
	if a.config.UseEmbeddedCatalog {
		return catalogs.LoadFS(embedded.FS, embedded.CatalogPath)
	}

	if a.config.DataPath != "" {
		return catalogs.LoadFile(a.config.DataPath)
	}

	cat, err := catalogs.LoadFile(constants.DefaultDataPath)
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Debug().
			Str("path", constants.DefaultDataPath).
			Msg("No data file found, using embedded catalog")
		return catalogs.LoadFS(embedded.FS, embedded.CatalogPath)
	}
	return cat, err
}

// Catalog returns the catalog loaded at startup. It never loads on demand.
func (a *App) Catalog() (*catalogs.Catalog, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.catalog == nil {
		return nil, errors.NewLoadError("catalog", errors.New("catalog has not been loaded"))
	}
	return a.catalog, nil
}

// Shutdown performs graceful shutdown of the application.
// The catalog holds no open resources, so there is nothing to release yet.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Application shutdown")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets an already loaded catalog (useful for testing).
func WithCatalog(cat *catalogs.Catalog) Option {
	return func(a *App) error {
		a.catalog = cat
		return nil
	}
}
