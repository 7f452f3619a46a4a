package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/pokedex/pkg/catalogs"
	"github.com/agentstation/pokedex/pkg/errors"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	CatalogFunc      func() (*catalogs.Catalog, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
}

var _ Application = (*Mock)(nil)

// Catalog returns a catalog using the mock function or a load error.
func (m *Mock) Catalog() (*catalogs.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return nil, errors.NewLoadError("mock", errors.New("no catalog configured"))
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

// NewMockWithCatalog returns a Mock serving cat.
func NewMockWithCatalog(cat *catalogs.Catalog) *Mock {
	return &Mock{
		CatalogFunc: func() (*catalogs.Catalog, error) { return cat, nil },
	}
}
