// Package constants provides shared constants used throughout the pokedex codebase.
// This includes query defaults, server timeouts, limits, and other values
// that should be consistent between the CLI and the REST server.
package constants

import "time"

// Query defaults
const (
	// DefaultPage is the page served when none is requested
	DefaultPage = 1

	// DefaultPageSize is the default number of records per page
	DefaultPageSize = 25

	// DefaultSortDirection is the direction used when none is requested
	DefaultSortDirection = "asc"
)

// Server timeouts
const (
	// DefaultReadTimeout bounds reading a full request
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout bounds writing a response
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout bounds keep-alive connections
	DefaultIdleTimeout = 60 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests on shutdown
	ShutdownTimeout = 10 * time.Second
)

// Server defaults
const (
	// DefaultHost is the interface the server binds to
	DefaultHost = "localhost"

	// DefaultPort is the port the server listens on
	DefaultPort = 8080

	// DefaultPathPrefix is the prefix for all API routes
	DefaultPathPrefix = "/api/v1"

	// DefaultAuthHeader is the header carrying the API key
	DefaultAuthHeader = "X-API-Key"
)

// Rate limiting constants
const (
	// DefaultRateLimit is the default requests per minute per client
	DefaultRateLimit = 100

	// BurstSize is the token bucket burst size for rate limiting
	BurstSize = 10
)

// Cache constants
const (
	// CacheTTL is the default time-to-live for cached aggregates
	CacheTTL = 15 * time.Minute

	// CacheCleanupInterval is how often to clean expired cache entries
	CacheCleanupInterval = 5 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path constants
const (
	// DefaultConfigName is the base name of the config file in the home directory
	DefaultConfigName = ".pokedex"

	// DefaultDataPath is the source document read when no path is configured
	DefaultDataPath = "pokemon.json"
)

// Error messages
const (
	// ErrMsgPokemonNotFound is the standard error message for lookup misses
	ErrMsgPokemonNotFound = "pokemon not found"

	// ErrMsgInvalidAPIKey is the standard error message for invalid API keys
	ErrMsgInvalidAPIKey = "invalid or missing API key"

	// ErrMsgRateLimited is the standard error message for rate limiting
	ErrMsgRateLimited = "rate limit exceeded, please try again later"
)
