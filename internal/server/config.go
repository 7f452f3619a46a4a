package server

import (
	"time"

	"github.com/agentstation/pokedex/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// API settings
	PathPrefix string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Authentication settings
	AuthEnabled bool
	AuthHeader  string
	APIKey      string

	// Performance settings
	RateLimit int // Requests per minute per IP (0 to disable)
	RateBurst int
	CacheTTL  time.Duration

	// TrustedProxies lists CIDRs or addresses whose X-Forwarded-For is honoured by the rate limiter
	TrustedProxies []string

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Features
	MetricsEnabled bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:           constants.DefaultHost,
		Port:           constants.DefaultPort,
		PathPrefix:     constants.DefaultPathPrefix,
		CORSEnabled:    false,
		CORSOrigins:    []string{},
		AuthEnabled:    false,
		AuthHeader:     constants.DefaultAuthHeader,
		RateLimit:      constants.DefaultRateLimit,
		RateBurst:      constants.BurstSize,
		CacheTTL:       constants.CacheTTL,
		TrustedProxies: []string{},
		ReadTimeout:    constants.DefaultReadTimeout,
		WriteTimeout:   constants.DefaultWriteTimeout,
		IdleTimeout:    constants.DefaultIdleTimeout,
		MetricsEnabled: true,
	}
}
