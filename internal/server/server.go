package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/pokedex/cmd/application"
	"github.com/agentstation/pokedex/internal/server/cache"
	"github.com/agentstation/pokedex/internal/server/middleware"
	"github.com/agentstation/pokedex/pkg/constants"
	"github.com/agentstation/pokedex/pkg/errors"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app         application.Application
	cache       *cache.Cache
	rateLimiter *middleware.RateLimiter
	logger      *zerolog.Logger
	config      Config
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	startTime   time.Time
}

// New creates a new server instance with the given configuration.
// The catalog must already be loaded; New fails otherwise.
func New(app application.Application, cfg Config) (*Server, error) {
	logger := app.Logger()

	logger.Debug().Msg("Creating new server instance")

	cat, err := app.Catalog()
	if err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = constants.CacheTTL
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = constants.DefaultPathPrefix
	}
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = constants.DefaultAuthHeader
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, logger)
		if err := rateLimiter.TrustProxies(cfg.TrustedProxies); err != nil {
			return nil, errors.NewConfigError("server", "invalid trusted proxies", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	server := &Server{
		app:         app,
		cache:       cache.New(cfg.CacheTTL, constants.CacheCleanupInterval),
		rateLimiter: rateLimiter,
		logger:      logger,
		config:      cfg,
		ctx:         ctx,
		cancel:      cancel,
		startTime:   time.Now(),
	}

	logger.Debug().
		Str("source", cat.Source()).
		Int("records", cat.Len()).
		Msg("Server instance created successfully")
	return server, nil
}

// Start starts background services. It does not block.
func (s *Server) Start() {
	if s.rateLimiter == nil {
		return
	}

	s.logger.Debug().Msg("Starting rate limiter cleanup")
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.rateLimiter.Run(s.ctx)
	}()
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Shutdown stops background services, waiting until they exit or ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server background services")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info().Msg("Background services shut down successfully")
		return nil
	case <-ctx.Done():
		s.logger.Warn().Msg("Background services shutdown timed out")
		return ctx.Err()
	}
}

// Cache returns the server's cache instance.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// Config returns the effective configuration after defaults are applied.
func (s *Server) Config() Config {
	return s.config
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
