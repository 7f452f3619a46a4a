// Package serve provides the HTTP server command for the pokedex CLI.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/agentstation/pokedex/cmd/application"
	"github.com/agentstation/pokedex/internal/server"
	"github.com/agentstation/pokedex/pkg/constants"
	pkgerrors "github.com/agentstation/pokedex/pkg/errors"
)

// NewCommand creates the serve command. apiKey is read when the command runs,
// after configuration has been finalized.
func NewCommand(app application.Application, apiKey func() string) *cobra.Command {
	defaults := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		GroupID: "core",
		Short:   "Start the REST API server",
		Long: `Start a REST API server over the pokemon catalog.

Features:
  - Filtering, sorting and pagination on /api/v1/pokemon
  - Lookups by number and by exact name
  - Summary aggregates with an in-memory TTL cache
  - Rate limiting (requests per minute per IP)
  - API key authentication (optional, key from POKEDEX_API_KEY)
  - CORS support for web applications
  - Request IDs, request logging and panic recovery
  - Graceful shutdown with connection draining
  - Health, readiness and metrics endpoints
  - OpenAPI 3.0 documentation (/api/v1/openapi.json)

The catalog is loaded before the listener binds; a load failure aborts startup.`,
		Example: `  # Start on default port 8080
  pokedex serve

  # Serve a compressed catalog on a custom port
  pokedex serve --data pokemon.json.zst --port 3000

  # Enable CORS for specific origins
  pokedex serve --cors-origins "https://example.com,https://app.example.com"

  # Rate limit clients behind a reverse proxy on 10.0.0.0/8
  pokedex serve --trusted-proxies 10.0.0.0/8

  # Require an API key
  POKEDEX_API_KEY=secret pokedex serve --auth`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := parseConfig(cmd)
			if err != nil {
				return err
			}
			cfg.APIKey = apiKey()
			if cfg.AuthEnabled && cfg.APIKey == "" {
				return pkgerrors.NewConfigError("serve", "--auth requires an API key (set POKEDEX_API_KEY or api_key in the config file)", nil)
			}
			return runServer(cmd.Context(), cfg, app)
		},
	}

	// Server configuration flags
	cmd.Flags().Int("port", defaults.Port, "Server port")
	cmd.Flags().String("host", defaults.Host, "Bind address")
	cmd.Flags().String("prefix", defaults.PathPrefix, "API path prefix")

	// CORS flags
	cmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	// Authentication flags
	cmd.Flags().Bool("auth", false, "Enable API key authentication")
	cmd.Flags().String("auth-header", defaults.AuthHeader, "Authentication header name")

	// Performance flags
	cmd.Flags().Int("rate-limit", defaults.RateLimit, "Requests per minute per IP (0 to disable)")
	cmd.Flags().Int("rate-burst", defaults.RateBurst, "Burst size for rate limiting")
	cmd.Flags().Duration("cache-ttl", defaults.CacheTTL, "TTL for cached aggregates")
	cmd.Flags().StringSlice("trusted-proxies", []string{}, "Proxy CIDRs or addresses whose X-Forwarded-For is trusted for rate limiting")

	// Timeout flags
	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")

	// Features flags
	cmd.Flags().Bool("metrics", defaults.MetricsEnabled, "Enable metrics endpoint")

	return cmd
}

// parseConfig parses command flags into server configuration.
// HTTP_HOST and HTTP_PORT override the flags when set.
func parseConfig(cmd *cobra.Command) (server.Config, error) {
	flags := cmd.Flags()

	port, _ := flags.GetInt("port")
	host, _ := flags.GetString("host")
	prefix, _ := flags.GetString("prefix")
	corsEnabled, _ := flags.GetBool("cors")
	corsOrigins, _ := flags.GetStringSlice("cors-origins")
	authEnabled, _ := flags.GetBool("auth")
	authHeader, _ := flags.GetString("auth-header")
	rateLimit, _ := flags.GetInt("rate-limit")
	rateBurst, _ := flags.GetInt("rate-burst")
	cacheTTL, _ := flags.GetDuration("cache-ttl")
	trustedProxies, _ := flags.GetStringSlice("trusted-proxies")
	readTimeout, _ := flags.GetDuration("read-timeout")
	writeTimeout, _ := flags.GetDuration("write-timeout")
	idleTimeout, _ := flags.GetDuration("idle-timeout")
	metricsEnabled, _ := flags.GetBool("metrics")

	if envPort := os.Getenv("HTTP_PORT"); envPort != "" {
		p, err := parsePort(envPort)
		if err != nil {
			return server.Config{}, err
		}
		port = p
	}
	if envHost := os.Getenv("HTTP_HOST"); envHost != "" {
		host = envHost
	}
	if rateLimit < 0 {
		return server.Config{}, pkgerrors.NewConfigError("serve", fmt.Sprintf("--rate-limit must not be negative, got %d", rateLimit), nil)
	}

	return server.Config{
		Host:           host,
		Port:           port,
		PathPrefix:     prefix,
		CORSEnabled:    corsEnabled || len(corsOrigins) > 0,
		CORSOrigins:    corsOrigins,
		AuthEnabled:    authEnabled,
		AuthHeader:     authHeader,
		RateLimit:      rateLimit,
		RateBurst:      rateBurst,
		CacheTTL:       cacheTTL,
		TrustedProxies: trustedProxies,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		MetricsEnabled: metricsEnabled,
	}, nil
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, pkgerrors.NewConfigError("serve", fmt.Sprintf("invalid port number: %s", portStr), err)
	}
	if port < 1 || port > 65535 {
		return 0, pkgerrors.NewConfigError("serve", fmt.Sprintf("port out of range: %d", port), nil)
	}
	return port, nil
}

// runServer starts the API server and blocks until ctx is cancelled or the listener fails.
func runServer(ctx context.Context, cfg server.Config, app application.Application) error {
	logger := app.Logger()

	logger.Info().
		Int("port", cfg.Port).
		Str("host", cfg.Host).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Bool("auth", cfg.AuthEnabled).
		Int("rate_limit", cfg.RateLimit).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Starting API server")

	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	srv.Start()

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	return serve(ctx, httpServer, listener, srv, logger)
}

// serve runs httpServer on listener until ctx is done, then drains connections
// and stops the server's background services.
func serve(ctx context.Context, httpServer *http.Server, listener net.Listener, srv *server.Server, logger *zerolog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().
			Str("addr", listener.Addr().String()).
			Str("service", "API").
			Msg("HTTP server listening")

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down API server")

		// The parent context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Background services shutdown had issues")
		}

		logger.Info().Msg("Server stopped gracefully")
		return nil
	})

	return g.Wait()
}
