package server

import (
	"net/http"
	"strings"

	"github.com/agentstation/pokedex/internal/server/handlers"
	"github.com/agentstation/pokedex/internal/server/middleware"
	"github.com/agentstation/pokedex/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.app, s.cache, s.logger, s.startTime)

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// get restricts a handler to GET (and HEAD) requests.
func get(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			response.MethodNotAllowed(w, r.Method)
			return
		}
		fn(w, r)
	}
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Public health endpoints (no auth required)
	mux.HandleFunc("/health", get(h.HandleHealth))
	mux.HandleFunc(prefix+"/health", get(h.HandleHealth))
	mux.HandleFunc(prefix+"/ready", get(h.HandleReady))

	// Pokemon collection
	mux.HandleFunc(prefix+"/pokemon", get(h.HandleListPokemon))

	// Lookups and aggregates
	mux.HandleFunc(prefix+"/pokemon/", get(func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(strings.TrimPrefix(r.URL.Path, prefix+"/pokemon/"))

		switch len(parts) {
		case 0:
			h.HandleListPokemon(w, r)
			return
		case 1:
			switch parts[0] {
			case "total-species":
				h.HandleTotalSpecies(w, r)
			case "counts-per-type":
				h.HandleCountsPerType(w, r)
			case "counts-per-generation":
				h.HandleCountsPerGeneration(w, r)
			case "types":
				h.HandleTypes(w, r)
			case "generations":
				h.HandleGenerations(w, r)
			case "summary":
				h.HandleSummary(w, r)
			default:
				h.HandleGetPokemon(w, r, parts[0])
			}
			return
		case 2:
			if parts[0] == "name" {
				h.HandleGetPokemonByName(w, r, parts[1])
				return
			}
		}

		response.NotFound(w, "Route not found", r.URL.Path)
	}))

	// OpenAPI specification endpoints
	mux.HandleFunc(prefix+"/openapi.json", get(h.HandleOpenAPIJSON))
	mux.HandleFunc(prefix+"/openapi.yaml", get(h.HandleOpenAPIYAML))

	// Metrics endpoint (if enabled)
	if s.config.MetricsEnabled {
		mux.HandleFunc("/metrics", get(h.HandleMetrics))
	}
}

// applyMiddleware wraps handler with middleware chain.
// The last wrapper applied runs first.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	// Rate limiting (if enabled)
	if s.rateLimiter != nil {
		handler = middleware.RateLimit(s.rateLimiter)(handler)
	}

	// Authentication (if enabled)
	if cfg.AuthEnabled {
		authConfig := middleware.DefaultAuthConfig()
		authConfig.Enabled = true
		authConfig.APIKey = cfg.APIKey
		authConfig.HeaderName = cfg.AuthHeader
		authConfig.PublicPaths = append(authConfig.PublicPaths,
			cfg.PathPrefix+"/health",
			cfg.PathPrefix+"/ready",
			cfg.PathPrefix+"/openapi.json",
			cfg.PathPrefix+"/openapi.yaml",
		)
		handler = middleware.Auth(authConfig, s.logger)(handler)
	}

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Logging, request IDs and recovery (always enabled)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
