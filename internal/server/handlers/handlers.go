package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/pokedex/cmd/application"
	"github.com/agentstation/pokedex/internal/server/cache"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	app       application.Application
	cache     *cache.Cache
	logger    *zerolog.Logger
	startTime time.Time
}

// New creates a new Handlers instance.
func New(app application.Application, cache *cache.Cache, logger *zerolog.Logger, startTime time.Time) *Handlers {
	return &Handlers{
		app:       app,
		cache:     cache,
		logger:    logger,
		startTime: startTime,
	}
}
