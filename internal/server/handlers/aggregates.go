package handlers

import (
	"net/http"

	"github.com/agentstation/pokedex/internal/server/response"
	"github.com/agentstation/pokedex/pkg/aggregate"
	"github.com/agentstation/pokedex/pkg/catalogs"
)

// Cache keys for aggregate results.
const (
	keyTotalSpecies        = "aggregate:total-species"
	keyCountsPerType       = "aggregate:counts-per-type"
	keyCountsPerGeneration = "aggregate:counts-per-generation"
	keyTypes               = "aggregate:types"
	keyGenerations         = "aggregate:generations"
	keySummary             = "aggregate:summary"
)

// serveAggregate writes the cached aggregate for key, computing it on a miss.
func (h *Handlers) serveAggregate(w http.ResponseWriter, key string, compute func(*catalogs.Catalog) any) {
	cat, err := h.app.Catalog()
	if err != nil {
		response.ServiceUnavailable(w, "Catalog not loaded")
		return
	}
	response.OK(w, h.cache.GetOrCompute(key, func() any { return compute(cat) }))
}

// HandleTotalSpecies handles GET /api/v1/pokemon/total-species.
// @Summary Count distinct species
// @Description Number of distinct names in the catalog
// @Tags aggregates
// @Produce json
// @Success 200 {object} response.Response{data=integer}
// @Router /api/v1/pokemon/total-species [get].
func (h *Handlers) HandleTotalSpecies(w http.ResponseWriter, _ *http.Request) {
	h.serveAggregate(w, keyTotalSpecies, func(c *catalogs.Catalog) any { return aggregate.TotalSpecies(c) })
}

// HandleCountsPerType handles GET /api/v1/pokemon/counts-per-type.
// @Summary Histogram of types
// @Tags aggregates
// @Produce json
// @Success 200 {object} response.Response{data=map[string]int}
// @Router /api/v1/pokemon/counts-per-type [get].
func (h *Handlers) HandleCountsPerType(w http.ResponseWriter, _ *http.Request) {
	h.serveAggregate(w, keyCountsPerType, func(c *catalogs.Catalog) any { return aggregate.CountsPerType(c) })
}

// HandleCountsPerGeneration handles GET /api/v1/pokemon/counts-per-generation.
// @Summary Histogram of generations
// @Tags aggregates
// @Produce json
// @Success 200 {object} response.Response{data=map[string]int}
// @Router /api/v1/pokemon/counts-per-generation [get].
func (h *Handlers) HandleCountsPerGeneration(w http.ResponseWriter, _ *http.Request) {
	h.serveAggregate(w, keyCountsPerGeneration, func(c *catalogs.Catalog) any { return aggregate.CountsPerGeneration(c) })
}

// HandleTypes handles GET /api/v1/pokemon/types.
// @Summary Distinct types, sorted
// @Tags aggregates
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/pokemon/types [get].
func (h *Handlers) HandleTypes(w http.ResponseWriter, _ *http.Request) {
	h.serveAggregate(w, keyTypes, func(c *catalogs.Catalog) any { return aggregate.AllTypes(c) })
}

// HandleGenerations handles GET /api/v1/pokemon/generations.
// @Summary Distinct generations, sorted
// @Tags aggregates
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/pokemon/generations [get].
func (h *Handlers) HandleGenerations(w http.ResponseWriter, _ *http.Request) {
	h.serveAggregate(w, keyGenerations, func(c *catalogs.Catalog) any { return aggregate.AllGenerations(c) })
}

// HandleSummary handles GET /api/v1/pokemon/summary.
// @Summary All aggregates in one response
// @Tags aggregates
// @Produce json
// @Success 200 {object} response.Response{data=aggregate.Summary}
// @Router /api/v1/pokemon/summary [get].
func (h *Handlers) HandleSummary(w http.ResponseWriter, _ *http.Request) {
	h.serveAggregate(w, keySummary, func(c *catalogs.Catalog) any { return aggregate.Summarize(c) })
}
