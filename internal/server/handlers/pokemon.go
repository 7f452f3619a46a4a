package handlers

import (
	"net/http"
	"strconv"

	"github.com/agentstation/pokedex/internal/server/filter"
	"github.com/agentstation/pokedex/internal/server/response"
	"github.com/agentstation/pokedex/pkg/constants"
	"github.com/agentstation/pokedex/pkg/errors"
	"github.com/agentstation/pokedex/pkg/logging"
	"github.com/agentstation/pokedex/pkg/query"
)

// Pagination headers set on collection responses.
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderPage       = "X-Page"
	HeaderPageSize   = "X-Page-Size"
)

// HandleListPokemon handles GET /api/v1/pokemon.
// @Summary List pokemon
// @Description Filter, sort and paginate the catalog
// @Tags pokemon
// @Produce json
// @Param page query integer false "Page number, 1-based (default: 1)"
// @Param pageSize query integer false "Records per page (default: 25)"
// @Param id query integer false "Exact number"
// @Param number query integer false "Alias of id"
// @Param name query string false "Case-insensitive substring of the name"
// @Param type1 query string false "Case-insensitive primary type"
// @Param type2 query string false "Case-insensitive secondary type"
// @Param generation query string false "Case-insensitive generation label"
// @Param movesCount query integer false "Exact number of moves"
// @Param sort query string false "number, name, type1, type2, generation, movesCount, height, weight"
// @Param sortDirection query string false "asc or desc (default: asc)"
// @Success 200 {object} response.Response{data=[]catalogs.Record}
// @Failure 400 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/pokemon [get].
func (h *Handlers) HandleListPokemon(w http.ResponseWriter, r *http.Request) {
	cat, err := h.app.Catalog()
	if err != nil {
		response.ServiceUnavailable(w, "Catalog not loaded")
		return
	}

	spec, err := filter.ParseRequest(r)
	if err != nil {
		logging.FromContext(r.Context()).Debug().Err(err).Msg("Rejected query")
		response.ErrorFromType(w, err)
		return
	}

	page, err := query.Query(cat, spec)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	w.Header().Set(HeaderTotalCount, strconv.Itoa(query.Count(cat, spec.Filters)))
	w.Header().Set(HeaderPage, strconv.Itoa(page.Number))
	w.Header().Set(HeaderPageSize, strconv.Itoa(page.Size))
	response.OK(w, page.Records)
}

// HandleGetPokemon handles GET /api/v1/pokemon/{number}.
// @Summary Get pokemon by number
// @Tags pokemon
// @Produce json
// @Param number path integer true "Pokemon number"
// @Success 200 {object} response.Response{data=catalogs.Record}
// @Failure 400 {object} response.Response{error=response.Error}
// @Failure 404 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/pokemon/{number} [get].
func (h *Handlers) HandleGetPokemon(w http.ResponseWriter, _ *http.Request, number string) {
	cat, err := h.app.Catalog()
	if err != nil {
		response.ServiceUnavailable(w, "Catalog not loaded")
		return
	}

	id, err := strconv.Atoi(number)
	if err != nil {
		response.ErrorFromType(w, errors.NewValidationError("number", number, "must be an integer"))
		return
	}

	record, ok := cat.ByID(id)
	if !ok {
		response.NotFound(w, constants.ErrMsgPokemonNotFound, "No pokemon with number "+number)
		return
	}
	response.OK(w, record)
}

// HandleGetPokemonByName handles GET /api/v1/pokemon/name/{name}.
// @Summary Get pokemon by exact name
// @Description Case-sensitive exact match; the first record in catalog order wins
// @Tags pokemon
// @Produce json
// @Param name path string true "Pokemon name"
// @Success 200 {object} response.Response{data=catalogs.Record}
// @Failure 404 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/pokemon/name/{name} [get].
func (h *Handlers) HandleGetPokemonByName(w http.ResponseWriter, _ *http.Request, name string) {
	cat, err := h.app.Catalog()
	if err != nil {
		response.ServiceUnavailable(w, "Catalog not loaded")
		return
	}

	record, ok := cat.ByName(name)
	if !ok {
		response.NotFound(w, constants.ErrMsgPokemonNotFound, "No pokemon named "+name)
		return
	}
	response.OK(w, record)
}
