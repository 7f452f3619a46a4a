package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/agentstation/pokedex/cmd/application"
	"github.com/agentstation/pokedex/internal/server/cache"
	"github.com/agentstation/pokedex/internal/server/response"
	"github.com/agentstation/pokedex/pkg/catalogs"
)

func newTestHandlers(app application.Application) *Handlers {
	return New(app, cache.New(time.Minute, time.Minute), app.Logger(), time.Now())
}

func newLoadedHandlers() *Handlers {
	cat := catalogs.MustNew(
		catalogs.NewTestRecord(1, "Bulbasaur", "Generation I", 3, "Grass", "Poison"),
		catalogs.NewTestRecord(4, "Charmander", "Generation I", 5, "Fire"),
		catalogs.NewTestRecord(152, "Chikorita", "Generation II", 2, "Grass"),
	)
	return newTestHandlers(application.NewMockWithCatalog(cat))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestHandlers_CatalogUnavailable(t *testing.T) {
	h := newTestHandlers(&application.Mock{})

	tests := []struct {
		name string
		fn   func(http.ResponseWriter, *http.Request)
	}{
		{"list", h.HandleListPokemon},
		{"get", func(w http.ResponseWriter, r *http.Request) { h.HandleGetPokemon(w, r, "1") }},
		{"by name", func(w http.ResponseWriter, r *http.Request) { h.HandleGetPokemonByName(w, r, "Bulbasaur") }},
		{"summary", h.HandleSummary},
		{"ready", h.HandleReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("status = %d, want 503", rec.Code)
			}
		})
	}
}

func TestHandleListPokemon_Headers(t *testing.T) {
	h := newLoadedHandlers()

	rec := httptest.NewRecorder()
	h.HandleListPokemon(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pokemon?type1=grass&pageSize=1&page=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(HeaderTotalCount); got != "2" {
		t.Errorf("%s = %q, want 2", HeaderTotalCount, got)
	}
	if got := rec.Header().Get(HeaderPage); got != "2" {
		t.Errorf("%s = %q, want 2", HeaderPage, got)
	}
	if got := rec.Header().Get(HeaderPageSize); got != "1" {
		t.Errorf("%s = %q, want 1", HeaderPageSize, got)
	}

	resp := decode(t, rec)
	records, ok := resp.Data.([]any)
	if !ok || len(records) != 1 {
		t.Fatalf("data = %#v, want one record", resp.Data)
	}
	if name := records[0].(map[string]any)["name"]; name != "Chikorita" {
		t.Errorf("name = %v, want Chikorita", name)
	}
}

func TestHandleListPokemon_EmptyResultIsArray(t *testing.T) {
	h := newLoadedHandlers()

	rec := httptest.NewRecorder()
	h.HandleListPokemon(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pokemon?type1=water", nil))

	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("body = %s, want empty data array", rec.Body.String())
	}
}

func TestHandleGetPokemon(t *testing.T) {
	h := newLoadedHandlers()

	tests := []struct {
		number   string
		wantCode int
	}{
		{"4", http.StatusOK},
		{"5", http.StatusNotFound},
		{"-1", http.StatusNotFound},
		{"four", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleGetPokemon(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.number)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleReady(t *testing.T) {
	h := newLoadedHandlers()

	rec := httptest.NewRecorder()
	h.HandleReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, ok := decode(t, rec).Data.(map[string]any)
	if !ok {
		t.Fatalf("data is not an object: %s", rec.Body.String())
	}
	if data["status"] != "ready" {
		t.Errorf("status = %v, want ready", data["status"])
	}
	catalog, _ := data["catalog"].(map[string]any)
	if catalog["records"] != float64(3) {
		t.Errorf("catalog.records = %v, want 3", catalog["records"])
	}
}

func TestHandleSummary_Cached(t *testing.T) {
	h := newLoadedHandlers()

	for range 2 {
		rec := httptest.NewRecorder()
		h.HandleSummary(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	stats := h.cache.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 miss", stats)
	}
}

func TestHandleOpenAPIJSON(t *testing.T) {
	h := newLoadedHandlers()

	rec := httptest.NewRecorder()
	h.HandleOpenAPIJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc["openapi"] != "3.0.3" {
		t.Errorf("openapi = %v", doc["openapi"])
	}
}

func TestHandleMetrics(t *testing.T) {
	h := newLoadedHandlers()

	rec := httptest.NewRecorder()
	h.HandleMetrics(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{`pokedex_api_info{version="dev"} 1`, "pokedex_catalog_records 3", "pokedex_cache_items 0"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q:\n%s", want, body)
		}
	}
}
