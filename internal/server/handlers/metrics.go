package handlers

import (
	"fmt"
	"net/http"
	"time"
)

// HandleMetrics handles GET /metrics with gauges in the Prometheus text format.
func (h *Handlers) HandleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	_, _ = fmt.Fprintf(w, "# HELP pokedex_api_info Build information.\n")
	_, _ = fmt.Fprintf(w, "# TYPE pokedex_api_info gauge\n")
	_, _ = fmt.Fprintf(w, "pokedex_api_info{version=%q} 1\n", h.app.Version())

	if cat, err := h.app.Catalog(); err == nil {
		_, _ = fmt.Fprintf(w, "# HELP pokedex_catalog_records Records in the loaded catalog.\n")
		_, _ = fmt.Fprintf(w, "# TYPE pokedex_catalog_records gauge\n")
		_, _ = fmt.Fprintf(w, "pokedex_catalog_records %d\n", cat.Len())
	}

	stats := h.cache.GetStats()
	_, _ = fmt.Fprintf(w, "# TYPE pokedex_cache_items gauge\n")
	_, _ = fmt.Fprintf(w, "pokedex_cache_items %d\n", stats.ItemCount)
	_, _ = fmt.Fprintf(w, "# TYPE pokedex_cache_hits_total counter\n")
	_, _ = fmt.Fprintf(w, "pokedex_cache_hits_total %d\n", stats.Hits)
	_, _ = fmt.Fprintf(w, "# TYPE pokedex_cache_misses_total counter\n")
	_, _ = fmt.Fprintf(w, "pokedex_cache_misses_total %d\n", stats.Misses)
	_, _ = fmt.Fprintf(w, "# TYPE pokedex_uptime_seconds gauge\n")
	_, _ = fmt.Fprintf(w, "pokedex_uptime_seconds %.0f\n", time.Since(h.startTime).Seconds())
}
