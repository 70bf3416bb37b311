package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// MarketHandler serves cached venue catalogs and venue search.
type MarketHandler struct {
	scans      Scans
	polymarket MarketSearcher
	kalshi     MarketSearcher
	logger     *slog.Logger
}

// NewMarketHandler creates a MarketHandler.
func NewMarketHandler(scans Scans, polymarket, kalshi MarketSearcher, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{
		scans:      scans,
		polymarket: polymarket,
		kalshi:     kalshi,
		logger:     logHandler(logger, "markets"),
	}
}

// ListPolymarket serves the cached Polymarket catalog.
// GET /api/markets/polymarket?limit=&refresh=
func (h *MarketHandler) ListPolymarket(w http.ResponseWriter, r *http.Request) {
	h.listVenue(w, r, domain.VenuePolymarket)
}

// ListKalshi serves the cached Kalshi catalog.
// GET /api/markets/kalshi?limit=&refresh=
func (h *MarketHandler) ListKalshi(w http.ResponseWriter, r *http.Request) {
	h.listVenue(w, r, domain.VenueKalshi)
}

// listVenue serves one venue's snapshot catalog. With refresh=true a full
// scan cycle runs first; a cycle already in flight is not an error, the
// current snapshot is served as-is.
func (h *MarketHandler) listVenue(w http.ResponseWriter, r *http.Request, venue domain.Venue) {
	if queryBool(r, "refresh") {
		if err := h.scans.Refresh(r.Context()); err != nil && !errors.Is(err, domain.ErrRefreshInProgress) {
			h.logger.Warn("refresh before listing failed", slog.String("error", err.Error()))
		}
	}

	limit := queryInt(r, "limit", 100, 1, 500)
	markets := h.scans.Markets(venue)
	if len(markets) > limit {
		markets = markets[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"platform": string(venue),
		"count":    len(markets),
		"markets":  markets,
		"is_stale": h.scans.IsStale(),
	})
}

// debugSampleSize caps how many titles per venue the debug endpoint dumps.
const debugSampleSize = 20

// DebugMarkets dumps a small sample of each venue's cached catalog so
// matching problems can be eyeballed without pulling the full snapshot.
// GET /api/debug/markets
func (h *MarketHandler) DebugMarkets(w http.ResponseWriter, r *http.Request) {
	sample := func(venue domain.Venue) map[string]any {
		markets := h.scans.Markets(venue)
		n := len(markets)
		if n > debugSampleSize {
			markets = markets[:debugSampleSize]
		}
		samples := make([]map[string]string, 0, len(markets))
		for _, m := range markets {
			title := m.Title
			if len(title) > 100 {
				title = title[:100]
			}
			samples = append(samples, map[string]string{"id": m.ID, "title": title})
		}
		return map[string]any{"count": n, "samples": samples}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"polymarket": sample(domain.VenuePolymarket),
		"kalshi":     sample(domain.VenueKalshi),
		"is_stale":   h.scans.IsStale(),
	})
}

// SearchMarkets queries one or both venues live.
// GET /api/markets/search?q=...&platform=polymarket|kalshi
func (h *MarketHandler) SearchMarkets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	platform := r.URL.Query().Get("platform")
	limit := queryInt(r, "limit", 50, 1, 200)

	results := make(map[string][]domain.Market)
	search := func(venue domain.Venue, searcher MarketSearcher) {
		if searcher == nil {
			return
		}
		markets, err := searcher.SearchMarkets(r.Context(), query, limit)
		if err != nil {
			h.logger.Warn("venue search failed",
				slog.String("platform", string(venue)),
				slog.String("error", err.Error()),
			)
			markets = nil
		}
		results[string(venue)] = markets
	}

	switch platform {
	case "", "all":
		search(domain.VenuePolymarket, h.polymarket)
		search(domain.VenueKalshi, h.kalshi)
	case string(domain.VenuePolymarket):
		search(domain.VenuePolymarket, h.polymarket)
	case string(domain.VenueKalshi):
		search(domain.VenueKalshi, h.kalshi)
	default:
		writeError(w, http.StatusBadRequest, "unknown platform "+platform)
		return
	}

	total := 0
	for _, markets := range results {
		total += len(markets)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"count":   total,
		"results": results,
		"fetched": time.Now().UTC().Format(time.RFC3339),
	})
}
