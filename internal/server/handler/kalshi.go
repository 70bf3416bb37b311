package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tgoodwin/marketarb/internal/platform/kalshi"
)

// KalshiBrowser is the slice of the Kalshi client used for raw series and
// event browsing.
type KalshiBrowser interface {
	GetSeriesList(ctx context.Context, category string) ([]kalshi.APISeries, error)
	GetEvents(ctx context.Context, seriesTicker, status string, limit int) ([]kalshi.APIEvent, error)
}

// KalshiHandler exposes raw Kalshi series and events for market exploration.
type KalshiHandler struct {
	client KalshiBrowser
	logger *slog.Logger
}

// NewKalshiHandler creates a KalshiHandler.
func NewKalshiHandler(client KalshiBrowser, logger *slog.Logger) *KalshiHandler {
	return &KalshiHandler{client: client, logger: logHandler(logger, "kalshi")}
}

// ListSeries serves Kalshi series, optionally filtered by category.
// GET /api/kalshi/series?category=
func (h *KalshiHandler) ListSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.client.GetSeriesList(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.logger.Warn("series fetch failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "kalshi series fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(series),
		"series": series,
	})
}

// ListEvents serves Kalshi events, optionally scoped to a series.
// GET /api/kalshi/events?series_ticker=&status=&limit=
func (h *KalshiHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 100, 1, 500)
	events, err := h.client.GetEvents(r.Context(),
		r.URL.Query().Get("series_ticker"),
		r.URL.Query().Get("status"),
		limit,
	)
	if err != nil {
		h.logger.Warn("events fetch failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "kalshi events fetch failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(events),
		"events": events,
	})
}
