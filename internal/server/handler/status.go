package handler

import (
	"net/http"
	"time"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// StatusHandler serves the backend status for the dashboard.
type StatusHandler struct {
	Mode      string
	StartedAt time.Time
	scans     Scans
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(mode string, startedAt time.Time, scans Scans) *StatusHandler {
	return &StatusHandler{Mode: mode, StartedAt: startedAt, scans: scans}
}

// GetStatus responds with the current mode, snapshot age, and catalog sizes.
// GET /api/status
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	last := h.scans.LastUpdated()
	var lastUpdated any
	if !last.IsZero() {
		lastUpdated = last.UTC().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mode":                  h.Mode,
		"uptime_seconds":        int64(time.Since(h.StartedAt).Seconds()),
		"last_updated":          lastUpdated,
		"is_stale":              h.scans.IsStale(),
		"refresh_in_progress":   h.scans.RefreshInProgress(),
		"polymarket_markets":    len(h.scans.Markets(domain.VenuePolymarket)),
		"kalshi_markets":        len(h.scans.Markets(domain.VenueKalshi)),
		"generic_opportunities": len(h.scans.Opportunities(kindGeneric)),
		"sports_opportunities":  len(h.scans.Opportunities(kindSports)),
	})
}
