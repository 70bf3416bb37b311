package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tgoodwin/marketarb/internal/arbitrage"
	"github.com/tgoodwin/marketarb/internal/domain"
)

// refreshTimeout bounds a background refresh kicked off by the API so a
// wedged venue cannot pin the goroutine forever.
const refreshTimeout = 2 * time.Minute

// streamRefreshes is the signal-bus stream the scanner appends each cycle's
// opportunity list to.
const streamRefreshes = "arb:refreshes"

// StreamSource reads the durable refresh history from the signal bus.
type StreamSource interface {
	StreamRead(ctx context.Context, stream string, lastID string, count int) ([]domain.StreamMessage, error)
}

// ArbHandler serves generic arbitrage results, refresh history, and the
// refresh trigger.
type ArbHandler struct {
	scans   Scans
	history StreamSource
	logger  *slog.Logger
}

// NewArbHandler creates an ArbHandler. A nil history disables the history
// endpoint.
func NewArbHandler(scans Scans, history StreamSource, logger *slog.Logger) *ArbHandler {
	return &ArbHandler{scans: scans, history: history, logger: logHandler(logger, "arbitrage")}
}

// ListOpportunities serves the current generic opportunity list.
// GET /api/arbitrage?min_difference=&limit=
func (h *ArbHandler) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	minDiff := queryFloat(r, "min_difference", 0, 0, 100)
	limit := queryInt(r, "limit", 50, 1, 200)

	opps := filterByPercent(h.scans.Opportunities(kindGeneric), minDiff)
	summary := arbitrage.SummaryStats(opps)
	if len(opps) > limit {
		opps = opps[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":         len(opps),
		"opportunities": opps,
		"summary":       summary,
		"last_updated":  lastUpdatedField(h.scans),
		"is_stale":      h.scans.IsStale(),
	})
}

// TopOpportunities serves the n highest-ranked opportunities. Responds 404
// when the snapshot holds none at all.
// GET /api/arbitrage/top?n=
func (h *ArbHandler) TopOpportunities(w http.ResponseWriter, r *http.Request) {
	n := queryInt(r, "n", 10, 1, 100)

	opps := h.scans.Opportunities(kindGeneric)
	if len(opps) == 0 {
		writeError(w, http.StatusNotFound, "no opportunities in current snapshot")
		return
	}
	if len(opps) > n {
		opps = opps[:n]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":         len(opps),
		"opportunities": opps,
		"last_updated":  lastUpdatedField(h.scans),
	})
}

// History serves past refresh cycles from the signal-bus stream, oldest
// first. Each entry carries the stream ID, usable as the next "after" cursor.
// GET /api/arbitrage/history?after=&limit=
func (h *ArbHandler) History(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusServiceUnavailable, "refresh history not available")
		return
	}

	after := r.URL.Query().Get("after")
	if after == "" {
		after = "0"
	}
	limit := queryInt(r, "limit", 20, 1, 200)

	msgs, err := h.history.StreamRead(r.Context(), streamRefreshes, after, limit)
	if err != nil {
		h.logger.Warn("history read failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "refresh history read failed")
		return
	}

	entries := make([]map[string]any, 0, len(msgs))
	for _, msg := range msgs {
		entries = append(entries, map[string]any{
			"id":            msg.ID,
			"opportunities": json.RawMessage(msg.Payload),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(entries),
		"entries": entries,
	})
}

// TriggerRefresh starts a scan cycle in the background. A cycle already in
// flight is reported, not queued.
// POST /api/arbitrage/refresh
func (h *ArbHandler) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	if h.scans.RefreshInProgress() {
		writeJSON(w, http.StatusConflict, map[string]string{"status": "in_progress"})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := h.scans.Refresh(ctx); err != nil {
			h.logger.Warn("background refresh failed", slog.String("error", err.Error()))
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

// filterByPercent keeps opportunities at or above the given midpoint percent
// difference. Order is preserved.
func filterByPercent(opps []domain.Opportunity, minDiff float64) []domain.Opportunity {
	if minDiff <= 0 {
		return opps
	}
	filtered := make([]domain.Opportunity, 0, len(opps))
	for _, o := range opps {
		if o.PriceDiffPercent >= minDiff {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// lastUpdatedField formats the snapshot timestamp for responses, null before
// the first refresh.
func lastUpdatedField(scans Scans) any {
	last := scans.LastUpdated()
	if last.IsZero() {
		return nil
	}
	return last.UTC().Format(time.RFC3339)
}
