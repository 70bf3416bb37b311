package handler

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// leaguePattern limits the league filter to the big four; anything else is a
// client error rather than a silent empty result.
var leaguePattern = regexp.MustCompile(`^(nfl|nba|mlb|nhl)$`)

// SportsHandler serves sports arbitrage results and the sports refresh
// trigger.
type SportsHandler struct {
	scans  Scans
	logger *slog.Logger
}

// NewSportsHandler creates a SportsHandler.
func NewSportsHandler(scans Scans, logger *slog.Logger) *SportsHandler {
	return &SportsHandler{scans: scans, logger: logHandler(logger, "sports")}
}

// ListOpportunities serves the current sports opportunity list with a
// by-league breakdown.
// GET /api/sports/arbitrage?min_difference=&league=&limit=
func (h *SportsHandler) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	minDiff := queryFloat(r, "min_difference", 1.0, 0, 100)
	limit := queryInt(r, "limit", 50, 1, 200)

	league := r.URL.Query().Get("league")
	if league != "" && !leaguePattern.MatchString(league) {
		writeError(w, http.StatusBadRequest, "league must be one of nfl, nba, mlb, nhl")
		return
	}

	var opps []domain.Opportunity
	byLeague := make(map[string]int)
	var sumPercent float64
	for _, o := range h.scans.Opportunities(kindSports) {
		if o.PriceDiffPercent < minDiff {
			continue
		}
		if league != "" && o.League != league {
			continue
		}
		opps = append(opps, o)
		if o.League != "" {
			byLeague[o.League]++
		}
		sumPercent += o.PriceDiffPercent
	}

	avgDiff := 0.0
	if len(opps) > 0 {
		avgDiff = sumPercent / float64(len(opps))
	}

	total := len(opps)
	if len(opps) > limit {
		opps = opps[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":          total,
		"opportunities":  opps,
		"by_league":      byLeague,
		"avg_difference": avgDiff,
		"last_updated":   lastUpdatedField(h.scans),
		"is_stale":       h.scans.IsStale(),
	})
}

// TriggerRefresh starts a scan cycle in the background, same contract as the
// generic refresh trigger.
// POST /api/sports/refresh
func (h *SportsHandler) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	if h.scans.RefreshInProgress() {
		writeJSON(w, http.StatusConflict, map[string]string{"status": "in_progress"})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := h.scans.Refresh(ctx); err != nil {
			h.logger.Warn("background sports refresh failed", slog.String("error", err.Error()))
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}
