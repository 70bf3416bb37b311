package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgoodwin/marketarb/internal/domain"
)

type fakeScans struct {
	generic     []domain.Opportunity
	sports      []domain.Opportunity
	markets     map[domain.Venue][]domain.Market
	lastUpdated time.Time
	stale       bool
	inProgress  bool
	refreshes   atomic.Int32
}

func (f *fakeScans) Refresh(ctx context.Context) error {
	if f.inProgress {
		return domain.ErrRefreshInProgress
	}
	f.refreshes.Add(1)
	return nil
}

func (f *fakeScans) RefreshInProgress() bool { return f.inProgress }

func (f *fakeScans) Opportunities(kind string) []domain.Opportunity {
	if kind == kindSports {
		return f.sports
	}
	return f.generic
}

func (f *fakeScans) Markets(venue domain.Venue) []domain.Market { return f.markets[venue] }
func (f *fakeScans) LastUpdated() time.Time                     { return f.lastUpdated }
func (f *fakeScans) IsStale() bool                              { return f.stale }

func opp(percent float64, bps int, league string) domain.Opportunity {
	return domain.Opportunity{
		PriceDiffPercent: percent,
		ProfitBps:        bps,
		League:           league,
		Profitable:       bps > 0,
		Type:             domain.OpportunitySimple,
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestArbListFiltersAndSummarizes(t *testing.T) {
	scans := &fakeScans{
		generic:     []domain.Opportunity{opp(12, 900, ""), opp(3, 100, ""), opp(0.5, -20, "")},
		lastUpdated: time.Now(),
	}
	h := NewArbHandler(scans, nil, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/arbitrage?min_difference=2", nil)
	rec := httptest.NewRecorder()
	h.ListOpportunities(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["count"])
	assert.NotNil(t, body["last_updated"])
	assert.Equal(t, false, body["is_stale"])

	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(2), summary["total"])
}

func TestArbListRespectsLimit(t *testing.T) {
	scans := &fakeScans{generic: []domain.Opportunity{opp(5, 500, ""), opp(4, 400, ""), opp(3, 300, "")}}
	h := NewArbHandler(scans, nil, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/arbitrage?limit=2", nil)
	rec := httptest.NewRecorder()
	h.ListOpportunities(rec, req)

	body := decode(t, rec)
	assert.Equal(t, float64(2), body["count"])
	// Summary still covers everything passing the filter, not just the page.
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(3), summary["total"])
}

func TestArbTopEmptyIs404(t *testing.T) {
	h := NewArbHandler(&fakeScans{}, nil, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/arbitrage/top", nil)
	rec := httptest.NewRecorder()
	h.TopOpportunities(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArbTopN(t *testing.T) {
	scans := &fakeScans{generic: []domain.Opportunity{opp(5, 500, ""), opp(4, 400, ""), opp(3, 300, "")}}
	h := NewArbHandler(scans, nil, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/arbitrage/top?n=2", nil)
	rec := httptest.NewRecorder()
	h.TopOpportunities(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["count"])
}

func TestTriggerRefreshStartsBackground(t *testing.T) {
	scans := &fakeScans{}
	h := NewArbHandler(scans, nil, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/arbitrage/refresh", nil)
	rec := httptest.NewRecorder()
	h.TriggerRefresh(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "started", decode(t, rec)["status"])

	require.Eventually(t, func() bool { return scans.refreshes.Load() == 1 },
		time.Second, time.Millisecond)
}

func TestTriggerRefreshConflictWhenRunning(t *testing.T) {
	scans := &fakeScans{inProgress: true}
	h := NewArbHandler(scans, nil, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/arbitrage/refresh", nil)
	rec := httptest.NewRecorder()
	h.TriggerRefresh(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "in_progress", decode(t, rec)["status"])
}

func TestSportsListDefaultMinDifference(t *testing.T) {
	scans := &fakeScans{
		sports: []domain.Opportunity{opp(2.5, 250, "nba"), opp(0.5, 50, "nfl"), opp(4, 400, "nba")},
	}
	h := NewSportsHandler(scans, slog.Default())

	// Default min_difference of 1.0 drops the 0.5% gap.
	req := httptest.NewRequest(http.MethodGet, "/api/sports/arbitrage", nil)
	rec := httptest.NewRecorder()
	h.ListOpportunities(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["count"])

	byLeague := body["by_league"].(map[string]any)
	assert.Equal(t, float64(2), byLeague["nba"])
	assert.InDelta(t, 3.25, body["avg_difference"].(float64), 1e-9)
}

func TestSportsListLeagueFilter(t *testing.T) {
	scans := &fakeScans{
		sports: []domain.Opportunity{opp(2.5, 250, "nba"), opp(3, 300, "nfl")},
	}
	h := NewSportsHandler(scans, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/sports/arbitrage?league=nfl", nil)
	rec := httptest.NewRecorder()
	h.ListOpportunities(rec, req)

	body := decode(t, rec)
	assert.Equal(t, float64(1), body["count"])
}

func TestSportsListRejectsUnknownLeague(t *testing.T) {
	h := NewSportsHandler(&fakeScans{}, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/sports/arbitrage?league=cricket", nil)
	rec := httptest.NewRecorder()
	h.ListOpportunities(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListVenueMarketsClampsLimit(t *testing.T) {
	markets := make([]domain.Market, 300)
	for i := range markets {
		markets[i] = domain.Market{ID: "m", Venue: domain.VenuePolymarket}
	}
	scans := &fakeScans{markets: map[domain.Venue][]domain.Market{
		domain.VenuePolymarket: markets,
	}}
	h := NewMarketHandler(scans, nil, nil, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/markets/polymarket", nil)
	rec := httptest.NewRecorder()
	h.ListPolymarket(rec, req)

	body := decode(t, rec)
	// Default limit is 100.
	assert.Equal(t, float64(100), body["count"])
	assert.Equal(t, "polymarket", body["platform"])
}

func TestListVenueMarketsRefreshQuery(t *testing.T) {
	scans := &fakeScans{markets: map[domain.Venue][]domain.Market{}}
	h := NewMarketHandler(scans, nil, nil, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/markets/kalshi?refresh=true", nil)
	rec := httptest.NewRecorder()
	h.ListKalshi(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), scans.refreshes.Load())
}

func TestSearchRequiresQuery(t *testing.T) {
	h := NewMarketHandler(&fakeScans{}, nil, nil, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/markets/search", nil)
	rec := httptest.NewRecorder()
	h.SearchMarkets(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeStream struct {
	msgs   []domain.StreamMessage
	err    error
	lastID string
	lastN  int
	stream string
}

func (f *fakeStream) StreamRead(ctx context.Context, stream, lastID string, count int) ([]domain.StreamMessage, error) {
	f.stream = stream
	f.lastID = lastID
	f.lastN = count
	return f.msgs, f.err
}

func TestArbHistoryReturnsStreamEntries(t *testing.T) {
	stream := &fakeStream{msgs: []domain.StreamMessage{
		{ID: "1700000000000-0", Payload: []byte(`[{"profit_bps":900}]`)},
		{ID: "1700000000001-0", Payload: []byte(`[]`)},
	}}
	h := NewArbHandler(&fakeScans{}, stream, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/arbitrage/history?after=1699999999999-0&limit=5", nil)
	rec := httptest.NewRecorder()
	h.History(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "arb:refreshes", stream.stream)
	assert.Equal(t, "1699999999999-0", stream.lastID)
	assert.Equal(t, 5, stream.lastN)

	body := decode(t, rec)
	assert.Equal(t, float64(2), body["count"])
	entries := body["entries"].([]any)
	first := entries[0].(map[string]any)
	assert.Equal(t, "1700000000000-0", first["id"])
}

func TestArbHistoryDefaultsCursorToStart(t *testing.T) {
	stream := &fakeStream{}
	h := NewArbHandler(&fakeScans{}, stream, slog.Default())

	rec := httptest.NewRecorder()
	h.History(rec, httptest.NewRequest(http.MethodGet, "/api/arbitrage/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", stream.lastID)
	assert.Equal(t, float64(0), decode(t, rec)["count"])
}

func TestArbHistoryUnavailableWithoutBus(t *testing.T) {
	h := NewArbHandler(&fakeScans{}, nil, slog.Default())

	rec := httptest.NewRecorder()
	h.History(rec, httptest.NewRequest(http.MethodGet, "/api/arbitrage/history", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDebugMarketsSamplesBothVenues(t *testing.T) {
	many := make([]domain.Market, 30)
	for i := range many {
		many[i] = domain.Market{ID: "p", Title: "Will it happen?", Venue: domain.VenuePolymarket}
	}
	scans := &fakeScans{markets: map[domain.Venue][]domain.Market{
		domain.VenuePolymarket: many,
		domain.VenueKalshi:     {{ID: "k1", Title: "Jazz to win?", Venue: domain.VenueKalshi}},
	}}
	h := NewMarketHandler(scans, nil, nil, slog.Default())

	rec := httptest.NewRecorder()
	h.DebugMarkets(rec, httptest.NewRequest(http.MethodGet, "/api/debug/markets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)

	poly := body["polymarket"].(map[string]any)
	assert.Equal(t, float64(30), poly["count"])
	assert.Len(t, poly["samples"].([]any), 20)

	kalshi := body["kalshi"].(map[string]any)
	assert.Equal(t, float64(1), kalshi["count"])
}

type fakeSearcher struct{ markets []domain.Market }

func (f *fakeSearcher) SearchMarkets(ctx context.Context, query string, limit int) ([]domain.Market, error) {
	return f.markets, nil
}

func TestSearchSingleVenue(t *testing.T) {
	poly := &fakeSearcher{markets: []domain.Market{{ID: "p1", Venue: domain.VenuePolymarket}}}
	kalshi := &fakeSearcher{markets: []domain.Market{{ID: "k1", Venue: domain.VenueKalshi}}}
	h := NewMarketHandler(&fakeScans{}, poly, kalshi, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/markets/search?q=bitcoin&platform=polymarket", nil)
	rec := httptest.NewRecorder()
	h.SearchMarkets(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["count"])
	results := body["results"].(map[string]any)
	assert.Contains(t, results, "polymarket")
	assert.NotContains(t, results, "kalshi")
}

func TestStatusReportsSnapshotState(t *testing.T) {
	scans := &fakeScans{
		stale:       true,
		lastUpdated: time.Time{},
		markets: map[domain.Venue][]domain.Market{
			domain.VenuePolymarket: {{ID: "p1"}},
		},
	}
	h := NewStatusHandler("full", time.Now().Add(-time.Minute), scans)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	h.GetStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "full", body["mode"])
	assert.Equal(t, true, body["is_stale"])
	assert.Nil(t, body["last_updated"])
	assert.Equal(t, float64(1), body["polymarket_markets"])
}
