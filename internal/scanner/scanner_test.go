package scanner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgoodwin/marketarb/internal/arbitrage"
	"github.com/tgoodwin/marketarb/internal/domain"
	"github.com/tgoodwin/marketarb/internal/match"
	"github.com/tgoodwin/marketarb/internal/normalize"
)

type fakePolymarket struct {
	markets []domain.Market
	sports  []domain.Market
	err     error
	block   chan struct{} // when set, GetAllActiveMarkets waits on it
}

func (f *fakePolymarket) GetAllActiveMarkets(ctx context.Context, max int) ([]domain.Market, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.markets, f.err
}

func (f *fakePolymarket) GetSportsMarkets(ctx context.Context, max int) ([]domain.Market, error) {
	return f.sports, f.err
}

type fakeKalshi struct {
	markets   []domain.Market
	sports    []domain.Market
	err       error
	statusErr error
}

func (f *fakeKalshi) CheckExchangeStatus(ctx context.Context) error { return f.statusErr }

func (f *fakeKalshi) GetAllOpenMarkets(ctx context.Context, max int) ([]domain.Market, error) {
	return f.markets, f.err
}

func (f *fakeKalshi) GetSportsMarkets(ctx context.Context, window time.Duration) ([]domain.Market, error) {
	return f.sports, f.err
}

type fakeAlerts struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeAlerts) Notify(ctx context.Context, event, title, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeAlerts) Events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func market(id string, venue domain.Venue, title string, yes float64) domain.Market {
	return domain.Market{
		ID:       id,
		Venue:    venue,
		Title:    title,
		YesPrice: yes,
		NoPrice:  1 - yes,
		Status:   domain.MarketStatusActive,
	}
}

func newScanner(t *testing.T, cfg Config) *Scanner {
	t.Helper()
	n := normalize.New(normalize.Config{})
	cfg.Generic = match.NewGenericMatcher(match.GenericConfig{})
	cfg.Sports = match.NewSportsMatcher(match.SportsConfig{Normalizer: n})
	cfg.Aligner = arbitrage.NewAligner(n, nil)
	cfg.Detector = arbitrage.NewDetector(arbitrage.DetectorConfig{MinDifferencePercent: 0})
	return New(cfg)
}

func TestRefreshBuildsSnapshot(t *testing.T) {
	title := "Will Bitcoin reach $100,000 by March 2026?"
	s := newScanner(t, Config{
		Polymarket: &fakePolymarket{
			markets: []domain.Market{market("p1", domain.VenuePolymarket, title, 0.40)},
		},
		Kalshi: &fakeKalshi{
			markets: []domain.Market{market("k1", domain.VenueKalshi, title, 0.52)},
		},
	})

	require.True(t, s.IsStale())
	require.NoError(t, s.Refresh(context.Background()))

	snap := s.Snapshot()
	assert.Len(t, snap.PolymarketMarkets, 1)
	assert.Len(t, snap.KalshiMarkets, 1)
	require.Len(t, snap.Generic, 1)
	assert.Equal(t, domain.VenuePolymarket, snap.Generic[0].BuyVenue)
	assert.False(t, snap.LastUpdated.IsZero())
	assert.False(t, s.IsStale())
}

func TestRefreshMatchesSports(t *testing.T) {
	polyGame := market("p1", domain.VenuePolymarket, "Utah Jazz vs Cleveland Cavaliers", 0.40)
	polyGame.Slug = "nba-uta-cle-2026-01-12"
	kalshiGame := market("k1", domain.VenueKalshi, "Jazz at Cavaliers winner?", 0.55)
	kalshiGame.Ticker = "KXNBAGAME-26JAN12UTACLE-UTA"

	s := newScanner(t, Config{
		Polymarket: &fakePolymarket{sports: []domain.Market{polyGame}},
		Kalshi:     &fakeKalshi{sports: []domain.Market{kalshiGame}},
	})

	require.NoError(t, s.Refresh(context.Background()))

	sports := s.Opportunities(KindSports)
	require.Len(t, sports, 1)
	assert.Equal(t, "single_game_match", sports[0].MatchMethod)
	assert.Equal(t, 1500, sports[0].ProfitBps)
	assert.Equal(t, domain.VenuePolymarket, sports[0].BuyVenue)
}

func TestRefreshSingleFlight(t *testing.T) {
	block := make(chan struct{})
	s := newScanner(t, Config{
		Polymarket: &fakePolymarket{block: block},
		Kalshi:     &fakeKalshi{},
	})

	done := make(chan error, 1)
	go func() { done <- s.Refresh(context.Background()) }()

	// Wait for the first refresh to take the guard.
	require.Eventually(t, s.RefreshInProgress, time.Second, time.Millisecond)

	err := s.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrRefreshInProgress)

	close(block)
	require.NoError(t, <-done)
	assert.False(t, s.RefreshInProgress())
}

func TestRefreshDegradesOnVenueFailure(t *testing.T) {
	s := newScanner(t, Config{
		Polymarket: &fakePolymarket{err: errors.New("gamma down")},
		Kalshi: &fakeKalshi{
			markets: []domain.Market{market("k1", domain.VenueKalshi, "Fed cuts rates in March 2026?", 0.30)},
		},
	})

	require.NoError(t, s.Refresh(context.Background()))

	snap := s.Snapshot()
	assert.Empty(t, snap.PolymarketMarkets)
	assert.Len(t, snap.KalshiMarkets, 1)
	assert.Empty(t, snap.Generic)
}

func TestRefreshSkipsKalshiWhenExchangeInactive(t *testing.T) {
	s := newScanner(t, Config{
		Polymarket: &fakePolymarket{
			markets: []domain.Market{market("p1", domain.VenuePolymarket, "Fed cuts rates in March 2026?", 0.30)},
		},
		Kalshi: &fakeKalshi{
			markets:   []domain.Market{market("k1", domain.VenueKalshi, "Fed cuts rates in March 2026?", 0.35)},
			statusErr: domain.ErrExchangeInactive,
		},
	})

	require.NoError(t, s.Refresh(context.Background()))
	assert.Empty(t, s.Markets(domain.VenueKalshi))
	assert.Len(t, s.Markets(domain.VenuePolymarket), 1)
}

func TestRefreshAlertsAboveFloor(t *testing.T) {
	title := "Will Bitcoin reach $100,000 by March 2026?"
	alerts := &fakeAlerts{}
	s := newScanner(t, Config{
		Polymarket: &fakePolymarket{
			markets: []domain.Market{market("p1", domain.VenuePolymarket, title, 0.40)},
		},
		Kalshi: &fakeKalshi{
			markets: []domain.Market{market("k1", domain.VenueKalshi, title, 0.52)},
		},
		Alerts:      alerts,
		AlertMinBps: 100,
	})

	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, []string{"arb_detected"}, alerts.Events())
}

func TestRefreshNoAlertBelowFloor(t *testing.T) {
	title := "Will Bitcoin reach $100,000 by March 2026?"
	alerts := &fakeAlerts{}
	s := newScanner(t, Config{
		Polymarket: &fakePolymarket{
			markets: []domain.Market{market("p1", domain.VenuePolymarket, title, 0.40)},
		},
		Kalshi: &fakeKalshi{
			markets: []domain.Market{market("k1", domain.VenueKalshi, title, 0.52)},
		},
		Alerts:      alerts,
		AlertMinBps: 5000,
	})

	require.NoError(t, s.Refresh(context.Background()))
	assert.Empty(t, alerts.Events())
}

func TestOpportunitiesByKind(t *testing.T) {
	s := newScanner(t, Config{Polymarket: &fakePolymarket{}, Kalshi: &fakeKalshi{}})
	require.NoError(t, s.Refresh(context.Background()))
	assert.Empty(t, s.Opportunities(KindGeneric))
	assert.Empty(t, s.Opportunities(KindSports))
}
