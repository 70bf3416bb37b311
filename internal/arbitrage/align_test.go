package arbitrage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgoodwin/marketarb/internal/domain"
	"github.com/tgoodwin/marketarb/internal/normalize"
)

func newAligner(t *testing.T) *Aligner {
	t.Helper()
	return NewAligner(normalize.New(normalize.Config{}), nil)
}

func gamePair(ticker string) domain.MatchedPair {
	return domain.MatchedPair{
		Polymarket: domain.Market{
			ID: "p1", Venue: domain.VenuePolymarket,
			Title: "Utah Jazz vs Cleveland Cavaliers", YesPrice: 0.40, NoPrice: 0.60,
		},
		Kalshi: domain.Market{
			ID: "k1", Venue: domain.VenueKalshi,
			Title: "Jazz at Cavaliers winner?", Ticker: ticker,
			YesPrice: 0.55, NoPrice: 0.45,
		},
		Score:    1.0,
		Method:   "single_game_match",
		League:   "nba",
		AwayTeam: "Utah Jazz",
		HomeTeam: "Cleveland Cavaliers",
	}
}

func TestAlignKeepsAwaySuffix(t *testing.T) {
	a := newAligner(t)

	aligned := a.Align([]domain.MatchedPair{gamePair("KXNBAGAME-26JAN12UTACLE-UTA")})
	require.Len(t, aligned, 1)
	assert.Equal(t, 0.55, aligned[0].Kalshi.YesPrice)
	assert.Equal(t, 0.45, aligned[0].Kalshi.NoPrice)
}

func TestAlignFlipsHomeSuffix(t *testing.T) {
	a := newAligner(t)

	aligned := a.Align([]domain.MatchedPair{gamePair("KXNBAGAME-26JAN12UTACLE-CLE")})
	require.Len(t, aligned, 1)
	assert.Equal(t, 0.45, aligned[0].Kalshi.YesPrice)
	assert.Equal(t, 0.55, aligned[0].Kalshi.NoPrice)
}

func TestAlignDiscardsUnknownSuffix(t *testing.T) {
	a := newAligner(t)

	assert.Empty(t, a.Align([]domain.MatchedPair{gamePair("KXNBAGAME-26JAN12UTACLE-ZZZ")}))
	assert.Empty(t, a.Align([]domain.MatchedPair{gamePair("NOTENOUGHPARTS")}))
}

func TestAlignFuturesPassThrough(t *testing.T) {
	a := newAligner(t)

	pair := domain.MatchedPair{
		Polymarket: domain.Market{ID: "p1", Venue: domain.VenuePolymarket, YesPrice: 0.30, NoPrice: 0.70},
		Kalshi:     domain.Market{ID: "k1", Venue: domain.VenueKalshi, Ticker: "KXNFLCHAMP-26-KC", YesPrice: 0.25, NoPrice: 0.75},
		Score:      1.0,
		Method:     "championship_match",
		League:     "nfl",
		Team:       "Kansas City Chiefs",
	}

	aligned := a.Align([]domain.MatchedPair{pair})
	require.Len(t, aligned, 1)
	assert.Equal(t, pair, aligned[0])
}

func TestSportsOpportunitiesRawGapMath(t *testing.T) {
	pairs := []domain.MatchedPair{
		func() domain.MatchedPair {
			p := gamePair("KXNBAGAME-26JAN12UTACLE-UTA")
			p.Polymarket.YesPrice = 0.40
			p.Kalshi.YesPrice = 0.55
			return p
		}(),
		func() domain.MatchedPair {
			p := gamePair("KXNBAGAME-26JAN13UTABOS-UTA")
			p.Polymarket.YesPrice = 0.50
			p.Kalshi.YesPrice = 0.52
			return p
		}(),
	}

	opps := SportsOpportunities(pairs)
	require.Len(t, opps, 2)

	// Sorted by percent gap descending; percent and bps come straight off
	// the raw gap, no fees.
	assert.InDelta(t, 15.0, opps[0].PriceDiffPercent, 1e-9)
	assert.Equal(t, 1500, opps[0].ProfitBps)
	assert.Equal(t, domain.VenuePolymarket, opps[0].BuyVenue)
	assert.True(t, opps[0].Profitable)
	assert.Zero(t, opps[0].NetProfit)

	assert.InDelta(t, 2.0, opps[1].PriceDiffPercent, 1e-9)
	assert.Equal(t, 200, opps[1].ProfitBps)
}
