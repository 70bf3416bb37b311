package kalshi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgoodwin/marketarb/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{BaseURL: srv.URL})
}

func TestCheckExchangeStatus(t *testing.T) {
	active := true
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/exchange/status", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{
			"exchange_active": active,
			"trading_active":  active,
		})
	}))

	require.NoError(t, c.CheckExchangeStatus(context.Background()))

	active = false
	err := c.CheckExchangeStatus(context.Background())
	assert.ErrorIs(t, err, domain.ErrExchangeInactive)
}

func TestGetMarketsFollowsCursor(t *testing.T) {
	var cursorsSeen []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/markets", r.URL.Path)
		cursor := r.URL.Query().Get("cursor")
		cursorsSeen = append(cursorsSeen, cursor)

		switch cursor {
		case "":
			markets := make([]APIMarket, 0, 100)
			for i := 0; i < 100; i++ {
				markets = append(markets, APIMarket{Ticker: fmt.Sprintf("TICK-%03d", i)})
			}
			json.NewEncoder(w).Encode(map[string]any{"markets": markets, "cursor": "page2"})
		case "page2":
			json.NewEncoder(w).Encode(map[string]any{
				"markets": []APIMarket{{Ticker: "TICK-100"}, {Ticker: "TICK-101"}},
				"cursor":  "",
			})
		default:
			t.Fatalf("unexpected cursor %q", cursor)
		}
	}))

	markets, err := c.GetMarkets(context.Background(), MarketsQuery{Status: "open", Limit: 150})
	require.NoError(t, err)
	assert.Len(t, markets, 102)
	assert.Equal(t, []string{"", "page2"}, cursorsSeen)
	assert.Equal(t, "TICK-101", markets[101].Ticker)
}

func TestGetMarketsPassesFilters(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "KXNBAGAME", q.Get("series_ticker"))
		assert.Equal(t, "open", q.Get("status"))
		assert.Equal(t, "1700000000", q.Get("min_close_ts"))
		json.NewEncoder(w).Encode(map[string]any{"markets": []APIMarket{}})
	}))

	_, err := c.GetMarkets(context.Background(), MarketsQuery{
		SeriesTicker: "KXNBAGAME",
		Status:       "open",
		MinCloseTS:   1700000000,
	})
	require.NoError(t, err)
}

func TestGetMarketDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/markets/KXSB-26-KC", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"market": APIMarket{Ticker: "KXSB-26-KC", Status: "open", LastPrice: 22},
		})
	}))

	m, err := c.GetMarket(context.Background(), "KXSB-26-KC")
	require.NoError(t, err)
	assert.Equal(t, "KXSB-26-KC", m.Ticker)
	assert.InDelta(t, 0.22, m.YesPrice, 1e-9)
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrUnauthorized},
		{http.StatusTooManyRequests, domain.ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				json.NewEncoder(w).Encode(apiErrorResponse{Code: "nope", Message: "denied"})
			}))
			_, err := c.GetMarkets(context.Background(), MarketsQuery{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetSportsMarketsFiltersAndTags(t *testing.T) {
	now := time.Now().UTC()
	soon := now.Add(6 * time.Hour).Format(time.RFC3339)
	farOut := now.Add(200 * time.Hour).Format(time.RFC3339)
	past := now.Add(-2 * time.Hour).Format(time.RFC3339)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		series := r.URL.Query().Get("series_ticker")
		var markets []APIMarket
		switch series {
		case "KXNBAGAME":
			markets = []APIMarket{
				{Ticker: "KXNBAGAME-26JAN12UTACLE-UTA", Status: "open", LastPrice: 55, ExpectedExpirationTime: soon},
				{Ticker: "KXNBAGAME-26FEB01BOSLAL-BOS", Status: "open", LastPrice: 60, ExpectedExpirationTime: farOut},
				{Ticker: "KXNBAGAME-26JAN10NYKCHI-NYK", Status: "open", LastPrice: 40, ExpectedExpirationTime: past},
			}
		case "KXNBAPTS":
			markets = []APIMarket{
				{Ticker: "KXNBAPTS-26JAN12-LBJ-30", Status: "open", LastPrice: 45, ExpectedExpirationTime: soon},
			}
		case "KXSB":
			markets = []APIMarket{
				{Ticker: "KXSB-26-KC", Status: "open", LastPrice: 22, ExpectedExpirationTime: farOut},
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"markets": markets})
	}))

	markets, err := c.GetSportsMarkets(context.Background(), 48*time.Hour)
	require.NoError(t, err)

	byTicker := make(map[string]domain.Market, len(markets))
	for _, m := range markets {
		byTicker[m.Ticker] = m
	}

	// Single game inside the window is kept and tagged by sport.
	game, ok := byTicker["KXNBAGAME-26JAN12UTACLE-UTA"]
	require.True(t, ok)
	assert.Equal(t, "single_game_nba", game.Category)

	// Games outside the expiration window are dropped, in both directions.
	assert.NotContains(t, byTicker, "KXNBAGAME-26FEB01BOSLAL-BOS")
	assert.NotContains(t, byTicker, "KXNBAGAME-26JAN10NYKCHI-NYK")

	// Props share the window filter but get their own category.
	prop, ok := byTicker["KXNBAPTS-26JAN12-LBJ-30"]
	require.True(t, ok)
	assert.Equal(t, "props_nba", prop.Category)

	// Futures are never window-filtered.
	future, ok := byTicker["KXSB-26-KC"]
	require.True(t, ok)
	assert.Equal(t, "futures", future.Category)
}

func TestSearchMarketsFiltersLocally(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"markets": []APIMarket{
			{Ticker: "KXSB-26-KC", Title: "Super Bowl winner", Status: "open", LastPrice: 22},
			{Ticker: "KXNBA-26-OKC", Title: "NBA champion", Status: "open", LastPrice: 30},
		}})
	}))

	markets, err := c.SearchMarkets(context.Background(), "super bowl", 100)
	require.NoError(t, err)
	require.Len(t, markets, 1)
	assert.Equal(t, "KXSB-26-KC", markets[0].Ticker)
}
