package kalshi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgoodwin/marketarb/internal/domain"
)

func TestYesPricePreference(t *testing.T) {
	tests := []struct {
		name   string
		market APIMarket
		want   float64
	}{
		{"last price wins", APIMarket{LastPrice: 52, YesAsk: 55, YesBid: 50}, 0.52},
		{"ask when no last", APIMarket{YesAsk: 55, YesBid: 50}, 0.55},
		{"bid when no ask", APIMarket{YesBid: 48}, 0.48},
		{"fallback to 50 cents", APIMarket{}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.market.YesPrice(), 1e-9)
		})
	}
}

func TestQuestionTitle(t *testing.T) {
	m := APIMarket{Title: "Will the Jazz win?", Subtitle: "Jazz at Cavaliers"}
	assert.Equal(t, "Will the Jazz win? - Jazz at Cavaliers", m.QuestionTitle())

	m = APIMarket{Title: "Will the Jazz win?", SubTitle: "Jazz at Cavaliers"}
	assert.Equal(t, "Will the Jazz win? - Jazz at Cavaliers", m.QuestionTitle())

	m = APIMarket{Title: "Will the Jazz win?"}
	assert.Equal(t, "Will the Jazz win?", m.QuestionTitle())
}

func TestToDomainMarket(t *testing.T) {
	m := APIMarket{
		Ticker:                 "KXNBAGAME-26JAN12UTACLE-UTA",
		EventTicker:            "KXNBAGAME-26JAN12UTACLE",
		Title:                  "Will the Jazz beat the Cavaliers?",
		Status:                 "open",
		LastPrice:              55,
		Volume:                 1200,
		OpenInterest:           300,
		CloseTime:              "2026-01-26T00:00:00Z",
		ExpectedExpirationTime: "2026-01-13T04:00:00Z",
	}

	dm := m.ToDomainMarket()
	assert.Equal(t, domain.VenueKalshi, dm.Venue)
	assert.Equal(t, "KXNBAGAME-26JAN12UTACLE-UTA", dm.ID)
	assert.Equal(t, "KXNBAGAME-26JAN12UTACLE-UTA", dm.Ticker)
	assert.Equal(t, "KXNBAGAME-26JAN12UTACLE", dm.EventTicker)
	assert.Equal(t, domain.MarketStatusActive, dm.Status)
	assert.InDelta(t, 0.55, dm.YesPrice, 1e-9)
	assert.InDelta(t, 0.45, dm.NoPrice, 1e-9)
	assert.Equal(t, float64(1200), dm.Volume)
	assert.Equal(t, float64(300), dm.Liquidity)

	// EndDate comes from the expected expiration, not the trading close.
	require.NotNil(t, dm.EndDate)
	assert.Equal(t, time.Date(2026, 1, 13, 4, 0, 0, 0, time.UTC), dm.EndDate.UTC())
}

func TestToDomainMarketClosedFallsBackToCloseTime(t *testing.T) {
	m := APIMarket{
		Ticker:    "KXSB-26-KC",
		Status:    "closed",
		CloseTime: "2026-02-09T00:00:00Z",
	}

	dm := m.ToDomainMarket()
	assert.Equal(t, domain.MarketStatusClosed, dm.Status)
	require.NotNil(t, dm.EndDate)
	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), dm.EndDate.UTC())
}

func TestSeriesSportExtraction(t *testing.T) {
	assert.Equal(t, "nba", gameSport("KXNBAGAME"))
	assert.Equal(t, "ufcfight", gameSport("KXUFCFIGHT"))
	assert.Equal(t, "nba", propsSport("KXNBAPTS"))
	assert.Equal(t, "nfl", propsSport("KXNFLPASS"))
	assert.Equal(t, "mlb", propsSport("KXMLBHR"))
}
