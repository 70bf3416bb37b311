package polymarket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgoodwin/marketarb/internal/domain"
)

func TestFlexFieldsDecodeBothShapes(t *testing.T) {
	// Gamma sends outcomePrices as a real array on some endpoints and as a
	// JSON-encoded string on others; same for booleans and numbers.
	cases := []struct {
		name string
		body string
	}{
		{
			name: "native types",
			body: `{"id":"1","outcomePrices":["0.42","0.58"],"active":true,"volume":1234.5}`,
		},
		{
			name: "stringly types",
			body: `{"id":"1","outcomePrices":"[\"0.42\", \"0.58\"]","active":"true","volume":"1234.5"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m APIMarket
			require.NoError(t, json.Unmarshal([]byte(tc.body), &m))
			assert.InDelta(t, 0.42, m.YesPrice(), 1e-9)
			assert.InDelta(t, 0.58, m.NoPrice(), 1e-9)
			assert.True(t, bool(m.Active))
			assert.InDelta(t, 1234.5, float64(m.Volume), 1e-9)
		})
	}
}

func TestNoPriceComplementsSingleQuote(t *testing.T) {
	m := APIMarket{OutcomePrices: flexStrings{"0.30"}}
	assert.InDelta(t, 0.70, m.NoPrice(), 1e-9)
}

func TestYesPriceEmptyIsZero(t *testing.T) {
	m := APIMarket{}
	assert.Zero(t, m.YesPrice())
}

func TestToDomainMarket(t *testing.T) {
	m := APIMarket{
		ID:            "514652",
		Question:      "Will the Jazz beat the Cavaliers?",
		Slug:          "nba-uta-cle-2026-01-12",
		Description:   "Resolves YES if Utah wins.",
		OutcomePrices: flexStrings{"0.40", "0.60"},
		Volume:        50000,
		Liquidity:     12000,
		EndDate:       "2026-01-13T04:00:00Z",
		Category:      "sports",
	}

	dm := m.ToDomainMarket()
	assert.Equal(t, "514652", dm.ID)
	assert.Equal(t, domain.VenuePolymarket, dm.Venue)
	assert.Equal(t, "Will the Jazz beat the Cavaliers?", dm.Title)
	assert.Equal(t, domain.MarketStatusActive, dm.Status)
	assert.InDelta(t, 0.40, dm.YesPrice, 1e-9)
	assert.InDelta(t, 0.60, dm.NoPrice, 1e-9)
	assert.Equal(t, "nba-uta-cle-2026-01-12", dm.Slug)
	require.NotNil(t, dm.EndDate)
	assert.Equal(t, "2026-01-13T04:00:00Z", dm.EndDate.UTC().Format("2006-01-02T15:04:05Z"))
}

func TestToDomainMarketClosed(t *testing.T) {
	m := APIMarket{ID: "1", Closed: true}
	assert.Equal(t, domain.MarketStatusClosed, m.ToDomainMarket().Status)
}
