package kalshi

import (
	"time"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// APIMarket represents a market as returned by the Kalshi REST API. All
// prices are in cents (0-100).
type APIMarket struct {
	Ticker       string `json:"ticker"`
	EventTicker  string `json:"event_ticker"`
	SeriesTicker string `json:"series_ticker"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	SubTitle     string `json:"sub_title"`
	Status       string `json:"status"` // "open", "closed", "settled"

	YesBid    int `json:"yes_bid"`
	YesAsk    int `json:"yes_ask"`
	NoBid     int `json:"no_bid"`
	NoAsk     int `json:"no_ask"`
	LastPrice int `json:"last_price"`

	Volume       int64 `json:"volume"`
	Volume24H    int64 `json:"volume_24h"`
	OpenInterest int64 `json:"open_interest"`

	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	// ExpectedExpirationTime is when the underlying event resolves. CloseTime
	// is when trading closes, which for sports runs weeks past the game.
	ExpectedExpirationTime string `json:"expected_expiration_time"`

	Result   string `json:"result"` // "yes", "no", "" (unsettled)
	Category string `json:"category"`
}

// APISeries represents a Kalshi series, the template grouping recurring
// events (e.g. KXNBAGAME for every NBA game).
type APISeries struct {
	Ticker    string `json:"ticker"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Frequency string `json:"frequency"`
}

// APIEvent represents a Kalshi event, one occurrence within a series.
type APIEvent struct {
	EventTicker  string `json:"event_ticker"`
	SeriesTicker string `json:"series_ticker"`
	Title        string `json:"title"`
	SubTitle     string `json:"sub_title"`
	Category     string `json:"category"`
	StrikeDate   string `json:"strike_date"`
}

// apiErrorResponse is the Kalshi API error body.
type apiErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// centsToDecimal converts a Kalshi cents price (0-100) to a 0-1 probability.
func centsToDecimal(cents int) float64 {
	return float64(cents) / 100.0
}

// YesPrice returns the best available YES price in 0-1 terms, preferring the
// last traded price, then the ask, then the bid, falling back to 50 cents
// when the market has no price data at all.
func (m *APIMarket) YesPrice() float64 {
	switch {
	case m.LastPrice > 0:
		return centsToDecimal(m.LastPrice)
	case m.YesAsk > 0:
		return centsToDecimal(m.YesAsk)
	case m.YesBid > 0:
		return centsToDecimal(m.YesBid)
	default:
		return 0.5
	}
}

// QuestionTitle joins title and subtitle into the display question.
func (m *APIMarket) QuestionTitle() string {
	sub := m.Subtitle
	if sub == "" {
		sub = m.SubTitle
	}
	if sub == "" {
		return m.Title
	}
	return m.Title + " - " + sub
}

// ExpirationTime parses ExpectedExpirationTime, returning the zero time when
// absent or unparseable.
func (m *APIMarket) ExpirationTime() time.Time {
	if m.ExpectedExpirationTime == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, m.ExpectedExpirationTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ToDomainMarket converts a Kalshi APIMarket to a domain.Market, translating
// cents prices to 0-1 decimals.
func (m *APIMarket) ToDomainMarket() domain.Market {
	yes := m.YesPrice()
	dm := domain.Market{
		ID:          m.Ticker,
		Venue:       domain.VenueKalshi,
		Title:       m.QuestionTitle(),
		YesPrice:    yes,
		NoPrice:     1.0 - yes,
		Volume:      float64(m.Volume),
		Liquidity:   float64(m.OpenInterest),
		Category:    m.Category,
		Ticker:      m.Ticker,
		EventTicker: m.EventTicker,
		FetchedAt:   time.Now().UTC(),
	}

	if m.Status == "open" {
		dm.Status = domain.MarketStatusActive
	} else {
		dm.Status = domain.MarketStatusClosed
	}

	if ts := m.ExpirationTime(); !ts.IsZero() {
		dm.EndDate = &ts
	} else if m.CloseTime != "" {
		if t, err := time.Parse(time.RFC3339, m.CloseTime); err == nil {
			dm.EndDate = &t
		}
	}

	return dm
}
