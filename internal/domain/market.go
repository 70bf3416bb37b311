package domain

import "time"

// Venue identifies which platform a market was fetched from.
type Venue string

const (
	VenuePolymarket Venue = "polymarket"
	VenueKalshi     Venue = "kalshi"
)

// MarketStatus represents the lifecycle state of a market.
type MarketStatus string

const (
	MarketStatusActive MarketStatus = "active"
	MarketStatusClosed MarketStatus = "closed"
)

// Market is the venue-neutral view of a binary prediction market. Venue
// parsers populate the optional identifier fields they have; matchers must
// check for the zero value rather than assume presence.
type Market struct {
	ID          string       `json:"id"`
	Venue       Venue        `json:"venue"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	YesPrice    float64      `json:"yes_price"`
	NoPrice     float64      `json:"no_price"`
	Volume      float64      `json:"volume"`
	Liquidity   float64      `json:"liquidity,omitempty"`
	Category    string       `json:"category,omitempty"`
	Status      MarketStatus `json:"status"`

	// Optional venue-specific identifiers.
	Slug        string     `json:"slug,omitempty"`         // Polymarket URL slug
	Ticker      string     `json:"ticker,omitempty"`       // Kalshi market ticker
	EventTicker string     `json:"event_ticker,omitempty"` // Kalshi parent event
	EndDate     *time.Time `json:"end_date,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`
}
