package domain

import "time"

// OpportunityType classifies how an opportunity would be captured.
type OpportunityType string

const (
	// OpportunitySimple buys YES on the cheaper venue and NO on the other.
	OpportunitySimple OpportunityType = "simple"
	// OpportunitySpread captures a price gap that is positive before fees
	// but not after.
	OpportunitySpread OpportunityType = "spread"
)

// Opportunity is a priced arbitrage candidate derived from one matched pair.
type Opportunity struct {
	ID          string  `json:"id"`
	Polymarket  Market  `json:"polymarket"`
	Kalshi      Market  `json:"kalshi"`
	MatchScore  float64 `json:"match_score"`
	MatchMethod string  `json:"match_method"`
	League      string  `json:"league,omitempty"`
	MarketType  string  `json:"market_type,omitempty"`

	PriceDiff        float64         `json:"price_diff"`
	PriceDiffPercent float64         `json:"price_diff_percent"`
	BuyVenue         Venue           `json:"buy_venue"`
	CombinedCost     float64         `json:"combined_cost"`
	GrossProfit      float64         `json:"gross_profit"`
	NetProfit        float64         `json:"net_profit"`
	ProfitBps        int             `json:"profit_bps"`
	Type             OpportunityType `json:"type"`
	Profitable       bool            `json:"profitable"`

	DetectedAt time.Time `json:"detected_at"`
}

// SummaryStats aggregates a snapshot of opportunities. It is computed fresh
// from the full list on every call, never maintained incrementally.
type SummaryStats struct {
	Total               int                     `json:"total"`
	ProfitableCount     int                     `json:"profitable_count"`
	AvgPriceDiffPercent float64                 `json:"avg_price_diff_percent"`
	MaxPriceDiffPercent float64                 `json:"max_price_diff_percent"`
	AvgProfitBps        float64                 `json:"avg_profit_bps"`
	MaxProfitBps        int                     `json:"max_profit_bps"`
	ByType              map[OpportunityType]int `json:"by_type"`
}
