package domain

// MatchedPair links a Polymarket market with a Kalshi market that the
// matchers judged to describe the same real-world event. Pairs are rebuilt
// wholesale on every refresh cycle; nothing mutates them in place.
type MatchedPair struct {
	Polymarket Market  `json:"polymarket"`
	Kalshi     Market  `json:"kalshi"`
	Score      float64 `json:"score"`
	Method     string  `json:"method"`

	// Populated only by the sports matcher.
	League     string `json:"league,omitempty"`
	MarketType string `json:"market_type,omitempty"`
	AwayTeam   string `json:"away_team,omitempty"`
	HomeTeam   string `json:"home_team,omitempty"`
	Team       string `json:"team,omitempty"` // futures markets
}
