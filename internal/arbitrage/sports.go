package arbitrage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// SportsOpportunities prices sports pairs with the raw-gap convention the
// sports scan reports: percent is the absolute YES gap times 100 (not a
// midpoint ratio) and bps is the gap times 10,000 with no fee adjustment.
// Results sort by percent difference descending.
func SportsOpportunities(pairs []domain.MatchedPair) []domain.Opportunity {
	opps := make([]domain.Opportunity, 0, len(pairs))
	now := time.Now().UTC()

	for _, pair := range pairs {
		polyYes := pair.Polymarket.YesPrice
		kalshiYes := pair.Kalshi.YesPrice

		diff := polyYes - kalshiYes
		if diff < 0 {
			diff = -diff
		}

		buyVenue := domain.VenueKalshi
		if polyYes < kalshiYes {
			buyVenue = domain.VenuePolymarket
		}

		opps = append(opps, domain.Opportunity{
			ID:               uuid.New().String(),
			Polymarket:       pair.Polymarket,
			Kalshi:           pair.Kalshi,
			MatchScore:       pair.Score,
			MatchMethod:      pair.Method,
			League:           pair.League,
			MarketType:       pair.MarketType,
			PriceDiff:        diff,
			PriceDiffPercent: diff * 100,
			BuyVenue:         buyVenue,
			ProfitBps:        int(diff * 10000),
			Profitable:       diff > 0,
			DetectedAt:       now,
		})
	}

	sort.Slice(opps, func(i, j int) bool {
		return opps[i].PriceDiffPercent > opps[j].PriceDiffPercent
	})
	return opps
}
