// Package arbitrage turns matched market pairs into priced opportunity
// records: polarity alignment, price-gap math, fee-adjusted profit, and
// summary statistics.
package arbitrage

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// Default per-venue fee estimates, overridable via DetectorConfig.
const (
	DefaultPolymarketFee = 0.02
	DefaultKalshiFee     = 0.01
)

// DetectorConfig configures a Detector.
type DetectorConfig struct {
	// PolymarketFee and KalshiFee are fixed per-venue fee fractions.
	// Nil uses the venue default; an explicit zero disables the fee.
	PolymarketFee *float64
	KalshiFee     *float64
	// MinDifferencePercent filters opportunities below this midpoint
	// percent difference.
	MinDifferencePercent float64
	Logger               *slog.Logger
}

// Detector computes arbitrage opportunities from matched pairs.
type Detector struct {
	polyFee   float64
	kalshiFee float64
	minDiff   float64
	logger    *slog.Logger
}

// NewDetector creates a Detector.
func NewDetector(cfg DetectorConfig) *Detector {
	polyFee := feeOrDefault(cfg.PolymarketFee, DefaultPolymarketFee)
	kalshiFee := feeOrDefault(cfg.KalshiFee, DefaultKalshiFee)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		polyFee:   polyFee,
		kalshiFee: kalshiFee,
		minDiff:   cfg.MinDifferencePercent,
		logger:    logger.With(slog.String("component", "arb_detector")),
	}
}

func feeOrDefault(fee *float64, def float64) float64 {
	if fee == nil {
		return def
	}
	return *fee
}

// AnalyzeMatch prices a single matched pair. The second return is false
// when either side carries a price outside [0,1]; the pair is logged and
// skipped, never fatal.
func (d *Detector) AnalyzeMatch(pair domain.MatchedPair) (domain.Opportunity, bool) {
	polyYes, polyNo := pair.Polymarket.YesPrice, pair.Polymarket.NoPrice
	kalshiYes, kalshiNo := pair.Kalshi.YesPrice, pair.Kalshi.NoPrice

	for _, p := range []float64{polyYes, polyNo, kalshiYes, kalshiNo} {
		if p < 0 || p > 1 {
			d.logger.Warn("invalid prices for matched pair",
				slog.String("polymarket_id", pair.Polymarket.ID),
				slog.String("kalshi_id", pair.Kalshi.ID),
			)
			return domain.Opportunity{}, false
		}
	}

	yesDiff := polyYes - kalshiYes
	if yesDiff < 0 {
		yesDiff = -yesDiff
	}

	midpoint := (polyYes + kalshiYes) / 2
	var diffPercent float64
	if midpoint > 0 {
		diffPercent = yesDiff / midpoint * 100
	}

	// Buy YES wherever it is cheaper, NO on the other venue.
	var buyVenue domain.Venue
	var combinedCost float64
	if polyYes < kalshiYes {
		buyVenue = domain.VenuePolymarket
		combinedCost = polyYes + kalshiNo
	} else {
		buyVenue = domain.VenueKalshi
		combinedCost = kalshiYes + polyNo
	}

	grossProfit := 1.0 - combinedCost
	netProfit := grossProfit - (d.polyFee + d.kalshiFee)
	profitBps := int(math.Round(netProfit * 10000))

	// A pair that is unprofitable both gross and net still reports as
	// "simple"; only the gross-positive-net-negative band is "spread".
	var arbType domain.OpportunityType
	switch {
	case netProfit > 0:
		arbType = domain.OpportunitySimple
	case grossProfit > 0:
		arbType = domain.OpportunitySpread
	default:
		arbType = domain.OpportunitySimple
	}

	return domain.Opportunity{
		ID:               uuid.New().String(),
		Polymarket:       pair.Polymarket,
		Kalshi:           pair.Kalshi,
		MatchScore:       pair.Score,
		MatchMethod:      pair.Method,
		League:           pair.League,
		MarketType:       pair.MarketType,
		PriceDiff:        yesDiff,
		PriceDiffPercent: diffPercent,
		BuyVenue:         buyVenue,
		CombinedCost:     combinedCost,
		GrossProfit:      grossProfit,
		NetProfit:        netProfit,
		ProfitBps:        profitBps,
		Type:             arbType,
		Profitable:       netProfit > 0,
		DetectedAt:       time.Now().UTC(),
	}, true
}

// DetectOpportunities analyzes all pairs, keeps those meeting the minimum
// percent difference, and sorts by profit bps descending.
func (d *Detector) DetectOpportunities(pairs []domain.MatchedPair) []domain.Opportunity {
	var opps []domain.Opportunity
	for _, pair := range pairs {
		opp, ok := d.AnalyzeMatch(pair)
		if !ok {
			continue
		}
		if opp.PriceDiffPercent >= d.minDiff {
			opps = append(opps, opp)
		}
	}

	sort.Slice(opps, func(i, j int) bool { return opps[i].ProfitBps > opps[j].ProfitBps })

	d.logger.Info("arbitrage detection complete",
		slog.Int("opportunities", len(opps)),
		slog.Float64("min_difference_percent", d.minDiff),
	)
	return opps
}

// SummaryStats aggregates an opportunity list. Everything is computed fresh
// from the slice; there is no running state.
func SummaryStats(opps []domain.Opportunity) domain.SummaryStats {
	stats := domain.SummaryStats{
		ByType: make(map[domain.OpportunityType]int),
	}
	if len(opps) == 0 {
		return stats
	}

	stats.Total = len(opps)
	var sumPercent, sumBps float64
	for _, o := range opps {
		if o.Profitable {
			stats.ProfitableCount++
		}
		sumPercent += o.PriceDiffPercent
		sumBps += float64(o.ProfitBps)
		if o.PriceDiffPercent > stats.MaxPriceDiffPercent {
			stats.MaxPriceDiffPercent = o.PriceDiffPercent
		}
		if o.ProfitBps > stats.MaxProfitBps {
			stats.MaxProfitBps = o.ProfitBps
		}
		stats.ByType[o.Type]++
	}
	stats.AvgPriceDiffPercent = sumPercent / float64(len(opps))
	stats.AvgProfitBps = sumBps / float64(len(opps))
	return stats
}
