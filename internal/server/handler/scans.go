package handler

import (
	"context"
	"time"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// Scan kinds mirrored from the scanner.
const (
	kindGeneric = "generic"
	kindSports  = "sports"
)

// Scans is the view of the scanner the HTTP layer consumes.
type Scans interface {
	Refresh(ctx context.Context) error
	RefreshInProgress() bool
	Opportunities(kind string) []domain.Opportunity
	Markets(venue domain.Venue) []domain.Market
	LastUpdated() time.Time
	IsStale() bool
}

// MarketSearcher searches a single venue's catalog by free-text query.
type MarketSearcher interface {
	SearchMarkets(ctx context.Context, query string, limit int) ([]domain.Market, error)
}
