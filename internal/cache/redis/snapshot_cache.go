package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// SnapshotCache implements domain.SnapshotCache using JSON-serialized lists
// with a TTL. Each write fully replaces the previous snapshot; there is no
// merging, matching the scan cycle's replace-everything semantics.
//
// Key schema:
//
//	snapshot:markets:{venue}     - JSON array of Market
//	snapshot:opportunities:{kind} - JSON array of Opportunity
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSnapshotCache creates a SnapshotCache backed by the given Client. A zero
// ttl stores snapshots without expiry.
func NewSnapshotCache(c *Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: c.Underlying(), ttl: ttl}
}

func marketsKey(venue domain.Venue) string { return "snapshot:markets:" + string(venue) }
func opportunitiesKey(kind string) string  { return "snapshot:opportunities:" + kind }

// SetMarkets replaces the stored market list for a venue.
func (sc *SnapshotCache) SetMarkets(ctx context.Context, venue domain.Venue, markets []domain.Market) error {
	data, err := json.Marshal(markets)
	if err != nil {
		return fmt.Errorf("redis: marshal markets %s: %w", venue, err)
	}
	if err := sc.rdb.Set(ctx, marketsKey(venue), data, sc.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set markets %s: %w", venue, err)
	}
	return nil
}

// Markets retrieves the stored market list for a venue. It returns
// domain.ErrNotFound when no snapshot exists (or it has expired).
func (sc *SnapshotCache) Markets(ctx context.Context, venue domain.Venue) ([]domain.Market, error) {
	data, err := sc.rdb.Get(ctx, marketsKey(venue)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis: get markets %s: %w", venue, err)
	}

	var markets []domain.Market
	if err := json.Unmarshal(data, &markets); err != nil {
		return nil, fmt.Errorf("redis: unmarshal markets %s: %w", venue, err)
	}
	return markets, nil
}

// SetOpportunities replaces the stored opportunity list for a scan kind
// ("generic" or "sports").
func (sc *SnapshotCache) SetOpportunities(ctx context.Context, kind string, opps []domain.Opportunity) error {
	data, err := json.Marshal(opps)
	if err != nil {
		return fmt.Errorf("redis: marshal opportunities %s: %w", kind, err)
	}
	if err := sc.rdb.Set(ctx, opportunitiesKey(kind), data, sc.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set opportunities %s: %w", kind, err)
	}
	return nil
}

// Opportunities retrieves the stored opportunity list for a scan kind. It
// returns domain.ErrNotFound when no snapshot exists.
func (sc *SnapshotCache) Opportunities(ctx context.Context, kind string) ([]domain.Opportunity, error) {
	data, err := sc.rdb.Get(ctx, opportunitiesKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis: get opportunities %s: %w", kind, err)
	}

	var opps []domain.Opportunity
	if err := json.Unmarshal(data, &opps); err != nil {
		return nil, fmt.Errorf("redis: unmarshal opportunities %s: %w", kind, err)
	}
	return opps, nil
}

// Compile-time interface check.
var _ domain.SnapshotCache = (*SnapshotCache)(nil)
