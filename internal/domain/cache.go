package domain

import (
	"context"
	"time"
)

// SnapshotCache mirrors the latest scan results so the API layer and the
// websocket hub can read them without holding a reference to the scanner.
// The in-memory snapshot inside the scanner remains authoritative.
type SnapshotCache interface {
	SetMarkets(ctx context.Context, venue Venue, markets []Market) error
	Markets(ctx context.Context, venue Venue) ([]Market, error)
	SetOpportunities(ctx context.Context, kind string, opps []Opportunity) error
	Opportunities(ctx context.Context, kind string) ([]Opportunity, error)
}

// RateLimiter provides distributed rate limiting.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Wait(ctx context.Context, key string, limit int, window time.Duration) error
}

// StreamMessage represents a single entry from a Redis stream.
type StreamMessage struct {
	ID      string
	Payload []byte
}

// SignalBus provides pub/sub and durable streams.
type SignalBus interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	StreamAppend(ctx context.Context, stream string, payload []byte) error
	StreamRead(ctx context.Context, stream string, lastID string, count int) ([]StreamMessage, error)
}
