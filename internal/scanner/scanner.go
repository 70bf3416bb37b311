// Package scanner runs the refresh cycle: fetch both venue catalogs
// concurrently, match, align, detect, and publish a fresh snapshot. The
// in-memory snapshot is authoritative; redis only mirrors it for other
// consumers.
package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tgoodwin/marketarb/internal/arbitrage"
	"github.com/tgoodwin/marketarb/internal/domain"
	"github.com/tgoodwin/marketarb/internal/match"
)

// Signal bus channels and streams written on every successful refresh.
const (
	ChannelOpportunities = "arb:opportunities"
	StreamRefreshes      = "arb:refreshes"
)

// Snapshot kinds used for the opportunity lists.
const (
	KindGeneric = "generic"
	KindSports  = "sports"
)

// kalshiSportsWindow bounds single-game fetches to games resolving soon.
const kalshiSportsWindow = 48 * time.Hour

// PolymarketSource is the slice of the Polymarket client the scanner needs.
type PolymarketSource interface {
	GetAllActiveMarkets(ctx context.Context, maxMarkets int) ([]domain.Market, error)
	GetSportsMarkets(ctx context.Context, maxMarkets int) ([]domain.Market, error)
}

// KalshiSource is the slice of the Kalshi client the scanner needs.
type KalshiSource interface {
	CheckExchangeStatus(ctx context.Context) error
	GetAllOpenMarkets(ctx context.Context, maxMarkets int) ([]domain.Market, error)
	GetSportsMarkets(ctx context.Context, maxExpiration time.Duration) ([]domain.Market, error)
}

// AlertSink receives typed events for operator notification.
type AlertSink interface {
	Notify(ctx context.Context, event, title, message string) error
}

// Snapshot is the full output of one refresh cycle. Every refresh replaces
// the previous snapshot wholesale.
type Snapshot struct {
	PolymarketMarkets []domain.Market      `json:"polymarket_markets"`
	KalshiMarkets     []domain.Market      `json:"kalshi_markets"`
	Generic           []domain.Opportunity `json:"generic"`
	Sports            []domain.Opportunity `json:"sports"`
	LastUpdated       time.Time            `json:"last_updated"`
}

// Config wires a Scanner.
type Config struct {
	Polymarket PolymarketSource
	Kalshi     KalshiSource

	Generic  *match.GenericMatcher
	Sports   *match.SportsMatcher
	Aligner  *arbitrage.Aligner
	Detector *arbitrage.Detector

	// PolymarketMaxMarkets and KalshiMaxMarkets cap the per-venue catalog
	// fetches; zero means 500.
	PolymarketMaxMarkets int
	KalshiMaxMarkets     int
	// SportsMinPercent drops sports opportunities whose raw-gap percent is
	// below this floor before they enter the snapshot.
	SportsMinPercent float64
	// Interval drives Run's periodic refresh; zero disables the ticker.
	Interval time.Duration
	// StalenessThreshold is the snapshot age past which IsStale reports true.
	StalenessThreshold time.Duration

	// Optional collaborators; nil disables the concern.
	Snapshots domain.SnapshotCache
	Bus       domain.SignalBus
	Alerts    AlertSink
	// AlertMinBps is the profit floor below which no arb alert fires.
	AlertMinBps int

	Logger *slog.Logger
}

// Scanner owns the refresh cycle and the authoritative snapshot.
type Scanner struct {
	polymarket PolymarketSource
	kalshi     KalshiSource

	generic  *match.GenericMatcher
	sports   *match.SportsMatcher
	aligner  *arbitrage.Aligner
	detector *arbitrage.Detector

	polyMaxMarkets   int
	kalshiMaxMarkets int
	sportsMinPercent float64

	interval    time.Duration
	staleness   time.Duration
	snapshots   domain.SnapshotCache
	bus         domain.SignalBus
	alerts      AlertSink
	alertMinBps int
	logger      *slog.Logger

	mu       sync.RWMutex
	snapshot Snapshot

	refreshing atomic.Bool
}

// New creates a Scanner.
func New(cfg Config) *Scanner {
	polyMax := cfg.PolymarketMaxMarkets
	if polyMax <= 0 {
		polyMax = 500
	}
	kalshiMax := cfg.KalshiMaxMarkets
	if kalshiMax <= 0 {
		kalshiMax = 500
	}
	staleness := cfg.StalenessThreshold
	if staleness <= 0 {
		staleness = 5 * time.Minute
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		polymarket:       cfg.Polymarket,
		kalshi:           cfg.Kalshi,
		generic:          cfg.Generic,
		sports:           cfg.Sports,
		aligner:          cfg.Aligner,
		detector:         cfg.Detector,
		polyMaxMarkets:   polyMax,
		kalshiMaxMarkets: kalshiMax,
		sportsMinPercent: cfg.SportsMinPercent,
		interval:         cfg.Interval,
		staleness:        staleness,
		snapshots:        cfg.Snapshots,
		bus:              cfg.Bus,
		alerts:           cfg.Alerts,
		alertMinBps:      cfg.AlertMinBps,
		logger:           logger.With(slog.String("component", "scanner")),
	}
}

// Refresh runs one full scan cycle. A second caller while a cycle is running
// gets domain.ErrRefreshInProgress immediately; refreshes are refused, not
// queued, and a running cycle is never cancelled by a new request.
func (s *Scanner) Refresh(ctx context.Context) error {
	if !s.refreshing.CompareAndSwap(false, true) {
		return domain.ErrRefreshInProgress
	}
	defer s.refreshing.Store(false)

	start := time.Now()
	snap, err := s.scan(ctx)
	if err != nil {
		s.logger.Error("refresh failed", slog.String("error", err.Error()))
		if s.alerts != nil {
			_ = s.alerts.Notify(ctx, "scan_failed", "Scan failed", err.Error())
		}
		return err
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.publish(ctx, snap)

	s.logger.Info("refresh complete",
		slog.Int("polymarket_markets", len(snap.PolymarketMarkets)),
		slog.Int("kalshi_markets", len(snap.KalshiMarkets)),
		slog.Int("generic_opportunities", len(snap.Generic)),
		slog.Int("sports_opportunities", len(snap.Sports)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// RefreshInProgress reports whether a cycle is currently running.
func (s *Scanner) RefreshInProgress() bool {
	return s.refreshing.Load()
}

// scan fetches both venues concurrently and computes matches and
// opportunities. A venue fetch failure degrades that catalog to empty rather
// than failing the cycle; only context cancellation aborts.
func (s *Scanner) scan(ctx context.Context) (Snapshot, error) {
	var (
		polyAll, polySports     []domain.Market
		kalshiAll, kalshiSports []domain.Market
	)

	kalshiActive := true
	if err := s.kalshi.CheckExchangeStatus(ctx); err != nil {
		if ctx.Err() != nil {
			return Snapshot{}, ctx.Err()
		}
		kalshiActive = false
		s.logger.Warn("kalshi exchange unavailable, scanning with empty catalog",
			slog.String("error", err.Error()))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		markets, err := s.polymarket.GetAllActiveMarkets(gctx, s.polyMaxMarkets)
		if err != nil {
			s.logger.Warn("polymarket fetch failed", slog.String("error", err.Error()))
			return nil
		}
		polyAll = markets
		return nil
	})
	g.Go(func() error {
		markets, err := s.polymarket.GetSportsMarkets(gctx, s.polyMaxMarkets)
		if err != nil {
			s.logger.Warn("polymarket sports fetch failed", slog.String("error", err.Error()))
			return nil
		}
		polySports = markets
		return nil
	})
	if kalshiActive {
		g.Go(func() error {
			markets, err := s.kalshi.GetAllOpenMarkets(gctx, s.kalshiMaxMarkets)
			if err != nil {
				s.logger.Warn("kalshi fetch failed", slog.String("error", err.Error()))
				return nil
			}
			kalshiAll = markets
			return nil
		})
		g.Go(func() error {
			markets, err := s.kalshi.GetSportsMarkets(gctx, kalshiSportsWindow)
			if err != nil {
				s.logger.Warn("kalshi sports fetch failed", slog.String("error", err.Error()))
				return nil
			}
			kalshiSports = markets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	if ctx.Err() != nil {
		return Snapshot{}, ctx.Err()
	}

	genericPairs := s.generic.Match(polyAll, kalshiAll)
	genericOpps := s.detector.DetectOpportunities(genericPairs)

	sportsPairs := s.sports.Match(polySports, kalshiSports)
	aligned := s.aligner.Align(sportsPairs)
	sportsOpps := arbitrage.SportsOpportunities(aligned)
	if s.sportsMinPercent > 0 {
		kept := sportsOpps[:0]
		for _, o := range sportsOpps {
			if o.PriceDiffPercent >= s.sportsMinPercent {
				kept = append(kept, o)
			}
		}
		sportsOpps = kept
	}

	allMarkets := append(append([]domain.Market{}, polyAll...), polySports...)
	allKalshi := append(append([]domain.Market{}, kalshiAll...), kalshiSports...)

	return Snapshot{
		PolymarketMarkets: dedupeByID(allMarkets),
		KalshiMarkets:     dedupeByID(allKalshi),
		Generic:           genericOpps,
		Sports:            sportsOpps,
		LastUpdated:       time.Now().UTC(),
	}, nil
}

// publish mirrors the snapshot to redis, pushes opportunity events onto the
// signal bus, and raises operator alerts. All of it is best-effort; the
// in-memory snapshot has already been replaced.
func (s *Scanner) publish(ctx context.Context, snap Snapshot) {
	if s.snapshots != nil {
		if err := s.snapshots.SetMarkets(ctx, domain.VenuePolymarket, snap.PolymarketMarkets); err != nil {
			s.logger.Warn("snapshot mirror failed", slog.String("error", err.Error()))
		}
		if err := s.snapshots.SetMarkets(ctx, domain.VenueKalshi, snap.KalshiMarkets); err != nil {
			s.logger.Warn("snapshot mirror failed", slog.String("error", err.Error()))
		}
		if err := s.snapshots.SetOpportunities(ctx, KindGeneric, snap.Generic); err != nil {
			s.logger.Warn("snapshot mirror failed", slog.String("error", err.Error()))
		}
		if err := s.snapshots.SetOpportunities(ctx, KindSports, snap.Sports); err != nil {
			s.logger.Warn("snapshot mirror failed", slog.String("error", err.Error()))
		}
	}

	if s.bus != nil {
		all := append(append([]domain.Opportunity{}, snap.Generic...), snap.Sports...)
		if payload, err := json.Marshal(all); err == nil {
			if err := s.bus.Publish(ctx, ChannelOpportunities, payload); err != nil {
				s.logger.Warn("opportunity publish failed", slog.String("error", err.Error()))
			}
			if err := s.bus.StreamAppend(ctx, StreamRefreshes, payload); err != nil {
				s.logger.Warn("refresh stream append failed", slog.String("error", err.Error()))
			}
		}
	}

	if s.alerts != nil {
		if best, ok := bestOpportunity(snap); ok && best.ProfitBps >= s.alertMinBps {
			title := fmt.Sprintf("Arb: %d bps on %s", best.ProfitBps, best.Polymarket.Title)
			msg := fmt.Sprintf("buy %s, gap %.2f%%, method %s",
				best.BuyVenue, best.PriceDiffPercent, best.MatchMethod)
			if err := s.alerts.Notify(ctx, "arb_detected", title, msg); err != nil {
				s.logger.Warn("alert dispatch failed", slog.String("error", err.Error()))
			}
		}
	}
}

// bestOpportunity picks the highest-bps profitable opportunity across both
// scan kinds.
func bestOpportunity(snap Snapshot) (domain.Opportunity, bool) {
	var best domain.Opportunity
	found := false
	for _, opps := range [][]domain.Opportunity{snap.Generic, snap.Sports} {
		for _, o := range opps {
			if !o.Profitable {
				continue
			}
			if !found || o.ProfitBps > best.ProfitBps {
				best = o
				found = true
			}
		}
	}
	return best, found
}

func dedupeByID(markets []domain.Market) []domain.Market {
	seen := make(map[string]struct{}, len(markets))
	out := markets[:0]
	for _, m := range markets {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Run refreshes immediately and then on every interval tick until the
// context is cancelled. Failed cycles are logged and retried on the next
// tick. With a zero interval Run performs the initial refresh and waits for
// cancellation.
func (s *Scanner) Run(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}

// Snapshot returns a shallow copy of the current snapshot.
func (s *Scanner) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Opportunities returns the current opportunity list for a scan kind.
func (s *Scanner) Opportunities(kind string) []domain.Opportunity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if kind == KindSports {
		return s.snapshot.Sports
	}
	return s.snapshot.Generic
}

// Markets returns the current catalog for a venue.
func (s *Scanner) Markets(venue domain.Venue) []domain.Market {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if venue == domain.VenueKalshi {
		return s.snapshot.KalshiMarkets
	}
	return s.snapshot.PolymarketMarkets
}

// LastUpdated returns when the snapshot was last replaced; zero before the
// first successful refresh.
func (s *Scanner) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.LastUpdated
}

// IsStale reports whether the snapshot is older than the staleness
// threshold. An empty snapshot is always stale.
func (s *Scanner) IsStale() bool {
	last := s.LastUpdated()
	if last.IsZero() {
		return true
	}
	return time.Since(last) > s.staleness
}
