package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tgoodwin/marketarb/internal/arbitrage"
	"github.com/tgoodwin/marketarb/internal/cache/redis"
	"github.com/tgoodwin/marketarb/internal/config"
	"github.com/tgoodwin/marketarb/internal/domain"
	"github.com/tgoodwin/marketarb/internal/match"
	"github.com/tgoodwin/marketarb/internal/normalize"
	"github.com/tgoodwin/marketarb/internal/notify"
	"github.com/tgoodwin/marketarb/internal/platform/kalshi"
	"github.com/tgoodwin/marketarb/internal/platform/polymarket"
	"github.com/tgoodwin/marketarb/internal/scanner"
)

// Dependencies bundles everything the application modes need. It is
// constructed by Wire and torn down by the returned cleanup function.
type Dependencies struct {
	RateLimiter domain.RateLimiter
	Snapshots   domain.SnapshotCache
	SignalBus   domain.SignalBus

	Polymarket *polymarket.GammaClient
	Kalshi     *kalshi.Client

	Scanner  *scanner.Scanner
	Notifier *notify.Notifier
}

// Wire constructs all concrete dependencies from the configuration and
// returns them with a cleanup function to call on shutdown.
func Wire(ctx context.Context, cfg *config.Config) (*Dependencies, func(), error) {
	logger := slog.Default()

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &Dependencies{}

	// --- Redis: rate limiter, snapshot mirror, signal bus ---
	redisClient, err := redis.New(ctx, redis.ClientConfig{
		Addr:       cfg.Redis.Addr,
		Password:   cfg.Redis.Password,
		DB:         cfg.Redis.DB,
		PoolSize:   cfg.Redis.PoolSize,
		MaxRetries: cfg.Redis.MaxRetries,
		TLSEnabled: cfg.Redis.TLSEnabled,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("wire: redis: %w", err)
	}
	closers = append(closers, func() { _ = redisClient.Close() })

	deps.RateLimiter = redis.NewRateLimiter(redisClient)
	deps.Snapshots = redis.NewSnapshotCache(redisClient, cfg.Scanner.SnapshotTTL.Duration)
	deps.SignalBus = redis.NewSignalBus(redisClient)

	// --- Venue clients, sharing one limiter with per-venue keys ---
	deps.Polymarket = polymarket.NewGammaClient(polymarket.GammaConfig{
		BaseURL:           cfg.Polymarket.GammaHost,
		Limiter:           deps.RateLimiter,
		RequestsPerMinute: cfg.Polymarket.RequestsPerMinute,
		Timeout:           cfg.Polymarket.RequestTimeout.Duration,
		Logger:            logger,
	})
	deps.Kalshi = kalshi.NewClient(kalshi.ClientConfig{
		BaseURL:           cfg.Kalshi.BaseURL,
		APIKey:            cfg.Kalshi.ApiKey,
		Limiter:           deps.RateLimiter,
		RequestsPerMinute: cfg.Kalshi.RequestsPerMinute,
		Timeout:           cfg.Kalshi.RequestTimeout.Duration,
		Logger:            logger,
	})

	// --- Notifier (senders only for configured channels) ---
	var senders []notify.Sender
	if cfg.Notify.TelegramToken != "" && cfg.Notify.TelegramChatID != "" {
		senders = append(senders, notify.NewTelegramSender(cfg.Notify.TelegramToken, cfg.Notify.TelegramChatID))
	}
	if cfg.Notify.DiscordWebhookURL != "" {
		senders = append(senders, notify.NewDiscordSender(cfg.Notify.DiscordWebhookURL))
	}
	if len(senders) > 0 {
		deps.Notifier = notify.NewNotifier(senders, cfg.Notify.Events, logger)
	}

	// --- Matching and detection pipeline ---
	normalizer := normalize.New(normalize.Config{
		StrictAliases: cfg.Matcher.StrictAliases,
		Logger:        logger,
	})

	scanCfg := scanner.Config{
		Polymarket: deps.Polymarket,
		Kalshi:     deps.Kalshi,
		Generic: match.NewGenericMatcher(match.GenericConfig{
			Threshold: cfg.Matcher.GenericThreshold,
			Logger:    logger,
		}),
		Sports: match.NewSportsMatcher(match.SportsConfig{
			Normalizer: normalizer,
			Threshold:  cfg.Matcher.SportsThreshold,
			Logger:     logger,
		}),
		Aligner: arbitrage.NewAligner(normalizer, logger),
		Detector: arbitrage.NewDetector(arbitrage.DetectorConfig{
			PolymarketFee:        &cfg.Arbitrage.PolymarketFee,
			KalshiFee:            &cfg.Arbitrage.KalshiFee,
			MinDifferencePercent: cfg.Arbitrage.MinDifferencePercent,
			Logger:               logger,
		}),
		PolymarketMaxMarkets: cfg.Polymarket.MaxMarkets,
		KalshiMaxMarkets:     cfg.Kalshi.MaxMarkets,
		SportsMinPercent:     cfg.Arbitrage.SportsMinDifferencePercent,
		Interval:             cfg.Scanner.Interval.Duration,
		StalenessThreshold:   cfg.Scanner.StalenessThreshold.Duration,
		Snapshots:            deps.Snapshots,
		Bus:                  deps.SignalBus,
		Logger:               logger,
	}
	if deps.Notifier != nil {
		scanCfg.Alerts = deps.Notifier
		scanCfg.AlertMinBps = cfg.Notify.MinProfitBps
	}
	deps.Scanner = scanner.New(scanCfg)

	return deps, cleanup, nil
}
