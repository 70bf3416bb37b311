package app

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tgoodwin/marketarb/internal/server"
	"github.com/tgoodwin/marketarb/internal/server/handler"
	"github.com/tgoodwin/marketarb/internal/server/ws"
)

// shutdownGrace bounds how long in-flight HTTP requests may run after the
// context is cancelled.
const shutdownGrace = 10 * time.Second

// ScanMode runs periodic refresh cycles without the HTTP API.
func (a *App) ScanMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting scan mode",
		slog.Duration("interval", a.cfg.Scanner.Interval.Duration),
	)
	return deps.Scanner.Run(ctx)
}

// ServerMode serves the API over the latest snapshot without a refresh
// ticker; on-demand refresh endpoints remain live. One refresh is kicked off
// in the background so the first requests have data.
func (a *App) ServerMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting server mode")

	g, ctx := errgroup.WithContext(ctx)

	go func() {
		if err := deps.Scanner.Refresh(ctx); err != nil {
			a.logger.WarnContext(ctx, "initial refresh failed", slog.String("error", err.Error()))
		}
	}()

	a.startHTTPServer(ctx, g, deps)
	return g.Wait()
}

// FullMode runs the refresh ticker and the API together.
func (a *App) FullMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting full mode")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return deps.Scanner.Run(ctx)
	})
	a.startHTTPServer(ctx, g, deps)
	return g.Wait()
}

// startHTTPServer builds the handlers, the WebSocket hub, and the server,
// and registers the serve/shutdown goroutines on the group.
func (a *App) startHTTPServer(ctx context.Context, g *errgroup.Group, deps *Dependencies) {
	logger := a.logger
	startedAt := time.Now().UTC()

	hub := ws.NewHub(deps.SignalBus, logger, ws.Config{
		Mode:      a.cfg.Mode,
		StartedAt: startedAt,
	})
	g.Go(func() error {
		err := hub.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return err
	})

	handlers := server.Handlers{
		Health:  handler.NewHealthHandler(logger),
		Status:  handler.NewStatusHandler(a.cfg.Mode, startedAt, deps.Scanner),
		Markets: handler.NewMarketHandler(deps.Scanner, deps.Polymarket, deps.Kalshi, logger),
		Arb:     handler.NewArbHandler(deps.Scanner, deps.SignalBus, logger),
		Sports:  handler.NewSportsHandler(deps.Scanner, logger),
		Kalshi:  handler.NewKalshiHandler(deps.Kalshi, logger),
	}

	srv := server.NewServer(server.Config{
		Port:              a.cfg.Server.Port,
		CORSOrigins:       a.cfg.Server.CORSOrigins,
		APIKey:            a.cfg.Server.APIKey,
		Limiter:           deps.RateLimiter,
		RequestsPerMinute: a.cfg.Server.RequestsPerMinute,
	}, handlers, hub, logger)

	g.Go(func() error {
		return srv.Start()
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
