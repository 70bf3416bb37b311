// Package server is the HTTP and WebSocket API over the scanner's snapshot.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tgoodwin/marketarb/internal/domain"
	"github.com/tgoodwin/marketarb/internal/server/handler"
	"github.com/tgoodwin/marketarb/internal/server/middleware"
	"github.com/tgoodwin/marketarb/internal/server/ws"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port        int
	CORSOrigins []string
	// APIKey enables bearer/X-API-Key authentication; empty disables it.
	APIKey string
	// Limiter enables per-client rate limiting; nil disables it.
	Limiter           domain.RateLimiter
	RequestsPerMinute int
}

// Handlers aggregates all HTTP handlers that the server registers.
type Handlers struct {
	Health  *handler.HealthHandler
	Status  *handler.StatusHandler
	Markets *handler.MarketHandler
	Arb     *handler.ArbHandler
	Sports  *handler.SportsHandler
	Kalshi  *handler.KalshiHandler
}

// Server is the API server over the latest scan snapshot.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a Server with all routes registered and the middleware
// chain applied (rate limit, auth, logging, CORS, outermost last).
func NewServer(cfg Config, handlers Handlers, wsHub *ws.Hub, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	// Health check (no auth required).
	mux.HandleFunc("GET /api/health", handlers.Health.HealthCheck)
	mux.HandleFunc("GET /api/status", handlers.Status.GetStatus)

	// Venue catalogs and search.
	mux.HandleFunc("GET /api/markets/polymarket", handlers.Markets.ListPolymarket)
	mux.HandleFunc("GET /api/markets/kalshi", handlers.Markets.ListKalshi)
	mux.HandleFunc("GET /api/markets/search", handlers.Markets.SearchMarkets)

	// Generic arbitrage.
	mux.HandleFunc("GET /api/arbitrage", handlers.Arb.ListOpportunities)
	mux.HandleFunc("GET /api/arbitrage/top", handlers.Arb.TopOpportunities)
	mux.HandleFunc("GET /api/arbitrage/history", handlers.Arb.History)
	mux.HandleFunc("POST /api/arbitrage/refresh", handlers.Arb.TriggerRefresh)

	// Debug sample of both cached catalogs.
	mux.HandleFunc("GET /api/debug/markets", handlers.Markets.DebugMarkets)

	// Sports arbitrage.
	mux.HandleFunc("GET /api/sports/arbitrage", handlers.Sports.ListOpportunities)
	mux.HandleFunc("POST /api/sports/refresh", handlers.Sports.TriggerRefresh)

	// Raw Kalshi exploration.
	if handlers.Kalshi != nil {
		mux.HandleFunc("GET /api/kalshi/series", handlers.Kalshi.ListSeries)
		mux.HandleFunc("GET /api/kalshi/events", handlers.Kalshi.ListEvents)
	}

	// WebSocket endpoint.
	if wsHub != nil {
		mux.HandleFunc("GET /ws", wsHub.HandleWS)
	}

	var h http.Handler = mux
	if cfg.Limiter != nil && cfg.RequestsPerMinute > 0 {
		h = middleware.RateLimit(cfg.Limiter, cfg.RequestsPerMinute, time.Minute)(h)
	}
	h = middleware.Auth(cfg.APIKey)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.CORS(cfg.CORSOrigins)(h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     logger.With(slog.String("component", "server")),
	}
}

// Start begins listening for HTTP requests. It blocks until the server
// encounters an error or is shut down.
func (s *Server) Start() error {
	s.logger.Info("starting", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
