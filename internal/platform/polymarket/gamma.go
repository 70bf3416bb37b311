// Package polymarket is the REST client for the Polymarket Gamma API, which
// provides market discovery, metadata, and search.
package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// gammaPageSize is the Gamma API's hard per-request cap.
const gammaPageSize = 100

// eventsPageSize and eventsMaxOffset drive the deep events pagination used
// for sports discovery. Single-game markets are created early and sit at
// high offsets when ordering by id descending.
const (
	eventsPageSize  = 500
	eventsMaxOffset = 6000
)

// GammaConfig configures a GammaClient.
type GammaConfig struct {
	// BaseURL is the Gamma API root, e.g. "https://gamma-api.polymarket.com".
	BaseURL string
	// Limiter gates outbound requests; nil disables rate limiting.
	Limiter domain.RateLimiter
	// RequestsPerMinute is the budget applied through Limiter.
	RequestsPerMinute int
	Timeout           time.Duration
	Logger            *slog.Logger
}

// GammaClient fetches Polymarket markets over the Gamma API.
type GammaClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    domain.RateLimiter
	rpm        int
	logger     *slog.Logger
}

// NewGammaClient creates a new Gamma API client.
func NewGammaClient(cfg GammaConfig) *GammaClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	rpm := cfg.RequestsPerMinute
	if rpm == 0 {
		rpm = 60
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &GammaClient{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    cfg.Limiter,
		rpm:        rpm,
		logger:     logger.With(slog.String("component", "polymarket")),
	}
}

// GetMarkets returns one page of active, open markets. The Gamma API caps
// pages at 100; larger limits are clamped.
func (g *GammaClient) GetMarkets(ctx context.Context, limit, offset int) ([]domain.Market, error) {
	if limit > gammaPageSize {
		limit = gammaPageSize
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("active", "true")
	params.Set("closed", "false")

	body, err := g.doGet(ctx, "/markets?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket/gamma: get markets: %w", err)
	}

	var apiMarkets []APIMarket
	if err := json.Unmarshal(body, &apiMarkets); err != nil {
		return nil, fmt.Errorf("polymarket/gamma: decode markets: %w", err)
	}

	markets := make([]domain.Market, 0, len(apiMarkets))
	for i := range apiMarkets {
		markets = append(markets, apiMarkets[i].ToDomainMarket())
	}
	return markets, nil
}

// GetMarket returns a single market by its ID.
func (g *GammaClient) GetMarket(ctx context.Context, id string) (domain.Market, error) {
	body, err := g.doGet(ctx, "/markets/"+url.PathEscape(id))
	if err != nil {
		return domain.Market{}, fmt.Errorf("polymarket/gamma: get market %s: %w", id, err)
	}

	var apiMarket APIMarket
	if err := json.Unmarshal(body, &apiMarket); err != nil {
		return domain.Market{}, fmt.Errorf("polymarket/gamma: decode market: %w", err)
	}
	return apiMarket.ToDomainMarket(), nil
}

// SearchMarkets searches active markets matching the given query string.
func (g *GammaClient) SearchMarkets(ctx context.Context, query string, limit int) ([]domain.Market, error) {
	if limit <= 0 {
		limit = 50
	}
	params := url.Values{}
	params.Set("_q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("active", "true")

	body, err := g.doGet(ctx, "/markets?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket/gamma: search markets: %w", err)
	}

	var apiMarkets []APIMarket
	if err := json.Unmarshal(body, &apiMarkets); err != nil {
		return nil, fmt.Errorf("polymarket/gamma: decode search results: %w", err)
	}

	markets := make([]domain.Market, 0, len(apiMarkets))
	for i := range apiMarkets {
		markets = append(markets, apiMarkets[i].ToDomainMarket())
	}
	return markets, nil
}

// GetEvents returns one page of events. Events group related markets and give
// better coverage of nested markets than /markets alone.
func (g *GammaClient) GetEvents(ctx context.Context, limit, offset int) ([]APIEvent, error) {
	if limit > gammaPageSize {
		limit = gammaPageSize
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("active", "true")
	params.Set("closed", "false")

	body, err := g.doGet(ctx, "/events?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket/gamma: get events: %w", err)
	}

	var events []APIEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("polymarket/gamma: decode events: %w", err)
	}
	return events, nil
}

// GetAllActiveMarkets fetches up to maxMarkets active markets, combining the
// /events endpoint (better for nested markets) with a /markets sweep to catch
// anything events missed. Results are deduplicated by market ID.
func (g *GammaClient) GetAllActiveMarkets(ctx context.Context, maxMarkets int) ([]domain.Market, error) {
	var all []domain.Market
	seen := make(map[string]struct{})

	add := func(m domain.Market) {
		if m.ID == "" {
			return
		}
		if _, dup := seen[m.ID]; dup {
			return
		}
		seen[m.ID] = struct{}{}
		all = append(all, m)
	}

	for offset := 0; len(all) < maxMarkets; offset += gammaPageSize {
		events, err := g.GetEvents(ctx, gammaPageSize, offset)
		if err != nil {
			g.logger.Warn("event fetch failed, falling back to markets sweep", slog.String("error", err.Error()))
			break
		}
		if len(events) == 0 {
			break
		}
		for i := range events {
			for j := range events[i].Markets {
				add(events[i].Markets[j].ToDomainMarket())
			}
		}
	}

	for offset := 0; len(all) < maxMarkets; offset += gammaPageSize {
		markets, err := g.GetMarkets(ctx, gammaPageSize, offset)
		if err != nil {
			return nil, err
		}
		if len(markets) == 0 {
			break
		}
		for _, m := range markets {
			add(m)
		}
	}

	if len(all) > maxMarkets {
		all = all[:maxMarkets]
	}
	g.logger.Info("fetched active markets", slog.Int("count", len(all)))
	return all, nil
}

// singleGamePrefixes identify slugs of the form "nba-uta-cle-2026-01-12".
var singleGamePrefixes = []string{
	"nba-", "nfl-", "nhl-", "mlb-", "cbb-", "cfb-", "wnba-",
	"cwbb-", "atp-", "wta-", "ufc-",
}

// sportsTitleKeywords catch futures and award markets that have no
// game-shaped slug.
var sportsTitleKeywords = []string{
	"super bowl", "nfl", "nba", "mlb", "nhl", "ufc", "mma",
	"championship", "playoffs", "world series", "stanley cup",
	"mvp", "rookie of the year", "coach of the year", "player of the year",
	"football", "basketball", "baseball", "hockey", "soccer",
	"premier league", "world cup", "ncaa", "college",
	"passing yards", "rushing yards", "touchdown", "home run",
	"afc", "nfc", "division", "conference",
}

// GetSportsMarkets fetches up to maxMarkets sports markets. It pages events
// deeply (order=id descending) because single-game markets are created early
// and live thousands of offsets in, then keeps events that either carry a
// game-shaped slug or look like sports futures. Markets quoting no YES price
// are dropped.
func (g *GammaClient) GetSportsMarkets(ctx context.Context, maxMarkets int) ([]domain.Market, error) {
	var all []domain.Market
	seen := make(map[string]struct{})
	singleGames, futures := 0, 0

	for offset := 0; offset < eventsMaxOffset && len(all) < maxMarkets; offset += eventsPageSize {
		params := url.Values{}
		params.Set("order", "id")
		params.Set("ascending", "false")
		params.Set("closed", "false")
		params.Set("limit", strconv.Itoa(eventsPageSize))
		params.Set("offset", strconv.Itoa(offset))

		body, err := g.doGet(ctx, "/events?"+params.Encode())
		if err != nil {
			return nil, fmt.Errorf("polymarket/gamma: get sports events: %w", err)
		}
		var events []APIEvent
		if err := json.Unmarshal(body, &events); err != nil {
			return nil, fmt.Errorf("polymarket/gamma: decode sports events: %w", err)
		}
		if len(events) == 0 {
			break
		}

		for i := range events {
			ev := &events[i]
			slug := strings.ToLower(ev.Slug)
			title := strings.ToLower(ev.Title)

			isSingleGame := false
			for _, prefix := range singleGamePrefixes {
				if strings.HasPrefix(slug, prefix) && len(strings.Split(slug, "-")) >= 4 {
					isSingleGame = true
					break
				}
			}
			isFutures := strings.EqualFold(ev.Category, "sports")
			if !isFutures {
				for _, kw := range sportsTitleKeywords {
					if strings.Contains(title, kw) {
						isFutures = true
						break
					}
				}
			}
			if !isSingleGame && !isFutures {
				continue
			}

			for j := range ev.Markets {
				if len(all) >= maxMarkets {
					break
				}
				m := ev.Markets[j].ToDomainMarket()
				if m.ID == "" || m.YesPrice <= 0 {
					continue
				}
				if _, dup := seen[m.ID]; dup {
					continue
				}
				if isSingleGame {
					m.Category = "single_game_" + strings.SplitN(slug, "-", 2)[0]
					singleGames++
				} else {
					futures++
				}
				seen[m.ID] = struct{}{}
				all = append(all, m)
			}
		}
	}

	g.logger.Info("fetched sports markets",
		slog.Int("single_game", singleGames),
		slog.Int("futures", futures),
	)
	return all, nil
}

// --------------------------------------------------------------------------
// Internal helpers
// --------------------------------------------------------------------------

// doGet sends an unauthenticated GET request to the Gamma API, waiting on the
// shared rate limiter first.
func (g *GammaClient) doGet(ctx context.Context, path string) ([]byte, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx, "polymarket", g.rpm, time.Minute); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if err := checkHTTPStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}
	return body, nil
}

// checkHTTPStatus maps HTTP error codes onto domain sentinel errors.
func checkHTTPStatus(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	bodyStr := string(body)
	switch statusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, bodyStr)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, bodyStr)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, bodyStr)
	default:
		return fmt.Errorf("HTTP %d: %s", statusCode, bodyStr)
	}
}
