// Package kalshi is the REST client for the Kalshi exchange API. Market data
// endpoints are public; prices arrive in cents and are converted to 0-1
// decimals at the boundary.
package kalshi

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

// marketsPageSize is the per-request page size used when cursoring /markets.
const marketsPageSize = 100

// seriesFetchLimit is how many markets to pull per sports series. Series hold
// weeks of games; client-side expiration filtering trims them down.
const seriesFetchLimit = 200

// singleGameSeries are the series tickers carrying one market per game or
// match. Markets in these series resolve within days.
var singleGameSeries = []string{
	"KXNBAGAME", "KXNFLGAME", "KXNHLGAME", "KXMLBGAME", "KXWNBAGAME",
	"KXNCAABGAME", "KXNCAAMBGAME", "KXNCAAWBGAME",
	"KXNCAAFGAME", "KXNCAAFBGAME", "KXNCAAFCSGAME",
	"KXEUROLEAGUEGAME", "KXNBLGAME",
	"KXUFCFIGHT", "KXTENNISMATCH", "KXATPTOUR", "KXWTATOUR",
	"KXPGATOUR", "KXLPGATOUR", "KXGOLFTOURNAMENT",
	"KXF1RACE", "KXNASCARRACE", "KXINDYCARRACE",
	"KXCRICKETTESTMATCH", "KXCRICKETT20IMATCH",
	"KXCHESSMATCH", "KXDOTA2GAME",
}

// playerPropsSeries are per-game player stat lines.
var playerPropsSeries = []string{
	"KXNBAPTS", "KXNBAREBS", "KXNBAASTS", "KXNBA3S",
	"KXNFLTD", "KXNFLPASS", "KXNFLRUSH", "KXNFLREC",
	"KXNHLPTS", "KXNHLGOALS",
	"KXMLBHITS", "KXMLBHR", "KXMLBRBI",
}

// sportsFuturesSeries are season-long championship and award markets.
var sportsFuturesSeries = []string{
	"KXSB", "KXAFC", "KXNFC",
	"KXNFLSBMVP", "KXNFLDPOY", "KXNFLOROTY", "KXNFLCPOY", "KXNFLCOACH", "KXNFLMVP",
	"KXNBA", "KXNBAROY", "KXNBAMVP",
	"KXNHL", "KXNHLEAST", "KXNHLWEST", "KXNHLMVP",
	"KXMLB", "KXMLBALEAST", "KXMLBNLEAST", "KXMLBALROTY", "KXMLBNLROTY",
}

// ClientConfig configures a Client.
type ClientConfig struct {
	// BaseURL is the API root, e.g.
	// "https://api.elections.kalshi.com/trade-api/v2".
	BaseURL string
	// APIKey is sent as the KALSHI-ACCESS-KEY header when set. Market data
	// endpoints work without one.
	APIKey string
	// Limiter gates outbound requests; nil disables rate limiting.
	Limiter domain.RateLimiter
	// RequestsPerMinute is the budget applied through Limiter.
	RequestsPerMinute int
	Timeout           time.Duration
	Logger            *slog.Logger
}

// Client fetches Kalshi markets over the public REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    domain.RateLimiter
	rpm        int
	logger     *slog.Logger
}

// NewClient creates a new Kalshi REST client.
func NewClient(cfg ClientConfig) *Client {
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
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    cfg.Limiter,
		rpm:        rpm,
		logger:     logger.With(slog.String("component", "kalshi")),
	}
}

// CheckExchangeStatus verifies the exchange is accepting activity. It returns
// domain.ErrExchangeInactive when the exchange reports itself inactive.
func (c *Client) CheckExchangeStatus(ctx context.Context) error {
	body, err := c.doGet(ctx, "/exchange/status")
	if err != nil {
		return fmt.Errorf("kalshi: exchange status: %w", err)
	}

	var resp struct {
		ExchangeActive bool `json:"exchange_active"`
		TradingActive  bool `json:"trading_active"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("kalshi: decode exchange status: %w", err)
	}
	if !resp.ExchangeActive {
		return domain.ErrExchangeInactive
	}
	return nil
}

// MarketsQuery filters a GetMarkets call. Zero fields are omitted.
type MarketsQuery struct {
	EventTicker  string
	SeriesTicker string
	Status       string
	// Limit caps the total returned across cursor pages; 0 means one page.
	Limit      int
	MinCloseTS int64
	MaxCloseTS int64
}

// GetMarkets returns markets matching the query, following cursor pagination
// until Limit markets are collected or the cursor runs out.
func (c *Client) GetMarkets(ctx context.Context, q MarketsQuery) ([]APIMarket, error) {
	max := q.Limit
	if max <= 0 {
		max = marketsPageSize
	}

	var all []APIMarket
	cursor := ""
	for len(all) < max {
		pageSize := max - len(all)
		if pageSize > marketsPageSize {
			pageSize = marketsPageSize
		}

		params := url.Values{}
		params.Set("limit", strconv.Itoa(pageSize))
		if q.EventTicker != "" {
			params.Set("event_ticker", q.EventTicker)
		}
		if q.SeriesTicker != "" {
			params.Set("series_ticker", q.SeriesTicker)
		}
		if q.Status != "" {
			params.Set("status", q.Status)
		}
		if q.MinCloseTS > 0 {
			params.Set("min_close_ts", strconv.FormatInt(q.MinCloseTS, 10))
		}
		if q.MaxCloseTS > 0 {
			params.Set("max_close_ts", strconv.FormatInt(q.MaxCloseTS, 10))
		}
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		body, err := c.doGet(ctx, "/markets?"+params.Encode())
		if err != nil {
			return nil, fmt.Errorf("kalshi: get markets: %w", err)
		}

		var resp struct {
			Markets []APIMarket `json:"markets"`
			Cursor  string      `json:"cursor"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("kalshi: decode markets: %w", err)
		}
		if len(resp.Markets) == 0 {
			break
		}

		all = append(all, resp.Markets...)
		cursor = resp.Cursor
		if cursor == "" {
			break
		}
	}

	if len(all) > max {
		all = all[:max]
	}
	return all, nil
}

// GetMarket returns a single market by its ticker.
func (c *Client) GetMarket(ctx context.Context, ticker string) (domain.Market, error) {
	body, err := c.doGet(ctx, "/markets/"+url.PathEscape(ticker))
	if err != nil {
		return domain.Market{}, fmt.Errorf("kalshi: get market %s: %w", ticker, err)
	}

	var resp struct {
		Market APIMarket `json:"market"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Market{}, fmt.Errorf("kalshi: decode market: %w", err)
	}
	return resp.Market.ToDomainMarket(), nil
}

// GetSeriesList returns series in the given category, or all series when
// category is empty.
func (c *Client) GetSeriesList(ctx context.Context, category string) ([]APISeries, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}

	path := "/series"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	body, err := c.doGet(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("kalshi: get series: %w", err)
	}

	var resp struct {
		Series []APISeries `json:"series"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("kalshi: decode series: %w", err)
	}
	return resp.Series, nil
}

// GetEvents returns up to limit events, optionally filtered by series ticker
// and status, following cursor pagination.
func (c *Client) GetEvents(ctx context.Context, seriesTicker, status string, limit int) ([]APIEvent, error) {
	if limit <= 0 {
		limit = marketsPageSize
	}

	var all []APIEvent
	cursor := ""
	for len(all) < limit {
		pageSize := limit - len(all)
		if pageSize > marketsPageSize {
			pageSize = marketsPageSize
		}

		params := url.Values{}
		params.Set("limit", strconv.Itoa(pageSize))
		if seriesTicker != "" {
			params.Set("series_ticker", seriesTicker)
		}
		if status != "" {
			params.Set("status", status)
		}
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		body, err := c.doGet(ctx, "/events?"+params.Encode())
		if err != nil {
			return nil, fmt.Errorf("kalshi: get events: %w", err)
		}

		var resp struct {
			Events []APIEvent `json:"events"`
			Cursor string     `json:"cursor"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("kalshi: decode events: %w", err)
		}
		if len(resp.Events) == 0 {
			break
		}

		all = append(all, resp.Events...)
		cursor = resp.Cursor
		if cursor == "" {
			break
		}
	}

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// GetAllOpenMarkets fetches up to maxMarkets open markets from the /markets
// endpoint, deduplicated by ticker.
func (c *Client) GetAllOpenMarkets(ctx context.Context, maxMarkets int) ([]domain.Market, error) {
	raw, err := c.GetMarkets(ctx, MarketsQuery{Status: "open", Limit: maxMarkets})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(raw))
	markets := make([]domain.Market, 0, len(raw))
	for i := range raw {
		if raw[i].Ticker == "" {
			continue
		}
		if _, dup := seen[raw[i].Ticker]; dup {
			continue
		}
		seen[raw[i].Ticker] = struct{}{}
		markets = append(markets, raw[i].ToDomainMarket())
	}

	c.logger.Info("fetched open markets", slog.Int("count", len(markets)))
	return markets, nil
}

// SearchMarkets returns open markets whose title or ticker contains the
// query. Kalshi has no search endpoint, so this filters locally over a fetch
// of up to maxMarkets open markets.
func (c *Client) SearchMarkets(ctx context.Context, query string, maxMarkets int) ([]domain.Market, error) {
	if maxMarkets <= 0 {
		maxMarkets = 500
	}
	markets, err := c.GetAllOpenMarkets(ctx, maxMarkets)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matching []domain.Market
	for _, m := range markets {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Ticker), q) {
			matching = append(matching, m)
		}
	}
	return matching, nil
}

// GetSportsMarkets fetches sports markets across the known single-game,
// player-prop, and futures series. Single-game and prop markets are filtered
// client-side to those resolving within maxExpiration of now, using the
// expected expiration time rather than the trading close. A failed series
// fetch is logged and skipped so one bad series cannot sink the scan.
func (c *Client) GetSportsMarkets(ctx context.Context, maxExpiration time.Duration) ([]domain.Market, error) {
	now := time.Now().UTC()
	cutoff := now.Add(maxExpiration)

	singleGame := make(map[string]struct{}, len(singleGameSeries))
	for _, s := range singleGameSeries {
		singleGame[s] = struct{}{}
	}
	props := make(map[string]struct{}, len(playerPropsSeries))
	for _, s := range playerPropsSeries {
		props[s] = struct{}{}
	}

	allSeries := make([]string, 0, len(singleGameSeries)+len(playerPropsSeries)+len(sportsFuturesSeries))
	allSeries = append(allSeries, singleGameSeries...)
	allSeries = append(allSeries, playerPropsSeries...)
	allSeries = append(allSeries, sportsFuturesSeries...)

	var all []domain.Market
	seen := make(map[string]struct{})
	singleGames, propCount, futures := 0, 0, 0

	for _, series := range allSeries {
		raw, err := c.GetMarkets(ctx, MarketsQuery{
			SeriesTicker: series,
			Status:       "open",
			Limit:        seriesFetchLimit,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("series fetch failed",
				slog.String("series", series),
				slog.String("error", err.Error()),
			)
			continue
		}

		_, isSingleGame := singleGame[series]
		_, isProps := props[series]

		for i := range raw {
			m := &raw[i]
			if m.Ticker == "" {
				continue
			}
			if _, dup := seen[m.Ticker]; dup {
				continue
			}

			dm := m.ToDomainMarket()
			switch {
			case isSingleGame, isProps:
				if exp := m.ExpirationTime(); !exp.IsZero() {
					if exp.After(cutoff) || exp.Before(now) {
						continue
					}
				}
				if isProps {
					dm.Category = "props_" + propsSport(series)
					propCount++
				} else {
					dm.Category = "single_game_" + gameSport(series)
					singleGames++
				}
			default:
				dm.Category = "futures"
				futures++
			}

			seen[m.Ticker] = struct{}{}
			all = append(all, dm)
		}
	}

	c.logger.Info("fetched sports markets",
		slog.Int("single_game", singleGames),
		slog.Int("props", propCount),
		slog.Int("futures", futures),
	)
	return all, nil
}

// gameSport extracts the sport from a single-game series ticker, e.g.
// "KXNBAGAME" -> "nba".
func gameSport(series string) string {
	s := strings.TrimPrefix(series, "KX")
	s = strings.Replace(s, "GAME", "", 1)
	return strings.ToLower(s)
}

// propsSuffixes are the stat-line suffixes on player-prop series tickers.
var propsSuffixes = []string{
	"PTS", "REBS", "ASTS", "3S", "TD", "PASS", "RUSH", "REC",
	"GOALS", "HITS", "HR", "RBI",
}

// propsSport extracts the sport from a player-prop series ticker, e.g.
// "KXNBAPTS" -> "nba".
func propsSport(series string) string {
	s := strings.TrimPrefix(series, "KX")
	for _, suffix := range propsSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	return strings.ToLower(s)
}

// --------------------------------------------------------------------------
// Internal helpers
// --------------------------------------------------------------------------

// doGet sends a GET request to the Kalshi API, waiting on the shared rate
// limiter first.
func (c *Client) doGet(ctx context.Context, path string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, "kalshi", c.rpm, time.Minute); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("KALSHI-ACCESS-KEY", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if err := checkStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}
	return body, nil
}

// checkStatus maps non-2xx status codes onto domain sentinel errors, carrying
// the API error message when one decodes.
func checkStatus(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	var apiErr apiErrorResponse
	_ = json.Unmarshal(body, &apiErr)
	msg := apiErr.Message
	if msg == "" {
		msg = string(body)
	}

	switch statusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, msg)
	default:
		return fmt.Errorf("HTTP %d: %s", statusCode, msg)
	}
}
