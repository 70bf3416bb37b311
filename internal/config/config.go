// Package config defines the top-level configuration for the market arbitrage
// scanner and provides validation helpers.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration structure. Fields are populated from a TOML
// file and then optionally overridden by MARKETARB_* environment variables.
type Config struct {
	Polymarket PolymarketConfig `toml:"polymarket"`
	Kalshi     KalshiConfig     `toml:"kalshi"`
	Redis      RedisConfig      `toml:"redis"`
	Matcher    MatcherConfig    `toml:"matcher"`
	Arbitrage  ArbitrageConfig  `toml:"arbitrage"`
	Scanner    ScannerConfig    `toml:"scanner"`
	Server     ServerConfig     `toml:"server"`
	Notify     NotifyConfig     `toml:"notify"`
	Mode       string           `toml:"mode"`
	LogLevel   string           `toml:"log_level"`
}

// PolymarketConfig holds Polymarket Gamma API parameters.
type PolymarketConfig struct {
	GammaHost string `toml:"gamma_host"`
	// RequestsPerMinute caps outbound requests via the shared rate limiter.
	RequestsPerMinute int      `toml:"requests_per_minute"`
	RequestTimeout    duration `toml:"request_timeout"`
	// MaxMarkets bounds how many markets a full fetch pages through.
	MaxMarkets int `toml:"max_markets"`
}

// KalshiConfig holds Kalshi trade API parameters. The public market data
// endpoints work without credentials; api_key is only needed for elevated
// rate limits.
type KalshiConfig struct {
	BaseURL           string   `toml:"base_url"`
	ApiKey            string   `toml:"api_key"`
	RequestsPerMinute int      `toml:"requests_per_minute"`
	RequestTimeout    duration `toml:"request_timeout"`
	MaxMarkets        int      `toml:"max_markets"`
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	PoolSize   int    `toml:"pool_size"`
	MaxRetries int    `toml:"max_retries"`
	TLSEnabled bool   `toml:"tls_enabled"`
}

// MatcherConfig holds market-matching thresholds.
type MatcherConfig struct {
	// GenericThreshold is the minimum similarity score for cross-venue text
	// matching; values below 0.60 are clamped up.
	GenericThreshold float64 `toml:"generic_threshold"`
	// SportsThreshold is the minimum structural score for sports matching.
	SportsThreshold float64 `toml:"sports_threshold"`
	// StrictAliases disables substring fallback in team normalization.
	StrictAliases bool `toml:"strict_aliases"`
}

// ArbitrageConfig holds detection fees and filters.
type ArbitrageConfig struct {
	PolymarketFee float64 `toml:"polymarket_fee"`
	KalshiFee     float64 `toml:"kalshi_fee"`
	// MinDifferencePercent filters generic opportunities below this midpoint
	// percent difference.
	MinDifferencePercent float64 `toml:"min_difference_percent"`
	// SportsMinDifferencePercent filters sports opportunities below this raw
	// price-gap percent.
	SportsMinDifferencePercent float64 `toml:"sports_min_difference_percent"`
}

// ScannerConfig holds refresh-cycle parameters.
type ScannerConfig struct {
	// Interval between automatic refresh cycles; 0 disables the ticker and
	// leaves refreshes to the API.
	Interval duration `toml:"interval"`
	// StalenessThreshold marks a snapshot stale once its age exceeds this.
	StalenessThreshold duration `toml:"staleness_threshold"`
	// SnapshotTTL is the expiry applied to the Redis snapshot mirror.
	SnapshotTTL duration `toml:"snapshot_ttl"`
}

// duration is a wrapper around time.Duration that supports TOML string decoding
// (e.g. "5m", "30s").
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler so the TOML decoder can
// parse duration strings like "5m" or "30s".
func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler for round-trip encoding.
func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Enabled     bool     `toml:"enabled"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	// APIKey, when set, is required as a Bearer token on every request.
	APIKey string `toml:"api_key"`
	// RequestsPerMinute caps per-client-IP request rates; 0 disables.
	RequestsPerMinute int `toml:"requests_per_minute"`
}

// NotifyConfig holds notification channel credentials.
type NotifyConfig struct {
	TelegramToken     string   `toml:"telegram_token"`
	TelegramChatID    string   `toml:"telegram_chat_id"`
	DiscordWebhookURL string   `toml:"discord_webhook_url"`
	Events            []string `toml:"events"`
	// MinProfitBps suppresses notifications for opportunities below this.
	MinProfitBps int `toml:"min_profit_bps"`
}

// Defaults returns a Config populated with reasonable default values.
// These match the values in config.example.toml.
func Defaults() Config {
	return Config{
		Polymarket: PolymarketConfig{
			GammaHost:         "https://gamma-api.polymarket.com",
			RequestsPerMinute: 60,
			RequestTimeout:    duration{30 * time.Second},
			MaxMarkets:        500,
		},
		Kalshi: KalshiConfig{
			BaseURL:           "https://api.elections.kalshi.com/trade-api/v2",
			RequestsPerMinute: 60,
			RequestTimeout:    duration{30 * time.Second},
			MaxMarkets:        500,
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			DB:         0,
			PoolSize:   20,
			MaxRetries: 3,
			TLSEnabled: false,
		},
		Matcher: MatcherConfig{
			GenericThreshold: 0.60,
			SportsThreshold:  0.70,
			StrictAliases:    false,
		},
		Arbitrage: ArbitrageConfig{
			PolymarketFee:              0.02,
			KalshiFee:                  0.01,
			MinDifferencePercent:       1.0,
			SportsMinDifferencePercent: 1.0,
		},
		Scanner: ScannerConfig{
			Interval:           duration{5 * time.Minute},
			StalenessThreshold: duration{5 * time.Minute},
			SnapshotTTL:        duration{30 * time.Minute},
		},
		Server: ServerConfig{
			Enabled:           true,
			Port:              8000,
			CORSOrigins:       []string{"http://localhost:3000", "http://localhost:5173"},
			RequestsPerMinute: 120,
		},
		Notify: NotifyConfig{
			Events:       []string{"arb_detected", "scan_failed"},
			MinProfitBps: 100,
		},
		Mode:     "full",
		LogLevel: "info",
	}
}

// validModes enumerates the accepted values for Config.Mode.
var validModes = map[string]bool{
	"scan":   true,
	"server": true,
	"full":   true,
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config for obviously invalid or missing values and returns a
// combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	// Mode
	if !validModes[strings.ToLower(c.Mode)] {
		errs = append(errs, fmt.Sprintf("unknown mode %q (valid: scan, server, full)", c.Mode))
	}

	// LogLevel
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}

	// Venue endpoints
	if c.Polymarket.GammaHost == "" {
		errs = append(errs, "polymarket: gamma_host must not be empty")
	}
	if c.Polymarket.RequestsPerMinute < 1 {
		errs = append(errs, "polymarket: requests_per_minute must be >= 1")
	}
	if c.Polymarket.MaxMarkets < 1 {
		errs = append(errs, "polymarket: max_markets must be >= 1")
	}
	if c.Kalshi.BaseURL == "" {
		errs = append(errs, "kalshi: base_url must not be empty")
	}
	if c.Kalshi.RequestsPerMinute < 1 {
		errs = append(errs, "kalshi: requests_per_minute must be >= 1")
	}
	if c.Kalshi.MaxMarkets < 1 {
		errs = append(errs, "kalshi: max_markets must be >= 1")
	}

	// Redis
	if c.Redis.Addr == "" {
		errs = append(errs, "redis: addr must not be empty")
	}
	if c.Redis.PoolSize < 1 {
		errs = append(errs, "redis: pool_size must be >= 1")
	}

	// Matcher
	if c.Matcher.GenericThreshold < 0 || c.Matcher.GenericThreshold > 1 {
		errs = append(errs, fmt.Sprintf("matcher: generic_threshold must be in [0,1], got %v", c.Matcher.GenericThreshold))
	}
	if c.Matcher.SportsThreshold < 0 || c.Matcher.SportsThreshold > 1 {
		errs = append(errs, fmt.Sprintf("matcher: sports_threshold must be in [0,1], got %v", c.Matcher.SportsThreshold))
	}

	// Arbitrage
	if c.Arbitrage.PolymarketFee < 0 || c.Arbitrage.PolymarketFee >= 1 {
		errs = append(errs, "arbitrage: polymarket_fee must be in [0,1)")
	}
	if c.Arbitrage.KalshiFee < 0 || c.Arbitrage.KalshiFee >= 1 {
		errs = append(errs, "arbitrage: kalshi_fee must be in [0,1)")
	}
	if c.Arbitrage.MinDifferencePercent < 0 {
		errs = append(errs, "arbitrage: min_difference_percent must be >= 0")
	}
	if c.Arbitrage.SportsMinDifferencePercent < 0 {
		errs = append(errs, "arbitrage: sports_min_difference_percent must be >= 0")
	}

	// Scanner
	if c.Scanner.StalenessThreshold.Duration <= 0 {
		errs = append(errs, "scanner: staleness_threshold must be > 0")
	}
	if c.Scanner.SnapshotTTL.Duration <= 0 {
		errs = append(errs, "scanner: snapshot_ttl must be > 0")
	}

	// Server
	if c.Server.Enabled {
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, fmt.Sprintf("server: port must be 1-65535, got %d", c.Server.Port))
		}
	}
	if c.Mode == "server" || c.Mode == "full" {
		if !c.Server.Enabled {
			errs = append(errs, "server: must be enabled for mode "+c.Mode)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
