package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies MARKETARB_* environment variable overrides, and
// returns the final Config. The returned Config has NOT been validated; the
// caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known MARKETARB_* environment variables and
// overwrites the corresponding Config fields when a variable is set (i.e. not
// empty). This lets operators inject secrets at deploy time without touching
// the TOML file.
func applyEnvOverrides(cfg *Config) {
	// ── Polymarket ──
	setStr(&cfg.Polymarket.GammaHost, "MARKETARB_POLYMARKET_GAMMA_HOST")
	setInt(&cfg.Polymarket.RequestsPerMinute, "MARKETARB_POLYMARKET_REQUESTS_PER_MINUTE")
	setDuration(&cfg.Polymarket.RequestTimeout, "MARKETARB_POLYMARKET_REQUEST_TIMEOUT")
	setInt(&cfg.Polymarket.MaxMarkets, "MARKETARB_POLYMARKET_MAX_MARKETS")

	// ── Kalshi ──
	setStr(&cfg.Kalshi.BaseURL, "MARKETARB_KALSHI_BASE_URL")
	setStr(&cfg.Kalshi.ApiKey, "MARKETARB_KALSHI_API_KEY")
	setInt(&cfg.Kalshi.RequestsPerMinute, "MARKETARB_KALSHI_REQUESTS_PER_MINUTE")
	setDuration(&cfg.Kalshi.RequestTimeout, "MARKETARB_KALSHI_REQUEST_TIMEOUT")
	setInt(&cfg.Kalshi.MaxMarkets, "MARKETARB_KALSHI_MAX_MARKETS")

	// ── Redis ──
	setStr(&cfg.Redis.Addr, "MARKETARB_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "MARKETARB_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "MARKETARB_REDIS_DB")
	setInt(&cfg.Redis.PoolSize, "MARKETARB_REDIS_POOL_SIZE")
	setInt(&cfg.Redis.MaxRetries, "MARKETARB_REDIS_MAX_RETRIES")
	setBool(&cfg.Redis.TLSEnabled, "MARKETARB_REDIS_TLS_ENABLED")

	// ── Matcher ──
	setFloat64(&cfg.Matcher.GenericThreshold, "MARKETARB_MATCHER_GENERIC_THRESHOLD")
	setFloat64(&cfg.Matcher.SportsThreshold, "MARKETARB_MATCHER_SPORTS_THRESHOLD")
	setBool(&cfg.Matcher.StrictAliases, "MARKETARB_MATCHER_STRICT_ALIASES")

	// ── Arbitrage ──
	setFloat64(&cfg.Arbitrage.PolymarketFee, "MARKETARB_ARBITRAGE_POLYMARKET_FEE")
	setFloat64(&cfg.Arbitrage.KalshiFee, "MARKETARB_ARBITRAGE_KALSHI_FEE")
	setFloat64(&cfg.Arbitrage.MinDifferencePercent, "MARKETARB_ARBITRAGE_MIN_DIFFERENCE_PERCENT")
	setFloat64(&cfg.Arbitrage.SportsMinDifferencePercent, "MARKETARB_ARBITRAGE_SPORTS_MIN_DIFFERENCE_PERCENT")

	// ── Scanner ──
	setDuration(&cfg.Scanner.Interval, "MARKETARB_SCANNER_INTERVAL")
	setDuration(&cfg.Scanner.StalenessThreshold, "MARKETARB_SCANNER_STALENESS_THRESHOLD")
	setDuration(&cfg.Scanner.SnapshotTTL, "MARKETARB_SCANNER_SNAPSHOT_TTL")

	// ── Server ──
	setBool(&cfg.Server.Enabled, "MARKETARB_SERVER_ENABLED")
	setInt(&cfg.Server.Port, "MARKETARB_SERVER_PORT")
	setStringSlice(&cfg.Server.CORSOrigins, "MARKETARB_SERVER_CORS_ORIGINS")
	setStr(&cfg.Server.APIKey, "MARKETARB_SERVER_API_KEY")
	setInt(&cfg.Server.RequestsPerMinute, "MARKETARB_SERVER_REQUESTS_PER_MINUTE")

	// ── Notify ──
	setStr(&cfg.Notify.TelegramToken, "MARKETARB_NOTIFY_TELEGRAM_TOKEN")
	setStr(&cfg.Notify.TelegramChatID, "MARKETARB_NOTIFY_TELEGRAM_CHAT_ID")
	setStr(&cfg.Notify.DiscordWebhookURL, "MARKETARB_NOTIFY_DISCORD_WEBHOOK_URL")
	setStringSlice(&cfg.Notify.Events, "MARKETARB_NOTIFY_EVENTS")
	setInt(&cfg.Notify.MinProfitBps, "MARKETARB_NOTIFY_MIN_PROFIT_BPS")

	// ── Top-level ──
	setStr(&cfg.Mode, "MARKETARB_MODE")
	setStr(&cfg.LogLevel, "MARKETARB_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
