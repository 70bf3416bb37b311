// Package normalize maps venue-specific team references, slugs, and tickers
// onto canonical entities shared across venues. It is the source of truth
// for deciding that two markets talk about the same team or game.
package normalize

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Sport identifies a league context. Team lookups are always scoped to one
// sport; the alias tables are never merged implicitly.
type Sport string

const (
	SportNBA     Sport = "nba"
	SportNFL     Sport = "nfl"
	SportNHL     Sport = "nhl"
	SportMLB     Sport = "mlb"
	SportWNBA    Sport = "wnba"
	SportNCAAMBB Sport = "ncaa_mbb"
	SportNCAAWBB Sport = "ncaa_wbb"
	SportNCAAFB  Sport = "ncaa_fb"
	SportSoccer  Sport = "soccer"
	SportUFC     Sport = "ufc"
	SportTennis  Sport = "tennis"
	SportGolf    Sport = "golf"
	SportF1      Sport = "f1"
	SportNASCAR  Sport = "nascar"
	SportUnknown Sport = "unknown"
)

// Game holds the entities extracted from a single-game market identifier.
// Zero-valued fields mean the identifier did not carry that information.
type Game struct {
	AwayTeam string
	HomeTeam string
	Date     string // YYYY-MM-DD
	Sport    Sport
}

// Config configures a Normalizer.
type Config struct {
	// StrictAliases disables the substring-containment fallback in Team:
	// only exact alias hits resolve. Default off, matching the permissive
	// lookup both venue feeds rely on.
	StrictAliases bool
	Logger        *slog.Logger
}

// Normalizer resolves team references and parses venue market identifiers.
// Construct one per component; there is no package-level instance.
type Normalizer struct {
	teamMaps map[Sport]map[string]string
	strict   bool
	logger   *slog.Logger
}

// New creates a Normalizer with the built-in league tables.
func New(cfg Config) *Normalizer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{
		teamMaps: map[Sport]map[string]string{
			SportNBA:     nbaTeams,
			SportNFL:     nflTeams,
			SportNHL:     nhlTeams,
			SportMLB:     mlbTeams,
			SportNCAAMBB: collegeBasketballTeams,
			SportNCAAWBB: collegeBasketballTeams,
		},
		strict: cfg.StrictAliases,
		logger: logger.With(slog.String("component", "normalizer")),
	}
}

// Team resolves a team reference (abbreviation, city, mascot, or full name)
// to its canonical name within the given sport. The second return is false
// when the reference is unknown. Unless StrictAliases is set, an exact miss
// falls back to substring containment in either direction, first hit wins.
func (n *Normalizer) Team(ref string, sport Sport) (string, bool) {
	if ref == "" {
		return "", false
	}
	key := strings.ToLower(strings.TrimSpace(ref))

	teams, ok := n.teamMaps[sport]
	if !ok {
		return "", false
	}
	if canonical, ok := teams[key]; ok {
		return canonical, true
	}
	if n.strict {
		return "", false
	}
	for alias, canonical := range teams {
		if strings.Contains(key, alias) || strings.Contains(alias, key) {
			return canonical, true
		}
	}
	return "", false
}

// sportMarkers is checked in order; the first marker found in the combined
// text wins.
var sportMarkers = []struct {
	markers []string
	sport   Sport
}{
	{[]string{"kxnbagame", "nba-", "nba ", "basketball"}, SportNBA},
	{[]string{"kxnflgame", "nfl-", "nfl ", "super bowl"}, SportNFL},
	{[]string{"kxnhlgame", "nhl-", "nhl ", "hockey", "stanley cup"}, SportNHL},
	{[]string{"kxmlbgame", "mlb-", "mlb ", "baseball", "world series"}, SportMLB},
	{[]string{"kxwnbagame", "wnba"}, SportWNBA},
	{[]string{"kxncaabgame", "kxncaambgame", "cbb-", "college basketball"}, SportNCAAMBB},
	{[]string{"kxncaawbgame", "cwbb-", "women's basketball"}, SportNCAAWBB},
	{[]string{"kxncaafgame", "kxncaafbgame", "cfb-", "college football"}, SportNCAAFB},
	{[]string{"kxufcfight", "ufc", "mma"}, SportUFC},
	{[]string{"kxtennismatch", "kxatptour", "kxwtatour", "tennis", "wimbledon", "us open"}, SportTennis},
	{[]string{"kxpgatour", "kxlpgatour", "golf", "pga", "masters"}, SportGolf},
	{[]string{"kxf1race", "formula 1", "f1"}, SportF1},
	{[]string{"kxnascarrace", "nascar"}, SportNASCAR},
}

// DetectSport identifies the sport from any combination of market text,
// ticker, and slug.
func (n *Normalizer) DetectSport(text, ticker, slug string) Sport {
	combined := strings.ToLower(text + " " + ticker + " " + slug)
	for _, sm := range sportMarkers {
		for _, m := range sm.markers {
			if strings.Contains(combined, m) {
				return sm.sport
			}
		}
	}
	return SportUnknown
}

var slugSports = map[string]Sport{
	"nba":  SportNBA,
	"nfl":  SportNFL,
	"nhl":  SportNHL,
	"mlb":  SportMLB,
	"cbb":  SportNCAAMBB,
	"cwbb": SportNCAAWBB,
	"cfb":  SportNCAAFB,
}

// ParseSlug extracts teams, date, and sport from a Polymarket game slug of
// the form "league-away-home-YYYY-MM-DD" (e.g. "nba-uta-cle-2026-01-12").
// Malformed slugs yield a zero Game with SportUnknown; parsing never errors.
func (n *Normalizer) ParseSlug(slug string) Game {
	if slug == "" {
		return Game{Sport: SportUnknown}
	}
	parts := strings.Split(strings.ToLower(slug), "-")
	if len(parts) < 5 {
		return Game{Sport: SportUnknown}
	}

	sport, ok := slugSports[parts[0]]
	if !ok {
		sport = SportUnknown
	}

	away, _ := n.Team(parts[1], sport)
	home, _ := n.Team(parts[2], sport)

	var date string
	if len(parts) >= 6 {
		date = fmt.Sprintf("%s-%s-%s", parts[3], parts[4], parts[5])
	}

	return Game{AwayTeam: away, HomeTeam: home, Date: date, Sport: sport}
}

var tickerGameRe = regexp.MustCompile(`(\d{2})([A-Z]{3})(\d{1,2})([A-Z]+)`)

var tickerMonths = map[string]string{
	"JAN": "01", "FEB": "02", "MAR": "03", "APR": "04",
	"MAY": "05", "JUN": "06", "JUL": "07", "AUG": "08",
	"SEP": "09", "OCT": "10", "NOV": "11", "DEC": "12",
}

// ParseTicker extracts teams, date, and sport from a Kalshi game ticker of
// the form "KX<SPORT>GAME-YYMMMDDAWYHOM-WIN" (e.g.
// "KXNBAGAME-26JAN12UTACLE-UTA"). The team block is split as two 3-letter
// abbreviations, away first. When a winner suffix is present and resolves
// to neither extracted team, a warning is logged but the result stands.
func (n *Normalizer) ParseTicker(ticker string) Game {
	if ticker == "" {
		return Game{Sport: SportUnknown}
	}
	upper := strings.ToUpper(ticker)

	sport := SportUnknown
	switch {
	case strings.Contains(upper, "NBAGAME"):
		sport = SportNBA
	case strings.Contains(upper, "NFLGAME"):
		sport = SportNFL
	case strings.Contains(upper, "NHLGAME"):
		sport = SportNHL
	case strings.Contains(upper, "MLBGAME"):
		sport = SportMLB
	case strings.Contains(upper, "NCAAB"), strings.Contains(upper, "NCAAMB"):
		sport = SportNCAAMBB
	}

	parts := strings.Split(upper, "-")
	if len(parts) < 2 {
		return Game{Sport: sport}
	}

	var date, teamBlock string
	if m := tickerGameRe.FindStringSubmatch(parts[1]); m != nil {
		month, ok := tickerMonths[m[2]]
		if !ok {
			month = "01"
		}
		day := m[3]
		if len(day) == 1 {
			day = "0" + day
		}
		date = fmt.Sprintf("20%s-%s-%s", m[1], month, day)
		teamBlock = m[4]
	}

	var away, home string
	if len(teamBlock) >= 6 {
		away, _ = n.Team(teamBlock[:3], sport)
		home, _ = n.Team(teamBlock[3:6], sport)
	}

	if len(parts) >= 3 {
		if winner, ok := n.Team(parts[2], sport); ok && winner != away && winner != home {
			n.logger.Warn("ticker winner does not match extracted teams",
				slog.String("ticker", ticker),
				slog.String("winner", winner),
				slog.String("away", away),
				slog.String("home", home),
			)
		}
	}

	return Game{AwayTeam: away, HomeTeam: home, Date: date, Sport: sport}
}

// GameName renders the standard "Away Team vs Home Team" label, or "" when
// either side is missing.
func GameName(away, home string) string {
	if away == "" || home == "" {
		return ""
	}
	return away + " vs " + home
}

// SameGame reports whether two parsed games describe the same matchup: both
// sides present on each, identical team sets regardless of order, and equal
// dates when both carry one. A missing date on either side is accepted.
func SameGame(a, b Game) bool {
	if a.AwayTeam == "" || a.HomeTeam == "" || b.AwayTeam == "" || b.HomeTeam == "" {
		return false
	}
	sameSet := (a.AwayTeam == b.AwayTeam && a.HomeTeam == b.HomeTeam) ||
		(a.AwayTeam == b.HomeTeam && a.HomeTeam == b.AwayTeam)
	if !sameSet {
		return false
	}
	if a.Date != "" && b.Date != "" {
		return a.Date == b.Date
	}
	return true
}
