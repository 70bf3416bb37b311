package match

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/tgoodwin/marketarb/internal/domain"
	"github.com/tgoodwin/marketarb/internal/normalize"
)

// MarketType classifies a sports market by what it pays out on.
type MarketType string

const (
	TypeSpread       MarketType = "spread"
	TypeOverUnder    MarketType = "over_under"
	TypeGameWinner   MarketType = "game_winner"
	TypeMVPSeason    MarketType = "mvp_season"
	TypeMVPGame      MarketType = "mvp_game"
	TypeChampionship MarketType = "championship"
	TypeDivision     MarketType = "division"
	TypePlayerAward  MarketType = "player_award"
	TypeParlay       MarketType = "parlay"
	TypePlayerProp   MarketType = "player_prop"
	TypeSeasonWins   MarketType = "season_wins"
	TypeUnknown      MarketType = "unknown"
)

// singleGame reports whether a market type is tied to one specific game.
func singleGame(t MarketType) bool {
	return t == TypeGameWinner || t == TypeSpread || t == TypeOverUnder
}

// sportsInfo is the structured view extracted from one market. Fields are
// left zero when not determinable; nothing is guessed.
type sportsInfo struct {
	league       normalize.Sport
	marketType   MarketType
	awayTeam     string
	homeTeam     string
	gameDate     string // YYYY-MM-DD
	team         string // futures: the team the market is about
	player       string
	championship string
	year         int
	raw          string
}

// defaultSportsThreshold is stricter than the generic matcher's floor:
// sports markets carry enough structure that weak matches are noise.
const defaultSportsThreshold = 0.70

// SportsConfig configures a SportsMatcher.
type SportsConfig struct {
	Normalizer *normalize.Normalizer
	// Threshold defaults to 0.70 when zero.
	Threshold float64
	Logger    *slog.Logger
}

// SportsMatcher pairs sports markets using league, market type, team, and
// game date structure. Classification order inside DetectMarketType is
// load-bearing: earlier checks shadow later ones.
type SportsMatcher struct {
	normalizer *normalize.Normalizer
	threshold  float64
	logger     *slog.Logger
}

// NewSportsMatcher creates a SportsMatcher.
func NewSportsMatcher(cfg SportsConfig) *SportsMatcher {
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = defaultSportsThreshold
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SportsMatcher{
		normalizer: cfg.Normalizer,
		threshold:  threshold,
		logger:     logger.With(slog.String("component", "sports_matcher")),
	}
}

// DetectLeague identifies the league from market text. Explicit league
// keywords win over team-name inference; NBA explicitly excludes WNBA.
func (m *SportsMatcher) DetectLeague(text string) normalize.Sport {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "nfl"), strings.Contains(lower, "super bowl"), strings.Contains(lower, "pro football"):
		return normalize.SportNFL
	case (strings.Contains(lower, "nba") || strings.Contains(lower, "basketball")) && !strings.Contains(lower, "wnba"):
		return normalize.SportNBA
	case strings.Contains(lower, "mlb"), strings.Contains(lower, "baseball"), strings.Contains(lower, "world series"):
		return normalize.SportMLB
	case strings.Contains(lower, "nhl"), strings.Contains(lower, "hockey"), strings.Contains(lower, "stanley cup"):
		return normalize.SportNHL
	case strings.Contains(lower, "soccer"), strings.Contains(lower, "premier league"), strings.Contains(lower, "fifa"):
		return normalize.SportSoccer
	case strings.Contains(lower, "ufc"), strings.Contains(lower, "mma"):
		return normalize.SportUFC
	case strings.Contains(lower, "pga"), strings.Contains(lower, "golf"), strings.Contains(lower, "masters"):
		return normalize.SportGolf
	case strings.Contains(lower, "tennis"), strings.Contains(lower, "wimbledon"), strings.Contains(lower, "us open"):
		return normalize.SportTennis
	}

	// Team-name inference, NFL then NBA then NHL.
	for _, sport := range []normalize.Sport{normalize.SportNFL, normalize.SportNBA, normalize.SportNHL} {
		for alias := range m.normalizer.Aliases(sport) {
			if strings.Contains(lower, alias) {
				return sport
			}
		}
	}

	return normalize.SportUnknown
}

var (
	spreadRe    = regexp.MustCompile(`\([+-]\d+(\.\d+)?\)`)
	overUnderRe = regexp.MustCompile(`\bover \d|\bunder \d`)
)

var futuresKeywords = []string{
	"championship", "super bowl", "finals", "stanley cup", "world series", "mvp", "award",
}

// DetectMarketType classifies a sports market. The checks run in a fixed
// order and the first hit wins: spread, over/under, single-game moneyline,
// MVP (game vs season), championship, division, player award, parlay,
// player prop, season wins.
func (m *SportsMatcher) DetectMarketType(text, ticker, slug string) MarketType {
	lower := strings.ToLower(text)
	tickerLower := strings.ToLower(ticker)

	if strings.Contains(lower, "spread") || strings.Contains(lower, "handicap") || spreadRe.MatchString(lower) {
		return TypeSpread
	}

	if strings.Contains(lower, "o/u") || strings.Contains(lower, "total points") || overUnderRe.MatchString(lower) {
		return TypeOverUnder
	}

	// Single-game moneyline: a game-shaped identifier or an "X vs Y" /
	// "X at Y" title, as long as no futures keyword muddies it.
	hasFutures := false
	for _, kw := range futuresKeywords {
		if strings.Contains(lower, kw) {
			hasFutures = true
			break
		}
	}
	if !hasFutures {
		gameShaped := strings.Contains(strings.ToUpper(ticker), "GAME-") ||
			m.normalizer.ParseSlug(slug).AwayTeam != "" ||
			strings.Contains(lower, " vs ") || strings.Contains(lower, " vs. ") ||
			strings.Contains(lower, " at ")
		if gameShaped {
			return TypeGameWinner
		}
	}

	if strings.Contains(lower, "mvp") || strings.Contains(tickerLower, "sbmvp") {
		for _, ind := range gameMVPIndicators {
			if strings.Contains(lower, ind) {
				return TypeMVPGame
			}
		}
		if strings.Contains(tickerLower, "sbmvp") {
			return TypeMVPGame
		}
		for _, ind := range seasonMVPIndicators {
			if strings.Contains(lower, ind) {
				return TypeMVPSeason
			}
		}
		m.logger.Warn("ambiguous mvp market, defaulting to season", slog.String("text", truncate(text, 80)))
		return TypeMVPSeason
	}

	for _, champ := range []string{"super bowl", "nba finals", "stanley cup", "world series", "championship"} {
		if strings.Contains(lower, champ) && strings.Contains(lower, "win") {
			return TypeChampionship
		}
	}

	for _, div := range []string{"afc", "nfc", "division", "conference"} {
		if strings.Contains(lower, div) {
			return TypeDivision
		}
	}

	for _, award := range []string{"rookie of the year", "roty", "dpoy", "defensive player"} {
		if strings.Contains(lower, award) {
			return TypePlayerAward
		}
	}

	if strings.Contains(tickerLower, "mve") || strings.Contains(tickerLower, "multigame") || strings.Contains(tickerLower, "singlegame") {
		return TypeParlay
	}

	if strings.Contains(lower, ":") || strings.Contains(lower, "yards") || strings.Contains(lower, "points") || strings.Contains(lower, "receptions") {
		return TypePlayerProp
	}

	if strings.Contains(lower, "wins") {
		for _, w := range []string{"season", "regular", "total"} {
			if strings.Contains(lower, w) {
				return TypeSeasonWins
			}
		}
	}

	return TypeUnknown
}

// extractTeam finds a team mention in free text, longest alias first with
// word-boundary matching so "indiana" never fires inside "Indiana
// University". Texts that look like college markets are skipped entirely.
// With league unknown the NBA, NFL, and NHL tables are tried in that order.
func (m *SportsMatcher) extractTeam(text string, league normalize.Sport) string {
	lower := strings.ToLower(text)

	sports := []normalize.Sport{league}
	if league == normalize.SportUnknown {
		sports = []normalize.Sport{normalize.SportNBA, normalize.SportNFL, normalize.SportNHL}
	}

	for _, sport := range sports {
		aliases := m.normalizer.Aliases(sport)
		if len(aliases) == 0 {
			continue
		}
		sorted := make([]string, 0, len(aliases))
		for alias := range aliases {
			sorted = append(sorted, alias)
		}
		sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

		for _, alias := range sorted {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`)
			if !re.MatchString(lower) {
				continue
			}
			skip := false
			for _, kw := range collegeKeywords {
				if strings.Contains(lower, kw) {
					skip = true
					break
				}
			}
			if skip {
				continue
			}
			return aliases[alias]
		}
	}
	return ""
}

// teamFromTicker scans ticker segments right to left for a known
// abbreviation ("KXNFLAFCCHAMP-25-TEN" names the Titans).
func (m *SportsMatcher) teamFromTicker(ticker string, league normalize.Sport) string {
	parts := strings.Split(strings.ToUpper(ticker), "-")
	for i := len(parts) - 1; i >= 0; i-- {
		if league != normalize.SportUnknown {
			if team, ok := m.normalizer.Abbrev(parts[i], league); ok {
				return team
			}
			continue
		}
		if team, _, ok := m.normalizer.AbbrevAny(parts[i]); ok {
			return team
		}
	}
	return ""
}

var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(20\d{2})\b`),
	regexp.MustCompile(`\b(20\d{2})-\d{2}\b`),
	regexp.MustCompile(`'(\d{2})`),
}

func extractYear(text string) int {
	for _, re := range yearPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			year := m[1]
			if len(year) == 2 {
				year = "20" + year
			}
			n := 0
			for _, c := range year {
				n = n*10 + int(c-'0')
			}
			return n
		}
	}
	return 0
}

func normalizeChampionship(text string) string {
	lower := strings.ToLower(text)
	for alias, canonical := range championshipMappings {
		if strings.Contains(lower, alias) {
			return canonical
		}
	}
	return ""
}

var playerRe = regexp.MustCompile(`will\s+([a-z\s]+?)\s+win`)

func extractPlayer(text string) string {
	m := playerRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return ""
	}
	return titleCase(strings.TrimSpace(m[1]))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// extractInfo derives the structured fields used for scoring from one
// market. Single-game markets get a matchup (away, home, date) with the
// identifier taking priority over free text; futures markets get a primary
// team, championship label, year, and player where present.
func (m *SportsMatcher) extractInfo(mkt domain.Market) sportsInfo {
	combined := mkt.Title + " " + mkt.Ticker + " " + mkt.Slug
	info := sportsInfo{
		league:     m.DetectLeague(combined),
		marketType: m.DetectMarketType(mkt.Title, mkt.Ticker, mkt.Slug),
		raw:        mkt.Title,
	}

	if singleGame(info.marketType) {
		m.fillMatchup(&info, mkt)
		return info
	}

	info.team = m.extractTeam(mkt.Title, info.league)
	if info.team == "" && mkt.Ticker != "" {
		info.team = m.teamFromTicker(mkt.Ticker, info.league)
	}
	info.year = extractYear(mkt.Title + " " + mkt.Ticker)
	info.championship = normalizeChampionship(mkt.Title)
	switch info.marketType {
	case TypeMVPSeason, TypeMVPGame, TypePlayerAward, TypePlayerProp:
		info.player = extractPlayer(mkt.Title)
	}
	return info
}

// fillMatchup resolves away/home/date, in priority order: slug, ticker,
// "X at Y" text (X is away), "X vs Y" text (first listed is away).
func (m *SportsMatcher) fillMatchup(info *sportsInfo, mkt domain.Market) {
	if mkt.Slug != "" {
		g := m.normalizer.ParseSlug(mkt.Slug)
		if g.AwayTeam != "" && g.HomeTeam != "" {
			info.awayTeam, info.homeTeam, info.gameDate = g.AwayTeam, g.HomeTeam, g.Date
			if info.league == normalize.SportUnknown {
				info.league = g.Sport
			}
			return
		}
	}

	if mkt.Ticker != "" {
		g := m.normalizer.ParseTicker(mkt.Ticker)
		if g.AwayTeam != "" && g.HomeTeam != "" {
			info.awayTeam, info.homeTeam, info.gameDate = g.AwayTeam, g.HomeTeam, g.Date
			if info.league == normalize.SportUnknown {
				info.league = g.Sport
			}
			return
		}
	}

	lower := strings.ToLower(mkt.Title)
	var sep string
	switch {
	case strings.Contains(lower, " at "):
		sep = " at "
	case strings.Contains(lower, " vs. "):
		sep = " vs. "
	case strings.Contains(lower, " vs "):
		sep = " vs "
	default:
		return
	}

	halves := strings.SplitN(lower, sep, 2)
	info.awayTeam = m.extractTeam(halves[0], info.league)
	info.homeTeam = m.extractTeam(halves[1], info.league)
	if info.gameDate == "" && mkt.EndDate != nil {
		info.gameDate = mkt.EndDate.Format("2006-01-02")
	}
}

// score rates two extracted infos. Gates reject league mismatch, unknown
// league, and market-type mismatch outright; per-type scoring follows.
func (m *SportsMatcher) score(a, b sportsInfo) (float64, string) {
	if a.league != b.league {
		return 0, "league_mismatch"
	}
	if a.league == normalize.SportUnknown {
		return 0, "unknown_league"
	}
	if a.marketType != b.marketType {
		return 0, "market_type_mismatch"
	}

	if singleGame(a.marketType) {
		if a.awayTeam == "" || a.homeTeam == "" || b.awayTeam == "" || b.homeTeam == "" {
			return 0, "missing_team"
		}
		sameSet := (a.awayTeam == b.awayTeam && a.homeTeam == b.homeTeam) ||
			(a.awayTeam == b.homeTeam && a.homeTeam == b.awayTeam)
		if !sameSet {
			return 0, "team_mismatch"
		}
		score := 0.6
		switch {
		case a.gameDate != "" && b.gameDate != "":
			if a.gameDate != b.gameDate {
				return 0, "date_mismatch"
			}
			score += 0.4
		case a.gameDate != "" || b.gameDate != "":
			score += 0.2
		}
		return score, "single_game_match"
	}

	switch a.marketType {
	case TypeChampionship:
		if a.team == "" || b.team == "" {
			return 0, "missing_team"
		}
		if a.team != b.team {
			return 0, "team_mismatch"
		}
		score := 0.5
		if a.championship != "" && b.championship != "" {
			if a.championship != b.championship {
				return 0, "championship_mismatch"
			}
			score += 0.3
		}
		if a.year != 0 && b.year != 0 {
			switch diff := a.year - b.year; {
			case diff == 0:
				score += 0.2
			case diff == 1 || diff == -1:
				// Season boundary: "2025-26 season" vs "2026".
				score += 0.1
			}
		}
		return score, "championship_match"

	case TypeMVPSeason, TypeMVPGame:
		// The type gate above already keeps season and game MVP apart.
		score := 0.0
		if a.player != "" && b.player != "" {
			pa, pb := strings.ToLower(a.player), strings.ToLower(b.player)
			switch {
			case pa == pb:
				score += 0.6
			case strings.Contains(pa, pb) || strings.Contains(pb, pa):
				score += 0.4
			default:
				return 0, "player_mismatch"
			}
		}
		if a.year != 0 && a.year == b.year {
			score += 0.4
		}
		if a.marketType == TypeMVPSeason {
			return score, "mvp_season_match"
		}
		return score, "mvp_game_match"

	case TypeDivision:
		score := 0.0
		if a.team != "" && b.team != "" {
			if a.team != b.team {
				return 0, "team_mismatch"
			}
			score += 0.7
		}
		if a.year != 0 && a.year == b.year {
			score += 0.3
		}
		return score, "division_match"
	}

	return 0, "unsupported_market_type"
}

// Match pairs sports markets in two passes: single-game markets first (the
// highest-signal group), then futures, each pass with its own used-set.
// Kalshi parlay and player-prop markets are excluded up front; they have no
// Polymarket counterpart shape.
func (m *SportsMatcher) Match(polymarket, kalshi []domain.Market) []domain.MatchedPair {
	type candidate struct {
		market domain.Market
		info   sportsInfo
	}

	var polyGame, polyFutures, kalshiGame, kalshiFutures []candidate
	for _, mkt := range polymarket {
		info := m.extractInfo(mkt)
		if info.league == normalize.SportUnknown || info.marketType == TypeUnknown {
			continue
		}
		if singleGame(info.marketType) {
			polyGame = append(polyGame, candidate{mkt, info})
		} else {
			polyFutures = append(polyFutures, candidate{mkt, info})
		}
	}
	for _, mkt := range kalshi {
		info := m.extractInfo(mkt)
		if info.league == normalize.SportUnknown || info.marketType == TypeUnknown {
			continue
		}
		if info.marketType == TypeParlay || info.marketType == TypePlayerProp {
			continue
		}
		if singleGame(info.marketType) {
			kalshiGame = append(kalshiGame, candidate{mkt, info})
		} else {
			kalshiFutures = append(kalshiFutures, candidate{mkt, info})
		}
	}

	m.logger.Info("sports matching pools",
		slog.Int("poly_single_game", len(polyGame)),
		slog.Int("poly_futures", len(polyFutures)),
		slog.Int("kalshi_single_game", len(kalshiGame)),
		slog.Int("kalshi_futures", len(kalshiFutures)),
	)

	matchPass := func(lefts, rights []candidate) []domain.MatchedPair {
		var pairs []domain.MatchedPair
		used := make(map[string]struct{})
		for _, left := range lefts {
			var best *candidate
			bestScore := 0.0
			bestMethod := ""
			for i := range rights {
				right := &rights[i]
				if _, taken := used[right.market.ID]; taken {
					continue
				}
				score, method := m.score(left.info, right.info)
				if score >= m.threshold && score > bestScore {
					bestScore = score
					bestMethod = method
					best = right
				}
			}
			if best == nil {
				continue
			}
			used[best.market.ID] = struct{}{}
			pairs = append(pairs, domain.MatchedPair{
				Polymarket: left.market,
				Kalshi:     best.market,
				Score:      bestScore,
				Method:     bestMethod,
				League:     string(left.info.league),
				MarketType: string(left.info.marketType),
				AwayTeam:   left.info.awayTeam,
				HomeTeam:   left.info.homeTeam,
				Team:       left.info.team,
			})
		}
		return pairs
	}

	pairs := matchPass(polyGame, kalshiGame)
	pairs = append(pairs, matchPass(polyFutures, kalshiFutures)...)

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Score > pairs[j].Score })

	m.logger.Info("sports matching complete", slog.Int("matches", len(pairs)))
	return pairs
}
