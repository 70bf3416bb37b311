package arbitrage

import (
	"log/slog"
	"strings"

	"github.com/tgoodwin/marketarb/internal/domain"
	"github.com/tgoodwin/marketarb/internal/normalize"
)

// Aligner resolves outcome polarity on matched single-game pairs so both
// venues' prices refer to the same team winning. Polymarket's YES always
// denotes the away team; Kalshi's YES denotes whichever team the ticker's
// trailing suffix names.
type Aligner struct {
	normalizer *normalize.Normalizer
	logger     *slog.Logger
}

// NewAligner creates an Aligner.
func NewAligner(n *normalize.Normalizer, logger *slog.Logger) *Aligner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aligner{
		normalizer: n,
		logger:     logger.With(slog.String("component", "aligner")),
	}
}

// Align maps each pair's Kalshi prices onto "away team wins" and discards
// pairs whose polarity cannot be established. Futures pairs pass through
// unchanged: both sides already quote the same team by construction of the
// match.
func (a *Aligner) Align(pairs []domain.MatchedPair) []domain.MatchedPair {
	aligned := make([]domain.MatchedPair, 0, len(pairs))
	for _, pair := range pairs {
		if pair.AwayTeam == "" || pair.HomeTeam == "" {
			// Futures pair, nothing to flip.
			aligned = append(aligned, pair)
			continue
		}

		yesTeam := a.kalshiYesTeam(pair)
		switch yesTeam {
		case pair.AwayTeam:
			aligned = append(aligned, pair)
		case pair.HomeTeam:
			flipped := pair
			flipped.Kalshi.YesPrice, flipped.Kalshi.NoPrice = pair.Kalshi.NoPrice, pair.Kalshi.YesPrice
			aligned = append(aligned, flipped)
		default:
			a.logger.Debug("discarding unalignable pair",
				slog.String("kalshi_ticker", pair.Kalshi.Ticker),
				slog.String("away", pair.AwayTeam),
				slog.String("home", pair.HomeTeam),
			)
		}
	}
	return aligned
}

// kalshiYesTeam resolves the team named by the ticker's trailing suffix
// within the pair's league.
func (a *Aligner) kalshiYesTeam(pair domain.MatchedPair) string {
	parts := strings.Split(strings.ToUpper(pair.Kalshi.Ticker), "-")
	if len(parts) < 3 {
		return ""
	}
	suffix := parts[len(parts)-1]
	sport := normalize.Sport(pair.League)

	if team, ok := a.normalizer.Abbrev(suffix, sport); ok {
		return team
	}
	if team, ok := a.normalizer.Team(suffix, sport); ok {
		return team
	}
	return ""
}
