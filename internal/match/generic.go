// Package match pairs markets across venues that describe the same
// real-world proposition. The generic matcher works off text similarity and
// topic/entity gates; the sports matcher exploits team, league, and date
// structure for higher precision.
package match

import (
	"log/slog"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// minGenericThreshold is a hard floor: a configured threshold below it is
// clamped up, never honoured.
const minGenericThreshold = 0.60

// GenericConfig configures a GenericMatcher.
type GenericConfig struct {
	// Threshold is the minimum similarity for a pair to count as a match.
	// Values below 0.60 are clamped to 0.60.
	Threshold float64
	Logger    *slog.Logger
}

// GenericMatcher pairs non-sports markets (politics, crypto, macro) using
// topic gates, entity gates, and blended string similarity.
type GenericMatcher struct {
	threshold float64
	logger    *slog.Logger
}

// NewGenericMatcher creates a GenericMatcher.
func NewGenericMatcher(cfg GenericConfig) *GenericMatcher {
	threshold := cfg.Threshold
	if threshold < minGenericThreshold {
		threshold = minGenericThreshold
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &GenericMatcher{
		threshold: threshold,
		logger:    logger.With(slog.String("component", "generic_matcher")),
	}
}

// Similarity scores two market titles in [0,1] and labels how the score was
// reached. Hard gates reject first: texts classified into disjoint topic
// buckets score 0 with method "topic_mismatch"; texts naming disjoint entity
// sets score 0 with method "entity_mismatch".
func (m *GenericMatcher) Similarity(a, b string) (float64, string) {
	normA := normalizeText(a)
	normB := normalizeText(b)

	bucketsA := topicBuckets(a)
	bucketsB := topicBuckets(b)
	if len(bucketsA) > 0 && len(bucketsB) > 0 && len(intersect(bucketsA, bucketsB)) == 0 {
		return 0, "topic_mismatch"
	}

	entitiesA := extractEntities(a)
	entitiesB := extractEntities(b)
	if len(entitiesA) > 0 && len(entitiesB) > 0 && len(intersect(entitiesA, entitiesB)) == 0 {
		return 0, "entity_mismatch"
	}

	// Shared multi-word phrases are the strongest single signal.
	lowerA, lowerB := strings.ToLower(a), strings.ToLower(b)
	sharedPhrases := 0
	for _, kw := range highValueKeywords {
		if strings.Contains(lowerA, kw) && strings.Contains(lowerB, kw) {
			sharedPhrases++
		}
	}
	var phraseScore float64
	if sharedPhrases > 0 {
		phraseScore = float64(sharedPhrases) * 0.5
		if phraseScore > 1.0 {
			phraseScore = 1.0
		}
	}

	// Blend of three string metrics, weighted toward the plain ratio to
	// keep false positives down.
	ratio := float64(fuzzy.Ratio(normA, normB)) / 100
	tokenSort := float64(fuzzy.TokenSortRatio(normA, normB)) / 100
	tokenSet := float64(fuzzy.TokenSetRatio(normA, normB)) / 100
	fuzzyScore := ratio*0.5 + tokenSort*0.3 + tokenSet*0.2

	// Overlap of significant (4+ char) keywords.
	var keywordOverlap float64
	sigA := significant(extractKeywords(a))
	sigB := significant(extractKeywords(b))
	if len(sigA) > 0 && len(sigB) > 0 {
		common := len(intersect(sigA, sigB))
		longest := len(sigA)
		if len(sigB) > longest {
			longest = len(sigB)
		}
		keywordOverlap = float64(common) / float64(longest)
	}

	score := 0.50*fuzzyScore + 0.25*keywordOverlap + 0.25*phraseScore

	if len(entitiesA) > 0 && len(entitiesB) > 0 {
		shared := len(intersect(entitiesA, entitiesB))
		longest := len(entitiesA)
		if len(entitiesB) > longest {
			longest = len(entitiesB)
		}
		if float64(shared)/float64(longest) > 0.5 {
			score *= 1.2
			if score > 1.0 {
				score = 1.0
			}
		}
	}

	var method string
	switch {
	case phraseScore > 0.4:
		method = "high_value_keyword"
	case fuzzyScore > 0.7:
		method = "fuzzy_match"
	case keywordOverlap > 0.5:
		method = "keyword_overlap"
	default:
		method = "combined"
	}

	return score, method
}

func significant(keywords map[string]struct{}) map[string]struct{} {
	sig := make(map[string]struct{})
	for k := range keywords {
		if len(k) >= 4 {
			sig[k] = struct{}{}
		}
	}
	return sig
}

// Match pairs each Polymarket market with its best not-yet-used Kalshi
// counterpart above the threshold. The used-set enforces 1:1 pairing.
// Results are sorted by score descending.
func (m *GenericMatcher) Match(polymarket, kalshi []domain.Market) []domain.MatchedPair {
	var pairs []domain.MatchedPair
	used := make(map[string]struct{})

	for _, pm := range polymarket {
		var best *domain.MatchedPair
		bestScore := 0.0

		for _, km := range kalshi {
			if _, taken := used[km.ID]; taken {
				continue
			}
			score, method := m.Similarity(pm.Title, km.Title)
			if score >= m.threshold && score > bestScore {
				bestScore = score
				best = &domain.MatchedPair{
					Polymarket: pm,
					Kalshi:     km,
					Score:      score,
					Method:     method,
				}
			}
		}

		if best != nil {
			pairs = append(pairs, *best)
			used[best.Kalshi.ID] = struct{}{}
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Score > pairs[j].Score })

	m.logger.Info("generic matching complete",
		slog.Int("matches", len(pairs)),
		slog.Int("polymarket", len(polymarket)),
		slog.Int("kalshi", len(kalshi)),
	)
	return pairs
}
