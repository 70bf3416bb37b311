package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgoodwin/marketarb/internal/domain"
)

func newGeneric(t *testing.T) *GenericMatcher {
	t.Helper()
	return NewGenericMatcher(GenericConfig{})
}

func TestSimilarityTopicMismatch(t *testing.T) {
	m := newGeneric(t)

	score, method := m.Similarity(
		"Bitcoin price above $100k by June",
		"Will the Lakers win the NBA championship",
	)
	assert.Zero(t, score)
	assert.Equal(t, "topic_mismatch", method)
}

func TestSimilarityEntityMismatch(t *testing.T) {
	m := newGeneric(t)

	// Same topic bucket (politics_us), disjoint entities.
	score, method := m.Similarity(
		"Will Trump win the 2028 election?",
		"Will Biden win the 2028 election?",
	)
	assert.Zero(t, score)
	assert.Equal(t, "entity_mismatch", method)
}

func TestSimilarityHighValueKeyword(t *testing.T) {
	m := newGeneric(t)

	score, method := m.Similarity(
		"Will the Chiefs win the Super Bowl?",
		"Super Bowl champion: Kansas City Chiefs?",
	)
	assert.Equal(t, "high_value_keyword", method)
	assert.Greater(t, score, 0.0)
}

func TestSimilarityIdenticalTexts(t *testing.T) {
	m := newGeneric(t)

	score, _ := m.Similarity(
		"Will Bitcoin close above $100k this year?",
		"Will Bitcoin close above $100k this year?",
	)
	assert.Greater(t, score, 0.7)
}

func TestSimilarityIdempotent(t *testing.T) {
	m := newGeneric(t)

	a := "Will the Federal Reserve cut the interest rate in March?"
	b := "Fed interest rate cut by March?"
	s1, m1 := m.Similarity(a, b)
	s2, m2 := m.Similarity(a, b)
	assert.Equal(t, s1, s2)
	assert.Equal(t, m1, m2)
}

func TestThresholdFloorClamp(t *testing.T) {
	m := NewGenericMatcher(GenericConfig{Threshold: 0.01})
	assert.Equal(t, minGenericThreshold, m.threshold)

	m = NewGenericMatcher(GenericConfig{Threshold: 0.85})
	assert.Equal(t, 0.85, m.threshold)
}

func mkMarket(id string, venue domain.Venue, title string) domain.Market {
	return domain.Market{ID: id, Venue: venue, Title: title, YesPrice: 0.5, NoPrice: 0.5}
}

func TestMatchOneToOne(t *testing.T) {
	m := newGeneric(t)

	poly := []domain.Market{
		mkMarket("p1", domain.VenuePolymarket, "Will Bitcoin close above $100k this year?"),
		mkMarket("p2", domain.VenuePolymarket, "Will Bitcoin close above $100k this year?!"),
	}
	kalshi := []domain.Market{
		mkMarket("k1", domain.VenueKalshi, "Will Bitcoin close above $100k this year?"),
	}

	pairs := m.Match(poly, kalshi)
	require.Len(t, pairs, 1, "a Kalshi market must be consumed at most once")
	assert.Equal(t, "p1", pairs[0].Polymarket.ID)
	assert.Equal(t, "k1", pairs[0].Kalshi.ID)
}

func TestMatchSortedByScore(t *testing.T) {
	m := newGeneric(t)

	poly := []domain.Market{
		mkMarket("p1", domain.VenuePolymarket, "Will the Federal Reserve cut interest rates before July?"),
		mkMarket("p2", domain.VenuePolymarket, "Will Bitcoin close above $100k this year?"),
	}
	kalshi := []domain.Market{
		mkMarket("k1", domain.VenueKalshi, "Federal Reserve interest rate cut before July?"),
		mkMarket("k2", domain.VenueKalshi, "Will Bitcoin close above $100k this year?"),
	}

	pairs := m.Match(poly, kalshi)
	require.NotEmpty(t, pairs)
	for i := 1; i < len(pairs); i++ {
		assert.GreaterOrEqual(t, pairs[i-1].Score, pairs[i].Score)
	}
}

func TestMatchIdempotent(t *testing.T) {
	m := newGeneric(t)

	poly := []domain.Market{
		mkMarket("p1", domain.VenuePolymarket, "Will Bitcoin close above $100k this year?"),
		mkMarket("p2", domain.VenuePolymarket, "Will Ethereum price exceed $10k in December?"),
	}
	kalshi := []domain.Market{
		mkMarket("k1", domain.VenueKalshi, "Bitcoin above $100k at year end?"),
		mkMarket("k2", domain.VenueKalshi, "Ethereum price above $10k by December?"),
	}

	first := m.Match(poly, kalshi)
	second := m.Match(poly, kalshi)
	assert.Equal(t, first, second)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "bitcoin close above 100k year", normalizeText("Will Bitcoin close above $100k this year?"))
	assert.Equal(t, "", normalizeText(""))
	// Hyphens survive, other punctuation does not.
	assert.Equal(t, "gpt-5 released", normalizeText("GPT-5 released!"))
}
