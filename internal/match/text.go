package match

import (
	"regexp"
	"strings"
)

// highValueKeywords are multi-word phrases whose presence on both sides is a
// strong match signal. Single words are too ambiguous to qualify.
var highValueKeywords = []string{
	// Politics
	"donald trump", "trump administration", "joe biden", "biden administration",
	"presidential election", "2024 election", "2026 election",
	"supreme court", "federal reserve", "interest rate",
	// Sports events
	"super bowl", "world series", "stanley cup", "nba finals",
	"fifa world cup", "champions league", "wimbledon",
	// Tech
	"openai", "artificial intelligence", "chatgpt", "gpt-5",
	"tesla", "spacex", "elon musk",
	// Crypto
	"bitcoin price", "ethereum price", "btc", "eth",
	// Geopolitics
	"ukraine russia", "russia ukraine", "israel hamas", "gaza",
	"china taiwan", "north korea",
}

// topicCategories gate matching: when both texts classify into at least one
// bucket, they must share one.
var topicCategories = map[string][]string{
	"politics_us":       {"president", "election", "congress", "senate", "republican", "democrat", "trump", "biden", "white house"},
	"politics_intl":     {"prime minister", "parliament", "brexit", "eu", "nato", "united nations"},
	"sports_football":   {"nfl", "super bowl", "touchdown", "quarterback"},
	"sports_soccer":     {"fifa", "world cup", "premier league", "champions league", "soccer", "football"},
	"sports_basketball": {"nba", "basketball", "lakers", "celtics"},
	"sports_baseball":   {"mlb", "world series", "baseball"},
	"crypto":            {"bitcoin", "ethereum", "btc", "eth", "crypto", "cryptocurrency"},
	"tech":              {"ai", "openai", "gpt", "tesla", "spacex", "apple", "google", "microsoft", "meta"},
	"climate":           {"temperature", "celsius", "warming", "climate", "carbon"},
	"economy":           {"inflation", "gdp", "interest rate", "federal reserve", "recession", "unemployment"},
}

// stopWords are dropped before similarity scoring. "world" is included
// deliberately: it bridges unrelated markets ("World Cup", "world
// temperature").
var stopWords = map[string]struct{}{
	"will": {}, "the": {}, "a": {}, "an": {}, "be": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"to": {}, "of": {}, "in": {}, "for": {}, "on": {}, "at": {}, "by": {}, "with": {}, "from": {},
	"or": {}, "and": {}, "this": {}, "that": {}, "it": {}, "as": {}, "if": {}, "than": {},
	"yes": {}, "no": {}, "before": {}, "after": {}, "during": {}, "what": {}, "who": {},
	"when": {}, "where": {}, "how": {}, "which": {}, "would": {}, "could": {}, "should": {},
	"may": {}, "might": {}, "can": {}, "does": {}, "do": {}, "did": {}, "has": {}, "have": {},
	"world": {},
}

var entityLists = [][]string{
	// People
	{"trump", "biden", "obama", "harris", "desantis", "pence", "musk", "elon",
		"bezos", "zuckerberg", "cook", "altman", "putin", "zelensky",
		"xi jinping", "xi", "netanyahu", "modi", "pope", "francis",
		"vance", "pelosi", "schumer", "mcconnell"},
	// Countries
	{"united states", "usa", "us", "america", "china", "russia",
		"ukraine", "israel", "iran", "north korea", "taiwan", "india",
		"germany", "france", "uk", "britain", "japan", "italy", "brazil",
		"mexico", "canada", "gaza", "palestine"},
	// Companies
	{"tesla", "spacex", "openai", "google", "apple", "microsoft",
		"meta", "amazon", "nvidia", "twitter", "x.com", "doge"},
	// Leagues and sports events
	{"nfl", "nba", "mlb", "nhl", "fifa", "uefa", "olympics",
		"world cup", "super bowl"},
	// Recurring topics
	{"mars", "climate", "warming", "inflation", "recession",
		"deportation", "immigration", "tariff", "bitcoin", "ethereum"},
}

var punctRe = regexp.MustCompile(`[^\w\s-]`)

// normalizeText lowercases, strips punctuation except hyphens, removes stop
// words, and collapses whitespace.
func normalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = punctRe.ReplaceAllString(text, " ")

	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if _, skip := stopWords[w]; !skip {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// extractKeywords returns the normalized word set plus any high-value
// phrases present in the raw text.
func extractKeywords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalizeText(text)) {
		words[w] = struct{}{}
	}
	lower := strings.ToLower(text)
	for _, kw := range highValueKeywords {
		if strings.Contains(lower, kw) {
			words[kw] = struct{}{}
		}
	}
	return words
}

// topicBuckets classifies a text into zero or more topic categories.
func topicBuckets(text string) map[string]struct{} {
	lower := strings.ToLower(text)
	buckets := make(map[string]struct{})
	for category, keywords := range topicCategories {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				buckets[category] = struct{}{}
				break
			}
		}
	}
	return buckets
}

// extractEntities finds known named entities by substring scan. Markets
// about disjoint entity sets must never match.
func extractEntities(text string) map[string]struct{} {
	lower := strings.ToLower(text)
	entities := make(map[string]struct{})
	for _, list := range entityLists {
		for _, entity := range list {
			if strings.Contains(lower, entity) {
				entities[entity] = struct{}{}
			}
		}
	}
	return entities
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	shared := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			shared[k] = struct{}{}
		}
	}
	return shared
}
