package domain

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
)

// MinTokenScoreDefault is the default acceptance threshold for the token
// strategy: a best total score below this falls through to the fuzzy
// fallback. Overridable via MIN_TOKEN_SCORE (see internal/config).
const MinTokenScoreDefault = 3

// levenshteinCap bounds the edit-distance penalty subtracted from a token
// score, so one wildly different candidate string can't swing the score
// more than a handful of exact-token matches would.
const levenshteinCap = 10

// Match scores every candidate in records against query and returns the
// best MatchResult, or false if records is empty. minTokenScore is the
// acceptance threshold below which the matcher falls back to pure edit
// distance over the full record set.
func Match(query NormalizedQuery, records []GazetteerRecord, minTokenScore int) (MatchResult, bool) {
	if len(records) == 0 {
		return MatchResult{}, false
	}

	candidates := narrowByCounty(records, query.CountyHint)

	best, bestScore, found := bestTokenMatch(query, candidates)
	if found && bestScore >= minTokenScore {
		return best, true
	}

	return fuzzyFallback(query, records), true
}

// narrowByCounty restricts records to those whose county contains hint as a
// case-insensitive substring. Falls back to the full set when hint is empty
// or narrowing would yield nothing, so an unrecognized county degrades to a
// full scan rather than failing closed.
func narrowByCounty(records []GazetteerRecord, hint string) []GazetteerRecord {
	if hint == "" {
		return records
	}
	narrowed := make([]GazetteerRecord, 0, len(records))
	for _, r := range records {
		if r.CountyName != "" && strings.Contains(strings.ToLower(r.CountyName), hint) {
			narrowed = append(narrowed, r)
		}
	}
	if len(narrowed) == 0 {
		return records
	}
	return narrowed
}

// bestTokenMatch scores every candidate record against every token vector
// it offers (its own, plus one per alternative name) and returns the
// highest-scoring MatchResult. Ties are broken by first-seen order:
// records in traversal order, and within a record its own tokens before
// its alternatives.
func bestTokenMatch(query NormalizedQuery, candidates []GazetteerRecord) (MatchResult, int, bool) {
	var (
		best      MatchResult
		bestScore = math.MinInt
		found     bool
	)

	for i := range candidates {
		record := &candidates[i]
		countyBoost := countyBoost(query.CountyHint, record.CountyName)

		for _, tokenSet := range candidateTokenSets(record) {
			score := tokenScore(query.Tokens, query.Normalized, tokenSet)
			if score == math.MinInt {
				continue
			}
			total := score + countyBoost
			if !found || total > bestScore {
				found = true
				bestScore = total
				best = MatchResult{
					OfficialName: stringPtr(record.OfficialName),
					Lat:          float64Ptr(record.Latitude),
					Lng:          float64Ptr(record.Longitude),
					MatchedScore: int64(total),
					Source:       SourceAlgorithm,
					Strategy:     StrategyToken,
					FeatureType:  record.FeatureType,
					CountyName:   record.CountyName,
				}
			}
		}
	}

	return best, bestScore, found
}

// candidateTokenSets returns the token vectors to score a record against:
// its own hydrated tokens first, then each alternative name's tokens
// (normalized on the fly, tokens-only). Order matters for tie-breaking.
func candidateTokenSets(record *GazetteerRecord) [][]string {
	sets := make([][]string, 0, 1+len(record.AlternativeNames))
	sets = append(sets, record.Tokens)
	for _, alt := range record.AlternativeNames {
		sets = append(sets, Normalize(alt, "").Tokens)
	}
	return sets
}

// tokenScore computes 3*E + P - L for a single candidate token vector
// against the query: exact token overlap, partial (substring) overlap, and
// a capped edit-distance penalty. Returns math.MinInt if either vector is
// empty (the composite's formal "-infinity").
func tokenScore(queryTokens []string, queryNormalized string, candidateTokens []string) int {
	if len(queryTokens) == 0 || len(candidateTokens) == 0 {
		return math.MinInt
	}

	queryPresence := make(map[string]struct{}, len(queryTokens))
	for _, q := range queryTokens {
		queryPresence[q] = struct{}{}
	}

	used := make([]bool, len(candidateTokens))
	exact := 0
	for i, c := range candidateTokens {
		if _, ok := queryPresence[c]; ok {
			exact++
			used[i] = true
		}
	}

	partial := 0
	for i, c := range candidateTokens {
		if used[i] {
			continue
		}
		for _, q := range queryTokens {
			if tokensPartiallyMatch(q, c) {
				partial++
				used[i] = true
				break
			}
		}
	}

	candidateString := strings.Join(candidateTokens, " ")
	penalty := levenshteinDistance(queryNormalized, candidateString)
	if penalty > levenshteinCap {
		penalty = levenshteinCap
	}

	return 3*exact + partial - penalty
}

// tokensPartiallyMatch reports whether a and b share a substring
// relationship worth partial credit: they're unequal, both at least 3
// characters, and one contains the other. Equal tokens never partially
// match — the exact pass above already claimed that position, and
// reconsidering it here would double-count.
func tokensPartiallyMatch(a, b string) bool {
	if a == b {
		return false
	}
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	return strings.Contains(b, a) || strings.Contains(a, b)
}

// countyBoost adds +2 when hint is present and non-empty and county
// contains it as a case-insensitive substring, 0 otherwise. Applied once
// per record, not per alternative token vector.
func countyBoost(hint, county string) int {
	if hint == "" || county == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(county), hint) {
		return 2
	}
	return 0
}

// fuzzyFallback scores every record in the full gazetteer by pure edit
// distance between the query's normalized string and the record's own
// normalized form, ignoring county narrowing and alternative names. Always
// returns a result when records is non-empty — the floor of the system.
func fuzzyFallback(query NormalizedQuery, records []GazetteerRecord) MatchResult {
	var (
		best      GazetteerRecord
		bestScore = math.MinInt
	)

	for i := range records {
		r := records[i]
		distance := levenshteinDistance(query.Normalized, r.Normalized)
		score := 20 - distance
		if score < 1 {
			score = 1
		}
		if score > bestScore {
			bestScore = score
			best = r
		}
	}

	// feature_type and county_name are token-strategy-only wire fields;
	// the fuzzy path leaves them unset.
	return MatchResult{
		OfficialName: stringPtr(best.OfficialName),
		Lat:          float64Ptr(best.Latitude),
		Lng:          float64Ptr(best.Longitude),
		MatchedScore: int64(bestScore),
		Source:       SourceAlgorithm,
		Strategy:     StrategyFuzzy,
	}
}

// levenshteinDistance is the standard unit-cost edit distance over
// characters, delegated to github.com/agnivade/levenshtein's two-row
// dynamic-programming implementation.
func levenshteinDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}
