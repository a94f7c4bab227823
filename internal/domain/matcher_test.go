package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hydrate(r GazetteerRecord) GazetteerRecord {
	q := Normalize(r.OfficialName, "")
	r.Normalized = q.Normalized
	r.Tokens = q.Tokens
	return r
}

func sampleGazetteer() []GazetteerRecord {
	records := []GazetteerRecord{
		{
			ID:           "1",
			OfficialName: "Battle Ground Lake",
			FeatureType:  "lake",
			CountyName:   "Clark",
			Latitude:     45.7812,
			Longitude:    -122.5326,
		},
		{
			ID:               "2",
			OfficialName:     "Sunset Lake",
			FeatureType:      "lake",
			CountyName:       "Snohomish",
			Latitude:         47.9011,
			Longitude:        -122.1987,
			AlternativeNames: []string{"Sunset Pond"},
		},
		{
			ID:           "3",
			OfficialName: "Clear Lake",
			FeatureType:  "lake",
			CountyName:   "Skagit",
			Latitude:     48.4267,
			Longitude:    -122.2445,
		},
	}
	for i := range records {
		records[i] = hydrate(records[i])
	}
	return records
}

func TestMatchEmptyGazetteer(t *testing.T) {
	query := Normalize("Battle Ground Lk", "")
	_, ok := Match(query, nil, MinTokenScoreDefault)
	assert.False(t, ok)
}

func TestMatchTokenStrategy(t *testing.T) {
	records := sampleGazetteer()

	t.Run("exact-plus-abbreviation match wins on token score", func(t *testing.T) {
		query := Normalize("Battle Ground Lk", "")
		result, ok := Match(query, records, MinTokenScoreDefault)
		require.True(t, ok)
		require.NotNil(t, result.OfficialName)
		assert.Equal(t, "Battle Ground Lake", *result.OfficialName)
		assert.Equal(t, StrategyToken, result.Strategy)
		assert.Equal(t, SourceAlgorithm, result.Source)
	})

	t.Run("explicit county narrows candidates and adds boost", func(t *testing.T) {
		query := Normalize("Sunset LK", "Snohomish")
		result, ok := Match(query, records, MinTokenScoreDefault)
		require.True(t, ok)
		require.NotNil(t, result.OfficialName)
		assert.Equal(t, "Sunset Lake", *result.OfficialName)
		assert.Equal(t, StrategyToken, result.Strategy)
		// 3*2 exact, no penalty, +2 county boost
		assert.Equal(t, int64(8), result.MatchedScore)
	})

	t.Run("embedded county code still narrows but its expanded token raises the edit penalty", func(t *testing.T) {
		// "(SNOH)" sets the county hint and the bare SNOH token expands to
		// "snohomish" in the query string, which costs 10 capped edit-distance
		// points against "sunset lake" and pushes the token score below the
		// threshold. The fuzzy floor still lands on the right record.
		query := Normalize("Sunset LK (SNOH)", "")
		require.Equal(t, "snohomish", query.CountyHint)
		result, ok := Match(query, records, MinTokenScoreDefault)
		require.True(t, ok)
		require.NotNil(t, result.OfficialName)
		assert.Equal(t, "Sunset Lake", *result.OfficialName)
		assert.Equal(t, StrategyFuzzy, result.Strategy)
		assert.Equal(t, int64(10), result.MatchedScore)
	})

	t.Run("alternative names are scored as candidates", func(t *testing.T) {
		query := Normalize("Sunset Pd", "")
		result, ok := Match(query, records, MinTokenScoreDefault)
		require.True(t, ok)
		require.NotNil(t, result.OfficialName)
		assert.Equal(t, "Sunset Lake", *result.OfficialName)
	})

	t.Run("unrecognized county hint falls back to full gazetteer", func(t *testing.T) {
		query := Normalize("Clear Lake", "Made Up County")
		result, ok := Match(query, records, MinTokenScoreDefault)
		require.True(t, ok)
		require.NotNil(t, result.OfficialName)
		assert.Equal(t, "Clear Lake", *result.OfficialName)
	})
}

func TestMatchFuzzyFallback(t *testing.T) {
	records := sampleGazetteer()

	t.Run("nonexistent lake falls through to fuzzy strategy", func(t *testing.T) {
		query := Normalize("Zzzyx", "")
		result, ok := Match(query, records, MinTokenScoreDefault)
		require.True(t, ok)
		assert.Equal(t, StrategyFuzzy, result.Strategy)
		assert.GreaterOrEqual(t, result.MatchedScore, int64(1))
	})

	t.Run("fuzzy score never drops below 1", func(t *testing.T) {
		query := Normalize("a completely and utterly unrelated string of words", "")
		result, ok := Match(query, records, MinTokenScoreDefault)
		require.True(t, ok)
		assert.Equal(t, StrategyFuzzy, result.Strategy)
		assert.Equal(t, int64(1), result.MatchedScore)
	})

	t.Run("fuzzy strategy omits feature_type and county_name", func(t *testing.T) {
		query := Normalize("Zzzyx nonexistent waterbody", "")
		result, ok := Match(query, records, MinTokenScoreDefault)
		require.True(t, ok)
		require.Equal(t, StrategyFuzzy, result.Strategy)
		assert.Empty(t, result.FeatureType)
		assert.Empty(t, result.CountyName)
	})
}

func TestTokenScore(t *testing.T) {
	t.Run("empty query tokens yield sentinel minimum", func(t *testing.T) {
		score := tokenScore(nil, "", []string{"lake"})
		assert.Equal(t, math.MinInt, score)
	})

	t.Run("equal tokens do not double count as partial", func(t *testing.T) {
		score := tokenScore([]string{"lake"}, "lake", []string{"lake"})
		assert.Equal(t, 3, score)
	})

	t.Run("substring tokens earn partial credit", func(t *testing.T) {
		// no exact overlap, one partial credit ("battle" is inside
		// "battleground"), minus an edit distance of 6
		score := tokenScore([]string{"battleground"}, "battleground", []string{"battle"})
		assert.Equal(t, 1-6, score)
	})
}

func TestTokensPartiallyMatch(t *testing.T) {
	assert.False(t, tokensPartiallyMatch("lake", "lake"))
	assert.False(t, tokensPartiallyMatch("no", "on"))
	assert.True(t, tokensPartiallyMatch("battle", "battleground"))
}
