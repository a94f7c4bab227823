package domain

import "encoding/json"

// GazetteerRecord is an immutable entry in the authoritative GNIS-derived
// dataset. Records are uniquely identified by the tuple (OfficialName, Lat,
// Lng); the Gazetteer Store drops duplicates at load time, first occurrence
// wins.
type GazetteerRecord struct {
	ID               string   `json:"gnis_id"`
	OfficialName     string   `json:"official_name"`
	FeatureType      string   `json:"feature_type"` // "lake", "reservoir", or "pond"
	CountyName       string   `json:"county_name,omitempty"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	AlternativeNames []string `json:"alternative_names,omitempty"`

	// Normalized and Tokens are derived fields, hydrated once at load time
	// by running the Normalizer over OfficialName. Normalized equals
	// Normalize(OfficialName).Normalized and Tokens equals
	// Normalize(OfficialName).Tokens.
	Normalized string   `json:"-"`
	Tokens     []string `json:"-"`
}

// UnmarshalJSON accepts either "gnis_id" or "id" as the source dataset's
// identifier key, since upstream exports are inconsistent about which one
// they use.
func (r *GazetteerRecord) UnmarshalJSON(data []byte) error {
	type alias GazetteerRecord
	aux := struct {
		AltID string `json:"id"`
		*alias
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = aux.AltID
	}
	return nil
}

// NormalizedQuery is the output of the Normalizer: a lowercase
// letter-and-digit string with single-space separators, its token vector
// (duplicates removed, first occurrence preserved), and an optional county
// hint detected from (or supplied alongside) the raw designation.
type NormalizedQuery struct {
	Normalized string
	Tokens     []string
	CountyHint string // empty when absent
}

// MatchSource identifies which stage of the resolver produced a MatchResult.
type MatchSource string

const (
	SourceManualOverride MatchSource = "manual_override"
	SourceCache          MatchSource = "cache"
	SourceAlgorithm      MatchSource = "algorithm"
)

// MatchStrategy identifies which algorithmic strategy produced a MatchResult
// when Source is SourceAlgorithm. Empty for the other sources.
type MatchStrategy string

const (
	StrategyToken MatchStrategy = "token"
	StrategyFuzzy MatchStrategy = "fuzzy"
)

// ManualOverrideScore is the sentinel matched_score for a manual-override
// hit: the maximum integer exactly representable as a float64 (2^53 - 1).
// Preserved for wire compatibility with existing consumers; callers should
// prefer checking Source == SourceManualOverride over comparing scores.
const ManualOverrideScore = 1<<53 - 1

// MatchResult is the resolver's response shape. OfficialName, Lat, and Lng
// are pointers so a "no match" result can represent their absence in JSON
// as null rather than as zero values.
//
// Fields group into the resolved location (OfficialName/Lat/Lng), the
// confidence/provenance pair (MatchedScore/Source), and algorithm-only
// metadata (Strategy, FeatureType, CountyName) that's absent outside the
// algorithm path.
type MatchResult struct {
	OfficialName *string       `json:"officialName"`
	Lat          *float64      `json:"lat"`
	Lng          *float64      `json:"lng"`
	MatchedScore int64         `json:"matched_score"`
	Source       MatchSource   `json:"source"`
	Strategy     MatchStrategy `json:"strategy,omitempty"`
	FeatureType  string        `json:"feature_type,omitempty"`
	CountyName   string        `json:"county_name,omitempty"`
}

// NullResult is returned by the facade when the gazetteer is empty: no
// match, no error. matched_score of 0 and a null officialName/lat/lng is
// the sentinel "no match" shape.
func NullResult() MatchResult {
	return MatchResult{
		OfficialName: nil,
		Lat:          nil,
		Lng:          nil,
		MatchedScore: 0,
		Source:       SourceAlgorithm,
	}
}

// StringPtr and Float64Ptr are small helpers for building MatchResult
// values outside this package (internal/override, internal/cache), which
// need the same "present value vs. null" pointer convention.
func StringPtr(s string) *string    { return &s }
func Float64Ptr(f float64) *float64 { return &f }

func stringPtr(s string) *string    { return StringPtr(s) }
func float64Ptr(f float64) *float64 { return Float64Ptr(f) }
