// Package resolver orchestrates the full lake-name resolution pipeline:
// override lookup, cache lookup, normalization, matching, and cache write.
package resolver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DairouWang/TroutTracker/internal/cache"
	"github.com/DairouWang/TroutTracker/internal/domain"
	"github.com/DairouWang/TroutTracker/internal/observability"
)

// GazetteerStore is the subset of *gazetteer.Store the facade depends on.
type GazetteerStore interface {
	Load() ([]domain.GazetteerRecord, error)
}

// OverrideTable is the subset of *override.Table the facade depends on.
type OverrideTable interface {
	Lookup(rawName string) (domain.MatchResult, bool)
}

// Resolver is the facade described by the orchestration order: override,
// then cache, then normalize and match, writing back to cache on an
// algorithmic hit.
type Resolver struct {
	gazetteer     GazetteerStore
	override      OverrideTable
	cache         cache.ResultCache
	minTokenScore int
	logger        *slog.Logger
	metrics       *observability.Metrics
}

// New creates a Resolver with the given collaborators. minTokenScore is the
// Matcher's acceptance threshold (see domain.MinTokenScoreDefault).
func New(gazetteer GazetteerStore, override OverrideTable, resultCache cache.ResultCache, minTokenScore int, logger *slog.Logger, metrics *observability.Metrics) *Resolver {
	if resultCache == nil {
		resultCache = cache.NullCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		gazetteer:     gazetteer,
		override:      override,
		cache:         resultCache,
		minTokenScore: minTokenScore,
		logger:        logger,
		metrics:       metrics,
	}
}

// Resolve maps rawName to a MatchResult following the fixed orchestration
// order: override, cache, normalize + match, cache write.
func (r *Resolver) Resolve(ctx context.Context, rawName, explicitCounty string) (domain.MatchResult, error) {
	trimmed := strings.TrimSpace(rawName)
	if trimmed == "" {
		return domain.MatchResult{}, &InvalidInputError{Reason: "raw name must be a non-empty string"}
	}

	if result, ok := r.override.Lookup(trimmed); ok {
		r.observe(domain.SourceManualOverride, "")
		return result, nil
	}

	query := domain.Normalize(trimmed, explicitCounty)
	compositeKey := trimmed
	if query.CountyHint != "" {
		compositeKey = trimmed + "|" + query.CountyHint
	}

	if result, ok := r.cache.Get(ctx, compositeKey); ok {
		r.observeCache(true)
		r.observe(domain.SourceCache, "")
		return asCacheHit(result), nil
	}
	r.observeCache(false)
	if compositeKey != trimmed {
		if result, ok := r.cache.Get(ctx, trimmed); ok {
			r.observeCache(true)
			r.observe(domain.SourceCache, "")
			return asCacheHit(result), nil
		}
		r.observeCache(false)
	}

	records, err := r.gazetteer.Load()
	if err != nil {
		return domain.MatchResult{}, err
	}

	result, ok := domain.Match(query, records, r.minTokenScore)
	if !ok {
		r.observe(domain.SourceAlgorithm, "")
		return domain.NullResult(), nil
	}

	r.cache.Put(ctx, compositeKey, result)
	r.observe(domain.SourceAlgorithm, result.Strategy)
	return result, nil
}

// asCacheHit surfaces a cached value as a cache result. A cache entry stores
// only the name, coordinates, and score, so the algorithm-only metadata a
// freshly computed result carries (strategy, feature type, county) is
// stripped here; the DynamoDB backend already drops it on the round trip,
// and the in-process LRU must present the same shape.
func asCacheHit(result domain.MatchResult) domain.MatchResult {
	result.Source = domain.SourceCache
	result.Strategy = ""
	result.FeatureType = ""
	result.CountyName = ""
	return result
}

func (r *Resolver) observe(source domain.MatchSource, strategy domain.MatchStrategy) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveResolve(string(source), string(strategy))
}

func (r *Resolver) observeCache(hit bool) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveCacheLookup(hit)
}
