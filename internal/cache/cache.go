// Package cache implements the result cache: a best-effort lookup layer
// sitting in front of the matcher so repeat queries for the same raw
// designation skip re-normalization and re-scoring entirely.
package cache

import (
	"context"

	"github.com/DairouWang/TroutTracker/internal/domain"
)

// ResultCache stores and retrieves pinned MatchResults keyed by a raw
// designation (optionally composed with a county hint, see internal/resolver).
// Implementations must never return an error from Get; a miss and a backend
// failure look identical to the caller, since caching is an optimization, not
// a correctness boundary. Put is similarly best-effort: a failed write is
// logged by the implementation and otherwise invisible to the caller.
type ResultCache interface {
	Get(ctx context.Context, key string) (domain.MatchResult, bool)
	Put(ctx context.Context, key string, result domain.MatchResult)
}

// NullCache is a ResultCache that never stores anything. Used when no cache
// backend is configured.
type NullCache struct{}

func (NullCache) Get(context.Context, string) (domain.MatchResult, bool) { return domain.MatchResult{}, false }
func (NullCache) Put(context.Context, string, domain.MatchResult)        {}
