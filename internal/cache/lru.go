package cache

import (
	"context"
	"log/slog"

	"github.com/DairouWang/TroutTracker/internal/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUFront wraps a ResultCache with an in-process LRU cache, so repeat
// lookups within a single process don't round-trip to the backend at all.
// A miss here falls through to inner; a hit there is written back up.
type LRUFront struct {
	inner  ResultCache
	local  *lru.Cache[string, domain.MatchResult]
	logger *slog.Logger
}

// NewLRUFront wraps inner with an LRU of the given size. If inner is nil,
// the front cache behaves like a standalone LRU with no backing store.
func NewLRUFront(inner ResultCache, size int, logger *slog.Logger) *LRUFront {
	if inner == nil {
		inner = NullCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	local, err := lru.New[string, domain.MatchResult](size)
	if err != nil {
		// size <= 0; fall back to a minimal cache rather than a nil pointer.
		local, _ = lru.New[string, domain.MatchResult](1)
	}
	return &LRUFront{inner: inner, local: local, logger: logger}
}

func (c *LRUFront) Get(ctx context.Context, key string) (domain.MatchResult, bool) {
	if result, ok := c.local.Get(key); ok {
		return result, true
	}

	result, ok := c.inner.Get(ctx, key)
	if !ok {
		return domain.MatchResult{}, false
	}
	c.local.Add(key, result)
	return result, true
}

func (c *LRUFront) Put(ctx context.Context, key string, result domain.MatchResult) {
	c.local.Add(key, result)
	c.inner.Put(ctx, key, result)
}
