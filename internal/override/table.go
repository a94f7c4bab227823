// Package override implements the manual-override table: an exact-match
// escape hatch for raw designations the algorithmic matcher gets wrong.
package override

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	"github.com/DairouWang/TroutTracker/internal/domain"
)

// entry is the on-disk shape of a single override record.
type entry struct {
	OfficialName string  `json:"official_name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

// Table is a lazily-loaded exact-match map from a raw designation, verbatim,
// to a pinned MatchResult. A Table is loaded exactly once; a missing file is
// treated as an empty table rather than an error, since overrides are
// optional.
type Table struct {
	path   string
	logger *slog.Logger

	once    sync.Once
	entries map[string]entry
	loadErr error
}

// New returns a Table backed by the JSON file at path.
func New(path string, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	return &Table{path: path, logger: logger}
}

// Lookup returns the pinned result for rawName and true if an override
// exists, or the zero MatchResult and false otherwise. rawName must match
// the override key exactly; overrides are not normalized.
func (t *Table) Lookup(rawName string) (domain.MatchResult, bool) {
	t.once.Do(t.load)
	if t.loadErr != nil {
		t.logger.Warn("manual override table unavailable, treating as empty", "error", t.loadErr)
		return domain.MatchResult{}, false
	}

	e, ok := t.entries[rawName]
	if !ok {
		return domain.MatchResult{}, false
	}

	return domain.MatchResult{
		OfficialName: domain.StringPtr(e.OfficialName),
		Lat:          domain.Float64Ptr(e.Lat),
		Lng:          domain.Float64Ptr(e.Lng),
		MatchedScore: domain.ManualOverrideScore,
		Source:       domain.SourceManualOverride,
	}, true
}

func (t *Table) load() {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			t.entries = map[string]entry{}
			return
		}
		t.loadErr = err
		return
	}

	var entries map[string]entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.loadErr = err
		return
	}
	t.entries = entries
}
