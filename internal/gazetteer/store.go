// Package gazetteer loads the authoritative GNIS-derived lake, reservoir,
// and pond dataset and serves it to the matcher.
package gazetteer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/DairouWang/TroutTracker/internal/domain"
)

// Store holds the hydrated gazetteer records in memory. A successful load is
// cached permanently; a failed load is not, so a later call retries reading
// the dataset from disk instead of repeating a stale error forever.
type Store struct {
	primaryPath   string
	secondaryPath string
	logger        *slog.Logger

	mu      sync.Mutex
	loaded  bool
	records []domain.GazetteerRecord
	loadErr error
}

// New returns a Store that reads its primary dataset from primaryPath. If
// secondaryPath is non-empty, its records are merged in on Load, provided
// the file exists; a missing secondary dataset is logged and ignored, since
// it's an optional supplementary source.
func New(primaryPath, secondaryPath string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{primaryPath: primaryPath, secondaryPath: secondaryPath, logger: logger}
}

// Load reads and hydrates the dataset. A successful result is cached and
// returned on every later call without touching disk again. A failed load is
// not cached: the next call retries from scratch, since the underlying
// dataset may since have been fixed or mounted. Safe for concurrent use.
func (s *Store) Load() ([]domain.GazetteerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.records, nil
	}

	records, err := s.load()
	if err != nil {
		s.loadErr = err
		return nil, err
	}

	s.records = records
	s.loaded = true
	s.loadErr = nil
	return s.records, nil
}

// allowedFeatureTypes restricts the gazetteer to the three feature kinds
// the resolver cares about; anything else (stream, spring, swamp, ...) is
// dropped at ingest.
var allowedFeatureTypes = map[string]struct{}{
	"lake":      {},
	"reservoir": {},
	"pond":      {},
}

func (s *Store) load() ([]domain.GazetteerRecord, error) {
	primary, err := readDataset(s.primaryPath)
	if err != nil {
		return nil, err
	}
	hydrated := hydrate(filterFeatureTypes(primary))

	if s.secondaryPath != "" {
		if _, err := os.Stat(s.secondaryPath); err != nil {
			s.logger.Warn("hydrography dataset not found, ignoring", "path", s.secondaryPath)
		} else {
			secondary, err := readDataset(s.secondaryPath)
			if err != nil {
				return nil, err
			}
			hydrated = append(hydrated, hydrate(filterFeatureTypes(secondary))...)
		}
	}

	deduped := dedupe(hydrated)
	s.logger.Info("gazetteer loaded", "records", len(deduped))
	return deduped, nil
}

// filterFeatureTypes drops records whose feature type isn't lake,
// reservoir, or pond, preserving order.
func filterFeatureTypes(records []domain.GazetteerRecord) []domain.GazetteerRecord {
	out := make([]domain.GazetteerRecord, 0, len(records))
	for _, r := range records {
		if _, ok := allowedFeatureTypes[r.FeatureType]; ok {
			out = append(out, r)
		}
	}
	return out
}

// CheckReadiness reports whether the store has completed a successful load.
// It never triggers a load itself, so it's safe to call from an HTTP
// readiness probe without blocking on first-request latency.
func (s *Store) CheckReadiness(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded && s.loadErr == nil {
		return fmt.Errorf("gazetteer not yet loaded")
	}
	return s.loadErr
}

func readDataset(path string) ([]domain.GazetteerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &DatasetMissingError{Path: path}
		}
		return nil, &DatasetCorruptError{Path: path, Err: err}
	}

	var records []domain.GazetteerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &DatasetCorruptError{Path: path, Err: err}
	}
	return records, nil
}

// hydrate runs the Normalizer over each record's official name, filling in
// the derived Normalized and Tokens fields used by the matcher.
func hydrate(records []domain.GazetteerRecord) []domain.GazetteerRecord {
	for i := range records {
		q := domain.Normalize(records[i].OfficialName, "")
		records[i].Normalized = q.Normalized
		records[i].Tokens = q.Tokens
	}
	return records
}

type dedupeKey struct {
	name string
	lat  float64
	lng  float64
}

// dedupe drops records sharing (official name, lat, lng) with one already
// seen, keeping the first occurrence. Primary-dataset records are hydrated
// and appended before any secondary-dataset records, so the primary always
// wins a collision.
func dedupe(records []domain.GazetteerRecord) []domain.GazetteerRecord {
	seen := make(map[dedupeKey]struct{}, len(records))
	out := make([]domain.GazetteerRecord, 0, len(records))
	for _, r := range records {
		key := dedupeKey{name: r.OfficialName, lat: r.Latitude, lng: r.Longitude}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
