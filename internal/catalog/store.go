package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/neexbeast/sharepath/internal/itinerary"
)

// ErrEmptyCatalog is returned when a load yields no valid places.
var ErrEmptyCatalog = errors.New("catalog has no valid places")

// RecordSource provides place records. *storage.Repository satisfies it.
type RecordSource interface {
	ListPlaceRecords(ctx context.Context) ([]Record, error)
}

type snapshot struct {
	catalog     *itinerary.Catalog
	version     uint64
	fingerprint string
}

// Store holds the catalog currently being served. Readers never block;
// a reload swaps in a new immutable catalog.
type Store struct {
	current atomic.Pointer[snapshot]
	regions []itinerary.Region
	logger  *slog.Logger
}

// NewStore creates an empty Store over the given region registry.
func NewStore(regions []itinerary.Region, logger *slog.Logger) *Store {
	s := &Store{regions: regions, logger: logger}
	fp, err := fingerprint(nil, regions)
	if err != nil {
		logger.Warn("fingerprinting empty catalog", "error", err)
	}
	s.current.Store(&snapshot{catalog: itinerary.NewCatalog(nil, regions), fingerprint: fp})
	return s
}

// Current returns the catalog in use and its content fingerprint. Catalogs
// with the same places and regions share a fingerprint in every process.
func (s *Store) Current() (*itinerary.Catalog, string) {
	snap := s.current.Load()
	return snap.catalog, snap.fingerprint
}

// Fingerprint returns the content fingerprint of the catalog in use.
func (s *Store) Fingerprint() string {
	return s.current.Load().fingerprint
}

// Catalog returns the catalog in use.
func (s *Store) Catalog() *itinerary.Catalog {
	return s.current.Load().catalog
}

// Version counts the loads of this Store. It is local to the process.
func (s *Store) Version() uint64 {
	return s.current.Load().version
}

// Load validates records and swaps them in as the new catalog. Invalid
// records are logged and skipped. The previous catalog stays in place when
// no record is valid.
func (s *Store) Load(records []Record) (int, error) {
	places, errs := Build(records)
	for _, err := range errs {
		s.logger.Warn("skipping catalog record", "error", err)
	}
	if len(places) == 0 {
		return 0, ErrEmptyCatalog
	}

	fp, err := fingerprint(places, s.regions)
	if err != nil {
		return 0, err
	}

	next := itinerary.NewCatalog(places, s.regions)
	for {
		prev := s.current.Load()
		if s.current.CompareAndSwap(prev, &snapshot{catalog: next, version: prev.version + 1, fingerprint: fp}) {
			s.logger.Info("catalog loaded", "places", next.Len(), "skipped", len(errs), "version", prev.version+1)
			return next.Len(), nil
		}
	}
}

// Reload fetches records from src and loads them.
func (s *Store) Reload(ctx context.Context, src RecordSource) (int, error) {
	records, err := src.ListPlaceRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing place records: %w", err)
	}

	n, err := s.Load(records)
	if err != nil {
		return 0, fmt.Errorf("loading catalog: %w", err)
	}
	return n, nil
}

// fingerprint hashes the validated places in catalog order plus the region
// registry.
func fingerprint(places []itinerary.Place, regions []itinerary.Region) (string, error) {
	b, err := json.Marshal(struct {
		Places  []itinerary.Place  `json:"places"`
		Regions []itinerary.Region `json:"regions"`
	}{places, regions})
	if err != nil {
		return "", fmt.Errorf("fingerprinting catalog: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
