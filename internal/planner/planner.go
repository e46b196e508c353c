package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neexbeast/sharepath/internal/catalog"
	"github.com/neexbeast/sharepath/internal/itinerary"
)

// CatalogStore is the interface satisfied by *catalog.Store.
type CatalogStore interface {
	Current() (*itinerary.Catalog, string)
	Reload(ctx context.Context, src catalog.RecordSource) (int, error)
}

// SuggestionCache is the interface satisfied by *cache.Cache.
type SuggestionCache interface {
	GetSuggestions(ctx context.Context, catalogFP string, params itinerary.SuggestParams) ([]itinerary.Candidate, error)
	SetSuggestions(ctx context.Context, catalogFP string, params itinerary.SuggestParams, cands []itinerary.Candidate) error
	Invalidate(ctx context.Context) (int, error)
}

// Planner runs itinerary computations against the catalog currently served
// by the store.
type Planner struct {
	store  CatalogStore
	cache  SuggestionCache
	logger *slog.Logger
}

// New constructs a Planner. cache may be nil, which disables memoization.
func New(store CatalogStore, cache SuggestionCache, logger *slog.Logger) *Planner {
	return &Planner{store: store, cache: cache, logger: logger}
}

func (p *Planner) catalog() *itinerary.Catalog {
	c, _ := p.store.Current()
	return c
}

// Regions returns the region registry.
func (p *Planner) Regions() []itinerary.Region {
	return p.catalog().Regions()
}

// Places returns every place of the given regions in catalog order.
func (p *Planner) Places(regions []itinerary.RegionKey) []itinerary.Place {
	set := make(map[itinerary.RegionKey]bool, len(regions))
	for _, r := range regions {
		set[r] = true
	}
	out := make([]itinerary.Place, 0)
	for _, place := range p.catalog().Places() {
		if set[place.Region] {
			out = append(out, place)
		}
	}
	return out
}

// Route builds the route of one day.
func (p *Planner) Route(placeIDs []string) itinerary.Route {
	return itinerary.BuildDayRoute(p.catalog(), placeIDs)
}

// Alerts evaluates the logistics of one day.
func (p *Planner) Alerts(placeIDs []string) itinerary.Alerts {
	return itinerary.LogisticsAlerts(p.catalog(), placeIDs)
}

// Suggest ranks candidates for a day. Rankings are memoized per catalog
// fingerprint; cache failures are logged and the ranking is computed directly.
func (p *Planner) Suggest(ctx context.Context, params itinerary.SuggestParams) []itinerary.Candidate {
	cat, fp := p.store.Current()
	if p.cache == nil {
		return itinerary.SuggestForDay(cat, params)
	}

	cached, err := p.cache.GetSuggestions(ctx, fp, params)
	if err != nil {
		p.logger.Warn("suggestion cache get failed", "catalog", fp, "error", err)
	} else if cached != nil {
		return cached
	}

	cands := itinerary.SuggestForDay(cat, params)
	if err := p.cache.SetSuggestions(ctx, fp, params, cands); err != nil {
		p.logger.Warn("suggestion cache set failed", "catalog", fp, "error", err)
	}
	return cands
}

// Explore lists popular places outside the selected regions.
func (p *Planner) Explore(params itinerary.ExploreParams) []itinerary.Candidate {
	return itinerary.ExploreCrossRegion(p.catalog(), params)
}

// Popular returns the most reviewed places of the given regions.
func (p *Planner) Popular(regions []itinerary.RegionKey, top int) []itinerary.Place {
	return itinerary.PopularByRegion(p.catalog(), regions, top)
}

// Nearby returns the places of the given regions within radiusKm of their
// centroid.
func (p *Planner) Nearby(regions []itinerary.RegionKey, radiusKm float64, query itinerary.Opt[string], category itinerary.Opt[itinerary.Category]) []itinerary.Place {
	return itinerary.PlacesInRadius(p.catalog(), regions, radiusKm, query, category)
}

// ReloadCatalog reloads the catalog from src and drops memoized rankings.
func (p *Planner) ReloadCatalog(ctx context.Context, src catalog.RecordSource) (int, error) {
	n, err := p.store.Reload(ctx, src)
	if err != nil {
		return 0, fmt.Errorf("reloading catalog: %w", err)
	}

	if p.cache != nil {
		removed, err := p.cache.Invalidate(ctx)
		if err != nil {
			p.logger.Warn("suggestion cache invalidation failed", "error", err)
		} else {
			p.logger.Info("suggestion cache invalidated", "removed", removed)
		}
	}

	return n, nil
}
