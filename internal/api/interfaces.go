package api

import (
	"context"

	"github.com/neexbeast/sharepath/internal/catalog"
	"github.com/neexbeast/sharepath/internal/draft"
	"github.com/neexbeast/sharepath/internal/itinerary"
	"github.com/neexbeast/sharepath/internal/planner"
)

// ItineraryPlanner defines the itinerary operations needed by handlers.
type ItineraryPlanner interface {
	Regions() []itinerary.Region
	Places(regions []itinerary.RegionKey) []itinerary.Place
	Route(placeIDs []string) itinerary.Route
	Alerts(placeIDs []string) itinerary.Alerts
	Suggest(ctx context.Context, params itinerary.SuggestParams) []itinerary.Candidate
	Explore(params itinerary.ExploreParams) []itinerary.Candidate
	Popular(regions []itinerary.RegionKey, top int) []itinerary.Place
	Nearby(regions []itinerary.RegionKey, radiusKm float64, query itinerary.Opt[string], category itinerary.Opt[itinerary.Category]) []itinerary.Place
	Overview(ctx context.Context, req planner.OverviewRequest) (*planner.Overview, error)
	ReloadCatalog(ctx context.Context, src catalog.RecordSource) (int, error)
}

// DraftRepo defines the storage operations needed by the draft handlers.
type DraftRepo interface {
	GetDraft(ctx context.Context, id string) (*draft.Draft, error)
	UpsertDraft(ctx context.Context, d draft.Draft) (*draft.Draft, error)
}
