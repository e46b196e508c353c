package itinerary

import (
	"cmp"
	"slices"
	"strings"
)

const (
	// DefaultSuggestLimit caps SuggestForDay when no limit is given.
	DefaultSuggestLimit = 12

	// DefaultExploreLimit caps ExploreCrossRegion when no limit is given.
	DefaultExploreLimit = 16

	// WarnKm and WarnMinutes mark a candidate as far from the reference point.
	WarnKm      = 90.0
	WarnMinutes = 120
)

// Ranking weights.
const (
	weightRating   = 2.0
	weightQuery    = 1.2
	weightActivity = 1.5
	weightStyle    = 1.1
	weightNear     = 0.8
	weightPenalty  = 0.02
)

// SuggestParams are the inputs of SuggestForDay.
type SuggestParams struct {
	DayPlaceIDs     []string
	Regions         []RegionKey
	RadiusKm        float64
	Query           Opt[string]
	Category        Opt[Category]
	ActivityFilters []string
	StyleTags       []string
	Limit           Opt[int]
}

// ExploreParams are the inputs of ExploreCrossRegion.
type ExploreParams struct {
	DayPlaceIDs []string
	Regions     []RegionKey
	Query       Opt[string]
	Category    Opt[Category]
	Limit       Opt[int]
}

// ReferencePoint is the last resolved place of the day, or the centroid of
// the selected regions when the day is empty.
func ReferencePoint(c *Catalog, dayPlaceIDs []string, regions []RegionKey) Coordinates {
	selected := c.Resolve(dayPlaceIDs)
	if len(selected) > 0 {
		return selected[len(selected)-1].Coords
	}
	return c.CenterFor(regions)
}

// SuggestForDay scores the places of the selected regions that are not yet
// part of the day and returns the best ones, highest score first.
//
// Only the category filter excludes places. Text matches, proximity and the
// distance beyond the radius only move a place up or down. Equal scores
// keep catalog order.
func SuggestForDay(c *Catalog, p SuggestParams) []Candidate {
	ref := ReferencePoint(c, p.DayPlaceIDs, p.Regions)
	regions := regionSet(p.Regions)
	taken := idSet(p.DayPlaceIDs)
	query := normalizedQuery(p.Query)
	activities := normalizeTerms(p.ActivityFilters)
	styles := normalizeTerms(p.StyleTags)

	scored := make([]Candidate, 0)
	for _, place := range c.Places() {
		if _, ok := regions[place.Region]; !ok {
			continue
		}
		if _, ok := taken[place.ID]; ok {
			continue
		}
		if want, ok := p.Category.Get(); ok && place.Category != want {
			continue
		}

		text := place.searchText()
		km := HaversineKm(ref, place.Coords)

		score := place.Rating*weightRating +
			flag(query != "" && strings.Contains(text, query))*weightQuery +
			flag(containsAny(text, activities))*weightActivity +
			flag(containsAny(text, styles))*weightStyle +
			flag(km < p.RadiusKm)*weightNear -
			max(0, km-p.RadiusKm)*weightPenalty

		scored = append(scored, Candidate{Place: place, Score: score, Km: km})
	}

	slices.SortStableFunc(scored, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	scored = truncate(scored, p.Limit.OrElse(DefaultSuggestLimit))
	for i := range scored {
		km := round1(scored[i].Km)
		mins := EstimateTravelMinutes(km, false)
		scored[i].Km = km
		scored[i].Minutes = mins
		scored[i].Warning = km >= WarnKm || mins >= WarnMinutes
	}

	return scored
}

// ExploreCrossRegion surfaces places outside the selected regions, ordered
// purely by review count. Every result is tagged as cross-region.
func ExploreCrossRegion(c *Catalog, p ExploreParams) []Candidate {
	ref := ReferencePoint(c, p.DayPlaceIDs, p.Regions)
	regions := regionSet(p.Regions)
	taken := idSet(p.DayPlaceIDs)
	query := normalizedQuery(p.Query)

	out := make([]Candidate, 0)
	for _, place := range c.Places() {
		if _, ok := regions[place.Region]; ok {
			continue
		}
		if _, ok := taken[place.ID]; ok {
			continue
		}
		if want, ok := p.Category.Get(); ok && place.Category != want {
			continue
		}
		if query != "" && !strings.Contains(descriptiveText(place), query) {
			continue
		}

		km := round1(HaversineKm(ref, place.Coords))
		out = append(out, Candidate{
			Place:       place,
			Km:          km,
			Minutes:     EstimateTravelMinutes(km, true),
			CrossRegion: true,
			Warning:     true,
		})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		return cmp.Compare(b.Place.Reviews, a.Place.Reviews)
	})

	return truncate(out, p.Limit.OrElse(DefaultExploreLimit))
}

// PopularByRegion returns the most reviewed places of the given regions.
// At least one place is returned when any exists.
func PopularByRegion(c *Catalog, regions []RegionKey, top int) []Place {
	out := placesIn(c, regions)
	slices.SortStableFunc(out, byReviewsDesc)
	return truncate(out, max(top, 1))
}

// PlacesInRadius is the strict search mode: places of the given regions within
// radiusKm of the regions' centroid, optionally filtered by query and
// category, most reviewed first.
func PlacesInRadius(c *Catalog, regions []RegionKey, radiusKm float64, q Opt[string], category Opt[Category]) []Place {
	center := c.CenterFor(regions)
	query := normalizedQuery(q)

	out := make([]Place, 0)
	for _, p := range placesIn(c, regions) {
		if want, ok := category.Get(); ok && p.Category != want {
			continue
		}
		if query != "" && !strings.Contains(descriptiveText(p), query) {
			continue
		}
		if HaversineKm(center, p.Coords) > radiusKm {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, byReviewsDesc)
	return out
}

func placesIn(c *Catalog, regions []RegionKey) []Place {
	set := regionSet(regions)
	out := make([]Place, 0)
	for _, p := range c.Places() {
		if _, ok := set[p.Region]; ok {
			out = append(out, p)
		}
	}
	return out
}

func byReviewsDesc(a, b Place) int {
	return cmp.Compare(b.Reviews, a.Reviews)
}

// descriptiveText is name, description and tags, without the category.
func descriptiveText(p Place) string {
	parts := append([]string{p.Name, p.Description.OrElse("")}, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

func normalizedQuery(q Opt[string]) string {
	return strings.ToLower(strings.TrimSpace(q.OrElse("")))
}

// normalizeTerms lower-cases terms and drops blanks, which would match everything.
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func truncate[T any](s []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
