package itinerary_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/sharepath/internal/itinerary"
)

func ids(cands []itinerary.Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Place.ID)
	}
	return out
}

func placeIDs(places []itinerary.Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.ID)
	}
	return out
}

func cdmxDay() itinerary.SuggestParams {
	return itinerary.SuggestParams{
		DayPlaceIDs: []string{"x"},
		Regions:     []itinerary.RegionKey{itinerary.RegionCDMX},
		RadiusKm:    40,
	}
}

func TestSuggestForDay_RadiusBonusAndPenalty(t *testing.T) {
	// The farther candidate comes first in catalog order.
	cat := newCatalog(
		place("x", itinerary.RegionCDMX, origin),
		place("far", itinerary.RegionCDMX, north(origin, 41)),
		place("near", itinerary.RegionCDMX, north(origin, 39)),
	)

	got := itinerary.SuggestForDay(cat, cdmxDay())

	require.Equal(t, []string{"near", "far"}, ids(got))
	assert.InDelta(t, 9.8, got[0].Score, 1e-6)
	assert.InDelta(t, 8.98, got[1].Score, 1e-6)
	assert.Equal(t, 39.0, got[0].Km)
	assert.Equal(t, 41.0, got[1].Km)
}

func TestSuggestForDay_UnmatchedQueryDoesNotChangeOrder(t *testing.T) {
	cat := newCatalog(
		place("x", itinerary.RegionCDMX, origin),
		place("a", itinerary.RegionCDMX, north(origin, 50)),
		place("b", itinerary.RegionCDMX, north(origin, 3)),
		place("c", itinerary.RegionCDMX, east(origin, 20)),
	)

	plain := itinerary.SuggestForDay(cat, cdmxDay())

	p := cdmxDay()
	p.Query = itinerary.Some("zzz")
	withQuery := itinerary.SuggestForDay(cat, p)

	assert.Equal(t, ids(plain), ids(withQuery))
	assert.Len(t, withQuery, 3, "a query never filters candidates out")
}

func TestSuggestForDay_TextSignals(t *testing.T) {
	base := func(id string) itinerary.Place {
		return place(id, itinerary.RegionCDMX, north(origin, 5))
	}
	plain := base("plain")
	tagged := base("tagged")
	tagged.Tags = []string{"Tacos", "noche"}
	described := base("described")
	described.Description = itinerary.Some("Mirador con vista al valle")

	cat := newCatalog(place("x", itinerary.RegionCDMX, origin), plain, tagged, described)

	tests := []struct {
		name   string
		mutate func(*itinerary.SuggestParams)
		top    string
		bonus  float64
	}{
		{"query on tag", func(p *itinerary.SuggestParams) { p.Query = itinerary.Some("TACOS") }, "tagged", 1.2},
		{"activity on description", func(p *itinerary.SuggestParams) { p.ActivityFilters = []string{"mirador"} }, "described", 1.5},
		{"style on tag", func(p *itinerary.SuggestParams) { p.StyleTags = []string{"vino", "noche"} }, "tagged", 1.1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := cdmxDay()
			tc.mutate(&p)

			got := itinerary.SuggestForDay(cat, p)

			require.Len(t, got, 3)
			assert.Equal(t, tc.top, got[0].Place.ID)
			assert.InDelta(t, got[1].Score+tc.bonus, got[0].Score, 1e-9)
		})
	}
}

func TestSuggestForDay_BlankFiltersMatchNothing(t *testing.T) {
	cat := newCatalog(
		place("x", itinerary.RegionCDMX, origin),
		place("a", itinerary.RegionCDMX, north(origin, 5)),
	)
	p := cdmxDay()
	p.ActivityFilters = []string{"", "  "}
	p.StyleTags = []string{""}
	p.Query = itinerary.Some(" ")

	got := itinerary.SuggestForDay(cat, p)

	require.Len(t, got, 1)
	assert.InDelta(t, 4.5*2+0.8, got[0].Score, 1e-9)
}

func TestSuggestForDay_CategoryIsAHardFilter(t *testing.T) {
	museum := place("museum", itinerary.RegionCDMX, north(origin, 2))
	museum.Category = itinerary.CategoryMuseum
	cat := newCatalog(
		place("x", itinerary.RegionCDMX, origin),
		place("park", itinerary.RegionCDMX, north(origin, 1)),
		museum,
	)

	p := cdmxDay()
	p.Category = itinerary.CategoryFilter("museo")
	assert.Equal(t, []string{"museum"}, ids(itinerary.SuggestForDay(cat, p)))

	p.Category = itinerary.CategoryFilter("all")
	assert.Len(t, itinerary.SuggestForDay(cat, p), 2)
}

func TestSuggestForDay_Exclusion(t *testing.T) {
	cat := newCatalog(
		place("x", itinerary.RegionCDMX, origin),
		place("y", itinerary.RegionCDMX, north(origin, 1)),
		place("z", itinerary.RegionCDMX, north(origin, 2)),
		place("out", itinerary.RegionMorelos, north(origin, -1)),
	)
	p := cdmxDay()
	p.DayPlaceIDs = []string{"x", "y"}

	got := itinerary.SuggestForDay(cat, p)

	assert.Equal(t, []string{"z"}, ids(got))
	for _, c := range got {
		assert.Equal(t, itinerary.RegionCDMX, c.Place.Region)
		assert.False(t, c.CrossRegion)
	}
}

func TestSuggestForDay_TiesKeepCatalogOrder(t *testing.T) {
	at := north(origin, 7)
	cat := newCatalog(
		place("x", itinerary.RegionCDMX, origin),
		place("first", itinerary.RegionCDMX, at),
		place("second", itinerary.RegionCDMX, at),
		place("third", itinerary.RegionCDMX, at),
	)

	assert.Equal(t, []string{"first", "second", "third"}, ids(itinerary.SuggestForDay(cat, cdmxDay())))
}

func TestSuggestForDay_ReferenceIsLastResolvedPlace(t *testing.T) {
	cat := newCatalog(
		place("x", itinerary.RegionCDMX, origin),
		place("y", itinerary.RegionCDMX, north(origin, 30)),
		place("near-y", itinerary.RegionCDMX, north(origin, 31)),
	)
	p := cdmxDay()
	p.DayPlaceIDs = []string{"x", "y", "ghost"}

	got := itinerary.SuggestForDay(cat, p)

	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Km)
}

func TestSuggestForDay_EmptyDayUsesRegionCentroid(t *testing.T) {
	cat := newCatalog(place("a", itinerary.RegionCDMX, north(origin, 12)))
	p := cdmxDay()
	p.DayPlaceIDs = nil

	got := itinerary.SuggestForDay(cat, p)

	require.Len(t, got, 1)
	assert.Equal(t, 12.0, got[0].Km)
}

func TestSuggestForDay_Limit(t *testing.T) {
	places := []itinerary.Place{place("x", itinerary.RegionCDMX, origin)}
	for i := range 15 {
		places = append(places, place(fmt.Sprintf("p%02d", i), itinerary.RegionCDMX, north(origin, float64(i+1))))
	}
	cat := newCatalog(places...)

	tests := []struct {
		name  string
		limit itinerary.Opt[int]
		want  int
	}{
		{"default", itinerary.None[int](), itinerary.DefaultSuggestLimit},
		{"explicit", itinerary.Some(3), 3},
		{"larger than pool", itinerary.Some(100), 15},
		{"zero", itinerary.Some(0), 0},
		{"negative", itinerary.Some(-4), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := cdmxDay()
			p.Limit = tc.limit
			got := itinerary.SuggestForDay(cat, p)
			assert.Len(t, got, tc.want)
			assert.NotNil(t, got)
		})
	}
}

func TestSuggestForDay_Warning(t *testing.T) {
	cat := newCatalog(
		place("x", itinerary.RegionCDMX, origin),
		place("close", itinerary.RegionCDMX, north(origin, 20)),
		place("slow", itinerary.RegionCDMX, north(origin, 60)),
	)

	got := itinerary.SuggestForDay(cat, cdmxDay())

	require.Equal(t, []string{"close", "slow"}, ids(got))
	assert.False(t, got[0].Warning)
	assert.Equal(t, 43, got[0].Minutes)
	assert.True(t, got[1].Warning, "60km urban is over two hours")
	assert.Equal(t, 129, got[1].Minutes)
}

func TestSuggestForDay_NoCandidates(t *testing.T) {
	got := itinerary.SuggestForDay(newCatalog(), cdmxDay())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExploreCrossRegion_SortsByReviews(t *testing.T) {
	low := place("low", itinerary.RegionMorelos, north(origin, -60))
	low.Reviews = 10
	high := place("high", itinerary.RegionHidalgo, north(origin, 90))
	high.Reviews = 900
	mid := place("mid", itinerary.RegionQueretaro, north(origin, 150))
	mid.Reviews = 300
	inside := place("inside", itinerary.RegionCDMX, north(origin, 1))
	inside.Reviews = 5000

	cat := newCatalog(place("x", itinerary.RegionCDMX, origin), low, high, mid, inside)

	got := itinerary.ExploreCrossRegion(cat, itinerary.ExploreParams{
		DayPlaceIDs: []string{"x"},
		Regions:     []itinerary.RegionKey{itinerary.RegionCDMX},
	})

	require.Equal(t, []string{"high", "mid", "low"}, ids(got))
	for _, c := range got {
		assert.True(t, c.CrossRegion)
		assert.True(t, c.Warning)
		assert.Zero(t, c.Score)
	}
	assert.Equal(t, 90.0, got[0].Km)
	assert.Equal(t, 83, got[0].Minutes)
}

func TestExploreCrossRegion_Filters(t *testing.T) {
	museum := place("museum", itinerary.RegionMorelos, north(origin, -30))
	museum.Category = itinerary.CategoryMuseum
	tagged := place("tagged", itinerary.RegionMorelos, north(origin, -35))
	tagged.Tags = []string{"cascadas"}
	picked := place("picked", itinerary.RegionMorelos, north(origin, -40))

	cat := newCatalog(place("x", itinerary.RegionCDMX, origin), museum, tagged, picked)
	base := itinerary.ExploreParams{
		DayPlaceIDs: []string{"x", "picked"},
		Regions:     []itinerary.RegionKey{itinerary.RegionCDMX},
	}

	assert.Equal(t, []string{"museum", "tagged"}, ids(itinerary.ExploreCrossRegion(cat, base)))

	byCategory := base
	byCategory.Category = itinerary.Some(itinerary.CategoryMuseum)
	assert.Equal(t, []string{"museum"}, ids(itinerary.ExploreCrossRegion(cat, byCategory)))

	byQuery := base
	byQuery.Query = itinerary.Some("Cascadas")
	assert.Equal(t, []string{"tagged"}, ids(itinerary.ExploreCrossRegion(cat, byQuery)))

	// The exploration query ignores the category text.
	byCategoryText := base
	byCategoryText.Query = itinerary.Some("museo")
	assert.Empty(t, itinerary.ExploreCrossRegion(cat, byCategoryText))
}

func TestExploreCrossRegion_DefaultLimit(t *testing.T) {
	places := []itinerary.Place{place("x", itinerary.RegionCDMX, origin)}
	for i := range 20 {
		places = append(places, place(fmt.Sprintf("m%02d", i), itinerary.RegionMorelos, north(origin, -float64(i+1))))
	}

	got := itinerary.ExploreCrossRegion(newCatalog(places...), itinerary.ExploreParams{
		Regions: []itinerary.RegionKey{itinerary.RegionCDMX},
	})

	assert.Len(t, got, itinerary.DefaultExploreLimit)
}

func TestPopularByRegion(t *testing.T) {
	a := place("a", itinerary.RegionCDMX, origin)
	a.Reviews = 10
	b := place("b", itinerary.RegionCDMX, origin)
	b.Reviews = 30
	c := place("c", itinerary.RegionMorelos, origin)
	c.Reviews = 20
	d := place("d", itinerary.RegionHidalgo, origin)
	d.Reviews = 99
	cat := newCatalog(a, b, c, d)
	regions := []itinerary.RegionKey{itinerary.RegionCDMX, itinerary.RegionMorelos}

	assert.Equal(t, []string{"b", "c"}, placeIDs(itinerary.PopularByRegion(cat, regions, 2)))
	assert.Equal(t, []string{"b"}, placeIDs(itinerary.PopularByRegion(cat, regions, 0)))
	assert.Equal(t, []string{"b", "c", "a"}, placeIDs(itinerary.PopularByRegion(cat, regions, 10)))
}

func TestPlacesInRadius(t *testing.T) {
	inner := place("inner", itinerary.RegionCDMX, north(origin, 5))
	inner.Reviews = 10
	edge := place("edge", itinerary.RegionCDMX, east(origin, 14))
	edge.Reviews = 50
	outer := place("outer", itinerary.RegionCDMX, north(origin, 25))
	other := place("other", itinerary.RegionMorelos, north(origin, 1))
	cafe := place("cafe", itinerary.RegionCDMX, north(origin, 2))
	cafe.Category = itinerary.CategoryCafe
	cafe.Description = itinerary.Some("Café de especialidad")
	cafe.Reviews = 5

	cat := newCatalog(inner, edge, outer, other, cafe)
	regions := []itinerary.RegionKey{itinerary.RegionCDMX}

	got := itinerary.PlacesInRadius(cat, regions, 15, itinerary.None[string](), itinerary.None[itinerary.Category]())
	assert.Equal(t, []string{"edge", "inner", "cafe"}, placeIDs(got))

	got = itinerary.PlacesInRadius(cat, regions, 15, itinerary.Some("ESPECIALIDAD"), itinerary.None[itinerary.Category]())
	assert.Equal(t, []string{"cafe"}, placeIDs(got))

	got = itinerary.PlacesInRadius(cat, regions, 15, itinerary.None[string](), itinerary.Some(itinerary.CategoryPark))
	assert.Equal(t, []string{"edge", "inner"}, placeIDs(got))
}

func TestCatalog_CenterFor(t *testing.T) {
	cat := newCatalog()

	assert.Equal(t, origin, cat.CenterFor(nil), "falls back to the first region")
	assert.Equal(t, origin, cat.CenterFor([]itinerary.RegionKey{"atlantis"}))

	got := cat.CenterFor([]itinerary.RegionKey{itinerary.RegionMorelos, itinerary.RegionCDMX})
	assert.InDelta(t, (19.0+18.7)/2, got.Lat, 1e-9)
	assert.InDelta(t, (-99.0-99.1)/2, got.Lng, 1e-9)

	var empty *itinerary.Catalog
	assert.Equal(t, itinerary.Coordinates{}, empty.CenterFor(nil))
}

func TestCatalog_DuplicateIDsKeepFirst(t *testing.T) {
	first := place("dup", itinerary.RegionCDMX, origin)
	second := place("dup", itinerary.RegionMorelos, origin)

	cat := newCatalog(first, second)

	assert.Equal(t, 1, cat.Len())
	got, ok := cat.Place("dup")
	require.True(t, ok)
	assert.Equal(t, itinerary.RegionCDMX, got.Region)
}
