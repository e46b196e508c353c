package itinerary

// BuildDayRoute resolves the day's selection against the catalog and
// computes the coordinate list, the per-leg breakdown and the day totals.
//
// Unknown ids are dropped and the gap closes, so a leg always joins two
// places that are adjacent after resolution. Fewer than two resolved
// places yield no legs and zero totals.
func BuildDayRoute(c *Catalog, placeIDs []string) Route {
	pts := c.Resolve(placeIDs)

	coords := make([]Coordinates, 0, len(pts))
	for _, p := range pts {
		coords = append(coords, p.Coords)
	}

	legs := make([]Leg, 0, max(0, len(pts)-1))
	totalKm := 0.0
	totalMin := 0

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		km := HaversineKm(a.Coords, b.Coords)
		cross := a.Region != b.Region
		mins := EstimateTravelMinutes(km, cross)

		totalKm += km
		totalMin += mins

		legs = append(legs, Leg{
			From:        a,
			To:          b,
			Km:          round1(km),
			Minutes:     mins,
			CrossRegion: cross,
		})
	}

	return Route{
		Coords:       coords,
		Legs:         legs,
		TotalKm:      round1(totalKm),
		TotalMinutes: totalMin,
	}
}
