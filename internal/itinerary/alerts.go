package itinerary

const (
	// LongLegKm is the leg distance at which a leg counts as long.
	LongLegKm = 120.0

	// LongLegMinutes is the leg travel time at which a leg counts as long.
	LongLegMinutes = 120

	// MaxDayKm is the total daily distance above which a day has an issue.
	MaxDayKm = 250.0
)

// IsLong reports whether the leg reaches either travel threshold.
func (l Leg) IsLong() bool {
	return l.Km >= LongLegKm || l.Minutes >= LongLegMinutes
}

// LogisticsAlerts builds the day's route and flags long legs and days whose
// total distance is unreasonable.
func LogisticsAlerts(c *Catalog, placeIDs []string) Alerts {
	return RouteAlerts(BuildDayRoute(c, placeIDs))
}

// RouteAlerts evaluates an already built route.
func RouteAlerts(route Route) Alerts {
	long := make([]LongLeg, 0)
	for _, l := range route.Legs {
		if !l.IsLong() {
			continue
		}
		long = append(long, LongLeg{
			From:    l.From.Name,
			To:      l.To.Name,
			Km:      l.Km,
			Minutes: l.Minutes,
		})
	}

	return Alerts{
		LongLegs: long,
		Totals: Totals{
			TotalKm:      route.TotalKm,
			TotalMinutes: route.TotalMinutes,
		},
		HasIssue: len(long) > 0 || route.TotalKm > MaxDayKm,
	}
}
