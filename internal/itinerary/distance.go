package itinerary

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0

	// UrbanSpeedKmh is the average speed assumed for legs inside one region.
	UrbanSpeedKmh = 28.0

	// InterRegionSpeedKmh is the average speed assumed for legs that cross regions.
	InterRegionSpeedKmh = 65.0
)

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b Coordinates) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// EstimateTravelMinutes converts a distance into whole minutes of travel
// using the urban or the inter-region speed tier.
func EstimateTravelMinutes(distanceKm float64, crossRegion bool) int {
	speed := UrbanSpeedKmh
	if crossRegion {
		speed = InterRegionSpeedKmh
	}
	return int(math.Round(distanceKm / speed * 60))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
