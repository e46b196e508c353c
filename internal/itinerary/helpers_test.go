package itinerary_test

import (
	"math"

	"github.com/neexbeast/sharepath/internal/itinerary"
)

// kmPerDegree is the meridian length of one degree of latitude.
var kmPerDegree = itinerary.EarthRadiusKm * math.Pi / 180

var origin = itinerary.Coordinates{Lat: 19.0, Lng: -99.0}

func north(p itinerary.Coordinates, km float64) itinerary.Coordinates {
	return itinerary.Coordinates{Lat: p.Lat + km/kmPerDegree, Lng: p.Lng}
}

func east(p itinerary.Coordinates, km float64) itinerary.Coordinates {
	cos := math.Cos(p.Lat * math.Pi / 180)
	return itinerary.Coordinates{Lat: p.Lat, Lng: p.Lng + km/(kmPerDegree*cos)}
}

func testRegions() []itinerary.Region {
	return []itinerary.Region{
		{Key: itinerary.RegionCDMX, Label: "Ciudad de México", Center: origin},
		{Key: itinerary.RegionEdomex, Label: "Estado de México", Center: itinerary.Coordinates{Lat: 19.3, Lng: -99.6}},
		{Key: itinerary.RegionHidalgo, Label: "Hidalgo", Center: itinerary.Coordinates{Lat: 20.5, Lng: -98.8}},
		{Key: itinerary.RegionMorelos, Label: "Morelos", Center: itinerary.Coordinates{Lat: 18.7, Lng: -99.1}},
		{Key: itinerary.RegionQueretaro, Label: "Querétaro", Center: itinerary.Coordinates{Lat: 20.6, Lng: -100.4}},
	}
}

func place(id string, region itinerary.RegionKey, at itinerary.Coordinates) itinerary.Place {
	return itinerary.Place{
		ID:       id,
		Region:   region,
		Name:     "Place " + id,
		Category: itinerary.CategoryPark,
		Coords:   at,
		Rating:   4.5,
		Reviews:  100,
	}
}

func newCatalog(places ...itinerary.Place) *itinerary.Catalog {
	return itinerary.NewCatalog(places, testRegions())
}
