package catalog

import "github.com/neexbeast/sharepath/internal/itinerary"

// DefaultRegions is the region registry in display order. The first entry is
// the fallback center when no region is selected.
func DefaultRegions() []itinerary.Region {
	return []itinerary.Region{
		{Key: itinerary.RegionCDMX, Label: "Ciudad de México", Center: itinerary.Coordinates{Lat: 19.432608, Lng: -99.133209}},
		{Key: itinerary.RegionEdomex, Label: "Estado de México", Center: itinerary.Coordinates{Lat: 19.325696, Lng: -99.666725}},
		{Key: itinerary.RegionHidalgo, Label: "Hidalgo", Center: itinerary.Coordinates{Lat: 20.48829, Lng: -98.86157}},
		{Key: itinerary.RegionMorelos, Label: "Morelos", Center: itinerary.Coordinates{Lat: 18.6813, Lng: -99.10135}},
		{Key: itinerary.RegionQueretaro, Label: "Querétaro", Center: itinerary.Coordinates{Lat: 20.58879, Lng: -100.38989}},
	}
}
