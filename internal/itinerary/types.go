package itinerary

import "strings"

// RegionKey identifies one of the fixed planning regions.
type RegionKey string

const (
	RegionCDMX      RegionKey = "cdmx"
	RegionEdomex    RegionKey = "edomex"
	RegionHidalgo   RegionKey = "hidalgo"
	RegionMorelos   RegionKey = "morelos"
	RegionQueretaro RegionKey = "queretaro"
)

// RegionKeys lists every valid region key in registry order.
var RegionKeys = []RegionKey{RegionCDMX, RegionEdomex, RegionHidalgo, RegionMorelos, RegionQueretaro}

// ParseRegionKey validates s against the closed set of regions.
func ParseRegionKey(s string) (RegionKey, bool) {
	k := RegionKey(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range RegionKeys {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Category is the single classification a place carries.
type Category string

const (
	CategoryMuseum      Category = "museo"
	CategoryPark        Category = "parque"
	CategoryViewpoint   Category = "mirador"
	CategoryGastronomy  Category = "gastronomía"
	CategoryHistoric    Category = "histórico"
	CategoryArt         Category = "arte"
	CategoryAvenue      Category = "avenida"
	CategoryMagicTown   Category = "pueblo mágico"
	CategoryVineyard    Category = "viñedo"
	CategoryReligious   Category = "religioso"
	CategoryMarket      Category = "mercado"
	CategoryArchaeology Category = "zona arqueológica"
	CategoryPhotoSpot   Category = "fotopoint"
	CategoryCafe        Category = "cafetería"
	CategoryBar         Category = "bar"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryMuseum, CategoryPark, CategoryViewpoint, CategoryGastronomy, CategoryHistoric,
	CategoryArt, CategoryAvenue, CategoryMagicTown, CategoryVineyard, CategoryReligious,
	CategoryMarket, CategoryArchaeology, CategoryPhotoSpot, CategoryCafe, CategoryBar,
}

// ParseCategory validates s against the closed set of categories.
// "all" is not a category: callers map it to an absent filter.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// CategoryFilter converts a raw filter value into an optional category.
// Empty, "all" and unrecognized values all mean no filtering.
func CategoryFilter(s string) Opt[Category] {
	if c, ok := ParseCategory(s); ok {
		return Some(c)
	}
	return None[Category]()
}

// PriceTier is the rough cost bracket of a place.
type PriceTier string

const (
	PriceFree   PriceTier = "free"
	PriceLow    PriceTier = "low"
	PriceMedium PriceTier = "medium"
	PriceHigh   PriceTier = "high"
)

// ParsePriceTier validates s against the known price tiers.
func ParsePriceTier(s string) (PriceTier, bool) {
	switch p := PriceTier(strings.ToLower(strings.TrimSpace(s))); p {
	case PriceFree, PriceLow, PriceMedium, PriceHigh:
		return p, true
	}
	return "", false
}

// Coordinates is a WGS-84 point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Region is a planning region with its display label and fallback center.
type Region struct {
	Key    RegionKey   `json:"key"`
	Label  string      `json:"label"`
	Center Coordinates `json:"center"`
}

// Place is an immutable catalog entry.
type Place struct {
	ID          string         `json:"id"`
	Region      RegionKey      `json:"region"`
	Name        string         `json:"name"`
	Category    Category       `json:"category"`
	Coords      Coordinates    `json:"coords"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Description Opt[string]    `json:"description"`
	Tags        []string       `json:"tags,omitempty"`
	PriceTier   Opt[PriceTier] `json:"price_tier"`
}

// searchText is the lower-cased text the ranker matches filters against.
func (p Place) searchText() string {
	parts := make([]string, 0, 3+len(p.Tags))
	parts = append(parts, p.Name, string(p.Category), p.Description.OrElse(""))
	parts = append(parts, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Leg is the travel segment between two consecutive places of a day.
type Leg struct {
	From        Place   `json:"from"`
	To          Place   `json:"to"`
	Km          float64 `json:"km"`
	Minutes     int     `json:"minutes"`
	CrossRegion bool    `json:"cross_region"`
}

// Route is the derived plan for one day.
type Route struct {
	Coords       []Coordinates `json:"coords"`
	Legs         []Leg         `json:"legs"`
	TotalKm      float64       `json:"total_km"`
	TotalMinutes int           `json:"total_minutes"`
}

// LongLeg summarizes a leg that exceeded a travel threshold.
type LongLeg struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Km      float64 `json:"km"`
	Minutes int     `json:"minutes"`
}

// Totals are a day's accumulated distance and travel time.
type Totals struct {
	TotalKm      float64 `json:"total_km"`
	TotalMinutes int     `json:"total_minutes"`
}

// Alerts is the logistics verdict for a day.
type Alerts struct {
	LongLegs []LongLeg `json:"long_legs"`
	Totals   Totals    `json:"totals"`
	HasIssue bool      `json:"has_issue"`
}

// Candidate is a place being proposed for the current day.
type Candidate struct {
	Place       Place   `json:"place"`
	Score       float64 `json:"score"`
	Km          float64 `json:"km"`
	Minutes     int     `json:"minutes"`
	CrossRegion bool    `json:"cross_region"`
	Warning     bool    `json:"warning"`
}
