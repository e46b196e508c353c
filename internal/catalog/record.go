package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neexbeast/sharepath/internal/itinerary"
)

// ErrInvalidRecord marks a record that cannot become a catalog place.
var ErrInvalidRecord = errors.New("invalid place record")

// Record is a place as stored in the database or the seed file.
// Enumerations are raw strings until Build validates them.
type Record struct {
	ID          string   `json:"id"`
	Region      string   `json:"region"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PriceTier   *string  `json:"price_tier,omitempty"`
}

// Build converts records into places, in input order. Invalid records are
// skipped and reported, one error each, wrapping ErrInvalidRecord.
func Build(records []Record) ([]itinerary.Place, []error) {
	places := make([]itinerary.Place, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	var errs []error

	for _, r := range records {
		p, err := r.toPlace()
		if err == nil {
			if _, dup := seen[p.ID]; dup {
				err = fmt.Errorf("%w %q: duplicate id", ErrInvalidRecord, p.ID)
			}
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		seen[p.ID] = struct{}{}
		places = append(places, p)
	}

	return places, errs
}

func (r Record) toPlace() (itinerary.Place, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return itinerary.Place{}, fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidRecord, id, fmt.Sprintf(format, args...))
	}

	region, ok := itinerary.ParseRegionKey(r.Region)
	if !ok {
		return itinerary.Place{}, invalid("unknown region %q", r.Region)
	}
	category, ok := itinerary.ParseCategory(r.Category)
	if !ok {
		return itinerary.Place{}, invalid("unknown category %q", r.Category)
	}
	if strings.TrimSpace(r.Name) == "" {
		return itinerary.Place{}, invalid("empty name")
	}
	if r.Lat < -90 || r.Lat > 90 || r.Lng < -180 || r.Lng > 180 {
		return itinerary.Place{}, invalid("coordinates out of range (%v, %v)", r.Lat, r.Lng)
	}
	if r.Rating < 0 || r.Rating > 5 {
		return itinerary.Place{}, invalid("rating %v out of range", r.Rating)
	}
	if r.Reviews < 0 {
		return itinerary.Place{}, invalid("negative review count")
	}

	p := itinerary.Place{
		ID:       id,
		Region:   region,
		Name:     r.Name,
		Category: category,
		Coords:   itinerary.Coordinates{Lat: r.Lat, Lng: r.Lng},
		Rating:   r.Rating,
		Reviews:  r.Reviews,
		Tags:     r.Tags,
	}
	if r.Description != nil {
		p.Description = itinerary.Some(*r.Description)
	}
	if r.PriceTier != nil {
		tier, ok := itinerary.ParsePriceTier(*r.PriceTier)
		if !ok {
			return itinerary.Place{}, invalid("unknown price tier %q", *r.PriceTier)
		}
		p.PriceTier = itinerary.Some(tier)
	}

	return p, nil
}
