package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/neexbeast/sharepath/internal/itinerary"
)

const (
	maxBodyBytes    = 1 << 20
	defaultRadiusKm = 40.0
	defaultPopularN = 3
)

var errBadRequest = errors.New("bad request")

// decodeJSON reads a JSON body of at most maxBodyBytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", errBadRequest, err)
	}
	return nil
}

// parseRegions keeps the known region keys and drops the rest.
func parseRegions(raw []string) []itinerary.RegionKey {
	out := make([]itinerary.RegionKey, 0, len(raw))
	for _, s := range raw {
		if k, ok := itinerary.ParseRegionKey(s); ok {
			out = append(out, k)
		}
	}
	return out
}

// validRegions drops region keys that are not in the registry.
func validRegions(keys []itinerary.RegionKey) []itinerary.RegionKey {
	raw := make([]string, 0, len(keys))
	for _, k := range keys {
		raw = append(raw, string(k))
	}
	return parseRegions(raw)
}

// regionsFromQuery accepts both ?regions=a,b and repeated ?regions=a&regions=b.
func regionsFromQuery(q url.Values) []itinerary.RegionKey {
	var raw []string
	for _, v := range q["regions"] {
		raw = append(raw, strings.Split(v, ",")...)
	}
	return parseRegions(raw)
}

func optQuery(s string) itinerary.Opt[string] {
	if strings.TrimSpace(s) == "" {
		return itinerary.None[string]()
	}
	return itinerary.Some(s)
}

func floatParam(q url.Values, name string, fallback float64) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative number", errBadRequest, name)
	}
	return f, nil
}

func intParam(q url.Values, name string, fallback int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, name)
	}
	return n, nil
}

type placeIDsRequest struct {
	PlaceIDs []string `json:"place_ids"`
}

type suggestRequest struct {
	PlaceIDs        []string               `json:"place_ids"`
	Regions         []string               `json:"regions"`
	RadiusKm        itinerary.Opt[float64] `json:"radius_km"`
	Query           itinerary.Opt[string]  `json:"query"`
	Category        string                 `json:"category"`
	ActivityFilters []string               `json:"activity_filters"`
	StyleTags       []string               `json:"style_tags"`
	Limit           itinerary.Opt[int]     `json:"limit"`
}

func (s suggestRequest) params() (itinerary.SuggestParams, error) {
	radius := s.RadiusKm.OrElse(defaultRadiusKm)
	if radius < 0 {
		return itinerary.SuggestParams{}, fmt.Errorf("%w: radius_km must be non-negative", errBadRequest)
	}
	return itinerary.SuggestParams{
		DayPlaceIDs:     s.PlaceIDs,
		Regions:         parseRegions(s.Regions),
		RadiusKm:        radius,
		Query:           optQuery(s.Query.OrElse("")),
		Category:        itinerary.CategoryFilter(s.Category),
		ActivityFilters: s.ActivityFilters,
		StyleTags:       s.StyleTags,
		Limit:           s.Limit,
	}, nil
}

type exploreRequest struct {
	PlaceIDs []string              `json:"place_ids"`
	Regions  []string              `json:"regions"`
	Query    itinerary.Opt[string] `json:"query"`
	Category string                `json:"category"`
	Limit    itinerary.Opt[int]    `json:"limit"`
}

func (e exploreRequest) params() itinerary.ExploreParams {
	return itinerary.ExploreParams{
		DayPlaceIDs: e.PlaceIDs,
		Regions:     parseRegions(e.Regions),
		Query:       optQuery(e.Query.OrElse("")),
		Category:    itinerary.CategoryFilter(e.Category),
		Limit:       e.Limit,
	}
}

type draftRequest struct {
	Title string          `json:"title"`
	Data  json.RawMessage `json:"data"`
}
