package itinerary

// Catalog is an immutable, injectable view of the place catalog and the
// region registry. A nil *Catalog behaves as an empty catalog.
type Catalog struct {
	places  []Place
	byID    map[string]int
	regions []Region
	byKey   map[RegionKey]int
}

// NewCatalog copies places and regions into a new Catalog.
// Catalog order is preserved; for duplicate ids the first entry wins.
func NewCatalog(places []Place, regions []Region) *Catalog {
	c := &Catalog{
		places:  make([]Place, 0, len(places)),
		byID:    make(map[string]int, len(places)),
		regions: make([]Region, 0, len(regions)),
		byKey:   make(map[RegionKey]int, len(regions)),
	}

	for _, p := range places {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.places)
		c.places = append(c.places, p)
	}

	for _, r := range regions {
		if _, dup := c.byKey[r.Key]; dup {
			continue
		}
		c.byKey[r.Key] = len(c.regions)
		c.regions = append(c.regions, r)
	}

	return c
}

// Len returns the number of places.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.places)
}

// Place looks up a place by id.
func (c *Catalog) Place(id string) (Place, bool) {
	if c == nil {
		return Place{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Place{}, false
	}
	return c.places[i], true
}

// Places returns a copy of all places in catalog order.
func (c *Catalog) Places() []Place {
	if c == nil {
		return nil
	}
	out := make([]Place, len(c.places))
	copy(out, c.places)
	return out
}

// Regions returns a copy of the region registry in registry order.
func (c *Catalog) Regions() []Region {
	if c == nil {
		return nil
	}
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// Region looks up a region by key.
func (c *Catalog) Region(key RegionKey) (Region, bool) {
	if c == nil {
		return Region{}, false
	}
	i, ok := c.byKey[key]
	if !ok {
		return Region{}, false
	}
	return c.regions[i], true
}

// Resolve maps ids to places, dropping ids the catalog does not know.
func (c *Catalog) Resolve(ids []string) []Place {
	out := make([]Place, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.Place(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// CenterFor returns the centroid of the selected regions' centers.
// With no known region selected it falls back to the first registry region.
func (c *Catalog) CenterFor(keys []RegionKey) Coordinates {
	if c == nil || len(c.regions) == 0 {
		return Coordinates{}
	}

	selected := regionSet(keys)
	var sumLat, sumLng float64
	n := 0
	for _, r := range c.regions {
		if _, ok := selected[r.Key]; !ok {
			continue
		}
		sumLat += r.Center.Lat
		sumLng += r.Center.Lng
		n++
	}

	if n == 0 {
		return c.regions[0].Center
	}
	return Coordinates{Lat: sumLat / float64(n), Lng: sumLng / float64(n)}
}

func regionSet(keys []RegionKey) map[RegionKey]struct{} {
	set := make(map[RegionKey]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
