package itinerary

import "slices"

// RegionSpreadMessage is shown when an itinerary spans every region.
const RegionSpreadMessage = "Moverse por CDMX, Estado de México, Hidalgo, Morelos y Querétaro en un solo itinerario " +
	"incrementa notablemente los tiempos de traslado. Sugerimos comenzar con 1–2 estados y limitar traslados diarios a ≤ 2 h."

// SystemTags is the curated tag vocabulary, most general first.
var SystemTags = []string{
	"museos",
	"historia",
	"arte",
	"arquitectura",
	"vino",
	"tacos",
	"mercados",
	"senderismo",
	"familia",
	"romántico",
	"fotografía",
	"multidestino",
	"free spots",
	"fine dining",
	"rutas cortas",
	"rutas largas",
}

const maxSuggestedTags = 8

// RegionSpreadWarning returns RegionSpreadMessage when every registry region
// is selected.
func RegionSpreadWarning(c *Catalog, regions []RegionKey) Opt[string] {
	all := c.Regions()
	if len(all) == 0 {
		return None[string]()
	}
	selected := regionSet(regions)
	for _, r := range all {
		if _, ok := selected[r.Key]; !ok {
			return None[string]()
		}
	}
	return Some(RegionSpreadMessage)
}

// DraftHints is the part of an itinerary draft that drives tag suggestions.
type DraftHints struct {
	Style   string      `json:"style"`
	Days    int         `json:"days"`
	Regions []RegionKey `json:"regions"`
	Budget  string      `json:"budget"`
}

// SuggestTags proposes up to eight tags for a draft.
func SuggestTags(h DraftHints) []string {
	out := make([]string, 0, maxSuggestedTags)
	add := func(tags ...string) {
		for _, t := range tags {
			if !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}

	switch h.Style {
	case "cultural":
		add("museos", "centro histórico")
	case "gastronómico":
		add("tacos", "mercados", "antojitos")
	case "fotografía":
		add("spots fotogénicos")
	}
	if h.Days >= 3 {
		add("ruta de 3 días")
	}
	if h.Days >= 5 {
		add("ruta de 5 días")
	}
	if len(h.Regions) > 1 {
		add("multidestino")
	}
	if slices.Contains(h.Regions, RegionQueretaro) {
		add("viñedos")
	}
	if slices.Contains(h.Regions, RegionCDMX) {
		add("chapultepec")
	}
	switch h.Budget {
	case "low":
		add("free spots")
	case "high":
		add("fine dining")
	}
	add(SystemTags[:3]...)

	return truncate(out, maxSuggestedTags)
}
