package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/neexbeast/sharepath/internal/catalog"
	"github.com/neexbeast/sharepath/internal/itinerary"
	"github.com/neexbeast/sharepath/internal/planner"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	planner ItineraryPlanner
	drafts  DraftRepo
	source  catalog.RecordSource
	log     *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
// source is where catalog reloads read places from.
func NewHandlers(p ItineraryPlanner, drafts DraftRepo, source catalog.RecordSource, log *slog.Logger) *Handlers {
	return &Handlers{
		planner: p,
		drafts:  drafts,
		source:  source,
		log:     log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// badRequest reports client errors as 400 and reports whether err was one.
func badRequest(w http.ResponseWriter, err error) bool {
	if errors.Is(err, errBadRequest) || errors.Is(err, planner.ErrInvalidRequest) {
		writeError(w, http.StatusBadRequest, err.Error())
		return true
	}
	return false
}

// ListRegions handles GET /api/v1/regions.
func (h *Handlers) ListRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"regions": h.planner.Regions()})
}

// ListPlaces handles GET /api/v1/places.
// With radius_km it switches to the strict radius search around the regions'
// centroid; q and category only apply to that mode.
func (h *Handlers) ListPlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	regions := regionsFromQuery(q)

	if q.Get("radius_km") == "" {
		writeJSON(w, http.StatusOK, map[string]any{"places": h.planner.Places(regions)})
		return
	}

	radius, err := floatParam(q, "radius_km", defaultRadiusKm)
	if badRequest(w, err) {
		return
	}
	places := h.planner.Nearby(regions, radius, optQuery(q.Get("q")), itinerary.CategoryFilter(q.Get("category")))
	writeJSON(w, http.StatusOK, map[string]any{"places": places})
}

// PopularPlaces handles GET /api/v1/places/popular.
func (h *Handlers) PopularPlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	top, err := intParam(q, "top", defaultPopularN)
	if badRequest(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"places": h.planner.Popular(regionsFromQuery(q), top)})
}

// BuildRoute handles POST /api/v1/routes.
func (h *Handlers) BuildRoute(w http.ResponseWriter, r *http.Request) {
	var req placeIDsRequest
	if badRequest(w, decodeJSON(w, r, &req)) {
		return
	}
	writeJSON(w, http.StatusOK, h.planner.Route(req.PlaceIDs))
}

// EvaluateAlerts handles POST /api/v1/alerts.
func (h *Handlers) EvaluateAlerts(w http.ResponseWriter, r *http.Request) {
	var req placeIDsRequest
	if badRequest(w, decodeJSON(w, r, &req)) {
		return
	}
	writeJSON(w, http.StatusOK, h.planner.Alerts(req.PlaceIDs))
}

// Suggest handles POST /api/v1/suggestions.
func (h *Handlers) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if badRequest(w, decodeJSON(w, r, &req)) {
		return
	}
	params, err := req.params()
	if badRequest(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"candidates": h.planner.Suggest(r.Context(), params)})
}

// Explore handles POST /api/v1/explore.
func (h *Handlers) Explore(w http.ResponseWriter, r *http.Request) {
	var req exploreRequest
	if badRequest(w, decodeJSON(w, r, &req)) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"candidates": h.planner.Explore(req.params())})
}

// Overview handles POST /api/v1/overview.
func (h *Handlers) Overview(w http.ResponseWriter, r *http.Request) {
	var req planner.OverviewRequest
	if badRequest(w, decodeJSON(w, r, &req)) {
		return
	}
	req.Regions = validRegions(req.Regions)

	out, err := h.planner.Overview(r.Context(), req)
	if err != nil {
		if badRequest(w, err) {
			return
		}
		h.log.Error("overview failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ReloadCatalog handles POST /api/v1/catalog/reload.
func (h *Handlers) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	n, err := h.planner.ReloadCatalog(r.Context(), h.source)
	if err != nil {
		h.log.Error("catalog reload failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to reload catalog")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"places": n})
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis
// connectivity. It responds 200 if both are reachable and 503 otherwise.
func HealthHandlerFunc(db dbPinger, redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error("health check: db ping failed", "err", err)
			dbStatus = "error"
		}
		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
		}
		if dbStatus != "ok" || redisStatus != "ok" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
