package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/sharepath/internal/itinerary"
)

// MaxDays is the longest itinerary the planner accepts.
const MaxDays = 7

const overviewParallelism = 4

// ErrInvalidRequest is returned for overview requests that cannot be evaluated.
var ErrInvalidRequest = errors.New("invalid overview request")

// DayPlan is one day of an itinerary. Slots are optional activity times.
type DayPlan struct {
	Date     string           `json:"date"`
	PlaceIDs []string         `json:"place_ids"`
	Slots    []itinerary.Slot `json:"slots,omitempty"`
}

// OverviewRequest describes a multi-day itinerary.
type OverviewRequest struct {
	Regions   []itinerary.RegionKey `json:"regions"`
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	Style     string                `json:"style"`
	Budget    string                `json:"budget"`
	Days      []DayPlan             `json:"days"`
}

// DayReport is the evaluation of one day.
type DayReport struct {
	Date    string           `json:"date"`
	Route   itinerary.Route  `json:"route"`
	Alerts  itinerary.Alerts `json:"alerts"`
	Slots   []itinerary.Slot `json:"slots"`
	Overlap bool             `json:"overlap"`
}

// Overview is the evaluation of a whole itinerary.
type Overview struct {
	Dates         []string              `json:"dates"`
	Days          []DayReport           `json:"days"`
	TotalKm       float64               `json:"total_km"`
	TotalMinutes  int                   `json:"total_minutes"`
	HasIssue      bool                  `json:"has_issue"`
	RegionWarning itinerary.Opt[string] `json:"region_warning"`
	Tags          []string              `json:"tags"`
}

// Overview evaluates every day of req in parallel and aggregates the result.
// Slot end times are clamped before checking for overlaps.
func (p *Planner) Overview(ctx context.Context, req OverviewRequest) (*Overview, error) {
	dates, err := dateRange(req)
	if err != nil {
		return nil, err
	}
	if len(req.Days) > MaxDays {
		return nil, fmt.Errorf("%w: %d days, at most %d", ErrInvalidRequest, len(req.Days), MaxDays)
	}
	for _, d := range req.Days {
		if len(dates) > 0 && !slices.Contains(dates, d.Date) {
			return nil, fmt.Errorf("%w: day %q is outside %s..%s", ErrInvalidRequest, d.Date, dates[0], dates[len(dates)-1])
		}
	}

	cat := p.catalog()
	reports := make([]DayReport, len(req.Days))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(overviewParallelism)

	for i, day := range req.Days {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					p.logger.Error("day evaluation panicked", "date", day.Date, "recover", r)
					err = fmt.Errorf("evaluating day %s panicked: %v", day.Date, r)
				}
			}()
			if err := gCtx.Err(); err != nil {
				return err
			}
			reports[i] = evaluateDay(cat, day)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building overview: %w", err)
	}

	out := &Overview{
		Dates:         dates,
		Days:          reports,
		RegionWarning: itinerary.RegionSpreadWarning(cat, req.Regions),
		Tags: itinerary.SuggestTags(itinerary.DraftHints{
			Style:   req.Style,
			Days:    max(len(dates), len(req.Days)),
			Regions: req.Regions,
			Budget:  req.Budget,
		}),
	}
	totalKm := 0.0
	for _, r := range reports {
		totalKm += r.Route.TotalKm
		out.TotalMinutes += r.Route.TotalMinutes
		out.HasIssue = out.HasIssue || r.Alerts.HasIssue || r.Overlap
	}
	out.TotalKm = roundKm(totalKm)

	return out, nil
}

func evaluateDay(cat *itinerary.Catalog, day DayPlan) DayReport {
	slots := make([]itinerary.Slot, len(day.Slots))
	for i, s := range day.Slots {
		s.End = itinerary.ClampEnd(s.Start, s.End)
		slots[i] = s
	}

	route := itinerary.BuildDayRoute(cat, day.PlaceIDs)
	return DayReport{
		Date:    day.Date,
		Route:   route,
		Alerts:  itinerary.RouteAlerts(route),
		Slots:   slots,
		Overlap: itinerary.HasOverlap(slots),
	}
}

// dateRange expands the requested start and end dates. Without a start date
// there is no range to check days against.
func dateRange(req OverviewRequest) ([]string, error) {
	if req.StartDate == "" {
		return []string{}, nil
	}

	start, err := itinerary.ParseISODate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	end := start
	if req.EndDate != "" {
		if end, err = itinerary.ParseISODate(req.EndDate); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}

	if n := itinerary.DayCount(start, end); n > MaxDays {
		return nil, fmt.Errorf("%w: %d days, at most %d", ErrInvalidRequest, n, MaxDays)
	}
	return itinerary.DaysInRange(start, end), nil
}

func roundKm(v float64) float64 {
	return math.Round(v*10) / 10
}
