package itinerary

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"time"
)

// DateLayout is the ISO calendar date format used for itinerary days.
const DateLayout = "2006-01-02"

// MinActivityMinutes is the shortest span ClampEnd allows.
const MinActivityMinutes = 30

// Clock is a time of day in minutes after midnight. It reads and writes as
// zero-padded "HH:MM".
type Clock int

const (
	lastMinute = Clock(23*60 + 59)

	// latestEnd is the latest end ClampEnd can produce, e.g. "24:29" for a
	// slot starting at 23:59.
	latestEnd = lastMinute + MinActivityMinutes
)

// ParseClock parses "HH:MM" between 00:00 and 23:59.
func ParseClock(s string) (Clock, error) {
	return parseClock(s, lastMinute)
}

func parseClock(s string, limit Clock) (Clock, error) {
	if len(s) != 5 || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return 0, fmt.Errorf("parsing clock %q: want HH:MM", s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	c := Clock(h*60 + m)
	if m > 59 || c > limit {
		return 0, fmt.Errorf("parsing clock %q: out of range", s)
	}
	return c, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText also accepts the past-midnight ends ClampEnd produces, so a
// clamped slot reads back unchanged.
func (c *Clock) UnmarshalText(b []byte) error {
	v, err := parseClock(string(b), latestEnd)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Slot is a scheduled activity within a day.
type Slot struct {
	PlaceID string `json:"place_id"`
	Start   Clock  `json:"start"`
	End     Clock  `json:"end"`
}

// HasOverlap reports whether any slot starts before the previous one, in
// start order, has ended.
func HasOverlap(slots []Slot) bool {
	sorted := slices.Clone(slots)
	slices.SortStableFunc(sorted, func(a, b Slot) int {
		return cmp.Compare(a.Start, b.Start)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return true
		}
	}
	return false
}

// ClampEnd returns end, or start plus MinActivityMinutes when end is not
// after start. The result may run past midnight and then formats with an
// hour of 24, e.g. "24:20" for a slot starting at 23:50.
func ClampEnd(start, end Clock) Clock {
	if end <= start {
		return start + MinActivityMinutes
	}
	return end
}

// ParseISODate parses a calendar date, accepting a full RFC 3339 timestamp
// as well.
func ParseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// DaysInRange lists every calendar day from start to end inclusive. An end
// before start yields the start day alone.
func DaysInRange(start, end time.Time) []string {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		end = start
	}

	days := make([]string, 0, DayCount(start, end))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}

// DayCount is len(DaysInRange(start, end)) without building the list.
func DayCount(start, end time.Time) int64 {
	const secondsPerDay = 24 * 60 * 60
	n := (truncateDay(end).Unix() - truncateDay(start).Unix()) / secondsPerDay
	return max(n, 0) + 1
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
