// Package schedule drives time-based re-resolution: it loads the display
// timezone and fires a callback just after every local midnight so the
// active holiday is recomputed the moment the civil date rolls over.
package schedule

import "time"

// DefaultTimezone is used when the configured IANA name is empty or
// fails to load.
const DefaultTimezone = "America/New_York"

// Location resolves an IANA timezone name, falling back to
// DefaultTimezone and then UTC rather than failing. The bool reports
// whether the requested name itself loaded.
func Location(name string) (*time.Location, bool) {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc, true
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc, false
	}
	return time.UTC, false
}

// CivilTime is a wall-clock instant broken into local components.
type CivilTime struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Day    int        `json:"day"`
	Hour   int        `json:"hour"`
	Minute int        `json:"minute"`
	Second int        `json:"second"`
}

// TimeIn converts an instant to its wall-clock components in loc.
func TimeIn(t time.Time, loc *time.Location) CivilTime {
	t = t.In(loc)
	return CivilTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// UntilNextMidnight returns the duration from now until the next local
// midnight in loc. Constructing tomorrow's date with time.Date keeps the
// arithmetic correct across DST transitions, where the interval is not
// 24 hours.
func UntilNextMidnight(now time.Time, loc *time.Location) time.Duration {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, loc)
	return next.Sub(now)
}
