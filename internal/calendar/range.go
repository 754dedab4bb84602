// Package calendar provides pure holiday date calculations.
//
// Every function maps a Gregorian year to civil calendar dates anchored at
// midnight UTC. Timezone handling belongs to the caller: convert the query
// instant to a local civil date first, then compare against these ranges.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedYear is returned when a calculator cannot produce a correct
// date for the requested year (for example a year outside a lookup table).
// Callers must treat this as "no occurrence known", never as a real date.
var ErrUnsupportedYear = errors.New("calendar: unsupported year")

// MinYear is the earliest year the engine commits to. The general
// algorithms (computus, weekday arithmetic, Hebrew, Hijri, Chinese) work
// well outside this range, but the catalog is only verified from here on.
const MinYear = 2024

// DateRange is the occurrence of one holiday in one year.
// Start is inclusive, End is exclusive: End is the midnight after the
// holiday's last day, so Start <= t < End means t falls on the holiday.
type DateRange struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	TotalDays int       `json:"totalDays"`
}

// DayRange builds a range of totalDays civil days beginning at the given
// date, anchored at midnight UTC.
func DayRange(year int, month time.Month, day, totalDays int) DateRange {
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return RangeFrom(start, totalDays)
}

// RangeFrom builds a range of totalDays civil days beginning at start.
// start must already be a midnight-anchored date.
func RangeFrom(start time.Time, totalDays int) DateRange {
	if totalDays < 1 {
		totalDays = 1
	}
	return DateRange{
		Start:     start,
		End:       start.AddDate(0, 0, totalDays),
		TotalDays: totalDays,
	}
}

// Contains reports whether t falls inside the range (Start <= t < End).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// DayOf returns which day of the holiday t falls on, counting from 1.
// The result is clamped to [1, TotalDays] so a caller holding an instant
// slightly outside the range never sees day 0 or day TotalDays+1.
func (r DateRange) DayOf(t time.Time) int {
	day := int(t.Sub(r.Start).Hours()/24) + 1
	if day < 1 {
		return 1
	}
	if day > r.TotalDays {
		return r.TotalDays
	}
	return day
}

func (r DateRange) String() string {
	if r.TotalDays == 1 {
		return r.Start.Format("2006-01-02")
	}
	return fmt.Sprintf("%s..%s (%d days)",
		r.Start.Format("2006-01-02"),
		r.End.AddDate(0, 0, -1).Format("2006-01-02"),
		r.TotalDays)
}

// CivilDate truncates an instant to its civil date in the given location,
// re-anchored at midnight UTC so it can be compared against DateRange
// values. This is the single point where "what day is it?" is decided:
// 00:30 December 25 in America/Los_Angeles maps to December 25 even though
// it is still December 24 in UTC.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.UTC)
}
