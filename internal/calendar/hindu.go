package calendar

import (
	"fmt"
	"sort"
	"time"
)

// Hindu lunisolar holidays. Computing the Amanta lunar month boundaries
// from first principles needs an ephemeris, so these are table-assisted:
// the tables below hold the festival dates for 2024-2035, derived from
// the new moon of Kartika (Diwali / Lakshmi Puja) and the full moon of
// Phalguna (Holi). Regenerate with cmd/dategen, which also checks the
// entries for lunar drift consistency (each year shifts -12..-9 days, or
// +17..+20 when a leap month intervenes). Regional observance can differ
// by a day from these values.

type monthDay struct {
	month time.Month
	day   int
}

var diwaliDates = map[int]monthDay{
	2024: {time.November, 1},
	2025: {time.October, 21},
	2026: {time.November, 8},
	2027: {time.October, 29},
	2028: {time.October, 17},
	2029: {time.November, 5},
	2030: {time.October, 26},
	2031: {time.November, 14},
	2032: {time.November, 2},
	2033: {time.October, 23},
	2034: {time.November, 10},
	2035: {time.October, 30},
}

var holiDates = map[int]monthDay{
	2024: {time.March, 25},
	2025: {time.March, 14},
	2026: {time.March, 3},
	2027: {time.March, 22},
	2028: {time.March, 11},
	2029: {time.March, 1},
	2030: {time.March, 19},
	2031: {time.March, 9},
	2032: {time.March, 27},
	2033: {time.March, 16},
	2034: {time.March, 5},
	2035: {time.March, 24},
}

// Diwali returns the five-day festival window centered on Lakshmi Puja
// (day 3 of 5, from Dhanteras through Bhai Dooj).
func Diwali(year int) (DateRange, error) {
	md, ok := diwaliDates[year]
	if !ok {
		return DateRange{}, fmt.Errorf("diwali table has no entry for %d: %w", year, ErrUnsupportedYear)
	}
	main := time.Date(year, md.month, md.day, 0, 0, 0, 0, time.UTC)
	return RangeFrom(main.AddDate(0, 0, -2), 5), nil
}

// Holi returns the single festival day (Rangwali Holi, the day after
// Holika Dahan).
func Holi(year int) (DateRange, error) {
	md, ok := holiDates[year]
	if !ok {
		return DateRange{}, fmt.Errorf("holi table has no entry for %d: %w", year, ErrUnsupportedYear)
	}
	return DayRange(year, md.month, md.day, 1), nil
}

// VerifyHinduTables validates the Diwali and Holi lookup tables:
// years must be contiguous and each year-over-year shift must be a
// plausible lunisolar drift. Run by cmd/dategen before emitting output.
func VerifyHinduTables() error {
	if err := verifyDriftTable("diwali", diwaliDates); err != nil {
		return err
	}
	return verifyDriftTable("holi", holiDates)
}

// verifyDriftTable checks that consecutive entries shift by -12..-9
// days, or +17..+20 when a leap month intervenes.
func verifyDriftTable(name string, table map[int]monthDay) error {
	years := make([]int, 0, len(table))
	for y := range table {
		years = append(years, y)
	}
	sort.Ints(years)

	for i := 1; i < len(years); i++ {
		prev, next := years[i-1], years[i]
		if next != prev+1 {
			return fmt.Errorf("%s table skips from %d to %d", name, prev, next)
		}
		shift := calendarShift(table[prev], table[next])
		if (shift < -12 || shift > -9) && (shift < 17 || shift > 20) {
			return fmt.Errorf("%s %d to %d shifts %+d days, want -12..-9 or +17..+20",
				name, prev, next, shift)
		}
	}
	return nil
}

// calendarShift measures the month/day movement between two entries,
// projected onto a fixed non-leap year so February 29 never skews it.
func calendarShift(a, b monthDay) int {
	ref := func(md monthDay) time.Time {
		return time.Date(2001, md.month, md.day, 0, 0, 0, 0, time.UTC)
	}
	return int(ref(b).Sub(ref(a)).Hours() / 24)
}
