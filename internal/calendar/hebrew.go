package calendar

import (
	"fmt"
	"time"

	"github.com/hebcal/hdate"
)

// Hebrew-calendar holidays. A Hebrew year straddles two Gregorian years
// (Tishrei lands in autumn), so a fixed Hebrew date has to be located in
// whichever Hebrew year produces an occurrence inside the requested
// Gregorian year.
//
// Dates follow the civil-day convention: the Gregorian date returned is
// the holiday's daytime portion, not the preceding candle-lighting
// evening. Hanukkah that begins at sunset December 25 is reported as
// starting December 26.

// hebrewYearDelta is the approximate offset between a Hebrew year and the
// Gregorian year its spring months fall in (5784 Nisan -> 2024). The
// autumn months of Hebrew year Y fall in Gregorian Y-3761; searching
// delta, delta+1 and the neighbors below covers both halves.
const hebrewYearDelta = 3760

// hebrewDateIn converts a fixed Hebrew month/day to its Gregorian date in
// the requested Gregorian year.
func hebrewDateIn(gregYear int, month hdate.HMonth, day int) (time.Time, error) {
	for _, hy := range []int{gregYear + hebrewYearDelta, gregYear + hebrewYearDelta + 1, gregYear + hebrewYearDelta - 1} {
		hd := hdate.New(hy, month, day)
		g := hd.Gregorian()
		if g.Year() == gregYear {
			return time.Date(g.Year(), g.Month(), g.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("hebrew date %d/%d has no occurrence in %d: %w", month, day, gregYear, ErrUnsupportedYear)
}

// Hanukkah returns the 8-day festival beginning 25 Kislev.
func Hanukkah(year int) (DateRange, error) {
	start, err := hebrewDateIn(year, hdate.Kislev, 25)
	if err != nil {
		return DateRange{}, err
	}
	return RangeFrom(start, 8), nil
}

// Passover returns the 8-day festival beginning 15 Nisan.
func Passover(year int) (DateRange, error) {
	start, err := hebrewDateIn(year, hdate.Nisan, 15)
	if err != nil {
		return DateRange{}, err
	}
	return RangeFrom(start, 8), nil
}

// RoshHashanah returns the 2-day new year beginning 1 Tishrei.
func RoshHashanah(year int) (DateRange, error) {
	start, err := hebrewDateIn(year, hdate.Tishrei, 1)
	if err != nil {
		return DateRange{}, err
	}
	return RangeFrom(start, 2), nil
}

// YomKippur returns 10 Tishrei as a single day.
func YomKippur(year int) (DateRange, error) {
	start, err := hebrewDateIn(year, hdate.Tishrei, 10)
	if err != nil {
		return DateRange{}, err
	}
	return RangeFrom(start, 1), nil
}

// Purim returns 14 Adar (Adar II in Hebrew leap years) as a single day.
func Purim(year int) (DateRange, error) {
	for _, hy := range []int{year + hebrewYearDelta, year + hebrewYearDelta + 1, year + hebrewYearDelta - 1} {
		// In leap years Purim follows the second Adar.
		month := hdate.Adar1
		if hdate.IsLeapYear(hy) {
			month = hdate.Adar2
		}
		g := hdate.New(hy, month, 14).Gregorian()
		if g.Year() == year {
			return DayRange(g.Year(), g.Month(), g.Day(), 1), nil
		}
	}
	return DateRange{}, fmt.Errorf("purim has no occurrence in %d: %w", year, ErrUnsupportedYear)
}
