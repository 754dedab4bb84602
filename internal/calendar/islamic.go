package calendar

import "time"

// Islamic (Hijri) lunar holidays, converted through the tabular civil
// calendar (30-year cycle, intercalary years {2,5,7,10,13,16,18,21,24,
// 26,29}, epoch 1 Muharram AH 1 = 16 July 622 CE Julian).
//
// Real-world observance begins with the sighting of the crescent moon and
// can shift a day either way from any arithmetic calendar. That is an
// accepted approximation here, not a defect; themes for Eid simply follow
// the calculated date.

// islamicEpoch is the Julian day number of the day before 1 Muharram AH 1
// in the civil reckoning.
const islamicEpoch = 1948439

// hijriToJDN converts a tabular-civil Hijri date to a Julian day number.
// Months alternate 30 and 29 days; the year is 354 days plus a leap day
// in 11 of every 30 years, folded in by the (3+11y)/30 term.
func hijriToJDN(year, month, day int) int {
	monthDays := (month - 1) * 29
	monthDays += month / 2 // ceil(29.5 * (month-1)) for integer month
	return day + monthDays + (year-1)*354 + (3+11*year)/30 + islamicEpoch
}

// gregorianFromJDN converts a Julian day number to a midnight UTC
// Gregorian date (Fliegel & Van Flandern).
func gregorianFromJDN(jdn int) time.Time {
	l := jdn + 68569
	n := 4 * l / 146097
	l = l - (146097*n+3)/4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	d := l - 2447*j/80
	l = j / 11
	m := j + 2 - 12*l
	y := 100*(n-49) + i + l
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// hijriOccurrences finds every Gregorian date in the given year on which
// the fixed Hijri month/day falls. The Hijri year is ~354 days, so a date
// usually occurs once per Gregorian year but can occur twice (early
// January and late December).
func hijriOccurrences(gregYear, month, day int) []time.Time {
	base := (gregYear - 622) * 33 / 32
	var out []time.Time
	for hy := base - 1; hy <= base+2; hy++ {
		g := gregorianFromJDN(hijriToJDN(hy, month, day))
		if g.Year() == gregYear {
			out = append(out, g)
		}
	}
	return out
}

// EidAlFitr returns the occurrence(s) of 1 Shawwal in the Gregorian year.
func EidAlFitr(year int) []DateRange {
	return hijriRanges(year, 10, 1)
}

// EidAlAdha returns the occurrence(s) of 10 Dhu al-Hijjah.
func EidAlAdha(year int) []DateRange {
	return hijriRanges(year, 12, 10)
}

func hijriRanges(year, month, day int) []DateRange {
	occ := hijriOccurrences(year, month, day)
	ranges := make([]DateRange, 0, len(occ))
	for _, g := range occ {
		ranges = append(ranges, RangeFrom(g, 1))
	}
	return ranges
}
