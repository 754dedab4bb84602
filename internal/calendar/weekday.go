package calendar

import "time"

// LastWeek is the ordinal sentinel for "the last occurrence of a weekday
// in the month" (e.g. the last Monday of May).
const LastWeek = -1

// NthWeekday returns the nth occurrence of a weekday in a month, computed
// by pure arithmetic from the weekday of the first of the month. Pass
// LastWeek as n for the final occurrence.
//
// The result for an n larger than the month holds (e.g. a 5th Thursday in
// a 4-Thursday month) spills into the next month; the catalog only uses
// ordinals that exist in every year.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	if n == LastWeek {
		return lastWeekday(year, month, weekday)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(weekday - first.Weekday())
	if offset < 0 {
		offset += 7
	}
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekday walks back from the last day of the month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	// Day 0 of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	offset := int(last.Weekday() - weekday)
	if offset < 0 {
		offset += 7
	}
	return last.AddDate(0, 0, -offset)
}
