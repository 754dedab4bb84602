package holiday

import (
	"time"

	"github.com/lobbyware/holiday-engine/internal/calendar"
)

// Well-known ids consumed outside the catalog.
const (
	LunarNewYearID = "lunar-new-year"
	ChristmasID    = "christmas"
)

func fixedDay(month time.Month, day, totalDays int) CalculatorFunc {
	return single(func(year int) calendar.DateRange {
		return calendar.DayRange(year, month, day, totalDays)
	})
}

func nthWeekday(month time.Month, weekday time.Weekday, n int) CalculatorFunc {
	return single(func(year int) calendar.DateRange {
		return calendar.RangeFrom(calendar.NthWeekday(year, month, weekday, n), 1)
	})
}

// catalog returns the built-in holiday definitions, in rough calendar
// order. Priorities settle overlaps: Christmas outranks a Hanukkah that
// reaches December 25, Halloween outranks the Diwali window when Lakshmi
// Puja falls around November 1.
func catalog() []Definition {
	return []Definition{
		{
			ID: "new-years-day", Name: "New Year's Day",
			Type: TypeFixed, Category: CategoryFederal, Priority: 9, Enabled: true,
			Calculate: fixedDay(time.January, 1, 1),
		},
		{
			ID: "mlk-day", Name: "Martin Luther King Jr. Day", ShortName: "MLK Day",
			Type: TypeVariable, Category: CategoryFederal, Priority: 5, Enabled: true,
			Calculate: nthWeekday(time.January, time.Monday, 3),
		},
		{
			ID: LunarNewYearID, Name: "Lunar New Year",
			Type: TypeVariable, Category: CategoryCultural, Priority: 7, Enabled: true,
			Calculate: single(func(year int) calendar.DateRange {
				return calendar.RangeFrom(calendar.LunarNewYear(year), 7)
			}),
		},
		{
			ID: "super-bowl-sunday", Name: "Super Bowl Sunday",
			Type: TypeVariable, Category: CategoryFun, Priority: 4, Enabled: true,
			Calculate: nthWeekday(time.February, time.Sunday, 1),
		},
		{
			ID: "valentines-day", Name: "Valentine's Day",
			Type: TypeFixed, Category: CategoryObservance, Priority: 6, Enabled: true,
			Calculate: fixedDay(time.February, 14, 1),
		},
		{
			ID: "presidents-day", Name: "Presidents' Day",
			Type: TypeVariable, Category: CategoryFederal, Priority: 4, Enabled: true,
			Calculate: nthWeekday(time.February, time.Monday, 3),
		},
		{
			ID: "pi-day", Name: "Pi Day",
			Type: TypeFixed, Category: CategoryFun, Priority: 3, Enabled: true,
			Calculate: fixedDay(time.March, 14, 1),
		},
		{
			ID: "st-patricks-day", Name: "St. Patrick's Day",
			Type: TypeFixed, Category: CategoryCultural, Priority: 6, Enabled: true,
			Calculate: fixedDay(time.March, 17, 1),
		},
		{
			ID: "holi", Name: "Holi",
			Type: TypeVariable, Category: CategoryReligious, Priority: 6, Enabled: true,
			Calculate: singleErr(calendar.Holi),
		},
		{
			ID: "purim", Name: "Purim",
			Type: TypeVariable, Category: CategoryReligious, Priority: 5, Enabled: true,
			Calculate: singleErr(calendar.Purim),
		},
		{
			ID: "good-friday", Name: "Good Friday",
			Type: TypeVariable, Category: CategoryReligious, Priority: 7, Enabled: true,
			Calculate: single(func(year int) calendar.DateRange {
				return calendar.RangeFrom(calendar.GoodFriday(year), 1)
			}),
		},
		{
			ID: "easter", Name: "Easter", ShortName: "Easter Sunday",
			Type: TypeVariable, Category: CategoryReligious, Priority: 9, Enabled: true,
			Calculate: single(func(year int) calendar.DateRange {
				return calendar.RangeFrom(calendar.Easter(year), 1)
			}),
		},
		{
			ID: "april-fools-day", Name: "April Fools' Day",
			Type: TypeFixed, Category: CategoryFun, Priority: 4, Enabled: true,
			Calculate: fixedDay(time.April, 1, 1),
		},
		{
			ID: "earth-day", Name: "Earth Day",
			Type: TypeFixed, Category: CategoryObservance, Priority: 3, Enabled: true,
			Calculate: fixedDay(time.April, 22, 1),
		},
		{
			ID: "passover", Name: "Passover",
			Type: TypeVariable, Category: CategoryReligious, Priority: 7, Enabled: true,
			Calculate: singleErr(calendar.Passover),
		},
		{
			ID: "eid-al-fitr", Name: "Eid al-Fitr",
			Type: TypeVariable, Category: CategoryReligious, Priority: 6, Enabled: true,
			Calculate: multi(calendar.EidAlFitr),
		},
		{
			ID: "star-wars-day", Name: "Star Wars Day",
			Type: TypeFixed, Category: CategoryFun, Priority: 3, Enabled: true,
			Calculate: fixedDay(time.May, 4, 1),
		},
		{
			ID: "cinco-de-mayo", Name: "Cinco de Mayo",
			Type: TypeFixed, Category: CategoryCultural, Priority: 5, Enabled: true,
			Calculate: fixedDay(time.May, 5, 1),
		},
		{
			ID: "mothers-day", Name: "Mother's Day",
			Type: TypeVariable, Category: CategoryObservance, Priority: 6, Enabled: true,
			Calculate: nthWeekday(time.May, time.Sunday, 2),
		},
		{
			ID: "memorial-day", Name: "Memorial Day",
			Type: TypeVariable, Category: CategoryFederal, Priority: 6, Enabled: true,
			Calculate: nthWeekday(time.May, time.Monday, calendar.LastWeek),
		},
		{
			ID: "fathers-day", Name: "Father's Day",
			Type: TypeVariable, Category: CategoryObservance, Priority: 6, Enabled: true,
			Calculate: nthWeekday(time.June, time.Sunday, 3),
		},
		{
			ID: "juneteenth", Name: "Juneteenth",
			Type: TypeFixed, Category: CategoryFederal, Priority: 6, Enabled: true,
			Calculate: fixedDay(time.June, 19, 1),
		},
		{
			ID: "eid-al-adha", Name: "Eid al-Adha",
			Type: TypeVariable, Category: CategoryReligious, Priority: 6, Enabled: true,
			Calculate: multi(calendar.EidAlAdha),
		},
		{
			ID: "independence-day", Name: "Independence Day", ShortName: "July 4th",
			Type: TypeFixed, Category: CategoryFederal, Priority: 8, Enabled: true,
			Calculate: fixedDay(time.July, 4, 1),
		},
		{
			ID: "labor-day", Name: "Labor Day",
			Type: TypeVariable, Category: CategoryFederal, Priority: 5, Enabled: true,
			Calculate: nthWeekday(time.September, time.Monday, 1),
		},
		{
			ID: "rosh-hashanah", Name: "Rosh Hashanah",
			Type: TypeVariable, Category: CategoryReligious, Priority: 7, Enabled: true,
			Calculate: singleErr(calendar.RoshHashanah),
		},
		{
			ID: "yom-kippur", Name: "Yom Kippur",
			Type: TypeVariable, Category: CategoryReligious, Priority: 9, Enabled: true,
			Calculate: singleErr(calendar.YomKippur),
		},
		{
			ID: "halloween", Name: "Halloween",
			Type: TypeFixed, Category: CategoryObservance, Priority: 8, Enabled: true,
			Calculate: fixedDay(time.October, 31, 1),
		},
		{
			ID: "diwali", Name: "Diwali", ShortName: "Deepavali",
			Type: TypeVariable, Category: CategoryReligious, Priority: 7, Enabled: true,
			Calculate: singleErr(calendar.Diwali),
		},
		{
			ID: "veterans-day", Name: "Veterans Day",
			Type: TypeFixed, Category: CategoryFederal, Priority: 6, Enabled: true,
			Calculate: fixedDay(time.November, 11, 1),
		},
		{
			ID: "thanksgiving", Name: "Thanksgiving",
			Type: TypeVariable, Category: CategoryFederal, Priority: 9, Enabled: true,
			Calculate: nthWeekday(time.November, time.Thursday, 4),
		},
		{
			ID: "hanukkah", Name: "Hanukkah",
			Type: TypeVariable, Category: CategoryReligious, Priority: 8, Enabled: true,
			Calculate: singleErr(calendar.Hanukkah),
		},
		{
			ID: "christmas-eve", Name: "Christmas Eve",
			Type: TypeFixed, Category: CategoryReligious, Priority: 9, Enabled: true,
			Calculate: fixedDay(time.December, 24, 1),
		},
		{
			ID: ChristmasID, Name: "Christmas",
			Type: TypeFixed, Category: CategoryReligious, Priority: 10, Enabled: true,
			Calculate: fixedDay(time.December, 25, 1),
		},
		{
			ID: "new-years-eve", Name: "New Year's Eve",
			Type: TypeFixed, Category: CategoryObservance, Priority: 8, Enabled: true,
			Calculate: fixedDay(time.December, 31, 1),
		},
	}
}
