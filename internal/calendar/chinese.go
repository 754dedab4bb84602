package calendar

import (
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// zodiacAnimals in cycle order, anchored so that (year-4) mod 12 indexes
// the animal (4 CE was a Rat year; 2024 is a Dragon year).
var zodiacAnimals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// LunarNewYear returns the Gregorian date of Chinese New Year (lunar
// month 1, day 1) for the given Gregorian year, computed through the
// lunisolar conversion in lunar-go.
func LunarNewYear(year int) time.Time {
	solar := calendar.NewLunarFromYmd(year, 1, 1).GetSolar()
	return time.Date(solar.GetYear(), time.Month(solar.GetMonth()), solar.GetDay(), 0, 0, 0, 0, time.UTC)
}

// ZodiacAnimal maps a Gregorian year to its Chinese zodiac animal.
// The mapping is by calendar year; strictly the animal changes at the
// lunar new year, but the catalog only surfaces it during the Lunar New
// Year festival itself, when both agree.
func ZodiacAnimal(year int) string {
	return zodiacAnimals[((year-4)%12+12)%12]
}
