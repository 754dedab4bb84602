// Package holiday owns the holiday catalog and decides which holiday, if
// any, is active at a given instant.
package holiday

import (
	"github.com/lobbyware/holiday-engine/internal/calendar"
)

// Type distinguishes holidays pinned to one calendar date from those
// needing an algorithm.
type Type string

const (
	TypeFixed    Type = "fixed"
	TypeVariable Type = "variable"
)

// Category groups holidays for the admin management screen.
type Category string

const (
	CategoryFederal    Category = "federal"
	CategoryReligious  Category = "religious"
	CategoryCultural   Category = "cultural"
	CategoryObservance Category = "observance"
	CategoryFun        Category = "fun"
)

// CalculatorFunc computes the occurrence(s) of a holiday in a Gregorian
// year. It must be pure: same year, same ranges, no I/O, no clock access.
// Most holidays have exactly one occurrence; Hijri-calendar holidays can
// have two in one Gregorian year, and table-assisted calculators return
// calendar.ErrUnsupportedYear outside their table.
type CalculatorFunc func(year int) ([]calendar.DateRange, error)

// Definition is one immutable catalog entry.
type Definition struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	ShortName string         `json:"shortName,omitempty"`
	Type      Type           `json:"type"`
	Category  Category       `json:"category"`
	Priority  int            `json:"priority"` // 1..10, higher wins on overlap
	Enabled   bool           `json:"enabled"`
	Calculate CalculatorFunc `json:"-"`
}

// single adapts a one-range calculator that cannot fail.
func single(fn func(year int) calendar.DateRange) CalculatorFunc {
	return func(year int) ([]calendar.DateRange, error) {
		return []calendar.DateRange{fn(year)}, nil
	}
}

// singleErr adapts a one-range calculator that can report an unsupported
// year.
func singleErr(fn func(year int) (calendar.DateRange, error)) CalculatorFunc {
	return func(year int) ([]calendar.DateRange, error) {
		r, err := fn(year)
		if err != nil {
			return nil, err
		}
		return []calendar.DateRange{r}, nil
	}
}

// multi adapts a calculator that already returns a slice.
func multi(fn func(year int) []calendar.DateRange) CalculatorFunc {
	return func(year int) ([]calendar.DateRange, error) {
		return fn(year), nil
	}
}
