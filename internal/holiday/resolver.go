package holiday

import (
	"sort"
	"time"

	"github.com/lobbyware/holiday-engine/internal/calendar"
)

// Config is the caller-supplied resolution configuration. The engine does
// not own or persist it; the settings store does.
type Config struct {
	// Location is the display timezone. Nil means UTC.
	Location *time.Location

	// Disabled removes holidays from auto-detection without removing
	// them from the catalog.
	Disabled map[string]struct{}

	// PreviewID, when set, bypasses all date math and forces resolution
	// to that holiday at PreviewDay. Disabled status is ignored on the
	// preview path so operators can demo any theme.
	PreviewID  string
	PreviewDay int
}

// Resolved is the outcome of one resolution call. It is a snapshot for a
// single render cycle and is never stored.
type Resolved struct {
	Holiday      *Definition
	DayOfHoliday int
	TotalDays    int
	IsHoliday    bool
}

// Resolver determines the active holiday for an instant.
type Resolver struct {
	registry *Registry
}

func NewResolver(r *Registry) *Resolver {
	return &Resolver{registry: r}
}

type candidate struct {
	def Definition
	rng calendar.DateRange
}

// Resolve finds the single active holiday at now under cfg.
//
// The instant's civil date comes from cfg.Location, so a holiday starting
// at local midnight is active immediately regardless of the UTC date.
// Overlaps go to the highest priority; equal priorities tie-break on the
// lexicographically smallest id, a deliberate deterministic rule rather
// than registry order.
func (rv *Resolver) Resolve(now time.Time, cfg Config) Resolved {
	if cfg.PreviewID != "" {
		return rv.resolvePreview(now, cfg)
	}

	civil := calendar.CivilDate(now, cfg.Location)
	year := civil.Year()

	var candidates []candidate
	for _, def := range rv.registry.Enabled(cfg.Disabled) {
		// The previous year's occurrence can reach into January
		// (Hanukkah, New Year's Eve spillover), so both years are
		// checked.
		if rng, ok := occurrenceContaining(def, year-1, civil); ok {
			candidates = append(candidates, candidate{def: def, rng: rng})
			continue
		}
		if rng, ok := occurrenceContaining(def, year, civil); ok {
			candidates = append(candidates, candidate{def: def, rng: rng})
		}
	}

	if len(candidates) == 0 {
		return Resolved{}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].def.Priority != candidates[j].def.Priority {
			return candidates[i].def.Priority > candidates[j].def.Priority
		}
		return candidates[i].def.ID < candidates[j].def.ID
	})

	winner := candidates[0]
	def := winner.def
	return Resolved{
		Holiday:      &def,
		DayOfHoliday: winner.rng.DayOf(civil),
		TotalDays:    winner.rng.TotalDays,
		IsHoliday:    true,
	}
}

// resolvePreview forces the configured holiday and day, pulling TotalDays
// from the calculator so progression themes render plausibly.
func (rv *Resolver) resolvePreview(now time.Time, cfg Config) Resolved {
	def, ok := rv.registry.ByID(cfg.PreviewID)
	if !ok {
		return Resolved{}
	}

	totalDays := 1
	year := calendar.CivilDate(now, cfg.Location).Year()
	if ranges, err := def.Calculate(year); err == nil && len(ranges) > 0 {
		totalDays = ranges[0].TotalDays
	}

	day := cfg.PreviewDay
	if day < 1 {
		day = 1
	}
	if day > totalDays {
		day = totalDays
	}

	return Resolved{
		Holiday:      &def,
		DayOfHoliday: day,
		TotalDays:    totalDays,
		IsHoliday:    true,
	}
}

// occurrenceContaining evaluates a definition for one year and reports
// the range containing the civil date, if any. Calculator errors mean
// "no occurrence known", never a guessed date.
func occurrenceContaining(def Definition, year int, civil time.Time) (calendar.DateRange, bool) {
	ranges, err := def.Calculate(year)
	if err != nil {
		return calendar.DateRange{}, false
	}
	for _, rng := range ranges {
		if rng.Contains(civil) {
			return rng, true
		}
	}
	return calendar.DateRange{}, false
}
