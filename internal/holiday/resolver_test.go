package holiday

import (
	"testing"
	"time"

	"github.com/lobbyware/holiday-engine/internal/calendar"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}

// testRegistry builds a minimal registry so resolver behavior does not
// depend on the full catalog.
func testRegistry(t *testing.T, defs ...Definition) *Registry {
	t.Helper()
	r, err := NewRegistry(defs)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func fixedDef(id string, month time.Month, day, totalDays, priority int) Definition {
	return Definition{
		ID: id, Name: id, Type: TypeFixed, Category: CategoryObservance,
		Priority: priority, Enabled: true,
		Calculate: fixedDay(month, day, totalDays),
	}
}

func TestResolveNoHoliday(t *testing.T) {
	rv := NewResolver(Default())

	// August 12 2025 has nothing in the catalog.
	got := rv.Resolve(time.Date(2025, 8, 12, 15, 0, 0, 0, time.UTC), Config{})
	if got.IsHoliday {
		t.Fatalf("Resolve(plain day) = %+v, want no holiday", got)
	}
	if got.DayOfHoliday != 0 || got.TotalDays != 0 || got.Holiday != nil {
		t.Errorf("empty result not zeroed: %+v", got)
	}
}

func TestResolveFixedHoliday(t *testing.T) {
	rv := NewResolver(Default())

	got := rv.Resolve(time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC), Config{})
	if !got.IsHoliday || got.Holiday == nil {
		t.Fatalf("Resolve(July 4) found nothing")
	}
	if got.Holiday.ID != "independence-day" {
		t.Errorf("Resolve(July 4).ID = %q, want independence-day", got.Holiday.ID)
	}
	if got.DayOfHoliday != 1 || got.TotalDays != 1 {
		t.Errorf("day %d/%d, want 1/1", got.DayOfHoliday, got.TotalDays)
	}
}

// A holiday starting at local midnight is active at that instant even
// though UTC is hours ahead.
func TestResolveTimezoneBoundary(t *testing.T) {
	la := mustLocation(t, "America/Los_Angeles")
	rv := NewResolver(Default())

	// 00:30 December 25 in Los Angeles.
	instant := time.Date(2024, 12, 25, 0, 30, 0, 0, la)
	got := rv.Resolve(instant, Config{Location: la})
	if !got.IsHoliday || got.Holiday.ID != ChristmasID {
		t.Fatalf("Resolve(00:30 Dec 25 LA) = %+v, want christmas", got)
	}

	// The same instant resolved in UTC is still December 25 08:30, also
	// Christmas; the discriminating case is the evening before: 20:00
	// December 24 local is December 25 in UTC but must resolve to
	// Christmas Eve locally.
	eve := time.Date(2024, 12, 24, 20, 0, 0, 0, la)
	got = rv.Resolve(eve, Config{Location: la})
	if !got.IsHoliday || got.Holiday.ID != "christmas-eve" {
		t.Fatalf("Resolve(20:00 Dec 24 LA) = %+v, want christmas-eve", got)
	}
}

func TestResolvePriorityTieBreak(t *testing.T) {
	low := fixedDef("aaa-low", time.March, 3, 1, 5)
	high := fixedDef("zzz-high", time.March, 3, 1, 8)
	// Registry order deliberately lists the low-priority entry first.
	rv := NewResolver(testRegistry(t, low, high))

	got := rv.Resolve(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), Config{})
	if !got.IsHoliday || got.Holiday.ID != "zzz-high" {
		t.Fatalf("overlap winner = %+v, want zzz-high (priority 8)", got)
	}
}

// Equal priorities fall back to the smallest id, independent of registry
// order.
func TestResolveEqualPriorityLexicographic(t *testing.T) {
	b := fixedDef("bravo", time.March, 3, 1, 5)
	a := fixedDef("alpha", time.March, 3, 1, 5)

	for _, defs := range [][]Definition{{b, a}, {a, b}} {
		rv := NewResolver(testRegistry(t, defs...))
		got := rv.Resolve(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), Config{})
		if !got.IsHoliday || got.Holiday.ID != "alpha" {
			t.Fatalf("equal-priority winner = %+v, want alpha", got)
		}
	}
}

func TestResolveDisabled(t *testing.T) {
	rv := NewResolver(Default())
	cfg := Config{Disabled: map[string]struct{}{ChristmasID: {}}}

	got := rv.Resolve(time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC), cfg)
	if got.IsHoliday && got.Holiday.ID == ChristmasID {
		t.Fatalf("disabled christmas still resolved")
	}

	// Disabling is not deletion: the definition stays addressable.
	if _, ok := Default().ByID(ChristmasID); !ok {
		t.Errorf("ByID(christmas) not found after disable")
	}
}

func TestResolvePreviewOverride(t *testing.T) {
	rv := NewResolver(Default())
	cfg := Config{PreviewID: "hanukkah", PreviewDay: 3}

	// Real date is mid-August; preview wins regardless.
	got := rv.Resolve(time.Date(2025, 8, 12, 12, 0, 0, 0, time.UTC), cfg)
	if !got.IsHoliday || got.Holiday.ID != "hanukkah" {
		t.Fatalf("preview resolve = %+v, want hanukkah", got)
	}
	if got.DayOfHoliday != 3 {
		t.Errorf("preview day = %d, want 3", got.DayOfHoliday)
	}
	if got.TotalDays != 8 {
		t.Errorf("preview totalDays = %d, want 8", got.TotalDays)
	}

	// Preview day beyond the span clamps instead of failing.
	cfg.PreviewDay = 12
	if got := rv.Resolve(time.Date(2025, 8, 12, 12, 0, 0, 0, time.UTC), cfg); got.DayOfHoliday != 8 {
		t.Errorf("clamped preview day = %d, want 8", got.DayOfHoliday)
	}

	// Unknown preview id resolves to nothing rather than erroring.
	cfg = Config{PreviewID: "nonexistent", PreviewDay: 1}
	if got := rv.Resolve(time.Now(), cfg); got.IsHoliday {
		t.Errorf("preview of unknown id = %+v, want none", got)
	}
}

// New Year's Day resolution on January 1 must also consider the previous
// year's calculators (Hanukkah can reach into January).
func TestResolveYearBoundary(t *testing.T) {
	rv := NewResolver(Default())

	// Hanukkah 5785 runs Dec 26 2024 .. Jan 2 2025. On Jan 2 2025 the
	// only active holiday comes from the 2024 evaluation.
	got := rv.Resolve(time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC), Config{})
	if !got.IsHoliday || got.Holiday.ID != "hanukkah" {
		t.Fatalf("Resolve(Jan 2 2025) = %+v, want hanukkah day 8", got)
	}
	if got.DayOfHoliday != 8 {
		t.Errorf("Jan 2 2025 hanukkah day = %d, want 8", got.DayOfHoliday)
	}

	// January 1 overlaps Hanukkah day 7 and New Year's Day; New Year's
	// Day wins on priority.
	got = rv.Resolve(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), Config{})
	if !got.IsHoliday || got.Holiday.ID != "new-years-day" {
		t.Fatalf("Resolve(Jan 1 2025) = %+v, want new-years-day", got)
	}
}

func TestResolveMultiDayProgression(t *testing.T) {
	rv := NewResolver(Default())

	// Hanukkah 5788: Dec 25 2027 .. Jan 1 2028. Christmas outranks it on
	// Dec 25, so progression is observable from day 2 on.
	for day := 2; day <= 7; day++ {
		at := time.Date(2027, 12, 24+day, 9, 0, 0, 0, time.UTC)
		got := rv.Resolve(at, Config{})
		if !got.IsHoliday || got.Holiday.ID != "hanukkah" {
			t.Fatalf("Resolve(%v) = %+v, want hanukkah", at, got)
		}
		if got.DayOfHoliday != day {
			t.Errorf("Resolve(%v) day = %d, want %d", at, got.DayOfHoliday, day)
		}
		if got.TotalDays != 8 {
			t.Errorf("Resolve(%v) totalDays = %d, want 8", at, got.TotalDays)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	rv := NewResolver(Default())
	at := time.Date(2025, 11, 27, 13, 0, 0, 0, time.UTC)

	first := rv.Resolve(at, Config{})
	second := rv.Resolve(at, Config{})
	if first.Holiday.ID != second.Holiday.ID ||
		first.DayOfHoliday != second.DayOfHoliday ||
		first.TotalDays != second.TotalDays {
		t.Fatalf("resolution not idempotent: %+v vs %+v", first, second)
	}
	if first.Holiday.ID != "thanksgiving" {
		t.Errorf("Nov 27 2025 = %q, want thanksgiving", first.Holiday.ID)
	}
}

func TestUnsupportedYearSkipsTableHolidays(t *testing.T) {
	rv := NewResolver(Default())

	// 2050 is past the Hindu tables. Resolution must not invent a
	// Diwali; a fixed holiday on the same date still works.
	got := rv.Resolve(time.Date(2050, 10, 31, 12, 0, 0, 0, time.UTC), Config{})
	if !got.IsHoliday || got.Holiday.ID != "halloween" {
		t.Fatalf("Resolve(Oct 31 2050) = %+v, want halloween", got)
	}

	_, err := calendar.Diwali(2050)
	if err == nil {
		t.Fatalf("Diwali(2050) succeeded, want ErrUnsupportedYear")
	}
}
