package holiday

import (
	"fmt"
	"sort"

	"github.com/lobbyware/holiday-engine/internal/calendar"
)

// Registry is the read-only holiday catalog. It is built once at process
// start and passed to consumers explicitly so tests can substitute a
// smaller one.
type Registry struct {
	defs []Definition
	byID map[string]*Definition
}

// NewRegistry builds a registry from definitions, rejecting duplicate ids.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		defs: make([]Definition, len(defs)),
		byID: make(map[string]*Definition, len(defs)),
	}
	copy(r.defs, defs)

	for i := range r.defs {
		d := &r.defs[i]
		if d.ID == "" {
			return nil, fmt.Errorf("holiday %q has empty id", d.Name)
		}
		if d.Calculate == nil {
			return nil, fmt.Errorf("holiday %q has no calculator", d.ID)
		}
		if d.Priority < 1 || d.Priority > 10 {
			return nil, fmt.Errorf("holiday %q priority %d outside 1..10", d.ID, d.Priority)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate holiday id %q", d.ID)
		}
		r.byID[d.ID] = d
	}

	return r, nil
}

// Default returns the full built-in catalog. It panics on a malformed
// catalog, which is a programming error caught by the registry tests.
func Default() *Registry {
	r, err := NewRegistry(catalog())
	if err != nil {
		panic(fmt.Sprintf("holiday: invalid built-in catalog: %v", err))
	}
	return r
}

// ByID looks up a definition. Disabled holidays are still found here;
// disabling only removes a holiday from auto-detection.
func (r *Registry) ByID(id string) (Definition, bool) {
	d, ok := r.byID[id]
	if !ok {
		return Definition{}, false
	}
	return *d, true
}

// Enabled returns every holiday eligible for auto-detection: catalog
// Enabled=true and not in the caller's disabled set.
func (r *Registry) Enabled(disabled map[string]struct{}) []Definition {
	out := make([]Definition, 0, len(r.defs))
	for _, d := range r.defs {
		if !d.Enabled {
			continue
		}
		if _, off := disabled[d.ID]; off {
			continue
		}
		out = append(out, d)
	}
	return out
}

// All returns every definition in catalog order.
func (r *Registry) All() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// ByCategory returns all definitions in a category.
func (r *Registry) ByCategory(c Category) []Definition {
	var out []Definition
	for _, d := range r.defs {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// AllIDs returns every catalog id, sorted.
func (r *Registry) AllIDs() []string {
	ids := make([]string, 0, len(r.defs))
	for _, d := range r.defs {
		ids = append(ids, d.ID)
	}
	sort.Strings(ids)
	return ids
}

// YearEntry pairs a definition with its computed occurrences in one year.
type YearEntry struct {
	Definition Definition           `json:"definition"`
	Ranges     []calendar.DateRange `json:"ranges"`
}

// InYear evaluates every enabled holiday's calculator for the year. Used
// by the admin enumeration surface. Holidays whose calculator reports an
// unsupported year are skipped rather than reported with a wrong date.
func (r *Registry) InYear(year int) []YearEntry {
	out := make([]YearEntry, 0, len(r.defs))
	for _, d := range r.defs {
		if !d.Enabled {
			continue
		}
		ranges, err := d.Calculate(year)
		if err != nil || len(ranges) == 0 {
			continue
		}
		out = append(out, YearEntry{Definition: d, Ranges: ranges})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Ranges[0].Start.Before(out[j].Ranges[0].Start)
	})
	return out
}
