// Command dategen enumerates computed holiday dates over a span of years.
//
// Usage:
//
//	go run ./cmd/dategen -from 2024 -to 2030
//	go run ./cmd/dategen -from 2024 -to 2035 -id diwali -json
//
// Intended for eyeballing the calculators against published calendars and
// for regenerating fixture data when the lookup-table holidays (Diwali,
// Holi) gain new years. Every run first verifies those tables' year-over-
// year lunar drift, so a mistyped entry fails loudly. Holidays whose
// calculator cannot produce a year are reported as unsupported rather
// than skipped silently.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lobbyware/holiday-engine/internal/calendar"
	"github.com/lobbyware/holiday-engine/internal/holiday"
)

func main() {
	from := flag.Int("from", calendar.MinYear, "First year to enumerate")
	to := flag.Int("to", calendar.MinYear+6, "Last year to enumerate (inclusive)")
	id := flag.String("id", "", "Limit output to one holiday id")
	asJSON := flag.Bool("json", false, "Emit JSON instead of a table")
	flag.Parse()

	if err := run(*from, *to, *id, *asJSON); err != nil {
		fmt.Fprintln(os.Stderr, "dategen:", err)
		os.Exit(1)
	}
}

type row struct {
	Year      int    `json:"year"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
	TotalDays int    `json:"totalDays,omitempty"`
	Err       string `json:"error,omitempty"`
}

func run(from, to int, onlyID string, asJSON bool) error {
	if from > to {
		return fmt.Errorf("from %d is after to %d", from, to)
	}
	if from < calendar.MinYear {
		return fmt.Errorf("from %d is before the supported minimum %d", from, calendar.MinYear)
	}

	// Refuse to emit anything from a table with a transcription slip.
	if err := calendar.VerifyHinduTables(); err != nil {
		return fmt.Errorf("table verification: %w", err)
	}

	registry := holiday.Default()

	var defs []holiday.Definition
	if onlyID != "" {
		def, ok := registry.ByID(onlyID)
		if !ok {
			return fmt.Errorf("unknown holiday id %q", onlyID)
		}
		defs = []holiday.Definition{def}
	} else {
		defs = registry.All()
	}

	var rows []row
	for year := from; year <= to; year++ {
		for _, def := range defs {
			ranges, err := def.Calculate(year)
			if err != nil {
				rows = append(rows, row{Year: year, ID: def.ID, Name: def.Name, Err: err.Error()})
				continue
			}
			for _, rng := range ranges {
				rows = append(rows, row{
					Year:      year,
					ID:        def.ID,
					Name:      def.Name,
					Start:     rng.Start.Format("2006-01-02"),
					End:       rng.End.Format("2006-01-02"),
					TotalDays: rng.TotalDays,
				})
			}
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tID\tSTART\tDAYS\tNOTE")
	for _, r := range rows {
		if r.Err != "" {
			fmt.Fprintf(w, "%d\t%s\t-\t-\t%s\n", r.Year, r.ID, r.Err)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t\n", r.Year, r.ID, r.Start, r.TotalDays)
	}
	return w.Flush()
}
