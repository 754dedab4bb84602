package theme

import (
	"testing"

	"github.com/lobbyware/holiday-engine/internal/holiday"
)

func TestResolveFallback(t *testing.T) {
	c := Default()

	if _, ok := c.Theme("nonexistent-id"); ok {
		t.Error("Theme(\"nonexistent-id\") ok = true, want false")
	}

	got := c.Resolve("nonexistent-id")
	if got.HolidayID != "" {
		t.Errorf("Resolve fallback HolidayID = %q, want empty", got.HolidayID)
	}

	// The fallback must be fully populated so render code never has to
	// branch on missing values.
	if got.Colors.Primary == "" || got.Colors.Background == "" || got.Colors.Text == "" {
		t.Errorf("fallback palette incomplete: %+v", got.Colors)
	}
	if len(got.Particles.Shapes) == 0 || got.Particles.Count == 0 {
		t.Errorf("fallback particles incomplete: %+v", got.Particles)
	}
	if got.Sound == "" {
		t.Error("fallback sound is empty")
	}
}

func TestResolveKnown(t *testing.T) {
	c := Default()
	got := c.Resolve("christmas")
	if got.HolidayID != "christmas" {
		t.Errorf("Resolve(christmas).HolidayID = %q", got.HolidayID)
	}
	if got.Colors.Primary != "#b91c1c" {
		t.Errorf("christmas primary = %q, want #b91c1c", got.Colors.Primary)
	}
}

func TestApplyQuoteTransform(t *testing.T) {
	tests := []struct {
		name string
		q    QuoteTransform
		in   string
		want string
	}{
		{"prefix and suffix", QuoteTransform{Prefix: "🎄 ", Suffix: " 🎄"}, "Hello", "🎄 Hello 🎄"},
		{"prefix only", QuoteTransform{Prefix: "🏈 "}, "Game on", "🏈 Game on"},
		{"suffix only", QuoteTransform{Suffix: " 🥂"}, "Cheers", "Cheers 🥂"},
		{"no transform", QuoteTransform{}, "Plain", "Plain"},
		{"override ignores input", QuoteTransform{Prefix: "x", WelcomeOverride: "May the Fourth be with you."}, "Hello", "May the Fourth be with you."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyQuoteTransform(tt.in, Theme{Quote: tt.q})
			if got != tt.want {
				t.Errorf("ApplyQuoteTransform(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProgressionEmoji(t *testing.T) {
	c := Default()
	hanukkah := c.Resolve("hanukkah")

	if n := len(hanukkah.Decorations.ProgressionEmoji); n != 8 {
		t.Fatalf("hanukkah progression length = %d, want 8", n)
	}
	if got, ok := ProgressionEmoji(hanukkah, 1); !ok || got != "🕯️" {
		t.Errorf("day 1 = %q, %v", got, ok)
	}
	if got, ok := ProgressionEmoji(hanukkah, 8); !ok || got != "🕎" {
		t.Errorf("day 8 = %q, %v", got, ok)
	}
	if _, ok := ProgressionEmoji(hanukkah, 0); ok {
		t.Error("day 0 should be out of range")
	}
	if _, ok := ProgressionEmoji(hanukkah, 9); ok {
		t.Error("day 9 should be out of range")
	}

	// Single-day themes carry no progression at all.
	if _, ok := ProgressionEmoji(c.Resolve("christmas"), 1); ok {
		t.Error("christmas should have no progression emoji")
	}
}

func TestProgressionLengthsMatchDurations(t *testing.T) {
	// Multi-day holidays whose themes carry a progression sequence must
	// have one glyph per day.
	want := map[string]int{
		"hanukkah":       8,
		"lunar-new-year": 7,
		"diwali":         5,
		"rosh-hashanah":  2,
	}
	c := Default()
	for id, days := range want {
		th, ok := c.Theme(id)
		if !ok {
			t.Errorf("missing theme for %s", id)
			continue
		}
		if got := len(th.Decorations.ProgressionEmoji); got != days {
			t.Errorf("%s progression length = %d, want %d", id, got, days)
		}
	}
}

func TestEveryCatalogHolidayHasTheme(t *testing.T) {
	c := Default()
	for _, id := range holiday.Default().AllIDs() {
		if _, ok := c.Theme(id); !ok {
			t.Errorf("no theme for catalog holiday %s", id)
		}
	}
}

func TestRespectfulThemes(t *testing.T) {
	c := Default()
	for _, id := range []string{"yom-kippur", "memorial-day", "veterans-day", "good-friday"} {
		if th := c.Resolve(id); !th.Respectful {
			t.Errorf("%s should be marked respectful", id)
		}
	}
	if th := c.Resolve("halloween"); th.Respectful {
		t.Error("halloween should not be respectful")
	}
}
