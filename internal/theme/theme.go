// Package theme maps resolved holiday ids to presentation descriptors
// consumed by the kiosk rendering layer.
package theme

// ColorPalette holds the hex colors for one theme.
type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Glow       string `json:"glow,omitempty"`
}

// Particles describes the ambient particle effect.
type Particles struct {
	Shapes []string `json:"shapes"`
	Colors []string `json:"colors"`
	Count  int      `json:"count"`
	Speed  float64  `json:"speed"`
}

// QuoteTransform decorates the kiosk welcome text. WelcomeOverride, when
// set, replaces the text entirely and wins over Prefix/Suffix; Prefix and
// Suffix compose with each other. Categories optionally restricts which
// quote categories may be shown under this theme.
type QuoteTransform struct {
	Prefix          string   `json:"prefix,omitempty"`
	Suffix          string   `json:"suffix,omitempty"`
	WelcomeOverride string   `json:"welcomeOverride,omitempty"`
	Categories      []string `json:"categories,omitempty"`
}

// Decorations is the static overlay layer. ProgressionEmoji, when
// present, holds one glyph per day of a multi-day holiday (index day-1).
type Decorations struct {
	Overlay          string   `json:"overlay,omitempty"`
	Icon             string   `json:"icon,omitempty"`
	ProgressionEmoji []string `json:"progressionEmoji,omitempty"`
}

// Theme is the complete per-holiday presentation descriptor. Respectful
// marks solemn observances that render subdued: fewer particles, no
// celebratory animation.
type Theme struct {
	HolidayID   string         `json:"holidayId"`
	Colors      ColorPalette   `json:"colors"`
	Particles   Particles      `json:"particles"`
	Sound       string         `json:"sound"`
	Quote       QuoteTransform `json:"quote"`
	Decorations Decorations    `json:"decorations"`
	Respectful  bool           `json:"respectful"`
}

// ApplyQuoteTransform runs the theme's quote transform over text.
func ApplyQuoteTransform(text string, t Theme) string {
	if t.Quote.WelcomeOverride != "" {
		return t.Quote.WelcomeOverride
	}
	return t.Quote.Prefix + text + t.Quote.Suffix
}

// ProgressionEmoji returns the glyph for the given 1-based holiday day.
// The second return is false when the theme has no progression sequence
// or the day is out of range.
func ProgressionEmoji(t Theme, day int) (string, bool) {
	seq := t.Decorations.ProgressionEmoji
	if day < 1 || day > len(seq) {
		return "", false
	}
	return seq[day-1], true
}
