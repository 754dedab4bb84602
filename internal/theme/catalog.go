package theme

// Catalog is a read-only theme lookup with a guaranteed fallback. Like
// the holiday registry it is compile-time constant data exposed as an
// injectable value so tests can swap in a smaller set.
type Catalog struct {
	themes   map[string]Theme
	fallback Theme
}

// NewCatalog builds a catalog over the given themes with the given
// fallback.
func NewCatalog(themes map[string]Theme, fallback Theme) *Catalog {
	m := make(map[string]Theme, len(themes))
	for id, t := range themes {
		m[id] = t
	}
	return &Catalog{themes: m, fallback: fallback}
}

// Default returns the built-in theme catalog.
func Default() *Catalog {
	return NewCatalog(builtinThemes, defaultTheme)
}

// Theme looks up the descriptor for a holiday id. A miss is not an
// error; callers fall back to Fallback().
func (c *Catalog) Theme(id string) (Theme, bool) {
	t, ok := c.themes[id]
	return t, ok
}

// Resolve returns the holiday's theme or the fallback when the id is
// unknown or empty.
func (c *Catalog) Resolve(id string) Theme {
	if t, ok := c.themes[id]; ok {
		return t
	}
	return c.fallback
}

// Fallback returns the always-valid default theme.
func (c *Catalog) Fallback() Theme {
	return c.fallback
}

// defaultTheme is used when no holiday is active or a holiday carries no
// theme entry. Every field is populated so render code never branches on
// missing values.
var defaultTheme = Theme{
	HolidayID: "",
	Colors: ColorPalette{
		Primary: "#3b82f6", Secondary: "#64748b", Accent: "#22d3ee",
		Background: "#0f172a", Text: "#f1f5f9",
	},
	Particles: Particles{
		Shapes: []string{"dot"},
		Colors: []string{"#3b82f6", "#22d3ee"},
		Count:  12, Speed: 0.4,
	},
	Sound:       "ambient-default",
	Decorations: Decorations{Icon: "👋"},
}

var builtinThemes = map[string]Theme{
	"new-years-day": {
		HolidayID: "new-years-day",
		Colors: ColorPalette{
			Primary: "#fbbf24", Secondary: "#a78bfa", Accent: "#f472b6",
			Background: "#1e1b4b", Text: "#fef3c7", Glow: "#fde68a",
		},
		Particles: Particles{
			Shapes: []string{"confetti", "star"},
			Colors: []string{"#fbbf24", "#f472b6", "#60a5fa"},
			Count:  60, Speed: 1.2,
		},
		Sound: "fanfare",
		Quote: QuoteTransform{Prefix: "🎉 ", Suffix: " 🎉"},
		Decorations: Decorations{
			Overlay: "fireworks", Icon: "🎆",
		},
	},
	"mlk-day": {
		HolidayID: "mlk-day",
		Colors: ColorPalette{
			Primary: "#b91c1c", Secondary: "#1d4ed8", Accent: "#fcd34d",
			Background: "#111827", Text: "#f9fafb",
		},
		Particles: Particles{
			Shapes: []string{"dot"},
			Colors: []string{"#b91c1c", "#1d4ed8"},
			Count:  8, Speed: 0.3,
		},
		Sound:       "ambient-default",
		Quote:       QuoteTransform{Categories: []string{"justice", "hope"}},
		Decorations: Decorations{Icon: "🕊️"},
		Respectful:  true,
	},
	"lunar-new-year": {
		HolidayID: "lunar-new-year",
		Colors: ColorPalette{
			Primary: "#dc2626", Secondary: "#b45309", Accent: "#fbbf24",
			Background: "#450a0a", Text: "#fef2f2", Glow: "#f59e0b",
		},
		Particles: Particles{
			Shapes: []string{"lantern", "coin"},
			Colors: []string{"#dc2626", "#fbbf24"},
			Count:  40, Speed: 0.8,
		},
		Sound: "gong",
		Quote: QuoteTransform{Prefix: "🧧 ", Suffix: " 🏮"},
		Decorations: Decorations{
			Overlay: "lanterns", Icon: "🐉",
			ProgressionEmoji: []string{"🏮", "🧧", "🐉", "🎋", "🎆", "🥟", "🌕"},
		},
	},
	"super-bowl-sunday": {
		HolidayID: "super-bowl-sunday",
		Colors: ColorPalette{
			Primary: "#65a30d", Secondary: "#78350f", Accent: "#fde047",
			Background: "#14532d", Text: "#f7fee7",
		},
		Particles: Particles{
			Shapes: []string{"football"},
			Colors: []string{"#78350f", "#fde047"},
			Count:  20, Speed: 1.0,
		},
		Sound:       "stadium",
		Quote:       QuoteTransform{Prefix: "🏈 "},
		Decorations: Decorations{Icon: "🏈"},
	},
	"valentines-day": {
		HolidayID: "valentines-day",
		Colors: ColorPalette{
			Primary: "#e11d48", Secondary: "#f472b6", Accent: "#fda4af",
			Background: "#4c0519", Text: "#fff1f2", Glow: "#fb7185",
		},
		Particles: Particles{
			Shapes: []string{"heart"},
			Colors: []string{"#e11d48", "#f472b6", "#fda4af"},
			Count:  35, Speed: 0.6,
		},
		Sound:       "chimes-soft",
		Quote:       QuoteTransform{Prefix: "💘 ", Suffix: " 💘"},
		Decorations: Decorations{Overlay: "hearts", Icon: "💝"},
	},
	"presidents-day": {
		HolidayID: "presidents-day",
		Colors: ColorPalette{
			Primary: "#1d4ed8", Secondary: "#b91c1c", Accent: "#f8fafc",
			Background: "#172554", Text: "#eff6ff",
		},
		Particles: Particles{
			Shapes: []string{"star"},
			Colors: []string{"#b91c1c", "#f8fafc", "#1d4ed8"},
			Count:  15, Speed: 0.5,
		},
		Sound:       "ambient-default",
		Decorations: Decorations{Icon: "🇺🇸"},
	},
	"pi-day": {
		HolidayID: "pi-day",
		Colors: ColorPalette{
			Primary: "#7c3aed", Secondary: "#a78bfa", Accent: "#fbbf24",
			Background: "#2e1065", Text: "#f5f3ff",
		},
		Particles: Particles{
			Shapes: []string{"pi", "digit"},
			Colors: []string{"#a78bfa", "#fbbf24"},
			Count:  31, Speed: 0.4,
		},
		Sound:       "blips",
		Quote:       QuoteTransform{Suffix: " 🥧"},
		Decorations: Decorations{Icon: "🥧"},
	},
	"st-patricks-day": {
		HolidayID: "st-patricks-day",
		Colors: ColorPalette{
			Primary: "#16a34a", Secondary: "#15803d", Accent: "#fbbf24",
			Background: "#052e16", Text: "#f0fdf4", Glow: "#4ade80",
		},
		Particles: Particles{
			Shapes: []string{"clover"},
			Colors: []string{"#16a34a", "#4ade80", "#fbbf24"},
			Count:  30, Speed: 0.7,
		},
		Sound:       "jig",
		Quote:       QuoteTransform{Prefix: "🍀 ", Suffix: " 🍀"},
		Decorations: Decorations{Overlay: "rainbow", Icon: "☘️"},
	},
	"holi": {
		HolidayID: "holi",
		Colors: ColorPalette{
			Primary: "#ec4899", Secondary: "#8b5cf6", Accent: "#22d3ee",
			Background: "#fdf4ff", Text: "#581c87", Glow: "#f0abfc",
		},
		Particles: Particles{
			Shapes: []string{"splash", "powder"},
			Colors: []string{"#ec4899", "#8b5cf6", "#22d3ee", "#facc15", "#4ade80"},
			Count:  70, Speed: 1.4,
		},
		Sound:       "dhol",
		Quote:       QuoteTransform{Prefix: "🎨 "},
		Decorations: Decorations{Overlay: "color-burst", Icon: "🎨"},
	},
	"purim": {
		HolidayID: "purim",
		Colors: ColorPalette{
			Primary: "#9333ea", Secondary: "#f59e0b", Accent: "#34d399",
			Background: "#3b0764", Text: "#faf5ff",
		},
		Particles: Particles{
			Shapes: []string{"mask", "confetti"},
			Colors: []string{"#9333ea", "#f59e0b", "#34d399"},
			Count:  45, Speed: 1.1,
		},
		Sound:       "gragger",
		Quote:       QuoteTransform{Prefix: "🎭 "},
		Decorations: Decorations{Icon: "🎭"},
	},
	"good-friday": {
		HolidayID: "good-friday",
		Colors: ColorPalette{
			Primary: "#7c2d12", Secondary: "#57534e", Accent: "#a8a29e",
			Background: "#1c1917", Text: "#fafaf9",
		},
		Particles: Particles{
			Shapes: []string{"dot"},
			Colors: []string{"#57534e"},
			Count:  5, Speed: 0.2,
		},
		Sound:       "silence",
		Decorations: Decorations{Icon: "✝️"},
		Respectful:  true,
	},
	"easter": {
		HolidayID: "easter",
		Colors: ColorPalette{
			Primary: "#f472b6", Secondary: "#a3e635", Accent: "#fde047",
			Background: "#fefce8", Text: "#4d7c0f", Glow: "#fef08a",
		},
		Particles: Particles{
			Shapes: []string{"egg", "flower"},
			Colors: []string{"#f472b6", "#a3e635", "#93c5fd", "#fde047"},
			Count:  35, Speed: 0.6,
		},
		Sound:       "birdsong",
		Quote:       QuoteTransform{Prefix: "🐣 "},
		Decorations: Decorations{Overlay: "spring", Icon: "🐰"},
	},
	"april-fools-day": {
		HolidayID: "april-fools-day",
		Colors: ColorPalette{
			Primary: "#f97316", Secondary: "#14b8a6", Accent: "#e879f9",
			Background: "#431407", Text: "#fff7ed",
		},
		Particles: Particles{
			Shapes: []string{"question", "swirl"},
			Colors: []string{"#f97316", "#14b8a6", "#e879f9"},
			Count:  40, Speed: 1.5,
		},
		Sound: "kazoo",
		Quote: QuoteTransform{WelcomeOverride: "Nothing suspicious here. Welcome!"},
		Decorations: Decorations{
			Overlay: "upside-down", Icon: "🃏",
		},
	},
	"earth-day": {
		HolidayID: "earth-day",
		Colors: ColorPalette{
			Primary: "#16a34a", Secondary: "#0ea5e9", Accent: "#84cc16",
			Background: "#022c22", Text: "#ecfdf5",
		},
		Particles: Particles{
			Shapes: []string{"leaf"},
			Colors: []string{"#16a34a", "#84cc16"},
			Count:  25, Speed: 0.5,
		},
		Sound:       "forest",
		Quote:       QuoteTransform{Suffix: " 🌍"},
		Decorations: Decorations{Icon: "🌍"},
	},
	"passover": {
		HolidayID: "passover",
		Colors: ColorPalette{
			Primary: "#2563eb", Secondary: "#93c5fd", Accent: "#fbbf24",
			Background: "#1e3a8a", Text: "#eff6ff",
		},
		Particles: Particles{
			Shapes: []string{"star"},
			Colors: []string{"#93c5fd", "#fbbf24"},
			Count:  15, Speed: 0.4,
		},
		Sound:       "chimes-soft",
		Quote:       QuoteTransform{Prefix: "✡️ "},
		Decorations: Decorations{Icon: "🍷"},
	},
	"eid-al-fitr": {
		HolidayID: "eid-al-fitr",
		Colors: ColorPalette{
			Primary: "#059669", Secondary: "#fbbf24", Accent: "#f8fafc",
			Background: "#064e3b", Text: "#ecfdf5", Glow: "#34d399",
		},
		Particles: Particles{
			Shapes: []string{"crescent", "star"},
			Colors: []string{"#fbbf24", "#f8fafc"},
			Count:  30, Speed: 0.6,
		},
		Sound:       "chimes-soft",
		Quote:       QuoteTransform{Prefix: "🌙 ", Suffix: " 🌙"},
		Decorations: Decorations{Overlay: "crescent", Icon: "🌙"},
	},
	"star-wars-day": {
		HolidayID: "star-wars-day",
		Colors: ColorPalette{
			Primary: "#facc15", Secondary: "#0ea5e9", Accent: "#ef4444",
			Background: "#030712", Text: "#fefce8", Glow: "#38bdf8",
		},
		Particles: Particles{
			Shapes: []string{"star", "saber"},
			Colors: []string{"#facc15", "#0ea5e9", "#ef4444"},
			Count:  50, Speed: 1.8,
		},
		Sound: "hum",
		Quote: QuoteTransform{WelcomeOverride: "May the Fourth be with you."},
		Decorations: Decorations{
			Overlay: "starfield", Icon: "🌌",
		},
	},
	"cinco-de-mayo": {
		HolidayID: "cinco-de-mayo",
		Colors: ColorPalette{
			Primary: "#16a34a", Secondary: "#dc2626", Accent: "#f8fafc",
			Background: "#14532d", Text: "#f0fdf4",
		},
		Particles: Particles{
			Shapes: []string{"confetti"},
			Colors: []string{"#16a34a", "#dc2626", "#f8fafc"},
			Count:  45, Speed: 1.0,
		},
		Sound:       "mariachi",
		Quote:       QuoteTransform{Prefix: "🎊 "},
		Decorations: Decorations{Overlay: "papel-picado", Icon: "🪅"},
	},
	"mothers-day": {
		HolidayID: "mothers-day",
		Colors: ColorPalette{
			Primary: "#db2777", Secondary: "#f9a8d4", Accent: "#a21caf",
			Background: "#fdf2f8", Text: "#831843",
		},
		Particles: Particles{
			Shapes: []string{"flower", "heart"},
			Colors: []string{"#db2777", "#f9a8d4"},
			Count:  25, Speed: 0.5,
		},
		Sound:       "chimes-soft",
		Quote:       QuoteTransform{Suffix: " 💐"},
		Decorations: Decorations{Icon: "💐"},
	},
	"memorial-day": {
		HolidayID: "memorial-day",
		Colors: ColorPalette{
			Primary: "#1d4ed8", Secondary: "#b91c1c", Accent: "#f8fafc",
			Background: "#0f172a", Text: "#f8fafc",
		},
		Particles: Particles{
			Shapes: []string{"star"},
			Colors: []string{"#b91c1c", "#f8fafc", "#1d4ed8"},
			Count:  8, Speed: 0.3,
		},
		Sound:       "taps",
		Quote:       QuoteTransform{Categories: []string{"remembrance", "service"}},
		Decorations: Decorations{Icon: "🎗️"},
		Respectful:  true,
	},
	"fathers-day": {
		HolidayID: "fathers-day",
		Colors: ColorPalette{
			Primary: "#0e7490", Secondary: "#475569", Accent: "#fbbf24",
			Background: "#083344", Text: "#ecfeff",
		},
		Particles: Particles{
			Shapes: []string{"dot"},
			Colors: []string{"#0e7490", "#fbbf24"},
			Count:  15, Speed: 0.4,
		},
		Sound:       "ambient-default",
		Quote:       QuoteTransform{Suffix: " 👔"},
		Decorations: Decorations{Icon: "👔"},
	},
	"juneteenth": {
		HolidayID: "juneteenth",
		Colors: ColorPalette{
			Primary: "#dc2626", Secondary: "#16a34a", Accent: "#fbbf24",
			Background: "#111827", Text: "#fef2f2",
		},
		Particles: Particles{
			Shapes: []string{"star"},
			Colors: []string{"#dc2626", "#16a34a", "#fbbf24"},
			Count:  20, Speed: 0.6,
		},
		Sound:       "jazz",
		Quote:       QuoteTransform{Categories: []string{"freedom", "hope"}},
		Decorations: Decorations{Icon: "✊🏾"},
	},
	"eid-al-adha": {
		HolidayID: "eid-al-adha",
		Colors: ColorPalette{
			Primary: "#0d9488", Secondary: "#fbbf24", Accent: "#f8fafc",
			Background: "#042f2e", Text: "#f0fdfa", Glow: "#2dd4bf",
		},
		Particles: Particles{
			Shapes: []string{"crescent", "star"},
			Colors: []string{"#fbbf24", "#f8fafc"},
			Count:  30, Speed: 0.6,
		},
		Sound:       "chimes-soft",
		Quote:       QuoteTransform{Prefix: "🌙 ", Suffix: " 🌙"},
		Decorations: Decorations{Overlay: "crescent", Icon: "🕌"},
	},
	"independence-day": {
		HolidayID: "independence-day",
		Colors: ColorPalette{
			Primary: "#b91c1c", Secondary: "#1d4ed8", Accent: "#f8fafc",
			Background: "#0c0a3e", Text: "#f8fafc", Glow: "#ef4444",
		},
		Particles: Particles{
			Shapes: []string{"firework", "star"},
			Colors: []string{"#b91c1c", "#f8fafc", "#1d4ed8"},
			Count:  55, Speed: 1.3,
		},
		Sound:       "fireworks",
		Quote:       QuoteTransform{Prefix: "🎆 ", Suffix: " 🎆"},
		Decorations: Decorations{Overlay: "fireworks", Icon: "🇺🇸"},
	},
	"labor-day": {
		HolidayID: "labor-day",
		Colors: ColorPalette{
			Primary: "#ca8a04", Secondary: "#475569", Accent: "#f59e0b",
			Background: "#1c1917", Text: "#fafaf9",
		},
		Particles: Particles{
			Shapes: []string{"gear"},
			Colors: []string{"#ca8a04", "#94a3b8"},
			Count:  12, Speed: 0.4,
		},
		Sound:       "ambient-default",
		Decorations: Decorations{Icon: "🛠️"},
	},
	"rosh-hashanah": {
		HolidayID: "rosh-hashanah",
		Colors: ColorPalette{
			Primary: "#d97706", Secondary: "#fbbf24", Accent: "#b45309",
			Background: "#451a03", Text: "#fffbeb",
		},
		Particles: Particles{
			Shapes: []string{"apple", "star"},
			Colors: []string{"#d97706", "#fbbf24"},
			Count:  20, Speed: 0.5,
		},
		Sound: "shofar",
		Quote: QuoteTransform{Prefix: "🍎 ", Suffix: " 🍯"},
		Decorations: Decorations{
			Icon:             "🍯",
			ProgressionEmoji: []string{"🍎", "🍯"},
		},
	},
	"yom-kippur": {
		HolidayID: "yom-kippur",
		Colors: ColorPalette{
			Primary: "#f8fafc", Secondary: "#94a3b8", Accent: "#cbd5e1",
			Background: "#1e293b", Text: "#f8fafc",
		},
		Particles: Particles{
			Shapes: []string{"dot"},
			Colors: []string{"#f8fafc"},
			Count:  4, Speed: 0.15,
		},
		Sound:       "silence",
		Quote:       QuoteTransform{Categories: []string{"reflection"}},
		Decorations: Decorations{Icon: "🤍"},
		Respectful:  true,
	},
	"halloween": {
		HolidayID: "halloween",
		Colors: ColorPalette{
			Primary: "#ea580c", Secondary: "#7c3aed", Accent: "#84cc16",
			Background: "#0c0a09", Text: "#fff7ed", Glow: "#f97316",
		},
		Particles: Particles{
			Shapes: []string{"bat", "ghost", "leaf"},
			Colors: []string{"#ea580c", "#7c3aed", "#44403c"},
			Count:  45, Speed: 0.9,
		},
		Sound: "spooky",
		Quote: QuoteTransform{Prefix: "🎃 ", Suffix: " 👻"},
		Decorations: Decorations{
			Overlay: "cobwebs", Icon: "🎃",
		},
	},
	"diwali": {
		HolidayID: "diwali",
		Colors: ColorPalette{
			Primary: "#f59e0b", Secondary: "#dc2626", Accent: "#fde047",
			Background: "#1c0a00", Text: "#fffbeb", Glow: "#fbbf24",
		},
		Particles: Particles{
			Shapes: []string{"diya", "sparkle"},
			Colors: []string{"#f59e0b", "#fde047", "#fb923c"},
			Count:  50, Speed: 0.8,
		},
		Sound: "sitar",
		Quote: QuoteTransform{Prefix: "🪔 ", Suffix: " 🪔"},
		Decorations: Decorations{
			Overlay: "rangoli", Icon: "🪔",
			ProgressionEmoji: []string{"🪙", "🛁", "🪔", "🙏", "🤝"},
		},
	},
	"veterans-day": {
		HolidayID: "veterans-day",
		Colors: ColorPalette{
			Primary: "#1d4ed8", Secondary: "#b91c1c", Accent: "#f8fafc",
			Background: "#111827", Text: "#f8fafc",
		},
		Particles: Particles{
			Shapes: []string{"star"},
			Colors: []string{"#b91c1c", "#f8fafc", "#1d4ed8"},
			Count:  8, Speed: 0.3,
		},
		Sound:       "taps",
		Quote:       QuoteTransform{Categories: []string{"service", "gratitude"}},
		Decorations: Decorations{Icon: "🎖️"},
		Respectful:  true,
	},
	"thanksgiving": {
		HolidayID: "thanksgiving",
		Colors: ColorPalette{
			Primary: "#b45309", Secondary: "#dc2626", Accent: "#fbbf24",
			Background: "#431407", Text: "#fffbeb", Glow: "#f59e0b",
		},
		Particles: Particles{
			Shapes: []string{"leaf"},
			Colors: []string{"#b45309", "#dc2626", "#fbbf24"},
			Count:  35, Speed: 0.5,
		},
		Sound:       "acoustic",
		Quote:       QuoteTransform{Prefix: "🦃 ", Categories: []string{"gratitude"}},
		Decorations: Decorations{Overlay: "autumn", Icon: "🦃"},
	},
	"hanukkah": {
		HolidayID: "hanukkah",
		Colors: ColorPalette{
			Primary: "#2563eb", Secondary: "#f8fafc", Accent: "#fbbf24",
			Background: "#172554", Text: "#eff6ff", Glow: "#60a5fa",
		},
		Particles: Particles{
			Shapes: []string{"star", "dreidel"},
			Colors: []string{"#2563eb", "#f8fafc", "#fbbf24"},
			Count:  30, Speed: 0.6,
		},
		Sound: "klezmer",
		Quote: QuoteTransform{Prefix: "🕎 ", Suffix: " ✨"},
		Decorations: Decorations{
			Overlay: "candles", Icon: "🕎",
			// One glyph per night of candle lighting.
			ProgressionEmoji: []string{"🕯️", "🕯️🕯️", "🕯️🕯️🕯️", "🕯️🕯️🕯️🕯️", "🕯️🕯️🕯️🕯️🕯️", "🕯️🕯️🕯️🕯️🕯️🕯️", "🕯️🕯️🕯️🕯️🕯️🕯️🕯️", "🕎"},
		},
	},
	"christmas-eve": {
		HolidayID: "christmas-eve",
		Colors: ColorPalette{
			Primary: "#166534", Secondary: "#b91c1c", Accent: "#fbbf24",
			Background: "#052e16", Text: "#f0fdf4", Glow: "#fde047",
		},
		Particles: Particles{
			Shapes: []string{"snowflake", "star"},
			Colors: []string{"#f8fafc", "#fbbf24"},
			Count:  40, Speed: 0.5,
		},
		Sound:       "sleigh-bells",
		Quote:       QuoteTransform{Prefix: "🌟 ", Suffix: " 🌟"},
		Decorations: Decorations{Overlay: "snow", Icon: "🌟"},
	},
	"christmas": {
		HolidayID: "christmas",
		Colors: ColorPalette{
			Primary: "#b91c1c", Secondary: "#166534", Accent: "#fbbf24",
			Background: "#450a0a", Text: "#fef2f2", Glow: "#fde047",
		},
		Particles: Particles{
			Shapes: []string{"snowflake", "star"},
			Colors: []string{"#f8fafc", "#b91c1c", "#166534"},
			Count:  50, Speed: 0.6,
		},
		Sound:       "carols",
		Quote:       QuoteTransform{Prefix: "🎄 ", Suffix: " 🎄"},
		Decorations: Decorations{Overlay: "snow", Icon: "🎅"},
	},
	"new-years-eve": {
		HolidayID: "new-years-eve",
		Colors: ColorPalette{
			Primary: "#fbbf24", Secondary: "#18181b", Accent: "#e879f9",
			Background: "#09090b", Text: "#fafafa", Glow: "#fde68a",
		},
		Particles: Particles{
			Shapes: []string{"confetti", "sparkle"},
			Colors: []string{"#fbbf24", "#e879f9", "#38bdf8"},
			Count:  65, Speed: 1.4,
		},
		Sound:       "countdown",
		Quote:       QuoteTransform{Suffix: " 🥂"},
		Decorations: Decorations{Overlay: "fireworks", Icon: "🥂"},
	},
}
