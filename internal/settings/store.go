package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when no settings row has been saved yet.
	ErrNotFound = errors.New("not found")
)

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Settings is the user-adjustable engine configuration.
type Settings struct {
	Timezone            string     `json:"timezone"`
	EnableHolidayThemes bool       `json:"enableHolidayThemes"`
	DisabledHolidays    []string   `json:"disabledHolidays"`
	PreviewHoliday      *string    `json:"previewHoliday,omitempty"`
	PreviewDay          *int       `json:"previewDay,omitempty"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// Defaults returns the settings used before any row has been saved.
func Defaults() Settings {
	return Settings{
		Timezone:            "America/New_York",
		EnableHolidayThemes: true,
		DisabledHolidays:    []string{},
	}
}

// DisabledSet converts the disabled holiday list into the set form the
// resolver consumes.
func (s Settings) DisabledSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.DisabledHolidays))
	for _, id := range s.DisabledHolidays {
		set[id] = struct{}{}
	}
	return set
}

// Load reads the settings row. Returns ErrNotFound when nothing has been
// saved yet; callers typically fall back to Defaults().
func (db *DB) Load(ctx context.Context) (*Settings, error) {
	query := `
		SELECT timezone, enable_holiday_themes, disabled_holidays,
			preview_holiday, preview_day, updated_at
		FROM settings
		WHERE id = 1
	`

	var (
		s            Settings
		enableInt    int
		disabledJSON string
		previewID    sql.NullString
		previewDay   sql.NullInt64
		updatedAt    sql.NullString
	)

	err := db.QueryRowContext(ctx, query).Scan(
		&s.Timezone,
		&enableInt,
		&disabledJSON,
		&previewID,
		&previewDay,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query settings: %w", err)
	}

	s.EnableHolidayThemes = enableInt != 0

	if err := json.Unmarshal([]byte(disabledJSON), &s.DisabledHolidays); err != nil {
		return nil, fmt.Errorf("unmarshal disabled holidays: %w", err)
	}
	if s.DisabledHolidays == nil {
		s.DisabledHolidays = []string{}
	}

	if previewID.Valid {
		s.PreviewHoliday = &previewID.String
	}
	if previewDay.Valid {
		d := int(previewDay.Int64)
		s.PreviewDay = &d
	}
	if t := parseTimestamp(updatedAt); t != nil {
		s.UpdatedAt = t
	}

	return &s, nil
}

// Save upserts the singleton settings row.
func (db *DB) Save(ctx context.Context, s *Settings) error {
	if s.DisabledHolidays == nil {
		s.DisabledHolidays = []string{}
	}
	disabledJSON, err := json.Marshal(s.DisabledHolidays)
	if err != nil {
		return fmt.Errorf("marshal disabled holidays: %w", err)
	}

	enableInt := 0
	if s.EnableHolidayThemes {
		enableInt = 1
	}

	query := `
		INSERT INTO settings (
			id, timezone, enable_holiday_themes, disabled_holidays,
			preview_holiday, preview_day, updated_at
		) VALUES (1, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			timezone = excluded.timezone,
			enable_holiday_themes = excluded.enable_holiday_themes,
			disabled_holidays = excluded.disabled_holidays,
			preview_holiday = excluded.preview_holiday,
			preview_day = excluded.preview_day,
			updated_at = datetime('now')
	`

	_, err = db.ExecContext(ctx, query,
		s.Timezone,
		enableInt,
		string(disabledJSON),
		s.PreviewHoliday,
		s.PreviewDay,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns nil if parsing fails.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, ns.String)
	if err == nil {
		return &t
	}

	t, err = time.Parse("2006-01-02 15:04:05", ns.String)
	if err == nil {
		return &t
	}

	return nil
}
