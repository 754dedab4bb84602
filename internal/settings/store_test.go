package settings

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestLoadBeforeSave(t *testing.T) {
	db := testDB(t)

	_, err := db.Load(context.Background())
	if !IsNotFound(err) {
		t.Errorf("Load on empty table: err = %v, want ErrNotFound", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	previewID := "hanukkah"
	previewDay := 3
	in := Settings{
		Timezone:            "America/Los_Angeles",
		EnableHolidayThemes: true,
		DisabledHolidays:    []string{"april-fools-day", "super-bowl-sunday"},
		PreviewHoliday:      &previewID,
		PreviewDay:          &previewDay,
	}
	if err := db.Save(ctx, &in); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Timezone != in.Timezone {
		t.Errorf("timezone = %q, want %q", got.Timezone, in.Timezone)
	}
	if !got.EnableHolidayThemes {
		t.Error("enable_holiday_themes not persisted")
	}
	if len(got.DisabledHolidays) != 2 || got.DisabledHolidays[0] != "april-fools-day" {
		t.Errorf("disabled holidays = %v", got.DisabledHolidays)
	}
	if got.PreviewHoliday == nil || *got.PreviewHoliday != "hanukkah" {
		t.Errorf("preview holiday = %v", got.PreviewHoliday)
	}
	if got.PreviewDay == nil || *got.PreviewDay != 3 {
		t.Errorf("preview day = %v", got.PreviewDay)
	}
	if got.UpdatedAt == nil {
		t.Error("updated_at not set")
	}
}

func TestSaveUpserts(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	first := Defaults()
	if err := db.Save(ctx, &first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := Settings{
		Timezone:            "Europe/London",
		EnableHolidayThemes: false,
		DisabledHolidays:    []string{"christmas"},
	}
	if err := db.Save(ctx, &second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Timezone != "Europe/London" {
		t.Errorf("timezone after upsert = %q", got.Timezone)
	}
	if got.EnableHolidayThemes {
		t.Error("enable_holiday_themes should be false after upsert")
	}
	if got.PreviewHoliday != nil {
		t.Errorf("preview holiday should be cleared, got %v", *got.PreviewHoliday)
	}
}

func TestDisabledSet(t *testing.T) {
	s := Settings{DisabledHolidays: []string{"christmas", "halloween"}}
	set := s.DisabledSet()
	if len(set) != 2 {
		t.Fatalf("set size = %d, want 2", len(set))
	}
	if _, ok := set["christmas"]; !ok {
		t.Error("christmas missing from set")
	}
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.Timezone != "America/New_York" {
		t.Errorf("default timezone = %q", d.Timezone)
	}
	if !d.EnableHolidayThemes {
		t.Error("themes should default to enabled")
	}
	if d.DisabledHolidays == nil {
		t.Error("disabled holidays should be an empty slice, not nil")
	}
}
