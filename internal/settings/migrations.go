package settings

// migrationsSQL contains all database migrations, applied in order by
// version number. Each migration should be idempotent.
var migrationsSQL = map[int]string{
	1: migrationV1Settings,
}

// migrationV1Settings creates the single-row settings table.
//
// The engine serves one kiosk, so settings are a singleton: the id
// column is constrained to 1 and writes are upserts against that row.
// disabled_holidays is a JSON array of holiday ids; preview_holiday and
// preview_day are null unless a preview override is active.
const migrationV1Settings = `
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	timezone TEXT NOT NULL DEFAULT 'America/New_York',
	enable_holiday_themes INTEGER NOT NULL DEFAULT 1,
	disabled_holidays TEXT NOT NULL DEFAULT '[]',
	preview_holiday TEXT,
	preview_day INTEGER,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`
