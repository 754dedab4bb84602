package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/lobbyware/holiday-engine/internal/config"
	"github.com/lobbyware/holiday-engine/internal/holiday"
	"github.com/lobbyware/holiday-engine/internal/settings"
	"github.com/lobbyware/holiday-engine/internal/theme"
)

// testEnv sets up a complete test environment with database, config,
// handlers, and router.
type testEnv struct {
	db       *settings.DB
	cfg      *config.Config
	handlers *Handlers
	router   http.Handler
	apiKey   string
}

// setupTest creates a fresh test environment.
func setupTest(t *testing.T) *testEnv {
	t.Helper()

	dbCfg := settings.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	db, err := settings.Open(dbCfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	apiKey := "test-api-key-32-characters-minimum-len"
	cfg := &config.Config{
		Port:             8080,
		Env:              config.EnvStaging, // forces auth on PUT
		DatabasePath:     ":memory:",
		Timezone:         "America/New_York",
		MidnightBufferMS: 2000,
		APIKey:           apiKey,
		LogLevel:         "error",
		LogFormat:        "text",
	}

	handlers := NewHandlers(db, holiday.Default(), theme.Default(), cfg)
	router := SetupRoutes(handlers, cfg, logger)

	t.Cleanup(func() {
		db.Close()
	})

	return &testEnv{
		db:       db,
		cfg:      cfg,
		handlers: handlers,
		router:   router,
		apiKey:   apiKey,
	}
}

// makeRequest is a helper to make HTTP requests with optional API key.
func makeRequest(method, path string, body interface{}, apiKey string) *http.Request {
	var bodyReader io.Reader
	if body != nil {
		jsonData, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonData)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	return req
}

// doRequest executes a request against the router and decodes the
// standard response envelope.
func (env *testEnv) doRequest(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
	return rec, resp
}

func dataMap(t *testing.T, resp Response) map[string]interface{} {
	t.Helper()
	m, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("response data is not an object: %T", resp.Data)
	}
	return m
}

func TestHealthCheck(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.doRequest(t, makeRequest("GET", "/health", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if dataMap(t, resp)["status"] != "healthy" {
		t.Errorf("status field = %v", dataMap(t, resp)["status"])
	}
}

func TestErrorEnvelopeCodes(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name     string
		path     string
		wantCode string
	}{
		{"unknown holiday", "/api/v1/holidays/not-a-holiday", CodeNotFound},
		{"bad year", "/api/v1/holidays/year/banana", CodeBadRequest},
		{"bad timestamp", "/api/v1/resolve?at=yesterday", CodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp := env.doRequest(t, makeRequest("GET", tt.path, nil, ""))
			if resp.Success {
				t.Fatal("success = true on error response")
			}
			if resp.Error == nil {
				t.Fatal("error field missing")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
		})
	}

	// Mutations without a key fail with the auth code.
	_, resp := env.doRequest(t, makeRequest("PUT", "/api/v1/settings",
		settings.Settings{Timezone: "UTC"}, ""))
	if resp.Error == nil || resp.Error.Code != CodeUnauthorized {
		t.Errorf("unauthenticated PUT error = %+v, want code %s", resp.Error, CodeUnauthorized)
	}
}

func TestRequestIDHeader(t *testing.T) {
	env := setupTest(t)

	rec, _ := env.doRequest(t, makeRequest("GET", "/health", nil, ""))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID response header not set")
	}
}

func TestListHolidays(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.doRequest(t, makeRequest("GET", "/api/v1/holidays", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataMap(t, resp)
	count, _ := data["count"].(float64)
	if count < 30 {
		t.Errorf("count = %v, want at least 30", count)
	}
}

func TestHolidaysInYear(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.doRequest(t, makeRequest("GET", "/api/v1/holidays/year/2025", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := dataMap(t, resp)
	if data["year"].(float64) != 2025 {
		t.Errorf("year = %v", data["year"])
	}

	// Bad years are rejected.
	rec, _ = env.doRequest(t, makeRequest("GET", "/api/v1/holidays/year/1999", nil, ""))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("year 1999 status = %d, want 400", rec.Code)
	}
	rec, _ = env.doRequest(t, makeRequest("GET", "/api/v1/holidays/year/banana", nil, ""))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric year status = %d, want 400", rec.Code)
	}
}

func TestGetHoliday(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.doRequest(t, makeRequest("GET", "/api/v1/holidays/christmas", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if dataMap(t, resp)["id"] != "christmas" {
		t.Errorf("id = %v", dataMap(t, resp)["id"])
	}

	rec, _ = env.doRequest(t, makeRequest("GET", "/api/v1/holidays/not-a-holiday", nil, ""))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown holiday status = %d, want 404", rec.Code)
	}
}

func TestGetHolidayTheme(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.doRequest(t, makeRequest("GET", "/api/v1/holidays/christmas/theme", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if dataMap(t, resp)["holidayId"] != "christmas" {
		t.Errorf("holidayId = %v", dataMap(t, resp)["holidayId"])
	}

	rec, _ = env.doRequest(t, makeRequest("GET", "/api/v1/holidays/not-a-holiday/theme", nil, ""))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown holiday theme status = %d, want 404", rec.Code)
	}
}

func TestResolveActiveHoliday(t *testing.T) {
	env := setupTest(t)

	// Noon UTC on July 4 is July 4 everywhere the default timezone cares
	// about.
	rec, resp := env.doRequest(t, makeRequest("GET", "/api/v1/resolve?at=2025-07-04T12:00:00Z", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataMap(t, resp)
	if data["active"] != true {
		t.Fatalf("active = %v, want true", data["active"])
	}
	hol := data["holiday"].(map[string]interface{})
	if hol["id"] != "independence-day" {
		t.Errorf("holiday id = %v, want independence-day", hol["id"])
	}
	if data["theme"] == nil {
		t.Error("theme missing from active resolution")
	}
}

func TestResolveQuietDay(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.doRequest(t, makeRequest("GET", "/api/v1/resolve?at=2025-08-12T15:00:00Z", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataMap(t, resp)
	if data["active"] != false {
		t.Errorf("active = %v, want false", data["active"])
	}
	// The fallback theme is still present so the kiosk renders.
	th := data["theme"].(map[string]interface{})
	if th["holidayId"] != "" {
		t.Errorf("fallback theme holidayId = %v, want empty", th["holidayId"])
	}
}

func TestResolveZodiacAnimal(t *testing.T) {
	env := setupTest(t)

	// Lunar New Year 2025 begins Jan 29: the Year of the Snake.
	rec, resp := env.doRequest(t, makeRequest("GET", "/api/v1/resolve?at=2025-01-29T12:00:00Z", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataMap(t, resp)
	hol, _ := data["holiday"].(map[string]interface{})
	if hol == nil || hol["id"] != "lunar-new-year" {
		t.Fatalf("holiday = %v, want lunar-new-year", data["holiday"])
	}
	if data["zodiacAnimal"] != "Snake" {
		t.Errorf("zodiacAnimal = %v, want Snake", data["zodiacAnimal"])
	}
}

func TestResolveBadTimestamp(t *testing.T) {
	env := setupTest(t)

	rec, _ := env.doRequest(t, makeRequest("GET", "/api/v1/resolve?at=yesterday", nil, ""))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	env := setupTest(t)

	// Defaults before any save.
	rec, resp := env.doRequest(t, makeRequest("GET", "/api/v1/settings", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if dataMap(t, resp)["timezone"] != "America/New_York" {
		t.Errorf("default timezone = %v", dataMap(t, resp)["timezone"])
	}

	update := settings.Settings{
		Timezone:            "America/Los_Angeles",
		EnableHolidayThemes: true,
		DisabledHolidays:    []string{"april-fools-day"},
	}
	rec, _ = env.doRequest(t, makeRequest("PUT", "/api/v1/settings", update, env.apiKey))
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200", rec.Code)
	}

	rec, resp = env.doRequest(t, makeRequest("GET", "/api/v1/settings", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if dataMap(t, resp)["timezone"] != "America/Los_Angeles" {
		t.Errorf("timezone after save = %v", dataMap(t, resp)["timezone"])
	}
}

func TestUpdateSettingsAuth(t *testing.T) {
	env := setupTest(t)

	update := settings.Settings{Timezone: "UTC", EnableHolidayThemes: true}

	rec, _ := env.doRequest(t, makeRequest("PUT", "/api/v1/settings", update, ""))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no key status = %d, want 401", rec.Code)
	}

	rec, _ = env.doRequest(t, makeRequest("PUT", "/api/v1/settings", update, "wrong-key"))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong key status = %d, want 401", rec.Code)
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	env := setupTest(t)

	previewID := "hanukkah"
	badPreview := "narnia-day"
	day := 3

	tests := []struct {
		name string
		body settings.Settings
	}{
		{"empty timezone", settings.Settings{}},
		{"unknown timezone", settings.Settings{Timezone: "Not/AZone"}},
		{"unknown disabled holiday", settings.Settings{
			Timezone: "UTC", DisabledHolidays: []string{"narnia-day"},
		}},
		{"unknown preview holiday", settings.Settings{
			Timezone: "UTC", PreviewHoliday: &badPreview,
		}},
		{"preview day without holiday", settings.Settings{
			Timezone: "UTC", PreviewDay: &day,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := env.doRequest(t, makeRequest("PUT", "/api/v1/settings", tt.body, env.apiKey))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}

	// A valid preview passes.
	rec, _ := env.doRequest(t, makeRequest("PUT", "/api/v1/settings", settings.Settings{
		Timezone: "UTC", EnableHolidayThemes: true,
		PreviewHoliday: &previewID, PreviewDay: &day,
	}, env.apiKey))
	if rec.Code != http.StatusOK {
		t.Errorf("valid preview status = %d, want 200", rec.Code)
	}
}

func TestResolveRespectsPreview(t *testing.T) {
	env := setupTest(t)

	previewID := "hanukkah"
	day := 3
	rec, _ := env.doRequest(t, makeRequest("PUT", "/api/v1/settings", settings.Settings{
		Timezone: "America/New_York", EnableHolidayThemes: true,
		PreviewHoliday: &previewID, PreviewDay: &day,
	}, env.apiKey))
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d", rec.Code)
	}

	// Preview wins even on a quiet summer day.
	rec, resp := env.doRequest(t, makeRequest("GET", "/api/v1/resolve?at=2025-08-12T15:00:00Z", nil, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := dataMap(t, resp)
	hol, _ := data["holiday"].(map[string]interface{})
	if hol == nil || hol["id"] != "hanukkah" {
		t.Fatalf("holiday = %v, want hanukkah", data["holiday"])
	}
	if data["dayOfHoliday"].(float64) != 3 {
		t.Errorf("dayOfHoliday = %v, want 3", data["dayOfHoliday"])
	}
}

func TestResolveSettingsChangeCallback(t *testing.T) {
	env := setupTest(t)

	var gotTZ string
	env.handlers.OnSettingsChange = func(s settings.Settings) {
		gotTZ = s.Timezone
	}

	rec, _ := env.doRequest(t, makeRequest("PUT", "/api/v1/settings", settings.Settings{
		Timezone: "Europe/London", EnableHolidayThemes: true,
	}, env.apiKey))
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d", rec.Code)
	}
	if gotTZ != "Europe/London" {
		t.Errorf("callback timezone = %q, want Europe/London", gotTZ)
	}
}
