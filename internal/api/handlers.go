package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lobbyware/holiday-engine/internal/calendar"
	"github.com/lobbyware/holiday-engine/internal/config"
	"github.com/lobbyware/holiday-engine/internal/holiday"
	"github.com/lobbyware/holiday-engine/internal/logger"
	"github.com/lobbyware/holiday-engine/internal/schedule"
	"github.com/lobbyware/holiday-engine/internal/settings"
	"github.com/lobbyware/holiday-engine/internal/theme"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *settings.DB
	registry *holiday.Registry
	themes   *theme.Catalog
	resolver *holiday.Resolver
	cfg      *config.Config

	// OnSettingsChange is invoked after a successful settings save so
	// the midnight scheduler can re-arm against a new timezone. Nil is
	// fine in tests.
	OnSettingsChange func(settings.Settings)
}

// NewHandlers creates a new Handlers instance. Handlers log through the
// request-scoped logger installed by RequestIDMiddleware.
func NewHandlers(db *settings.DB, registry *holiday.Registry, themes *theme.Catalog, cfg *config.Config) *Handlers {
	return &Handlers{
		db:       db,
		registry: registry,
		themes:   themes,
		resolver: holiday.NewResolver(registry),
		cfg:      cfg,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		logger.FromContext(ctx).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeUnhealthy)
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// ListHolidays handles GET /api/v1/holidays
func (h *Handlers) ListHolidays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := h.loadSettings(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load settings", slog.Any("error", err))
		WriteInternalError(w, "Failed to load settings")
		return
	}
	disabled := s.DisabledSet()

	type entry struct {
		holiday.Definition
		UserDisabled bool `json:"userDisabled"`
	}

	defs := h.registry.All()
	out := make([]entry, 0, len(defs))
	for _, d := range defs {
		_, off := disabled[d.ID]
		out = append(out, entry{Definition: d, UserDisabled: off})
	}

	WriteSuccess(w, map[string]interface{}{
		"holidays": out,
		"count":    len(out),
	})
}

// HolidaysInYear handles GET /api/v1/holidays/year/{year}
func (h *Handlers) HolidaysInYear(w http.ResponseWriter, r *http.Request) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", yearStr))
		return
	}
	if year < calendar.MinYear || year > 2100 {
		WriteBadRequest(w, fmt.Sprintf("Year must be between %d and 2100", calendar.MinYear))
		return
	}

	entries := h.registry.InYear(year)
	WriteSuccess(w, map[string]interface{}{
		"year":     year,
		"holidays": entries,
		"count":    len(entries),
	})
}

// GetHoliday handles GET /api/v1/holidays/{id}
func (h *Handlers) GetHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	def, ok := h.registry.ByID(id)
	if !ok {
		WriteNotFound(w, "Holiday not found")
		return
	}
	WriteSuccess(w, def)
}

// GetHolidayTheme handles GET /api/v1/holidays/{id}/theme
func (h *Handlers) GetHolidayTheme(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.registry.ByID(id); !ok {
		WriteNotFound(w, "Holiday not found")
		return
	}

	// Holidays without a dedicated theme fall back to the default.
	WriteSuccess(w, h.themes.Resolve(id))
}

// Resolve handles GET /api/v1/resolve?at=RFC3339
//
// The response always includes a theme so the kiosk never renders bare:
// the active holiday's theme, or the default when nothing is active or
// holiday themes are turned off.
func (h *Handlers) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	at := time.Now()
	if atStr := r.URL.Query().Get("at"); atStr != "" {
		parsed, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid at parameter: %s. Use RFC 3339", atStr))
			return
		}
		at = parsed
	}

	s, err := h.loadSettings(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load settings", slog.Any("error", err))
		WriteInternalError(w, "Failed to load settings")
		return
	}

	loc, _ := schedule.Location(s.Timezone)
	rcfg := holiday.Config{
		Location: loc,
		Disabled: s.DisabledSet(),
	}
	if s.PreviewHoliday != nil {
		rcfg.PreviewID = *s.PreviewHoliday
		if s.PreviewDay != nil {
			rcfg.PreviewDay = *s.PreviewDay
		}
	}

	resolved := h.resolver.Resolve(at, rcfg)

	civil := calendar.CivilDate(at, loc)
	resp := map[string]interface{}{
		"at":        at.Format(time.RFC3339),
		"civilDate": civil.Format("2006-01-02"),
		"timezone":  loc.String(),
		"active":    resolved.IsHoliday,
	}

	if resolved.IsHoliday && s.EnableHolidayThemes {
		resp["holiday"] = resolved.Holiday
		resp["dayOfHoliday"] = resolved.DayOfHoliday
		resp["totalDays"] = resolved.TotalDays

		th := h.themes.Resolve(resolved.Holiday.ID)
		resp["theme"] = th
		if emoji, ok := theme.ProgressionEmoji(th, resolved.DayOfHoliday); ok {
			resp["progressionEmoji"] = emoji
		}
		if resolved.Holiday.ID == holiday.LunarNewYearID {
			resp["zodiacAnimal"] = calendar.ZodiacAnimal(civil.Year())
		}
	} else {
		if resolved.IsHoliday {
			// Themes are off; report the holiday but render plain.
			resp["holiday"] = resolved.Holiday
			resp["dayOfHoliday"] = resolved.DayOfHoliday
			resp["totalDays"] = resolved.TotalDays
		}
		resp["theme"] = h.themes.Fallback()
	}

	WriteSuccess(w, resp)
}

// GetSettings handles GET /api/v1/settings
func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSettings(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to load settings", slog.Any("error", err))
		WriteInternalError(w, "Failed to load settings")
		return
	}
	WriteSuccess(w, s)
}

// UpdateSettings handles PUT /api/v1/settings
func (h *Handlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req settings.Settings
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if req.Timezone == "" {
		WriteBadRequest(w, "timezone is required")
		return
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Unknown timezone: %s", req.Timezone))
		return
	}

	for _, id := range req.DisabledHolidays {
		if _, ok := h.registry.ByID(id); !ok {
			WriteBadRequest(w, fmt.Sprintf("Unknown holiday id in disabledHolidays: %s", id))
			return
		}
	}

	if req.PreviewHoliday != nil {
		if _, ok := h.registry.ByID(*req.PreviewHoliday); !ok {
			WriteBadRequest(w, fmt.Sprintf("Unknown preview holiday: %s", *req.PreviewHoliday))
			return
		}
		if req.PreviewDay != nil && *req.PreviewDay < 1 {
			WriteBadRequest(w, "previewDay must be at least 1")
			return
		}
	} else if req.PreviewDay != nil {
		WriteBadRequest(w, "previewDay requires previewHoliday")
		return
	}

	if err := h.db.Save(ctx, &req); err != nil {
		logger.FromContext(ctx).Error("failed to save settings", slog.Any("error", err))
		WriteInternalError(w, "Failed to save settings")
		return
	}

	if h.OnSettingsChange != nil {
		h.OnSettingsChange(req)
	}

	WriteSuccess(w, req)
}

// loadSettings reads persisted settings, falling back to defaults before
// the first save.
func (h *Handlers) loadSettings(ctx context.Context) (settings.Settings, error) {
	s, err := h.db.Load(ctx)
	if err != nil {
		if settings.IsNotFound(err) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, err
	}
	return *s, nil
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
