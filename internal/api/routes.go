package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lobbyware/holiday-engine/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health                       liveness + database health
//	GET  /api/v1/holidays              full catalog with user-disabled flags
//	GET  /api/v1/holidays/year/{year}  all occurrences in a year
//	GET  /api/v1/holidays/{id}         one catalog entry
//	GET  /api/v1/holidays/{id}/theme   theme for one holiday
//	GET  /api/v1/resolve               active holiday + theme at an instant
//	GET  /api/v1/settings              current persisted settings
//	PUT  /api/v1/settings              update settings (authenticated)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(RequestIDMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(RecoveryMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-API-Key"},
		MaxAge:         3600,
	}))

	authWrap := AuthMiddleware(cfg, logger)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/holidays", handlers.ListHolidays)
		r.Get("/holidays/year/{year}", handlers.HolidaysInYear)
		r.Get("/holidays/{id}", handlers.GetHoliday)
		r.Get("/holidays/{id}/theme", handlers.GetHolidayTheme)
		r.Get("/resolve", handlers.Resolve)
		r.Get("/settings", handlers.GetSettings)
		r.Method(http.MethodPut, "/settings", authWrap(http.HandlerFunc(handlers.UpdateSettings)))
	})

	return r
}
