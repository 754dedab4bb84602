// Package main is the entry point for the holiday engine API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lobbyware/holiday-engine/internal/api"
	"github.com/lobbyware/holiday-engine/internal/config"
	"github.com/lobbyware/holiday-engine/internal/holiday"
	"github.com/lobbyware/holiday-engine/internal/logger"
	"github.com/lobbyware/holiday-engine/internal/schedule"
	"github.com/lobbyware/holiday-engine/internal/settings"
	"github.com/lobbyware/holiday-engine/internal/theme"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	log.Info("starting holiday engine",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("timezone", cfg.Timezone),
		slog.String("log_level", cfg.LogLevel),
	)

	if err := run(cfg, log); err != nil {
		log.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	db, err := settings.Open(settings.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	// Catalogs
	registry := holiday.Default()
	themes := theme.Default()

	// Resolve the display timezone: persisted settings win over the
	// environment default.
	tzName := cfg.Timezone
	if s, err := db.Load(ctx); err == nil {
		tzName = s.Timezone
	} else if !settings.IsNotFound(err) {
		return fmt.Errorf("load settings: %w", err)
	}
	loc, ok := schedule.Location(tzName)
	if !ok {
		log.Warn("configured timezone did not load, using fallback",
			slog.String("configured", tzName),
			slog.String("fallback", loc.String()),
		)
	}

	// Midnight re-resolution. The kiosk polls /api/v1/resolve, so the
	// tick only needs to log the rollover; resolution itself is
	// stateless and always computed per request.
	resolver := holiday.NewResolver(registry)
	midnight := schedule.NewMidnight(
		time.Duration(cfg.MidnightBufferMS)*time.Millisecond, log,
		func(fired time.Time) {
			rcfg := holiday.Config{}
			if s, err := db.Load(context.Background()); err == nil {
				rcfg.Location, _ = schedule.Location(s.Timezone)
				rcfg.Disabled = s.DisabledSet()
			} else {
				rcfg.Location, _ = schedule.Location(cfg.Timezone)
			}
			resolved := resolver.Resolve(fired, rcfg)
			if resolved.IsHoliday {
				log.Info("date rollover",
					slog.String("holiday", resolved.Holiday.ID),
					slog.Int("day", resolved.DayOfHoliday),
					slog.Int("total_days", resolved.TotalDays),
				)
			} else {
				log.Info("date rollover", slog.String("holiday", "none"))
			}
		},
	)
	go midnight.Run(ctx, loc)

	// HTTP server
	handlers := api.NewHandlers(db, registry, themes, cfg)
	handlers.OnSettingsChange = func(s settings.Settings) {
		newLoc, _ := schedule.Location(s.Timezone)
		midnight.SetLocation(newLoc)
	}
	router := api.SetupRoutes(handlers, cfg, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("holiday engine stopped")
	return nil
}
