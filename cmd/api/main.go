package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-webhook/config"
	_ "calendar-webhook/docs" // Swagger docs
	"calendar-webhook/internal/httpserver"
	"calendar-webhook/internal/middleware"
	"calendar-webhook/pkg/gcalendar"
	"calendar-webhook/pkg/log"
)

// @title       Calendar Webhook API
// @description Creates, updates and deletes Google Calendar events on behalf of a shared-secret caller.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Webhook...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Google Calendar client, shared by every request
	calendarClient, err := gcalendar.NewClientFromRefreshToken(ctx, gcalendar.RefreshTokenConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RefreshToken: cfg.Google.RefreshToken,
		Endpoint:     cfg.GoogleCalendar.Endpoint,
		Timeout:      cfg.GoogleCalendar.RequestTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar client: ", err)
		return err
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		CalendarClient: calendarClient,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		Webhook: middleware.Config{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
			MaxBodyBytes:    cfg.Webhook.MaxBodyBytes,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(context.Background(), "Server stopped gracefully")
	return nil
}
