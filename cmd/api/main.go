package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendarize/config"
	"calendarize/internal/event/usecase"
	"calendarize/internal/httpserver"
	"calendarize/internal/middleware"
	"calendarize/pkg/dateparse"
	"calendarize/pkg/gcalendar"
	"calendarize/pkg/llmprovider"
	"calendarize/pkg/log"
)

// @title       Calendarize API
// @description Converts free-form text and images into structured calendar events with export links.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Calendarize...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default timezone: %s", cfg.Extract.DefaultTimezone)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Event UseCase
	eventUC := usecase.New(
		logger,
		llmManager,
		calendarClient,
		dateparse.NewResolver(),
		cfg.Extract.DefaultTimezone,
		cfg.GoogleCalendar.CalendarID,
		cfg.Extract.CacheSize,
	)

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.CORS, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		EventUC:        eventUC,
		MaxUploadBytes: cfg.Extract.MaxUploadBytes,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
