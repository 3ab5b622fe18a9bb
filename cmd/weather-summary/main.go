package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "weather-summary-service/internal/api/http"
	"weather-summary-service/internal/config"
	"weather-summary-service/internal/weather/providers"
)

const (
	serviceName        = "weather-summary-service"
	serviceVersion     = "1.0.0"
	serviceDescription = "Normalized weather summaries for geographic coordinates"
)

func main() {
	// Load configuration. Missing port or provider credentials abort startup.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Shared HTTP client for outbound provider calls. No timeout override:
	// transport defaults apply and failures propagate immediately.
	httpClient := &http.Client{}

	provider := providers.NewOpenWeatherProvider(httpClient, appLogger, cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(httpapi.Gate(httpapi.GateConfig{
		Secret:  cfg.GateAPIKey,
		Enabled: !cfg.DevMode(),
	}))

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": serviceName,
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, provider, appLogger, httpapi.ServiceInfo{
		Service:     serviceName,
		Version:     serviceVersion,
		Description: serviceDescription,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			appLogger.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("error during shutdown", "error", err)
	}
}
