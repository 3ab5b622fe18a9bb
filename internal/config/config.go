package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"weather-summary-service/internal/weather/providers"
)

// EnvDevelopment bypasses the inbound API gate entirely.
const EnvDevelopment = "development"

type AppConfig struct {
	// Port the HTTP server listens on. No default: the process must not
	// start without it.
	Port string `validate:"required"`

	// OpenWeather credentials and endpoint.
	OpenWeatherAPIKey  string `validate:"required"`
	OpenWeatherBaseURL string `validate:"required,url"`

	// Shared secret for the inbound gate. Outside development an empty
	// secret would reject every request, so it is required there.
	GateAPIKey string `validate:"required_unless=Environment development"`

	Environment string
}

// Load reads configuration from environment variables, failing on any
// missing required setting. Startup is the only place configuration can
// fail; everything downstream receives a valid AppConfig.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		Port:               os.Getenv("PORT"),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: getenvDefault("OPENWEATHER_BASE_URL", providers.DefaultBaseURL),
		GateAPIKey:         os.Getenv("GATE_API_KEY"),
		Environment:        getenvDefault("APP_ENV", "production"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DevMode reports whether the inbound gate should be bypassed.
func (c *AppConfig) DevMode() bool {
	return c.Environment == EnvDevelopment
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
