package httpapi

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// GateConfig configures the API key gate middleware.
type GateConfig struct {
	// Secret is the shared key inbound requests must present.
	Secret string

	// Enabled turns the gate on. Development mode runs with it off.
	Enabled bool
}

// Gate returns middleware that requires the shared secret on every request,
// via the x-api-key header or the apikey query parameter. Missing key →
// 401, mismatched key → 403. The health endpoint stays open so liveness
// probes need no credentials.
func Gate(cfg GateConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled || c.Path() == "/health" {
			return c.Next()
		}

		key := c.Get("x-api-key")
		if key == "" {
			key = c.Query("apikey")
		}

		if key == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "API key is required")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Secret)) != 1 {
			return fiber.NewError(fiber.StatusForbidden, "Invalid API key")
		}

		return c.Next()
	}
}
