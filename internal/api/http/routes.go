package httpapi

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"weather-summary-service/internal/weather"
)

// ServiceInfo is the static metadata served by the version endpoint.
type ServiceInfo struct {
	Service     string `json:"service"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, provider weather.Provider, logger *slog.Logger, info ServiceInfo) {
	app.Get("/coordinates", func(c *fiber.Ctx) error {
		coord, err := weather.ParseCoordinate(c.Query("lat"), c.Query("lon"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		summary, err := provider.Current(c.UserContext(), coord)
		if err != nil {
			// The cause stays in the logs; clients get a generic message.
			logger.Error("weather fetch failed",
				"provider", provider.Name(),
				"lat", coord.Latitude,
				"lon", coord.Longitude,
				"error", err,
			)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch weather data")
		}

		return c.JSON(summary)
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(info)
	})
}

// ErrorHandler shapes every handler error as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
