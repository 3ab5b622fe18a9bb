package weather

import (
	"context"
	"errors"
)

// ErrProviderUnavailable is returned when the upstream weather provider
// cannot be reached or answers with a non-success status. Callers log the
// wrapped cause but must not expose it to API clients.
var ErrProviderUnavailable = errors.New("weather provider unavailable")

// Provider abstracts a weather data source. One concrete implementation
// exists today (OpenWeather); additional providers plug in behind this
// interface without touching the endpoint or validation layers.
type Provider interface {
	Name() string
	Current(ctx context.Context, coord Coordinate) (Summary, error)
}
