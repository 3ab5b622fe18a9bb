package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"weather-summary-service/internal/weather"
)

// DefaultBaseURL is OpenWeather's One Call endpoint. Overridable through
// configuration, which is how tests point the client at a local server.
const DefaultBaseURL = "https://api.openweathermap.org/data/3.0/onecall"

// oneCallPayload mirrors only the One Call fields this service consumes.
// Pointer fields distinguish "absent" from zero values so normalization
// can degrade to fallbacks instead of misreading missing data.
type oneCallPayload struct {
	Current struct {
		FeelsLike *float64 `json:"feels_like"`
		Weather   []struct {
			ID *int `json:"id"`
		} `json:"weather"`
	} `json:"current"`
	Alerts []struct {
		Event string `json:"event"`
	} `json:"alerts"`
}

// OpenWeatherProvider implements the weather.Provider interface against
// OpenWeather's One Call API.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewOpenWeatherProvider builds the provider. The HTTP client is shared and
// deliberately carries no timeout override; transport defaults apply and
// failures propagate immediately. The circuit breaker fails fast while the
// upstream is down but never re-issues a request.
func NewOpenWeatherProvider(client *http.Client, logger *slog.Logger, apiKey, baseURL string) *OpenWeatherProvider {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:    "openweather",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		circuit: cb,
		logger:  logger,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Current fetches and normalizes the current conditions for a coordinate.
// Any transport failure, non-2xx status, or undecodable body surfaces as
// weather.ErrProviderUnavailable with the cause wrapped for logging.
func (p *OpenWeatherProvider) Current(ctx context.Context, coord weather.Coordinate) (weather.Summary, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	values.Set("units", "imperial")
	values.Set("exclude", "minutely,hourly,daily")
	values.Set("appid", p.apiKey)

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return weather.Summary{}, fmt.Errorf("%w: %v", weather.ErrProviderUnavailable, err)
	}

	result, err := p.circuit.Execute(func() (interface{}, error) {
		resp, execErr := p.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
		}

		var payload oneCallPayload
		if decErr := json.NewDecoder(resp.Body).Decode(&payload); decErr != nil {
			return nil, fmt.Errorf("decode response: %v", decErr)
		}
		return payload, nil
	})
	if err != nil {
		p.logger.Debug("openweather call failed",
			"lat", coord.Latitude,
			"lon", coord.Longitude,
			"error", err,
		)
		return weather.Summary{}, fmt.Errorf("%w: %v", weather.ErrProviderUnavailable, err)
	}

	payload, ok := result.(oneCallPayload)
	if !ok {
		return weather.Summary{}, fmt.Errorf("%w: unexpected result type from circuit breaker", weather.ErrProviderUnavailable)
	}

	return normalize(payload), nil
}
