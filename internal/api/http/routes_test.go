package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"weather-summary-service/internal/weather"
)

// stubProvider returns a fixed summary or error.
type stubProvider struct {
	summary weather.Summary
	err     error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Current(ctx context.Context, coord weather.Coordinate) (weather.Summary, error) {
	if s.err != nil {
		return weather.Summary{}, s.err
	}
	return s.summary, nil
}

func newTestApp(provider weather.Provider) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	RegisterRoutes(app, provider, logger, ServiceInfo{
		Service:     "weather-summary-service",
		Version:     "1.0.0",
		Description: "test",
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func TestCoordinatesSuccess(t *testing.T) {
	app := newTestApp(&stubProvider{summary: weather.Summary{
		CurrentCondition:       "Clear Sky",
		TemperatureDescription: "Warm",
		ActiveAlerts:           []weather.Alert{},
	}})

	req := httptest.NewRequest(http.MethodGet, "/coordinates?lat=40.7128&lon=-74.0060", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		CurrentCondition       string          `json:"current_condition"`
		TemperatureDescription string          `json:"temperature_description"`
		ActiveAlerts           []weather.Alert `json:"active_alerts"`
	}
	decodeBody(t, resp, &body)

	if body.CurrentCondition != "Clear Sky" {
		t.Errorf("expected Clear Sky, got %q", body.CurrentCondition)
	}
	if body.TemperatureDescription != "Warm" {
		t.Errorf("expected Warm, got %q", body.TemperatureDescription)
	}
	if body.ActiveAlerts == nil || len(body.ActiveAlerts) != 0 {
		t.Errorf("expected empty active_alerts, got %+v", body.ActiveAlerts)
	}
}

func TestCoordinatesValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{
			name:    "missing longitude",
			target:  "/coordinates?lat=40.7128",
			wantMsg: "Latitude and Longitude are required",
		},
		{
			name:    "missing both",
			target:  "/coordinates",
			wantMsg: "Latitude and Longitude are required",
		},
		{
			name:    "not a number",
			target:  "/coordinates?lat=abc&lon=-74.0060",
			wantMsg: "Latitude and Longitude must be valid numbers",
		},
		{
			name:    "latitude out of range",
			target:  "/coordinates?lat=100&lon=-74.0060",
			wantMsg: "Latitude must be between -90 and 90",
		},
		{
			name:    "longitude out of range",
			target:  "/coordinates?lat=40.7128&lon=-200",
			wantMsg: "Longitude must be between -180 and 180",
		},
	}

	app := newTestApp(&stubProvider{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
			}

			var body map[string]string
			decodeBody(t, resp, &body)
			if body["error"] != tt.wantMsg {
				t.Errorf("expected error %q, got %q", tt.wantMsg, body["error"])
			}
		})
	}
}

func TestCoordinatesProviderFailure(t *testing.T) {
	app := newTestApp(&stubProvider{err: weather.ErrProviderUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/coordinates?lat=40.7128&lon=-74.0060", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["error"] != "Failed to fetch weather data" {
		t.Errorf("expected generic fetch error, got %q", body["error"])
	}
}

func TestVersion(t *testing.T) {
	app := newTestApp(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var info ServiceInfo
	decodeBody(t, resp, &info)
	if info.Service != "weather-summary-service" || info.Version != "1.0.0" {
		t.Errorf("unexpected version payload: %+v", info)
	}
}
