package weather

// Coordinate is a validated (latitude, longitude) pair.
// Construct it via ParseCoordinate; out-of-range values are rejected,
// never clamped.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Summary is the normalized weather view returned to API clients,
// independent of any provider's payload structure. It is produced fresh
// per request and never stored.
type Summary struct {
	CurrentCondition       string  `json:"current_condition"`
	TemperatureDescription string  `json:"temperature_description"`
	ActiveAlerts           []Alert `json:"active_alerts"`
}

// Alert carries a single active weather alert. Only the event name
// survives normalization; provider-specific detail fields are dropped.
type Alert struct {
	Event string `json:"event"`
}
