package weather

import (
	"errors"
	"strconv"
	"strings"
)

// Validation errors. The error texts double as the client-facing messages,
// so the HTTP layer can surface them verbatim in 400 responses.
var (
	ErrMissingCoordinates  = errors.New("Latitude and Longitude are required")
	ErrNotANumber          = errors.New("Latitude and Longitude must be valid numbers")
	ErrLatitudeOutOfRange  = errors.New("Latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("Longitude must be between -180 and 180")
)

// ParseCoordinate parses and range-checks raw latitude/longitude strings.
// Checks run in a fixed order: presence, numeric parse, latitude range,
// longitude range. Bounds are inclusive. Pure function, no I/O.
func ParseCoordinate(latRaw, lonRaw string) (Coordinate, error) {
	latRaw = strings.TrimSpace(latRaw)
	lonRaw = strings.TrimSpace(lonRaw)

	if latRaw == "" || lonRaw == "" {
		return Coordinate{}, ErrMissingCoordinates
	}

	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lon, lonErr := strconv.ParseFloat(lonRaw, 64)
	if latErr != nil || lonErr != nil {
		return Coordinate{}, ErrNotANumber
	}

	// Positive-form comparisons so NaN (which ParseFloat accepts) fails
	// the range check instead of slipping through.
	if !(lat >= -90 && lat <= 90) {
		return Coordinate{}, ErrLatitudeOutOfRange
	}
	if !(lon >= -180 && lon <= 180) {
		return Coordinate{}, ErrLongitudeOutOfRange
	}

	return Coordinate{Latitude: lat, Longitude: lon}, nil
}
