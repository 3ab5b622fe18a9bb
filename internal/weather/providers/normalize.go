package providers

import (
	"weather-summary-service/internal/weather"
)

// Fallback for any field the payload is missing or malformed on.
const descriptionUnknown = "Unknown"

// conditionDescriptions maps OpenWeather condition codes to display
// descriptions. The table is provider-specific on purpose: another
// provider's code space must not collide with this one, so each mapper
// owns its own lookup.
var conditionDescriptions = map[int]string{
	200: "Thunderstorm With Light Rain",
	201: "Thunderstorm With Rain",
	202: "Thunderstorm With Heavy Rain",
	210: "Light Thunderstorm",
	211: "Thunderstorm",
	212: "Heavy Thunderstorm",
	221: "Ragged Thunderstorm",
	230: "Thunderstorm With Light Drizzle",
	231: "Thunderstorm With Drizzle",
	232: "Thunderstorm With Heavy Drizzle",
	300: "Light Intensity Drizzle",
	301: "Drizzle",
	302: "Heavy Intensity Drizzle",
	310: "Light Intensity Drizzle Rain",
	311: "Drizzle Rain",
	312: "Heavy Intensity Drizzle Rain",
	313: "Shower Rain And Drizzle",
	314: "Heavy Shower Rain And Drizzle",
	321: "Shower Drizzle",
	500: "Light Rain",
	501: "Moderate Rain",
	502: "Heavy Intensity Rain",
	503: "Very Heavy Rain",
	504: "Extreme Rain",
	511: "Freezing Rain",
	520: "Light Intensity Shower Rain",
	521: "Shower Rain",
	522: "Heavy Intensity Shower Rain",
	531: "Ragged Shower Rain",
	600: "Light Snow",
	601: "Snow",
	602: "Heavy Snow",
	611: "Sleet",
	612: "Light Shower Sleet",
	613: "Shower Sleet",
	615: "Light Rain And Snow",
	616: "Rain And Snow",
	620: "Light Shower Snow",
	621: "Shower Snow",
	622: "Heavy Shower Snow",
	701: "Mist",
	711: "Smoke",
	721: "Haze",
	731: "Sand/Dust Whirls",
	741: "Fog",
	751: "Sand",
	761: "Dust",
	762: "Volcanic Ash",
	771: "Squalls",
	781: "Tornado",
	800: "Clear Sky",
	801: "Few Clouds",
	802: "Scattered Clouds",
	803: "Broken Clouds",
	804: "Overcast Clouds",
}

// tempBuckets partitions the feels-like temperature (°F) by inclusive
// upper bound. Ordered ascending; anything above the last bound is
// "Extremely Hot". Together the buckets cover the whole line with no gaps
// or overlaps.
var tempBuckets = []struct {
	max   float64
	label string
}{
	{-4, "Extremely Cold"},
	{14, "Very Cold"},
	{32, "Cold"},
	{50, "Chilly"},
	{59, "Cool"},
	{68, "Mild"},
	{77, "Warm"},
	{86, "Hot"},
	{95, "Very Hot"},
}

// normalize transforms a raw One Call payload into the service's Summary.
// It never fails: absent or malformed fields degrade to "Unknown" (or an
// empty alert list) rather than erroring.
func normalize(p oneCallPayload) weather.Summary {
	alerts := make([]weather.Alert, 0, len(p.Alerts))
	for _, a := range p.Alerts {
		alerts = append(alerts, weather.Alert{Event: a.Event})
	}

	return weather.Summary{
		CurrentCondition:       describeCondition(p),
		TemperatureDescription: describeTemperature(p.Current.FeelsLike),
		ActiveAlerts:           alerts,
	}
}

func describeCondition(p oneCallPayload) string {
	if len(p.Current.Weather) == 0 || p.Current.Weather[0].ID == nil {
		return descriptionUnknown
	}
	desc, ok := conditionDescriptions[*p.Current.Weather[0].ID]
	if !ok {
		return descriptionUnknown
	}
	return desc
}

func describeTemperature(feelsLike *float64) string {
	if feelsLike == nil {
		return descriptionUnknown
	}
	for _, b := range tempBuckets {
		if *feelsLike <= b.max {
			return b.label
		}
	}
	return "Extremely Hot"
}
