package model

// WeatherSummary is the five-field projection of a raw Weatherstack response.
// Values pass through exactly as returned by the API; the temperatures stay in
// whatever unit the API defaulted to.
type WeatherSummary struct {
	Name        string  `json:"name"`
	Region      string  `json:"region"`
	LocalTime   string  `json:"local_time"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
}
