package config

// WeatherConfig configures the independent weather collaborator. The API
// credential is never stored here; it comes from the SF_WEATHER_API_KEY
// environment variable.
type WeatherConfig struct {
	// BaseURL is the daily-forecast endpoint.
	BaseURL string `json:"base_url"`
	// Latitude and Longitude locate the forecast.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Out is the normalized summary output file.
	Out string `json:"out"`
}

// SetDefaults applies sane defaults.
func (c *WeatherConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openweathermap.org/data/3.0/onecall"
	}
	if c.Out == "" {
		c.Out = "public/weather.json"
	}
}
