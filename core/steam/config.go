package steam

// Config holds configuration for the Steam Web API client.
type Config struct {
	// ApiKey is the Steam Web API key sent with every request.
	ApiKey string `mapstructure:"api_key" default:""`
	// BaseURL is the root of the Steam Web API.
	BaseURL string `mapstructure:"base_url" default:"http://api.steampowered.com"`
	// TimeoutSeconds bounds each request. Zero disables the timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"0"`
}
