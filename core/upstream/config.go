package upstream

// Config holds configuration for the remote catalog API.
type Config struct {
	// BaseURL is the API root the list path is appended to.
	BaseURL string `mapstructure:"base_url" default:"https://pokeapi.co/api/v2"`
	// ListPath is the path of the paginated list endpoint.
	ListPath string `mapstructure:"list_path" default:"/pokemon"`
	// TimeoutSeconds bounds every single list or detail request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"catalog-sync/1.0"`
}
