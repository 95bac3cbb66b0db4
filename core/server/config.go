package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// DefaultLimit is the page size used when a request omits limit.
	DefaultLimit int `mapstructure:"default_limit" default:"20"`
	// MaxLimit is the largest page size a request may ask for.
	MaxLimit int `mapstructure:"max_limit" default:"100"`
}

const (
	// HardMaxLimit caps the page size regardless of configuration.
	HardMaxLimit     = 100
	FallbackLimit    = 20
	minAllowedLimits = 1
)

// Limits returns the effective default and maximum page sizes.
// MaxLimit is clamped to [1, HardMaxLimit] and DefaultLimit to [1, max].
func (c Config) Limits() (defaultLimit, maxLimit int) {
	maxLimit = c.MaxLimit
	if maxLimit < minAllowedLimits || maxLimit > HardMaxLimit {
		maxLimit = HardMaxLimit
	}

	defaultLimit = c.DefaultLimit
	if defaultLimit < minAllowedLimits {
		defaultLimit = FallbackLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	return defaultLimit, maxLimit
}
