package driven

import "context"

// Configuration keys.
const (
	// ConfigDefaultTimezone is the timezone used when a request names none.
	ConfigDefaultTimezone = "defaults.timezone"

	// ConfigDefaultLang is the language used when a request names none.
	ConfigDefaultLang = "defaults.lang"

	// ConfigMCPPort is the HTTP port of the MCP server; 0 means stdio.
	ConfigMCPPort = "mcp.port"

	// ConfigMCPRateLimit is the sustained HTTP request rate per second.
	ConfigMCPRateLimit = "mcp.rate_limit"

	// ConfigMCPBurst is the HTTP request burst size.
	ConfigMCPBurst = "mcp.burst"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetFloat retrieves a numeric configuration value.
	// Returns 0 if key doesn't exist or isn't a number.
	GetFloat(key string) float64

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Watch reloads configuration when storage changes and calls onChange
	// after each successful reload. It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error

	// Path returns the configuration file path.
	Path() string
}
