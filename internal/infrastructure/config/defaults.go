package config

// Default configuration constants
const (
	defaultHoverDelayMs  = 300
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultPreset        = "default"
	maxHoverDelayMs      = 5000
	defaultConfirmDelete = true
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Editor: EditorConfig{
			HoverDelayMs:   defaultHoverDelayMs,
			ConfirmDeletes: defaultConfirmDelete,
			DefaultPreset:  defaultPreset,
		},
	}
}
