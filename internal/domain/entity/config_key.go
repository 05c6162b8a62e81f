package entity

// ConfigKeyInfo describes a single configuration key for `rclayout config keys`.
type ConfigKeyInfo struct {
	// Key is the full dotted path to the config key (e.g., "editor.hover_delay_ms")
	Key string `json:"key"`

	// Type is the Go type name (e.g., "string", "int", "bool")
	Type string `json:"type"`

	// Default is the default value as a string representation
	Default string `json:"default"`

	Description string `json:"description"`

	// Values contains valid enum values, empty if not an enum
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints (e.g., "0-5000")
	Range string `json:"range,omitempty"`

	// Section groups related keys (e.g., "Editor", "Logging")
	Section string `json:"section"`
}
