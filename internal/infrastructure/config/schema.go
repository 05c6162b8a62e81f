package config

import (
	"strconv"
	"time"
)

// Config represents the complete configuration for rclayout.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	// Editor controls drag and drop behavior of the layout editor.
	Editor EditorConfig `mapstructure:"editor" toml:"editor" json:"editor"`
}

// DatabaseConfig holds the view database settings.
type DatabaseConfig struct {
	// Path to the SQLite file. Empty selects $XDG_DATA_HOME/rclayout/rclayout.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite database file"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=console,enum=json"`
}

// EditorConfig holds layout editor settings.
type EditorConfig struct {
	// HoverDelayMs is how long a drag must rest on a tab header before the tab switches.
	HoverDelayMs int `mapstructure:"hover_delay_ms" toml:"hover_delay_ms" json:"hover_delay_ms" jsonschema:"minimum=0,maximum=5000"`
	// ConfirmDeletes prompts before deleting tabs and widgets.
	ConfirmDeletes bool `mapstructure:"confirm_deletes" toml:"confirm_deletes" json:"confirm_deletes"`
	// DefaultPreset is the preset edited when none is given on the command line.
	DefaultPreset string `mapstructure:"default_preset" toml:"default_preset" json:"default_preset"`
	// NewTabIcon is the icon given to tabs created from scratch. Empty uses the built-in icon.
	NewTabIcon string `mapstructure:"new_tab_icon" toml:"new_tab_icon" json:"new_tab_icon"`
}

// HoverDelay returns HoverDelayMs as a duration.
func (e EditorConfig) HoverDelay() time.Duration {
	return time.Duration(e.HoverDelayMs) * time.Millisecond
}

// Values returns the effective value of every key, by dotted key.
func (c *Config) Values() map[string]string {
	return map[string]string{
		"database.path":          c.Database.Path,
		"logging.level":          c.Logging.Level,
		"logging.format":         c.Logging.Format,
		"editor.hover_delay_ms":  strconv.Itoa(c.Editor.HoverDelayMs),
		"editor.confirm_deletes": strconv.FormatBool(c.Editor.ConfirmDeletes),
		"editor.default_preset":  c.Editor.DefaultPreset,
		"editor.new_tab_icon":    c.Editor.NewTabIcon,
	}
}
