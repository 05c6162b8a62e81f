package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateEditor(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "text", "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of text, console, json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateEditor(config *Config) []string {
	var validationErrors []string
	if config.Editor.HoverDelayMs < 0 || config.Editor.HoverDelayMs > maxHoverDelayMs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("editor.hover_delay_ms must be between 0 and %d", maxHoverDelayMs))
	}
	if strings.TrimSpace(config.Editor.DefaultPreset) == "" {
		validationErrors = append(validationErrors, "editor.default_preset must not be empty")
	}
	return validationErrors
}
