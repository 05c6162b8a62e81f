package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config and database file locations.
func (r *ConfigRenderer) RenderConfigInfo(configPath, dbPath string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config   %s\n  %s Database %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(configPath),
		iconStyle.Render(IconDatabase),
		pathStyle.Render(dbPath),
	)
}

// RenderSet renders the confirmation of a changed key.
func (r *ConfigRenderer) RenderSet(key string, value any, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s %s = %s in %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(key),
		lipgloss.NewStyle().Foreground(r.theme.Text).Render(fmt.Sprint(value)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderReloaded renders one line per config reload seen by `config watch`.
func (r *ConfigRenderer) RenderReloaded(hoverDelayMs int, level string) string {
	return fmt.Sprintf(
		"  %s reloaded: hover delay %s, log level %s",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconInfo),
		r.theme.Highlight.Render(fmt.Sprintf("%dms", hoverDelayMs)),
		r.theme.Highlight.Render(level),
	)
}

// RenderWatching renders the banner of `config watch`.
func (r *ConfigRenderer) RenderWatching(path string) string {
	return fmt.Sprintf(
		"\n  %s Watching %s (ctrl+c to stop)\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
