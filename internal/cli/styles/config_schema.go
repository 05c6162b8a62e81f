package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/rclayout/internal/domain/entity"
)

// sectionOrder is the order sections appear in `config keys`.
var sectionOrder = []string{"Editor", "Logging", "Database"}

// ConfigSchemaRenderer renders the configuration key reference.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders one table per section. current maps dotted keys to their
// effective values; keys whose value differs from the default are marked.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo, current map[string]string) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		sections[key.Section] = append(sections[key.Section], key)
	}

	parts := []string{r.renderHeader(), ""}

	// Known sections first, anything else after in input order.
	seen := make(map[string]bool, len(sections))
	for _, name := range sectionOrder {
		if sectionKeys, ok := sections[name]; ok {
			parts = append(parts, r.renderSection(name, sectionKeys, current), "")
			seen[name] = true
		}
	}
	for _, key := range keys {
		if seen[key.Section] {
			continue
		}
		seen[key.Section] = true
		parts = append(parts, r.renderSection(key.Section, sections[key.Section], current), "")
	}

	if len(current) > 0 {
		parts = append(parts, r.theme.Subtle.Render(IconEdit+" marks values changed from the default"))
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders the key reference as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Configuration Keys"))
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo, current map[string]string) string {
	t := r.theme
	headers := []string{"KEY", "TYPE", "DEFAULT", "ALLOWED", "DESCRIPTION"}
	if current != nil {
		headers = []string{"KEY", "TYPE", "DEFAULT", "CURRENT", "ALLOWED", "DESCRIPTION"}
	}

	rows := make([][]string, 0, len(keys))
	changed := make(map[int]bool)
	for i, key := range keys {
		row := []string{key.Key, key.Type, displayValue(key.Default)}
		if current != nil {
			value := displayValue(current[key.Key])
			if value != displayValue(key.Default) {
				value = IconEdit + " " + value
				changed[i] = true
			}
			row = append(row, value)
		}
		row = append(row, allowed(key), key.Description)
		rows = append(rows, row)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Foreground(t.Accent).Bold(true)
			case col == 0:
				return base.Foreground(t.Text).Bold(true)
			case current != nil && col == 3 && changed[row]:
				return base.Foreground(t.Accent)
			default:
				return base.Foreground(t.Muted)
			}
		})

	return t.Highlight.Render(name) + "\n" + tbl.String()
}

// allowed summarizes enum values or a numeric range.
func allowed(key entity.ConfigKeyInfo) string {
	switch {
	case len(key.Values) > 0:
		return strings.Join(key.Values, ", ")
	case key.Range != "":
		return key.Range
	default:
		return "-"
	}
}

func displayValue(v string) string {
	if v == "" {
		return `""`
	}
	return v
}
