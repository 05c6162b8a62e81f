package config

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/invopop/jsonschema"
)

// Section names for grouping config keys.
const (
	SectionDatabase = "Database"
	SectionLogging  = "Logging"
	SectionEditor   = "Editor"
)

const schemaBaseID = "https://github.com/bnema/rclayout/"

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/" + appName + "/" + databaseName,
			Description: "SQLite file holding the views of every preset",
			Section:     SectionDatabase,
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Minimum log level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"text", "console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "editor.hover_delay_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Editor.HoverDelayMs),
			Description: "Time a drag must rest on a tab header before switching to it",
			Range:       fmt.Sprintf("0-%d", maxHoverDelayMs),
			Section:     SectionEditor,
		},
		{
			Key:         "editor.confirm_deletes",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Editor.ConfirmDeletes),
			Description: "Ask before deleting tabs and widgets",
			Section:     SectionEditor,
		},
		{
			Key:         "editor.default_preset",
			Type:        "string",
			Default:     defaults.Editor.DefaultPreset,
			Description: "Preset edited when --preset is not given",
			Section:     SectionEditor,
		},
		{
			Key:         "editor.new_tab_icon",
			Type:        "string",
			Default:     defaults.Editor.NewTabIcon,
			Description: "Icon of new tabs; empty uses the built-in icon",
			Section:     SectionEditor,
		},
	}
}

// JSONSchema renders the JSON schema of the config file or of a view document.
func (p *SchemaProvider) JSONSchema(target port.SchemaTarget) ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	var schema *jsonschema.Schema
	switch target {
	case port.SchemaConfig:
		schema = r.Reflect(&Config{})
		schema.Title = "rclayout configuration"
		schema.Description = "Configuration schema for rclayout, the remote control layout editor"
	case port.SchemaView:
		schema = r.Reflect(&entity.View{})
		schema.Title = "rclayout view"
		schema.Description = "Tabs, panels, lists and widgets of one preset"
	default:
		return nil, fmt.Errorf("unknown schema target %q", target)
	}
	schema.ID = jsonschema.ID(schemaBaseID + string(target) + ".schema.json")

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
