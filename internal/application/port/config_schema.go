package port

import "github.com/bnema/rclayout/internal/domain/entity"

// SchemaTarget selects which document a JSON schema describes.
type SchemaTarget string

const (
	SchemaConfig SchemaTarget = "config"
	SchemaView   SchemaTarget = "view"
)

// ConfigSchemaProvider provides configuration and view schema information.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
	// JSONSchema renders the JSON schema of the target document.
	JSONSchema(target SchemaTarget) ([]byte, error)
}
