package usecase

import (
	"context"
	"errors"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/domain/entity"
)

// GetSchemaUseCase retrieves configuration key metadata and JSON schemas.
type GetSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetSchemaUseCase creates a new GetSchemaUseCase.
func NewGetSchemaUseCase(provider port.ConfigSchemaProvider) *GetSchemaUseCase {
	return &GetSchemaUseCase{
		provider: provider,
	}
}

// GetSchemaInput selects the schema. An empty Target returns only Keys.
type GetSchemaInput struct {
	Target port.SchemaTarget
}

// GetSchemaOutput contains the schema information.
type GetSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
	JSON []byte
}

// Execute retrieves configuration keys and, when requested, a JSON schema.
func (uc *GetSchemaUseCase) Execute(_ context.Context, input GetSchemaInput) (*GetSchemaOutput, error) {
	if uc.provider == nil {
		return nil, errors.New("schema provider is required")
	}
	out := &GetSchemaOutput{Keys: uc.provider.GetSchema()}
	if input.Target == "" {
		return out, nil
	}
	data, err := uc.provider.JSONSchema(input.Target)
	if err != nil {
		return nil, err
	}
	out.JSON = data
	return out, nil
}
