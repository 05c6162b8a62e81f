package repository

import (
	"context"
	"time"

	"github.com/bnema/rclayout/internal/domain/entity"
)

// ViewSummary is the listing form of a persisted view.
type ViewSummary struct {
	PresetID    string
	TabCount    int
	WidgetCount int
	// Revision counts saves of the preset.
	Revision  int64
	UpdatedAt time.Time
}

// ViewRepository persists one view per preset.
type ViewRepository interface {
	// Get returns the view of a preset, nil when none was saved.
	Get(ctx context.Context, presetID string) (*entity.View, error)

	// Save upserts the view of a preset.
	Save(ctx context.Context, presetID string, view *entity.View) error

	// Delete removes the view of a preset.
	Delete(ctx context.Context, presetID string) error

	// List returns summaries of all persisted views.
	List(ctx context.Context) ([]ViewSummary, error)
}
