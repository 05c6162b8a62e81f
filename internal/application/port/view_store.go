package port

import (
	"context"

	"github.com/bnema/rclayout/internal/domain/entity"
)

// ViewStore owns the committed view tree.
// Current returns a private copy; Commit replaces the whole tree and
// notifies observers in one step.
type ViewStore interface {
	Current(ctx context.Context) (*entity.View, error)
	Commit(ctx context.Context, view *entity.View) error
}
