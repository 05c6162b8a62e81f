package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/logging"
)

// DeleteWidgetUseCase removes the selected item from the active tab.
type DeleteWidgetUseCase struct {
	store     port.ViewStore
	confirmer port.Confirmer
}

// NewDeleteWidgetUseCase creates a new DeleteWidgetUseCase.
func NewDeleteWidgetUseCase(store port.ViewStore, confirmer port.Confirmer) *DeleteWidgetUseCase {
	return &DeleteWidgetUseCase{store: store, confirmer: confirmer}
}

// DeleteWidgetInput addresses the item to delete.
type DeleteWidgetInput struct {
	TabIndex  int
	Selection entity.Selection
	// Force skips the confirmation prompt.
	Force bool
}

// DeleteWidgetOutput reports the removed node.
type DeleteWidgetOutput struct {
	Deleted bool
	Removed *entity.Node
}

// Execute removes the node at the selection. Missing paths, empty
// containers and declined confirmations leave the view untouched.
func (uc *DeleteWidgetUseCase) Execute(ctx context.Context, input DeleteWidgetInput) (*DeleteWidgetOutput, error) {
	if uc.store == nil {
		return nil, ErrStoreRequired
	}
	log := logging.FromContext(logging.WithTabIndex(ctx, input.TabIndex))

	view, err := uc.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("read current view: %w", err)
	}
	tab := view.Tab(input.TabIndex)
	if tab == nil || tab.Layout != entity.TabLayoutStack {
		log.Debug().Msg("delete ignored: tab is not an editable stack")
		return &DeleteWidgetOutput{}, nil
	}

	container, err := entity.ResolveNodes(&tab.Panels, input.Selection.Path)
	if err != nil {
		log.Debug().Err(err).Str("selected", input.Selection.String()).Msg("delete ignored")
		return &DeleteWidgetOutput{}, nil
	}
	if len(*container) == 0 {
		return &DeleteWidgetOutput{}, nil
	}

	if !input.Force && uc.confirmer != nil {
		ok, err := uc.confirmer.Confirm(ctx, ConfirmDeleteWidget)
		if err != nil {
			return nil, fmt.Errorf("confirm widget delete: %w", err)
		}
		if !ok {
			log.Debug().Msg("widget delete declined")
			return &DeleteWidgetOutput{}, nil
		}
	}

	removed, err := entity.RemoveNode(container, input.Selection.Index)
	if err != nil {
		log.Debug().Err(err).Str("selected", input.Selection.String()).Msg("delete ignored")
		return &DeleteWidgetOutput{}, nil
	}
	if err := uc.store.Commit(ctx, view); err != nil {
		return nil, fmt.Errorf("commit view: %w", err)
	}

	log.Info().
		Str("selected", input.Selection.String()).
		Int("widgets", removed.WidgetCount()).
		Msg("item deleted")

	return &DeleteWidgetOutput{Deleted: true, Removed: removed}, nil
}
