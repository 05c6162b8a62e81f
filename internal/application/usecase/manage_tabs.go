package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/logging"
)

// ErrTabNotFound is returned when a tab index does not address a tab.
var ErrTabNotFound = errors.New("tab not found")

// Confirmation prompts.
const (
	ConfirmDeleteTab    = "Are you sure you want to delete this tab?"
	ConfirmDeleteWidget = "Are you sure you want to delete ?"
)

// DefaultTabIcon is used when no icon picker is configured.
const DefaultTabIcon = "square"

var tabNamePattern = regexp.MustCompile(`(?i)^Tab (\d+)$`)

// NewTabName returns "Tab N" where N is one past the highest numbered
// "Tab N" name already present.
func NewTabName(view *entity.View) string {
	last := 0
	if view != nil {
		for _, tab := range view.Tabs {
			m := tabNamePattern.FindStringSubmatch(tab.Name)
			if m == nil {
				continue
			}
			if n, err := strconv.Atoi(m[1]); err == nil && n > last {
				last = n
			}
		}
	}
	return fmt.Sprintf("Tab %d", last+1)
}

// ChangeTab clamps index to the view's tabs and reports whether the
// editor should be editable afterwards. Empty stack tabs force edit mode.
func ChangeTab(view *entity.View, index int, editable bool) (int, bool) {
	count := 0
	if view != nil {
		count = len(view.Tabs)
	}
	index = min(max(0, index), count-1)
	if index < 0 {
		index = 0
	}
	return index, editable || view.Tab(index).IsEmptyStack()
}

// ManageTabsUseCase handles the tab lifecycle of the view.
type ManageTabsUseCase struct {
	store     port.ViewStore
	confirmer port.Confirmer
	icons     port.IconPicker
}

// NewManageTabsUseCase creates a new tab management use case.
// confirmer and icons may be nil.
func NewManageTabsUseCase(store port.ViewStore, confirmer port.Confirmer, icons port.IconPicker) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		store:     store,
		confirmer: confirmer,
		icons:     icons,
	}
}

// TabChangeOutput is the tab the editor should show after an operation.
type TabChangeOutput struct {
	Tab      int
	Editable bool
	// Changed is false when the operation was a no-op.
	Changed bool
}

func (uc *ManageTabsUseCase) load(ctx context.Context) (*entity.View, error) {
	if uc.store == nil {
		return nil, ErrStoreRequired
	}
	view, err := uc.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("read current view: %w", err)
	}
	if view == nil {
		view = entity.NewView()
	}
	return view, nil
}

func (uc *ManageTabsUseCase) commit(ctx context.Context, view *entity.View) error {
	if err := uc.store.Commit(ctx, view); err != nil {
		return fmt.Errorf("commit view: %w", err)
	}
	return nil
}

func (uc *ManageTabsUseCase) append(ctx context.Context, tab *entity.Tab, editable bool) (*TabChangeOutput, error) {
	view, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	if tab.Name == "" {
		tab.Name = NewTabName(view)
	}
	view.Tabs = append(view.Tabs, tab)
	if err := uc.commit(ctx, view); err != nil {
		return nil, err
	}

	index, editable := ChangeTab(view, len(view.Tabs)-1, editable)
	logging.FromContext(ctx).Info().
		Str("name", tab.Name).
		Str("layout", string(tab.Layout)).
		Int("tab", index).
		Msg("tab added")

	return &TabChangeOutput{Tab: index, Editable: editable, Changed: true}, nil
}

// Create appends an empty stack tab and switches to it in edit mode.
func (uc *ManageTabsUseCase) Create(ctx context.Context) (*TabChangeOutput, error) {
	icon := DefaultTabIcon
	if uc.icons != nil {
		if picked := uc.icons.PickIcon(); picked != "" {
			icon = picked
		}
	}
	return uc.append(ctx, &entity.Tab{
		Icon:   icon,
		Layout: entity.TabLayoutStack,
		Panels: make([]*entity.Node, 0),
	}, true)
}

// Duplicate appends a deep copy of the tab at index under a new name.
func (uc *ManageTabsUseCase) Duplicate(ctx context.Context, index int) (*TabChangeOutput, error) {
	view, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	src := view.Tab(index)
	if src == nil {
		return nil, fmt.Errorf("%w: %d", ErrTabNotFound, index)
	}
	dup := src.Clone()
	dup.Name = ""
	return uc.append(ctx, dup, true)
}

// AddScreen appends one of the built-in screen tabs.
func (uc *ManageTabsUseCase) AddScreen(ctx context.Context, screen entity.ScreenType) (*TabChangeOutput, error) {
	tab := &entity.Tab{
		Layout: entity.TabLayoutScreen,
		Screen: &entity.Screen{Type: screen},
	}
	switch screen {
	case entity.ScreenSnapshot:
		tab.Name, tab.Icon = "Snapshot", "save"
	case entity.ScreenSequencer:
		tab.Name, tab.Icon = "Sequences", "play"
	default:
		return nil, fmt.Errorf("unknown screen type %q", screen)
	}
	return uc.append(ctx, tab, false)
}

// Rename sets the tab name. Empty or unchanged names are ignored.
func (uc *ManageTabsUseCase) Rename(ctx context.Context, index int, name string) (bool, error) {
	view, err := uc.load(ctx)
	if err != nil {
		return false, err
	}
	tab := view.Tab(index)
	if tab == nil {
		return false, fmt.Errorf("%w: %d", ErrTabNotFound, index)
	}
	if name == "" || name == tab.Name {
		return false, nil
	}

	old := tab.Name
	tab.Name = name
	if err := uc.commit(ctx, view); err != nil {
		return false, err
	}
	logging.FromContext(ctx).Info().Str("from", old).Str("to", name).Msg("tab renamed")
	return true, nil
}

// SetIcon replaces the tab icon. An empty icon is ignored.
func (uc *ManageTabsUseCase) SetIcon(ctx context.Context, index int, icon string) (bool, error) {
	if icon == "" {
		return false, nil
	}
	view, err := uc.load(ctx)
	if err != nil {
		return false, err
	}
	tab := view.Tab(index)
	if tab == nil {
		return false, nil
	}
	tab.Icon = icon
	if err := uc.commit(ctx, view); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteTabInput selects the tab to delete.
type DeleteTabInput struct {
	Tab int
	// Force skips the confirmation prompt.
	Force bool
}

// Delete removes a tab after confirmation. The returned tab index is
// clamped to the remaining tabs.
func (uc *ManageTabsUseCase) Delete(ctx context.Context, input DeleteTabInput) (*TabChangeOutput, error) {
	log := logging.FromContext(logging.WithTabIndex(ctx, input.Tab))

	if !input.Force && uc.confirmer != nil {
		ok, err := uc.confirmer.Confirm(ctx, ConfirmDeleteTab)
		if err != nil {
			return nil, fmt.Errorf("confirm tab delete: %w", err)
		}
		if !ok {
			log.Debug().Msg("tab delete declined")
			return &TabChangeOutput{Tab: input.Tab}, nil
		}
	}

	view, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	if view.Tab(input.Tab) == nil {
		log.Debug().Msg("tab delete ignored: index out of range")
		return &TabChangeOutput{Tab: input.Tab}, nil
	}

	view.Tabs = append(view.Tabs[:input.Tab], view.Tabs[input.Tab+1:]...)
	if err := uc.commit(ctx, view); err != nil {
		return nil, err
	}

	index := min(input.Tab, len(view.Tabs)-1)
	if index < 0 {
		index = 0
	}
	log.Info().Int("remaining", len(view.Tabs)).Msg("tab deleted")
	return &TabChangeOutput{Tab: index, Changed: true}, nil
}
