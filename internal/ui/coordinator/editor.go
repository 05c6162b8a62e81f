package coordinator

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/application/usecase"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/logging"
	"github.com/bnema/rclayout/internal/ui/dnd"
	"github.com/bnema/rclayout/internal/ui/mainloop"
)

// EditorState is what the presentation renders.
type EditorState struct {
	Tab      int
	Editable bool
	Selected *entity.Selection
	// Dragging is the identifier of the item being dragged.
	Dragging string
	// Droppable is the eligible zone under the pointer.
	Droppable string
	// HoverTab is the last debounced tab-switch target, "prefix_value".
	HoverTab string
}

// KeyEvent is a key press routed to the editor.
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
	// InInput is set when focus is in a text input.
	InInput bool
}

// EditorCoordinator ties the drag machinery, the tab use cases and the
// editor state together.
type EditorCoordinator struct {
	mu    sync.Mutex
	state EditorState

	store      port.ViewStore
	registry   *dnd.Registry
	hover      *dnd.HoverTracker
	controller *dnd.Controller
	tabsUC     *usecase.ManageTabsUseCase
	deleteUC   *usecase.DeleteWidgetUseCase

	onChange func(EditorState)
}

// EditorCoordinatorConfig holds configuration for EditorCoordinator.
type EditorCoordinatorConfig struct {
	Store      port.ViewStore
	Registry   *dnd.Registry
	Resolver   dnd.DropResolver
	TabsUC     *usecase.ManageTabsUseCase
	DeleteUC   *usecase.DeleteWidgetUseCase
	HoverDelay time.Duration
	// AfterFunc replaces the hover timer, mainly for tests.
	AfterFunc mainloop.AfterFunc
}

// NewEditorCoordinator creates a new EditorCoordinator.
func NewEditorCoordinator(ctx context.Context, cfg EditorCoordinatorConfig) *EditorCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating editor coordinator")

	reg := cfg.Registry
	if reg == nil {
		reg = dnd.Default
	}

	c := &EditorCoordinator{
		store:    cfg.Store,
		registry: reg,
		tabsUC:   cfg.TabsUC,
		deleteUC: cfg.DeleteUC,
	}

	opts := []dnd.HoverOption{}
	if cfg.HoverDelay > 0 {
		opts = append(opts, dnd.WithHoverDelay(cfg.HoverDelay))
	}
	if cfg.AfterFunc != nil {
		opts = append(opts, dnd.WithAfterFunc(cfg.AfterFunc))
	}
	c.hover = dnd.NewHoverTracker(reg, c, opts...)
	c.controller = dnd.NewController(dnd.ControllerConfig{
		Hover:     c.hover,
		Resolver:  cfg.Resolver,
		Selection: c,
		ActiveTab: c,
	})
	return c
}

// SetOnChange sets the callback invoked after every state change.
func (c *EditorCoordinator) SetOnChange(fn func(EditorState)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// State returns a snapshot of the editor state.
func (c *EditorCoordinator) State() EditorState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetHoverDelay changes the tab-hover delay, e.g. after a config reload.
func (c *EditorCoordinator) SetHoverDelay(d time.Duration) {
	c.hover.SetDelay(d)
}

// Registry returns the zone registry the coordinator mounts into.
func (c *EditorCoordinator) Registry() *dnd.Registry {
	return c.registry
}

func (c *EditorCoordinator) update(fn func(*EditorState)) {
	c.mu.Lock()
	fn(&c.state)
	state := c.state
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(state)
	}
}

func (c *EditorCoordinator) view(ctx context.Context) (*entity.View, error) {
	if c.store == nil {
		return nil, usecase.ErrStoreRequired
	}
	view, err := c.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	if view == nil {
		view = entity.NewView()
	}
	return view, nil
}

// Remount registers the zones of the active tab. Outside a drag the
// registry is cleared first; during a drag the zones of the tab the drag
// started on stay resolvable.
func (c *EditorCoordinator) Remount(ctx context.Context) error {
	view, err := c.view(ctx)
	if err != nil {
		return err
	}
	state := c.State()
	tab := state.Tab
	if state.Dragging == "" {
		c.registry.Reset()
	}
	zones := dnd.MountTab(c.registry, tab, view.Tab(tab))
	logging.FromContext(ctx).Trace().Int("tab", tab).Int("zones", len(zones)).Msg("zones mounted")
	return nil
}

// ChangeTab switches to index, clamped to the view. Empty stack tabs
// switch the editor into edit mode.
func (c *EditorCoordinator) ChangeTab(ctx context.Context, index int) error {
	view, err := c.view(ctx)
	if err != nil {
		return err
	}
	c.update(func(s *EditorState) {
		s.Tab, s.Editable = usecase.ChangeTab(view, index, s.Editable)
	})
	return c.Remount(ctx)
}

// SetEditable toggles edit mode. Any change of mode clears the selection.
func (c *EditorCoordinator) SetEditable(editable bool) {
	c.update(func(s *EditorState) {
		if s.Editable != editable {
			s.Selected = nil
		}
		s.Editable = editable
	})
}

// Select marks an item as selected. Ignored outside edit mode.
func (c *EditorCoordinator) Select(sel *entity.Selection) {
	c.update(func(s *EditorState) {
		if s.Editable {
			s.Selected = sel
		}
	})
}

// SelectionChanged implements port.SelectionListener.
func (c *EditorCoordinator) SelectionChanged(sel *entity.Selection) {
	c.update(func(s *EditorState) { s.Selected = sel })
}

// ActiveTabChanged implements port.ActiveTabListener.
func (c *EditorCoordinator) ActiveTabChanged(index int) {
	c.update(func(s *EditorState) { s.Tab = index })
}

// ZoneChanged implements dnd.HoverListener.
func (c *EditorCoordinator) ZoneChanged(zone entity.Zone) {
	c.update(func(s *EditorState) { s.Droppable = zone.ID })
}

// NoEligibleZone implements dnd.HoverListener.
func (c *EditorCoordinator) NoEligibleZone(string) {
	c.update(func(s *EditorState) { s.Droppable = "" })
}

// NoTarget implements dnd.HoverListener.
func (c *EditorCoordinator) NoTarget() {
	c.update(func(s *EditorState) { s.Droppable = "" })
}

// TabHover implements dnd.HoverListener. Hovering a main tab bar header
// switches to that tab.
func (c *EditorCoordinator) TabHover(prefix, value string) {
	c.update(func(s *EditorState) { s.HoverTab = prefix + "_" + value })
	if prefix != dnd.TabBarPrefix {
		return
	}
	index, err := strconv.Atoi(value)
	if err != nil {
		return
	}
	ctx := context.Background()
	if err := c.ChangeTab(ctx, index); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("hover tab change failed")
	}
}

// BeginDrag starts a drag on the active tab.
func (c *EditorCoordinator) BeginDrag(ctx context.Context, itemID string, origin entity.Location, template *entity.Node) error {
	_, err := c.controller.Begin(ctx, dnd.BeginInput{
		ItemID:   itemID,
		Origin:   origin,
		Tab:      c.State().Tab,
		Template: template,
	})
	if err != nil {
		return err
	}
	c.update(func(s *EditorState) {
		s.Dragging = itemID
		s.Droppable = ""
	})
	return nil
}

// MoveDrag forwards a pointer sample.
func (c *EditorCoordinator) MoveDrag(elements []port.HitElement) {
	c.controller.Move(elements)
}

// EndDrag applies the drop outcome and clears the transient drag state.
func (c *EditorCoordinator) EndDrag(ctx context.Context, kind entity.DropKind, dest *entity.Location) (*usecase.ResolveDropOutput, error) {
	shown := c.State().Tab
	out, err := c.controller.Drop(ctx, dnd.DropInput{Kind: kind, Destination: dest, Tab: &shown})
	c.update(func(s *EditorState) {
		s.Dragging = ""
		s.Droppable = ""
		s.HoverTab = ""
	})
	if err != nil {
		return nil, err
	}
	if err := c.Remount(ctx); err != nil {
		return out, err
	}
	return out, nil
}

// CancelDrag aborts the live drag and drops zones left from other tabs.
func (c *EditorCoordinator) CancelDrag(ctx context.Context) {
	c.controller.Cancel(ctx)
	c.update(func(s *EditorState) {
		s.Dragging = ""
		s.Droppable = ""
		s.HoverTab = ""
	})
	if err := c.Remount(ctx); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("remount after cancel failed")
	}
}

func (c *EditorCoordinator) applyTabChange(ctx context.Context, out *usecase.TabChangeOutput, err error) error {
	if err != nil {
		return err
	}
	c.update(func(s *EditorState) {
		s.Tab = out.Tab
		s.Editable = s.Editable || out.Editable
	})
	return c.Remount(ctx)
}

// NewTab appends an empty tab and switches to it.
func (c *EditorCoordinator) NewTab(ctx context.Context) error {
	out, err := c.tabsUC.Create(ctx)
	return c.applyTabChange(ctx, out, err)
}

// DuplicateTab copies the active tab.
func (c *EditorCoordinator) DuplicateTab(ctx context.Context) error {
	out, err := c.tabsUC.Duplicate(ctx, c.State().Tab)
	return c.applyTabChange(ctx, out, err)
}

// AddScreenTab appends a snapshot or sequencer tab.
func (c *EditorCoordinator) AddScreenTab(ctx context.Context, screen entity.ScreenType) error {
	out, err := c.tabsUC.AddScreen(ctx, screen)
	return c.applyTabChange(ctx, out, err)
}

// DeleteTab deletes the tab at index after confirmation.
func (c *EditorCoordinator) DeleteTab(ctx context.Context, index int, force bool) error {
	out, err := c.tabsUC.Delete(ctx, usecase.DeleteTabInput{Tab: index, Force: force})
	if err != nil {
		return err
	}
	if !out.Changed {
		return nil
	}
	c.update(func(s *EditorState) { s.Tab = out.Tab })
	return c.Remount(ctx)
}

// HandleKey applies the editor shortcuts. It reports whether the key was consumed.
//
//	Delete        delete selection (Shift skips the prompt)
//	Ctrl+1..9     switch to tab N, Ctrl+0 to the last tab
//	Ctrl+E        toggle edit mode
//	Ctrl+Left/Right previous/next tab
func (c *EditorCoordinator) HandleKey(ctx context.Context, ev KeyEvent) (bool, error) {
	if ev.Key == "Delete" {
		return c.deleteSelected(ctx, ev)
	}
	if !ev.Ctrl && !ev.Meta {
		return false, nil
	}

	if n, err := strconv.Atoi(ev.Key); err == nil && n >= 0 && n <= 9 {
		if n == 0 {
			view, err := c.view(ctx)
			if err != nil {
				return true, err
			}
			n = max(len(view.Tabs), 1)
		}
		return true, c.ChangeTab(ctx, n-1)
	}

	switch strings.ToLower(ev.Key) {
	case "e":
		c.SetEditable(!c.State().Editable)
		return true, nil
	case "arrowleft", "left":
		return true, c.ChangeTab(ctx, c.State().Tab-1)
	case "arrowright", "right":
		return true, c.ChangeTab(ctx, c.State().Tab+1)
	}
	return false, nil
}

func (c *EditorCoordinator) deleteSelected(ctx context.Context, ev KeyEvent) (bool, error) {
	state := c.State()
	if !state.Editable || state.Selected == nil || ev.InInput {
		return false, nil
	}
	if c.deleteUC == nil {
		return false, errors.New("delete use case is required")
	}

	out, err := c.deleteUC.Execute(ctx, usecase.DeleteWidgetInput{
		TabIndex:  state.Tab,
		Selection: *state.Selected,
		Force:     ev.Shift,
	})
	if err != nil {
		return true, err
	}
	if out.Deleted {
		c.update(func(s *EditorState) { s.Selected = nil })
		return true, c.Remount(ctx)
	}
	return true, nil
}
