package dnd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/application/usecase"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/logging"
)

var (
	// ErrDragInProgress is returned when a drag starts while another is live.
	ErrDragInProgress = errors.New("a drag is already in progress")
	// ErrNoDrag is returned when a drag operation runs without a live session.
	ErrNoDrag = errors.New("no drag in progress")
)

// DropResolver applies a completed drag to the view.
type DropResolver interface {
	Execute(ctx context.Context, input usecase.ResolveDropInput) (*usecase.ResolveDropOutput, error)
}

// Controller owns the single live drag session of the editor and routes
// its gesture events to the hover tracker and the resolver.
type Controller struct {
	mu       sync.Mutex
	session  *entity.DragSession
	tab      int
	hover    *HoverTracker
	resolver DropResolver

	selection port.SelectionListener
	activeTab port.ActiveTabListener
	newID     func() string
}

// ControllerConfig holds the collaborators of a Controller.
type ControllerConfig struct {
	Hover     *HoverTracker
	Resolver  DropResolver
	Selection port.SelectionListener
	ActiveTab port.ActiveTabListener
	// NewID generates session ids; defaults to random UUIDs.
	NewID func() string
}

func NewController(cfg ControllerConfig) *Controller {
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Controller{
		hover:     cfg.Hover,
		resolver:  cfg.Resolver,
		selection: cfg.Selection,
		activeTab: cfg.ActiveTab,
		newID:     newID,
	}
}

// BeginInput describes the start of a drag gesture.
type BeginInput struct {
	// ItemID is the draggable identifier, e.g. "0.widgets_2_Toggle".
	ItemID string
	Origin entity.Location
	Tab    int
	// Template is staged for drags that start outside the tree, such as
	// a widget dragged in from the palette.
	Template *entity.Node
}

// Begin starts a drag session. Reorder drags keep the current selection,
// every other drag clears it.
func (c *Controller) Begin(ctx context.Context, input BeginInput) (*entity.DragSession, error) {
	c.mu.Lock()
	if c.session != nil {
		c.mu.Unlock()
		return nil, ErrDragInProgress
	}

	item := entity.ParseDragItem(input.ItemID)
	session := entity.NewDragSession(c.newID(), item, input.Origin)
	if input.Template != nil {
		if err := session.Stage(input.Template.Clone()); err != nil {
			c.mu.Unlock()
			return nil, fmt.Errorf("stage template: %w", err)
		}
	}
	c.session = session
	c.tab = input.Tab
	c.mu.Unlock()

	logging.FromContext(logging.WithDragSession(ctx, session.ID)).Debug().
		Str("item", item.ID).
		Str("drag_kind", item.Kind.String()).
		Str("origin", input.Origin.ZoneID).
		Int("origin_index", input.Origin.Index).
		Msg("drag started")

	if item.Kind != entity.DragReorder && c.selection != nil {
		c.selection.SelectionChanged(nil)
	}
	if c.hover != nil {
		c.hover.Start(item)
	}
	return session, nil
}

// Session returns the live session or nil.
func (c *Controller) Session() *entity.DragSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Move forwards a pointer sample to the hover tracker.
func (c *Controller) Move(elements []port.HitElement) {
	if c.hover != nil {
		c.hover.Move(elements)
	}
}

// Cancel discards the live session without touching the view.
func (c *Controller) Cancel(ctx context.Context) {
	session, _ := c.take()
	if session == nil {
		return
	}
	logging.FromContext(logging.WithDragSession(ctx, session.ID)).Debug().Msg("drag cancelled")
	if session.Item.Kind != entity.DragReorder && c.selection != nil {
		c.selection.SelectionChanged(nil)
	}
}

// DropInput is the outcome reported when the gesture ends.
type DropInput struct {
	Kind entity.DropKind
	// Destination is nil when the drag was released outside any zone.
	Destination *entity.Location
	// Tab is the tab shown at release. Nil keeps the tab the drag began on.
	Tab *int
}

// Drop ends the live session and applies its outcome. The session is
// cleared whatever the outcome.
func (c *Controller) Drop(ctx context.Context, input DropInput) (*usecase.ResolveDropOutput, error) {
	session, tab := c.take()
	if session == nil {
		return nil, ErrNoDrag
	}
	if c.resolver == nil {
		return nil, errors.New("drop resolver is required")
	}

	in := usecase.ResolveDropInput{
		TabIndex: tab,
		Session:  session,
		Result: entity.DropResult{
			Kind:        input.Kind,
			Item:        session.Item,
			Source:      session.Origin,
			Destination: input.Destination,
		},
	}
	if input.Tab != nil && *input.Tab != tab {
		source := tab
		in.TabIndex = *input.Tab
		in.SourceTab = &source
	}

	out, err := c.resolver.Execute(ctx, in)
	if err != nil {
		return nil, err
	}

	c.publish(session, input.Kind, out)
	return out, nil
}

func (c *Controller) take() (*entity.DragSession, int) {
	c.mu.Lock()
	session, tab := c.session, c.tab
	c.session = nil
	c.mu.Unlock()

	if c.hover != nil {
		c.hover.End()
	}
	return session, tab
}

func (c *Controller) publish(session *entity.DragSession, kind entity.DropKind, out *usecase.ResolveDropOutput) {
	if out.ActiveTab != nil && c.activeTab != nil {
		c.activeTab.ActiveTabChanged(*out.ActiveTab)
	}
	if c.selection == nil {
		return
	}
	switch {
	case out.Selection != nil:
		c.selection.SelectionChanged(out.Selection)
	case out.Applied && (kind == entity.DropTabsReorder || kind == entity.DropListReorder):
		// Sibling reorders keep whatever was selected.
	case session.Item.Kind == entity.DragReorder && !out.Applied:
	default:
		c.selection.SelectionChanged(nil)
	}
}
