package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/logging"
)

// ErrStoreRequired is returned when a use case is built without a view store.
var ErrStoreRequired = errors.New("view store is required")

// Reasons reported when a drop is discarded.
const (
	DiscardNoDestination   = "no destination"
	DiscardRegistryMiss    = "unknown drop zone"
	DiscardNoTab           = "tab is not an editable stack"
	DiscardPathMissing     = "container path does not resolve"
	DiscardUnderflow       = "source index no longer exists"
	DiscardSelfDrop        = "destination lies inside the dragged item"
	DiscardNothingToInsert = "staging buffer is empty"
)

// ResolveDropUseCase turns a completed drag into one structural edit of
// the committed view.
type ResolveDropUseCase struct {
	store port.ViewStore
	zones port.ZoneLookup
}

// NewResolveDropUseCase creates a new ResolveDropUseCase.
func NewResolveDropUseCase(store port.ViewStore, zones port.ZoneLookup) *ResolveDropUseCase {
	return &ResolveDropUseCase{store: store, zones: zones}
}

// ResolveDropInput contains the drag session and its outcome.
type ResolveDropInput struct {
	// TabIndex is the tab holding the destination zone.
	TabIndex int
	// SourceTab is the tab the drag started on when it differs from
	// TabIndex. Nil means the same tab.
	SourceTab *int
	Session   *entity.DragSession
	Result    entity.DropResult
}

// ResolveDropOutput describes the applied edit.
type ResolveDropOutput struct {
	Applied bool
	// Reason is set when the drop was discarded.
	Reason string
	// Selection is the newly placed item for general placements.
	Selection *entity.Selection
	// ActiveTab is set after a header reorder.
	ActiveTab *int
}

func discarded(reason string) *ResolveDropOutput {
	return &ResolveDropOutput{Reason: reason}
}

// Execute applies the drop. Recoverable failures return Applied=false and
// leave the committed view untouched; only store failures are errors.
func (uc *ResolveDropUseCase) Execute(ctx context.Context, input ResolveDropInput) (*ResolveDropOutput, error) {
	if uc.store == nil {
		return nil, ErrStoreRequired
	}
	if input.Session != nil {
		ctx = logging.WithDragSession(ctx, input.Session.ID)
	}
	log := logging.FromContext(ctx)

	result := input.Result
	if result.Destination == nil {
		log.Debug().Msg("drop discarded: released outside any zone")
		return discarded(DiscardNoDestination), nil
	}

	view, err := uc.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("read current view: %w", err)
	}
	if view == nil {
		view = entity.NewView()
	}

	var out *ResolveDropOutput
	switch result.Kind {
	case entity.DropHeaderTabs:
		out = uc.reorderHeaders(view, result)
	case entity.DropTabsReorder, entity.DropListReorder:
		out = uc.reorderItems(view, input.TabIndex, result)
	default:
		out = uc.place(ctx, view, input)
	}

	if !out.Applied {
		log.Debug().
			Str("kind", string(result.Kind)).
			Str("reason", out.Reason).
			Msg("drop discarded")
		return out, nil
	}

	if err := uc.store.Commit(ctx, view); err != nil {
		return nil, fmt.Errorf("commit view: %w", err)
	}

	ev := log.Debug().Str("kind", string(result.Kind)).Str("item", result.Item.ID)
	if out.Selection != nil {
		ev = ev.Str("selected", out.Selection.String())
	}
	ev.Msg("drop applied")

	return out, nil
}

func (uc *ResolveDropUseCase) reorderHeaders(view *entity.View, result entity.DropResult) *ResolveDropOutput {
	if err := view.MoveTab(result.Source.Index, result.Destination.Index); err != nil {
		return discarded(DiscardUnderflow)
	}
	active := entity.ClampIndex(result.Destination.Index, len(view.Tabs)-1)
	return &ResolveDropOutput{Applied: true, ActiveTab: &active}
}

func (uc *ResolveDropUseCase) reorderItems(view *entity.View, tabIndex int, result entity.DropResult) *ResolveDropOutput {
	tab := view.Tab(tabIndex)
	if tab == nil {
		return discarded(DiscardNoTab)
	}
	zone, ok := uc.lookup(result.Destination.ZoneID)
	if !ok {
		return discarded(DiscardRegistryMiss)
	}

	key := entity.KeyItems
	if result.Kind == entity.DropTabsReorder {
		key = entity.KeyTabs
	}
	items, err := entity.ResolveItems(&tab.Panels, zone.Path.Append(entity.Key(key)))
	if err != nil {
		return discarded(DiscardPathMissing)
	}
	if err := entity.ReorderItems(items, result.Source.Index, result.Destination.Index); err != nil {
		return discarded(DiscardUnderflow)
	}
	return &ResolveDropOutput{Applied: true}
}

func (uc *ResolveDropUseCase) place(ctx context.Context, view *entity.View, input ResolveDropInput) *ResolveDropOutput {
	log := logging.FromContext(ctx)
	result := input.Result
	session := input.Session
	if session == nil {
		session = entity.NewDragSession("", result.Item, result.Source)
	}

	tab := view.Tab(input.TabIndex)
	if tab == nil || tab.Layout != entity.TabLayoutStack {
		return discarded(DiscardNoTab)
	}
	dropZone, ok := uc.lookup(result.Destination.ZoneID)
	if !ok {
		return discarded(DiscardRegistryMiss)
	}

	if tab.Panels == nil {
		tab.Panels = make([]*entity.Node, 0)
	}
	// Resolve the destination before detaching so index shifts in the
	// source container cannot redirect the path.
	dest, err := entity.ResolveNodes(&tab.Panels, dropZone.Path)
	if err != nil {
		return discarded(DiscardPathMissing)
	}

	srcTab := tab
	crossTab := input.SourceTab != nil && *input.SourceTab != input.TabIndex
	if crossTab {
		srcTab = view.Tab(*input.SourceTab)
	}

	index := result.Destination.Index
	if !session.HasStaged() {
		if srcTab == nil || srcTab.Layout != entity.TabLayoutStack {
			return discarded(DiscardNoTab)
		}
		srcZone, ok := uc.lookup(result.Source.ZoneID)
		if !ok {
			return discarded(DiscardRegistryMiss)
		}
		src, err := entity.ResolveNodes(&srcTab.Panels, srcZone.Path)
		if err != nil {
			return discarded(DiscardPathMissing)
		}
		staged, err := session.Detach(src, result.Source.Index)
		if err != nil {
			return discarded(DiscardUnderflow)
		}
		if staged[0].OwnsContainer(dest) {
			session.Unstage()
			return discarded(DiscardSelfDrop)
		}
		if !crossTab {
			index = compensateForwardMove(srcZone, dropZone, result, staged[0], index)
		}
	}

	nodes := session.Staged()
	if len(nodes) == 0 {
		return discarded(DiscardNothingToInsert)
	}

	var el []*entity.Node
	switch session.Item.Kind {
	case entity.DragPanel:
		el = nodes
	case entity.DragList:
		el = []*entity.Node{seedList(*dest, nodes)}
		*dest = (*dest)[:0:0]
	default:
		el = nodes
		if dropZone.Kind.BoxesWidgets() {
			el = []*entity.Node{entity.NewPanel(nodes...)}
		}
	}

	placed := entity.InsertNodes(dest, index, el...)
	sel := entity.NewSelection(dropZone.Path, placed, el[0])

	log.Trace().
		Str("from", result.Source.ZoneID).
		Int("from_index", result.Source.Index).
		Str("to", dropZone.ID).
		Int("to_index", placed).
		Str("drag_kind", session.Item.Kind.String()).
		Msg("placed staged item")

	return &ResolveDropOutput{Applied: true, Selection: &sel}
}

// compensateForwardMove applies the fixed off-by-one rule for compact
// widgets moved forward between two zones that address the same container.
func compensateForwardMove(src, dst entity.Zone, result entity.DropResult, moved *entity.Node, index int) int {
	if !src.Path.Equal(dst.Path) || src.ID == dst.ID {
		return index
	}
	if moved == nil || !moved.Widget.IsCompact() {
		return index
	}
	if result.Source.Index < index {
		return index - 1
	}
	return index
}

// seedList builds the list that replaces a destination's contents. Staged
// nodes carrying widgets follow the previous contents so nothing is lost;
// bare widgets are boxed since list items hold panels.
func seedList(previous, staged []*entity.Node) *entity.Node {
	panels := make([]*entity.Node, 0, len(previous)+len(staged))
	panels = append(panels, previous...)
	for _, n := range staged {
		switch {
		case n.WidgetCount() == 0:
		case n.IsWidget():
			panels = append(panels, entity.NewPanel(n))
		default:
			panels = append(panels, n)
		}
	}
	return entity.NewList(panels)
}

func (uc *ResolveDropUseCase) lookup(id string) (entity.Zone, bool) {
	if uc.zones == nil || id == "" {
		return entity.Zone{}, false
	}
	return uc.zones.Lookup(id)
}
