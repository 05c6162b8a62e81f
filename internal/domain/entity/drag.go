package entity

import "strings"

// DragKind selects how a dropped item is placed.
type DragKind int

const (
	DragWidget  DragKind = iota // Bare widget, boxed when dropped on root/list zones
	DragPanel                   // Panel, inserted as-is
	DragList                    // Seeds a new list from the destination contents
	DragReorder                 // Same-container reorder (tab headers, list items)
)

func (k DragKind) String() string {
	switch k {
	case DragPanel:
		return "panel"
	case DragList:
		return "list"
	case DragReorder:
		return "reorder"
	default:
		return "widget"
	}
}

// Drag identifier markers.
const (
	ReorderPrefix = "REORDER"
	PanelSuffix   = "PANEL"
	ListSuffix    = "LIST"
)

// DragItem is the dragged thing, decoded once at drag start.
type DragItem struct {
	ID   string
	Type string // last "_"-separated token of ID, matched against zone filters
	Kind DragKind
}

// ParseDragItem decodes a draggable identifier such as "0.widgets_2_Toggle".
func ParseDragItem(id string) DragItem {
	item := DragItem{ID: id}
	if idx := strings.LastIndex(id, "_"); idx >= 0 {
		item.Type = id[idx+1:]
	} else {
		item.Type = id
	}

	switch {
	case strings.HasPrefix(id, ReorderPrefix):
		item.Kind = DragReorder
	case item.Type == PanelSuffix:
		item.Kind = DragPanel
	case item.Type == ListSuffix:
		item.Kind = DragList
	default:
		item.Kind = DragWidget
	}
	return item
}

// WidgetType returns the type tag as a widget type.
func (d DragItem) WidgetType() WidgetType {
	return WidgetType(d.Type)
}

// DragSession is the short-lived state of a single drag gesture.
type DragSession struct {
	ID     string
	Item   DragItem
	Origin Location

	staged   []*Node
	fromTree bool
}

// NewDragSession creates a session with an empty staging buffer.
func NewDragSession(id string, item DragItem, origin Location) *DragSession {
	return &DragSession{ID: id, Item: item, Origin: origin}
}

// Staged returns the detached nodes, nil when nothing is staged.
func (s *DragSession) Staged() []*Node {
	return s.staged
}

// HasStaged reports whether the staging buffer holds an item.
func (s *DragSession) HasStaged() bool {
	return len(s.staged) > 0
}

// Detach moves the node at index out of container into the staging
// buffer. A second call within the same session is a no-op that returns
// the already staged nodes.
func (s *DragSession) Detach(container *[]*Node, index int) ([]*Node, error) {
	if s.HasStaged() {
		return s.staged, nil
	}
	n, err := RemoveNode(container, index)
	if err != nil {
		return nil, err
	}
	s.staged = []*Node{n}
	s.fromTree = true
	return s.staged, nil
}

// Stage pre-loads the buffer with nodes that do not come from the tree,
// such as a new widget dragged in from a palette.
func (s *DragSession) Stage(nodes ...*Node) error {
	if s.HasStaged() {
		return ErrAlreadyStaged
	}
	s.staged = nodes
	return nil
}

// Unstage drops a buffer filled by Detach so a retry detaches again.
// Pre-staged palette nodes are kept.
func (s *DragSession) Unstage() {
	if s.fromTree {
		s.staged = nil
		s.fromTree = false
	}
}

// DetachedFromTree reports whether the staged nodes were taken from the tree.
func (s *DragSession) DetachedFromTree() bool {
	return s.fromTree
}
