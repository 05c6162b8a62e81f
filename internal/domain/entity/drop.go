package entity

import "fmt"

// DropKind classifies a completed drag.
type DropKind string

const (
	DropGeneral     DropKind = "DEFAULT"
	DropHeaderTabs  DropKind = "HEADER_TABS"
	DropTabsReorder DropKind = "TABS-REORDER"
	DropListReorder DropKind = "LIST-REORDER"
)

// ParseDropKind maps the wire name to a kind.
func ParseDropKind(s string) (DropKind, error) {
	switch DropKind(s) {
	case "", DropGeneral:
		return DropGeneral, nil
	case DropHeaderTabs, DropTabsReorder, DropListReorder:
		return DropKind(s), nil
	}
	return "", fmt.Errorf("unknown drop kind %q", s)
}

// DropResult is the outcome reported when a drag ends.
// A nil Destination means the drag was released outside any zone.
type DropResult struct {
	Kind        DropKind
	Item        DragItem
	Source      Location
	Destination *Location
}
