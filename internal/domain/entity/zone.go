package entity

import "slices"

// ZoneKind describes what a drop zone represents.
type ZoneKind string

const (
	ZoneRoot       ZoneKind = "ROOT"
	ZoneList       ZoneKind = "LIST"
	ZonePanel      ZoneKind = "PANEL"
	ZoneWidgets    ZoneKind = "WIDGETS"
	ZoneTabHeaders ZoneKind = "TAB_HEADERS"
	ZoneListItems  ZoneKind = "LIST_ITEMS"
)

// BoxesWidgets reports whether bare widgets dropped here need a panel.
func (k ZoneKind) BoxesWidgets() bool {
	return k == ZoneRoot || k == ZoneList
}

// AcceptAll is the sentinel filter value accepting every type.
const AcceptAll = "ALL"

// AcceptFilter is either the ALL sentinel or an explicit set of type tags.
type AcceptFilter struct {
	All   bool
	Types map[string]struct{}
}

// AcceptEverything returns the ALL filter.
func AcceptEverything() AcceptFilter {
	return AcceptFilter{All: true}
}

// AcceptTypes returns a filter for an explicit set of tags. A leading
// ALL tag yields the sentinel filter.
func AcceptTypes(types ...string) AcceptFilter {
	if len(types) > 0 && types[0] == AcceptAll {
		return AcceptEverything()
	}
	f := AcceptFilter{Types: make(map[string]struct{}, len(types))}
	for _, t := range types {
		f.Types[t] = struct{}{}
	}
	return f
}

// AcceptWidgetTypes builds a filter over widget type tags.
func AcceptWidgetTypes(types ...WidgetType) AcceptFilter {
	tags := make([]string, len(types))
	for i, t := range types {
		tags[i] = string(t)
	}
	return AcceptTypes(tags...)
}

// Accepts reports whether the type tag may be dropped.
func (f AcceptFilter) Accepts(tag string) bool {
	if f.All {
		return true
	}
	_, ok := f.Types[tag]
	return ok
}

// Tags returns the accepted tags in sorted order, or the ALL sentinel.
func (f AcceptFilter) Tags() []string {
	if f.All {
		return []string{AcceptAll}
	}
	tags := make([]string, 0, len(f.Types))
	for t := range f.Types {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// Zone is the registry metadata of a mounted drop target.
type Zone struct {
	ID     string
	Path   Path
	Accept AcceptFilter
	Kind   ZoneKind
}

// Location is a position inside a zone.
type Location struct {
	ZoneID string
	Index  int
}
