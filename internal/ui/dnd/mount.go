package dnd

import (
	"fmt"

	"github.com/bnema/rclayout/internal/domain/entity"
)

// Zone id suffixes for containers that are not addressed by a node path.
const (
	rootSuffix    = "root"
	headersSuffix = "headers"
)

// TabBarPrefix tags the main tab bar headers as tab-switch hover targets.
const TabBarPrefix = "tabbar"

// Type tags carried by reorder drags, e.g. "REORDER_2_HEADER".
const (
	HeaderDragType = "HEADER"
	ItemDragType   = "ITEM"
)

// ReorderID builds the drag identifier of a reorder drag.
func ReorderID(index int, dragType string) string {
	return fmt.Sprintf("%s_%d_%s", entity.ReorderPrefix, index, dragType)
}

// DraggableID builds the drag identifier of the node at container/index.
// Widgets carry their type, panels and tabs nodes move as PANEL and
// lists as LIST.
func DraggableID(container entity.Path, index int, n *entity.Node) string {
	tag := string(n.Widget)
	switch n.Kind {
	case entity.NodePanel, entity.NodeTabs:
		tag = entity.PanelSuffix
	case entity.NodeList:
		tag = entity.ListSuffix
	}
	return fmt.Sprintf("%s_%d_%s", container.String(), index, tag)
}

// ZoneID builds the deterministic zone id of a container in tab.
func ZoneID(tab int, path entity.Path) string {
	if path.IsRoot() {
		return fmt.Sprintf("tab%d:%s", tab, rootSuffix)
	}
	return fmt.Sprintf("tab%d:%s", tab, path.String())
}

// HeadersZoneID is the zone of the main tab bar.
func HeadersZoneID() string {
	return "tabs:" + headersSuffix
}

// panelAccept lists what may be dropped between the widgets of a panel.
var panelAccept = entity.AcceptTypes(entity.AcceptAll)

// compositeAccept limits composite widgets (Dials, Sliders, Vector) to
// the leaf kinds they can host.
var compositeAccept = entity.AcceptWidgetTypes(
	entity.WidgetDial,
	entity.WidgetSlider,
	entity.WidgetScaleSlider,
)

// MountTab registers one zone per container of tab, the way a render
// pass of the editor would, and returns the zones in mount order.
func MountTab(reg *Registry, index int, tab *entity.Tab) []entity.Zone {
	mounted := []entity.Zone{mount(reg, HeadersZoneID(), nil, entity.AcceptTypes(HeaderDragType), entity.ZoneTabHeaders)}
	if tab == nil || tab.Layout != entity.TabLayoutStack {
		return mounted
	}

	mounted = append(mounted, mount(reg, ZoneID(index, nil), nil, entity.AcceptEverything(), entity.ZoneRoot))
	return mountNodes(reg, index, nil, tab.Panels, mounted)
}

func mount(reg *Registry, id string, path entity.Path, accept entity.AcceptFilter, kind entity.ZoneKind) entity.Zone {
	reg.Register(id, path, accept, kind)
	return entity.Zone{ID: id, Path: path, Accept: accept, Kind: kind}
}

func mountNodes(reg *Registry, tab int, base entity.Path, nodes []*entity.Node, mounted []entity.Zone) []entity.Zone {
	for i, n := range nodes {
		if n == nil {
			continue
		}
		at := base.Append(entity.Index(i))
		switch n.Kind {
		case entity.NodePanel:
			p := at.Append(entity.Key(entity.KeyWidgets))
			mounted = append(mounted, mount(reg, ZoneID(tab, p), p, panelAccept, entity.ZoneWidgets))
			mounted = mountNodes(reg, tab, p, n.Widgets, mounted)
		case entity.NodeList:
			mounted = mountItems(reg, tab, at, entity.KeyItems, n.Items, mounted)
		case entity.NodeTabs:
			mounted = mountItems(reg, tab, at, entity.KeyTabs, n.Tabs, mounted)
		case entity.NodeWidget:
			if len(n.Widgets) > 0 {
				p := at.Append(entity.Key(entity.KeyWidgets))
				mounted = append(mounted, mount(reg, ZoneID(tab, p), p, compositeAccept, entity.ZonePanel))
			}
		}
	}
	return mounted
}

func mountItems(reg *Registry, tab int, at entity.Path, key string, items []*entity.ListItem, mounted []entity.Zone) []entity.Zone {
	// The reorder zone of a list addresses the list node itself.
	mounted = append(mounted, mount(reg, ZoneID(tab, at.Append(entity.Key(key))), at, entity.AcceptTypes(ItemDragType), entity.ZoneListItems))
	for j, item := range items {
		if item == nil {
			continue
		}
		p := at.Append(entity.Key(key), entity.Index(j), entity.Key(entity.KeyPanels))
		mounted = append(mounted, mount(reg, ZoneID(tab, p), p, entity.AcceptEverything(), entity.ZoneList))
		mounted = mountNodes(reg, tab, p, item.Panels, mounted)
	}
	return mounted
}
