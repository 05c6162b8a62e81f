package dnd

import (
	"testing"

	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mountedTab() *entity.Tab {
	return &entity.Tab{
		Name:   "Tab 1",
		Layout: entity.TabLayoutStack,
		Panels: []*entity.Node{
			entity.NewPanel(
				entity.NewWidget(entity.WidgetToggle, "A"),
				&entity.Node{
					Kind:   entity.NodeWidget,
					Widget: entity.WidgetDials,
					Widgets: []*entity.Node{
						entity.NewWidget(entity.WidgetDial, "X"),
					},
				},
			),
			{
				Kind: entity.NodeList,
				Items: []*entity.ListItem{
					{Label: "Item 1", Panels: []*entity.Node{entity.NewPanel()}},
				},
			},
		},
	}
}

func TestMountTab_RegistersEveryContainer(t *testing.T) {
	reg := NewRegistry()
	zones := MountTab(reg, 0, mountedTab())

	ids := make([]string, len(zones))
	for i, z := range zones {
		ids[i] = z.ID
	}
	assert.Equal(t, []string{
		"tabs:headers",
		"tab0:root",
		"tab0:0.widgets",
		"tab0:0.widgets.1.widgets",
		"tab0:1.items",
		"tab0:1.items.0.panels",
		"tab0:1.items.0.panels.0.widgets",
	}, ids)
	assert.Equal(t, len(zones), reg.Len())

	root, ok := reg.Lookup("tab0:root")
	require.True(t, ok)
	assert.True(t, root.Path.IsRoot())
	assert.Equal(t, entity.ZoneRoot, root.Kind)

	list, ok := reg.Lookup("tab0:1.items.0.panels")
	require.True(t, ok)
	assert.Equal(t, entity.ZoneList, list.Kind)

	reorder, ok := reg.Lookup("tab0:1.items")
	require.True(t, ok)
	assert.Equal(t, "1", reorder.Path.String())
	assert.Equal(t, entity.ZoneListItems, reorder.Kind)

	composite, ok := reg.Lookup("tab0:0.widgets.1.widgets")
	require.True(t, ok)
	assert.True(t, composite.Accept.Accepts(string(entity.WidgetDial)))
	assert.False(t, composite.Accept.Accepts(string(entity.WidgetToggle)))
}

func TestMountTab_ZonePathsResolve(t *testing.T) {
	tab := mountedTab()
	reg := NewRegistry()

	for _, z := range MountTab(reg, 0, tab) {
		switch z.Kind {
		case entity.ZoneTabHeaders:
		case entity.ZoneListItems:
			_, err := entity.ResolveItems(&tab.Panels, z.Path.Append(entity.Key(entity.KeyItems)))
			assert.NoError(t, err, z.ID)
		default:
			_, err := entity.ResolveNodes(&tab.Panels, z.Path)
			assert.NoError(t, err, z.ID)
		}
	}
}

func TestMountTab_ScreenTabOnlyHeaders(t *testing.T) {
	reg := NewRegistry()
	zones := MountTab(reg, 2, &entity.Tab{Layout: entity.TabLayoutScreen})
	require.Len(t, zones, 1)
	assert.Equal(t, HeadersZoneID(), zones[0].ID)
}

func TestReorderID(t *testing.T) {
	item := entity.ParseDragItem(ReorderID(2, HeaderDragType))
	assert.Equal(t, entity.DragReorder, item.Kind)
	assert.Equal(t, HeaderDragType, item.Type)
}

func TestDraggableID(t *testing.T) {
	tab := mountedTab()
	widgets := entity.ParsePath("0.widgets")

	tests := []struct {
		container entity.Path
		index     int
		node      *entity.Node
		want      string
		kind      entity.DragKind
	}{
		{widgets, 0, tab.Panels[0].Widgets[0], "0.widgets_0_Toggle", entity.DragWidget},
		{widgets, 1, tab.Panels[0].Widgets[1], "0.widgets_1_Dials", entity.DragWidget},
		{nil, 0, tab.Panels[0], "_0_PANEL", entity.DragPanel},
		{nil, 1, tab.Panels[1], "_1_LIST", entity.DragList},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			id := DraggableID(tt.container, tt.index, tt.node)
			assert.Equal(t, tt.want, id)
			assert.Equal(t, tt.kind, entity.ParseDragItem(id).Kind)
		})
	}
}
