package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rclayout/internal/application/usecase"
	"github.com/bnema/rclayout/internal/cli/styles"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/domain/repository"
)

func renderView() *entity.View {
	return &entity.View{Tabs: []*entity.Tab{
		{
			Name:   "Lights",
			Icon:   "bolt",
			Layout: entity.TabLayoutStack,
			Panels: []*entity.Node{
				entity.NewPanel(entity.NewWidget(entity.WidgetToggle, "Visible"), entity.NewWidget(entity.WidgetSlider, "Intensity")),
				entity.NewList([]*entity.Node{entity.NewPanel(entity.NewWidget(entity.WidgetDial, "Rotation"))}),
			},
		},
		{Name: "Empty", Layout: entity.TabLayoutStack},
		{Name: "Snapshot", Layout: entity.TabLayoutScreen, Screen: &entity.Screen{Type: entity.ScreenSnapshot}},
	}}
}

func TestViewRenderer_RenderTab(t *testing.T) {
	r := styles.NewViewRenderer(styles.NewTheme())
	view := renderView()

	out := r.RenderTab(view, 0, styles.TreeMarks{Cursor: -1, Target: -1})
	for _, want := range []string{"Lights", "Toggle", "Visible", "0.widgets_1_Intensity", "Item 1", "1.items.0.panels.0.widgets_0_Rotation", "_0_null"} {
		assert.Contains(t, out, want)
	}

	assert.Contains(t, r.RenderTab(view, 1, styles.TreeMarks{}), "Empty tab")
	assert.Contains(t, r.RenderTab(view, 2, styles.TreeMarks{}), "Snapshot screen")
	assert.Contains(t, r.RenderTab(view, 9, styles.TreeMarks{}), "does not exist")
}

func TestViewRenderer_RenderTabMarksTarget(t *testing.T) {
	r := styles.NewViewRenderer(styles.NewTheme())
	out := r.RenderTab(renderView(), 0, styles.TreeMarks{Cursor: 1, Target: 2})
	assert.Contains(t, out, "drop here")
	assert.Contains(t, out, "> ")
}

func TestViewRenderer_Tables(t *testing.T) {
	r := styles.NewViewRenderer(styles.NewTheme())

	tabs := r.RenderTabs(renderView(), 0)
	assert.Contains(t, tabs, "Lights")
	assert.Contains(t, tabs, "Snapshot")

	zones := r.RenderZones([]entity.Zone{
		{ID: "tab0:root", Kind: entity.ZoneRoot, Accept: entity.AcceptEverything()},
		{ID: "tab0:0.widgets.1.widgets", Kind: entity.ZonePanel, Path: entity.ParsePath("0.widgets.1.widgets"),
			Accept: entity.AcceptWidgetTypes(entity.WidgetSlider, entity.WidgetDial)},
	})
	assert.Contains(t, zones, "(root)")
	assert.Contains(t, zones, "Dial, Slider")

	presets := r.RenderPresets([]repository.ViewSummary{
		{PresetID: "default", TabCount: 3, WidgetCount: 3, Revision: 4, UpdatedAt: time.Now()},
	}, "default")
	assert.Contains(t, presets, "default")
	assert.Contains(t, r.RenderPresets(nil, ""), "No saved views")
}

func TestViewRenderer_RenderDrop(t *testing.T) {
	r := styles.NewViewRenderer(styles.NewTheme())

	sel := entity.Selection{Index: 2}
	applied := r.RenderDrop(&usecase.ResolveDropOutput{Applied: true, Selection: &sel})
	assert.Contains(t, applied, "drop applied")
	assert.Contains(t, applied, "_2_null")

	discarded := r.RenderDrop(&usecase.ResolveDropOutput{Reason: usecase.DiscardRegistryMiss})
	require.Contains(t, discarded, "discarded")
	assert.Contains(t, discarded, usecase.DiscardRegistryMiss)
}
