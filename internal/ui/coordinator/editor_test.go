package coordinator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rclayout/internal/application/port"
	"github.com/bnema/rclayout/internal/application/port/mocks"
	"github.com/bnema/rclayout/internal/application/usecase"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/logging"
	"github.com/bnema/rclayout/internal/ui/dnd"
	"github.com/bnema/rclayout/internal/ui/mainloop"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

// memStore is a ViewStore holding the view in memory.
type memStore struct {
	mu   sync.Mutex
	view *entity.View
}

func (s *memStore) Current(context.Context) (*entity.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Clone(), nil
}

func (s *memStore) Commit(_ context.Context, view *entity.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view.Clone()
	return nil
}

// pendingTimers captures hover timers so tests fire them explicitly.
type pendingTimers struct {
	fns []func()
}

func (p *pendingTimers) after(_ time.Duration, fn func()) func() bool {
	p.fns = append(p.fns, fn)
	return func() bool { return true }
}

func (p *pendingTimers) fireLast() {
	p.fns[len(p.fns)-1]()
}

var _ mainloop.AfterFunc = (&pendingTimers{}).after

func sampleView() *entity.View {
	return &entity.View{Tabs: []*entity.Tab{
		{
			Name:   "Main",
			Layout: entity.TabLayoutStack,
			Panels: []*entity.Node{
				entity.NewPanel(
					entity.NewWidget(entity.WidgetToggle, "power"),
					entity.NewWidget(entity.WidgetSlider, "brightness"),
				),
			},
		},
		{Name: "Tab 2", Layout: entity.TabLayoutStack},
		{Name: "Snapshot", Layout: entity.TabLayoutScreen, Screen: &entity.Screen{Type: entity.ScreenSnapshot}},
	}}
}

type harness struct {
	store  *memStore
	reg    *dnd.Registry
	timers *pendingTimers
	editor *EditorCoordinator
}

func newHarness(t *testing.T, confirmer port.Confirmer) *harness {
	t.Helper()
	ctx := testCtx()
	h := &harness{
		store:  &memStore{view: sampleView()},
		reg:    dnd.NewRegistry(),
		timers: &pendingTimers{},
	}
	h.editor = NewEditorCoordinator(ctx, EditorCoordinatorConfig{
		Store:     h.store,
		Registry:  h.reg,
		Resolver:  usecase.NewResolveDropUseCase(h.store, h.reg),
		TabsUC:    usecase.NewManageTabsUseCase(h.store, confirmer, nil),
		DeleteUC:  usecase.NewDeleteWidgetUseCase(h.store, confirmer),
		AfterFunc: h.timers.after,
	})
	require.NoError(t, h.editor.Remount(ctx))
	return h
}

func TestEditorCoordinator_ChangeTab(t *testing.T) {
	h := newHarness(t, nil)
	ctx := testCtx()

	require.NoError(t, h.editor.ChangeTab(ctx, 1))
	state := h.editor.State()
	assert.Equal(t, 1, state.Tab)
	assert.True(t, state.Editable, "empty stack switches to edit mode")

	_, ok := h.reg.Lookup(dnd.ZoneID(1, nil))
	assert.True(t, ok, "zones of the new tab are mounted")
	_, ok = h.reg.Lookup(dnd.ZoneID(0, entity.ParsePath("0.widgets")))
	assert.False(t, ok, "zones of the old tab are gone")

	require.NoError(t, h.editor.ChangeTab(ctx, 99))
	assert.Equal(t, 2, h.editor.State().Tab)
}

func TestEditorCoordinator_SelectionFollowsEditMode(t *testing.T) {
	h := newHarness(t, nil)
	sel := entity.NewSelection(entity.ParsePath("0.widgets"), 1, entity.NewWidget(entity.WidgetSlider, "brightness"))

	h.editor.Select(&sel)
	assert.Nil(t, h.editor.State().Selected, "selection is ignored outside edit mode")

	h.editor.SetEditable(true)
	h.editor.Select(&sel)
	require.NotNil(t, h.editor.State().Selected)

	h.editor.SetEditable(true)
	assert.NotNil(t, h.editor.State().Selected, "same mode keeps the selection")

	h.editor.SetEditable(false)
	assert.Nil(t, h.editor.State().Selected)
}

func TestEditorCoordinator_TabHover(t *testing.T) {
	h := newHarness(t, nil)
	ctx := testCtx()

	require.NoError(t, h.editor.BeginDrag(ctx, "0.widgets_0_Toggle", entity.Location{ZoneID: dnd.ZoneID(0, entity.ParsePath("0.widgets"))}, nil))
	h.editor.MoveDrag([]port.HitElement{{TabPrefix: "accordion", TabValue: "3"}})
	require.Len(t, h.timers.fns, 1)
	h.timers.fireLast()

	state := h.editor.State()
	assert.Equal(t, "accordion_3", state.HoverTab)
	assert.Equal(t, 0, state.Tab, "only the main tab bar switches tabs")

	h.editor.MoveDrag([]port.HitElement{{TabPrefix: dnd.TabBarPrefix, TabValue: "1"}})
	h.timers.fireLast()
	state = h.editor.State()
	assert.Equal(t, 1, state.Tab)
	assert.Equal(t, "0.widgets_0_Toggle", state.Dragging)

	h.editor.CancelDrag(ctx)
	state = h.editor.State()
	assert.Empty(t, state.Dragging)
	assert.Empty(t, state.HoverTab)
}

func TestEditorCoordinator_DragAcrossTabs(t *testing.T) {
	h := newHarness(t, nil)
	ctx := testCtx()
	src := entity.Location{ZoneID: dnd.ZoneID(0, entity.ParsePath("0.widgets")), Index: 1}

	require.NoError(t, h.editor.BeginDrag(ctx, "0.widgets_1_Slider", src, nil))
	h.editor.MoveDrag([]port.HitElement{{TabPrefix: dnd.TabBarPrefix, TabValue: "1"}})
	h.timers.fireLast()
	require.Equal(t, 1, h.editor.State().Tab)
	_, ok := h.reg.Lookup(src.ZoneID)
	require.True(t, ok, "source zone survives the tab switch")

	root := dnd.ZoneID(1, nil)
	h.editor.MoveDrag([]port.HitElement{{ZoneID: root}})
	assert.Equal(t, root, h.editor.State().Droppable)

	out, err := h.editor.EndDrag(ctx, entity.DropGeneral, &entity.Location{ZoneID: root, Index: 0})
	require.NoError(t, err)
	require.True(t, out.Applied, out.Reason)

	view := h.store.view
	require.Len(t, view.Tabs[0].Panels[0].Widgets, 1)
	require.Len(t, view.Tabs[1].Panels, 1)
	boxed := view.Tabs[1].Panels[0]
	assert.Equal(t, entity.NodePanel, boxed.Kind)
	require.Len(t, boxed.Widgets, 1)
	assert.Equal(t, "brightness", boxed.Widgets[0].Property)

	state := h.editor.State()
	assert.Empty(t, state.Dragging)
	assert.Empty(t, state.Droppable)
	require.NotNil(t, state.Selected)
	assert.Equal(t, "_0_null", state.Selected.String())

	_, ok = h.reg.Lookup(dnd.ZoneID(1, entity.ParsePath("0.widgets")))
	assert.True(t, ok, "new panel is mounted after the drop")
	_, ok = h.reg.Lookup(src.ZoneID)
	assert.False(t, ok, "source tab zones are released after the drop")
}

func TestEditorCoordinator_HandleKey(t *testing.T) {
	ctx := testCtx()

	tests := []struct {
		name        string
		start       int
		key         KeyEvent
		wantHandled bool
		wantTab     int
	}{
		{name: "plain digit ignored", key: KeyEvent{Key: "2"}, wantTab: 0},
		{name: "ctrl digit", key: KeyEvent{Key: "2", Ctrl: true}, wantHandled: true, wantTab: 1},
		{name: "meta digit", key: KeyEvent{Key: "3", Meta: true}, wantHandled: true, wantTab: 2},
		{name: "ctrl zero is last tab", key: KeyEvent{Key: "0", Ctrl: true}, wantHandled: true, wantTab: 2},
		{name: "digit past end clamps", key: KeyEvent{Key: "9", Ctrl: true}, wantHandled: true, wantTab: 2},
		{name: "next tab", start: 1, key: KeyEvent{Key: "ArrowRight", Ctrl: true}, wantHandled: true, wantTab: 2},
		{name: "previous tab", start: 1, key: KeyEvent{Key: "ArrowLeft", Ctrl: true}, wantHandled: true, wantTab: 0},
		{name: "previous from first stays", key: KeyEvent{Key: "ArrowLeft", Ctrl: true}, wantHandled: true, wantTab: 0},
		{name: "unbound ctrl key", key: KeyEvent{Key: "q", Ctrl: true}, wantTab: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			require.NoError(t, h.editor.ChangeTab(ctx, tt.start))

			handled, err := h.editor.HandleKey(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHandled, handled)
			assert.Equal(t, tt.wantTab, h.editor.State().Tab)
		})
	}
}

func TestEditorCoordinator_ToggleEditKey(t *testing.T) {
	h := newHarness(t, nil)
	ctx := testCtx()

	handled, err := h.editor.HandleKey(ctx, KeyEvent{Key: "E", Ctrl: true})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.True(t, h.editor.State().Editable)

	_, err = h.editor.HandleKey(ctx, KeyEvent{Key: "e", Ctrl: true})
	require.NoError(t, err)
	assert.False(t, h.editor.State().Editable)
}

func TestEditorCoordinator_DeleteKey(t *testing.T) {
	ctx := testCtx()
	sel := entity.NewSelection(entity.ParsePath("0.widgets"), 0, entity.NewWidget(entity.WidgetToggle, "power"))

	t.Run("shift skips the prompt", func(t *testing.T) {
		confirmer := mocks.NewMockConfirmer(t)
		h := newHarness(t, confirmer)
		h.editor.SetEditable(true)
		h.editor.Select(&sel)

		handled, err := h.editor.HandleKey(ctx, KeyEvent{Key: "Delete", Shift: true})
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Nil(t, h.editor.State().Selected)
		require.Len(t, h.store.view.Tabs[0].Panels[0].Widgets, 1)
		assert.Equal(t, "brightness", h.store.view.Tabs[0].Panels[0].Widgets[0].Property)
	})

	t.Run("declined prompt keeps the widget", func(t *testing.T) {
		confirmer := mocks.NewMockConfirmer(t)
		confirmer.EXPECT().Confirm(mock.Anything, usecase.ConfirmDeleteWidget).Return(false, nil).Once()
		h := newHarness(t, confirmer)
		h.editor.SetEditable(true)
		h.editor.Select(&sel)

		handled, err := h.editor.HandleKey(ctx, KeyEvent{Key: "Delete"})
		require.NoError(t, err)
		assert.True(t, handled)
		assert.NotNil(t, h.editor.State().Selected)
		assert.Len(t, h.store.view.Tabs[0].Panels[0].Widgets, 2)
	})

	t.Run("ignored without edit mode or in inputs", func(t *testing.T) {
		confirmer := mocks.NewMockConfirmer(t)
		h := newHarness(t, confirmer)

		handled, err := h.editor.HandleKey(ctx, KeyEvent{Key: "Delete", Shift: true})
		require.NoError(t, err)
		assert.False(t, handled)

		h.editor.SetEditable(true)
		h.editor.Select(&sel)
		handled, err = h.editor.HandleKey(ctx, KeyEvent{Key: "Delete", Shift: true, InInput: true})
		require.NoError(t, err)
		assert.False(t, handled)
		assert.Len(t, h.store.view.Tabs[0].Panels[0].Widgets, 2)
	})
}

func TestEditorCoordinator_TabCommands(t *testing.T) {
	ctx := testCtx()
	confirmer := mocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, usecase.ConfirmDeleteTab).Return(true, nil).Maybe()
	h := newHarness(t, confirmer)

	require.NoError(t, h.editor.NewTab(ctx))
	state := h.editor.State()
	assert.Equal(t, 3, state.Tab)
	assert.True(t, state.Editable)
	assert.Len(t, h.store.view.Tabs, 4)

	require.NoError(t, h.editor.ChangeTab(ctx, 0))
	require.NoError(t, h.editor.DuplicateTab(ctx))
	assert.Equal(t, 4, h.editor.State().Tab)
	assert.Equal(t, 2, h.store.view.Tabs[4].WidgetCount())

	require.NoError(t, h.editor.AddScreenTab(ctx, entity.ScreenSequencer))
	assert.Equal(t, 5, h.editor.State().Tab)

	require.NoError(t, h.editor.DeleteTab(ctx, 5, false))
	assert.Len(t, h.store.view.Tabs, 5)
	assert.Equal(t, 4, h.editor.State().Tab)
}

func TestEditorCoordinator_OnChange(t *testing.T) {
	h := newHarness(t, nil)
	var seen []EditorState
	h.editor.SetOnChange(func(s EditorState) { seen = append(seen, s) })

	h.editor.SetEditable(true)
	require.Len(t, seen, 1)
	assert.True(t, seen[0].Editable)
}
