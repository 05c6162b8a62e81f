package dnd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rclayout/internal/application/port/mocks"
	"github.com/bnema/rclayout/internal/application/usecase"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/bnema/rclayout/internal/logging"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

type selectionRecorder struct {
	calls []*entity.Selection
	tabs  []int
}

func (s *selectionRecorder) SelectionChanged(sel *entity.Selection) { s.calls = append(s.calls, sel) }
func (s *selectionRecorder) ActiveTabChanged(index int)             { s.tabs = append(s.tabs, index) }

type stubResolver struct {
	out    *usecase.ResolveDropOutput
	inputs []usecase.ResolveDropInput
}

func (r *stubResolver) Execute(_ context.Context, in usecase.ResolveDropInput) (*usecase.ResolveDropOutput, error) {
	r.inputs = append(r.inputs, in)
	return r.out, nil
}

func TestController_SingleSession(t *testing.T) {
	ctx := testCtx()
	c := NewController(ControllerConfig{NewID: func() string { return "s1" }})

	session, err := c.Begin(ctx, BeginInput{ItemID: "0.widgets_0_Toggle"})
	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)

	_, err = c.Begin(ctx, BeginInput{ItemID: "0.widgets_1_Toggle"})
	assert.ErrorIs(t, err, ErrDragInProgress)

	c.Cancel(ctx)
	assert.Nil(t, c.Session())

	_, err = c.Begin(ctx, BeginInput{ItemID: "0.widgets_1_Toggle"})
	assert.NoError(t, err)
}

func TestController_DefaultSessionIDIsUUID(t *testing.T) {
	c := NewController(ControllerConfig{})
	session, err := c.Begin(testCtx(), BeginInput{ItemID: "x_Toggle"})
	require.NoError(t, err)
	assert.Len(t, session.ID, 36)
}

func TestController_BeginSelectionPolicy(t *testing.T) {
	tests := []struct {
		item      string
		wantClear bool
	}{
		{item: "0.widgets_0_Toggle", wantClear: true},
		{item: ReorderID(1, ItemDragType), wantClear: false},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			rec := &selectionRecorder{}
			c := NewController(ControllerConfig{Selection: rec})

			_, err := c.Begin(testCtx(), BeginInput{ItemID: tt.item})
			require.NoError(t, err)

			if tt.wantClear {
				require.Len(t, rec.calls, 1)
				assert.Nil(t, rec.calls[0])
			} else {
				assert.Empty(t, rec.calls)
			}
		})
	}
}

func TestController_DropWithoutSession(t *testing.T) {
	c := NewController(ControllerConfig{Resolver: &stubResolver{}})
	_, err := c.Drop(testCtx(), DropInput{})
	assert.ErrorIs(t, err, ErrNoDrag)
}

func TestController_DropPublishesOutcome(t *testing.T) {
	ctx := testCtx()
	sel := entity.Selection{Path: entity.ParsePath("0.widgets"), Index: 1, Property: "A"}
	active := 2

	t.Run("placement selects placed item", func(t *testing.T) {
		rec := &selectionRecorder{}
		resolver := &stubResolver{out: &usecase.ResolveDropOutput{Applied: true, Selection: &sel}}
		c := NewController(ControllerConfig{Resolver: resolver, Selection: rec, ActiveTab: rec})

		_, err := c.Begin(ctx, BeginInput{ItemID: "0.widgets_0_Toggle", Tab: 3, Origin: entity.Location{ZoneID: "src", Index: 4}})
		require.NoError(t, err)
		_, err = c.Drop(ctx, DropInput{Kind: entity.DropGeneral, Destination: &entity.Location{ZoneID: "dst", Index: 1}})
		require.NoError(t, err)

		require.Len(t, resolver.inputs, 1)
		in := resolver.inputs[0]
		assert.Equal(t, 3, in.TabIndex)
		assert.Equal(t, "src", in.Result.Source.ZoneID)
		assert.Equal(t, 4, in.Result.Source.Index)
		assert.Equal(t, "dst", in.Result.Destination.ZoneID)
		assert.Nil(t, in.SourceTab)

		require.Len(t, rec.calls, 2)
		assert.Equal(t, &sel, rec.calls[1])
		assert.Nil(t, c.Session())
	})

	t.Run("header reorder switches tab", func(t *testing.T) {
		rec := &selectionRecorder{}
		resolver := &stubResolver{out: &usecase.ResolveDropOutput{Applied: true, ActiveTab: &active}}
		c := NewController(ControllerConfig{Resolver: resolver, Selection: rec, ActiveTab: rec})

		_, err := c.Begin(ctx, BeginInput{ItemID: ReorderID(0, HeaderDragType)})
		require.NoError(t, err)
		_, err = c.Drop(ctx, DropInput{Kind: entity.DropHeaderTabs, Destination: &entity.Location{ZoneID: HeadersZoneID(), Index: 2}})
		require.NoError(t, err)

		assert.Equal(t, []int{2}, rec.tabs)
		require.Len(t, rec.calls, 1)
		assert.Nil(t, rec.calls[0])
	})

	t.Run("item reorder keeps selection", func(t *testing.T) {
		rec := &selectionRecorder{}
		resolver := &stubResolver{out: &usecase.ResolveDropOutput{Applied: true}}
		c := NewController(ControllerConfig{Resolver: resolver, Selection: rec})

		_, err := c.Begin(ctx, BeginInput{ItemID: ReorderID(0, ItemDragType)})
		require.NoError(t, err)
		_, err = c.Drop(ctx, DropInput{Kind: entity.DropListReorder, Destination: &entity.Location{ZoneID: "l", Index: 1}})
		require.NoError(t, err)

		assert.Empty(t, rec.calls)
	})

	t.Run("discard clears selection", func(t *testing.T) {
		rec := &selectionRecorder{}
		resolver := &stubResolver{out: &usecase.ResolveDropOutput{Reason: usecase.DiscardNoDestination}}
		c := NewController(ControllerConfig{Resolver: resolver, Selection: rec})

		_, err := c.Begin(ctx, BeginInput{ItemID: "0.widgets_0_Toggle"})
		require.NoError(t, err)
		_, err = c.Drop(ctx, DropInput{})
		require.NoError(t, err)

		require.Len(t, rec.calls, 2)
		assert.Nil(t, rec.calls[1])
	})
}

// TestController_EndToEnd drives a mounted tab through the real resolver.
func TestController_EndToEnd(t *testing.T) {
	ctx := testCtx()
	view := &entity.View{Tabs: []*entity.Tab{{
		Name:   "Tab 1",
		Layout: entity.TabLayoutStack,
		Panels: []*entity.Node{
			entity.NewPanel(entity.NewWidget(entity.WidgetToggle, "A"), entity.NewWidget(entity.WidgetSlider, "B")),
		},
	}}}

	store := mocks.NewMockViewStore(t)
	store.EXPECT().Current(mock.Anything).RunAndReturn(func(context.Context) (*entity.View, error) {
		return view.Clone(), nil
	})
	store.EXPECT().Commit(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, v *entity.View) error {
		view = v
		return nil
	})

	reg := NewRegistry()
	MountTab(reg, 0, view.Tabs[0])

	timers := &manualTimers{}
	hover := NewHoverTracker(reg, nil, WithAfterFunc(timers.AfterFunc))
	rec := &selectionRecorder{}
	c := NewController(ControllerConfig{
		Hover:     hover,
		Resolver:  usecase.NewResolveDropUseCase(store, reg),
		Selection: rec,
	})

	palette := entity.NewWidget(entity.WidgetDial, "C")
	_, err := c.Begin(ctx, BeginInput{ItemID: "palette_Dial", Template: palette})
	require.NoError(t, err)

	c.Move(zoneHit(ZoneID(0, nil)))
	dst, ok := hover.Droppable()
	require.True(t, ok)

	out, err := c.Drop(ctx, DropInput{Kind: entity.DropGeneral, Destination: &entity.Location{ZoneID: dst, Index: 5}})
	require.NoError(t, err)
	require.True(t, out.Applied)

	require.Len(t, view.Tabs[0].Panels, 2)
	boxed := view.Tabs[0].Panels[1]
	assert.Equal(t, entity.NodePanel, boxed.Kind)
	assert.Equal(t, "C", boxed.Widgets[0].Property)
	assert.Equal(t, "_1_null", rec.calls[len(rec.calls)-1].String())
	assert.False(t, hover.Dragging())

	// The palette template itself is never inserted.
	boxed.Widgets[0].Property = "changed"
	assert.Equal(t, "C", palette.Property)
}

func TestController_DropOnOtherTab(t *testing.T) {
	ctx := testCtx()
	resolver := &stubResolver{out: &usecase.ResolveDropOutput{}}
	c := NewController(ControllerConfig{Resolver: resolver})

	_, err := c.Begin(ctx, BeginInput{ItemID: "0.widgets_0_Toggle", Tab: 1})
	require.NoError(t, err)
	shown := 2
	_, err = c.Drop(ctx, DropInput{Kind: entity.DropGeneral, Destination: &entity.Location{ZoneID: "dst"}, Tab: &shown})
	require.NoError(t, err)

	require.Len(t, resolver.inputs, 1)
	in := resolver.inputs[0]
	assert.Equal(t, 2, in.TabIndex)
	require.NotNil(t, in.SourceTab)
	assert.Equal(t, 1, *in.SourceTab)
}
