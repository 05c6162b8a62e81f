package usecase_test

import (
	"testing"

	"github.com/bnema/rclayout/internal/application/port/mocks"
	"github.com/bnema/rclayout/internal/application/usecase"
	"github.com/bnema/rclayout/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func selection(t *testing.T, s string) entity.Selection {
	t.Helper()
	sel, err := entity.ParseSelection(s)
	require.NoError(t, err)
	return sel
}

func TestDeleteWidgetUseCase_Execute_Confirmed(t *testing.T) {
	ctx := testContext()
	f := newViewFixture(t, editorView())
	confirmer := mocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, usecase.ConfirmDeleteWidget).Return(true, nil)

	uc := usecase.NewDeleteWidgetUseCase(f.store, confirmer)
	out, err := uc.Execute(ctx, usecase.DeleteWidgetInput{Selection: selection(t, "0.widgets_1_B")})
	require.NoError(t, err)
	require.True(t, out.Deleted)
	assert.Equal(t, "B", out.Removed.Property)
	assert.Equal(t, []string{"A", "C"}, properties(f.view.Tabs[0].Panels[0].Widgets))
}

func TestDeleteWidgetUseCase_Execute_ForceSkipsPrompt(t *testing.T) {
	ctx := testContext()
	f := newViewFixture(t, editorView())
	confirmer := mocks.NewMockConfirmer(t)

	uc := usecase.NewDeleteWidgetUseCase(f.store, confirmer)
	out, err := uc.Execute(ctx, usecase.DeleteWidgetInput{Selection: selection(t, "_0_null"), Force: true})
	require.NoError(t, err)
	require.True(t, out.Deleted)
	assert.Equal(t, entity.NodePanel, out.Removed.Kind)
	assert.Len(t, f.view.Tabs[0].Panels, 2)
}

func TestDeleteWidgetUseCase_Execute_NoOps(t *testing.T) {
	tests := []struct {
		name     string
		tab      int
		selected string
	}{
		{name: "declined", selected: "0.widgets_0_A"},
		{name: "path missing", selected: "9.widgets_0_A"},
		{name: "empty container", tab: 1, selected: "_0_null"},
		{name: "index past end", selected: "0.widgets_8_A"},
		{name: "no such tab", tab: 4, selected: "_0_null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			original := editorView()
			f := newViewFixture(t, original.Clone())
			confirmer := mocks.NewMockConfirmer(t)
			confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(false, nil).Maybe()

			uc := usecase.NewDeleteWidgetUseCase(f.store, confirmer)
			out, err := uc.Execute(ctx, usecase.DeleteWidgetInput{
				TabIndex:  tt.tab,
				Selection: selection(t, tt.selected),
			})
			require.NoError(t, err)
			assert.False(t, out.Deleted)
			assert.Zero(t, f.commits)
			assert.Equal(t, original, f.view)
		})
	}
}
