package entity

import (
	"errors"
	"testing"
)

func TestParseDragItem(t *testing.T) {
	tests := []struct {
		id       string
		wantType string
		wantKind DragKind
	}{
		{"0.widgets_1_Toggle", "Toggle", DragWidget},
		{"panel_0_PANEL", "PANEL", DragPanel},
		{"new_LIST", "LIST", DragList},
		{"REORDER_0.tabs_1_Tabs", "Tabs", DragReorder},
		{"Slider", "Slider", DragWidget},
	}

	for _, tt := range tests {
		got := ParseDragItem(tt.id)
		if got.Type != tt.wantType || got.Kind != tt.wantKind {
			t.Fatalf("ParseDragItem(%q) = %+v, want type %q kind %v", tt.id, got, tt.wantType, tt.wantKind)
		}
	}
}

func TestDragSession_DetachIsIdempotent(t *testing.T) {
	container := []*Node{NewWidget(WidgetToggle, "A"), NewWidget(WidgetButton, "B")}
	s := NewDragSession("s1", ParseDragItem("x_Button"), Location{ZoneID: "z", Index: 1})

	first, err := s.Detach(&container, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Detach(&container, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(container) != 1 || container[0].Property != "A" {
		t.Fatalf("expected exactly one detach, container=%v", container)
	}
	if first[0] != second[0] {
		t.Fatalf("expected second detach to return the staged node")
	}
}

func TestDragSession_DetachUnderflow(t *testing.T) {
	var container []*Node
	s := NewDragSession("s1", ParseDragItem("x_Button"), Location{})

	_, err := s.Detach(&container, 0)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if s.HasStaged() {
		t.Fatalf("failed detach must not stage anything")
	}
}

func TestDragSession_UnstageKeepsPaletteNodes(t *testing.T) {
	container := []*Node{NewWidget(WidgetToggle, "A")}
	detached := NewDragSession("s1", ParseDragItem("x_Toggle"), Location{})
	_, _ = detached.Detach(&container, 0)
	detached.Unstage()
	if detached.HasStaged() {
		t.Fatalf("expected Unstage to clear a detached node")
	}

	palette := NewDragSession("s2", ParseDragItem("palette_Slider"), Location{})
	if err := palette.Stage(NewWidget(WidgetSlider, "S")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	palette.Unstage()
	if !palette.HasStaged() {
		t.Fatalf("expected palette node to survive Unstage")
	}
	if err := palette.Stage(NewWidget(WidgetSlider, "T")); !errors.Is(err, ErrAlreadyStaged) {
		t.Fatalf("expected ErrAlreadyStaged, got %v", err)
	}
}
