package entity

import (
	"errors"
	"testing"
)

func TestView_MoveTab(t *testing.T) {
	v := &View{Tabs: []*Tab{{Name: "T0"}, {Name: "T1"}, {Name: "T2"}}}

	if err := v.MoveTab(0, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := []string{v.Tabs[0].Name, v.Tabs[1].Name, v.Tabs[2].Name}
	want := []string{"T1", "T2", "T0"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestView_CloneIsDeep(t *testing.T) {
	v := &View{Tabs: []*Tab{sampleTab()}}
	c := v.Clone()

	c.Tabs[0].Panels[0].Widgets[0].Property = "changed"
	c.Tabs[0].Panels[1].Items[0].Label = "changed"

	if v.Tabs[0].Panels[0].Widgets[0].Property != "A" {
		t.Fatalf("clone shares widget nodes with original")
	}
	if v.Tabs[0].Panels[1].Items[0].Label != "Item 1" {
		t.Fatalf("clone shares list items with original")
	}
}

func TestWidgetCount(t *testing.T) {
	v := &View{Tabs: []*Tab{sampleTab(), {Layout: TabLayoutScreen, Screen: &Screen{Type: ScreenSnapshot}}}}
	if got := v.WidgetCount(); got != 3 {
		t.Fatalf("expected 3 widgets, got %d", got)
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct{ in, length, want int }{
		{-1, 3, 0},
		{0, 3, 0},
		{3, 3, 3},
		{10, 3, 3},
	}
	for _, tt := range tests {
		if got := ClampIndex(tt.in, tt.length); got != tt.want {
			t.Fatalf("ClampIndex(%d, %d) = %d, want %d", tt.in, tt.length, got, tt.want)
		}
	}
}

func TestSelection_StringAndParse(t *testing.T) {
	sel := Selection{Path: ParsePath("0.widgets"), Index: 2, Property: "Light_Intensity"}
	if sel.String() != "0.widgets_2_Light_Intensity" {
		t.Fatalf("unexpected selection string %q", sel.String())
	}

	parsed, err := ParseSelection(sel.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.Path.Equal(sel.Path) || parsed.Index != 2 || parsed.Property != "Light_Intensity" {
		t.Fatalf("unexpected parse %+v", parsed)
	}

	empty := Selection{Index: 0}
	if empty.String() != "_0_null" {
		t.Fatalf("unexpected null selection %q", empty.String())
	}
	parsedEmpty, err := ParseSelection("_0_null")
	if err != nil || parsedEmpty.Property != "" || !parsedEmpty.Path.IsRoot() {
		t.Fatalf("unexpected parse of null selection %+v err=%v", parsedEmpty, err)
	}
}

func TestView_Normalize(t *testing.T) {
	v := &View{Tabs: []*Tab{{Name: "bare"}}}
	if err := v.Normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Tabs[0].Layout != TabLayoutStack || v.Tabs[0].Panels == nil {
		t.Fatalf("expected an empty stack tab, got %+v", v.Tabs[0])
	}

	empty := &View{}
	if err := empty.Normalize(); err != nil || empty.Tabs == nil {
		t.Fatalf("expected non-nil tabs, got %v, %v", empty.Tabs, err)
	}

	bad := []*View{
		{Tabs: []*Tab{nil}},
		{Tabs: []*Tab{{Layout: "Grid"}}},
		{Tabs: []*Tab{{Layout: TabLayoutScreen}}},
		{Tabs: []*Tab{{Layout: TabLayoutStack, Panels: []*Node{nil}}}},
	}
	for i, b := range bad {
		if err := b.Normalize(); !errors.Is(err, ErrInvalidView) {
			t.Fatalf("case %d: expected ErrInvalidView, got %v", i, err)
		}
	}
}
