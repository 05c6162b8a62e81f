package entity

import "fmt"

// TabLayout selects how a tab renders its content.
type TabLayout string

const (
	TabLayoutStack  TabLayout = "Stack"
	TabLayoutScreen TabLayout = "Screen"
)

// ScreenType identifies a built-in full-screen tab.
type ScreenType string

const (
	ScreenSnapshot  ScreenType = "Snapshot"
	ScreenSequencer ScreenType = "Sequencer"
)

// Screen is the payload of a screen-layout tab.
type Screen struct {
	Type ScreenType `json:"type"`
}

// Tab is a top-level entry of the view's tab bar.
type Tab struct {
	Name   string    `json:"name"`
	Icon   string    `json:"icon"`
	Layout TabLayout `json:"layout"`
	Panels []*Node   `json:"panels,omitempty"`
	Screen *Screen   `json:"screen,omitempty"`
}

// IsEmptyStack reports whether the tab is a stack with nothing placed yet.
func (t *Tab) IsEmptyStack() bool {
	return t != nil && t.Layout == TabLayoutStack && len(t.Panels) == 0
}

// Clone returns a deep copy of the tab.
func (t *Tab) Clone() *Tab {
	if t == nil {
		return nil
	}
	c := *t
	c.Panels = cloneNodes(t.Panels)
	if t.Screen != nil {
		s := *t.Screen
		c.Screen = &s
	}
	return &c
}

// WidgetCount returns the number of widget nodes in the tab.
func (t *Tab) WidgetCount() int {
	if t == nil {
		return 0
	}
	count := 0
	for _, n := range t.Panels {
		count += n.WidgetCount()
	}
	return count
}

// View is the whole persisted layout of a preset.
type View struct {
	Tabs []*Tab `json:"tabs"`
}

// NewView creates an empty view.
func NewView() *View {
	return &View{Tabs: make([]*Tab, 0)}
}

// Clone returns a deep copy of the view.
func (v *View) Clone() *View {
	if v == nil {
		return nil
	}
	c := &View{Tabs: make([]*Tab, len(v.Tabs))}
	for i, t := range v.Tabs {
		c.Tabs[i] = t.Clone()
	}
	return c
}

// Tab returns the tab at index or nil.
func (v *View) Tab(index int) *Tab {
	if v == nil || index < 0 || index >= len(v.Tabs) {
		return nil
	}
	return v.Tabs[index]
}

// WidgetCount returns the number of widget nodes across all tabs.
func (v *View) WidgetCount() int {
	if v == nil {
		return 0
	}
	count := 0
	for _, t := range v.Tabs {
		count += t.WidgetCount()
	}
	return count
}

// MoveTab removes the tab at from and reinserts it at to.
// Both indices are clamped to the tab range.
func (v *View) MoveTab(from, to int) error {
	if from < 0 || from >= len(v.Tabs) {
		return fmt.Errorf("%w: tab %d", ErrIndexOutOfRange, from)
	}
	tab := v.Tabs[from]
	v.Tabs = removeAt(v.Tabs, from)
	v.Tabs = insertAt(v.Tabs, to, tab)
	return nil
}

// Normalize fills defaults left out of hand-written views and rejects
// shapes the editor cannot render.
func (v *View) Normalize() error {
	if v.Tabs == nil {
		v.Tabs = make([]*Tab, 0)
	}
	for i, t := range v.Tabs {
		if t == nil {
			return fmt.Errorf("%w: tab %d is null", ErrInvalidView, i)
		}
		switch t.Layout {
		case "":
			t.Layout = TabLayoutStack
		case TabLayoutStack, TabLayoutScreen:
		default:
			return fmt.Errorf("%w: tab %d has unknown layout %q", ErrInvalidView, i, t.Layout)
		}
		if t.Layout == TabLayoutScreen && t.Screen == nil {
			return fmt.Errorf("%w: screen tab %d has no screen", ErrInvalidView, i)
		}
		if t.Layout == TabLayoutStack && t.Panels == nil {
			t.Panels = make([]*Node, 0)
		}
		for _, n := range t.Panels {
			if n == nil {
				return fmt.Errorf("%w: tab %d holds a null panel", ErrInvalidView, i)
			}
		}
	}
	return nil
}
