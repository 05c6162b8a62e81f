package entity

import (
	"slices"
	"testing"
)

func TestAcceptFilter(t *testing.T) {
	all := AcceptTypes(AcceptAll, "ignored")
	if !all.All || !all.Accepts("Toggle") {
		t.Fatalf("leading ALL must yield the sentinel filter")
	}
	if got := all.Tags(); !slices.Equal(got, []string{AcceptAll}) {
		t.Fatalf("expected [ALL], got %v", got)
	}

	f := AcceptWidgetTypes(WidgetSlider, WidgetDial)
	if !f.Accepts("Dial") || f.Accepts("Toggle") {
		t.Fatalf("explicit filter accepts the wrong tags")
	}
	if got := f.Tags(); !slices.Equal(got, []string{"Dial", "Slider"}) {
		t.Fatalf("expected sorted tags, got %v", got)
	}
}

func TestZoneKind_BoxesWidgets(t *testing.T) {
	for kind, want := range map[ZoneKind]bool{
		ZoneRoot:    true,
		ZoneList:    true,
		ZoneWidgets: false,
		ZonePanel:   false,
	} {
		if got := kind.BoxesWidgets(); got != want {
			t.Fatalf("%s: expected %v, got %v", kind, want, got)
		}
	}
}
