package port

// HitElement is one element under the pointer, topmost first.
type HitElement struct {
	// TabPrefix and TabValue are set on tab-switch targets.
	TabPrefix string
	TabValue  string
	// ZoneID is set on registered drop zones.
	ZoneID string
}

// IsTabTarget reports whether the element switches tabs on hover.
func (e HitElement) IsTabTarget() bool {
	return e.TabPrefix != ""
}

// HitTester returns the elements under a point, topmost first.
type HitTester interface {
	ElementsAt(x, y float64) []HitElement
}
