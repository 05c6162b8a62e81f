// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// WidgetType tags a widget node and drives drop acceptance.
type WidgetType string

const (
	WidgetButton          WidgetType = "Button"
	WidgetColorPicker     WidgetType = "Color Picker"
	WidgetMiniColorPicker WidgetType = "Mini Color Picker"
	WidgetColorPickerList WidgetType = "Color Picker List"
	WidgetToggle          WidgetType = "Toggle"
	WidgetDial            WidgetType = "Dial"
	WidgetDials           WidgetType = "Dials"
	WidgetJoystick        WidgetType = "Joystick"
	WidgetSlider          WidgetType = "Slider"
	WidgetSliders         WidgetType = "Sliders"
	WidgetScaleSlider     WidgetType = "Scale Slider"
	WidgetVector          WidgetType = "Vector"
	WidgetText            WidgetType = "Text"
	WidgetLabel           WidgetType = "Label"
	WidgetDropdown        WidgetType = "Dropdown"
	WidgetImageSelector   WidgetType = "Image Selector"
	WidgetLevel           WidgetType = "Level"
	WidgetGradient        WidgetType = "Gradient"
)

// compactWidgets are the inline widget kinds subject to same-container
// forward-move index compensation.
var compactWidgets = map[WidgetType]struct{}{
	WidgetButton:          {},
	WidgetColorPicker:     {},
	WidgetMiniColorPicker: {},
	WidgetToggle:          {},
}

// IsCompact reports whether the widget type renders inline.
func (w WidgetType) IsCompact() bool {
	_, ok := compactWidgets[w]
	return ok
}
