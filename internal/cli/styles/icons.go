package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconInfo     = "" // info
	IconTrash    = "" // trash
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconArrow    = "" // arrow right
	IconEdit     = "" // pencil

	// Layout tree
	IconTab    = "" // window
	IconPanel  = "" // square
	IconList   = "" // list
	IconWidget = "" // sliders
	IconScreen = "" // desktop
	IconGrab   = "" // hand
)
