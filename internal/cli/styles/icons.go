package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconFolder  = "" // folder
	IconConfig  = "" // config
	IconFilter  = "" // filter
	IconPlay    = "" // play
	IconEye     = "" // eye
	IconCursor  = "" // chevron-right
)
