package config

// Defaults applied when a key is absent from tvmenu.conf.
const (
	defaultPadding   = 0.0
	defaultHeight    = 0.0
	defaultWidth     = 0.0
	defaultColumnGap = 10.0
	defaultRowGap    = 10.0

	defaultEntryBorderRadius = 0.0
	defaultEntryTextSize     = 12.0
	defaultEntryWidth        = 100.0
	defaultEntryHeight       = 100.0
)

// DefaultIconDirs are searched recursively for entry icons.
var DefaultIconDirs = []string{"/usr/share/pixmaps", "/usr/share/icons"}

// DefaultConfigPaths returns the candidates tried by Load: tvmenu.conf in the XDG
// config directory, then ./tvmenu.conf.
func DefaultConfigPaths() []string {
	return []string{xdgOr(GetConfigFile, "~/.config/tvmenu/"+configFileName), "./" + configFileName}
}

// DefaultEntryDirs returns the directories tried in order when loading menu entries:
// the entries directory next to the default config, then ./entries.
func DefaultEntryDirs() []string {
	return []string{xdgOr(GetEntriesDir, "~/.config/tvmenu/"+entriesDirName), "./" + entriesDirName}
}

// xdgOr returns the path from get, or fallback when the home directory is unknown.
func xdgOr(get func() (string, error), fallback string) string {
	path, err := get()
	if err != nil {
		return fallback
	}
	return path
}

// DefaultAppConfig returns the configuration of an empty tvmenu.conf.
func DefaultAppConfig() *AppConfig {
	return (&AppConfigBuilder{}).Build()
}
