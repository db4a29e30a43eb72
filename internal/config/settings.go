package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings controls where tvmenu looks for its files and how it logs.
// They come from flags and TVMENU_* environment variables, never from tvmenu.conf.
type Settings struct {
	// ConfigPaths are the tvmenu.conf candidates, tried in order.
	ConfigPaths []string `mapstructure:"config"`
	// EntryDirs are the entry directories, tried in order.
	EntryDirs []string `mapstructure:"entries"`
	// IconDirs are searched recursively for entry icons.
	IconDirs []string    `mapstructure:"icon_dirs"`
	Log      LogSettings `mapstructure:"log"`
}

// LogSettings holds logging configuration.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File, when set, receives the logs instead of stderr. It is rotated by size.
	File string `mapstructure:"file"`
}

// SettingsLoader resolves Settings with Viper.
type SettingsLoader struct {
	viper *viper.Viper
}

// NewSettingsLoader creates a loader reading TVMENU_* environment variables.
//
//	TVMENU_CONFIG      comma-separated config candidates
//	TVMENU_ENTRIES     comma-separated entry directories
//	TVMENU_ICON_DIRS   comma-separated icon directories
//	TVMENU_LOG_LEVEL   trace, debug, info, warn, error
//	TVMENU_LOG_FORMAT  console, json
//	TVMENU_LOG_FILE    log file path, stderr when unset
func NewSettingsLoader() *SettingsLoader {
	v := viper.New()
	v.SetEnvPrefix("TVMENU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	l := &SettingsLoader{viper: v}
	l.setDefaults()
	return l
}

func (l *SettingsLoader) setDefaults() {
	l.viper.SetDefault("config", DefaultConfigPaths())
	l.viper.SetDefault("entries", DefaultEntryDirs())
	l.viper.SetDefault("icon_dirs", DefaultIconDirs)
	l.viper.SetDefault("log.level", "warn")
	l.viper.SetDefault("log.format", "console")
	l.viper.SetDefault("log.file", "")
}

// BindFlags binds the persistent flags registered by RegisterFlags.
func (l *SettingsLoader) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"config":     "config",
		"entries":    "entries",
		"icon_dirs":  "icon-dir",
		"log.level":  "log-level",
		"log.format": "log-format",
		"log.file":   "log-file",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

// RegisterFlags adds the settings flags to a flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringSliceP("config", "c", nil, "config file candidates, tried in order")
	flags.StringSliceP("entries", "e", nil, "entry directories, tried in order")
	flags.StringSlice("icon-dir", nil, "icon search directories")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")
	flags.String("log-file", "", "write logs to this file instead of stderr")
}

// Load resolves and validates the settings.
func (l *SettingsLoader) Load() (*Settings, error) {
	s := &Settings{}
	if err := l.viper.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	normalizeSettings(s)
	if err := validateSettings(s); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return s, nil
}

func normalizeSettings(s *Settings) {
	s.ConfigPaths = compact(s.ConfigPaths)
	s.EntryDirs = compact(s.EntryDirs)
	s.IconDirs = compact(s.IconDirs)
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	s.Log.Format = strings.ToLower(strings.TrimSpace(s.Log.Format))
	s.Log.File = strings.TrimSpace(s.Log.File)
}

func compact(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
