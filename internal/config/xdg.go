package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appName        = "tvmenu"
	configFileName = "tvmenu.conf"
	entriesDirName = "entries"
)

// ExpandUser replaces a leading "~" or "~/" with the user's home directory.
// Paths without a leading ~ are returned unchanged and never consult the environment.
func ExpandUser(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	rest := strings.TrimPrefix(path, "~")
	if rest != "" && !strings.HasPrefix(rest, "/") {
		return "", &Error{Kind: KindHomeDir, Value: path, Reason: "only ~ and ~/ prefixes are supported"}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &Error{Kind: KindHomeDir, Value: path, Reason: err.Error()}
	}
	return filepath.Join(home, strings.TrimPrefix(rest, "/")), nil
}

// ExpandAll expands every path with ExpandUser, stopping at the first failure.
func ExpandAll(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		expanded, err := ExpandUser(p)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}

// GetConfigDir returns the XDG config directory for tvmenu
// ($XDG_CONFIG_HOME/tvmenu, default ~/.config/tvmenu).
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the default location of tvmenu.conf inside the XDG config directory.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetEntriesDir returns the default entries directory inside the XDG config directory.
func GetEntriesDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, entriesDirName), nil
}
