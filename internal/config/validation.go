package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validateSettings reports every invalid setting at once.
func validateSettings(s *Settings) error {
	var validationErrors []string

	if len(s.ConfigPaths) == 0 {
		validationErrors = append(validationErrors, "config must list at least one candidate path")
	}
	if len(s.EntryDirs) == 0 {
		validationErrors = append(validationErrors, "entries must list at least one directory")
	}
	if !slices.Contains(validLogLevels, s.Log.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("log.level must be one of %s, got %q", strings.Join(validLogLevels, ", "), s.Log.Level))
	}
	if !slices.Contains(validLogFormats, s.Log.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("log.format must be one of %s, got %q", strings.Join(validLogFormats, ", "), s.Log.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%s", strings.Join(validationErrors, "; "))
	}
	return nil
}
