// Package config loads the tvmenu layout and color configuration.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/bnema/tvmenu/internal/logging"
	"github.com/bnema/tvmenu/internal/parser"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// AppConfig is the window-level configuration read from tvmenu.conf.
type AppConfig struct {
	Background Color   `json:"background" toml:"background"`
	TextColor  Color   `json:"text_color" toml:"text_color"`
	Padding    float64 `json:"padding" toml:"padding"`
	// Columns is the number of tiles per row. Zero means it is computed from the window width.
	Columns   int         `json:"columns" toml:"columns"`
	Height    float64     `json:"height" toml:"height"`
	Width     float64     `json:"width" toml:"width"`
	ColumnGap float64     `json:"column_gap" toml:"column_gap"`
	RowGap    float64     `json:"row_gap" toml:"row_gap"`
	Entries   EntryConfig `json:"entries" toml:"entries"`
}

// EntryConfig holds the per-tile settings of the [Entries] section.
type EntryConfig struct {
	Background   Color   `json:"background" toml:"background"`
	TextColor    Color   `json:"text_color" toml:"text_color"`
	BorderRadius float64 `json:"border_radius" toml:"border_radius"`
	TextSize     float64 `json:"text_size" toml:"text_size"`
	Width        float64 `json:"width" toml:"width"`
	Height       float64 `json:"height" toml:"height"`
}

// ColumnsFor returns the number of tiles per row for a window of the given width.
// An explicit Columns setting wins; otherwise as many tiles as fit, at least one.
func (c *AppConfig) ColumnsFor(windowWidth float64) int {
	if c.Columns > 0 {
		return c.Columns
	}
	step := c.Entries.Width + c.ColumnGap
	if step <= 0 {
		return 1
	}
	cols := int((windowWidth - c.Padding) / step)
	if cols < 1 {
		return 1
	}
	return cols
}

// LoadFile parses the config file at path. Every error is returned.
func LoadFile(path string) (*AppConfig, error) {
	return parser.ParseFile(path, &AppConfigBuilder{})
}

// LoadString parses config text. path is only used in errors.
func LoadString(text, path string) (*AppConfig, error) {
	contents, err := parser.ParseString(text, path)
	if err != nil {
		return nil, err
	}
	return parser.FromContents(contents, &AppConfigBuilder{})
}

// Load tries each candidate path in order and returns the first config that parses,
// together with the path it came from.
//
// Missing candidates are skipped. Candidates that exist but fail to parse are skipped too;
// their errors are logged and not returned. If nothing parses, Load returns a
// KindNoConfigFound error listing every candidate.
func Load(ctx context.Context, candidates []string) (*AppConfig, string, error) {
	log := logging.FromContext(ctx)
	for _, candidate := range candidates {
		path, err := ExpandUser(candidate)
		if err != nil {
			return nil, "", err
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("config candidate does not exist")
			continue
		}
		cfg, err := LoadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unparsable config candidate")
			continue
		}
		log.Debug().Str("path", path).Msg("config loaded")
		return cfg, path, nil
	}
	return nil, "", &Error{Kind: KindNoConfigFound, Candidates: append([]string(nil), candidates...)}
}

// Resolve returns the path Load would use, without keeping the parsed config.
func Resolve(ctx context.Context, candidates []string) (string, error) {
	_, path, err := Load(ctx, candidates)
	return path, err
}
