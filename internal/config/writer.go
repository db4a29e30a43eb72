package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Export formats accepted by Marshal.
const (
	FormatConf = "conf"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Marshal renders cfg in the given format.
func Marshal(cfg *AppConfig, format string) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	var buf bytes.Buffer
	switch format {
	case FormatConf:
		if err := WriteConf(&buf, cfg); err != nil {
			return nil, err
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatConf, FormatTOML, FormatJSON)
	}
	return buf.Bytes(), nil
}

// WriteConf writes cfg in the tvmenu.conf format. Reading the output back yields cfg.
func WriteConf(w io.Writer, cfg *AppConfig) error {
	lines := []struct{ key, value string }{
		{"background", cfg.Background.Hex()},
		{"text-color", cfg.TextColor.Hex()},
		{"padding", formatFloat(cfg.Padding)},
		{"height", formatFloat(cfg.Height)},
		{"width", formatFloat(cfg.Width)},
		{"column-gap", formatFloat(cfg.ColumnGap)},
		{"row-gap", formatFloat(cfg.RowGap)},
	}
	if cfg.Columns > 0 {
		lines = append(lines, struct{ key, value string }{"columns", strconv.Itoa(cfg.Columns)})
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s=%s\n", l.key, l.value); err != nil {
			return err
		}
	}

	e := cfg.Entries
	_, err := fmt.Fprintf(w, "\n[%s]\nbackground=%s\ntext-color=%s\nborder-radius=%s\ntext-size=%s\nwidth=%s\nheight=%s\n",
		EntriesSection,
		e.Background.Hex(),
		e.TextColor.Hex(),
		formatFloat(e.BorderRadius),
		formatFloat(e.TextSize),
		formatFloat(e.Width),
		formatFloat(e.Height),
	)
	return err
}

// WriteDefault writes a commented default tvmenu.conf to path.
// It refuses to overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("// tvmenu configuration. Colors: #rrggbb, #rrggbbaa, rgb(r,g,b), rgba(r,g,b,a)\n")
	buf.WriteString("// columns=4 // fixed tiles per row, computed from the width when unset\n")
	if err := WriteConf(&buf, DefaultAppConfig()); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
