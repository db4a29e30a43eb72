// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tvmenu/internal/config"
)

// Terminal cell size in pixels, used to map config dimensions onto the grid.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Theme holds lipgloss colors and styles derived from the menu config.
type Theme struct {
	// Window colors (from AppConfig)
	Background lipgloss.Color
	Text       lipgloss.Color

	// Tile colors (from EntryConfig)
	TileBackground lipgloss.Color
	TileText       lipgloss.Color

	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color

	Error   lipgloss.Color
	Success lipgloss.Color

	// Layout in terminal cells
	Layout Layout

	// Pre-built styles
	Window       lipgloss.Style
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	Tile         lipgloss.Style
	TileSelected lipgloss.Style
	TileTitle    lipgloss.Style
	TileDesc     lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// Layout is the menu geometry converted from pixels to terminal cells.
type Layout struct {
	Padding    int
	TileWidth  int
	TileHeight int
	ColumnGap  int
	RowGap     int
}

// NewLayout converts pixel dimensions from cfg into cell units.
// Tiles never shrink below 3x1 cells of content.
func NewLayout(cfg *config.AppConfig) Layout {
	l := Layout{
		Padding:    toCells(cfg.Padding, CellWidth),
		TileWidth:  toCells(cfg.Entries.Width, CellWidth),
		TileHeight: toCells(cfg.Entries.Height, CellHeight),
		ColumnGap:  toCells(cfg.ColumnGap, CellWidth),
		RowGap:     toCells(cfg.RowGap, CellHeight),
	}
	l.TileWidth = max(l.TileWidth, 3)
	l.TileHeight = max(l.TileHeight, 1)
	return l
}

func toCells(px float64, cell int) int {
	if px <= 0 {
		return 0
	}
	return int(px) / cell
}

// hexColor maps a config color to lipgloss. Fully transparent colors
// yield an empty color so the terminal default shows through.
func hexColor(c config.Color) lipgloss.Color {
	if c.A == 0 {
		return lipgloss.Color("")
	}
	return lipgloss.Color(c.HexRGB())
}

// NewTheme creates a Theme from cfg, falling back to the defaults when cfg is nil.
func NewTheme(cfg *config.AppConfig) *Theme {
	if cfg == nil {
		cfg = config.DefaultAppConfig()
	}

	t := &Theme{
		Background:     hexColor(cfg.Background),
		Text:           hexColor(cfg.TextColor),
		TileBackground: hexColor(cfg.Entries.Background),
		TileText:       hexColor(cfg.Entries.TextColor),

		// Semantic colors (not in config)
		Muted:   lipgloss.Color("#909090"),
		Accent:  lipgloss.Color("#4ade80"),
		Border:  lipgloss.Color("#333333"),
		Error:   lipgloss.Color("#ef4444"),
		Success: lipgloss.Color("#4ade80"),

		Layout: NewLayout(cfg),
	}
	if t.Text == "" {
		t.Text = lipgloss.Color("#ffffff")
	}
	if t.TileText == "" {
		t.TileText = t.Text
	}

	t.buildStyles(cfg.Entries.BorderRadius > 0)
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles(rounded bool) {
	t.Window = lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, t.Layout.Padding)
	if t.Background != "" {
		t.Window = t.Window.Background(t.Background)
	}

	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	border := lipgloss.NormalBorder()
	if rounded {
		border = lipgloss.RoundedBorder()
	}

	t.Tile = lipgloss.NewStyle().
		Width(t.Layout.TileWidth).
		Height(t.Layout.TileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(t.TileText).
		BorderStyle(border).
		BorderForeground(t.Border)
	if t.TileBackground != "" {
		t.Tile = t.Tile.Background(t.TileBackground)
	}

	t.TileSelected = t.Tile.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.Accent).
		Bold(true)

	t.TileTitle = lipgloss.NewStyle().
		Foreground(t.TileText)

	t.TileDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.InputFocused = t.Input.
		BorderForeground(t.Accent)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}

// TileOuterWidth is the rendered tile width including its border.
func (t *Theme) TileOuterWidth() int {
	return t.Layout.TileWidth + t.Tile.GetHorizontalFrameSize()
}

// TileOuterHeight is the rendered tile height including its border.
func (t *Theme) TileOuterHeight() int {
	return t.Layout.TileHeight + t.Tile.GetVerticalFrameSize()
}
