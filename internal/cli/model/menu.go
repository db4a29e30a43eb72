// Package model holds the Bubble Tea models behind the interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/tvmenu/internal/cli/styles"
	"github.com/bnema/tvmenu/internal/config"
	"github.com/bnema/tvmenu/internal/entries"
	"github.com/bnema/tvmenu/internal/launcher"
	"github.com/bnema/tvmenu/internal/logging"
)

// Lines taken by everything except the grid: filter box, blank lines, status, help.
const chromeHeight = 7

// MenuModel is the Bubble Tea model for the launcher grid.
type MenuModel struct {
	// UI components
	filter textinput.Model
	help   help.Model
	keys   styles.MenuKeyMap

	// State
	menu      []*entries.MenuEntry
	visible   []int // indices into menu, in display order
	selected  int   // index into visible
	query     string
	width     int
	height    int
	status    string
	statusErr bool

	// Dependencies
	ctx      context.Context
	cfg      *config.AppConfig
	theme    *styles.Theme
	launcher launcher.Launcher
}

// launchedMsg reports the outcome of a launch started from the grid.
type launchedMsg struct {
	title string
	err   error
}

// NewMenuModel creates the launcher grid over menu.
// The initial size comes from the configured window size until the terminal reports its own.
func NewMenuModel(
	ctx context.Context,
	cfg *config.AppConfig,
	theme *styles.Theme,
	menu []*entries.MenuEntry,
	l launcher.Launcher,
) MenuModel {
	filter := styles.NewFilterInput(theme)
	filter.Focus()

	m := MenuModel{
		filter:   filter,
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultMenuKeyMap(),
		menu:     menu,
		width:    max(int(cfg.Width)/styles.CellWidth, 1),
		height:   max(int(cfg.Height)/styles.CellHeight, 1),
		ctx:      ctx,
		cfg:      cfg,
		theme:    theme,
		launcher: l,
	}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case launchedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not launch %s: %v", msg.title, msg.err)
			m.statusErr = true
		} else {
			m.status = "Launched " + msg.title
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		if m.filter.Value() == "" {
			return m, tea.Quit
		}
		m.filter.Reset()
		m.refilter()
		return m, nil

	case key.Matches(msg, m.keys.Launch):
		entry := m.Selected()
		if entry == nil {
			return m, nil
		}
		m.status = "Launching " + entry.Title + "..."
		m.statusErr = false
		return m, m.launch(entry)

	case key.Matches(msg, m.keys.Up):
		m.moveUp()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveDown()
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.moveLeft()
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveRight()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != m.query {
		m.refilter()
	}
	return m, cmd
}

// launch runs the launcher off the UI goroutine and reports back with a launchedMsg.
func (m MenuModel) launch(entry *entries.MenuEntry) tea.Cmd {
	ctx, l := logging.WithComponent(m.ctx, "menu"), m.launcher
	return func() tea.Msg {
		return launchedMsg{title: entry.Title, err: l.Launch(ctx, entry)}
	}
}

// refilter recomputes the visible entries from the filter box and resets the selection.
func (m *MenuModel) refilter() {
	m.query = m.filter.Value()
	m.visible = entries.Filter(m.menu, m.query)
	m.selected = 0
}

// columns is the number of tiles per row at the current terminal width.
func (m MenuModel) columns() int {
	inner := m.width - 2*m.theme.Layout.Padding
	return m.cfg.ColumnsFor(float64(inner * styles.CellWidth))
}

func (m *MenuModel) moveUp() {
	if cols := m.columns(); m.selected < cols {
		m.selected = 0
	} else {
		m.selected -= cols
	}
}

func (m *MenuModel) moveDown() {
	last := len(m.visible) - 1
	if last < 0 {
		return
	}
	m.selected = min(m.selected+m.columns(), last)
}

func (m *MenuModel) moveLeft() {
	if m.selected > 0 {
		m.selected--
	}
}

func (m *MenuModel) moveRight() {
	if m.selected < len(m.visible)-1 {
		m.selected++
	}
}

// View implements tea.Model.
func (m MenuModel) View() string {
	t := m.theme

	filterBar := t.InputFocused.Render(m.filter.View())

	var status string
	switch {
	case m.status == "":
		status = t.Subtle.Render(fmt.Sprintf("%d/%d", len(m.visible), len(m.menu)))
	case m.statusErr:
		status = t.ErrorStyle.Render(m.status)
	default:
		status = t.SuccessStyle.Render(m.status)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		filterBar,
		"",
		m.renderGrid(m.height-chromeHeight),
		"",
		status,
		m.help.View(m.keys),
	)

	return t.Window.
		Width(m.width).
		MaxHeight(m.height).
		Render(body)
}

// renderGrid draws as many tile rows as fit in height lines, keeping the selected row visible.
func (m MenuModel) renderGrid(height int) string {
	t := m.theme
	if len(m.visible) == 0 {
		if len(m.menu) == 0 {
			return t.Subtle.Render("No entries")
		}
		return t.Subtle.Render("No entries match " + fmt.Sprintf("%q", m.query))
	}

	cols := m.columns()
	rowHeight := t.TileOuterHeight() + t.Layout.RowGap
	fit := max((height+t.Layout.RowGap)/rowHeight, 1)
	first := max(m.selected/cols-fit+1, 0)

	hgap := strings.Repeat(" ", t.Layout.ColumnGap)
	vgap := strings.Repeat("\n", t.Layout.RowGap)

	var rows []string
	for r := first; r < first+fit; r++ {
		start := r * cols
		if start >= len(m.visible) {
			break
		}
		end := min(start+cols, len(m.visible))

		tiles := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start && hgap != "" {
				tiles = append(tiles, hgap)
			}
			tiles = append(tiles, m.renderTile(m.menu[m.visible[i]], i == m.selected))
		}
		if len(rows) > 0 && vgap != "" {
			rows = append(rows, strings.TrimSuffix(vgap, "\n"))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m MenuModel) renderTile(e *entries.MenuEntry, selected bool) string {
	t := m.theme
	w := t.Layout.TileWidth

	lines := []string{t.TileTitle.Render(runewidth.Truncate(e.Title, w, "…"))}
	if t.Layout.TileHeight > 1 {
		lines = append(lines, t.TileDesc.Render(runewidth.Truncate(e.Launch, w, "…")))
	}

	style := t.Tile
	if selected {
		style = t.TileSelected
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Selected returns the highlighted entry, or nil when nothing is visible.
func (m MenuModel) Selected() *entries.MenuEntry {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return nil
	}
	return m.menu[m.visible[m.selected]]
}

// Visible returns the entries that pass the current filter, in display order.
func (m MenuModel) Visible() []*entries.MenuEntry {
	out := make([]*entries.MenuEntry, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.menu[idx]
	}
	return out
}

// Status returns the message shown under the grid.
func (m MenuModel) Status() string {
	return m.status
}

// Ensure interface compliance.
var _ tea.Model = (*MenuModel)(nil)
