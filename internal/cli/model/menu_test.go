package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tvmenu/internal/cli/styles"
	"github.com/bnema/tvmenu/internal/config"
	"github.com/bnema/tvmenu/internal/entries"
)

type mockLauncher struct {
	mock.Mock
}

func (m *mockLauncher) Launch(ctx context.Context, entry *entries.MenuEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func testMenu() []*entries.MenuEntry {
	titles := []string{"Kodi", "Steam", "Firefox", "RetroArch", "Spotify", "VLC", "Moonlight"}
	menu := make([]*entries.MenuEntry, len(titles))
	for i, title := range titles {
		menu[i] = &entries.MenuEntry{Title: title, Launch: "true"}
	}
	return menu
}

func newTestModel(t *testing.T, l *mockLauncher) MenuModel {
	t.Helper()
	cfg := config.DefaultAppConfig()
	cfg.Columns = 3
	m := NewMenuModel(context.Background(), cfg, styles.NewTheme(cfg), testMenu(), l)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(MenuModel)
}

func press(t *testing.T, m MenuModel, k tea.KeyType) (MenuModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: k})
	return updated.(MenuModel), cmd
}

func typeText(t *testing.T, m MenuModel, text string) MenuModel {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(MenuModel)
	}
	return m
}

func TestMenuModel_StartsOnFirstEntry(t *testing.T) {
	m := newTestModel(t, &mockLauncher{})

	require.NotNil(t, m.Selected())
	assert.Equal(t, "Kodi", m.Selected().Title)
	assert.Len(t, m.Visible(), 7)
}

func TestMenuModel_Navigation(t *testing.T) {
	m := newTestModel(t, &mockLauncher{})

	// Grid of 3 columns:
	// 0 1 2
	// 3 4 5
	// 6
	m, _ = press(t, m, tea.KeyRight)
	assert.Equal(t, "Steam", m.Selected().Title)

	m, _ = press(t, m, tea.KeyDown)
	assert.Equal(t, "Spotify", m.Selected().Title)

	// Down from the middle row clamps to the last entry.
	m, _ = press(t, m, tea.KeyDown)
	assert.Equal(t, "Moonlight", m.Selected().Title)

	m, _ = press(t, m, tea.KeyUp)
	assert.Equal(t, "RetroArch", m.Selected().Title)

	m, _ = press(t, m, tea.KeyLeft)
	assert.Equal(t, "Firefox", m.Selected().Title)

	// Up from the first row goes to the first entry.
	m, _ = press(t, m, tea.KeyUp)
	assert.Equal(t, "Kodi", m.Selected().Title)

	m, _ = press(t, m, tea.KeyLeft)
	assert.Equal(t, "Kodi", m.Selected().Title)
}

func TestMenuModel_RightStopsAtLastEntry(t *testing.T) {
	m := newTestModel(t, &mockLauncher{})

	for range 10 {
		m, _ = press(t, m, tea.KeyRight)
	}
	assert.Equal(t, "Moonlight", m.Selected().Title)
}

func TestMenuModel_FilterNarrowsAndResetsSelection(t *testing.T) {
	m := newTestModel(t, &mockLauncher{})
	m, _ = press(t, m, tea.KeyRight)

	m = typeText(t, m, "Ste")

	require.NotEmpty(t, m.Visible())
	assert.Equal(t, "Steam", m.Visible()[0].Title)
	assert.Equal(t, "Steam", m.Selected().Title)
}

func TestMenuModel_EscClearsFilterThenQuits(t *testing.T) {
	m := newTestModel(t, &mockLauncher{})
	m = typeText(t, m, "Kod")
	require.Less(t, len(m.Visible()), 7)

	m, cmd := press(t, m, tea.KeyEsc)
	assert.Nil(t, cmd)
	assert.Len(t, m.Visible(), 7)

	_, cmd = press(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMenuModel_NoMatches(t *testing.T) {
	m := newTestModel(t, &mockLauncher{})
	m = typeText(t, m, "zzzz")

	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "No entries match")

	m, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Status())
}

func TestMenuModel_LaunchSelected(t *testing.T) {
	l := &mockLauncher{}
	l.On("Launch", mock.Anything, mock.MatchedBy(func(e *entries.MenuEntry) bool {
		return e.Title == "Steam"
	})).Return(nil).Once()

	m := newTestModel(t, l)
	m, _ = press(t, m, tea.KeyRight)

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, "Launching Steam...", m.Status())

	updated, _ := m.Update(cmd())
	m = updated.(MenuModel)

	assert.Equal(t, "Launched Steam", m.Status())
	l.AssertExpectations(t)
}

func TestMenuModel_LaunchFailureShownInStatus(t *testing.T) {
	l := &mockLauncher{}
	l.On("Launch", mock.Anything, mock.Anything).Return(errors.New("executable not found")).Once()

	m := newTestModel(t, l)
	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd())
	m = updated.(MenuModel)

	assert.Contains(t, m.Status(), "Could not launch Kodi")
	assert.Contains(t, m.Status(), "executable not found")
	assert.Contains(t, m.View(), "executable not found")
	l.AssertExpectations(t)
}

func TestMenuModel_ViewShowsTiles(t *testing.T) {
	m := newTestModel(t, &mockLauncher{})

	view := m.View()
	assert.Contains(t, view, "Kodi")
	assert.Contains(t, view, "7/7")
}

func TestMenuModel_EmptyMenu(t *testing.T) {
	cfg := config.DefaultAppConfig()
	m := NewMenuModel(context.Background(), cfg, styles.NewTheme(cfg), nil, &mockLauncher{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(MenuModel)

	assert.Nil(t, m.Selected())
	m.moveDown()
	m.moveRight()
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "No entries")
}

func TestMenuModel_AutoColumns(t *testing.T) {
	cfg := config.DefaultAppConfig()
	cfg.Entries.Width = 80
	cfg.ColumnGap = 0
	m := NewMenuModel(context.Background(), cfg, styles.NewTheme(cfg), testMenu(), &mockLauncher{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	m = updated.(MenuModel)

	// 40 cells = 320px, tiles 80px wide.
	assert.Equal(t, 4, m.columns())

	m.moveDown()
	assert.Equal(t, "Spotify", m.Selected().Title)
}
