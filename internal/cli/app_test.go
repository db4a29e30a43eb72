package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tvmenu/internal/config"
	"github.com/bnema/tvmenu/internal/entries"
)

func TestApp_Load(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, "tvmenu.conf")
	require.NoError(t, os.WriteFile(confPath, []byte("columns=2\n[Entries]\nbackground=#ff000080\n"), 0o600))
	entriesDir := filepath.Join(dir, "entries")
	require.NoError(t, os.Mkdir(entriesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(entriesDir, "kodi"), []byte("title=Kodi\nlaunch=kodi\n"), 0o600))

	app, err := NewApp(&config.Settings{
		ConfigPaths: []string{filepath.Join(dir, "missing.conf"), confPath},
		EntryDirs:   []string{entriesDir},
	}, io.Discard)
	require.NoError(t, err)

	require.NoError(t, app.Load())
	assert.Equal(t, confPath, app.ConfigPath)
	assert.Equal(t, 2, app.Config.Columns)
	assert.Equal(t, entriesDir, app.EntriesDir)
	require.Len(t, app.Entries, 1)
	assert.Equal(t, "Kodi", app.Entries[0].Title)
	assert.NotEmpty(t, string(app.Theme.TileBackground))
}

func TestApp_LoadFailures(t *testing.T) {
	dir := t.TempDir()
	app, err := NewApp(&config.Settings{
		ConfigPaths: []string{filepath.Join(dir, "missing.conf")},
		EntryDirs:   []string{filepath.Join(dir, "entries")},
	}, io.Discard)
	require.NoError(t, err)

	err = app.Load()
	require.ErrorIs(t, err, config.ErrNoConfigFound)
	assert.Contains(t, err.Error(), "load config")

	err = app.LoadEntries()
	require.ErrorIs(t, err, entries.ErrNoEntriesFound)
}

func TestNewApp_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "tvmenu.log")
	app, err := NewApp(&config.Settings{
		ConfigPaths: []string{"/nonexistent/tvmenu.conf"},
		EntryDirs:   []string{"/nonexistent/entries"},
		Log:         config.LogSettings{Level: "debug", Format: "json", File: logPath},
	}, io.Discard)
	require.NoError(t, err)

	require.Error(t, app.LoadConfig())
	require.NoError(t, app.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "config candidate does not exist")
}
