package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tvmenu/internal/cli"
	"github.com/bnema/tvmenu/internal/config"
	"github.com/bnema/tvmenu/internal/entries"
)

func testApp(t *testing.T, conf string, entryFiles map[string]string) *cli.App {
	t.Helper()
	dir := t.TempDir()

	confPath := filepath.Join(dir, "tvmenu.conf")
	require.NoError(t, os.WriteFile(confPath, []byte(conf), 0o600))

	entriesDir := filepath.Join(dir, "entries")
	require.NoError(t, os.Mkdir(entriesDir, 0o755))
	for name, content := range entryFiles {
		require.NoError(t, os.WriteFile(filepath.Join(entriesDir, name), []byte(content), 0o600))
	}

	settings := &config.Settings{
		ConfigPaths: []string{confPath},
		EntryDirs:   []string{entriesDir},
		Log:         config.LogSettings{Level: "error", Format: "console"},
	}
	app, err := cli.NewApp(settings, io.Discard)
	require.NoError(t, err)
	return app
}

func TestCheckOnce_Valid(t *testing.T) {
	app := testApp(t, "background=#000000\n[Entries]\nwidth=120\n", map[string]string{
		"kodi": "title=Kodi\nlaunch=kodi --standalone\n",
	})

	var buf bytes.Buffer
	require.NoError(t, checkOnce(&buf, app))

	out := buf.String()
	assert.Contains(t, out, "tvmenu.conf")
	assert.Contains(t, out, "Kodi")
	assert.Contains(t, out, "Configuration is valid")
	assert.InDelta(t, 120.0, app.Config.Entries.Width, 0)
}

func TestCheckOnce_ReportsEveryProblem(t *testing.T) {
	app := testApp(t, "background=blue\n", map[string]string{
		"broken": "title=Kodi\n",
	})

	var buf bytes.Buffer
	err := checkOnce(&buf, app)
	require.Error(t, err)

	assert.ErrorIs(t, err, config.ErrNoConfigFound)
	assert.ErrorIs(t, err, entries.ErrNoEntriesFound)

	out := buf.String()
	assert.Contains(t, out, "could not find valid config file")
	assert.Contains(t, out, "missing key launch")
	assert.NotContains(t, out, "Configuration is valid")
}

func TestShowConfig(t *testing.T) {
	cfg := config.DefaultAppConfig()
	cfg.Padding = 12

	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf, cfg, config.FormatConf))
	assert.Contains(t, buf.String(), "padding=12\n")

	reparsed, err := config.LoadString(buf.String(), "shown.conf")
	require.NoError(t, err)
	assert.Equal(t, cfg, reparsed)

	require.Error(t, showConfig(&buf, cfg, "yaml"))
}

func TestWatchPaths(t *testing.T) {
	t.Setenv("HOME", "/home/tv")

	paths, err := watchPaths(&config.Settings{
		ConfigPaths: []string{"~/.config/tvmenu/tvmenu.conf", "./tvmenu.conf"},
		EntryDirs:   []string{"~/entries"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/tv/.config/tvmenu/tvmenu.conf", "./tvmenu.conf", "/home/tv/entries"}, paths)
}
