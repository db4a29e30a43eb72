package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tvmenu/internal/cli/styles"
	"github.com/bnema/tvmenu/internal/config"
	"github.com/bnema/tvmenu/internal/entries"
)

func TestConfigRenderer_RenderEntries(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(config.DefaultAppConfig()))

	out := r.RenderEntries("/tmp/entries", []*entries.MenuEntry{
		{Title: "Kodi", Launch: "kodi", Icon: "/usr/share/pixmaps/kodi.png"},
		{Title: "Steam", Launch: "steam -bigpicture"},
	})
	require.Contains(t, out, "/tmp/entries")
	require.Contains(t, out, "(2)")
	require.Contains(t, out, "Kodi")
	require.Contains(t, out, "kodi.png")
	require.Contains(t, out, "steam -bigpicture")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	out := r.RenderError(errors.New("not a valid color: #fff"))
	assert.Contains(t, out, "not a valid color: #fff")
}

func TestConfigRenderer_RenderNoConfigFile(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	out := r.RenderNoConfigFile("/home/me/.config/tvmenu/tvmenu.conf")
	assert.Contains(t, out, "tvmenu.conf")
	assert.Contains(t, out, "tvmenu config init")
}
