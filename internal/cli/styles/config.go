package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tvmenu/internal/entries"
)

// ConfigRenderer renders config and entry status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the path of the config file in use.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
	)
}

// RenderEntries renders the entries loaded from dir.
func (r *ConfigRenderer) RenderEntries(dir string, menu []*entries.MenuEntry) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	titleStyle := r.theme.Highlight
	descStyle := r.theme.Subtle

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"\n  %s Entries %s (%d)\n",
		iconStyle.Render(IconFolder),
		descStyle.Render(dir),
		len(menu),
	))

	for _, e := range menu {
		icon := "-"
		if e.Icon != "" {
			icon = filepath.Base(e.Icon)
		}
		sb.WriteString(fmt.Sprintf(
			"    %s %s\n      Launch: %s | Icon: %s\n",
			iconStyle.Render(IconCursor),
			titleStyle.Render(e.Title),
			descStyle.Render(e.Launch),
			descStyle.Render(icon),
		))
	}

	return sb.String()
}

// RenderOK renders the final "all good" line of a check.
func (r *ConfigRenderer) RenderOK() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Configuration is valid\n", iconStyle.Render(IconCheck))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s %s\n",
		iconStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}

// RenderWatching renders the list of paths a watch is following.
func (r *ConfigRenderer) RenderWatching(paths []string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"\n  %s Watching %s\n  %s\n",
		iconStyle.Render(IconEye),
		r.theme.Subtle.Render(strings.Join(paths, ", ")),
		r.theme.Subtle.Render("Press ctrl+c to stop."),
	)
}

// RenderWritten renders the message after a default config was written.
func (r *ConfigRenderer) RenderWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"\n  %s Wrote default config to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderNoConfigFile renders the message when no candidate config exists.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Run 'tvmenu config init' to create it with all defaults."),
	)
}
