package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tvmenu/internal/cli/model"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the launcher grid",
	Long: `Open the full-screen launcher grid.

Type to filter entries by title, move with the arrow keys and press
enter to launch the highlighted entry. The menu stays open after a
launch; esc clears the filter, and quits when the filter is empty.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := app.Load(); err != nil {
		return err
	}

	m := model.NewMenuModel(app.Ctx(), app.Config, app.Theme, app.Entries, app.Launcher)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(app.Ctx()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	return nil
}
