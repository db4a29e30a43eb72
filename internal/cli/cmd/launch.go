package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tvmenu/internal/entries"
	"github.com/bnema/tvmenu/internal/launcher"
	"github.com/bnema/tvmenu/internal/logging"
)

var launchSelect bool

var launchCmd = &cobra.Command{
	Use:   "launch [title]",
	Short: "Launch an entry by title",
	Long: `Launch the entry whose title matches. An exact title wins, otherwise
the best fuzzy match is launched.

With --select the title is read from stdin, as printed by rofi or fuzzel:
  tvmenu list | rofi -dmenu | tvmenu launch --select`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)

	launchCmd.Flags().BoolVar(&launchSelect, "select", false, "read the selection from stdin")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var query string
	switch {
	case launchSelect:
		line, err := readSelection(cmd.InOrStdin())
		if err != nil {
			return err
		}
		if line == "" {
			// Launcher dismissed without a choice.
			return nil
		}
		query = line
	case len(args) == 1:
		query = args[0]
	default:
		return fmt.Errorf("launch needs a title or --select")
	}

	if err := app.LoadEntries(); err != nil {
		return err
	}
	return launchQuery(app.Ctx(), app.Launcher, app.Entries, query)
}

// launchQuery launches the entry resolved for query.
func launchQuery(ctx context.Context, l launcher.Launcher, menu []*entries.MenuEntry, query string) error {
	entry, err := resolveEntry(menu, query)
	if err != nil {
		return err
	}
	return l.Launch(logging.WithComponent(ctx, "launch"), entry)
}

// readSelection returns the first line of r with any dmenu metadata stripped.
func readSelection(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return "", scanner.Err()
	}
	line, _, _ := strings.Cut(scanner.Text(), "\x00")
	return strings.TrimSpace(line), nil
}

// resolveEntry finds the entry launched for query.
func resolveEntry(menu []*entries.MenuEntry, query string) (*entries.MenuEntry, error) {
	entry := entries.Find(menu, query)
	if entry == nil {
		return nil, fmt.Errorf("no entry matches %q", query)
	}
	return entry, nil
}
