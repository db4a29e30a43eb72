package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/tvmenu/internal/entries"
)

var (
	listNoIcons bool
	listJSON    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print entries for rofi/fuzzel",
	Long: `Print one line per entry for use with rofi, fuzzel, or other launchers.

Lines carry icon hints in the rofi/fuzzel extended dmenu format:
  tvmenu list | fuzzel --dmenu | tvmenu launch --select`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listNoIcons, "no-icons", false, "print titles only")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print entries as JSON")
}

func runList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := app.LoadEntries(); err != nil {
		return err
	}

	if listJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(app.Entries)
	}
	return writeMenuList(cmd.OutOrStdout(), app.Entries, !listNoIcons)
}

// writeMenuList writes one line per entry in the extended dmenu format:
//
//	<title>\x00icon\x1f<path>\x1finfo\x1f<title>
//
// The icon field is left out when icons is false or the entry has none.
func writeMenuList(w io.Writer, menu []*entries.MenuEntry, icons bool) error {
	bw := bufio.NewWriter(w)
	for _, e := range menu {
		line := e.Title + "\x00"
		if icons && e.Icon != "" {
			line += "icon\x1f" + e.Icon + "\x1f"
		}
		line += "info\x1f" + e.Title
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
