// Package cmd provides Cobra CLI commands for tvmenu.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tvmenu/internal/cli"
	"github.com/bnema/tvmenu/internal/config"
	"github.com/bnema/tvmenu/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "tvmenu",
		Short: "A tile launcher for TVs and couch setups",
		Long: `tvmenu - a keyboard and remote friendly application launcher.

Entries are small key=value files in an entries directory:

  title=Kodi
  launch=kodi --standalone
  icon=kodi

The look of the grid is set in tvmenu.conf. Run without a subcommand
to open the menu.

Files are searched in this order unless overridden with flags or
TVMENU_* environment variables:
  config:  $XDG_CONFIG_HOME/tvmenu/tvmenu.conf, ./tvmenu.conf
  entries: $XDG_CONFIG_HOME/tvmenu/entries, ./entries
XDG_CONFIG_HOME defaults to ~/.config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			loader := config.NewSettingsLoader()
			if err := loader.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			settings, err := loader.Load()
			if err != nil {
				return err
			}
			app, err = cli.NewApp(settings, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runMenu,
	}
)

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
