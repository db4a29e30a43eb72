package cmd

import (
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/tvmenu/internal/cli"
	"github.com/bnema/tvmenu/internal/cli/styles"
	"github.com/bnema/tvmenu/internal/config"
	"github.com/bnema/tvmenu/internal/logging"
)

var checkWatch bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file and entries",
	Long: `Load tvmenu.conf and the entry files the same way the menu does and
report what was found, or every error.

With --watch the check runs again whenever a config file or an entry
changes, which is handy while editing.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-check on every change")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	err := checkOnce(out, app)
	if !checkWatch {
		return err
	}

	paths, err := watchPaths(app.Settings)
	if err != nil {
		return err
	}
	w, err := config.NewWatcher(paths)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	r := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(out, r.RenderWatching(w.Watched()))

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "watch"), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return w.Run(ctx, func() {
		_ = checkOnce(out, app)
	})
}

// checkOnce loads the config and the entries and renders the outcome to w.
// The returned error joins every failure.
func checkOnce(w io.Writer, app *cli.App) error {
	var errs []error

	// The theme follows the config, so the renderer is created after loading it.
	configErr := app.LoadConfig()
	r := styles.NewConfigRenderer(app.Theme)
	if configErr != nil {
		errs = append(errs, configErr)
		fmt.Fprint(w, r.RenderError(configErr))
	} else {
		fmt.Fprint(w, r.RenderConfigInfo(app.ConfigPath))
	}

	if err := app.LoadEntries(); err != nil {
		errs = append(errs, err)
		fmt.Fprint(w, r.RenderError(err))
	} else {
		fmt.Fprint(w, r.RenderEntries(app.EntriesDir, app.Entries))
	}

	if len(errs) == 0 {
		fmt.Fprint(w, r.RenderOK())
	}
	return errors.Join(errs...)
}

// watchPaths lists every config candidate and entry directory, with ~ expanded.
func watchPaths(s *config.Settings) ([]string, error) {
	configs, err := config.ExpandAll(s.ConfigPaths)
	if err != nil {
		return nil, err
	}
	dirs, err := config.ExpandAll(s.EntryDirs)
	if err != nil {
		return nil, err
	}
	return append(configs, dirs...), nil
}
