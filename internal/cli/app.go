// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/tvmenu/internal/cli/styles"
	"github.com/bnema/tvmenu/internal/config"
	"github.com/bnema/tvmenu/internal/domain/build"
	"github.com/bnema/tvmenu/internal/entries"
	"github.com/bnema/tvmenu/internal/launcher"
	"github.com/bnema/tvmenu/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Settings  *config.Settings
	BuildInfo build.Info

	// Filled by LoadConfig.
	Config     *config.AppConfig
	ConfigPath string
	Theme      *styles.Theme

	// Filled by LoadEntries.
	Entries    []*entries.MenuEntry
	EntriesDir string

	Launcher launcher.Launcher

	// Context with logger
	ctx     context.Context
	logFile *logging.FileRotator
}

// NewApp creates the application for settings. Logs go to the configured log file,
// or to logOut when there is none. Nothing else is read from disk until LoadConfig
// or LoadEntries is called.
func NewApp(settings *config.Settings, logOut io.Writer) (*App, error) {
	if logOut == nil {
		logOut = os.Stderr
	}

	a := &App{
		Settings: settings,
		Theme:    styles.NewTheme(nil),
		Launcher: launcher.New(),
	}

	if settings.Log.File != "" {
		path, err := config.ExpandUser(settings.Log.File)
		if err != nil {
			return nil, err
		}
		a.logFile, err = logging.NewFileRotator(path, logging.DefaultMaxSize, logging.DefaultMaxBackups)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logOut = a.logFile
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(settings.Log.Level),
		Format:     settings.Log.Format,
		TimeFormat: "15:04:05",
		Output:     logOut,
	})
	a.ctx = logging.WithContext(context.Background(), logger)
	return a, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LoadConfig reads the first valid config candidate and rebuilds the theme from it.
func (a *App) LoadConfig() error {
	cfg, path, err := config.Load(a.ctx, a.Settings.ConfigPaths)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.ConfigPath = path
	a.Theme = styles.NewTheme(cfg)
	logging.FromContext(a.ctx).Debug().Str("path", path).Msg("config loaded")
	return nil
}

// LoadEntries reads the menu entries from the first usable entry directory.
func (a *App) LoadEntries() error {
	menu, dir, err := entries.LoadDirs(a.ctx, a.Settings.EntryDirs, a.Settings.IconDirs)
	if err != nil {
		return err
	}
	a.Entries = menu
	a.EntriesDir = dir
	return nil
}

// Load reads both the config and the entries.
func (a *App) Load() error {
	if err := a.LoadConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := a.LoadEntries(); err != nil {
		return fmt.Errorf("load entries: %w", err)
	}
	return nil
}
