// Package launcher starts the programs behind menu entries.
package launcher

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/bnema/tvmenu/internal/entries"
	"github.com/bnema/tvmenu/internal/logging"
)

//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go

// Launcher starts a menu entry.
type Launcher interface {
	Launch(ctx context.Context, entry *entries.MenuEntry) error
}

// ProcessLauncher starts entries as detached child processes.
// Children run in their own session and are reaped in the background.
type ProcessLauncher struct {
	lookPath func(string) (string, error)
}

// New creates a ProcessLauncher.
func New() *ProcessLauncher {
	return &ProcessLauncher{lookPath: exec.LookPath}
}

// Launch starts the entry's command and returns once the process is running.
func (l *ProcessLauncher) Launch(ctx context.Context, entry *entries.MenuEntry) error {
	log := logging.FromContext(logging.WithEntry(ctx, entry.Title))

	if _, err := l.lookPath(entry.Launch); err != nil {
		return fmt.Errorf("could not launch %s: %w", entry.Launch, err)
	}

	cmd := entry.Command()
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not launch %s: %w", entry.Launch, err)
	}
	log.Info().Str("cmd", entry.Launch).Strs("args", entry.Args).Int("pid", cmd.Process.Pid).Msg("entry launched")

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug().Err(err).Int("pid", cmd.Process.Pid).Msg("launched process exited with error")
		}
	}()
	return nil
}

var _ Launcher = (*ProcessLauncher)(nil)
