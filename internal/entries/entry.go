// Package entries loads the menu entries shown as tiles.
//
// Each entry is a file in an entries directory:
//
//	title=Kodi
//	launch=kodi --standalone
//	icon=kodi
package entries

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tvmenu/internal/config"
	"github.com/bnema/tvmenu/internal/logging"
	"github.com/bnema/tvmenu/internal/parser"
)

// MenuEntry is one launchable tile.
type MenuEntry struct {
	// Title is shown in the menu.
	Title string `json:"title"`
	// Launch is the command to run.
	Launch string `json:"launch"`
	// Args are passed to Launch.
	Args []string `json:"args,omitempty"`
	// Icon is the resolved icon file, empty when the entry has none.
	Icon string `json:"icon,omitempty"`
	// Path is the entry file the entry was read from.
	Path string `json:"path"`
}

// Command returns the process that launches the entry.
// It is not tied to a context: launched programs outlive the menu.
func (e *MenuEntry) Command() *exec.Cmd {
	return exec.Command(e.Launch, e.Args...)
}

// FromFile loads the entry file at path.
func FromFile(path string, iconDirs []string) (*MenuEntry, error) {
	entry, err := parser.ParseFile(path, &EntryBuilder{IconDirs: iconDirs})
	if err != nil {
		return nil, err
	}
	entry.Path = path
	return entry, nil
}

// Maximum number of entry files parsed at once. Icon lookups walk whole icon trees.
const loadWorkers = 8

// LoadDir loads every regular file in dir, sorted by file name.
// Subdirectories are ignored. Files are parsed concurrently; if any fail, the error of
// the first failing file in name order is returned.
func LoadDir(dir string, iconDirs []string) ([]*MenuEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, readDirError(dir, err)
	}

	var files []string
	for _, de := range dirEntries {
		if !de.IsDir() {
			files = append(files, filepath.Join(dir, de.Name()))
		}
	}

	menu := make([]*MenuEntry, len(files))
	errs := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(loadWorkers)
	for i, path := range files {
		g.Go(func() error {
			menu[i], errs[i] = FromFile(path, iconDirs)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return menu, nil
}

// LoadDirs returns the entries of the first directory that exists and holds at least one entry.
// A leading ~ in a directory is expanded. Directories that fail are recorded in the
// returned KindNoEntriesFound error.
func LoadDirs(ctx context.Context, dirs, iconDirs []string) ([]*MenuEntry, string, error) {
	log := logging.FromContext(ctx)
	var attempts []DirError

	for _, candidate := range dirs {
		dir, err := config.ExpandUser(candidate)
		if err != nil {
			return nil, "", err
		}
		menu, err := LoadDir(dir, iconDirs)
		if err == nil && len(menu) == 0 {
			err = &Error{Kind: KindNoEntries, Value: dir}
		}
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug().Str("dir", dir).Msg("entry directory does not exist")
			} else {
				log.Warn().Err(err).Str("dir", dir).Msg("skipping entry directory")
			}
			attempts = append(attempts, DirError{Dir: dir, Err: err})
			continue
		}
		log.Debug().Str("dir", dir).Int("count", len(menu)).Msg("entries loaded")
		return menu, dir, nil
	}
	return nil, "", &Error{Kind: KindNoEntriesFound, Attempts: attempts}
}
