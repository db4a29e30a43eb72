package entries

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindIcon searches dirs recursively for a file whose name without extension is name.
// SVG files are ignored. When several files match, the largest one wins, on the
// assumption that it has the highest resolution. Directories that do not exist are skipped.
// Symlinked directories are followed, each target at most once.
func FindIcon(name string, dirs []string) (string, error) {
	s := &iconSearch{name: name, bestSize: -1, visited: make(map[string]bool)}
	for _, dir := range dirs {
		if err := s.walk(dir); err != nil {
			return "", err
		}
	}

	if s.best == "" {
		return "", &Error{Kind: KindIconNotFound, Value: name}
	}
	return s.best, nil
}

type iconSearch struct {
	name     string
	best     string
	bestSize int64
	visited  map[string]bool
}

func (s *iconSearch) walk(root string) error {
	if real, err := filepath.EvalSymlinks(root); err == nil {
		if s.visited[real] {
			return nil
		}
		s.visited[real] = true
		// WalkDir does not descend into a root that is itself a link.
		if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			root = real
		}
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipDir
			}
			return readDirError(path, err)
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return s.followLink(path)
		}
		if matchesIcon(path, s.name) {
			info, err := d.Info()
			if err != nil {
				return nil
			}
			s.offer(path, info.Size())
		}
		return nil
	})
}

// followLink walks a symlinked directory through its target, or offers a symlinked file.
// Dangling links are ignored.
func (s *iconSearch) followLink(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if info.IsDir() {
		return s.walk(path)
	}
	if matchesIcon(path, s.name) {
		s.offer(path, info.Size())
	}
	return nil
}

func (s *iconSearch) offer(path string, size int64) {
	if size > s.bestSize {
		s.best, s.bestSize = path, size
	}
}

func matchesIcon(path, name string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == ".svg" {
		return false
	}
	return strings.TrimSuffix(base, ext) == name
}
