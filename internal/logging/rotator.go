package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o600

	// DefaultMaxSize is the size at which a log file is rotated.
	DefaultMaxSize = 5 * 1024 * 1024
	// DefaultMaxBackups is the number of rotated files kept.
	DefaultMaxBackups = 3
)

// FileRotator is an io.Writer appending to a log file. When the file would grow
// past maxSize it is renamed to path.1, older backups shift to path.2 and so on,
// and anything beyond maxBackups is removed.
type FileRotator struct {
	mu          sync.Mutex
	path        string
	maxSize     int64
	maxBackups  int
	currentFile *os.File
	currentSize int64
}

// NewFileRotator opens path for appending, creating its directory if needed.
func NewFileRotator(path string, maxSize int64, maxBackups int) (*FileRotator, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	r := &FileRotator{
		path:       path,
		maxSize:    maxSize,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRotator) open() error {
	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.currentFile = file
	r.currentSize = info.Size()
	return nil
}

// Write implements io.Writer. A single write larger than maxSize still goes to one file.
func (r *FileRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *FileRotator) backup(i int) string {
	return fmt.Sprintf("%s.%d", r.path, i)
}

func (r *FileRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	r.currentFile = nil

	if r.maxBackups <= 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove log file: %w", err)
		}
		return r.open()
	}

	// Oldest first so nothing is overwritten.
	_ = os.Remove(r.backup(r.maxBackups))
	for i := r.maxBackups - 1; i >= 1; i-- {
		if err := os.Rename(r.backup(i), r.backup(i+1)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}
	if err := os.Rename(r.path, r.backup(1)); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return r.open()
}

// Close closes the current file.
func (r *FileRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
