package entries

import (
	"fmt"
	"strings"
)

// ErrorKind classifies an entries Error.
type ErrorKind int

const (
	// KindUnknownSection means an entry file has a section other than the unnamed one.
	KindUnknownSection ErrorKind = iota + 1
	// KindUnknownKey means the builder was handed a key it does not own.
	KindUnknownKey
	// KindInvalidLaunch means the launch value holds no command.
	KindInvalidLaunch
	// KindIconNotFound means no icon file matched the icon name.
	KindIconNotFound
	// KindReadDir means a directory could not be listed.
	KindReadDir
	// KindNoEntries means a directory held no entry files.
	KindNoEntries
	// KindNoEntriesFound means every entry directory failed.
	KindNoEntriesFound
)

// DirError records why one entry directory was rejected.
type DirError struct {
	Dir string
	Err error
}

// Error is returned when loading menu entries fails.
// Errors from the text format itself are *parser.Error and are passed through unchanged.
type Error struct {
	Kind ErrorKind
	// Value is the offending section, key, launch value, icon name or directory.
	Value  string
	Reason string
	Err    error
	// Attempts lists the rejected directories for KindNoEntriesFound.
	Attempts []DirError
}

// Sentinels for errors.Is. They match any Error of the same Kind.
var (
	ErrUnknownSection = &Error{Kind: KindUnknownSection}
	ErrUnknownKey     = &Error{Kind: KindUnknownKey}
	ErrInvalidLaunch  = &Error{Kind: KindInvalidLaunch}
	ErrIconNotFound   = &Error{Kind: KindIconNotFound}
	ErrReadDir        = &Error{Kind: KindReadDir}
	ErrNoEntries      = &Error{Kind: KindNoEntries}
	ErrNoEntriesFound = &Error{Kind: KindNoEntriesFound}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownSection:
		return fmt.Sprintf("menu entry cannot have section %s", e.Value)
	case KindUnknownKey:
		return fmt.Sprintf("menu entry cannot have key %s", e.Value)
	case KindInvalidLaunch:
		return fmt.Sprintf("launch command is empty: %q", e.Value)
	case KindIconNotFound:
		return fmt.Sprintf("icon not found: %s", e.Value)
	case KindReadDir:
		return fmt.Sprintf("could not read dir %s: %s", e.Value, e.Reason)
	case KindNoEntries:
		return fmt.Sprintf("no entry files in %s", e.Value)
	case KindNoEntriesFound:
		var b strings.Builder
		b.WriteString("could not load menu entries, searched:")
		for _, a := range e.Attempts {
			fmt.Fprintf(&b, "\n%s: %v", a.Dir, a.Err)
		}
		return b.String()
	default:
		return "entries error"
	}
}

// Unwrap returns the underlying I/O error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func readDirError(dir string, err error) error {
	return &Error{Kind: KindReadDir, Value: dir, Reason: err.Error(), Err: err}
}
