package parser

import (
	"fmt"
	"strings"
)

// Kind classifies a parser Error.
type Kind int

const (
	// KindReadFile means the file could not be read.
	KindReadFile Kind = iota + 1
	// KindInvalidFormat means a line is neither a header nor a key=value pair.
	KindInvalidFormat
	// KindMissingKey means a required key is absent from its section.
	KindMissingKey
	// KindMissingSection means a required section is absent.
	KindMissingSection
	// KindUnexpectedKeys means a section holds keys the builder does not declare.
	KindUnexpectedKeys
	// KindUnexpectedSections means the file holds sections the builder does not declare.
	KindUnexpectedSections
)

func (k Kind) String() string {
	switch k {
	case KindReadFile:
		return "read file"
	case KindInvalidFormat:
		return "invalid format"
	case KindMissingKey:
		return "missing key"
	case KindMissingSection:
		return "missing section"
	case KindUnexpectedKeys:
		return "unexpected keys"
	case KindUnexpectedSections:
		return "unexpected sections"
	default:
		return "unknown"
	}
}

// Error is returned by every parser operation.
// Only the fields relevant to Kind are set.
type Error struct {
	Kind    Kind
	Path    string
	Line    int
	Section string
	Key     string
	// Names lists the leftover keys or sections, sorted.
	Names  []string
	Reason string
	Err    error
}

// Sentinels for errors.Is. They match any Error of the same Kind.
var (
	ErrReadFile           = &Error{Kind: KindReadFile}
	ErrInvalidFormat      = &Error{Kind: KindInvalidFormat}
	ErrMissingKey         = &Error{Kind: KindMissingKey}
	ErrMissingSection     = &Error{Kind: KindMissingSection}
	ErrUnexpectedKeys     = &Error{Kind: KindUnexpectedKeys}
	ErrUnexpectedSections = &Error{Kind: KindUnexpectedSections}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindReadFile:
		return fmt.Sprintf("could not read file %s: %s", e.Path, e.Reason)
	case KindInvalidFormat:
		return fmt.Sprintf("could not parse line %d of %s: %s", e.Line, e.Path, e.Reason)
	case KindMissingKey:
		return fmt.Sprintf("missing key %s%s in %s", e.Key, forSection(e.Section), e.Path)
	case KindMissingSection:
		return fmt.Sprintf("missing section %s in %s", e.Section, e.Path)
	case KindUnexpectedKeys:
		return fmt.Sprintf("unexpected keys %s%s in %s", strings.Join(e.Names, ", "), forSection(e.Section), e.Path)
	case KindUnexpectedSections:
		return fmt.Sprintf("unexpected sections %s in %s", strings.Join(e.Names, ", "), e.Path)
	default:
		return fmt.Sprintf("parser error in %s", e.Path)
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

func forSection(section string) string {
	if section == "" {
		return ""
	}
	return " for section " + section
}
