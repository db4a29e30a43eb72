package config

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a config Error.
type ErrorKind int

const (
	// KindInvalidColor means a color literal did not parse.
	KindInvalidColor ErrorKind = iota + 1
	// KindInvalidNumber means a numeric value did not parse.
	KindInvalidNumber
	// KindInvalidKey means the builder was handed a key it does not own.
	KindInvalidKey
	// KindInvalidSection means the builder was asked about a section it does not own.
	KindInvalidSection
	// KindNoConfigFound means no candidate path held a valid config.
	KindNoConfigFound
	// KindHomeDir means a leading ~ could not be expanded.
	KindHomeDir
)

// Error is returned when building an AppConfig fails.
// Errors from the text format itself are *parser.Error and are passed through unchanged.
type Error struct {
	Kind ErrorKind
	// Value is the offending raw value, section or path.
	Value   string
	Section string
	Key     string
	// Candidates lists the searched paths for KindNoConfigFound.
	Candidates []string
	Reason     string
}

// Sentinels for errors.Is. They match any Error of the same Kind.
var (
	ErrInvalidColor   = &Error{Kind: KindInvalidColor}
	ErrInvalidNumber  = &Error{Kind: KindInvalidNumber}
	ErrInvalidKey     = &Error{Kind: KindInvalidKey}
	ErrInvalidSection = &Error{Kind: KindInvalidSection}
	ErrNoConfigFound  = &Error{Kind: KindNoConfigFound}
	ErrHomeDir        = &Error{Kind: KindHomeDir}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidColor:
		return fmt.Sprintf("not a valid color: %s", e.Value)
	case KindInvalidNumber:
		return fmt.Sprintf("not a valid number: %s", e.Value)
	case KindInvalidKey:
		return fmt.Sprintf("not a valid key for section %s: %s", e.Section, e.Key)
	case KindInvalidSection:
		return fmt.Sprintf("not a valid section: %s", e.Value)
	case KindNoConfigFound:
		return fmt.Sprintf("could not find valid config file, searched:\n%s", strings.Join(e.Candidates, "\n"))
	case KindHomeDir:
		return fmt.Sprintf("could not expand home directory for %s: %s", e.Value, e.Reason)
	default:
		return "config error"
	}
}

// Is reports whether target is an Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func invalidColor(raw string) error {
	return &Error{Kind: KindInvalidColor, Value: raw}
}

func invalidNumber(raw string) error {
	return &Error{Kind: KindInvalidNumber, Value: raw}
}
