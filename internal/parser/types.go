// Package parser reads the tvmenu key=value text format and drains it into typed values.
//
// A file is a sequence of "key=value" lines grouped under optional "[Section]" headers.
// Lines before the first header belong to the unnamed section, whose name is the empty string.
// Everything after "//" on a line is a comment.
package parser

// Section holds the raw key/value pairs of one section.
type Section map[string]string

// Contents is the tokenized form of a file, keyed by section name.
type Contents struct {
	// Path is the file the contents were read from, kept for error messages.
	Path string
	// Sections maps section names to their raw values. The unnamed section is "".
	Sections map[string]Section
}

// SectionSpec declares a section a Builder consumes.
type SectionSpec struct {
	Name     string
	Optional bool
}

// KeySpec declares a key a Builder consumes inside a section.
type KeySpec struct {
	Name     string
	Optional bool
}

// UnnamedSection is the required section holding the lines before any header.
func UnnamedSection() SectionSpec {
	return SectionSpec{}
}

// Required declares a required key.
func Required(name string) KeySpec {
	return KeySpec{Name: name}
}

// Optional declares an optional key.
func Optional(name string) KeySpec {
	return KeySpec{Name: name, Optional: true}
}

// Builder turns drained Contents into a value of type T.
//
// FromContents visits Sections in declaration order, asks SectionKeys for each section that is
// present, hands every consumed value to ParseValue and finally calls Build.
type Builder[T any] interface {
	// Sections lists the sections the builder consumes.
	Sections() []SectionSpec
	// SectionKeys lists the keys consumed in a section. It fails for sections the builder does not own.
	SectionKeys(section string) ([]KeySpec, error)
	// ParseValue converts and stores one raw value.
	ParseValue(section, key, value string) error
	// Build produces the output once every value has been parsed.
	Build() T
}
