package parser

import (
	"maps"
	"slices"
)

// FromContents drains contents into the output of b.
//
// Declared sections are visited in declaration order and removed from contents as they are
// consumed, and so are declared keys from their section. Whatever remains afterwards was not
// declared and is rejected. contents is consumed by the call.
func FromContents[T any](contents *Contents, b Builder[T]) (T, error) {
	var zero T
	for _, sec := range b.Sections() {
		section, ok := contents.Sections[sec.Name]
		if !ok {
			if sec.Optional {
				continue
			}
			return zero, &Error{Kind: KindMissingSection, Path: contents.Path, Section: sec.Name}
		}
		delete(contents.Sections, sec.Name)

		keys, err := b.SectionKeys(sec.Name)
		if err != nil {
			return zero, err
		}
		for _, key := range keys {
			value, ok := section[key.Name]
			if !ok {
				if key.Optional {
					continue
				}
				return zero, &Error{Kind: KindMissingKey, Path: contents.Path, Section: sec.Name, Key: key.Name}
			}
			delete(section, key.Name)
			if err := b.ParseValue(sec.Name, key.Name, value); err != nil {
				return zero, err
			}
		}
		if len(section) > 0 {
			return zero, &Error{
				Kind:    KindUnexpectedKeys,
				Path:    contents.Path,
				Section: sec.Name,
				Names:   slices.Sorted(maps.Keys(section)),
			}
		}
	}
	if len(contents.Sections) > 0 {
		return zero, &Error{
			Kind:  KindUnexpectedSections,
			Path:  contents.Path,
			Names: slices.Sorted(maps.Keys(contents.Sections)),
		}
	}
	return b.Build(), nil
}
