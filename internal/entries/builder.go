package entries

import (
	"strings"

	"github.com/bnema/tvmenu/internal/parser"
)

// EntryBuilder drains one entry file into a MenuEntry.
type EntryBuilder struct {
	// IconDirs are searched for the icon key.
	IconDirs []string

	title  string
	launch string
	args   []string
	icon   string
}

var _ parser.Builder[*MenuEntry] = (*EntryBuilder)(nil)

// Sections implements parser.Builder.
func (b *EntryBuilder) Sections() []parser.SectionSpec {
	return []parser.SectionSpec{parser.UnnamedSection()}
}

// SectionKeys implements parser.Builder.
func (b *EntryBuilder) SectionKeys(section string) ([]parser.KeySpec, error) {
	if section != "" {
		return nil, &Error{Kind: KindUnknownSection, Value: section}
	}
	return []parser.KeySpec{
		parser.Required("title"),
		parser.Required("launch"),
		parser.Optional("icon"),
	}, nil
}

// ParseValue implements parser.Builder.
func (b *EntryBuilder) ParseValue(section, key, value string) error {
	if section != "" {
		return &Error{Kind: KindUnknownSection, Value: section}
	}
	switch key {
	case "title":
		b.title = value
	case "launch":
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return &Error{Kind: KindInvalidLaunch, Value: value}
		}
		b.launch = fields[0]
		b.args = fields[1:]
	case "icon":
		icon, err := FindIcon(value, b.IconDirs)
		if err != nil {
			return err
		}
		b.icon = icon
	default:
		return &Error{Kind: KindUnknownKey, Value: key}
	}
	return nil
}

// Build implements parser.Builder.
func (b *EntryBuilder) Build() *MenuEntry {
	return &MenuEntry{
		Title:  b.title,
		Launch: b.launch,
		Args:   b.args,
		Icon:   b.icon,
	}
}
