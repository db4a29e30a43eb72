package config

import (
	"strconv"

	"github.com/bnema/tvmenu/internal/parser"
)

// EntriesSection is the section holding per-tile settings.
const EntriesSection = "Entries"

// AppConfigBuilder drains tvmenu.conf into an AppConfig.
// Unset fields fall back to the package defaults in Build.
type AppConfigBuilder struct {
	background *Color
	textColor  *Color
	padding    *float64
	columns    *int
	height     *float64
	width      *float64
	columnGap  *float64
	rowGap     *float64

	entryBackground   *Color
	entryTextColor    *Color
	entryBorderRadius *float64
	entryTextSize     *float64
	entryWidth        *float64
	entryHeight       *float64
}

var _ parser.Builder[*AppConfig] = (*AppConfigBuilder)(nil)

// Sections implements parser.Builder. Both sections are optional so an empty file is valid.
func (b *AppConfigBuilder) Sections() []parser.SectionSpec {
	return []parser.SectionSpec{
		{Name: "", Optional: true},
		{Name: EntriesSection, Optional: true},
	}
}

// SectionKeys implements parser.Builder.
func (b *AppConfigBuilder) SectionKeys(section string) ([]parser.KeySpec, error) {
	switch section {
	case "":
		return []parser.KeySpec{
			parser.Optional("background"),
			parser.Optional("padding"),
			parser.Optional("text-color"),
			parser.Optional("columns"),
			parser.Optional("height"),
			parser.Optional("width"),
			parser.Optional("column-gap"),
			parser.Optional("row-gap"),
		}, nil
	case EntriesSection:
		return []parser.KeySpec{
			parser.Optional("background"),
			parser.Optional("text-color"),
			parser.Optional("border-radius"),
			parser.Optional("text-size"),
			parser.Optional("width"),
			parser.Optional("height"),
		}, nil
	default:
		return nil, &Error{Kind: KindInvalidSection, Value: section}
	}
}

// ParseValue implements parser.Builder.
func (b *AppConfigBuilder) ParseValue(section, key, value string) error {
	var err error
	switch section {
	case "":
		switch key {
		case "background":
			b.background, err = colorValue(value)
		case "text-color":
			b.textColor, err = colorValue(value)
		case "padding":
			b.padding, err = floatValue(value)
		case "columns":
			b.columns, err = intValue(value)
		case "height":
			b.height, err = floatValue(value)
		case "width":
			b.width, err = floatValue(value)
		case "column-gap":
			b.columnGap, err = floatValue(value)
		case "row-gap":
			b.rowGap, err = floatValue(value)
		default:
			return &Error{Kind: KindInvalidKey, Section: section, Key: key}
		}
	case EntriesSection:
		switch key {
		case "background":
			b.entryBackground, err = colorValue(value)
		case "text-color":
			b.entryTextColor, err = colorValue(value)
		case "border-radius":
			b.entryBorderRadius, err = floatValue(value)
		case "text-size":
			b.entryTextSize, err = floatValue(value)
		case "width":
			b.entryWidth, err = floatValue(value)
		case "height":
			b.entryHeight, err = floatValue(value)
		default:
			return &Error{Kind: KindInvalidKey, Section: section, Key: key}
		}
	default:
		return &Error{Kind: KindInvalidSection, Value: section}
	}
	return err
}

// Build implements parser.Builder.
func (b *AppConfigBuilder) Build() *AppConfig {
	return &AppConfig{
		Background: or(b.background, Black),
		TextColor:  or(b.textColor, White),
		Padding:    or(b.padding, defaultPadding),
		Columns:    or(b.columns, 0),
		Height:     or(b.height, defaultHeight),
		Width:      or(b.width, defaultWidth),
		ColumnGap:  or(b.columnGap, defaultColumnGap),
		RowGap:     or(b.rowGap, defaultRowGap),
		Entries: EntryConfig{
			Background:   or(b.entryBackground, Transparent),
			TextColor:    or(b.entryTextColor, Black),
			BorderRadius: or(b.entryBorderRadius, defaultEntryBorderRadius),
			TextSize:     or(b.entryTextSize, defaultEntryTextSize),
			Width:        or(b.entryWidth, defaultEntryWidth),
			Height:       or(b.entryHeight, defaultEntryHeight),
		},
	}
}

func or[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func colorValue(raw string) (*Color, error) {
	c, err := ParseColor(raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func floatValue(raw string) (*float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalidNumber(raw)
	}
	return &f, nil
}

func intValue(raw string) (*int, error) {
	n, err := strconv.ParseUint(raw, 10, 31)
	if err != nil {
		return nil, invalidNumber(raw)
	}
	i := int(n)
	return &i, nil
}
