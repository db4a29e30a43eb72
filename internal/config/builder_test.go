package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tvmenu/internal/parser"
)

func TestLoadString_Example(t *testing.T) {
	input := `background=#101010
padding=5

[Entries]
background=rgb(20,20,20)
text-color=#ffffff
border-radius=4
text-size=14
width=100
height=100
`
	cfg, err := LoadString(input, "tvmenu.conf")
	require.NoError(t, err)

	assert.Equal(t, RGB(16, 16, 16), cfg.Background)
	assert.Equal(t, 5.0, cfg.Padding)
	assert.Equal(t, RGB(20, 20, 20), cfg.Entries.Background)
	assert.Equal(t, RGB(255, 255, 255), cfg.Entries.TextColor)
	assert.Equal(t, 4.0, cfg.Entries.BorderRadius)
	assert.Equal(t, 14.0, cfg.Entries.TextSize)
	assert.Equal(t, 100.0, cfg.Entries.Width)
	assert.Equal(t, 100.0, cfg.Entries.Height)
	// untouched window settings keep their defaults
	assert.Equal(t, White, cfg.TextColor)
	assert.Equal(t, 10.0, cfg.ColumnGap)
	assert.Equal(t, 0, cfg.Columns)
}

func TestLoadString_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadString("// nothing here\n", "tvmenu.conf")
	require.NoError(t, err)

	assert.Equal(t, DefaultAppConfig(), cfg)
	assert.Equal(t, Black, cfg.Background)
	assert.Equal(t, Transparent, cfg.Entries.Background)
	assert.Equal(t, Black, cfg.Entries.TextColor)
	assert.Equal(t, 12.0, cfg.Entries.TextSize)
	assert.Equal(t, 10.0, cfg.RowGap)
}

func TestLoadString_OmittedBorderRadiusDefaults(t *testing.T) {
	cfg, err := LoadString("[Entries]\ntext-size=20\n", "tvmenu.conf")
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Entries.BorderRadius)
	assert.Equal(t, 20.0, cfg.Entries.TextSize)
}

func TestLoadString_AllWindowKeys(t *testing.T) {
	input := "background=rgba(1,2,3,4)\ntext-color=#0a0b0c\npadding=2.5\ncolumns=4\n" +
		"height=600\nwidth=800\ncolumn-gap=3\nrow-gap=7\n"
	cfg, err := LoadString(input, "tvmenu.conf")
	require.NoError(t, err)

	assert.Equal(t, RGBA(1, 2, 3, 4), cfg.Background)
	assert.Equal(t, RGB(10, 11, 12), cfg.TextColor)
	assert.Equal(t, 2.5, cfg.Padding)
	assert.Equal(t, 4, cfg.Columns)
	assert.Equal(t, 600.0, cfg.Height)
	assert.Equal(t, 800.0, cfg.Width)
	assert.Equal(t, 3.0, cfg.ColumnGap)
	assert.Equal(t, 7.0, cfg.RowGap)
}

func TestLoadString_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		target  error
		message string
	}{
		{
			name:    "unknown key",
			input:   "[Entries]\nborder-raduis=4\n",
			target:  parser.ErrUnexpectedKeys,
			message: "unexpected keys border-raduis for section Entries in tvmenu.conf",
		},
		{
			name:    "unknown section",
			input:   "[Tiles]\nwidth=4\n",
			target:  parser.ErrUnexpectedSections,
			message: "unexpected sections Tiles in tvmenu.conf",
		},
		{
			name:    "bad color",
			input:   "background=blue\n",
			target:  ErrInvalidColor,
			message: "not a valid color: blue",
		},
		{
			name:    "bad number",
			input:   "padding=five\n",
			target:  ErrInvalidNumber,
			message: "not a valid number: five",
		},
		{
			name:    "fractional columns",
			input:   "columns=2.5\n",
			target:  ErrInvalidNumber,
			message: "not a valid number: 2.5",
		},
		{
			name:    "negative columns",
			input:   "columns=-1\n",
			target:  ErrInvalidNumber,
			message: "not a valid number: -1",
		},
		{
			name:    "malformed line",
			input:   "padding=1\nfoo bar\n",
			target:  parser.ErrInvalidFormat,
			message: "could not parse line 1 of tvmenu.conf: Entries need to be in key=value format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.input, "tvmenu.conf")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestLoadString_TypoNamesOnlyThatKey(t *testing.T) {
	input := "background=#101010\npaddng=5\n[Entries]\nwidth=100\ntext-size=14\n"

	_, err := LoadString(input, "tvmenu.conf")
	require.Error(t, err)

	var perr *parser.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parser.KindUnexpectedKeys, perr.Kind)
	assert.Equal(t, "", perr.Section)
	assert.Equal(t, []string{"paddng"}, perr.Names)
}

func TestAppConfigBuilder_RejectsForeignNames(t *testing.T) {
	b := &AppConfigBuilder{}

	_, err := b.SectionKeys("Power")
	assert.ErrorIs(t, err, ErrInvalidSection)

	err = b.ParseValue("", "shutdown", "poweroff")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.EqualError(t, err, "not a valid key for section : shutdown")

	err = b.ParseValue("Power", "shutdown", "poweroff")
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestColumnsFor(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Padding = 20

	assert.Equal(t, 4, cfg.ColumnsFor(460))
	assert.Equal(t, 1, cfg.ColumnsFor(50))

	cfg.Columns = 3
	assert.Equal(t, 3, cfg.ColumnsFor(1000))
}
