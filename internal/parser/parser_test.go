package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString_Sections(t *testing.T) {
	input := `background=#101010 // window color
padding = 5

// tile settings
[Entries]
text-size=14
`
	contents, err := ParseString(input, "test.conf")
	require.NoError(t, err)

	assert.Equal(t, "test.conf", contents.Path)
	assert.Equal(t, map[string]Section{
		"":        {"background": "#101010", "padding": "5"},
		"Entries": {"text-size": "14"},
	}, contents.Sections)
}

func TestParseString_CommentInsideValue(t *testing.T) {
	contents, err := ParseString("launch=firefox https://example.com", "entry")
	require.NoError(t, err)

	assert.Equal(t, "firefox https:", contents.Sections[""]["launch"])
}

func TestParseString_SplitsOnFirstEquals(t *testing.T) {
	contents, err := ParseString("launch=env FOO=bar app", "entry")
	require.NoError(t, err)

	assert.Equal(t, "env FOO=bar app", contents.Sections[""]["launch"])
}

func TestParseString_EmptySectionsAreDropped(t *testing.T) {
	contents, err := ParseString("[Empty]\n[Entries]\nwidth=3\n", "test.conf")
	require.NoError(t, err)

	assert.NotContains(t, contents.Sections, "Empty")
	assert.NotContains(t, contents.Sections, "")
	assert.Contains(t, contents.Sections, "Entries")
}

func TestParseString_ReopenedSectionReplacesEarlierBlock(t *testing.T) {
	input := "[Entries]\nwidth=1\nheight=2\n[Other]\na=b\n[Entries]\nwidth=3\n"
	contents, err := ParseString(input, "test.conf")
	require.NoError(t, err)

	assert.Equal(t, Section{"width": "3"}, contents.Sections["Entries"])
}

func TestParseString_DuplicateKeyOverwrites(t *testing.T) {
	contents, err := ParseString("title=one\ntitle=two\n", "entry")
	require.NoError(t, err)

	assert.Equal(t, "two", contents.Sections[""]["title"])
}

func TestParseString_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		lineNr int
	}{
		{name: "first line", input: "foo bar\n", lineNr: 0},
		{name: "after blank and comment lines", input: "title=x\n\n// note\nfoo bar\n", lineNr: 3},
		{name: "inside section", input: "a=b\n[Entries]\nwidth=1\nfoo bar", lineNr: 3},
		{name: "whitespace only line", input: "a=b\n   \n", lineNr: 1},
		{name: "indented header", input: "  [Entries]\nwidth=1\n", lineNr: 0},
		{name: "header with trailing comment", input: "[Entries] // tiles\nwidth=1\n", lineNr: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input, "bad.conf")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.lineNr, perr.Line)
			assert.Equal(t, "bad.conf", perr.Path)
			assert.Equal(t, formatReason, perr.Reason)
		})
	}
}

func TestParseString_Deterministic(t *testing.T) {
	input := "title=Kodi\nlaunch=kodi --standalone\n"

	first, err := ParseString(input, "kodi")
	require.NoError(t, err)
	second, err := ParseString(input, "kodi")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tvmenu.conf")
	require.NoError(t, os.WriteFile(path, []byte("padding=3\r\n[Entries]\r\nwidth=4\r\n"), 0o644))

	contents, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3", contents.Sections[""]["padding"])
	assert.Equal(t, "4", contents.Sections["Entries"]["width"])
}

func TestReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.conf")

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}
