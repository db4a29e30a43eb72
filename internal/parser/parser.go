package parser

import (
	"bufio"
	"os"
	"strings"
)

const formatReason = "Entries need to be in key=value format"

// ParseFile reads path and drains it into the output of b.
func ParseFile[T any](path string, b Builder[T]) (T, error) {
	contents, err := ReadFile(path)
	if err != nil {
		var zero T
		return zero, err
	}
	return FromContents(contents, b)
}

// ReadFile reads and tokenizes the file at path.
func ReadFile(path string) (*Contents, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindReadFile, Path: path, Reason: err.Error(), Err: err}
	}
	return ParseString(string(data), path)
}

// ParseString tokenizes text into sections. path is only used in errors.
//
// Lines are not trimmed: a blank line must be empty after the comment is cut, and a
// header must start with [ and end with ]. Only keys and values are trimmed.
//
// A header reopening an earlier section replaces the earlier block instead of merging with it.
func ParseString(text, path string) (*Contents, error) {
	contents := &Contents{Path: path, Sections: make(map[string]Section)}
	current := ""
	values := make(Section)

	flush := func() {
		if len(values) > 0 {
			contents.Sections[current] = values
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for lineNr := 0; scanner.Scan(); lineNr++ {
		line := removeComment(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			flush()
			values = make(Section)
			current = strings.NewReplacer("[", "", "]", "").Replace(line)
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &Error{Kind: KindInvalidFormat, Path: path, Line: lineNr, Reason: formatReason}
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Kind: KindReadFile, Path: path, Reason: err.Error(), Err: err}
	}
	flush()
	return contents, nil
}

func removeComment(line string) string {
	before, _, _ := strings.Cut(line, "//")
	return before
}
