package config

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color.
// It marshals to and from text as #rrggbbaa.
type Color struct {
	R, G, B, A uint8
}

var (
	// Black is #000000ff.
	Black = RGB(0, 0, 0)
	// White is #ffffffff.
	White = RGB(255, 255, 255)
	// Transparent is #00000000.
	Transparent = RGBA(0, 0, 0, 0)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex formats c as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// HexRGB formats c as #rrggbb, dropping alpha.
func (c Color) HexRGB() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses "#rrggbb", "#rrggbbaa", "rgb(r,g,b)" or "rgba(r,g,b,a)".
// The input is not trimmed.
func ParseColor(input string) (Color, error) {
	switch {
	case strings.HasPrefix(input, "#"):
		return parseHex(input)
	case strings.HasPrefix(input, "rgba"):
		return parseFunctional(input, "rgba(", 4)
	case strings.HasPrefix(input, "rgb"):
		return parseFunctional(input, "rgb(", 3)
	default:
		return Color{}, invalidColor(input)
	}
}

func parseHex(input string) (Color, error) {
	if len(input) != 7 && len(input) != 9 {
		return Color{}, invalidColor(input)
	}
	channels, err := hex.DecodeString(input[1:])
	if err != nil {
		return Color{}, invalidColor(input)
	}
	c := RGB(channels[0], channels[1], channels[2])
	if len(channels) == 4 {
		c.A = channels[3]
	}
	return c, nil
}

func parseFunctional(input, prefix string, fields int) (Color, error) {
	body, ok := strings.CutPrefix(input, prefix)
	if !ok {
		return Color{}, invalidColor(input)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return Color{}, invalidColor(input)
	}
	parts := strings.Split(body, ",")
	if len(parts) != fields {
		return Color{}, invalidColor(input)
	}
	channels := [4]uint8{3: 255}
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return Color{}, invalidColor(input)
		}
		channels[i] = uint8(v)
	}
	return RGBA(channels[0], channels[1], channels[2], channels[3]), nil
}
