package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour as six upper-case hex digits without the leading "#"
// (e.g. "FFE699"). The empty string means "not set".
type Color string

// Black is used by the default borders.
const Black Color = "000000"

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("%02X%02X%02X", r, g, b))
}

// ParseColor accepts "#rgb", "rgb", "#rrggbb", "rrggbb" and the 8-digit ARGB form
// used by spreadsheets. An empty input yields an unset colour.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return "", nil
	}
	if len(s) == 8 {
		s = s[2:]
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return "", fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// IsSet reports whether the colour carries a value.
func (c Color) IsSet() bool { return c != "" }

// Hex returns the colour in CSS notation ("#FFE699"), or "" when unset.
func (c Color) Hex() string {
	if c == "" {
		return ""
	}
	return "#" + string(c)
}

// Components returns the red, green and blue parts. ok is false for unset or
// malformed colours.
func (c Color) Components() (r, g, b uint8, ok bool) {
	if c == "" {
		return 0, 0, 0, false
	}
	parsed, err := colorful.Hex(c.Hex())
	if err != nil {
		return 0, 0, 0, false
	}
	r, g, b = parsed.RGB255()
	return r, g, b, true
}

func normalizeColors(colors []Color) error {
	for i := range colors {
		n, err := ParseColor(string(colors[i]))
		if err != nil {
			return err
		}
		colors[i] = n
	}
	return nil
}

func normalizeColor(c *Color) error {
	n, err := ParseColor(string(*c))
	if err != nil {
		return err
	}
	*c = n
	return nil
}
