package format

import (
	"fmt"
	"math"

	"github.com/aerissecure/pivotgrid/style"
)

// ColorFromRGBInteger unpacks a colour stored with red in the low byte,
// green in the middle and blue in the high byte.
func ColorFromRGBInteger(rgb uint32) style.Color {
	r := uint8(rgb & 0x0000FF)
	g := uint8((rgb & 0x00FF00) >> 8)
	b := uint8((rgb & 0xFF0000) >> 16)
	return style.RGB(r, g, b)
}

// DecodeAttributes reads colour and font metadata from cell properties.
// Properties that are absent, nil or of an unusable type are ignored.
func DecodeAttributes(props map[string]any) style.Attributes {
	var a style.Attributes
	if v, ok := integer(props[PropBackColor]); ok {
		a.Background = ColorFromRGBInteger(uint32(v))
	}
	if v, ok := integer(props[PropForeColor]); ok {
		a.FontColor = ColorFromRGBInteger(uint32(v))
	}
	if flags, ok := integer(props[PropFontFlags]); ok {
		if flags&FontBold == FontBold {
			a.Bold = style.On
		}
		if flags&FontItalic == FontItalic {
			a.Italic = style.On
		}
		if flags&FontUnderline == FontUnderline {
			a.Underline = style.On
		}
		if flags&FontStrikeout == FontStrikeout {
			a.Strike = style.On
		}
	}
	if size, ok := toFloat(props[PropFontSize]); ok && size > 0 {
		a.FontSize = size
	}
	if name, ok := props[PropFontName]; ok && name != nil {
		a.FontName = fmt.Sprint(name)
	}
	return a
}

func integer(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case uint64:
		return float64(n), true
	}
	if i, ok := integer(v); ok {
		return float64(i), true
	}
	return 0, false
}
