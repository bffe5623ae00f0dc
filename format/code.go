// Package format resolves query format codes and cell metadata into
// presentation values that every sink understands.
package format

// Code is a named format rule carried in a cell's FORMAT_STRING property.
type Code string

const (
	General    Code = "General"
	Number     Code = "Number"
	Currency   Code = "Currency"
	Fixed      Code = "Fixed"
	Standard   Code = "Standard"
	Percent    Code = "Percent"
	Scientific Code = "Scientific"
	YesNo      Code = "Yes/No"
	TrueFalse  Code = "True/False"
	OnOff      Code = "On/Off"
)

var codes = []Code{General, Number, Currency, Fixed, Standard, Percent, Scientific, YesNo, TrueFalse, OnOff}

// Codes returns the recognised vocabulary in declaration order.
func Codes() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// ParseCode looks s up in the vocabulary. Matching is exact.
func ParseCode(s string) (Code, bool) {
	for _, c := range codes {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// IsBoolean reports whether the code renders a truth value.
func (c Code) IsBoolean() bool {
	return c == YesNo || c == TrueFalse || c == OnOff
}

// Cell and member property names.
const (
	PropFormatString   = "FORMAT_STRING"
	PropFormattedValue = "FORMATTED_VALUE"
	PropBackColor      = "BACK_COLOR"
	PropForeColor      = "FORE_COLOR"
	PropFontFlags      = "FONT_FLAGS"
	PropFontSize       = "FONT_SIZE"
	PropFontName       = "FONT_NAME"
)

// FONT_FLAGS bits.
const (
	FontBold      = 1
	FontItalic    = 2
	FontUnderline = 4
	FontStrikeout = 8
)
