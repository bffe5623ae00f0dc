package format

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/style"
)

// DefaultLanguage is used when a resolver is created for language.Und.
var DefaultLanguage = language.AmericanEnglish

// Result is the presentation of one cell.
type Result struct {
	// Value is what typed sinks store: the raw value, or the pre-formatted
	// string when the cell only carries FORMATTED_VALUE.
	Value any
	// Text is the display string.
	Text string
	// NumberFormat is the spreadsheet number format code, empty for none.
	NumberFormat string
	// Style holds the attributes decoded from the cell metadata.
	Style style.Attributes
}

// Resolver formats values for one language.
type Resolver struct {
	tag      language.Tag
	printer  *message.Printer
	decimal  string
	currency currency.Unit
	bools    boolTable
}

// NewResolver returns a resolver for tag.
func NewResolver(tag language.Tag) *Resolver {
	if tag == language.Und {
		tag = DefaultLanguage
	}
	p := message.NewPrinter(tag)

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}

	return &Resolver{
		tag:      tag,
		printer:  p,
		decimal:  decimalSeparator(p),
		currency: unit,
		bools:    boolTableFor(tag),
	}
}

// Language returns the resolver's language.
func (r *Resolver) Language() language.Tag { return r.tag }

// Currency returns the currency unit derived from the language's region.
func (r *Resolver) Currency() currency.Unit { return r.currency }

// Resolve formats value according to the FORMAT_STRING property and decodes
// the colour and font metadata. Metadata is decoded even when formatting fails.
func (r *Resolver) Resolve(value any, props map[string]any) (Result, error) {
	res := Result{Value: value, Style: DecodeAttributes(props)}

	if raw, ok := props[PropFormatString]; ok && raw != nil {
		if value == nil {
			return res, nil
		}
		code, known := ParseCode(fmt.Sprint(raw))
		if !known {
			return res, errors.Newf(errors.ErrNotImplemented, "format code %q is not implemented", fmt.Sprint(raw)).
				WithDetail("format", fmt.Sprint(raw))
		}
		text, err := r.Text(code, value)
		if err != nil {
			return res, err
		}
		res.Text = text
		res.NumberFormat = r.NumberFormat(code)
		return res, nil
	}

	if fv, ok := props[PropFormattedValue]; ok && fv != nil {
		res.Text = fmt.Sprint(fv)
		res.Value = res.Text
		return res, nil
	}

	if value != nil {
		res.Text = fmt.Sprint(value)
	}
	return res, nil
}

// Text renders value with code.
func (r *Resolver) Text(code Code, value any) (string, error) {
	if code.IsBoolean() {
		b, ok := truth(value)
		if !ok {
			return "", unsupported(code, value)
		}
		return r.bools.text(code, b), nil
	}

	if _, isBool := value.(bool); isBool {
		return "", unsupported(code, value)
	}
	v, ok := toFloat(value)
	if !ok {
		return "", unsupported(code, value)
	}

	switch code {
	case General, Number:
		return plainNumber(value), nil
	case Currency:
		return r.printer.Sprint(currency.Symbol(r.currency.Amount(v))), nil
	case Fixed:
		return r.localize(strconv.FormatFloat(v, 'f', 2, 64)), nil
	case Standard:
		return r.printer.Sprint(number.Decimal(v, number.Scale(2))), nil
	case Percent:
		return r.localize(strconv.FormatFloat(v*100, 'f', 2, 64)) + "%", nil
	case Scientific:
		return r.localize(strconv.FormatFloat(v, 'E', 2, 64)), nil
	}
	return "", errors.Newf(errors.ErrNotImplemented, "format code %q is not implemented", string(code))
}

// NumberFormat returns the spreadsheet number format for code.
func (r *Resolver) NumberFormat(code Code) string {
	switch code {
	case General, Number:
		return "General"
	case Currency:
		return fmt.Sprintf(`#,##0.00 "%s"`, r.currency.String())
	case Fixed:
		return "0.00"
	case Standard:
		return "#,##0.00"
	case Percent:
		return "0.00%"
	case Scientific:
		return "0.00E+00"
	case YesNo, TrueFalse, OnOff:
		on, off := r.bools.text(code, true), r.bools.text(code, false)
		return fmt.Sprintf(`"%s";"%s";"%s"`, on, on, off)
	}
	return ""
}

func (r *Resolver) localize(s string) string {
	if r.decimal == "." {
		return s
	}
	return strings.Replace(s, ".", r.decimal, 1)
}

func decimalSeparator(p *message.Printer) string {
	s := p.Sprint(number.Decimal(1.5, number.Scale(1)))
	if sep := strings.Trim(s, "0123456789"); sep != "" {
		return sep
	}
	return "."
}

func plainNumber(v any) string {
	switch n := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(n)
	}
	i, _ := integer(v)
	return strconv.FormatInt(i, 10)
}

func truth(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if f, ok := toFloat(v); ok {
		return f != 0, true
	}
	return false, false
}

func unsupported(code Code, value any) error {
	return errors.Newf(errors.ErrUnsupportedCellType, "format %q cannot render a value of type %T", string(code), value).
		WithDetail("format", string(code))
}
