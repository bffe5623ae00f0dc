package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/style"
)

func TestResolverText(t *testing.T) {
	r := NewResolver(language.AmericanEnglish)

	tests := []struct {
		name  string
		code  Code
		value any
		want  string
	}{
		{"general int", General, 42, "42"},
		{"number float", Number, 3.5, "3.5"},
		{"fixed", Fixed, 2, "2.00"},
		{"standard grouping", Standard, 1234.567, "1,234.57"},
		{"percent", Percent, 0.256, "25.60%"},
		{"scientific", Scientific, 12345.0, "1.23E+04"},
		{"yes", YesNo, true, "Yes"},
		{"no from zero", YesNo, 0, "No"},
		{"true", TrueFalse, true, "True"},
		{"off", OnOff, false, "Off"},
		{"uint64 beyond int64", Fixed, uint64(1) << 63, "9223372036854775808.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Text(tt.code, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolverCurrency(t *testing.T) {
	r := NewResolver(language.AmericanEnglish)

	got, err := r.Text(Currency, 10)
	require.NoError(t, err)
	assert.Contains(t, got, "10.00")
	assert.Equal(t, `#,##0.00 "USD"`, r.NumberFormat(Currency))
	assert.Equal(t, currency.USD, r.Currency())
}

func TestResolverGerman(t *testing.T) {
	r := NewResolver(language.German)

	got, err := r.Text(YesNo, true)
	require.NoError(t, err)
	assert.Equal(t, "Ja", got)

	got, err = r.Text(Fixed, 2.5)
	require.NoError(t, err)
	assert.Equal(t, "2,50", got)

	assert.Equal(t, `"Ja";"Ja";"Nein"`, r.NumberFormat(YesNo))
}

func TestResolverUnsupportedType(t *testing.T) {
	r := NewResolver(language.Und)

	_, err := r.Text(Percent, "text")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedCellType))

	_, err = r.Text(Fixed, true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedCellType))

	_, err = r.Text(YesNo, "yes")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedCellType))
}

func TestResolve(t *testing.T) {
	r := NewResolver(language.AmericanEnglish)

	t.Run("format string", func(t *testing.T) {
		res, err := r.Resolve(0.5, map[string]any{PropFormatString: "Percent"})
		require.NoError(t, err)
		assert.Equal(t, "50.00%", res.Text)
		assert.Equal(t, 0.5, res.Value)
		assert.Equal(t, "0.00%", res.NumberFormat)
	})

	t.Run("formatted value fallback", func(t *testing.T) {
		res, err := r.Resolve(1234.5, map[string]any{PropFormattedValue: "1.234,50 €"})
		require.NoError(t, err)
		assert.Equal(t, "1.234,50 €", res.Text)
		assert.Equal(t, "1.234,50 €", res.Value)
		assert.Empty(t, res.NumberFormat)
	})

	t.Run("no metadata", func(t *testing.T) {
		res, err := r.Resolve(7, nil)
		require.NoError(t, err)
		assert.Equal(t, "7", res.Text)
		assert.Equal(t, 7, res.Value)
	})

	t.Run("nil value", func(t *testing.T) {
		res, err := r.Resolve(nil, map[string]any{PropFormatString: "Bogus"})
		require.NoError(t, err)
		assert.Empty(t, res.Text)
	})

	t.Run("nil value ignores formatted value", func(t *testing.T) {
		res, err := r.Resolve(nil, map[string]any{
			PropFormatString:   "Percent",
			PropFormattedValue: "",
		})
		require.NoError(t, err)
		assert.Nil(t, res.Value)
		assert.Empty(t, res.Text)
	})

	t.Run("unknown code", func(t *testing.T) {
		res, err := r.Resolve(1, map[string]any{
			PropFormatString: "#,##0.0",
			PropFontFlags:    FontBold,
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
		assert.Equal(t, style.On, res.Style.Bold)
	})
}

func TestDecodeAttributes(t *testing.T) {
	a := DecodeAttributes(map[string]any{
		PropBackColor: 0x0000FF,
		PropForeColor: uint32(0xFF0000),
		PropFontFlags: FontItalic | FontUnderline | FontStrikeout,
		PropFontSize:  11,
		PropFontName:  "Segoe UI",
	})

	assert.Equal(t, style.Color("FF0000"), a.Background)
	assert.Equal(t, style.Color("0000FF"), a.FontColor)
	assert.Equal(t, style.Unset, a.Bold)
	assert.Equal(t, style.On, a.Italic)
	assert.Equal(t, style.On, a.Underline)
	assert.Equal(t, style.On, a.Strike)
	assert.Equal(t, 11.0, a.FontSize)
	assert.Equal(t, "Segoe UI", a.FontName)

	assert.True(t, DecodeAttributes(map[string]any{PropBackColor: nil}).IsZero())
}

func TestParseCode(t *testing.T) {
	for _, c := range Codes() {
		got, ok := ParseCode(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseCode("percent")
	assert.False(t, ok)
}
