package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/pivotgrid/errors"
)

type borderCall struct {
	rect Rect
	edge Edge
	item BorderItem
}

type styleCall struct {
	rect  Rect
	attrs Attributes
}

type recorder struct {
	styles  []styleCall
	borders []borderCall
}

func (r *recorder) ApplyStyle(rect Rect, a Attributes) error {
	r.styles = append(r.styles, styleCall{rect, a})
	return nil
}

func (r *recorder) ApplyBorder(rect Rect, e Edge, b BorderItem) error {
	r.borders = append(r.borders, borderCall{rect, e, b})
	return nil
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffe699", "FFE699"},
		{"ffe699", "FFE699"},
		{"#fff", "FFFFFF"},
		{"FF00FF00", "00FF00"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseColor("not-a-colour")
	assert.Error(t, err)
}

func TestColorComponents(t *testing.T) {
	r, g, b, ok := RGB(255, 230, 153).Components()
	require.True(t, ok)
	assert.Equal(t, []uint8{255, 230, 153}, []uint8{r, g, b})

	_, _, _, ok = Color("").Components()
	assert.False(t, ok)
}

func TestAttributesMerge(t *testing.T) {
	base := Attributes{Background: "FFFFFF", Bold: On, HAlign: HAlignLeft}
	got := base.Merge(Attributes{Background: "000000", Italic: On})

	assert.Equal(t, Color("000000"), got.Background)
	assert.Equal(t, On, got.Bold)
	assert.Equal(t, On, got.Italic)
	assert.Equal(t, HAlignLeft, got.HAlign)

	assert.Equal(t, Off, got.Merge(Attributes{Bold: Off}).Bold)
	assert.True(t, Attributes{}.IsZero())
}

func TestBorderRangeOutline(t *testing.T) {
	rec := &recorder{}
	r := Rect{Top: 1, Left: 2, Bottom: 3, Right: 5}
	require.NoError(t, Outline(BorderThin, Black).Apply(rec, r, nil, nil))

	require.Len(t, rec.borders, 4)
	assert.Equal(t, borderCall{Rect{1, 2, 3, 2}, EdgeLeft, BorderItem{BorderThin, Black}}, rec.borders[0])
	assert.Equal(t, borderCall{Rect{1, 5, 3, 5}, EdgeRight, BorderItem{BorderThin, Black}}, rec.borders[1])
	assert.Equal(t, borderCall{Rect{1, 2, 1, 5}, EdgeTop, BorderItem{BorderThin, Black}}, rec.borders[2])
	assert.Equal(t, borderCall{Rect{3, 2, 3, 5}, EdgeBottom, BorderItem{BorderThin, Black}}, rec.borders[3])
}

func TestBorderRangeInnerLines(t *testing.T) {
	b := &BorderRange{Horizontal: Solid(BorderThin, ""), Vertical: Solid(BorderDashed, "")}
	r := Rect{Top: 0, Left: 0, Bottom: 2, Right: 4}

	t.Run("ungrouped", func(t *testing.T) {
		rec := &recorder{}
		require.NoError(t, b.Apply(rec, r, nil, nil))
		require.Len(t, rec.borders, 2)
		assert.Equal(t, Rect{0, 0, 1, 4}, rec.borders[0].rect)
		assert.Equal(t, EdgeBottom, rec.borders[0].edge)
		assert.Equal(t, Rect{0, 0, 2, 3}, rec.borders[1].rect)
		assert.Equal(t, EdgeRight, rec.borders[1].edge)
	})

	t.Run("grouped", func(t *testing.T) {
		rec := &recorder{}
		require.NoError(t, b.Apply(rec, r, []int{2, 1}, []int{2, 1, 2}))
		require.Len(t, rec.borders, 3)
		assert.Equal(t, borderCall{Rect{1, 0, 1, 4}, EdgeBottom, BorderItem{Style: BorderThin}}, rec.borders[0])
		assert.Equal(t, borderCall{Rect{0, 1, 2, 1}, EdgeRight, BorderItem{Style: BorderDashed}}, rec.borders[1])
		assert.Equal(t, borderCall{Rect{0, 2, 2, 2}, EdgeRight, BorderItem{Style: BorderDashed}}, rec.borders[2])
	})

	t.Run("single line has no inner border", func(t *testing.T) {
		rec := &recorder{}
		require.NoError(t, b.Apply(rec, Rect{0, 0, 0, 0}, nil, nil))
		assert.Empty(t, rec.borders)
	})
}

func TestBorderRangeDiagonal(t *testing.T) {
	rec := &recorder{}
	b := &BorderRange{Diagonal: Solid(BorderHair, Black), DiagonalDown: true}
	require.NoError(t, b.Apply(rec, Rect{0, 0, 1, 1}, nil, nil))
	require.Len(t, rec.borders, 1)
	assert.Equal(t, EdgeDiagonalDown, rec.borders[0].edge)
}

func TestAxisStyleCyclesColours(t *testing.T) {
	rec := &recorder{}
	s := &AxisStyle{BackgroundColors: []Color{"111111", "222222"}, FontColors: []Color{"333333"}}
	require.NoError(t, s.Apply(rec, Rect{0, 0, 1, 2}))

	require.Len(t, rec.styles, 3)
	assert.Equal(t, Rect{0, 0, 1, 0}, rec.styles[0].rect)
	assert.Equal(t, Color("111111"), rec.styles[0].attrs.Background)
	assert.Equal(t, Color("222222"), rec.styles[1].attrs.Background)
	assert.Equal(t, Color("111111"), rec.styles[2].attrs.Background)
	assert.Equal(t, Color("333333"), rec.styles[2].attrs.FontColor)
}

func TestAxisCellStyleApply(t *testing.T) {
	border := &BorderRange{Horizontal: Solid(BorderThin, Black), Vertical: Solid(BorderThin, Black)}

	t.Run("column groups drive vertical lines", func(t *testing.T) {
		rec := &recorder{}
		s := AxisCellStyle{Axis: AxisColumn, Border: border}
		require.NoError(t, s.Apply(rec, Rect{0, 0, 1, 3}, []int{2, 2}))
		var edges []Edge
		for _, b := range rec.borders {
			edges = append(edges, b.edge)
		}
		assert.Equal(t, []Edge{EdgeBottom, EdgeRight}, edges)
		assert.Equal(t, Rect{0, 1, 1, 1}, rec.borders[1].rect)
	})

	t.Run("row groups drive horizontal lines", func(t *testing.T) {
		rec := &recorder{}
		s := AxisCellStyle{Axis: AxisRow, Border: border}
		require.NoError(t, s.Apply(rec, Rect{0, 0, 3, 1}, []int{3, 1}))
		assert.Equal(t, Rect{2, 0, 2, 1}, rec.borders[0].rect)
		assert.Equal(t, EdgeBottom, rec.borders[0].edge)
	})

	t.Run("unbound axis panics", func(t *testing.T) {
		s := AxisCellStyle{}
		assert.Panics(t, func() { _ = s.Apply(&recorder{}, Rect{}, nil) })
	})
}

func TestTableStyleValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	ts := Default()
	ts.RowAxisCells = append(ts.RowAxisCells, ColumnCells())
	err := ts.Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTemplate))

	ts = Default()
	ts.RowAxisCells = append(ts.RowAxisCells, RowCells())
	require.NoError(t, ts.Validate())

	ts = &TableStyle{CellArea: &CellStyle{Border: &BorderRange{Top: &BorderItem{Style: "wavy"}}}}
	assert.True(t, errors.IsErrorCode(ts.Validate(), errors.ErrInvalidTemplate))
}

func TestTableStyleBind(t *testing.T) {
	ts := &TableStyle{
		ColumnAxisCells: []AxisCellStyle{{}},
		RowAxisCells:    []AxisCellStyle{{}, {Axis: AxisColumn}},
	}
	ts.Bind()
	assert.Equal(t, AxisColumn, ts.ColumnAxisCells[0].Axis)
	assert.Equal(t, AxisRow, ts.RowAxisCells[0].Axis)
	assert.Equal(t, AxisColumn, ts.RowAxisCells[1].Axis)
}

func TestTableStyleCloneIsDeep(t *testing.T) {
	orig := Default()
	c := orig.Clone()

	c.ColumnAxis.BackgroundColors[0] = "000000"
	c.ColumnAxis.Border.Left.Color = "FF0000"
	*c.ColumnAxis.Bold = false
	c.RowAxisCells[0].Background = "ABCDEF"
	c.ColumnAxisCells[1].Border.Vertical.Style = BorderThick

	fresh := Default()
	assert.Equal(t, fresh, orig)
}

func TestTableStyleNormalize(t *testing.T) {
	ts := &TableStyle{
		ColumnAxis:   &AxisStyle{BackgroundColors: []Color{"#abc"}},
		RowAxisCells: []AxisCellStyle{{Axis: AxisRow, Background: "#bdd7ee", Border: Outline(BorderThin, "#000")}},
	}
	require.NoError(t, ts.Normalize())
	assert.Equal(t, Color("AABBCC"), ts.ColumnAxis.BackgroundColors[0])
	assert.Equal(t, Color("BDD7EE"), ts.RowAxisCells[0].Background)
	assert.Equal(t, Black, ts.RowAxisCells[0].Border.Left.Color)
}

func TestFilterEnabled(t *testing.T) {
	var none *TableStyle
	assert.True(t, none.FilterEnabled(1))
	assert.False(t, none.FilterEnabled(2))
	assert.False(t, (&TableStyle{ShowFilter: Bool(false)}).FilterEnabled(1))
}

func TestPreset(t *testing.T) {
	for _, name := range []string{"", "default", "plain", "none"} {
		ts, ok := Preset(name)
		assert.True(t, ok, name)
		assert.NotNil(t, ts, name)
	}
	_, ok := Preset("fancy")
	assert.False(t, ok)
}
