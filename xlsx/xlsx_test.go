package xlsx

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/pivotgrid"
	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/style"
)

func member(unique, caption string, depth int) pivotgrid.Member {
	return pivotgrid.Member{UniqueName: unique, Caption: caption, LevelDepth: depth}
}

func tuple(ms ...pivotgrid.Member) pivotgrid.Tuple { return pivotgrid.Tuple{Members: ms} }

// salesSet has two years of four quarters on columns and three categories on
// rows.
func salesSet() *pivotgrid.CellSet {
	var columns []pivotgrid.Tuple
	for _, y := range []string{"2023", "2024"} {
		year := member("[Date].["+y+"]", y, 1)
		for q := 1; q <= 4; q++ {
			columns = append(columns, tuple(year, member(fmt.Sprintf("[Date].[%s].[Q%d]", y, q), fmt.Sprintf("Q%d", q), 2)))
		}
	}
	var rows []pivotgrid.Tuple
	for _, c := range []string{"Bikes", "Clothing", "Accessories"} {
		rows = append(rows, tuple(member("[Product].["+c+"]", c, 1)))
	}
	cells := make([]pivotgrid.Cell, len(columns)*len(rows))
	for i := range cells {
		cells[i] = pivotgrid.Cell{Value: float64(i)}
	}
	return &pivotgrid.CellSet{
		Axes:  []pivotgrid.Axis{{Tuples: columns}, {Tuples: rows}},
		Cells: cells,
	}
}

// flatSet has a single header line.
func flatSet() *pivotgrid.CellSet {
	cs := &pivotgrid.CellSet{Axes: []pivotgrid.Axis{
		{Tuples: []pivotgrid.Tuple{tuple(member("[M].[Qty]", "Qty", 1)), tuple(member("[M].[Amount]", "Amount", 1))}},
		{},
	}}
	for i, d := range []int{1, 2, 2, 1} {
		cs.Axes[1].Tuples = append(cs.Axes[1].Tuples, tuple(member(fmt.Sprintf("[Org].[%d]", i), fmt.Sprintf("Unit %d", i), d)))
		cs.Cells = append(cs.Cells, pivotgrid.Cell{Value: i}, pivotgrid.Cell{Value: i * 10})
	}
	return cs
}

func roundTrip(t *testing.T, sheet string, cs *pivotgrid.CellSet, opts Options) (Size, WorkbookModel) {
	t.Helper()
	var buf bytes.Buffer
	size, err := Write(&buf, sheet, cs, opts)
	require.NoError(t, err)
	m, err := ParseWorkbookModel(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, m.Sheets, 1)
	return size, m
}

func TestWriteCellSet(t *testing.T) {
	size, m := roundTrip(t, "Report", salesSet(), Options{Title: "Sales"})
	assert.Equal(t, Size{Rows: 5, Columns: 9}, size)

	sheet := m.Sheets[0]
	assert.Equal(t, "Report", sheet.Name)
	require.Len(t, sheet.Rows, 5)

	title := sheet.Cell(0, 0)
	require.NotNil(t, title)
	assert.Equal(t, "Sales", title.Value)

	year := sheet.Cell(0, 1)
	require.NotNil(t, year)
	assert.Equal(t, "2023", year.Value)
	assert.Equal(t, 4, year.ColSpan)
	assert.True(t, year.Style.Bold)
	assert.Equal(t, "center", year.Style.HorizontalAlign)
	assert.Equal(t, "FFE699", year.Style.BackgroundColor)

	assert.Nil(t, sheet.Cell(0, 2), "merged cells are covered by their master")
	assert.Equal(t, 4, sheet.Cell(0, 5).ColSpan)
	assert.Equal(t, "Q1", sheet.Cell(1, 1).Value)

	label := sheet.Cell(2, 0)
	require.NotNil(t, label)
	assert.Equal(t, "   Bikes", label.Value)
	assert.Equal(t, "FFF2CC", label.Style.BackgroundColor)

	value := sheet.Cell(4, 8)
	require.NotNil(t, value)
	n, err := value.Cell.GetValueAsNumber()
	require.NoError(t, err)
	assert.Equal(t, 23.0, n)
	assert.Equal(t, "thin", value.Style.BorderRight.Style)
	assert.Equal(t, "thin", value.Style.BorderBottom.Style)

	assert.Equal(t, "'Report'!$A$1:$I$5", m.DefinedNames["Report_Table1"])
	assert.Empty(t, sheet.AutoFilter, "two header lines disable the filter")
	assert.Empty(t, sheet.FrozenAt)
}

func TestWriteCellSetAtOrigin(t *testing.T) {
	_, m := roundTrip(t, "Data", flatSet(), Options{Column: 3, Row: 2, TableName: "Units"})
	sheet := m.Sheets[0]

	assert.Equal(t, "'Data'!$C$2:$E$6", m.DefinedNames["Units"])
	assert.Equal(t, "Qty", sheet.Cell(1, 3).Value)
	assert.Equal(t, "C2:E6", sheet.AutoFilter)
	assert.Equal(t, " ", sheet.Cell(1, 2).Value, "label column gets a blank caption under the filter")
}

func TestWriteCellSetOutline(t *testing.T) {
	_, m := roundTrip(t, "Org", flatSet(), Options{RowGroups: true, IndentUnit: "-"})
	sheet := m.Sheets[0]

	var levels []int
	for _, row := range sheet.Rows[1:] {
		levels = append(levels, row.OutlineLevel)
	}
	assert.Equal(t, []int{0, 1, 1, 0}, levels)
	assert.Equal(t, "--Unit 1", sheet.Cell(2, 0).Value)
}

func TestWriteCellSetFreezeAndFilterFlags(t *testing.T) {
	ts := style.Plain()
	ts.FreezePane = true
	ts.ShowFilter = style.Bool(false)

	_, m := roundTrip(t, "Flags", flatSet(), Options{Style: ts})
	sheet := m.Sheets[0]
	assert.Equal(t, "B2", sheet.FrozenAt)
	assert.Empty(t, sheet.AutoFilter)
	header := sheet.Cell(0, 1)
	require.NotNil(t, header)
	assert.True(t, header.Style.Bold)
	assert.Empty(t, header.Style.BackgroundColor)
}

func TestWriteCellSetAutoFit(t *testing.T) {
	_, m := roundTrip(t, "Fit", flatSet(), Options{AutoFit: true})
	widths := m.Sheets[0].ColWidths
	require.Len(t, widths, 3)
	// "Amount" is six wide plus padding.
	assert.InDelta(t, 8*8.3, widths[2], 0.001)
}

func TestWriteCellSetErrors(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, "", &pivotgrid.CellSet{Axes: make([]pivotgrid.Axis, 3)}, Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedGeometry))

	bad := flatSet()
	bad.Cells[0].Properties = pivotgrid.Properties{"FORMAT_STRING": "#,##0.0"}
	_, err = Write(&buf, "", bad, Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
}

func TestWriteCellSetEmpty(t *testing.T) {
	wb := spreadsheet.New()
	sheet := wb.AddSheet()
	size, err := WriteCellSet(wb, sheet, &pivotgrid.CellSet{}, Options{Title: "Nothing"})
	require.NoError(t, err)
	assert.Equal(t, Size{}, size)
}

func TestWriteCellSetNumberFormats(t *testing.T) {
	cs := flatSet()
	cs.Cells[1].Properties = pivotgrid.Properties{"FORMAT_STRING": "Currency"}
	_, m := roundTrip(t, "Fmt", cs, Options{})

	cell := m.Sheets[0].Cell(1, 2)
	require.NotNil(t, cell)
	assert.Equal(t, `#,##0.00 "USD"`, cell.Style.NumberFormat)
}

func TestStyleCacheSharesStyles(t *testing.T) {
	wb := spreadsheet.New()
	c := newStyleCache(wb.StyleSheet)

	bold := cellKey{attrs: style.Attributes{Bold: style.On}}
	red := cellKey{attrs: style.Attributes{Background: style.RGB(255, 0, 0)}}

	assert.Equal(t, c.get(bold).Index(), c.get(bold).Index())
	assert.NotEqual(t, c.get(bold).Index(), c.get(red).Index())
	assert.Len(t, c.styles, 2)
}

func TestDefaultTableName(t *testing.T) {
	assert.Equal(t, "MySheet_Table1", DefaultTableName("My Sheet"))
}

func TestRenderWorkbookHTML(t *testing.T) {
	_, m := roundTrip(t, "Preview", salesSet(), Options{RowGroups: true})
	out := RenderWorkbookHTML(m)

	assert.Contains(t, out, `data-name="Preview"`)
	assert.Contains(t, out, `colspan="4"`)
	assert.Contains(t, out, "&nbsp;&nbsp;&nbsp;Bikes")
	assert.Contains(t, out, "font-weight:bold;")
	assert.Contains(t, out, "background-color:#FFE699;")
	assert.Equal(t, 1, strings.Count(out, "<table"))
}

func TestStyleToCSS(t *testing.T) {
	css := styleToCSS(CellStyle{
		Bold:            true,
		Underline:       true,
		Strike:          true,
		HorizontalAlign: "right",
		BorderTop:       Border{Style: "medium", Color: "FF0000"},
	})
	assert.Equal(t, "font-weight:bold;text-decoration:underline line-through;border-top:2px solid #FF0000;text-align:right;", css)
	assert.Empty(t, styleToCSS(CellStyle{}))
}
