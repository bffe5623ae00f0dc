package htmltable

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/pivotgrid"
	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/internal/logging"
	"github.com/aerissecure/pivotgrid/style"
)

func member(unique, caption string, depth int) pivotgrid.Member {
	return pivotgrid.Member{UniqueName: unique, Caption: caption, LevelDepth: depth}
}

func tuple(ms ...pivotgrid.Member) pivotgrid.Tuple { return pivotgrid.Tuple{Members: ms} }

func smallSet() *pivotgrid.CellSet {
	return &pivotgrid.CellSet{
		Axes: []pivotgrid.Axis{
			{Tuples: []pivotgrid.Tuple{tuple(member("a", "A", 1)), tuple(member("b", "B", 1))}},
			{Tuples: []pivotgrid.Tuple{tuple(member("x", "X", 1)), tuple(member("x.y", "Y", 2))}},
		},
		Cells: []pivotgrid.Cell{{Value: 1}, {Value: 2}, {Value: 3}, {Value: 4}},
	}
}

func yearSet() *pivotgrid.CellSet {
	var columns []pivotgrid.Tuple
	for _, y := range []string{"2023", "2024"} {
		year := member("[Date].["+y+"]", y, 1)
		for q := 1; q <= 4; q++ {
			columns = append(columns, tuple(year, member(fmt.Sprintf("[Date].[%s].[Q%d]", y, q), fmt.Sprintf("Q%d", q), 2)))
		}
	}
	cells := make([]pivotgrid.Cell, len(columns))
	for i := range cells {
		cells[i] = pivotgrid.Cell{Value: i}
	}
	return &pivotgrid.CellSet{
		Axes:  []pivotgrid.Axis{{Tuples: columns}, {Tuples: []pivotgrid.Tuple{tuple(member("p", "Bikes", 1))}}},
		Cells: cells,
	}
}

func TestRenderEmpty(t *testing.T) {
	out, err := Render(&pivotgrid.CellSet{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "<table><thead></thead><tbody></tbody></table>", out)

	out, err = Render(&pivotgrid.CellSet{}, Options{Title: "R&D"})
	require.NoError(t, err)
	assert.Equal(t, "<table><caption>R&amp;D</caption><thead></thead><tbody></tbody></table>", out)
}

func TestRenderSmallTable(t *testing.T) {
	out, err := Render(smallSet(), Options{})
	require.NoError(t, err)
	assert.Equal(t,
		"<table><thead><tr><th>&nbsp;</th><th>A</th><th>B</th></tr></thead>"+
			"<tbody><tr><th>&ensp;X</th><td>1</td><td>2</td></tr>"+
			"<tr><th>&ensp;&ensp;Y</th><td>3</td><td>4</td></tr></tbody></table>",
		out)
}

func TestRenderMergedHeaders(t *testing.T) {
	out, err := Render(yearSet(), Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<table><thead><tr><th>&nbsp;</th><th colspan=\"4\""), out)
	assert.Contains(t, out, `<th colspan="4" style="text-align:center;">2023</th>`)
	assert.Contains(t, out, `<th colspan="4" style="text-align:center;">2024</th>`)
	assert.Equal(t, 8, strings.Count(out, "<th>Q"))
}

func TestRenderSingleAxis(t *testing.T) {
	cs := &pivotgrid.CellSet{
		Axes:  []pivotgrid.Axis{{Tuples: []pivotgrid.Tuple{tuple(member("a", "A", 1))}}},
		Cells: []pivotgrid.Cell{{Value: 7}},
	}
	out, err := Render(cs, Options{Title: "Total"})
	require.NoError(t, err)
	assert.Equal(t, "<table><caption>Total</caption><thead><tr><th>A</th></tr></thead><tbody><tr><td>7</td></tr></tbody></table>", out)
}

func TestRenderEscapesText(t *testing.T) {
	cs := smallSet()
	cs.Axes[0].Tuples[0].Members[0].Caption = "<b>"
	cs.Cells[0].Properties = pivotgrid.Properties{"FORMATTED_VALUE": "a&b"}

	out, err := Render(cs, Options{IndentUnit: "&nbsp;"})
	require.NoError(t, err)
	assert.Contains(t, out, "<th>&lt;b&gt;</th>")
	assert.Contains(t, out, "<td>a&amp;b</td>")
	assert.Contains(t, out, "<th>&nbsp;X</th>", "the indent is emitted verbatim")
}

func TestRenderCellMetadata(t *testing.T) {
	cs := smallSet()
	cs.Cells[3].Properties = pivotgrid.Properties{"BACK_COLOR": 255, "FONT_FLAGS": 1}

	out, err := Render(cs, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, `<td style="background-color:#FF0000;font-weight:bold;">4</td>`)
}

func TestRenderTemplate(t *testing.T) {
	out, err := Render(yearSet(), Options{Style: style.Default()})
	require.NoError(t, err)
	assert.Contains(t, out, "background-color:#FFE699;")
	assert.Contains(t, out, "border-right:1px solid #000000;")
}

func TestRenderRowGroups(t *testing.T) {
	out, err := Render(smallSet(), Options{RowGroups: true})
	require.NoError(t, err)
	assert.Contains(t, out, `<tr data-level="1"><th>&ensp;&ensp;Y</th>`)
	assert.Equal(t, 1, strings.Count(out, "data-level"))
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(&pivotgrid.CellSet{Axes: make([]pivotgrid.Axis, 3)}, Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedGeometry))

	cs := smallSet()
	cs.Cells[0].Properties = pivotgrid.Properties{"FORMAT_STRING": "Percent"}
	cs.Cells[0].Value = "high"
	_, err = Render(cs, Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedCellType))
}

func TestCellCSS(t *testing.T) {
	var borders [style.EdgeCount]style.BorderItem
	borders[style.EdgeBottom] = style.BorderItem{Style: style.BorderDouble, Color: "00FF00"}
	borders[style.EdgeLeft] = style.BorderItem{Style: style.BorderNone}

	css := cellCSS(style.Attributes{
		FontName: "Arial<script>",
		FontSize: 12,
		Italic:   style.On,
		VAlign:   style.VAlignCenter,
	}, borders)
	assert.Equal(t, "font-family:'Arialscript';font-size:12pt;font-style:italic;vertical-align:middle;border-left:none;border-bottom:3px double #00FF00;", css)
}

func TestSanitizeColor(t *testing.T) {
	assert.Equal(t, "FFF", sanitizeColor("FFF"))
	assert.Equal(t, "A1B2C3", sanitizeColor("A1B2C3"))
	assert.Empty(t, sanitizeColor("red;x"))
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var logs bytes.Buffer
	logging.SetupLoggerTo(&logs, 2)
	t.Cleanup(func() { logging.SetupLoggerTo(io.Discard, 0) })
	return &logs
}

func TestWriteGridLogs(t *testing.T) {
	logs := captureLogs(t)

	_, err := Render(smallSet(), Options{})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "wrote table")
	assert.Contains(t, logs.String(), "html")
}
