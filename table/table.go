// Package table converts pivot results into a generic table of typed columns
// and raw values.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aerissecure/pivotgrid"
	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/internal/logging"
)

type missing struct{}

func (missing) String() string { return "" }

// Missing marks a cell whose value the source could not evaluate.
var Missing any = missing{}

var (
	stringType = reflect.TypeOf("")
	anyType    = reflect.TypeOf((*any)(nil)).Elem()
)

// Column is a named, typed table column.
type Column struct {
	Name string
	Type reflect.Type
}

// Table is a named set of typed columns and rows of raw values.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// Options control the conversion.
type Options struct {
	ColumnCaptions []pivotgrid.DynamicCaption
	RowCaptions    []pivotgrid.DynamicCaption
}

// FromCellSet converts cs into a table named name. Row members become leading
// string columns with blank names; every column tuple becomes a column typed
// by its first available value. A result without axes yields nil. Column axes
// deeper than one level cannot be flattened.
func FromCellSet(cs *pivotgrid.CellSet, name string, opts Options) (*Table, error) {
	if cs == nil || len(cs.Axes) == 0 {
		return nil, nil
	}
	if len(cs.Axes) > 2 {
		return nil, errors.Newf(errors.ErrUnsupportedGeometry, "a table holds at most two axes, got %d", len(cs.Axes))
	}
	if depth := cs.ColumnAxis().Depth(); depth > 1 {
		return nil, errors.Newf(errors.ErrUnsupportedGeometry, "column axis depth %d cannot be flattened into a table", depth).
			WithDetail("depth", depth)
	}

	g, err := pivotgrid.RenderGrid(cs, pivotgrid.Options{
		ColumnCaptions: opts.ColumnCaptions,
		RowCaptions:    opts.RowCaptions,
		ErrorValue:     Missing,
		RawValues:      true,
	})
	if err != nil {
		return nil, err
	}
	return fromGrid(g, name), nil
}

func fromGrid(g *pivotgrid.Grid, name string) *Table {
	geo := g.Geometry
	t := &Table{Name: name}

	for n := 0; n < geo.RowLines; n++ {
		t.Columns = append(t.Columns, Column{Name: blankName(n), Type: stringType})
	}
	for c := 0; c < geo.Columns; c++ {
		col := Column{Type: anyType}
		if h := g.At(geo.ColumnLines-1, geo.RowLines+c); h != nil {
			col.Name = h.Text
		}
		for r := geo.ColumnLines; r < g.Height(); r++ {
			if v := g.At(r, geo.RowLines+c).Value; v != nil && v != Missing {
				col.Type = reflect.TypeOf(v)
				break
			}
		}
		t.Columns = append(t.Columns, col)
	}

	for r := geo.ColumnLines; r < g.Height(); r++ {
		row := make([]any, 0, g.Width())
		for c := 0; c < geo.RowLines; c++ {
			row = append(row, g.At(r, c).Text)
		}
		for c := geo.RowLines; c < g.Width(); c++ {
			row = append(row, g.At(r, c).Value)
		}
		t.Rows = append(t.Rows, row)
	}

	log := logging.GetLogger("table")
	log.Debug().
		Str("name", name).
		Int("columns", len(t.Columns)).
		Int("rows", len(t.Rows)).
		Msg("built table")
	return t
}

// blankName is the invisible header of the n-th row member column.
func blankName(n int) string { return strings.Repeat(" ", n+1) }

// Headers returns the column names.
func (t *Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Strings returns the rows as display strings; nil and Missing are empty.
func (t *Table) Strings() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = cellString(v)
		}
	}
	return out
}

func cellString(v any) string {
	if v == nil || v == Missing {
		return ""
	}
	return fmt.Sprint(v)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render draws the table for a terminal.
func (t *Table) Render() string {
	lt := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(t.Headers()...)
	for _, row := range t.Strings() {
		lt.Row(row...)
	}
	return lt.String()
}

// WriteCSV writes a header record followed by one record per row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers()); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write csv header")
	}
	if err := cw.WriteAll(t.Strings()); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write csv rows")
	}
	return nil
}
