package pivotgrid

import (
	"fmt"

	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/style"
)

// Geometry is the shape of a rendered grid. The header band is ColumnLines
// rows tall, the label band RowLines columns wide.
type Geometry struct {
	Axes        int
	ColumnLines int
	RowLines    int
	Columns     int
	Rows        int
}

// PlanGeometry derives the grid shape. With reserveLabel set (a title drawn in
// the grid) and no row lines, one label column is reserved for the title.
func PlanGeometry(cs *CellSet, reserveLabel bool) (Geometry, error) {
	if cs == nil {
		return Geometry{}, nil
	}
	if len(cs.Axes) > 2 {
		return Geometry{}, errors.Newf(errors.ErrUnsupportedGeometry,
			"results with %d axes cannot be laid out as a grid", len(cs.Axes)).
			WithDetail("axes", len(cs.Axes))
	}

	g := Geometry{
		Axes:        len(cs.Axes),
		ColumnLines: cs.ColumnAxis().Depth(),
		RowLines:    cs.RowAxis().Depth(),
		Columns:     cs.ColumnAxis().Len(),
		Rows:        cs.RowAxis().Len(),
	}
	if reserveLabel && g.RowLines == 0 && g.Axes > 0 {
		g.RowLines = 1
	}
	return g, nil
}

// Empty reports whether there is nothing to lay out.
func (g Geometry) Empty() bool { return g.Axes == 0 }

// BodyRows is the number of value rows. A single-axis result has one value
// row without a row tuple.
func (g Geometry) BodyRows() int {
	if g.Axes == 1 && g.Columns > 0 {
		return 1
	}
	return g.Rows
}

// Width is the number of grid columns.
func (g Geometry) Width() int {
	if g.Empty() {
		return 0
	}
	return g.RowLines + g.Columns
}

// Height is the number of grid rows.
func (g Geometry) Height() int {
	if g.Empty() {
		return 0
	}
	return g.ColumnLines + g.BodyRows()
}

// HeaderBand covers the column header lines above the value area.
func (g Geometry) HeaderBand() style.Rect {
	return style.Rect{Top: 0, Left: g.RowLines, Bottom: g.ColumnLines - 1, Right: g.RowLines + g.Columns - 1}
}

// LabelBand covers the row label columns left of the value area.
func (g Geometry) LabelBand() style.Rect {
	return style.Rect{Top: g.ColumnLines, Left: 0, Bottom: g.ColumnLines + g.BodyRows() - 1, Right: g.RowLines - 1}
}

// Body covers the value area.
func (g Geometry) Body() style.Rect {
	return style.Rect{Top: g.ColumnLines, Left: g.RowLines, Bottom: g.ColumnLines + g.BodyRows() - 1, Right: g.RowLines + g.Columns - 1}
}

// Bounds covers the whole grid.
func (g Geometry) Bounds() style.Rect {
	return style.Rect{Top: 0, Left: 0, Bottom: g.Height() - 1, Right: g.Width() - 1}
}

func (g Geometry) String() string {
	return fmt.Sprintf("Geometry(axes=%d lines=%dx%d tuples=%dx%d)",
		g.Axes, g.ColumnLines, g.RowLines, g.Columns, g.Rows)
}
