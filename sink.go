package pivotgrid

import (
	"github.com/aerissecure/pivotgrid/format"
	"github.com/aerissecure/pivotgrid/style"
)

// Title is the caption of a rendered grid. InGrid places it in the top-left
// corner cell instead of around the grid.
type Title struct {
	Text   string
	InGrid bool
}

// Sink receives the layout decisions of Render. Header and label positions
// are relative to their axis; style rectangles use grid coordinates, where
// row 0 is the first header line and column 0 the first label column.
type Sink interface {
	style.Target

	Begin(g Geometry, title Title) error
	// WriteHeader writes the caption of a header span starting at the column
	// tuple position and covering span tuples.
	WriteHeader(line, column, span int, caption string) error
	// WriteRowLabel writes the caption of a row tuple's member at line. indent
	// is the hierarchy prefix, kept apart from the caption so sinks can emit
	// it verbatim.
	WriteRowLabel(row, line int, indent, caption string) error
	WriteCell(column, row int, value format.Result) error
	ApplyOutline(g OutlineGroup) error
	End() error
}
