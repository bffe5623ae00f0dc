package xlsx

import (
	"fmt"

	"github.com/unidoc/unioffice/spreadsheet"
)

// Intermediate representation of a workbook read back from disk. Pixel values
// are floats so fractional widths survive.

// CellStyle captures the subset of spreadsheet styling the preview renders.
type CellStyle struct {
	FontFamily      string  // e.g. "Calibri"
	FontSizePt      float64 // original size in points
	FontColor       string  // "RRGGBB"
	Bold            bool
	Italic          bool
	Underline       bool
	Strike          bool
	BackgroundColor string // "RRGGBB"
	BorderLeft      Border
	BorderRight     Border
	BorderTop       Border
	BorderBottom    Border
	HorizontalAlign string // left|center|right|justify
	VerticalAlign   string // top|middle|bottom
	WrapText        bool
	NumberFormat    string
}

// Border is one resolved cell edge.
type Border struct {
	Style string // thin|medium|...; empty for none
	Color string // "RRGGBB"
}

func (s CellStyle) String() string {
	return fmt.Sprintf("FontFamily: %s, FontSizePt: %f, FontColor: %s, Bold: %t, BackgroundColor: %s, HorizontalAlign: %s, VerticalAlign: %s, NumberFormat: %s",
		s.FontFamily, s.FontSizePt, s.FontColor, s.Bold, s.BackgroundColor, s.HorizontalAlign, s.VerticalAlign, s.NumberFormat)
}

// RenderCell is the IR for a single cell (or merged master).
type RenderCell struct {
	Cell    spreadsheet.Cell
	Ref     string // e.g. "A1"
	Value   string // already formatted value
	ColSpan int    // 1 if not merged
	RowSpan int    // 1 if not merged
	Style   CellStyle
}

func (c RenderCell) String() string {
	return fmt.Sprintf("Ref: %s, Value: %s, ColSpan: %d, RowSpan: %d, Style: %s", c.Ref, c.Value, c.ColSpan, c.RowSpan, c.Style.String())
}

// RenderRow represents one logical row in a sheet.
type RenderRow struct {
	HeightPx     float64 // resolved height in px
	Hidden       bool
	OutlineLevel int
	Cells        []*RenderCell // length == column count of the sheet; nil for blank cells
}

func (r RenderRow) String() string {
	return fmt.Sprintf("HeightPx: %f, Hidden: %t, OutlineLevel: %d, Cells: %d", r.HeightPx, r.Hidden, r.OutlineLevel, len(r.Cells))
}

// RenderSheet is the intermediate representation of a worksheet.
type RenderSheet struct {
	Name      string
	ColWidths []float64 // per column pixel widths
	ColHidden []bool
	Rows      []RenderRow
	// AutoFilter is the filtered range, e.g. "A1:D5".
	AutoFilter string
	// FrozenAt is the top-left cell of the scrolling pane when panes are frozen.
	FrozenAt string
}

func (s RenderSheet) String() string {
	return fmt.Sprintf("Name: %s, ColWidths: %v, Rows: %d, AutoFilter: %s, FrozenAt: %s", s.Name, s.ColWidths, len(s.Rows), s.AutoFilter, s.FrozenAt)
}

// Cell returns the cell at a zero-based position, or nil.
func (s RenderSheet) Cell(row, col int) *RenderCell {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Rows[row].Cells) {
		return nil
	}
	return s.Rows[row].Cells[col]
}

// WorkbookModel is the top-level IR containing all sheets.
type WorkbookModel struct {
	Sheets []RenderSheet
	// DefinedNames maps workbook-level names to their references.
	DefinedNames map[string]string
}
