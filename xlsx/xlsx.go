// Package xlsx writes rendered pivot grids into spreadsheet worksheets and
// reads workbooks back for preview.
package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
	"golang.org/x/text/language"

	"github.com/aerissecure/pivotgrid"
	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/format"
	"github.com/aerissecure/pivotgrid/internal/logging"
	"github.com/aerissecure/pivotgrid/style"
)

// DefaultIndent prefixes row labels once per hierarchy level.
const DefaultIndent = "   "

// Options control how a cell set lands in a worksheet.
type Options struct {
	// TableName is the defined name covering the written region. Empty uses
	// "<sheet name without spaces>_Table1".
	TableName string
	// Column and Row are the 1-based origin of the region; zero means 1.
	Column, Row int

	// Title is written into the top-left corner cell.
	Title          string
	ColumnCaptions []pivotgrid.DynamicCaption
	RowCaptions    []pivotgrid.DynamicCaption

	// Style is the table template; nil applies style.Default().
	Style     *style.TableStyle
	RowGroups bool
	// IndentUnit prefixes leaf row labels; empty uses DefaultIndent.
	IndentUnit string
	// AutoFit widens columns to their longest text.
	AutoFit bool
	// Locale selects number, currency and boolean texts.
	Locale     language.Tag
	ErrorValue any
}

// Size is the extent of a written region.
type Size struct {
	Rows, Columns int
}

// Sink renders into a worksheet. It records the grid and writes it to the
// sheet when the render ends.
type Sink struct {
	*pivotgrid.Grid

	wb    *spreadsheet.Workbook
	sheet spreadsheet.Sheet
	opts  Options
	size  Size
}

var _ pivotgrid.Sink = (*Sink)(nil)

// NewSink returns a sink that writes into sheet of wb.
func NewSink(wb *spreadsheet.Workbook, sheet spreadsheet.Sheet, opts Options) *Sink {
	return &Sink{Grid: pivotgrid.NewGrid(), wb: wb, sheet: sheet, opts: opts}
}

// End writes the recorded grid to the worksheet.
func (s *Sink) End() error {
	size, err := WriteGrid(s.wb, s.sheet, s.Grid, s.opts)
	if err != nil {
		return err
	}
	s.size = size
	return nil
}

// Size returns the extent written by End.
func (s *Sink) Size() Size { return s.size }

// RenderOptions translates o into render options.
func (o Options) RenderOptions() pivotgrid.Options {
	ts := o.Style
	if ts == nil {
		ts = style.Default()
	}
	indent := o.IndentUnit
	if indent == "" {
		indent = DefaultIndent
	}
	return pivotgrid.Options{
		Title:          o.Title,
		TitleInGrid:    true,
		ColumnCaptions: o.ColumnCaptions,
		RowCaptions:    o.RowCaptions,
		Style:          ts,
		RowGroups:      o.RowGroups,
		IndentUnit:     indent,
		ErrorValue:     o.ErrorValue,
		Resolver:       format.NewResolver(o.Locale),
	}
}

// WriteCellSet renders cs into sheet and returns the written extent.
func WriteCellSet(wb *spreadsheet.Workbook, sheet spreadsheet.Sheet, cs *pivotgrid.CellSet, opts Options) (Size, error) {
	sink := NewSink(wb, sheet, opts)
	if err := pivotgrid.Render(cs, sink, opts.RenderOptions()); err != nil {
		return Size{}, err
	}
	return sink.Size(), nil
}

// Write renders cs into a new workbook with a single sheet and saves it to w.
func Write(w io.Writer, sheetName string, cs *pivotgrid.CellSet, opts Options) (Size, error) {
	wb := spreadsheet.New()
	sheet := wb.AddSheet()
	if sheetName != "" {
		sheet.SetName(sheetName)
	}
	size, err := WriteCellSet(wb, sheet, cs, opts)
	if err != nil {
		return Size{}, err
	}
	if err := wb.Save(w); err != nil {
		return Size{}, errors.Wrap(err, errors.ErrWrite, "failed to save workbook")
	}
	return size, nil
}

// WriteGrid writes a finished grid into sheet at the options' origin.
func WriteGrid(wb *spreadsheet.Workbook, sheet spreadsheet.Sheet, g *pivotgrid.Grid, opts Options) (Size, error) {
	log := logging.GetLogger("xlsx")
	size := Size{Rows: g.Height(), Columns: g.Width()}
	if size.Rows == 0 || size.Columns == 0 {
		log.Debug().Msg("nothing to write")
		return Size{}, nil
	}
	ts := opts.Style
	if ts == nil {
		ts = style.Default()
	}

	w := &gridWriter{
		sheet:  sheet,
		grid:   g,
		styles: newStyleCache(wb.StyleSheet),
		row0:   max(opts.Row, 1) - 1,
		col0:   max(opts.Column, 1) - 1,
	}
	w.writeCells(ts.FilterEnabled(g.Geometry.ColumnLines))
	w.writeMerges()
	w.writeOutline()
	if ts.FreezePane {
		w.freeze()
	}
	if ts.FilterEnabled(g.Geometry.ColumnLines) && g.Geometry.ColumnLines > 0 {
		w.filter()
	}
	if opts.AutoFit {
		w.autoFit()
	}

	name := opts.TableName
	if name == "" {
		name = DefaultTableName(sheet.Name())
	}
	wb.AddDefinedName(name, w.absoluteRange(sheet.Name()))

	log.Debug().
		Int("rows", size.Rows).
		Int("columns", size.Columns).
		Str("name", name).
		Msg("wrote grid")
	return size, nil
}

// DefaultTableName derives a defined name from a sheet name.
func DefaultTableName(sheetName string) string {
	return strings.ReplaceAll(sheetName, " ", "") + "_Table1"
}

type gridWriter struct {
	sheet      spreadsheet.Sheet
	grid       *pivotgrid.Grid
	styles     *styleCache
	row0, col0 int
}

// ref returns the A1 reference of a grid position.
func (w *gridWriter) ref(row, col int) string {
	return reference.IndexToColumn(uint32(w.col0+col)) + strconv.Itoa(w.row0+row+1)
}

func (w *gridWriter) writeCells(fakeHeaders bool) {
	geo := w.grid.Geometry
	for r := range w.grid.Cells {
		row := w.sheet.Row(uint32(w.row0 + r + 1))
		for c := range w.grid.Cells[r] {
			gc := &w.grid.Cells[r][c]
			cell := row.Cell(reference.IndexToColumn(uint32(w.col0 + c)))

			switch gc.Kind {
			case pivotgrid.KindValue:
				setValue(cell, gc)
			case pivotgrid.KindHeader, pivotgrid.KindLabel, pivotgrid.KindTitle:
				cell.SetString(gc.Display())
			case pivotgrid.KindCorner:
				// A filter needs a caption over every column of its header row.
				if fakeHeaders && r == geo.ColumnLines-1 {
					cell.SetString(" ")
				}
			}

			key := cellKey{attrs: gc.Style, borders: gc.Borders}
			if !key.isZero() {
				cell.SetStyle(w.styles.get(key))
			}
		}
	}
}

func setValue(cell spreadsheet.Cell, gc *pivotgrid.GridCell) {
	switch v := gc.Value.(type) {
	case nil:
	case bool:
		// Boolean formats are number formats over 1 and 0.
		if gc.Style.NumberFormat != "" {
			if v {
				cell.SetNumber(1)
			} else {
				cell.SetNumber(0)
			}
			return
		}
		cell.SetBool(v)
	case string:
		cell.SetString(v)
	default:
		if f, ok := number(v); ok {
			cell.SetNumber(f)
			return
		}
		cell.SetString(gc.Text)
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func (w *gridWriter) writeMerges() {
	for _, m := range w.grid.Merges() {
		w.sheet.AddMergedCells(w.ref(m.Top, m.Left), w.ref(m.Bottom, m.Right))
	}
}

func (w *gridWriter) writeOutline() {
	if len(w.grid.Outline) == 0 {
		return
	}
	for r := w.grid.Geometry.ColumnLines; r < w.grid.Height(); r++ {
		level := w.grid.OutlineLevel(r)
		if level == 0 {
			continue
		}
		row := w.sheet.Row(uint32(w.row0 + r + 1))
		row.X().OutlineLevelAttr = ptr(uint8(min(level, 7)))
	}
}

// freeze keeps the header lines and label columns in view.
func (w *gridWriter) freeze() {
	geo := w.grid.Geometry
	rows, cols := w.row0+geo.ColumnLines, w.col0+geo.RowLines
	if rows == 0 && cols == 0 {
		return
	}
	pane := sml.NewCT_Pane()
	pane.StateAttr = sml.ST_PaneStateFrozen
	pane.TopLeftCellAttr = ptr(reference.IndexToColumn(uint32(cols)) + strconv.Itoa(rows+1))
	switch {
	case rows > 0 && cols > 0:
		pane.XSplitAttr = ptr(float64(cols))
		pane.YSplitAttr = ptr(float64(rows))
		pane.ActivePaneAttr = sml.ST_PaneBottomRight
	case rows > 0:
		pane.YSplitAttr = ptr(float64(rows))
		pane.ActivePaneAttr = sml.ST_PaneBottomLeft
	default:
		pane.XSplitAttr = ptr(float64(cols))
		pane.ActivePaneAttr = sml.ST_PaneTopRight
	}

	view := sml.NewCT_SheetView()
	view.Pane = pane
	views := sml.NewCT_SheetViews()
	views.SheetView = []*sml.CT_SheetView{view}
	w.sheet.X().SheetViews = views
}

// filter adds an autofilter over the last header line and the body.
func (w *gridWriter) filter() {
	top := w.grid.Geometry.ColumnLines - 1
	ref := w.ref(top, 0) + ":" + w.ref(w.grid.Height()-1, w.grid.Width()-1)
	af := sml.NewCT_AutoFilter()
	af.RefAttr = ptr(ref)
	w.sheet.X().AutoFilter = af
}

// autoFit sizes each column to its widest single-column text.
func (w *gridWriter) autoFit() {
	widths := make([]int, w.grid.Width())
	for r := range w.grid.Cells {
		for c := range w.grid.Cells[r] {
			gc := &w.grid.Cells[r][c]
			if gc.Span > 1 {
				continue
			}
			widths[c] = max(widths[c], runewidth.StringWidth(gc.Display()))
		}
	}
	for c, width := range widths {
		if width == 0 {
			continue
		}
		col := w.sheet.Column(uint32(w.col0 + c + 1))
		col.X().WidthAttr = ptr(float64(width) + 2)
		col.X().CustomWidthAttr = ptr(true)
	}
}

func (w *gridWriter) absoluteRange(sheetName string) string {
	abs := func(row, col int) string {
		return fmt.Sprintf("$%s$%d", reference.IndexToColumn(uint32(w.col0+col)), w.row0+row+1)
	}
	return fmt.Sprintf("'%s'!%s:%s", strings.ReplaceAll(sheetName, "'", "''"),
		abs(0, 0), abs(w.grid.Height()-1, w.grid.Width()-1))
}
