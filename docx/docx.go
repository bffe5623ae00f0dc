// Package docx writes rendered pivot grids as tables into Word documents and
// converts documents back into an HTML preview.
package docx

import (
	"io"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"
	"golang.org/x/text/language"

	"github.com/aerissecure/pivotgrid"
	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/format"
	"github.com/aerissecure/pivotgrid/internal/logging"
	"github.com/aerissecure/pivotgrid/style"
)

// DefaultIndent is two no-break spaces, which Word keeps at the start of a
// paragraph.
const DefaultIndent = "\u00a0\u00a0"

const titleStyle = "Title"

// Options control the document rendering.
type Options struct {
	// Title is written as a paragraph above the table.
	Title          string
	ColumnCaptions []pivotgrid.DynamicCaption
	RowCaptions    []pivotgrid.DynamicCaption
	Style          *style.TableStyle
	IndentUnit     string
	Locale         language.Tag
	ErrorValue     any
}

// RenderOptions translates o into render options.
func (o Options) RenderOptions() pivotgrid.Options {
	indent := o.IndentUnit
	if indent == "" {
		indent = DefaultIndent
	}
	return pivotgrid.Options{
		Title:          o.Title,
		ColumnCaptions: o.ColumnCaptions,
		RowCaptions:    o.RowCaptions,
		Style:          o.Style,
		IndentUnit:     indent,
		ErrorValue:     o.ErrorValue,
		Resolver:       format.NewResolver(o.Locale),
	}
}

// Sink records the grid and appends it to a document when the render ends.
type Sink struct {
	*pivotgrid.Grid

	doc *document.Document
}

var _ pivotgrid.Sink = (*Sink)(nil)

// NewSink returns a sink appending to doc.
func NewSink(doc *document.Document) *Sink {
	return &Sink{Grid: pivotgrid.NewGrid(), doc: doc}
}

func (s *Sink) End() error {
	WriteGrid(s.doc, s.Grid)
	return nil
}

// Write renders cs into a new document and saves it to w.
func Write(w io.Writer, cs *pivotgrid.CellSet, opts Options) error {
	doc := document.New()
	if err := pivotgrid.Render(cs, NewSink(doc), opts.RenderOptions()); err != nil {
		return err
	}
	if err := doc.Save(w); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to save document")
	}
	return nil
}

// WriteGrid appends a finished grid to doc: the title as a paragraph, then
// one table row per grid row. Covered header cells are folded into the
// spanning cell.
func WriteGrid(doc *document.Document, g *pivotgrid.Grid) {
	if g.Title.Text != "" {
		p := doc.AddParagraph()
		p.SetStyle(titleStyle)
		p.AddRun().AddText(g.Title.Text)
	}
	if g.Height() == 0 {
		return
	}

	tbl := doc.AddTable()
	tbl.Properties().SetWidthPercent(100)
	for r := range g.Cells {
		row := tbl.AddRow()
		for c := range g.Cells[r] {
			gc := &g.Cells[r][c]
			if gc.Kind == pivotgrid.KindCovered {
				continue
			}
			writeCell(row.AddCell(), gc)
		}
	}
	log := logging.GetLogger("docx")
	log.Debug().Int("rows", g.Height()).Int("columns", g.Width()).Msg("wrote table")
}

func writeCell(cell document.Cell, gc *pivotgrid.GridCell) {
	props := cell.Properties()
	if gc.Kind == pivotgrid.KindHeader && gc.Span > 1 {
		props.SetColumnSpan(gc.Span)
	}
	a := gc.Style
	if a.Background.IsSet() {
		props.SetShading(wml.ST_ShdClear, color.Auto, color.FromHex(string(a.Background)))
	}
	switch a.VAlign {
	case style.VAlignTop:
		props.SetVerticalAlignment(wml.ST_VerticalJcTop)
	case style.VAlignCenter:
		props.SetVerticalAlignment(wml.ST_VerticalJcCenter)
	case style.VAlignBottom:
		props.SetVerticalAlignment(wml.ST_VerticalJcBottom)
	}
	borders := props.Borders()
	for edge, set := range map[style.Edge]func(wml.ST_Border, color.Color, measurement.Distance){
		style.EdgeLeft:   borders.SetLeft,
		style.EdgeRight:  borders.SetRight,
		style.EdgeTop:    borders.SetTop,
		style.EdgeBottom: borders.SetBottom,
	} {
		if b := gc.Borders[edge]; b.Style != "" {
			kind, width := borderPr(b.Style)
			set(kind, borderColor(b.Color), width)
		}
	}

	p := cell.AddParagraph()
	switch a.HAlign {
	case style.HAlignLeft:
		p.Properties().SetAlignment(wml.ST_JcLeft)
	case style.HAlignCenter:
		p.Properties().SetAlignment(wml.ST_JcCenter)
	case style.HAlignRight:
		p.Properties().SetAlignment(wml.ST_JcRight)
	case style.HAlignJustify:
		p.Properties().SetAlignment(wml.ST_JcBoth)
	}

	text := gc.Display()
	if gc.Kind == pivotgrid.KindCorner {
		text = ""
	}
	run := p.AddRun()
	run.AddText(text)
	rp := run.Properties()
	if a.Bold.Bool() {
		rp.SetBold(true)
	}
	if a.Italic.Bool() {
		rp.SetItalic(true)
	}
	if a.Underline.Bool() {
		rp.SetUnderline(wml.ST_UnderlineSingle, color.Auto)
	}
	if a.Strike.Bool() {
		rp.SetStrikeThrough(true)
	}
	if a.FontColor.IsSet() {
		rp.SetColor(color.FromHex(string(a.FontColor)))
	}
	if a.FontName != "" {
		rp.SetFontFamily(a.FontName)
	}
	if a.FontSize > 0 {
		rp.SetSize(measurement.Distance(a.FontSize) * measurement.Point)
	}
}

func borderColor(c style.Color) color.Color {
	if !c.IsSet() {
		return color.Auto
	}
	return color.FromHex(string(c))
}

// borderPr maps a border style to the Word border kind and width.
func borderPr(s style.BorderStyle) (wml.ST_Border, measurement.Distance) {
	switch s {
	case style.BorderNone:
		return wml.ST_BorderNone, 0
	case style.BorderMedium:
		return wml.ST_BorderSingle, 1 * measurement.Point
	case style.BorderThick:
		return wml.ST_BorderThick, 1.5 * measurement.Point
	case style.BorderDashed:
		return wml.ST_BorderDashed, 0.5 * measurement.Point
	case style.BorderDotted, style.BorderHair:
		return wml.ST_BorderDotted, 0.5 * measurement.Point
	case style.BorderDouble:
		return wml.ST_BorderDouble, 0.5 * measurement.Point
	}
	return wml.ST_BorderSingle, 0.5 * measurement.Point
}
