package docx

import (
	"strings"

	"github.com/unidoc/unioffice/document"
)

// Intermediate representation of a Word document: the paragraphs and tables
// of the body in order. Colours are 6-character RGB hex strings without the
// leading "#".

// RunStyle captures the character formatting of a run.
type RunStyle struct {
	FontFamily string
	FontSizePt float64
	FontColor  string
	Bold       bool
	Italic     bool
	Underline  bool
	Strike     bool
}

// RenderRun is a single run of text.
type RenderRun struct {
	Run   document.Run
	Text  string
	Style RunStyle
}

// ParagraphStyle captures paragraph-level formatting.
type ParagraphStyle struct {
	Alignment    string // "left" | "center" | "right" | "justify"
	HeadingLevel int    // 0 for body text
}

// RenderParagraph is a paragraph and its runs.
type RenderParagraph struct {
	Paragraph document.Paragraph
	Runs      []RenderRun
	Style     ParagraphStyle
}

// Text joins the text of all runs.
func (p RenderParagraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// TableCellStyle is the cell shading.
type TableCellStyle struct {
	BackgroundColor string
}

// RenderTableCell is a table cell. ColSpan is 1 unless the cell spans grid
// columns.
type RenderTableCell struct {
	Paragraphs []RenderParagraph
	ColSpan    int
	Style      TableCellStyle
}

// Text joins the paragraphs of the cell with newlines.
func (c RenderTableCell) Text() string {
	parts := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// RenderTableRow is one table row.
type RenderTableRow struct {
	Cells []RenderTableCell
}

// RenderTable is a table, rows in order.
type RenderTable struct {
	Rows []RenderTableRow
}

// DocumentBlock is a top-level body element. Exactly one of Paragraph and
// Table is set.
type DocumentBlock struct {
	Paragraph *RenderParagraph
	Table     *RenderTable
}

// DocumentModel is the document body in order.
type DocumentModel struct {
	Blocks []DocumentBlock
}

// Tables returns the tables of the body.
func (d DocumentModel) Tables() []RenderTable {
	var out []RenderTable
	for _, b := range d.Blocks {
		if b.Table != nil {
			out = append(out, *b.Table)
		}
	}
	return out
}
