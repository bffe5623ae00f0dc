// Package htmltable renders pivot grids as HTML tables.
package htmltable

import (
	"fmt"
	"html"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/aerissecure/pivotgrid"
	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/format"
	"github.com/aerissecure/pivotgrid/internal/logging"
	"github.com/aerissecure/pivotgrid/style"
)

// DefaultIndent is an en space, twice the width of a regular space.
const DefaultIndent = "&ensp;"

// Options control the HTML rendering.
type Options struct {
	// Title becomes the table caption.
	Title          string
	ColumnCaptions []pivotgrid.DynamicCaption
	RowCaptions    []pivotgrid.DynamicCaption
	// Style adds inline template styling; nil emits only cell metadata styles.
	Style *style.TableStyle
	// RowGroups marks rows with their outline level in a data-level attribute.
	RowGroups bool
	// IndentUnit is emitted verbatim in front of leaf row labels; empty uses
	// DefaultIndent.
	IndentUnit string
	Locale     language.Tag
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
		RowGroups:      o.RowGroups,
		IndentUnit:     indent,
		Resolver:       format.NewResolver(o.Locale),
	}
}

// Sink records the grid and writes it as HTML when the render ends.
type Sink struct {
	*pivotgrid.Grid

	w    io.Writer
	opts Options
}

var _ pivotgrid.Sink = (*Sink)(nil)

// NewSink returns a sink writing to w.
func NewSink(w io.Writer, opts Options) *Sink {
	return &Sink{Grid: pivotgrid.NewGrid(), w: w, opts: opts}
}

func (s *Sink) End() error {
	return WriteGrid(s.w, s.Grid, s.opts.RowGroups)
}

// Write renders cs as an HTML table to w.
func Write(w io.Writer, cs *pivotgrid.CellSet, opts Options) error {
	return pivotgrid.Render(cs, NewSink(w, opts), opts.RenderOptions())
}

// Render returns cs as an HTML table.
func Render(cs *pivotgrid.CellSet, opts Options) (string, error) {
	var b strings.Builder
	if err := Write(&b, cs, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteGrid writes a finished grid. Header lines go to thead, body rows to
// tbody; the title becomes the caption.
func WriteGrid(w io.Writer, g *pivotgrid.Grid, levels bool) error {
	var b strings.Builder
	geo := g.Geometry

	b.WriteString("<table>")
	if g.Title.Text != "" {
		fmt.Fprintf(&b, "<caption>%s</caption>", html.EscapeString(g.Title.Text))
	}

	b.WriteString("<thead>")
	for r := 0; r < geo.ColumnLines && r < g.Height(); r++ {
		b.WriteString("<tr>")
		for c := range g.Cells[r] {
			writeCell(&b, &g.Cells[r][c])
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</thead>")

	b.WriteString("<tbody>")
	for r := geo.ColumnLines; r < g.Height(); r++ {
		if level := g.OutlineLevel(r); levels && level > 0 {
			fmt.Fprintf(&b, "<tr data-level=\"%d\">", level)
		} else {
			b.WriteString("<tr>")
		}
		for c := range g.Cells[r] {
			writeCell(&b, &g.Cells[r][c])
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody>")
	b.WriteString("</table>")

	log := logging.GetLogger("html")
	log.Debug().Int("rows", g.Height()).Int("columns", g.Width()).Msg("wrote table")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write html table")
	}
	return nil
}

func writeCell(b *strings.Builder, c *pivotgrid.GridCell) {
	var tag, content string
	switch c.Kind {
	case pivotgrid.KindCovered:
		return
	case pivotgrid.KindCorner:
		tag, content = "th", "&nbsp;"
	case pivotgrid.KindTitle, pivotgrid.KindHeader:
		tag, content = "th", html.EscapeString(c.Text)
	case pivotgrid.KindLabel:
		tag, content = "th", c.Indent+html.EscapeString(c.Text)
	default:
		tag, content = "td", html.EscapeString(c.Text)
	}

	b.WriteString("<" + tag)
	if c.Kind == pivotgrid.KindHeader && c.Span > 1 {
		fmt.Fprintf(b, " colspan=\"%d\"", c.Span)
	}
	if css := cellCSS(c.Style, c.Borders); css != "" {
		fmt.Fprintf(b, " style=\"%s\"", css)
	}
	b.WriteString(">" + content + "</" + tag + ">")
}
