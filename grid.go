package pivotgrid

import (
	"fmt"
	"strings"

	"github.com/aerissecure/pivotgrid/format"
	"github.com/aerissecure/pivotgrid/style"
)

// CellKind says what a grid cell holds.
type CellKind int

const (
	KindBlank CellKind = iota
	KindCorner
	KindTitle
	KindHeader
	KindCovered
	KindLabel
	KindValue
)

var kindNames = [...]string{"blank", "corner", "title", "header", "covered", "label", "value"}

func (k CellKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// GridCell is one rendered cell.
type GridCell struct {
	Kind CellKind
	// Text is the display text without the indent.
	Text   string
	Indent string
	// Value is the typed value of value cells.
	Value any
	// Span is the number of columns a header covers.
	Span    int
	Style   style.Attributes
	Borders [style.EdgeCount]style.BorderItem
}

// Display returns the indent followed by the text.
func (c *GridCell) Display() string { return c.Indent + c.Text }

// Grid is a Sink that records the rendered grid in memory. Output backends
// read a finished Grid.
type Grid struct {
	Geometry Geometry
	Title    Title
	Cells    [][]GridCell
	Outline  []OutlineGroup
}

var _ Sink = (*Grid)(nil)

// NewGrid returns an empty grid ready for Render.
func NewGrid() *Grid { return &Grid{} }

func (g *Grid) Begin(geo Geometry, title Title) error {
	g.Geometry = geo
	g.Title = title
	g.Outline = nil
	g.Cells = make([][]GridCell, geo.Height())
	for r := range g.Cells {
		g.Cells[r] = make([]GridCell, geo.Width())
	}
	for r := 0; r < geo.ColumnLines && r < len(g.Cells); r++ {
		for c := 0; c < geo.RowLines; c++ {
			g.Cells[r][c].Kind = KindCorner
		}
	}
	if title.InGrid && title.Text != "" && geo.ColumnLines > 0 && geo.RowLines > 0 {
		g.Cells[0][0] = GridCell{Kind: KindTitle, Text: title.Text}
	}
	return nil
}

func (g *Grid) WriteHeader(line, column, span int, caption string) error {
	c := g.At(line, g.Geometry.RowLines+column)
	if c == nil {
		return fmt.Errorf("header %d/%d outside the grid", line, column)
	}
	if span < 1 {
		span = 1
	}
	c.Kind = KindHeader
	c.Text = caption
	c.Span = span
	for i := 1; i < span; i++ {
		if covered := g.At(line, g.Geometry.RowLines+column+i); covered != nil {
			covered.Kind = KindCovered
			covered.Text = ""
		}
	}
	return nil
}

func (g *Grid) WriteRowLabel(row, line int, indent, caption string) error {
	c := g.At(g.Geometry.ColumnLines+row, line)
	if c == nil {
		return fmt.Errorf("row label %d/%d outside the grid", row, line)
	}
	c.Kind = KindLabel
	c.Text = caption
	c.Indent = indent
	return nil
}

func (g *Grid) WriteCell(column, row int, value format.Result) error {
	c := g.At(g.Geometry.ColumnLines+row, g.Geometry.RowLines+column)
	if c == nil {
		return fmt.Errorf("cell %d/%d outside the grid", column, row)
	}
	c.Kind = KindValue
	c.Value = value.Value
	c.Text = value.Text
	c.Style = c.Style.Merge(value.Style).Merge(style.Attributes{NumberFormat: value.NumberFormat})
	return nil
}

func (g *Grid) ApplyOutline(group OutlineGroup) error {
	g.Outline = append(g.Outline, group)
	return nil
}

func (g *Grid) ApplyStyle(r style.Rect, a style.Attributes) error {
	g.each(r, func(c *GridCell) { c.Style = c.Style.Merge(a) })
	return nil
}

func (g *Grid) ApplyBorder(r style.Rect, e style.Edge, b style.BorderItem) error {
	if e < 0 || e >= style.EdgeCount {
		return fmt.Errorf("unknown border edge %d", int(e))
	}
	g.each(r, func(c *GridCell) { c.Borders[e] = c.Borders[e].Merge(b) })
	return nil
}

func (g *Grid) End() error { return nil }

// At returns the cell at grid coordinates, or nil outside the grid.
func (g *Grid) At(row, col int) *GridCell {
	if row < 0 || row >= len(g.Cells) || col < 0 || col >= len(g.Cells[row]) {
		return nil
	}
	return &g.Cells[row][col]
}

// Height returns the number of grid rows.
func (g *Grid) Height() int { return len(g.Cells) }

// Width returns the number of grid columns.
func (g *Grid) Width() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Merges returns the header cells spanning more than one column.
func (g *Grid) Merges() []style.Rect {
	var out []style.Rect
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if cell := &g.Cells[r][c]; cell.Kind == KindHeader && cell.Span > 1 {
				out = append(out, style.Rect{Top: r, Left: c, Bottom: r, Right: c + cell.Span - 1})
			}
		}
	}
	return out
}

// OutlineLevels returns the nesting level of every body row.
func (g *Grid) OutlineLevels() []int {
	return OutlineLevels(g.Outline, g.Geometry.BodyRows())
}

// OutlineLevel returns the nesting level of a grid row; header rows are 0.
func (g *Grid) OutlineLevel(row int) int {
	body := row - g.Geometry.ColumnLines
	if body < 0 {
		return 0
	}
	level := 0
	for _, o := range g.Outline {
		if body >= o.Start && body < o.End {
			level++
		}
	}
	return level
}

// String renders the grid as tab-separated text, for debugging.
func (g *Grid) String() string {
	var b strings.Builder
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if c > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(g.Cells[r][c].Display())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) each(r style.Rect, fn func(*GridCell)) {
	top, left := max(r.Top, 0), max(r.Left, 0)
	bottom, right := min(r.Bottom, g.Height()-1), min(r.Right, g.Width()-1)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			fn(&g.Cells[row][col])
		}
	}
}
