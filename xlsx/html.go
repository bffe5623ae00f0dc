package xlsx

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// ToHTML reads a workbook and renders its preview.
func ToHTML(r io.ReaderAt, size int64) (string, error) {
	m, err := ParseWorkbookModel(r, size)
	if err != nil {
		return "", err
	}
	return RenderWorkbookHTML(m), nil
}

// RenderWorkbookHTML converts the IR into an HTML string. Every distinct cell
// style becomes one CSS class.
func RenderWorkbookHTML(m WorkbookModel) string {
	var b strings.Builder

	classes := make(map[CellStyle]string)
	var order []CellStyle
	for _, sheet := range m.Sheets {
		for _, row := range sheet.Rows {
			for _, cell := range row.Cells {
				if cell == nil {
					continue
				}
				if _, ok := classes[cell.Style]; !ok {
					classes[cell.Style] = fmt.Sprintf("cellstyle%d", len(order)+1)
					order = append(order, cell.Style)
				}
			}
		}
	}

	b.WriteString("<style>\n")
	b.WriteString(".table { border-collapse: collapse; table-layout: fixed; margin-bottom: 2em; }\n")
	b.WriteString(".table td { padding: 4px 8px; white-space: nowrap; overflow: hidden; }\n")
	b.WriteString(".sheet { margin-bottom: 2em; }\n")
	for _, st := range order {
		if css := styleToCSS(st); css != "" {
			fmt.Fprintf(&b, ".%s { %s }\n", classes[st], css)
		}
	}
	b.WriteString("</style>\n")

	for _, sheet := range m.Sheets {
		total := 0.0
		for _, w := range sheet.ColWidths {
			total += w
		}
		fmt.Fprintf(&b, "<div class=\"sheet\" data-name=\"%s\">\n", html.EscapeString(sheet.Name))
		b.WriteString("<div style=\"width:100%;overflow-x:auto;\">\n")
		fmt.Fprintf(&b, "<table class=\"table\" style=\"width:%.0fpx;\">\n", total)
		b.WriteString("  <colgroup>\n")
		for i, w := range sheet.ColWidths {
			if sheet.ColHidden[i] {
				b.WriteString("    <col style=\"display:none;\">\n")
				continue
			}
			fmt.Fprintf(&b, "    <col style=\"width:%.0fpx;\">\n", w)
		}
		b.WriteString("  </colgroup>\n")

		for _, row := range sheet.Rows {
			rowStyle := fmt.Sprintf("height:%.0fpx;", row.HeightPx)
			if row.Hidden {
				rowStyle += "display:none;"
			}
			if row.OutlineLevel > 0 {
				fmt.Fprintf(&b, "  <tr style=\"%s\" data-outline=\"%d\">\n", rowStyle, row.OutlineLevel)
			} else {
				fmt.Fprintf(&b, "  <tr style=\"%s\">\n", rowStyle)
			}
			for c := 0; c < len(row.Cells); c++ {
				cell := row.Cells[c]
				if cell == nil {
					b.WriteString("    <td></td>\n")
					continue
				}
				var span string
				if cell.ColSpan > 1 {
					span += fmt.Sprintf(" colspan=\"%d\"", cell.ColSpan)
				}
				if cell.RowSpan > 1 {
					span += fmt.Sprintf(" rowspan=\"%d\"", cell.RowSpan)
				}
				text := strings.ReplaceAll(html.EscapeString(cell.Value), "\n", "<br>")
				// Leading spaces carry the row hierarchy indent.
				if trimmed := strings.TrimLeft(text, " "); len(trimmed) < len(text) {
					text = strings.Repeat("&nbsp;", len(text)-len(trimmed)) + trimmed
				}
				fmt.Fprintf(&b, "    <td data-cell=\"%s\"%s class=\"%s\">%s</td>\n", cell.Ref, span, classes[cell.Style], text)
				if cell.ColSpan > 1 {
					c += cell.ColSpan - 1
				}
			}
			b.WriteString("  </tr>\n")
		}
		b.WriteString("</table>\n</div>\n</div>\n")
	}
	return b.String()
}

// styleToCSS converts a CellStyle to CSS declarations.
func styleToCSS(s CellStyle) string {
	var b strings.Builder
	if s.FontFamily != "" {
		fmt.Fprintf(&b, "font-family:'%s';", s.FontFamily)
	}
	if s.FontSizePt > 0 {
		fmt.Fprintf(&b, "font-size:%.1fpt;", s.FontSizePt)
	}
	if s.FontColor != "" {
		fmt.Fprintf(&b, "color:#%s;", s.FontColor)
	}
	if s.Bold {
		b.WriteString("font-weight:bold;")
	}
	if s.Italic {
		b.WriteString("font-style:italic;")
	}
	switch {
	case s.Underline && s.Strike:
		b.WriteString("text-decoration:underline line-through;")
	case s.Underline:
		b.WriteString("text-decoration:underline;")
	case s.Strike:
		b.WriteString("text-decoration:line-through;")
	}
	if s.BackgroundColor != "" {
		fmt.Fprintf(&b, "background-color:#%s;", s.BackgroundColor)
	}
	for _, e := range []struct {
		side string
		b    Border
	}{{"left", s.BorderLeft}, {"right", s.BorderRight}, {"top", s.BorderTop}, {"bottom", s.BorderBottom}} {
		if css := borderCSS(e.b); css != "" {
			fmt.Fprintf(&b, "border-%s:%s;", e.side, css)
		}
	}
	switch s.HorizontalAlign {
	case "center", "centerContinuous", "distributed":
		b.WriteString("text-align:center;")
	case "right":
		b.WriteString("text-align:right;")
	case "justify":
		b.WriteString("text-align:justify;")
	case "left":
		b.WriteString("text-align:left;")
	}
	switch s.VerticalAlign {
	case "top":
		b.WriteString("vertical-align:top;")
	case "middle":
		b.WriteString("vertical-align:middle;")
	case "bottom":
		b.WriteString("vertical-align:bottom;")
	}
	if s.WrapText {
		b.WriteString("white-space:normal;")
	}
	return b.String()
}

func borderCSS(b Border) string {
	if b.Style == "" {
		return ""
	}
	width, line := "1px", "solid"
	switch b.Style {
	case "medium":
		width = "2px"
	case "thick":
		width = "3px"
	case "dashed":
		line = "dashed"
	case "dotted", "hair":
		line = "dotted"
	case "double":
		width, line = "3px", "double"
	}
	color := "#000000"
	if b.Color != "" {
		color = "#" + b.Color
	}
	return width + " " + line + " " + color
}
