package docx

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

var (
	fontFamilySafeRe = regexp.MustCompile(`[^a-zA-Z0-9 ,_-]+`)
	hexColorRe       = regexp.MustCompile(`^[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$`)
)

// ToHTML reads a Word document and renders its preview.
func ToHTML(r io.ReaderAt, size int64) (string, error) {
	m, err := ParseDocumentModel(r, size)
	if err != nil {
		return "", err
	}
	return RenderDocumentHTML(m), nil
}

func sanitizeFontFamily(s string) string {
	return fontFamilySafeRe.ReplaceAllString(s, "")
}

func sanitizeColor(s string) string {
	if hexColorRe.MatchString(s) {
		return s
	}
	return ""
}

func runStyleToCSS(s RunStyle) string {
	var b strings.Builder
	if s.FontFamily != "" {
		fmt.Fprintf(&b, "font-family:'%s';", sanitizeFontFamily(s.FontFamily))
	}
	if s.FontSizePt > 0 {
		fmt.Fprintf(&b, "font-size:%.1fpt;", s.FontSizePt)
	}
	if safe := sanitizeColor(s.FontColor); safe != "" {
		fmt.Fprintf(&b, "color:#%s;", safe)
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
	return b.String()
}

func renderRunsHTML(runs []RenderRun) string {
	var b strings.Builder
	for _, run := range runs {
		text := strings.ReplaceAll(html.EscapeString(run.Text), "\n", "<br>")
		if css := runStyleToCSS(run.Style); css != "" {
			fmt.Fprintf(&b, "<span style=\"%s\">%s</span>", css, text)
		} else {
			b.WriteString(text)
		}
	}
	return b.String()
}

func renderParagraphHTML(p RenderParagraph) string {
	tag := "p"
	if p.Style.HeadingLevel > 0 && p.Style.HeadingLevel <= 6 {
		tag = fmt.Sprintf("h%d", p.Style.HeadingLevel)
	}
	if p.Style.Alignment != "" && p.Style.Alignment != "left" {
		return fmt.Sprintf("<%s style=\"text-align:%s;\">%s</%s>\n", tag, p.Style.Alignment, renderRunsHTML(p.Runs), tag)
	}
	return fmt.Sprintf("<%s>%s</%s>\n", tag, renderRunsHTML(p.Runs), tag)
}

func renderTableHTML(t RenderTable) string {
	var b strings.Builder
	b.WriteString("<table style=\"border-collapse:collapse;\">\n")
	for _, row := range t.Rows {
		b.WriteString("  <tr>")
		for _, cell := range row.Cells {
			var content strings.Builder
			for _, p := range cell.Paragraphs {
				content.WriteString(renderRunsHTML(p.Runs))
			}
			if content.Len() == 0 {
				content.WriteString("&nbsp;")
			}

			attrs := ""
			if cell.ColSpan > 1 {
				attrs = fmt.Sprintf(" colspan=\"%d\"", cell.ColSpan)
			}
			css := "border:1px solid #333;padding:4px;"
			if safe := sanitizeColor(cell.Style.BackgroundColor); safe != "" {
				css = fmt.Sprintf("background-color:#%s;", safe) + css
			}
			fmt.Fprintf(&b, "<td%s style=\"%s\">%s</td>", attrs, css, content.String())
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

// RenderDocumentHTML converts the model into an HTML page.
func RenderDocumentHTML(m DocumentModel) string {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	for _, blk := range m.Blocks {
		switch {
		case blk.Paragraph != nil:
			b.WriteString(renderParagraphHTML(*blk.Paragraph))
		case blk.Table != nil:
			b.WriteString(renderTableHTML(*blk.Table))
		}
	}
	b.WriteString("</body></html>\n")
	return b.String()
}
