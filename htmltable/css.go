package htmltable

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aerissecure/pivotgrid/style"
)

var (
	fontFamilySafeRe = regexp.MustCompile(`[^a-zA-Z0-9 ,_-]+`)
	hexColorRe       = regexp.MustCompile(`^[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$`)
)

// sanitizeFontFamily strips characters that are not safe inside a quoted CSS
// font-family value.
func sanitizeFontFamily(s string) string {
	return fontFamilySafeRe.ReplaceAllString(s, "")
}

// sanitizeColor returns s when it is a 3- or 6-digit hex colour, else "".
func sanitizeColor(c style.Color) string {
	if hexColorRe.MatchString(string(c)) {
		return string(c)
	}
	return ""
}

// cellCSS renders the inline style of a grid cell.
func cellCSS(a style.Attributes, borders [style.EdgeCount]style.BorderItem) string {
	var b strings.Builder
	if a.FontName != "" {
		if name := sanitizeFontFamily(a.FontName); name != "" {
			fmt.Fprintf(&b, "font-family:'%s';", name)
		}
	}
	if a.FontSize > 0 {
		fmt.Fprintf(&b, "font-size:%gpt;", a.FontSize)
	}
	if safe := sanitizeColor(a.FontColor); safe != "" {
		fmt.Fprintf(&b, "color:#%s;", safe)
	}
	if safe := sanitizeColor(a.Background); safe != "" {
		fmt.Fprintf(&b, "background-color:#%s;", safe)
	}
	switch a.Bold {
	case style.On:
		b.WriteString("font-weight:bold;")
	case style.Off:
		b.WriteString("font-weight:normal;")
	}
	if a.Italic.Bool() {
		b.WriteString("font-style:italic;")
	}
	switch {
	case a.Underline.Bool() && a.Strike.Bool():
		b.WriteString("text-decoration:underline line-through;")
	case a.Underline.Bool():
		b.WriteString("text-decoration:underline;")
	case a.Strike.Bool():
		b.WriteString("text-decoration:line-through;")
	}
	switch a.HAlign {
	case style.HAlignLeft, style.HAlignCenter, style.HAlignRight, style.HAlignJustify:
		fmt.Fprintf(&b, "text-align:%s;", a.HAlign)
	}
	switch a.VAlign {
	case style.VAlignTop, style.VAlignBottom:
		fmt.Fprintf(&b, "vertical-align:%s;", a.VAlign)
	case style.VAlignCenter:
		b.WriteString("vertical-align:middle;")
	}

	sides := [...]struct {
		edge style.Edge
		name string
	}{
		{style.EdgeLeft, "left"},
		{style.EdgeRight, "right"},
		{style.EdgeTop, "top"},
		{style.EdgeBottom, "bottom"},
	}
	for _, s := range sides {
		if css := borderCSS(borders[s.edge]); css != "" {
			fmt.Fprintf(&b, "border-%s:%s;", s.name, css)
		}
	}
	return b.String()
}

func borderCSS(item style.BorderItem) string {
	if item.Style == "" {
		return ""
	}
	if item.Style == style.BorderNone {
		return "none"
	}
	width, line := "1px", "solid"
	switch item.Style {
	case style.BorderMedium:
		width = "2px"
	case style.BorderThick:
		width = "3px"
	case style.BorderDashed:
		line = "dashed"
	case style.BorderDotted, style.BorderHair:
		line = "dotted"
	case style.BorderDouble:
		width, line = "3px", "double"
	}
	color := "#000000"
	if safe := sanitizeColor(item.Color); safe != "" {
		color = "#" + safe
	}
	return width + " " + line + " " + color
}
