package xlsx

import (
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/pivotgrid/style"
)

const (
	defaultFontName = "Calibri"
	defaultFontSize = 11
)

// cellKey identifies a distinct cell style; equal keys share one workbook style.
type cellKey struct {
	attrs   style.Attributes
	borders [style.EdgeCount]style.BorderItem
}

func (k cellKey) isZero() bool { return k == cellKey{} }

// styleCache creates workbook cell styles on demand, one per distinct key.
type styleCache struct {
	ss     spreadsheet.StyleSheet
	styles map[cellKey]spreadsheet.CellStyle
}

func newStyleCache(ss spreadsheet.StyleSheet) *styleCache {
	return &styleCache{ss: ss, styles: make(map[cellKey]spreadsheet.CellStyle)}
}

func (c *styleCache) get(k cellKey) spreadsheet.CellStyle {
	if cs, ok := c.styles[k]; ok {
		return cs
	}
	cs := c.ss.AddCellStyle()
	a := k.attrs

	if a.FontColor.IsSet() || a.FontName != "" || a.FontSize > 0 ||
		a.Bold.Bool() || a.Italic.Bool() || a.Underline.Bool() || a.Strike.Bool() {
		cs.SetFont(c.font(a))
	}
	if a.Background.IsSet() {
		fill := c.ss.Fills().AddFill()
		pf := fill.SetPatternFill()
		pf.X().PatternTypeAttr = sml.ST_PatternTypeSolid
		pf.X().FgColor = argb(a.Background)
		cs.SetFill(fill)
	}
	if k.borders != ([style.EdgeCount]style.BorderItem{}) {
		cs.SetBorder(c.border(k.borders))
	}

	switch a.HAlign {
	case style.HAlignLeft:
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentLeft)
	case style.HAlignCenter:
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentCenter)
	case style.HAlignRight:
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentRight)
	case style.HAlignJustify:
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentJustify)
	}
	switch a.VAlign {
	case style.VAlignTop:
		cs.SetVerticalAlignment(sml.ST_VerticalAlignmentTop)
	case style.VAlignCenter:
		cs.SetVerticalAlignment(sml.ST_VerticalAlignmentCenter)
	case style.VAlignBottom:
		cs.SetVerticalAlignment(sml.ST_VerticalAlignmentBottom)
	}
	if a.NumberFormat != "" && a.NumberFormat != "General" {
		cs.SetNumberFormat(a.NumberFormat)
	}

	c.styles[k] = cs
	return cs
}

func (c *styleCache) font(a style.Attributes) spreadsheet.Font {
	f := c.ss.AddFont()
	name, size := a.FontName, a.FontSize
	if name == "" {
		name = defaultFontName
	}
	if size <= 0 {
		size = defaultFontSize
	}
	f.SetName(name)
	f.SetSize(size)
	if a.Bold.Bool() {
		f.SetBold(true)
	}
	if a.Italic.Bool() {
		f.SetItalic(true)
	}
	if a.Underline.Bool() {
		f.X().U = []*sml.CT_UnderlineProperty{{ValAttr: sml.ST_UnderlineValuesSingle}}
	}
	if a.Strike.Bool() {
		f.X().Strike = []*sml.CT_BooleanProperty{{ValAttr: ptr(true)}}
	}
	if a.FontColor.IsSet() {
		f.X().Color = []*sml.CT_Color{argb(a.FontColor)}
	}
	return f
}

func (c *styleCache) border(edges [style.EdgeCount]style.BorderItem) spreadsheet.Border {
	b := c.ss.AddBorder()
	x := b.X()
	x.Left = borderPr(edges[style.EdgeLeft])
	x.Right = borderPr(edges[style.EdgeRight])
	x.Top = borderPr(edges[style.EdgeTop])
	x.Bottom = borderPr(edges[style.EdgeBottom])

	up, down := edges[style.EdgeDiagonalUp], edges[style.EdgeDiagonalDown]
	switch {
	case !up.IsZero():
		x.Diagonal = borderPr(up)
	case !down.IsZero():
		x.Diagonal = borderPr(down)
	}
	if !up.IsZero() {
		x.DiagonalUpAttr = ptr(true)
	}
	if !down.IsZero() {
		x.DiagonalDownAttr = ptr(true)
	}
	return b
}

var borderStyles = map[style.BorderStyle]sml.ST_BorderStyle{
	style.BorderNone:   sml.ST_BorderStyleNone,
	style.BorderThin:   sml.ST_BorderStyleThin,
	style.BorderMedium: sml.ST_BorderStyleMedium,
	style.BorderThick:  sml.ST_BorderStyleThick,
	style.BorderDashed: sml.ST_BorderStyleDashed,
	style.BorderDotted: sml.ST_BorderStyleDotted,
	style.BorderDouble: sml.ST_BorderStyleDouble,
	style.BorderHair:   sml.ST_BorderStyleHair,
}

func borderPr(item style.BorderItem) *sml.CT_BorderPr {
	pr := sml.NewCT_BorderPr()
	if item.IsZero() {
		return pr
	}
	st, ok := borderStyles[item.Style]
	if !ok {
		st = sml.ST_BorderStyleThin
	}
	pr.StyleAttr = st
	if item.Color.IsSet() {
		pr.Color = argb(item.Color)
	}
	return pr
}

func argb(c style.Color) *sml.CT_Color {
	return &sml.CT_Color{RgbAttr: ptr("FF" + string(c))}
}

func ptr[T any](v T) *T { return &v }

// GetFontProps returns the font of a cell style, or nil.
func GetFontProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Font {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.FontIdAttr == nil || ss.X().Fonts == nil {
		return nil
	}
	idx := int(*xf.FontIdAttr)
	if idx >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[idx]
}

// GetFillProps returns the fill of a cell style, or nil.
func GetFillProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Fill {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.FillIdAttr == nil || ss.X().Fills == nil {
		return nil
	}
	idx := int(*xf.FillIdAttr)
	if idx >= len(ss.X().Fills.Fill) {
		return nil
	}
	return ss.X().Fills.Fill[idx]
}

// GetBorderProps returns the border of a cell style, or nil.
func GetBorderProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Border {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.BorderIdAttr == nil || ss.X().Borders == nil {
		return nil
	}
	idx := int(*xf.BorderIdAttr)
	if idx >= len(ss.X().Borders.Border) {
		return nil
	}
	return ss.X().Borders.Border[idx]
}

// GetNumberFormat returns the custom number format code of a cell style, or
// "" for built-in formats.
func GetNumberFormat(ss spreadsheet.StyleSheet, styleID uint32) string {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.NumFmtIdAttr == nil || ss.X().NumFmts == nil {
		return ""
	}
	for _, nf := range ss.X().NumFmts.NumFmt {
		if nf.NumFmtIdAttr == *xf.NumFmtIdAttr {
			return nf.FormatCodeAttr
		}
	}
	return ""
}

func cellXf(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Xf {
	if ss.X().CellXfs == nil || int(styleID) >= len(ss.X().CellXfs.Xf) {
		return nil
	}
	return ss.X().CellXfs.Xf[styleID]
}

// ThemeColorToRGB resolves a theme colour index (0-based) to an RGB hex string
// without applying tint.
func ThemeColorToRGB(wb *spreadsheet.Workbook, themeIdx int) (string, bool) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil {
		return "", false
	}
	scheme := themes[0].ThemeElements.ClrScheme

	var clr *dml.CT_Color
	switch themeIdx {
	case 0:
		clr = scheme.Dk1
	case 1:
		clr = scheme.Lt1
	case 2:
		clr = scheme.Dk2
	case 3:
		clr = scheme.Lt2
	case 4:
		clr = scheme.Accent1
	case 5:
		clr = scheme.Accent2
	case 6:
		clr = scheme.Accent3
	case 7:
		clr = scheme.Accent4
	case 8:
		clr = scheme.Accent5
	case 9:
		clr = scheme.Accent6
	case 10:
		clr = scheme.Hlink
	case 11:
		clr = scheme.FolHlink
	default:
		return "", false
	}
	if clr == nil {
		return "", false
	}
	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return clr.SrgbClr.ValAttr, true
	}
	if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return *clr.SysClr.LastClrAttr, true
	}
	return "", false
}
