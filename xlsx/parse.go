package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/aerissecure/pivotgrid/errors"
)

// ParseWorkbookModel reads a workbook from r/size and returns its intermediate
// representation.
func ParseWorkbookModel(r io.ReaderAt, size int64) (WorkbookModel, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return WorkbookModel{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to read workbook")
	}
	return ModelOf(wb), nil
}

// ModelOf converts an open workbook into its intermediate representation.
func ModelOf(wb *spreadsheet.Workbook) WorkbookModel {
	model := WorkbookModel{DefinedNames: make(map[string]string)}
	for _, dn := range wb.DefinedNames() {
		model.DefinedNames[dn.Name()] = dn.Content()
	}
	for _, sheet := range wb.Sheets() {
		model.Sheets = append(model.Sheets, parseSheet(wb, sheet))
	}
	return model
}

func parseSheet(wb *spreadsheet.Workbook, sheet spreadsheet.Sheet) RenderSheet {
	maxCols := 0
	for _, row := range sheet.Rows() {
		for _, cell := range row.Cells() {
			col, err := cell.Column()
			if err != nil {
				continue
			}
			maxCols = max(maxCols, int(reference.ColumnToIndex(col))+1)
		}
	}

	rs := RenderSheet{
		Name:      sheet.Name(),
		ColWidths: make([]float64, maxCols),
		ColHidden: make([]bool, maxCols),
	}
	for c := 0; c < maxCols; c++ {
		col := sheet.Column(uint32(c + 1)).X()
		if col.CustomWidthAttr != nil && *col.CustomWidthAttr && col.WidthAttr != nil {
			rs.ColWidths[c] = *col.WidthAttr * 8.3
		} else {
			rs.ColWidths[c] = 8.43 * 8.3
		}
		if col.HiddenAttr != nil {
			rs.ColHidden[c] = *col.HiddenAttr
		}
	}

	x := sheet.X()
	if x.AutoFilter != nil && x.AutoFilter.RefAttr != nil {
		rs.AutoFilter = *x.AutoFilter.RefAttr
	}
	if x.SheetViews != nil {
		for _, v := range x.SheetViews.SheetView {
			if v.Pane != nil && v.Pane.StateAttr == sml.ST_PaneStateFrozen && v.Pane.TopLeftCellAttr != nil {
				rs.FrozenAt = *v.Pane.TopLeftCellAttr
			}
		}
	}

	type span struct{ rows, cols int }
	masters := make(map[[2]int]span)
	covered := make(map[[2]int]bool)
	if x.MergeCells != nil {
		for _, mc := range x.MergeCells.MergeCell {
			from, to, err := reference.ParseRangeReference(mc.RefAttr)
			if err != nil {
				continue
			}
			fromRow, fromCol := int(from.RowIdx-1), int(from.ColumnIdx)
			toRow, toCol := int(to.RowIdx-1), int(to.ColumnIdx)
			masters[[2]int{fromRow, fromCol}] = span{toRow - fromRow + 1, toCol - fromCol + 1}
			for r := fromRow; r <= toRow; r++ {
				for c := fromCol; c <= toCol; c++ {
					if r != fromRow || c != fromCol {
						covered[[2]int{r, c}] = true
					}
				}
			}
		}
	}

	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx >= len(rs.Rows) {
			rs.Rows = append(rs.Rows, make([]RenderRow, rowIdx-len(rs.Rows)+1)...)
		}
		rr := &rs.Rows[rowIdx]
		rr.Cells = make([]*RenderCell, maxCols)
		rr.Hidden = row.IsHidden()
		if rx := row.X(); rx.CustomHeightAttr != nil && *rx.CustomHeightAttr && rx.HtAttr != nil {
			rr.HeightPx = *rx.HtAttr * 1.333
		} else {
			rr.HeightPx = 15.0 * 1.333
		}
		if lvl := row.X().OutlineLevelAttr; lvl != nil {
			rr.OutlineLevel = int(*lvl)
		}

		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			if covered[[2]int{rowIdx, colIdx}] {
				continue
			}
			rc := &RenderCell{
				Cell:    cell,
				Ref:     fmt.Sprintf("%s%d", colName, rowIdx+1),
				Value:   cell.GetFormattedValue(),
				ColSpan: 1,
				RowSpan: 1,
			}
			if cell.X().SAttr != nil {
				rc.Style = parseStyle(wb, *cell.X().SAttr)
			}
			if s, ok := masters[[2]int{rowIdx, colIdx}]; ok {
				rc.RowSpan, rc.ColSpan = s.rows, s.cols
			}
			rr.Cells[colIdx] = rc
		}
	}
	return rs
}

func parseStyle(wb *spreadsheet.Workbook, styleID uint32) CellStyle {
	var st CellStyle
	xf := cellXf(wb.StyleSheet, styleID)
	if xf == nil {
		return st
	}

	if font := GetFontProps(wb.StyleSheet, styleID); font != nil {
		if len(font.Name) > 0 {
			st.FontFamily = font.Name[0].ValAttr
		}
		if len(font.Sz) > 0 {
			st.FontSizePt = font.Sz[0].ValAttr
		}
		if len(font.Color) > 0 && font.Color[0].RgbAttr != nil {
			st.FontColor = normalizeColor(*font.Color[0].RgbAttr)
		}
		st.Bold = flag(font.B)
		st.Italic = flag(font.I)
		st.Strike = flag(font.Strike)
		st.Underline = len(font.U) > 0 && font.U[0].ValAttr != sml.ST_UnderlineValuesNone
	}
	if fill := GetFillProps(wb.StyleSheet, styleID); fill != nil && fill.PatternFill != nil && fill.PatternFill.FgColor != nil {
		fg := fill.PatternFill.FgColor
		if fg.RgbAttr != nil {
			st.BackgroundColor = normalizeColor(*fg.RgbAttr)
		} else if fg.ThemeAttr != nil {
			if hex, ok := ThemeColorToRGB(wb, int(*fg.ThemeAttr)); ok {
				st.BackgroundColor = hex
			}
		}
	}
	if b := GetBorderProps(wb.StyleSheet, styleID); b != nil {
		st.BorderLeft = edge(b.Left)
		st.BorderRight = edge(b.Right)
		st.BorderTop = edge(b.Top)
		st.BorderBottom = edge(b.Bottom)
	}
	if xf.Alignment != nil {
		switch xf.Alignment.HorizontalAttr {
		case sml.ST_HorizontalAlignmentUnset, sml.ST_HorizontalAlignmentGeneral:
		default:
			st.HorizontalAlign = xf.Alignment.HorizontalAttr.String()
		}
		switch xf.Alignment.VerticalAttr {
		case sml.ST_VerticalAlignmentTop:
			st.VerticalAlign = "top"
		case sml.ST_VerticalAlignmentCenter:
			st.VerticalAlign = "middle"
		case sml.ST_VerticalAlignmentBottom:
			st.VerticalAlign = "bottom"
		}
		if xf.Alignment.WrapTextAttr != nil {
			st.WrapText = *xf.Alignment.WrapTextAttr
		}
	}
	st.NumberFormat = GetNumberFormat(wb.StyleSheet, styleID)
	return st
}

func flag(props []*sml.CT_BooleanProperty) bool {
	if len(props) == 0 {
		return false
	}
	return props[0].ValAttr == nil || *props[0].ValAttr
}

func edge(pr *sml.CT_BorderPr) Border {
	if pr == nil || pr.StyleAttr == sml.ST_BorderStyleUnset || pr.StyleAttr == sml.ST_BorderStyleNone {
		return Border{}
	}
	b := Border{Style: pr.StyleAttr.String()}
	if pr.Color != nil && pr.Color.RgbAttr != nil {
		b.Color = normalizeColor(*pr.Color.RgbAttr)
	}
	return b
}

// normalizeColor converts an 8-digit ARGB hex to a 6-digit RGB string. Other
// lengths are returned unchanged.
func normalizeColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		return strings.ToUpper(hex[2:])
	}
	return strings.ToUpper(hex)
}
