package docx

import (
	"io"
	"strings"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/aerissecure/pivotgrid/errors"
)

// ParseDocumentModel reads a Word document and builds its DocumentModel.
func ParseDocumentModel(r io.ReaderAt, size int64) (DocumentModel, error) {
	doc, err := document.Read(r, size)
	if err != nil {
		return DocumentModel{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to read document")
	}
	return ModelOf(doc), nil
}

// ModelOf builds the DocumentModel of an open document.
func ModelOf(doc *document.Document) DocumentModel {
	var mdl DocumentModel

	pMap := make(map[*wml.CT_P]document.Paragraph)
	for _, p := range doc.Paragraphs() {
		pMap[p.X()] = p
	}
	tMap := make(map[*wml.CT_Tbl]document.Table)
	for _, tbl := range doc.Tables() {
		tMap[tbl.X()] = tbl
	}

	body := doc.X().Body
	if body == nil {
		return mdl
	}
	for _, bl := range body.EG_BlockLevelElts {
		for _, c := range bl.EG_ContentBlockContent {
			for _, cp := range c.P {
				if par, ok := pMap[cp]; ok {
					rp := convertParagraph(par)
					mdl.Blocks = append(mdl.Blocks, DocumentBlock{Paragraph: &rp})
				}
			}
			for _, ct := range c.Tbl {
				if tbl, ok := tMap[ct]; ok {
					rt := convertTable(tbl)
					mdl.Blocks = append(mdl.Blocks, DocumentBlock{Table: &rt})
				}
			}
		}
	}
	return mdl
}

func convertRun(r document.Run) RenderRun {
	props := r.Properties()
	return RenderRun{
		Run:  r,
		Text: r.Text(),
		Style: RunStyle{
			Bold:   props.IsBold(),
			Italic: props.IsItalic(),
		},
	}
}

func convertParagraph(p document.Paragraph) RenderParagraph {
	rp := RenderParagraph{Paragraph: p}
	for _, run := range p.Runs() {
		rp.Runs = append(rp.Runs, convertRun(run))
	}
	if s := p.Style(); s == titleStyle || strings.HasPrefix(s, "Heading") {
		rp.Style.HeadingLevel = 1
	}
	if ppr := p.X().PPr; ppr != nil && ppr.Jc != nil {
		switch ppr.Jc.ValAttr {
		case wml.ST_JcCenter:
			rp.Style.Alignment = "center"
		case wml.ST_JcRight:
			rp.Style.Alignment = "right"
		case wml.ST_JcBoth:
			rp.Style.Alignment = "justify"
		}
	}
	return rp
}

func convertTable(t document.Table) RenderTable {
	var rt RenderTable
	for _, row := range t.Rows() {
		var rr RenderTableRow
		for _, cell := range row.Cells() {
			rc := RenderTableCell{ColSpan: 1}
			if tcPr := cell.Properties().X(); tcPr != nil {
				if tcPr.GridSpan != nil && tcPr.GridSpan.ValAttr > 1 {
					rc.ColSpan = int(tcPr.GridSpan.ValAttr)
				}
				if shd := tcPr.Shd; shd != nil && shd.FillAttr != nil && shd.FillAttr.ST_HexColorRGB != nil {
					rc.Style.BackgroundColor = strings.ToUpper(*shd.FillAttr.ST_HexColorRGB)
				}
			}
			for _, p := range cell.Paragraphs() {
				rc.Paragraphs = append(rc.Paragraphs, convertParagraph(p))
			}
			rr.Cells = append(rr.Cells, rc)
		}
		rt.Rows = append(rt.Rows, rr)
	}
	return rt
}
