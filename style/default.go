package style

// Default returns the preset used when a caller gives no template: a bold,
// centred header band in yellow, a pale row band, outlined value area, vertical
// separators between first-level column tuples and alternating blue row shading.
func Default() *TableStyle {
	thin := func() *BorderItem { return Solid(BorderThin, Black) }

	header := Outline(BorderThin, Black)
	header.Horizontal = thin()
	header.Vertical = thin()

	return &TableStyle{
		ColumnAxis: &AxisStyle{
			Bold:             Bool(true),
			BackgroundColors: []Color{RGB(255, 230, 153)},
			HAlign:           HAlignCenter,
			Border:           header,
		},
		RowAxis: &AxisStyle{
			BackgroundColors: []Color{RGB(255, 242, 204)},
			Border:           Outline(BorderThin, Black),
		},
		CellArea: &CellStyle{
			Border: Outline(BorderThin, Black),
		},
		ColumnAxisCells: []AxisCellStyle{
			{
				Axis:   AxisColumn,
				Border: &BorderRange{Vertical: &BorderItem{Style: BorderNone}},
			},
			{
				Axis:              AxisColumn,
				ApplyOnTupleLevel: 1,
				Border:            &BorderRange{Vertical: thin()},
			},
		},
		RowAxisCells: []AxisCellStyle{
			{Axis: AxisRow, Background: RGB(189, 215, 238)},
			{Axis: AxisRow, Background: RGB(221, 235, 247)},
		},
	}
}

// Plain returns a template that only outlines the header band and value area.
func Plain() *TableStyle {
	return &TableStyle{
		ColumnAxis: &AxisStyle{Bold: Bool(true), Border: Outline(BorderThin, Black)},
		RowAxis:    &AxisStyle{Border: Outline(BorderThin, Black)},
		CellArea:   &CellStyle{Border: Outline(BorderThin, Black)},
	}
}

// Preset returns a named template: "default", "plain" or "none". ok is false
// for unknown names.
func Preset(name string) (ts *TableStyle, ok bool) {
	switch name {
	case "", "default":
		return Default(), true
	case "plain":
		return Plain(), true
	case "none":
		return &TableStyle{}, true
	}
	return nil, false
}
