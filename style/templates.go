package style

import (
	"fmt"

	"github.com/aerissecure/pivotgrid/errors"
)

// AxisKind says which axis an axis-cell template belongs to.
type AxisKind int

const (
	AxisUnknown AxisKind = iota
	AxisColumn
	AxisRow
)

func (k AxisKind) String() string {
	switch k {
	case AxisColumn:
		return "column"
	case AxisRow:
		return "row"
	default:
		return "unknown"
	}
}

// AxisStyle styles a whole header band. Font and background colours cycle per
// column of the band.
type AxisStyle struct {
	Bold             *bool        `koanf:"bold"`
	FontColors       []Color      `koanf:"font_colors"`
	BackgroundColors []Color      `koanf:"background_colors"`
	HAlign           HAlign       `koanf:"horizontal_alignment"`
	VAlign           VAlign       `koanf:"vertical_alignment"`
	Border           *BorderRange `koanf:"border"`
}

// Apply styles r.
func (s *AxisStyle) Apply(t Target, r Rect) error {
	if s == nil || r.Empty() {
		return nil
	}
	whole := Attributes{Bold: ToggleOf(s.Bold), HAlign: s.HAlign, VAlign: s.VAlign}
	if !whole.IsZero() {
		if err := t.ApplyStyle(r, whole); err != nil {
			return err
		}
	}
	if len(s.BackgroundColors) > 0 || len(s.FontColors) > 0 {
		for i := 0; i < r.Cols(); i++ {
			var line Attributes
			if n := len(s.BackgroundColors); n > 0 {
				line.Background = s.BackgroundColors[i%n]
			}
			if n := len(s.FontColors); n > 0 {
				line.FontColor = s.FontColors[i%n]
			}
			if err := t.ApplyStyle(r.Col(i), line); err != nil {
				return err
			}
		}
	}
	return s.Border.Apply(t, r, nil, nil)
}

func (s *AxisStyle) Clone() *AxisStyle {
	if s == nil {
		return nil
	}
	c := *s
	c.Bold = cloneBool(s.Bold)
	c.FontColors = append([]Color(nil), s.FontColors...)
	c.BackgroundColors = append([]Color(nil), s.BackgroundColors...)
	c.Border = s.Border.Clone()
	return &c
}

// CellStyle styles the whole value area.
type CellStyle struct {
	Bold         *bool        `koanf:"bold"`
	Background   Color        `koanf:"background"`
	HAlign       HAlign       `koanf:"horizontal_alignment"`
	VAlign       VAlign       `koanf:"vertical_alignment"`
	NumberFormat string       `koanf:"number_format"`
	Border       *BorderRange `koanf:"border"`
}

func (s *CellStyle) Attributes() Attributes {
	return Attributes{
		Bold:         ToggleOf(s.Bold),
		Background:   s.Background,
		HAlign:       s.HAlign,
		VAlign:       s.VAlign,
		NumberFormat: s.NumberFormat,
	}
}

// Apply styles r.
func (s *CellStyle) Apply(t Target, r Rect) error {
	if s == nil || r.Empty() {
		return nil
	}
	if a := s.Attributes(); !a.IsZero() {
		if err := t.ApplyStyle(r, a); err != nil {
			return err
		}
	}
	return s.Border.Apply(t, r, nil, nil)
}

func (s *CellStyle) Clone() *CellStyle {
	if s == nil {
		return nil
	}
	c := *s
	c.Bold = cloneBool(s.Bold)
	c.Border = s.Border.Clone()
	return &c
}

// AxisCellStyle styles value cells selected by the tuples of one axis.
type AxisCellStyle struct {
	Axis AxisKind `koanf:"-"`

	// ApplyOnTupleLevel is the 1-based member position the style groups on.
	// Zero applies the style to the whole axis.
	ApplyOnTupleLevel int `koanf:"apply_on_tuple_level"`
	// ApplyOnTuple restricts the style to tuples whose member unique names start
	// with this path.
	ApplyOnTuple []string `koanf:"apply_on_tuple"`
	// ExtendToHeader widens the styled range over the axis header lines.
	ExtendToHeader bool `koanf:"extend_to_header"`

	Background   Color        `koanf:"background"`
	Bold         *bool        `koanf:"bold"`
	FontColor    Color        `koanf:"font_color"`
	FontSize     float64      `koanf:"font_size"`
	HAlign       HAlign       `koanf:"horizontal_alignment"`
	VAlign       VAlign       `koanf:"vertical_alignment"`
	NumberFormat string       `koanf:"number_format"`
	Border       *BorderRange `koanf:"border"`

	// HeaderCaptions replaces the header text of the matched tuples, one entry
	// per header line. Empty entries keep the member caption.
	HeaderCaptions []string `koanf:"header_captions"`
}

// ColumnCells returns an empty template bound to the column axis.
func ColumnCells() AxisCellStyle { return AxisCellStyle{Axis: AxisColumn} }

// RowCells returns an empty template bound to the row axis.
func RowCells() AxisCellStyle { return AxisCellStyle{Axis: AxisRow} }

func (s *AxisCellStyle) Attributes() Attributes {
	return Attributes{
		Background:   s.Background,
		Bold:         ToggleOf(s.Bold),
		FontColor:    s.FontColor,
		FontSize:     s.FontSize,
		HAlign:       s.HAlign,
		VAlign:       s.VAlign,
		NumberFormat: s.NumberFormat,
	}
}

// Apply styles r. groups holds the sizes of the tuple groups along the axis and
// drives the inner border lines: vertical lines on the column axis, horizontal
// lines on the row axis.
func (s *AxisCellStyle) Apply(t Target, r Rect, groups []int) error {
	var hGroups, vGroups []int
	switch s.Axis {
	case AxisColumn:
		vGroups = groups
	case AxisRow:
		hGroups = groups
	default:
		panic(fmt.Sprintf("style: axis cell template applied with axis %v", s.Axis))
	}
	if r.Empty() {
		return nil
	}
	if a := s.Attributes(); !a.IsZero() {
		if err := t.ApplyStyle(r, a); err != nil {
			return err
		}
	}
	return s.Border.Apply(t, r, hGroups, vGroups)
}

func (s AxisCellStyle) Clone() AxisCellStyle {
	c := s
	c.ApplyOnTuple = append([]string(nil), s.ApplyOnTuple...)
	c.HeaderCaptions = append([]string(nil), s.HeaderCaptions...)
	c.Bold = cloneBool(s.Bold)
	c.Border = s.Border.Clone()
	return c
}

// TableStyle is the complete styling template of a rendered grid.
type TableStyle struct {
	ColumnAxis      *AxisStyle      `koanf:"column_axis"`
	RowAxis         *AxisStyle      `koanf:"row_axis"`
	CellArea        *CellStyle      `koanf:"cell_area"`
	ColumnAxisCells []AxisCellStyle `koanf:"column_axis_cells"`
	RowAxisCells    []AxisCellStyle `koanf:"row_axis_cells"`

	// FreezePane freezes the headers at the first value cell.
	FreezePane bool `koanf:"freeze_pane"`
	// ShowFilter controls the header filter; unset means on when the column
	// axis has a single header line.
	ShowFilter *bool `koanf:"show_filter"`
}

// FilterEnabled resolves ShowFilter for the given number of column header lines.
func (ts *TableStyle) FilterEnabled(columnLines int) bool {
	if columnLines > 1 {
		return false
	}
	if ts == nil || ts.ShowFilter == nil {
		return true
	}
	return *ts.ShowFilter
}

// Clone returns a deep copy so callers can adjust a preset without touching it.
func (ts *TableStyle) Clone() *TableStyle {
	if ts == nil {
		return nil
	}
	c := *ts
	c.ColumnAxis = ts.ColumnAxis.Clone()
	c.RowAxis = ts.RowAxis.Clone()
	c.CellArea = ts.CellArea.Clone()
	c.ShowFilter = cloneBool(ts.ShowFilter)
	c.ColumnAxisCells = cloneAxisCells(ts.ColumnAxisCells)
	c.RowAxisCells = cloneAxisCells(ts.RowAxisCells)
	return &c
}

// Bind sets the axis of every axis-cell template that has none, according to
// the list it is in. Decoded templates carry no axis of their own.
func (ts *TableStyle) Bind() {
	if ts == nil {
		return
	}
	for i := range ts.ColumnAxisCells {
		if ts.ColumnAxisCells[i].Axis == AxisUnknown {
			ts.ColumnAxisCells[i].Axis = AxisColumn
		}
	}
	for i := range ts.RowAxisCells {
		if ts.RowAxisCells[i].Axis == AxisUnknown {
			ts.RowAxisCells[i].Axis = AxisRow
		}
	}
}

// Normalize rewrites every colour into canonical form.
func (ts *TableStyle) Normalize() error {
	if ts == nil {
		return nil
	}
	for _, a := range []*AxisStyle{ts.ColumnAxis, ts.RowAxis} {
		if a == nil {
			continue
		}
		if err := normalizeColors(a.FontColors); err != nil {
			return err
		}
		if err := normalizeColors(a.BackgroundColors); err != nil {
			return err
		}
		if err := a.Border.normalize(); err != nil {
			return err
		}
	}
	if ts.CellArea != nil {
		if err := normalizeColor(&ts.CellArea.Background); err != nil {
			return err
		}
		if err := ts.CellArea.Border.normalize(); err != nil {
			return err
		}
	}
	for _, list := range [][]AxisCellStyle{ts.ColumnAxisCells, ts.RowAxisCells} {
		for i := range list {
			if err := normalizeColor(&list[i].Background); err != nil {
				return err
			}
			if err := normalizeColor(&list[i].FontColor); err != nil {
				return err
			}
			if err := list[i].Border.normalize(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks the template before any of it is applied.
func (ts *TableStyle) Validate() error {
	if ts == nil {
		return nil
	}
	for _, a := range []*AxisStyle{ts.ColumnAxis, ts.RowAxis} {
		if a == nil {
			continue
		}
		if err := a.Border.validate(); err != nil {
			return err
		}
	}
	if ts.CellArea != nil {
		if err := ts.CellArea.Border.validate(); err != nil {
			return err
		}
	}
	if err := validateAxisCells(ts.ColumnAxisCells, AxisColumn); err != nil {
		return err
	}
	return validateAxisCells(ts.RowAxisCells, AxisRow)
}

func validateAxisCells(list []AxisCellStyle, want AxisKind) error {
	for i, s := range list {
		if s.Axis != want {
			return errors.Newf(errors.ErrInvalidTemplate,
				"%s axis cell template %d is bound to the %s axis", want, i, s.Axis).
				WithDetail("index", i)
		}
		if s.ApplyOnTupleLevel < 0 {
			return errors.Newf(errors.ErrInvalidTemplate,
				"%s axis cell template %d: tuple level must be positive, got %d", want, i, s.ApplyOnTupleLevel).
				WithDetail("index", i)
		}
		if s.FontSize < 0 {
			return errors.Newf(errors.ErrInvalidTemplate,
				"%s axis cell template %d: negative font size", want, i).
				WithDetail("index", i)
		}
		if err := s.Border.validate(); err != nil {
			return err
		}
	}
	return nil
}

func errUnknownBorderStyle(s BorderStyle) error {
	return errors.Newf(errors.ErrInvalidTemplate, "unknown border style %q", string(s))
}

func cloneAxisCells(list []AxisCellStyle) []AxisCellStyle {
	if list == nil {
		return nil
	}
	out := make([]AxisCellStyle, len(list))
	for i, s := range list {
		out[i] = s.Clone()
	}
	return out
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// Bool returns a pointer to v, for optional template flags.
func Bool(v bool) *bool { return &v }
