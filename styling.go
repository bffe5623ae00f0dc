package pivotgrid

import (
	"strconv"
	"strings"

	"github.com/aerissecure/pivotgrid/style"
)

// applyTableStyle layers the template over the written grid: the header and
// label bands, the value area, then the column and row axis-cell templates.
func (r *renderer) applyTableStyle() error {
	ts := r.opts.Style
	if ts == nil {
		return nil
	}
	geo := r.geo
	bodyRows := geo.BodyRows()

	if ts.ColumnAxis != nil && geo.Columns > 0 {
		band := geo.HeaderBand()
		if r.opts.TitleInGrid && r.opts.Title != "" {
			band.Left = 0
		}
		if err := ts.ColumnAxis.Apply(r.sink, band); err != nil {
			return err
		}
	}
	if ts.RowAxis != nil && geo.Rows > 0 {
		if err := ts.RowAxis.Apply(r.sink, geo.LabelBand()); err != nil {
			return err
		}
	}
	if ts.CellArea != nil && geo.Columns > 0 && bodyRows > 0 {
		if err := ts.CellArea.Apply(r.sink, geo.Body()); err != nil {
			return err
		}
	}

	if axis := r.cs.ColumnAxis(); axis != nil && geo.Columns > 0 && bodyRows > 0 {
		if err := r.applyAxisCells(ts.ColumnAxisCells, axis.Tuples, geo.ColumnLines); err != nil {
			return err
		}
	}
	if axis := r.cs.RowAxis(); axis != nil && geo.Columns > 0 && geo.Rows > 0 {
		if err := r.applyAxisCells(ts.RowAxisCells, axis.Tuples, geo.RowLines); err != nil {
			return err
		}
	}
	return nil
}

// axisCellGroup collects the templates sharing a tuple level and path.
type axisCellGroup struct {
	templates []style.AxisCellStyle
}

func groupAxisCells(list []style.AxisCellStyle) []axisCellGroup {
	var (
		groups []axisCellGroup
		index  = make(map[string]int)
	)
	for _, t := range list {
		key := strconv.Itoa(t.ApplyOnTupleLevel) + "\x00" + strings.Join(t.ApplyOnTuple, "\x00")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, axisCellGroup{})
		}
		groups[i].templates = append(groups[i].templates, t)
	}
	return groups
}

func (r *renderer) applyAxisCells(list []style.AxisCellStyle, tuples []Tuple, lines int) error {
	for _, g := range groupAxisCells(list) {
		if len(g.templates) == 1 {
			t := g.templates[0]
			if err := r.applyGrouped(t, r.axisBand(t), tuples, lines); err != nil {
				return err
			}
			continue
		}

		// Several templates alternate tuple by tuple.
		for i := range tuples {
			t := g.templates[i%len(g.templates)]
			if t.ApplyOnTupleLevel > lines {
				continue
			}
			if len(t.ApplyOnTuple) > 0 && !matchesPath(tuples[i], t.ApplyOnTuple) {
				continue
			}
			if err := r.applyToTuple(t, i, tupleRect(r.axisBand(t), t.Axis, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyGrouped applies a single template. A tuple level equal to the axis
// depth, or none, styles the whole band; a shallower level places inner
// borders only between runs of that level; a deeper level does nothing.
func (r *renderer) applyGrouped(t style.AxisCellStyle, band style.Rect, tuples []Tuple, lines int) error {
	var groups []int
	switch {
	case t.ApplyOnTupleLevel == 0 || t.ApplyOnTupleLevel == lines:
	case t.ApplyOnTupleLevel < lines:
		groups = TupleGrouping(tuples, t.ApplyOnTupleLevel)
	default:
		return nil
	}

	if len(t.ApplyOnTuple) == 0 {
		return t.Apply(r.sink, band, groups)
	}
	for i := range tuples {
		if !matchesPath(tuples[i], t.ApplyOnTuple) {
			continue
		}
		if err := r.applyToTuple(t, i, tupleRect(band, t.Axis, i)); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) applyToTuple(t style.AxisCellStyle, i int, rect style.Rect) error {
	if t.Axis == style.AxisColumn && len(t.ApplyOnTuple) > 0 {
		for line := 0; line < len(t.HeaderCaptions) && line < r.geo.ColumnLines; line++ {
			caption := t.HeaderCaptions[line]
			if caption == "" {
				continue
			}
			width, ok := r.spans[[2]int{line, i}]
			if !ok {
				continue
			}
			if err := r.sink.WriteHeader(line, i, width, caption); err != nil {
				return err
			}
		}
	}
	return t.Apply(r.sink, rect, nil)
}

// axisBand is the range an axis-cell template covers: the value area, widened
// over the header lines (columns) or label columns (rows) with ExtendToHeader.
func (r *renderer) axisBand(t style.AxisCellStyle) style.Rect {
	band := r.geo.Body()
	if t.ExtendToHeader {
		switch t.Axis {
		case style.AxisColumn:
			band.Top = 0
		case style.AxisRow:
			band.Left = 0
		}
	}
	return band
}

// tupleRect narrows an axis band to the i-th tuple.
func tupleRect(band style.Rect, axis style.AxisKind, i int) style.Rect {
	if axis == style.AxisRow {
		return style.Rect{Top: band.Top + i, Left: band.Left, Bottom: band.Top + i, Right: band.Right}
	}
	return style.Rect{Top: band.Top, Left: band.Left + i, Bottom: band.Bottom, Right: band.Left + i}
}

// matchesPath compares member unique names with path level by level, over the
// shorter of the two.
func matchesPath(t Tuple, path []string) bool {
	n := min(len(path), len(t.Members))
	for m := 0; m < n; m++ {
		if t.Members[m].UniqueName != path[m] {
			return false
		}
	}
	return true
}
