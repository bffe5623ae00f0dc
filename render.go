package pivotgrid

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/format"
	"github.com/aerissecure/pivotgrid/internal/logging"
	"github.com/aerissecure/pivotgrid/style"
)

// Options control a render pass.
type Options struct {
	// Title is the grid caption. With TitleInGrid it occupies the corner cell
	// and reserves a label column when the result has no row axis.
	Title       string
	TitleInGrid bool

	ColumnCaptions []DynamicCaption
	RowCaptions    []DynamicCaption

	// Style is applied after all content is written; nil applies no template.
	Style *style.TableStyle

	// RowGroups emits outline groups that mirror the row hierarchy.
	RowGroups bool
	// IndentUnit is repeated LevelDepth times in front of each row's leaf label.
	IndentUnit string

	// ErrorValue replaces cells whose value the source could not evaluate.
	ErrorValue any
	// RawValues passes cell values through without format resolution.
	RawValues bool
	// Resolver formats values; nil uses format.DefaultLanguage.
	Resolver *format.Resolver
}

// Render lays cs out and hands every decision to sink. Invalid input, an
// unsupported geometry, an invalid template or a value that cannot be
// formatted fail the render before the sink receives anything.
func Render(cs *CellSet, sink Sink, opts Options) error {
	log := logging.GetLogger("render")

	geo, err := PlanGeometry(cs, opts.TitleInGrid && opts.Title != "")
	if err != nil {
		return err
	}
	title := Title{Text: opts.Title, InGrid: opts.TitleInGrid}
	if geo.Empty() {
		log.Debug().Msg("result has no axes")
		if err := sink.Begin(geo, title); err != nil {
			return err
		}
		return sink.End()
	}
	if err := cs.Validate(); err != nil {
		return err
	}
	if err := opts.Style.Validate(); err != nil {
		return err
	}

	r := &renderer{
		cs:       cs,
		sink:     sink,
		opts:     opts,
		geo:      geo,
		log:      log,
		resolver: opts.Resolver,
		spans:    make(map[[2]int]int),
	}
	if r.resolver == nil {
		r.resolver = format.NewResolver(format.DefaultLanguage)
	}
	log.Debug().Stringer("geometry", geo).Msg("planned geometry")

	values, err := r.resolveCells()
	if err != nil {
		return err
	}

	if err := sink.Begin(geo, title); err != nil {
		return err
	}
	steps := []func() error{
		r.writeHeaders,
		r.writeRowLabels,
		r.writeOutline,
		func() error { return r.writeCells(values) },
		r.applyTableStyle,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return sink.End()
}

// RenderGrid renders cs into a new Grid.
func RenderGrid(cs *CellSet, opts Options) (*Grid, error) {
	g := NewGrid()
	if err := Render(cs, g, opts); err != nil {
		return nil, err
	}
	return g, nil
}

type renderer struct {
	cs       *CellSet
	sink     Sink
	opts     Options
	geo      Geometry
	log      zerolog.Logger
	resolver *format.Resolver

	// spans maps (line, first tuple) of every header span to its width.
	spans map[[2]int]int
}

func (r *renderer) writeHeaders() error {
	axis := r.cs.ColumnAxis()
	if axis == nil {
		return nil
	}
	spans := HeaderSpans(axis.Tuples, r.geo.ColumnLines)
	merged := 0
	for _, s := range spans {
		caption := captionFor(s.Member, s.Line, r.opts.ColumnCaptions)
		if err := r.sink.WriteHeader(s.Line, s.Start, s.Width(), caption); err != nil {
			return err
		}
		r.spans[[2]int{s.Line, s.Start}] = s.Width()
		if s.Width() > 1 {
			merged++
			col := r.geo.RowLines + s.Start
			rect := style.Rect{Top: s.Line, Left: col, Bottom: s.Line, Right: col + s.Width() - 1}
			if err := r.sink.ApplyStyle(rect, style.Attributes{HAlign: style.HAlignCenter}); err != nil {
				return err
			}
		}
	}
	r.log.Debug().Int("spans", len(spans)).Int("merged", merged).Msg("wrote column headers")
	return nil
}

func (r *renderer) writeRowLabels() error {
	axis := r.cs.RowAxis()
	if axis == nil {
		return nil
	}
	for i, t := range axis.Tuples {
		for line := range t.Members {
			m := &t.Members[line]
			indent := ""
			if line == len(t.Members)-1 {
				indent = IndentLabel(r.opts.IndentUnit, m.LevelDepth)
			}
			if err := r.sink.WriteRowLabel(i, line, indent, captionFor(m, line, r.opts.RowCaptions)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *renderer) writeOutline() error {
	axis := r.cs.RowAxis()
	if !r.opts.RowGroups || axis == nil {
		return nil
	}
	groups := OutlineGroups(axis.Tuples)
	for _, g := range groups {
		if err := r.sink.ApplyOutline(g); err != nil {
			return err
		}
	}
	r.log.Debug().Int("groups", len(groups)).Msg("wrote row outline")
	return nil
}

func (r *renderer) resolveCells() ([][]format.Result, error) {
	rows := r.geo.BodyRows()
	out := make([][]format.Result, rows)
	for row := 0; row < rows; row++ {
		out[row] = make([]format.Result, r.geo.Columns)
		for col := 0; col < r.geo.Columns; col++ {
			res, err := r.resolve(r.cs.Cell(col, row), col, row)
			if err != nil {
				return nil, errors.Wrapf(err, errors.GetErrorCode(err), "cell %d/%d", col, row)
			}
			out[row][col] = res
		}
	}
	return out, nil
}

func (r *renderer) resolve(cell *Cell, col, row int) (format.Result, error) {
	var props Properties
	if cell != nil {
		props = cell.Properties
	}

	v, err := cell.ReadValue()
	if err != nil {
		r.log.Debug().Err(err).Int("column", col).Int("row", row).Msg("cell value unavailable")
		return plainResult(r.opts.ErrorValue, props), nil
	}
	if r.opts.RawValues {
		return plainResult(v, props), nil
	}
	return r.resolver.Resolve(v, props)
}

func plainResult(v any, props Properties) format.Result {
	res := format.Result{Value: v, Style: format.DecodeAttributes(props)}
	if v != nil {
		res.Text = fmt.Sprint(v)
	}
	return res
}

func (r *renderer) writeCells(values [][]format.Result) error {
	for row := range values {
		for col := range values[row] {
			if err := r.sink.WriteCell(col, row, values[row][col]); err != nil {
				return err
			}
		}
	}
	return nil
}
