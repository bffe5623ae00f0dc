// Package pivotgrid lays out multidimensional query results as grids: header
// spans for nested column tuples, indented and grouped row labels, layered
// style templates and formatted values, handed to a Sink for emission.
package pivotgrid

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aerissecure/pivotgrid/errors"
)

// Properties maps property names to values.
type Properties map[string]any

// Find returns the named property. A nil value counts as present.
func (p Properties) Find(name string) (any, bool) {
	v, ok := p[name]
	return v, ok
}

// Member is one value of a hierarchy level.
type Member struct {
	UniqueName string     `yaml:"unique_name" json:"unique_name"`
	Caption    string     `yaml:"caption" json:"caption"`
	LevelDepth int        `yaml:"level_depth" json:"level_depth"`
	Properties Properties `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// Tuple is one coordinate along an axis, one member per hierarchy level.
type Tuple struct {
	Members []Member `yaml:"members" json:"members"`
}

// UnmarshalYAML accepts either {members: [...]} or a bare member sequence.
func (t *Tuple) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		return value.Decode(&t.Members)
	}
	type plain Tuple
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*t = Tuple(p)
	return nil
}

// Depth returns the number of members.
func (t Tuple) Depth() int { return len(t.Members) }

// Leaf returns the last member, or nil for an empty tuple.
func (t Tuple) Leaf() *Member {
	if len(t.Members) == 0 {
		return nil
	}
	return &t.Members[len(t.Members)-1]
}

// Axis is an ordered sequence of tuples of equal depth.
type Axis struct {
	Name   string  `yaml:"name,omitempty" json:"name,omitempty"`
	Tuples []Tuple `yaml:"tuples" json:"tuples"`
}

// Depth is the number of hierarchy levels shown on the axis, taken from the
// first tuple.
func (a *Axis) Depth() int {
	if a == nil || len(a.Tuples) == 0 {
		return 0
	}
	return len(a.Tuples[0].Members)
}

// Len returns the number of tuples.
func (a *Axis) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Tuples)
}

// Cell is one measure value with its metadata. A non-empty Error means the
// source could not evaluate the value.
type Cell struct {
	Value      any        `yaml:"value" json:"value"`
	Error      string     `yaml:"error,omitempty" json:"error,omitempty"`
	Properties Properties `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// ReadValue returns the cell value, or an ErrValueUnavailable error when the
// source failed to evaluate it. A nil cell reads as a nil value.
func (c *Cell) ReadValue() (any, error) {
	if c == nil {
		return nil, nil
	}
	if c.Error != "" {
		return nil, errors.New(errors.ErrValueUnavailable, c.Error)
	}
	return c.Value, nil
}

// ValueOr returns the cell value, or fallback when it cannot be read.
func (c *Cell) ValueOr(fallback any) any {
	v, err := c.ReadValue()
	if err != nil {
		return fallback
	}
	return v
}

// CellSet is a query result: up to two axes and the flat cell matrix, with
// axis 0 varying fastest.
type CellSet struct {
	Axes  []Axis `yaml:"axes" json:"axes"`
	Cells []Cell `yaml:"cells" json:"cells"`
}

// ColumnAxis returns axis 0, or nil.
func (cs *CellSet) ColumnAxis() *Axis {
	if cs == nil || len(cs.Axes) < 1 {
		return nil
	}
	return &cs.Axes[0]
}

// RowAxis returns axis 1, or nil.
func (cs *CellSet) RowAxis() *Axis {
	if cs == nil || len(cs.Axes) < 2 {
		return nil
	}
	return &cs.Axes[1]
}

// Cell returns the cell at the given tuple positions, or nil when out of
// range. row is ignored for results with fewer than two axes.
func (cs *CellSet) Cell(column, row int) *Cell {
	columns := cs.ColumnAxis().Len()
	if column < 0 || (columns > 0 && column >= columns) {
		return nil
	}
	ordinal := column
	if len(cs.Axes) >= 2 {
		if row < 0 || row >= cs.RowAxis().Len() {
			return nil
		}
		ordinal = column + row*columns
	}
	if ordinal >= len(cs.Cells) {
		return nil
	}
	return &cs.Cells[ordinal]
}

// Validate checks the structural invariants of the result: equal tuple depth
// per axis, non-negative level depths and a cell count matching the axes.
// The number of axes is checked when planning the geometry.
func (cs *CellSet) Validate() error {
	if cs == nil {
		return errors.New(errors.ErrInvalidInput, "no result")
	}
	for a := range cs.Axes {
		axis := &cs.Axes[a]
		depth := axis.Depth()
		for i, t := range axis.Tuples {
			if len(t.Members) != depth {
				return errors.Newf(errors.ErrInvalidInput,
					"axis %d tuple %d has %d members, expected %d", a, i, len(t.Members), depth).
					WithDetail("axis", a).WithDetail("tuple", i)
			}
			for m, member := range t.Members {
				if member.LevelDepth < 0 {
					return errors.Newf(errors.ErrInvalidInput,
						"axis %d tuple %d member %d has negative level depth", a, i, m)
				}
			}
		}
	}

	var want int
	switch len(cs.Axes) {
	case 0:
		if len(cs.Cells) > 1 {
			return errors.Newf(errors.ErrInvalidInput, "result without axes has %d cells", len(cs.Cells))
		}
		return nil
	case 1:
		want = cs.Axes[0].Len()
	default:
		want = cs.Axes[0].Len() * cs.Axes[1].Len()
	}
	if len(cs.Cells) != want {
		return errors.Newf(errors.ErrInvalidInput, "result has %d cells, expected %d", len(cs.Cells), want).
			WithDetail("cells", len(cs.Cells))
	}
	return nil
}

func (cs *CellSet) String() string {
	if cs == nil {
		return "CellSet(nil)"
	}
	dims := make([]string, len(cs.Axes))
	for i := range cs.Axes {
		dims[i] = fmt.Sprintf("%dx%d", cs.Axes[i].Len(), cs.Axes[i].Depth())
	}
	return fmt.Sprintf("CellSet(axes=%v cells=%d)", dims, len(cs.Cells))
}
