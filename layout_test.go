package pivotgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/pivotgrid/errors"
)

func TestPlanGeometry(t *testing.T) {
	t.Run("two axes", func(t *testing.T) {
		g, err := PlanGeometry(yearQuarterSet(), false)
		require.NoError(t, err)
		assert.Equal(t, Geometry{Axes: 2, ColumnLines: 2, RowLines: 1, Columns: 8, Rows: 3}, g)
		assert.Equal(t, 9, g.Width())
		assert.Equal(t, 5, g.Height())
	})

	t.Run("no axes", func(t *testing.T) {
		g, err := PlanGeometry(&CellSet{}, true)
		require.NoError(t, err)
		assert.True(t, g.Empty())
		assert.Zero(t, g.Width())
		assert.Zero(t, g.Height())
	})

	t.Run("too many axes", func(t *testing.T) {
		_, err := PlanGeometry(&CellSet{Axes: make([]Axis, 3)}, false)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedGeometry))
	})

	t.Run("single axis", func(t *testing.T) {
		cs := &CellSet{Axes: []Axis{{Tuples: []Tuple{
			tuple(member("a", "A", 1)), tuple(member("b", "B", 1)), tuple(member("c", "C", 1)),
		}}}}
		g, err := PlanGeometry(cs, false)
		require.NoError(t, err)
		assert.Equal(t, 0, g.RowLines)
		assert.Equal(t, 1, g.BodyRows())
		assert.Equal(t, 3, g.Width())

		g, err = PlanGeometry(cs, true)
		require.NoError(t, err)
		assert.Equal(t, 1, g.RowLines)
		assert.Equal(t, 4, g.Width())
	})
}

func TestHeaderSpans(t *testing.T) {
	cs := yearQuarterSet()
	spans := HeaderSpans(cs.Axes[0].Tuples, 2)

	var outer, inner []HeaderSpan
	for _, s := range spans {
		if s.Line == 0 {
			outer = append(outer, s)
		} else {
			inner = append(inner, s)
		}
	}
	require.Len(t, outer, 2)
	assert.Equal(t, 4, outer[0].Width())
	assert.Equal(t, "2023", outer[0].Member.Caption)
	assert.Equal(t, 4, outer[1].Width())
	assert.Equal(t, 4, outer[1].Start)

	require.Len(t, inner, 8)
	for _, s := range inner {
		assert.Equal(t, 1, s.Width())
	}
}

func TestHeaderSpansRequireAdjacency(t *testing.T) {
	a, b := member("a", "A", 1), member("b", "B", 1)
	leaf := func(n string) Member { return member(n, n, 2) }
	tuples := []Tuple{
		tuple(a, leaf("1")), tuple(a, leaf("2")), tuple(b, leaf("3")), tuple(a, leaf("4")),
	}

	var widths []int
	for _, s := range HeaderSpans(tuples, 2) {
		if s.Line == 0 {
			widths = append(widths, s.Width())
		}
	}
	assert.Equal(t, []int{2, 1, 1}, widths)
}

func TestHeaderSpansLastLineNeverMerges(t *testing.T) {
	same := member("x", "X", 1)
	spans := HeaderSpans([]Tuple{tuple(same), tuple(same), tuple(same)}, 1)
	assert.Len(t, spans, 3)
}

func TestTupleGrouping(t *testing.T) {
	tuples := yearQuarterSet().Axes[0].Tuples
	assert.Equal(t, []int{4, 4}, TupleGrouping(tuples, 1))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1}, TupleGrouping(tuples, 2))
	assert.Nil(t, TupleGrouping(nil, 1))
}

func TestIndentLabel(t *testing.T) {
	assert.Equal(t, "", IndentLabel("&ensp;", 0))
	assert.Equal(t, "&ensp;&ensp;&ensp;", IndentLabel("&ensp;", 3))
	assert.Equal(t, "      ", IndentLabel("   ", 2))
}

func TestOutlineGroups(t *testing.T) {
	tests := []struct {
		name   string
		depths []int
		groups []OutlineGroup
		levels []int
	}{
		{
			name:   "nested groups close on return to top",
			depths: []int{1, 2, 2, 3, 1},
			groups: []OutlineGroup{{Start: 3, End: 4, Level: 2}, {Start: 1, End: 4, Level: 1}},
			levels: []int{0, 1, 1, 2, 0},
		},
		{
			name:   "open groups close at the end",
			depths: []int{1, 2, 2},
			groups: []OutlineGroup{{Start: 1, End: 3, Level: 1}},
			levels: []int{0, 1, 1},
		},
		{
			name:   "separated runs stay separate",
			depths: []int{1, 2, 1, 2},
			groups: []OutlineGroup{{Start: 1, End: 2, Level: 1}, {Start: 3, End: 4, Level: 1}},
			levels: []int{0, 1, 0, 1},
		},
		{
			name:   "flat",
			depths: []int{1, 1, 1},
			levels: []int{0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuples := depthRows(tt.depths...).Axes[1].Tuples
			groups := OutlineGroups(tuples)
			assert.Equal(t, tt.groups, groups)
			assert.Equal(t, tt.levels, OutlineLevels(groups, len(tuples)))
		})
	}
}

func TestCaptionFor(t *testing.T) {
	m := member("[Date].[2023]", "2023", 1)
	m.Properties = Properties{"KEY": "Y23"}
	bare := member("[Date].[2024]", "2024", 1)
	rules := []DynamicCaption{{Level: 1, Property: "KEY"}}

	assert.Equal(t, "Y23", captionFor(&m, 0, rules))
	assert.Equal(t, "2024", captionFor(&bare, 0, rules))
	assert.Equal(t, "2023", captionFor(&m, 1, rules))
	assert.Equal(t, "2023", captionFor(&m, 0, nil))
}

func TestMatchesPath(t *testing.T) {
	tp := tuple(member("a", "A", 1), member("a.1", "1", 2))
	assert.True(t, matchesPath(tp, []string{"a"}))
	assert.True(t, matchesPath(tp, []string{"a", "a.1"}))
	assert.True(t, matchesPath(tp, []string{"a", "a.1", "extra"}))
	assert.False(t, matchesPath(tp, []string{"b"}))
	assert.False(t, matchesPath(tp, []string{"a", "a.2"}))
}
