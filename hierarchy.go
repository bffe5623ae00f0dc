package pivotgrid

import "strings"

// IndentLabel returns unit repeated depth times.
func IndentLabel(unit string, depth int) string {
	if depth <= 0 || unit == "" {
		return ""
	}
	return strings.Repeat(unit, depth)
}

// OutlineGroup is a collapsible band of body rows: rows [Start, End) form one
// group at nesting Level (1 is the outermost).
type OutlineGroup struct {
	Start int
	End   int
	Level int
}

// OutlineGroups derives nested row groups from the level depth of each
// tuple's leaf member. Rows deeper than their predecessor open a group per
// level gained; a shallower row closes every group deeper than itself.
// Groups still open after the last row close there, so trailing deep rows
// are outlined as well instead of being left ungrouped.
//
// Rows sharing an ancestor must be adjacent; separated runs produce separate
// groups.
func OutlineGroups(tuples []Tuple) []OutlineGroup {
	var (
		groups []OutlineGroup
		starts []int
	)
	closeTo := func(depth, row int) {
		for len(starts)+1 > depth && len(starts) > 0 {
			top := len(starts) - 1
			if starts[top] < row {
				groups = append(groups, OutlineGroup{Start: starts[top], End: row, Level: len(starts)})
			}
			starts = starts[:top]
		}
	}

	for i, t := range tuples {
		leaf := t.Leaf()
		if leaf == nil {
			continue
		}
		depth := leaf.LevelDepth
		for len(starts)+1 < depth {
			starts = append(starts, i)
		}
		closeTo(depth, i)
	}
	closeTo(1, len(tuples))
	return groups
}

// OutlineLevels returns the nesting level of each of n rows.
func OutlineLevels(groups []OutlineGroup, n int) []int {
	levels := make([]int, n)
	for _, g := range groups {
		for r := g.Start; r < g.End && r < n; r++ {
			if r >= 0 {
				levels[r]++
			}
		}
	}
	return levels
}
