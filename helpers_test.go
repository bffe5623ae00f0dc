package pivotgrid

import "fmt"

func member(unique, caption string, depth int) Member {
	return Member{UniqueName: unique, Caption: caption, LevelDepth: depth}
}

func tuple(ms ...Member) Tuple { return Tuple{Members: ms} }

// yearQuarterSet has two years of four quarters on columns and three product
// categories on rows. Cell values are their ordinal as float64.
func yearQuarterSet() *CellSet {
	var columns []Tuple
	for _, y := range []string{"2023", "2024"} {
		year := member("[Date].["+y+"]", y, 1)
		for q := 1; q <= 4; q++ {
			quarter := member(fmt.Sprintf("[Date].[%s].[Q%d]", y, q), fmt.Sprintf("Q%d", q), 2)
			columns = append(columns, tuple(year, quarter))
		}
	}
	var rows []Tuple
	for _, c := range []string{"Bikes", "Clothing", "Accessories"} {
		rows = append(rows, tuple(member("[Product].["+c+"]", c, 1)))
	}
	cells := make([]Cell, len(columns)*len(rows))
	for i := range cells {
		cells[i] = Cell{Value: float64(i)}
	}
	return &CellSet{
		Axes:  []Axis{{Name: "columns", Tuples: columns}, {Name: "rows", Tuples: rows}},
		Cells: cells,
	}
}

// depthRows builds a single-column result whose row leaf members have the
// given level depths.
func depthRows(depths ...int) *CellSet {
	cs := &CellSet{
		Axes: []Axis{
			{Tuples: []Tuple{tuple(member("[Measures].[Amount]", "Amount", 1))}},
			{},
		},
	}
	for i, d := range depths {
		cs.Axes[1].Tuples = append(cs.Axes[1].Tuples, tuple(member(fmt.Sprintf("[Org].[%d]", i), fmt.Sprintf("Unit %d", i), d)))
		cs.Cells = append(cs.Cells, Cell{Value: i})
	}
	return cs
}
