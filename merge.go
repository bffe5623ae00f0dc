package pivotgrid

// HeaderSpan is one header cell of the column axis. Start and End are
// inclusive tuple positions.
type HeaderSpan struct {
	Line   int
	Start  int
	End    int
	Member *Member
}

// Width returns the number of columns the span covers.
func (s HeaderSpan) Width() int { return s.End - s.Start + 1 }

// HeaderSpans computes the header cells for the first lines levels of tuples,
// line by line. On every line but the last, maximal runs of adjacent tuples
// whose member has the same unique name collapse into one span; the last line
// keeps one span per tuple.
func HeaderSpans(tuples []Tuple, lines int) []HeaderSpan {
	var spans []HeaderSpan
	for line := 0; line < lines; line++ {
		last := line == lines-1
		for i := 0; i < len(tuples); {
			member := &tuples[i].Members[line]
			end := i
			if !last {
				for end+1 < len(tuples) && tuples[end+1].Members[line].UniqueName == member.UniqueName {
					end++
				}
			}
			spans = append(spans, HeaderSpan{Line: line, Start: i, End: end, Member: member})
			i = end + 1
		}
	}
	return spans
}

// TupleGrouping returns the lengths of the runs of adjacent tuples sharing
// the member at the 1-based level. The lengths sum to len(tuples).
func TupleGrouping(tuples []Tuple, level int) []int {
	if len(tuples) == 0 || level < 1 {
		return nil
	}
	groups := []int{0}
	last := ""
	for i, t := range tuples {
		name := t.Members[level-1].UniqueName
		if i == 0 || name == last {
			groups[len(groups)-1]++
		} else {
			groups = append(groups, 1)
		}
		last = name
	}
	return groups
}
