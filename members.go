package pivotgrid

import (
	"fmt"

	"github.com/aerissecure/pivotgrid/errors"
)

// AxisMember is one entry produced by AxisMembers.
type AxisMember struct {
	UniqueName string
	Value      string
}

// AxisMembers lists the first member of every tuple on the column axis. Value
// is the caption, or the named property when property is not empty. A tuple
// whose member lacks the property is an ErrNotFound error.
func AxisMembers(cs *CellSet, property string) ([]AxisMember, error) {
	axis := cs.ColumnAxis()
	if axis == nil {
		return nil, nil
	}
	out := make([]AxisMember, 0, axis.Len())
	for i, t := range axis.Tuples {
		if len(t.Members) == 0 {
			continue
		}
		m := t.Members[0]
		value := m.Caption
		if property != "" {
			v, ok := m.Properties.Find(property)
			if !ok {
				return nil, errors.Newf(errors.ErrNotFound,
					"member %s of tuple %d has no property %q", m.UniqueName, i, property).
					WithDetail("property", property)
			}
			value = ""
			if v != nil {
				value = fmt.Sprint(v)
			}
		}
		out = append(out, AxisMember{UniqueName: m.UniqueName, Value: value})
	}
	return out, nil
}
