package style

import "fmt"

// Rect is an inclusive cell rectangle in grid coordinates (0-based, row 0 is the
// first header line, column 0 the first row-label column).
type Rect struct {
	Top, Left, Bottom, Right int
}

func (r Rect) Rows() int { return r.Bottom - r.Top + 1 }
func (r Rect) Cols() int { return r.Right - r.Left + 1 }

// Empty reports whether the rectangle covers no cell.
func (r Rect) Empty() bool { return r.Rows() <= 0 || r.Cols() <= 0 }

// Row returns the i-th row of r as a rectangle.
func (r Rect) Row(i int) Rect { return Rect{Top: r.Top + i, Left: r.Left, Bottom: r.Top + i, Right: r.Right} }

// Col returns the i-th column of r as a rectangle.
func (r Rect) Col(i int) Rect { return Rect{Top: r.Top, Left: r.Left + i, Bottom: r.Bottom, Right: r.Left + i} }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Top, r.Left, r.Bottom, r.Right)
}

// Target receives resolved styling decisions. Attributes are additive: a later
// call overrides only the attributes it sets.
type Target interface {
	ApplyStyle(r Rect, a Attributes) error
	ApplyBorder(r Rect, e Edge, b BorderItem) error
}
