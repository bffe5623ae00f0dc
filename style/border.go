package style

// BorderStyle is the line style of one border edge.
type BorderStyle string

const (
	BorderNone   BorderStyle = "none"
	BorderThin   BorderStyle = "thin"
	BorderMedium BorderStyle = "medium"
	BorderThick  BorderStyle = "thick"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
	BorderHair   BorderStyle = "hair"
)

// Valid reports whether s is empty or a known border style.
func (s BorderStyle) Valid() bool {
	switch s {
	case "", BorderNone, BorderThin, BorderMedium, BorderThick, BorderDashed, BorderDotted, BorderDouble, BorderHair:
		return true
	}
	return false
}

// Edge selects a cell edge.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
	EdgeDiagonalUp
	EdgeDiagonalDown

	EdgeCount
)

var edgeNames = [...]string{"left", "right", "top", "bottom", "diagonal-up", "diagonal-down"}

func (e Edge) String() string {
	if e < 0 || e >= EdgeCount {
		return "unknown"
	}
	return edgeNames[e]
}

// BorderItem is the style and colour of one edge. Empty fields are left
// untouched when applied.
type BorderItem struct {
	Style BorderStyle `koanf:"style"`
	Color Color       `koanf:"color"`
}

func (b BorderItem) IsZero() bool { return b == BorderItem{} }

// Merge returns b with the fields set in over replaced.
func (b BorderItem) Merge(over BorderItem) BorderItem {
	if over.Style != "" {
		b.Style = over.Style
	}
	if over.Color != "" {
		b.Color = over.Color
	}
	return b
}

func (b *BorderItem) clone() *BorderItem {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

// BorderRange describes the borders of a rectangle: its outline, a diagonal on
// every cell, and the inner horizontal and vertical lines.
type BorderRange struct {
	Left       *BorderItem `koanf:"left"`
	Right      *BorderItem `koanf:"right"`
	Top        *BorderItem `koanf:"top"`
	Bottom     *BorderItem `koanf:"bottom"`
	Diagonal   *BorderItem `koanf:"diagonal"`
	Horizontal *BorderItem `koanf:"horizontal"`
	Vertical   *BorderItem `koanf:"vertical"`

	// DiagonalUp draws the diagonal from bottom left to top right.
	DiagonalUp bool `koanf:"diagonal_up"`
	// DiagonalDown draws the diagonal from top left to bottom right.
	DiagonalDown bool `koanf:"diagonal_down"`
}

// Apply draws the borders on r.
//
// Without grouping the inner horizontal lines separate every row and the inner
// vertical lines every column. hGroups and vGroups hold consecutive group sizes
// (e.g. {2, 1}); the inner line is then drawn only after each group but the last.
func (b *BorderRange) Apply(t Target, r Rect, hGroups, vGroups []int) error {
	if b == nil || r.Empty() {
		return nil
	}

	outline := []struct {
		item *BorderItem
		rect Rect
		edge Edge
	}{
		{b.Left, Rect{r.Top, r.Left, r.Bottom, r.Left}, EdgeLeft},
		{b.Right, Rect{r.Top, r.Right, r.Bottom, r.Right}, EdgeRight},
		{b.Top, Rect{r.Top, r.Left, r.Top, r.Right}, EdgeTop},
		{b.Bottom, Rect{r.Bottom, r.Left, r.Bottom, r.Right}, EdgeBottom},
	}
	for _, o := range outline {
		if o.item == nil {
			continue
		}
		if err := t.ApplyBorder(o.rect, o.edge, *o.item); err != nil {
			return err
		}
	}

	if b.Diagonal != nil {
		if b.DiagonalUp {
			if err := t.ApplyBorder(r, EdgeDiagonalUp, *b.Diagonal); err != nil {
				return err
			}
		}
		if b.DiagonalDown {
			if err := t.ApplyBorder(r, EdgeDiagonalDown, *b.Diagonal); err != nil {
				return err
			}
		}
	}

	if b.Horizontal != nil && r.Rows() > 1 {
		if hGroups == nil {
			inner := Rect{r.Top, r.Left, r.Bottom - 1, r.Right}
			if err := t.ApplyBorder(inner, EdgeBottom, *b.Horizontal); err != nil {
				return err
			}
		} else {
			preceding := 0
			for g := 0; g < len(hGroups)-1; g++ {
				row := r.Top + preceding + hGroups[g] - 1
				if err := t.ApplyBorder(Rect{row, r.Left, row, r.Right}, EdgeBottom, *b.Horizontal); err != nil {
					return err
				}
				preceding += hGroups[g]
			}
		}
	}

	if b.Vertical != nil && r.Cols() > 1 {
		if vGroups == nil {
			inner := Rect{r.Top, r.Left, r.Bottom, r.Right - 1}
			if err := t.ApplyBorder(inner, EdgeRight, *b.Vertical); err != nil {
				return err
			}
		} else {
			preceding := 0
			for g := 0; g < len(vGroups)-1; g++ {
				col := r.Left + preceding + vGroups[g] - 1
				if err := t.ApplyBorder(Rect{r.Top, col, r.Bottom, col}, EdgeRight, *b.Vertical); err != nil {
					return err
				}
				preceding += vGroups[g]
			}
		}
	}
	return nil
}

// Clone returns a deep copy.
func (b *BorderRange) Clone() *BorderRange {
	if b == nil {
		return nil
	}
	c := *b
	c.Left = b.Left.clone()
	c.Right = b.Right.clone()
	c.Top = b.Top.clone()
	c.Bottom = b.Bottom.clone()
	c.Diagonal = b.Diagonal.clone()
	c.Horizontal = b.Horizontal.clone()
	c.Vertical = b.Vertical.clone()
	return &c
}

func (b *BorderRange) items() []*BorderItem {
	return []*BorderItem{b.Left, b.Right, b.Top, b.Bottom, b.Diagonal, b.Horizontal, b.Vertical}
}

func (b *BorderRange) validate() error {
	if b == nil {
		return nil
	}
	for _, it := range b.items() {
		if it != nil && !it.Style.Valid() {
			return errUnknownBorderStyle(it.Style)
		}
	}
	return nil
}

func (b *BorderRange) normalize() error {
	if b == nil {
		return nil
	}
	for _, it := range b.items() {
		if it == nil {
			continue
		}
		if err := normalizeColor(&it.Color); err != nil {
			return err
		}
	}
	return nil
}

// Solid returns a border item with the given style and colour.
func Solid(s BorderStyle, c Color) *BorderItem {
	return &BorderItem{Style: s, Color: c}
}

// Outline returns a border range with the same item on all four outer edges.
func Outline(s BorderStyle, c Color) *BorderRange {
	return &BorderRange{
		Left:   Solid(s, c),
		Right:  Solid(s, c),
		Top:    Solid(s, c),
		Bottom: Solid(s, c),
	}
}
