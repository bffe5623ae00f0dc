package style

// Toggle is a tri-state flag: templates may leave a font flag untouched,
// switch it off, or switch it on.
type Toggle int8

const (
	Unset Toggle = iota
	Off
	On
)

// ToggleOf converts an optional bool into a Toggle.
func ToggleOf(b *bool) Toggle {
	switch {
	case b == nil:
		return Unset
	case *b:
		return On
	default:
		return Off
	}
}

// Bool reports whether the toggle is switched on.
func (t Toggle) Bool() bool { return t == On }

// HAlign is a horizontal alignment.
type HAlign string

const (
	HAlignGeneral HAlign = "general"
	HAlignLeft    HAlign = "left"
	HAlignCenter  HAlign = "center"
	HAlignRight   HAlign = "right"
	HAlignJustify HAlign = "justify"
)

// VAlign is a vertical alignment.
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignCenter VAlign = "center"
	VAlignBottom VAlign = "bottom"
)

// Attributes is the resolved, target-neutral presentation of a cell. Zero values
// mean "not set" so attribute sets can be layered with Merge.
type Attributes struct {
	Background   Color
	FontColor    Color
	FontName     string
	FontSize     float64
	Bold         Toggle
	Italic       Toggle
	Underline    Toggle
	Strike       Toggle
	HAlign       HAlign
	VAlign       VAlign
	NumberFormat string
}

// IsZero reports whether no attribute is set.
func (a Attributes) IsZero() bool { return a == Attributes{} }

// Merge returns a with every attribute that is set in over replaced.
func (a Attributes) Merge(over Attributes) Attributes {
	if over.Background != "" {
		a.Background = over.Background
	}
	if over.FontColor != "" {
		a.FontColor = over.FontColor
	}
	if over.FontName != "" {
		a.FontName = over.FontName
	}
	if over.FontSize > 0 {
		a.FontSize = over.FontSize
	}
	if over.Bold != Unset {
		a.Bold = over.Bold
	}
	if over.Italic != Unset {
		a.Italic = over.Italic
	}
	if over.Underline != Unset {
		a.Underline = over.Underline
	}
	if over.Strike != Unset {
		a.Strike = over.Strike
	}
	if over.HAlign != "" {
		a.HAlign = over.HAlign
	}
	if over.VAlign != "" {
		a.VAlign = over.VAlign
	}
	if over.NumberFormat != "" {
		a.NumberFormat = over.NumberFormat
	}
	return a
}
