package pivotgrid

import "fmt"

// DynamicCaption shows a member property instead of the caption for members
// at a 1-based tuple level.
type DynamicCaption struct {
	Level    int    `koanf:"level" yaml:"level"`
	Property string `koanf:"property" yaml:"property"`
}

// CaptionProperty is the default property shown by a dynamic caption.
const CaptionProperty = "CAPTION"

// captionFor returns the text displayed for m at the 0-based line. The first
// rule matching the line wins; a missing property falls back to the caption.
func captionFor(m *Member, line int, rules []DynamicCaption) string {
	for _, rule := range rules {
		if rule.Level != line+1 {
			continue
		}
		name := rule.Property
		if name == "" {
			name = CaptionProperty
		}
		if v, ok := m.Properties.Find(name); ok && v != nil {
			return fmt.Sprint(v)
		}
		return m.Caption
	}
	return m.Caption
}
