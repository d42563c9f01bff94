package markup

// FormatKind is one inline format a character run can carry.
type FormatKind uint8

const (
	FormatBold FormatKind = 1 << iota
	FormatItalic
	FormatUnderline
	FormatStrikethrough
	FormatHighlight
)

// FormatSet is a combination of inline formats.
type FormatSet uint8

func (s FormatSet) Has(k FormatKind) bool { return s&FormatSet(k) != 0 }
func (s FormatSet) With(k FormatKind) FormatSet { return s | FormatSet(k) }
func (s FormatSet) Without(k FormatKind) FormatSet { return s &^ FormatSet(k) }
func (s FormatSet) IsEmpty() bool { return s == 0 }

// FormatSpan is a flat run of characters plus the formats active over it.
// It only exists between the inline tag parser and the span merger; the
// public representation is the recursive InlineNode tree.
type FormatSpan struct {
	Text      string
	Formats   FormatSet
	Highlight RGBA // meaningful when Formats.Has(FormatHighlight)
	Heading   HeadingLevel
}

// SameStyle reports whether two spans can be merged into one.
func (s FormatSpan) SameStyle(o FormatSpan) bool {
	if s.Formats != o.Formats || s.Heading != o.Heading {
		return false
	}
	if s.Formats.Has(FormatHighlight) && s.Highlight != o.Highlight {
		return false
	}
	return true
}
