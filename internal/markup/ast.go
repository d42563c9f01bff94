// Package markup converts between the MiNote tag dialect and an in-memory
// styled-document tree, and canonicalizes markup strings so two different
// serializations of the same note can be compared for equality.
package markup

import "fmt"

// Document is the root of a parsed note: an ordered sequence of blocks.
// The order is reading order.
type Document struct {
	Blocks []BlockNode
}

// EmptyDocument has no blocks. It is distinct from a document containing a
// single empty paragraph (a blank line).
var EmptyDocument = &Document{}

// IsEmpty returns whether the document contains no blocks at all.
func (d *Document) IsEmpty() bool {
	return len(d.Blocks) == 0
}

// BlockNode is one block-level unit of a document.
type BlockNode interface {
	blockNode()
}

// Alignment positions a paragraph's text inside the note.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// HeadingLevel is a discrete font-size class. Zero means body text.
type HeadingLevel int

const (
	HeadingNone HeadingLevel = 0
	Heading1    HeadingLevel = 1
	Heading2    HeadingLevel = 2
	Heading3    HeadingLevel = 3
)

// FontSize returns the point size the client renders for the level.
func (h HeadingLevel) FontSize() int {
	switch h {
	case Heading1:
		return 23
	case Heading2:
		return 20
	case Heading3:
		return 17
	default:
		return 0
	}
}

// Title is the note title paragraph. It carries no indent and appears at
// most once, always as the first block.
type Title struct {
	Content []InlineNode
}

// Text is a regular paragraph. An empty Content represents a blank line and
// must survive a round-trip as one.
type Text struct {
	Indent  int // >= 1
	Align   Alignment
	Heading HeadingLevel
	Content []InlineNode
}

// BulletItem is one unordered list item.
type BulletItem struct {
	Indent  int // >= 1
	Content []InlineNode
}

// OrderedItem is one ordered list item. Display is the absolute number shown
// to the user; the markup stores a delta-encoded value instead (see
// numbering.go).
type OrderedItem struct {
	Indent  int // >= 1
	Display int // >= 1
	Content []InlineNode
}

// CheckboxItem is one checklist item.
type CheckboxItem struct {
	Indent  int // >= 1
	Level   int
	Checked bool
	Content []InlineNode
}

// HorizontalRule is a separator line.
type HorizontalRule struct{}

// Quote is a block quote. Blocks never contains another Quote.
type Quote struct {
	Blocks []BlockNode
}

// Image references a stored image by file ID. LegacySrc carries the relative
// path used by old clients before file IDs existed. Zero Width/Height means
// unset.
type Image struct {
	FileID      string
	LegacySrc   string
	Description string
	Show        bool
	Width       int
	Height      int
}

// Audio references a stored voice memo. Temporary marks a recording that has
// not been uploaded yet.
type Audio struct {
	FileID    string
	Temporary bool
}

func (*Title) blockNode()          {}
func (*Text) blockNode()           {}
func (*BulletItem) blockNode()     {}
func (*OrderedItem) blockNode()    {}
func (*CheckboxItem) blockNode()   {}
func (*HorizontalRule) blockNode() {}
func (*Quote) blockNode()          {}
func (*Image) blockNode()          {}
func (*Audio) blockNode()          {}

// InlineNode is one node of a paragraph's styled-text tree.
type InlineNode interface {
	inlineNode()
}

// PlainText is a leaf run of unformatted characters.
type PlainText struct {
	Text string
}

// Bold wraps its content in bold.
type Bold struct {
	Content []InlineNode
}

// Italic wraps its content in italics.
type Italic struct {
	Content []InlineNode
}

// Underline wraps its content in an underline.
type Underline struct {
	Content []InlineNode
}

// Strikethrough wraps its content in a strikethrough.
type Strikethrough struct {
	Content []InlineNode
}

// Highlight wraps its content in a background color.
type Highlight struct {
	Color   RGBA
	Content []InlineNode
}

func (*PlainText) inlineNode()     {}
func (*Bold) inlineNode()          {}
func (*Italic) inlineNode()        {}
func (*Underline) inlineNode()     {}
func (*Strikethrough) inlineNode() {}
func (*Highlight) inlineNode()     {}

// Plain wraps a string into a single-leaf inline sequence.
func Plain(text string) []InlineNode {
	return []InlineNode{&PlainText{Text: text}}
}

// InlineText flattens an inline tree back to its raw characters, dropping
// all formatting.
func InlineText(nodes []InlineNode) string {
	var out string
	for _, n := range nodes {
		switch n := n.(type) {
		case *PlainText:
			out += n.Text
		case *Bold:
			out += InlineText(n.Content)
		case *Italic:
			out += InlineText(n.Content)
		case *Underline:
			out += InlineText(n.Content)
		case *Strikethrough:
			out += InlineText(n.Content)
		case *Highlight:
			out += InlineText(n.Content)
		}
	}
	return out
}

// RGBA is a highlight color. HasAlpha distinguishes "#RRGGBB" from
// "#RRGGBBAA" so the original spelling survives a round-trip.
type RGBA struct {
	R, G, B  uint8
	A        uint8
	HasAlpha bool
}

// String renders the color in the canonical uppercase hex form.
func (c RGBA) String() string {
	if c.HasAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseRGBA reads a "#RRGGBB" or "#RRGGBBAA" color. It is lenient about
// case but not about shape.
func ParseRGBA(s string) (RGBA, error) {
	if len(s) != 7 && len(s) != 9 {
		return RGBA{}, fmt.Errorf("%w: color %q", ErrMalformedInput, s)
	}
	if s[0] != '#' {
		return RGBA{}, fmt.Errorf("%w: color %q", ErrMalformedInput, s)
	}
	var c RGBA
	parts := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i*2+2 < len(s); i++ {
		hi, ok1 := hexDigit(s[1+i*2])
		lo, ok2 := hexDigit(s[2+i*2])
		if !ok1 || !ok2 {
			return RGBA{}, fmt.Errorf("%w: color %q", ErrMalformedInput, s)
		}
		*parts[i] = hi<<4 | lo
	}
	c.HasAlpha = len(s) == 9
	return c, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
