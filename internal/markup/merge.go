package markup

// Canonical wrap order, outermost first. The heading wrapper sits outside
// all of these but is realized at block level (see buildParagraph), so the
// inline fold only handles the five character formats. The markup has no
// other way to express nesting order than tag position, which is why both
// the merger and the generator must agree on this list.
var wrapOrder = []FormatKind{
	FormatHighlight,
	FormatStrikethrough,
	FormatUnderline,
	FormatItalic,
	FormatBold,
}

// MergeSpans coalesces adjacent spans with identical style. Without this
// pass a re-generated document would grow one tag pair per original tag
// boundary and round-trips would not be stable.
func MergeSpans(spans []FormatSpan) []FormatSpan {
	var out []FormatSpan
	for _, span := range spans {
		if span.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].SameStyle(span) {
			out[n-1].Text += span.Text
			continue
		}
		out = append(out, span)
	}
	return out
}

// SpansToInline converts merged spans into the canonical inline tree. Each
// span becomes a PlainText leaf wrapped from the innermost format outward;
// spans stay siblings at the top level.
func SpansToInline(spans []FormatSpan) []InlineNode {
	var out []InlineNode
	for _, span := range spans {
		out = append(out, wrapSpan(span))
	}
	return out
}

func wrapSpan(span FormatSpan) InlineNode {
	var node InlineNode = &PlainText{Text: span.Text}
	for i := len(wrapOrder) - 1; i >= 0; i-- {
		kind := wrapOrder[i]
		if !span.Formats.Has(kind) {
			continue
		}
		content := []InlineNode{node}
		switch kind {
		case FormatBold:
			node = &Bold{Content: content}
		case FormatItalic:
			node = &Italic{Content: content}
		case FormatUnderline:
			node = &Underline{Content: content}
		case FormatStrikethrough:
			node = &Strikethrough{Content: content}
		case FormatHighlight:
			node = &Highlight{Color: span.Highlight, Content: content}
		}
	}
	return node
}
