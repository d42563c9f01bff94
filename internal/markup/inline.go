package markup

import "strings"

// inlinePiece is one slice of a paragraph's content: a run of styled text,
// an embedded object, or an isolated quote's placeholder token. Objects and
// quotes are never merged into text spans; they surface as blocks of their
// own.
type inlinePiece struct {
	spans  []FormatSpan
	object BlockNode // *Image or *Audio
	quote  string    // placeholder token from isolateQuotes
}

// inlineTags are the wrapper tags the span scanner understands. Everything
// else found inside a paragraph is dropped.
var inlineFormats = map[string]FormatKind{
	"b":          FormatBold,
	"i":          FormatItalic,
	"u":          FormatUnderline,
	"del":        FormatStrikethrough,
	"background": FormatHighlight,
}

var headingTags = map[string]HeadingLevel{
	"h1": Heading1,
	"h2": Heading2,
	"h3": Heading3,
}

// detectAlignment finds the paragraph's alignment wrapper, if any. The
// wrappers are not inline formats: they are read once, before the span scan,
// and the scan then skips them.
func detectAlignment(content string) Alignment {
	center, hasCenter := findOpening(content, 0, "center")
	right, hasRight := findOpening(content, 0, "right")
	switch {
	case hasCenter && (!hasRight || center.start < right.start):
		return AlignCenter
	case hasRight:
		return AlignRight
	default:
		return AlignLeft
	}
}

// findOpening locates the first opening tag with the given name. A stray
// closer carries no alignment of its own.
func findOpening(s string, i int, name string) (tag, bool) {
	t, ok := findTag(s, i, name)
	for ok && t.closing {
		t, ok = findTag(s, t.end, name)
	}
	return t, ok
}

// inlineScanner walks one paragraph's inner markup left to right keeping a
// count of open tags per format. Counting instead of strict pairing makes
// interleaved and repeated same-name tags behave: a format stays active
// while at least one of its openers is unclosed.
type inlineScanner struct {
	counts   map[FormatKind]int
	colors   []RGBA
	headings []HeadingLevel
	buf      strings.Builder
	spans    []FormatSpan
	pieces   []inlinePiece
}

// parseInline converts one paragraph's inner markup into styled pieces plus
// the block alignment. The content is still entity-encoded; text is decoded
// at flush time so entities never hide a tag boundary.
func parseInline(content string) ([]inlinePiece, Alignment) {
	align := detectAlignment(content)

	sc := &inlineScanner{counts: make(map[FormatKind]int)}
	i := 0
	for i < len(content) {
		if content[i] == placeholderSuffix[0] {
			if token, end, ok := scanPlaceholder(content, i); ok {
				sc.flushPiece()
				sc.pieces = append(sc.pieces, inlinePiece{quote: token})
				i = end
				continue
			}
		}
		if content[i] != '<' {
			sc.buf.WriteByte(content[i])
			i++
			continue
		}
		t, ok := scanTag(content, i)
		if !ok {
			sc.buf.WriteByte('<')
			i++
			continue
		}
		switch {
		case t.name == "center" || t.name == "right":
			// Already accounted for by detectAlignment.
		case t.name == tagImage:
			sc.flushPiece()
			sc.pieces = append(sc.pieces, inlinePiece{object: buildImage(t)})
		case t.name == tagAudio:
			sc.flushPiece()
			sc.pieces = append(sc.pieces, inlinePiece{object: buildAudio(t)})
		case sc.applyFormat(t):
		case sc.applyHeading(t):
		default:
			// Unsupported inline tag: drop it, keep the surrounding text.
		}
		i = t.end
	}
	sc.flushPiece()
	return sc.pieces, align
}

func (sc *inlineScanner) applyFormat(t tag) bool {
	kind, ok := inlineFormats[t.name]
	if !ok {
		return false
	}
	sc.flushText()
	switch {
	case t.closing && kind == FormatHighlight:
		if len(sc.colors) > 0 {
			sc.colors = sc.colors[:len(sc.colors)-1]
		}
	case t.closing:
		if sc.counts[kind] > 0 {
			sc.counts[kind]--
		}
	case kind == FormatHighlight:
		raw, _ := t.attr(attrColor)
		color, err := ParseRGBA(strings.TrimSpace(raw))
		if err != nil {
			// A highlight without a readable color adds nothing.
			color = RGBA{}
		}
		sc.colors = append(sc.colors, color)
	default:
		sc.counts[kind]++
	}
	return true
}

func (sc *inlineScanner) applyHeading(t tag) bool {
	level, ok := headingTags[t.name]
	if !ok {
		return false
	}
	sc.flushText()
	if t.closing {
		if len(sc.headings) > 0 {
			sc.headings = sc.headings[:len(sc.headings)-1]
		}
	} else {
		sc.headings = append(sc.headings, level)
	}
	return true
}

// flushText turns the buffered characters into a span carrying the styles
// active right now.
func (sc *inlineScanner) flushText() {
	if sc.buf.Len() == 0 {
		return
	}
	span := FormatSpan{Text: Unescape(sc.buf.String())}
	for kind, n := range sc.counts {
		if n > 0 {
			span.Formats = span.Formats.With(kind)
		}
	}
	if len(sc.colors) > 0 {
		span.Formats = span.Formats.With(FormatHighlight)
		span.Highlight = sc.colors[len(sc.colors)-1]
	}
	if len(sc.headings) > 0 {
		span.Heading = sc.headings[len(sc.headings)-1]
	}
	sc.spans = append(sc.spans, span)
	sc.buf.Reset()
}

// flushPiece closes the current text piece, typically because an embedded
// object or the end of the paragraph was reached.
func (sc *inlineScanner) flushPiece() {
	sc.flushText()
	if len(sc.spans) == 0 {
		return
	}
	sc.pieces = append(sc.pieces, inlinePiece{spans: sc.spans})
	sc.spans = nil
}
