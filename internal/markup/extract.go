package markup

import (
	"strings"

	"github.com/acckion/minotefmt/internal/core"
	"github.com/acckion/minotefmt/pkg/text"
)

type elementKind int

const (
	elemParagraph elementKind = iota // wrapped <text> or <title>
	elemBullet
	elemOrder
	elemCheckbox
	elemRule
	elemQuote     // placeholder produced by isolateQuotes
	elemImage
	elemAudio
	elemGap       // bare text sitting between elements
	elemMalformed // unreadable region, kept verbatim
)

// element is one block-level occurrence found by the extractor, in document
// order. content holds the inner markup of a wrapped paragraph, the trailing
// text of a standalone marker, or the raw characters of a gap or malformed
// region.
type element struct {
	kind    elementKind
	tag     tag
	title   bool
	content string
	token   string
}

var markerKinds = map[string]elementKind{
	tagBullet:   elemBullet,
	tagOrder:    elemOrder,
	tagCheckbox: elemCheckbox,
	tagRule:     elemRule,
}

// extractElements scans a whole document (or one quote's inner markup) for
// block-level occurrences. Wrapped paragraphs and standalone markers are
// located independently by their opening grammar and merged by position;
// each standalone marker then claims the text up to the next newline or the
// next block tag, whichever comes first. Characters claimed by nothing
// become gap elements so no content is ever dropped silently.
func extractElements(s string) []element {
	var out []element
	var gap strings.Builder

	flushGap := func() {
		if gap.Len() == 0 {
			return
		}
		raw := gap.String()
		gap.Reset()
		if !text.IsBlank(raw) {
			out = append(out, element{kind: elemGap, content: strings.TrimSpace(raw)})
		}
	}

	i := 0
	for i < len(s) {
		switch s[i] {
		case placeholderSuffix[0]:
			if token, end, ok := scanPlaceholder(s, i); ok {
				flushGap()
				out = append(out, element{kind: elemQuote, token: token})
				i = end
				continue
			}
			gap.WriteByte(s[i])
			i++
		case '<':
			t, ok := scanTag(s, i)
			if !ok {
				gap.WriteByte('<')
				i++
				continue
			}
			el, next, used := classify(s, t)
			if used {
				flushGap()
				out = append(out, el)
			}
			i = next
		default:
			gap.WriteByte(s[i])
			i++
		}
	}
	flushGap()
	return out
}

// classify turns one scanned tag into an element (or skips it) and reports
// the position scanning should resume from.
func classify(s string, t tag) (element, int, bool) {
	if t.closing {
		// A closer without its opener carries no content of its own.
		return element{}, t.end, false
	}
	switch {
	case t.name == tagText || t.name == tagTitle:
		closer, ok := findClosing(s, t.end, t.name)
		if !ok {
			// Unterminated paragraph: keep the raw line as a malformed
			// region so the caller can degrade it to plain text.
			end := lineEnd(s, t.start)
			return element{kind: elemMalformed, content: s[t.start:end]}, end, true
		}
		el := element{
			kind:    elemParagraph,
			tag:     t,
			title:   t.name == tagTitle,
			content: s[t.end:closer.start],
		}
		return el, closer.end, true
	case t.name == tagImage:
		return element{kind: elemImage, tag: t}, t.end, true
	case t.name == tagAudio:
		return element{kind: elemAudio, tag: t}, t.end, true
	default:
		kind, ok := markerKinds[t.name]
		if !ok {
			core.CurrentLogger().Debugf("markup: %v: <%s> skipped", ErrUnsupportedElement, t.name)
			return element{}, t.end, false
		}
		end := trailingEnd(s, t.end)
		el := element{kind: kind, tag: t, content: strings.TrimSpace(s[t.end:end])}
		return el, end, true
	}
}

// findClosing locates the matching closer of a wrapped paragraph. Quotes are
// already isolated, so the first closer is the matching one.
func findClosing(s string, i int, name string) (tag, bool) {
	t, ok := findTag(s, i, name)
	for ok && !t.closing {
		t, ok = findTag(s, t.end, name)
	}
	return t, ok
}

// trailingEnd computes where a standalone marker's content stops: the next
// newline or the next block-level tag, whichever comes first. Inline format
// tags pass through; they belong to the content.
func trailingEnd(s string, j int) int {
	for j < len(s) {
		switch s[j] {
		case '\n':
			return j
		case placeholderSuffix[0]:
			if _, _, ok := scanPlaceholder(s, j); ok {
				return j
			}
		case '<':
			if t, ok := scanTag(s, j); ok && !t.closing && blockTags[t.name] {
				return j
			}
		}
		j++
	}
	return j
}

func lineEnd(s string, i int) int {
	if nl := strings.IndexByte(s[i:], '\n'); nl >= 0 {
		return i + nl
	}
	return len(s)
}
