package markup

import (
	"sort"
	"strings"
)

// The dialect escapes exactly the four XML metacharacters. Anything else,
// including apostrophes, is stored verbatim.
var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	textUnescaper = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&amp;", "&",
	)
)

// Escape encodes the four metacharacters of the dialect.
func Escape(s string) string {
	return textEscaper.Replace(s)
}

// Unescape decodes the four metacharacters of the dialect.
func Unescape(s string) string {
	return textUnescaper.Replace(s)
}

// attr is one key/value pair of a tag. Order is preserved as written so the
// canonicalizer can decide how to reorder.
type attr struct {
	key   string
	value string
}

// tag is one scanned tag occurrence.
type tag struct {
	name       string
	attrs      []attr
	closing    bool // </name>
	selfClosed bool // <name ... />
	start      int  // index of '<'
	end        int  // index just past '>'
}

func (t tag) attr(key string) (string, bool) {
	for _, a := range t.attrs {
		if a.key == key {
			return a.value, true
		}
	}
	return "", false
}

func (t tag) sortedAttrs() []attr {
	out := make([]attr, len(t.attrs))
	copy(out, t.attrs)
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-'
}

// scanTag reads one tag starting at s[i] (which must be '<'). It reports
// false when the characters do not form a tag, in which case the caller
// treats the '<' as literal text. The scanner is a plain cursor walk: the
// dialect is too loose for an XML parser and too order-sensitive for regex
// substitutions.
func scanTag(s string, i int) (tag, bool) {
	t := tag{start: i}
	j := i + 1
	if j < len(s) && s[j] == '/' {
		t.closing = true
		j++
	}
	nameStart := j
	for j < len(s) && isNameByte(s[j]) {
		j++
	}
	if j == nameStart {
		return tag{}, false
	}
	t.name = s[nameStart:j]

	for {
		attrStart := j
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}
		if j >= len(s) {
			return tag{}, false
		}
		if s[j] == '>' {
			t.end = j + 1
			return t, true
		}
		if s[j] == '/' {
			if j+1 >= len(s) || s[j+1] != '>' {
				return tag{}, false
			}
			t.selfClosed = true
			t.end = j + 2
			return t, true
		}
		if t.closing || j == attrStart {
			// A closing tag takes no attributes, and attributes need at
			// least one separating space.
			return tag{}, false
		}
		keyStart := j
		for j < len(s) && isNameByte(s[j]) {
			j++
		}
		if j == keyStart || j >= len(s) || s[j] != '=' {
			return tag{}, false
		}
		key := s[keyStart:j]
		j++ // '='
		if j >= len(s) || s[j] != '"' {
			return tag{}, false
		}
		j++
		valueStart := j
		for j < len(s) && s[j] != '"' && s[j] != '\n' {
			j++
		}
		if j >= len(s) || s[j] != '"' {
			return tag{}, false
		}
		t.attrs = append(t.attrs, attr{key: key, value: s[valueStart:j]})
		j++
	}
}

// findTag returns the first occurrence of a tag with the given name at or
// after i, or ok=false.
func findTag(s string, i int, name string) (tag, bool) {
	for i < len(s) {
		lt := strings.IndexByte(s[i:], '<')
		if lt < 0 {
			return tag{}, false
		}
		i += lt
		if t, ok := scanTag(s, i); ok && t.name == name {
			return t, true
		}
		i++
	}
	return tag{}, false
}
