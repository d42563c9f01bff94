package markup

import (
	"path"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Canonicalize rewrites a markup string into a normal form so two
// different-but-equivalent serializations compare equal: the legacy image
// notation becomes the modern attributed form, size-only attributes vanish,
// attributes sort alphabetically, booleans and numbers get one spelling, and
// whitespace runs outside quoted attribute values collapse. It is a pure
// string transform, independent of the tree pipeline, and only an
// approximation: StructurallyEqual is the authoritative equality.
func Canonicalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var lines []string
	var line strings.Builder
	flush := func() {
		if l := strings.TrimSpace(line.String()); l != "" {
			lines = append(lines, l)
		}
		line.Reset()
	}

	i := 0
	for i < len(s) {
		c := s[i]
		if c == '<' {
			if t, ok := scanTag(s, i); ok {
				line.WriteString(canonicalTag(t))
				i = t.end
				continue
			}
		}
		switch c {
		case '\n':
			flush()
		case ' ', '\t':
			cur := line.String()
			if cur != "" && !strings.HasSuffix(cur, " ") {
				line.WriteByte(' ')
			}
		default:
			line.WriteByte(c)
		}
		i++
	}
	flush()
	return strings.Join(lines, "\n")
}

// standaloneTags never wrap content; the canonical form always spells them
// self-closed so `<hrule>` and `<hrule />` compare equal.
var standaloneTags = map[string]bool{
	tagBullet:   true,
	tagOrder:    true,
	tagCheckbox: true,
	tagRule:     true,
	tagImage:    true,
	tagAudio:    true,
}

var booleanAttrs = map[string]bool{
	attrChecked:   true,
	attrShow:      true,
	attrTemporary: true,
}

var numericAttrs = map[string]bool{
	attrIndent:      true,
	attrInputNumber: true,
	attrLevel:       true,
	attrWidth:       true,
	attrHeight:      true,
}

func canonicalTag(t tag) string {
	if t.name == "new-format" {
		// The version marker carries no content.
		return ""
	}
	if t.closing {
		return "</" + t.name + ">"
	}
	attrs := t.sortedAttrs()
	if t.name == tagImage {
		attrs = canonicalImageAttrs(attrs)
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(t.name)
	for _, a := range attrs {
		sb.WriteString(` ` + a.key + `="` + canonicalValue(a.key, a.value) + `"`)
	}
	if t.selfClosed || standaloneTags[t.name] {
		sb.WriteString(" />")
	} else {
		sb.WriteByte('>')
	}
	return sb.String()
}

// canonicalImageAttrs turns the legacy src-referenced form into the modern
// fileid form and strips the size-only attributes, which do not affect
// content meaning. Input is already sorted; the rewrites preserve order
// because "fileid" sorts first and "imgshow" keeps its slot.
func canonicalImageAttrs(attrs []attr) []attr {
	var fileID, src string
	hasShow := false
	out := attrs[:0:0]
	for _, a := range attrs {
		switch a.key {
		case attrFileID:
			fileID = a.value
		case attrSrc:
			src = a.value
			continue
		case attrWidth, attrHeight:
			continue
		case attrShow:
			hasShow = true
		}
		out = append(out, a)
	}
	if fileID == "" && src != "" {
		base := path.Base(strings.ReplaceAll(src, "\\", "/"))
		base = strings.TrimSuffix(base, path.Ext(base))
		out = append([]attr{{key: attrFileID, value: base}}, out...)
	}
	if !hasShow {
		out = append(out, attr{key: attrShow, value: "true"})
	}
	return out
}

func canonicalValue(key, value string) string {
	switch {
	case booleanAttrs[key]:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1":
			return "true"
		case "false", "0":
			return "false"
		}
	case numericAttrs[key]:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return strconv.Itoa(n)
		}
	case key == attrColor:
		if c, err := ParseRGBA(strings.TrimSpace(value)); err == nil {
			return c.String()
		}
	}
	return value
}

// Equivalent reports whether two markup strings persist the same note. The
// canonical-string comparison is the fast path; disagreement falls back to
// re-parsing both sides, which is authoritative.
func Equivalent(a, b string) bool {
	if Canonicalize(a) == Canonicalize(b) {
		return true
	}
	return StructurallyEqual(Parse(a), Parse(b))
}

// StructurallyEqual reports whether two documents have the same block
// sequence, the same inline tree shape and the same attributes.
func StructurallyEqual(a, b *Document) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// DiffDocuments renders a human-readable structural diff, empty when equal.
func DiffDocuments(a, b *Document) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty())
}
