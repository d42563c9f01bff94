package markup

import (
	"strconv"
	"strings"

	"github.com/acckion/minotefmt/internal/core"
	"github.com/acckion/minotefmt/pkg/text"
)

// Parse converts persisted markup into a document tree.
//
// Parse is total: a region that cannot be read as written degrades to a
// plain paragraph carrying the raw characters, so a parse never fails and
// never loses note content, only formatting fidelity for that region. All
// state lives in the call; Parse is safe for concurrent use.
func Parse(input string) *Document {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	if lead := strings.TrimLeft(input, " \t\n"); strings.HasPrefix(lead, FormatMarker) {
		input = strings.TrimPrefix(lead, FormatMarker)
	}
	if text.IsBlank(input) {
		return &Document{}
	}
	isolated, table := isolateQuotes(input)
	b := &builder{table: table}
	b.addAll(extractElements(isolated))
	return &Document{Blocks: b.blocks}
}

// builder assembles blocks from extracted elements, threading the ordered
// list decoder through the walk.
type builder struct {
	table   quoteTable
	inQuote bool
	blocks  []BlockNode
	dec     numberDecoder
}

func (b *builder) addAll(elements []element) {
	for _, el := range elements {
		b.add(el)
	}
}

func (b *builder) add(el element) {
	switch el.kind {
	case elemParagraph:
		b.addParagraph(el)
	case elemBullet:
		content, objects, _ := b.inlineContent(el.content)
		b.push(&BulletItem{Indent: b.indent(el.tag), Content: content})
		b.pushAll(objects)
	case elemOrder:
		indent := b.indent(el.tag)
		input := attrInt(el.tag, attrInputNumber, 0)
		var display int
		display, b.dec = b.dec.item(indent, input)
		content, objects, _ := b.inlineContent(el.content)
		b.blocks = append(b.blocks, &OrderedItem{Indent: indent, Display: display, Content: content})
		b.pushAll(objects)
	case elemCheckbox:
		content, objects, _ := b.inlineContent(el.content)
		item := &CheckboxItem{
			Indent:  b.indent(el.tag),
			Level:   attrInt(el.tag, attrLevel, 1),
			Checked: attrBool(el.tag, attrChecked, false),
			Content: content,
		}
		b.push(item)
		b.pushAll(objects)
	case elemRule:
		b.push(&HorizontalRule{})
		if el.content != "" {
			// A rule holds no text; whatever trailed it becomes its own
			// paragraph rather than being thrown away.
			content, objects, align := b.inlineContent(el.content)
			b.push(&Text{Indent: 1, Align: align, Content: content})
			b.pushAll(objects)
		}
	case elemImage:
		b.push(buildImage(el.tag))
	case elemAudio:
		b.push(buildAudio(el.tag))
	case elemQuote:
		b.addQuote(el.token)
	case elemGap:
		core.CurrentLogger().Debugf("markup: loose text %q kept as a paragraph", el.content)
		content, objects, align := b.inlineContent(el.content)
		b.push(&Text{Indent: 1, Align: align, Content: content})
		b.pushAll(objects)
	case elemMalformed:
		core.CurrentLogger().Debugf("markup: unreadable region %q kept as plain text", el.content)
		b.push(&Text{Indent: 1, Content: Plain(el.content)})
	}
}

func (b *builder) addParagraph(el element) {
	pieces, align := parseInline(el.content)
	if el.title {
		if len(b.blocks) > 0 || b.inQuote {
			// A title anywhere but the head of the note is kept as a
			// regular paragraph.
			el.title = false
		} else {
			var content []InlineNode
			var objects []BlockNode
			for _, piece := range pieces {
				switch {
				case piece.object != nil:
					objects = append(objects, piece.object)
				case piece.quote != "":
					objects = append(objects, b.quoteBlocks(piece.quote)...)
				default:
					content = append(content, SpansToInline(MergeSpans(piece.spans))...)
				}
			}
			b.push(&Title{Content: content})
			b.pushAll(objects)
			return
		}
	}
	indent := b.indent(el.tag)
	if len(pieces) == 0 {
		// An empty paragraph is a blank line and must survive as one.
		b.push(&Text{Indent: indent, Align: align})
		return
	}
	for _, piece := range pieces {
		if piece.object != nil {
			b.push(piece.object)
			continue
		}
		if piece.quote != "" {
			// A quote embedded in a paragraph splits it, like an embedded
			// object does.
			b.pushAll(b.quoteBlocks(piece.quote))
			continue
		}
		merged := MergeSpans(piece.spans)
		b.push(&Text{
			Indent:  indent,
			Align:   align,
			Heading: headingOf(merged),
			Content: SpansToInline(merged),
		})
	}
}

func (b *builder) addQuote(token string) {
	b.pushAll(b.quoteBlocks(token))
}

// quoteBlocks resolves a placeholder token back into blocks. Inside a quote
// the inner blocks are spliced in place; quotes do not nest.
func (b *builder) quoteBlocks(token string) []BlockNode {
	inner, ok := b.table[token]
	if !ok {
		return nil
	}
	isolated, table := isolateQuotes(inner)
	q := &builder{table: table, inQuote: true}
	q.addAll(extractElements(isolated))
	if b.inQuote {
		return q.blocks
	}
	return []BlockNode{&Quote{Blocks: q.blocks}}
}

// push appends a block and breaks any ordered-list run in progress.
// Ordered items are appended directly by their own case.
func (b *builder) push(block BlockNode) {
	b.dec = b.dec.brk()
	b.blocks = append(b.blocks, block)
}

func (b *builder) pushAll(blocks []BlockNode) {
	for _, block := range blocks {
		b.push(block)
	}
}

func (b *builder) indent(t tag) int {
	indent := attrInt(t, attrIndent, 1)
	if indent < 1 {
		indent = 1
	}
	return indent
}

// inlineContent parses marker trailing text (or gap text) into inline nodes.
// Embedded image and audio tokens come back separately; they become blocks
// right after the owning item.
func (b *builder) inlineContent(content string) ([]InlineNode, []BlockNode, Alignment) {
	pieces, align := parseInline(content)
	var inline []InlineNode
	var objects []BlockNode
	for _, piece := range pieces {
		switch {
		case piece.object != nil:
			objects = append(objects, piece.object)
		case piece.quote != "":
			objects = append(objects, b.quoteBlocks(piece.quote)...)
		default:
			inline = append(inline, SpansToInline(MergeSpans(piece.spans))...)
		}
	}
	return inline, objects, align
}

// headingOf picks the block's font-size class: the first span that carries
// one. The markup cannot express a per-span heading canonically, so heading
// scope is the whole block.
func headingOf(spans []FormatSpan) HeadingLevel {
	for _, span := range spans {
		if span.Heading != HeadingNone {
			return span.Heading
		}
	}
	return HeadingNone
}

func buildImage(t tag) *Image {
	img := &Image{Show: attrBool(t, attrShow, true)}
	img.FileID, _ = t.attr(attrFileID)
	img.LegacySrc, _ = t.attr(attrSrc)
	if desc, ok := t.attr(attrDescription); ok {
		img.Description = Unescape(desc)
	}
	img.Width = attrInt(t, attrWidth, 0)
	img.Height = attrInt(t, attrHeight, 0)
	return img
}

func buildAudio(t tag) *Audio {
	audio := &Audio{Temporary: attrBool(t, attrTemporary, false)}
	audio.FileID, _ = t.attr(attrFileID)
	return audio
}

func attrInt(t tag, key string, def int) int {
	raw, ok := t.attr(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

func attrBool(t tag, key string, def bool) bool {
	raw, ok := t.attr(key)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return def
}
