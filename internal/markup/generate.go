package markup

import (
	"fmt"
	"strings"
)

// Generate serializes a document to canonical markup. It is the inverse of
// Parse modulo formatting: attribute order is alphabetical, inline wrappers
// nest in the canonical order, text is re-escaped. Every tree serializes;
// an empty document becomes MinimalDocument, never the empty string.
func Generate(doc *Document) string {
	if doc == nil || doc.IsEmpty() {
		return MinimalDocument
	}
	var sb strings.Builder
	sb.WriteString(FormatMarker)
	enc := numberEncoder{}
	for _, block := range doc.Blocks {
		sb.WriteByte('\n')
		enc = writeBlock(&sb, block, enc)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, block BlockNode, enc numberEncoder) numberEncoder {
	switch block := block.(type) {
	case *Title:
		sb.WriteString("<" + tagTitle + ">")
		writeInline(sb, block.Content)
		sb.WriteString("</" + tagTitle + ">")
	case *Text:
		fmt.Fprintf(sb, `<%s %s="%d">`, tagText, attrIndent, block.Indent)
		writeAligned(sb, block.Align, func() {
			writeHeaded(sb, block.Heading, func() {
				writeInline(sb, block.Content)
			})
		})
		sb.WriteString("</" + tagText + ">")
	case *BulletItem:
		fmt.Fprintf(sb, `<%s %s="%d" />`, tagBullet, attrIndent, block.Indent)
		writeInline(sb, block.Content)
	case *OrderedItem:
		var input int
		input, enc = enc.item(block.Indent, block.Display)
		fmt.Fprintf(sb, `<%s %s="%d" %s="%d" />`, tagOrder, attrIndent, block.Indent, attrInputNumber, input)
		writeInline(sb, block.Content)
		return enc
	case *CheckboxItem:
		fmt.Fprintf(sb, `<%s %s="%t" %s="%d" %s="%d" />`,
			tagCheckbox, attrChecked, block.Checked, attrIndent, block.Indent, attrLevel, block.Level)
		writeInline(sb, block.Content)
	case *HorizontalRule:
		sb.WriteString("<" + tagRule + " />")
	case *Quote:
		sb.WriteString("<" + tagQuote + ">")
		inner := numberEncoder{}
		for _, nested := range block.Blocks {
			sb.WriteByte('\n')
			inner = writeBlock(sb, nested, inner)
		}
		sb.WriteString("\n</" + tagQuote + ">")
	case *Image:
		writeImage(sb, block)
	case *Audio:
		sb.WriteString("<" + tagAudio)
		fmt.Fprintf(sb, ` %s="%s"`, attrFileID, Escape(block.FileID))
		if block.Temporary {
			fmt.Fprintf(sb, ` %s="true"`, attrTemporary)
		}
		sb.WriteString(" />")
	}
	return enc.brk()
}

// writeImage emits the attributes that are set, in the canonical
// alphabetical order: fileid, h, imgdes, imgshow, src, w.
func writeImage(sb *strings.Builder, img *Image) {
	sb.WriteString("<" + tagImage)
	if img.FileID != "" {
		fmt.Fprintf(sb, ` %s="%s"`, attrFileID, Escape(img.FileID))
	}
	if img.Height > 0 {
		fmt.Fprintf(sb, ` %s="%d"`, attrHeight, img.Height)
	}
	if img.Description != "" {
		fmt.Fprintf(sb, ` %s="%s"`, attrDescription, Escape(img.Description))
	}
	fmt.Fprintf(sb, ` %s="%t"`, attrShow, img.Show)
	if img.LegacySrc != "" {
		fmt.Fprintf(sb, ` %s="%s"`, attrSrc, Escape(img.LegacySrc))
	}
	if img.Width > 0 {
		fmt.Fprintf(sb, ` %s="%d"`, attrWidth, img.Width)
	}
	sb.WriteString(" />")
}

func writeAligned(sb *strings.Builder, align Alignment, body func()) {
	switch align {
	case AlignCenter:
		sb.WriteString("<center>")
		body()
		sb.WriteString("</center>")
	case AlignRight:
		sb.WriteString("<right>")
		body()
		sb.WriteString("</right>")
	default:
		body()
	}
}

func writeHeaded(sb *strings.Builder, level HeadingLevel, body func()) {
	if level == HeadingNone {
		body()
		return
	}
	fmt.Fprintf(sb, "<h%d>", level)
	body()
	fmt.Fprintf(sb, "</h%d>", level)
}

// writeInline walks the inline tree outer to inner. Trees built by the
// parser already respect the canonical wrap order; hand-built trees are
// emitted as given.
func writeInline(sb *strings.Builder, nodes []InlineNode) {
	for _, node := range nodes {
		switch node := node.(type) {
		case *PlainText:
			sb.WriteString(Escape(node.Text))
		case *Bold:
			sb.WriteString("<b>")
			writeInline(sb, node.Content)
			sb.WriteString("</b>")
		case *Italic:
			sb.WriteString("<i>")
			writeInline(sb, node.Content)
			sb.WriteString("</i>")
		case *Underline:
			sb.WriteString("<u>")
			writeInline(sb, node.Content)
			sb.WriteString("</u>")
		case *Strikethrough:
			sb.WriteString("<del>")
			writeInline(sb, node.Content)
			sb.WriteString("</del>")
		case *Highlight:
			fmt.Fprintf(sb, `<background %s="%s">`, attrColor, node.Color)
			writeInline(sb, node.Content)
			sb.WriteString("</background>")
		}
	}
}
