// Package interop bridges the note dialect to Markdown. The bridge is lossy
// by design: Markdown has no alignment, no indent outside lists and no
// native underline or highlight, so those either map to a configured
// spelling or disappear. The mapping is documented on each function.
package interop

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"

	"github.com/acckion/minotefmt/internal/core"
	"github.com/acckion/minotefmt/internal/markup"
	"github.com/acckion/minotefmt/pkg/text"
)

// FromMarkdown imports a Markdown document into a note tree:
// a leading level-1 heading becomes the title, deeper headings map to the
// three font-size classes (clamped), task-list items become checkboxes,
// images keep their destination as the file ID, <u> spans become underline.
func FromMarkdown(md string) *markup.Document {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	root := p.Parse([]byte(md))

	im := &importer{indent: core.CurrentConfig().Convert.Indent}
	blocks := im.walkBlocks(root, false)
	return &markup.Document{Blocks: blocks}
}

type importer struct {
	indent int
}

func (im *importer) walkBlocks(node ast.Node, inQuote bool) []markup.BlockNode {
	var out []markup.BlockNode
	push := func(block markup.BlockNode, objects []markup.BlockNode) {
		out = append(out, block)
		out = append(out, objects...)
	}
	for i, child := range node.GetChildren() {
		switch child := child.(type) {
		case *ast.Heading:
			content, objects := im.inline(child.GetChildren())
			if i == 0 && !inQuote && child.Level == 1 {
				push(&markup.Title{Content: content}, objects)
				continue
			}
			level := child.Level - 1
			if level < 1 {
				level = 1
			}
			if level > 3 {
				level = 3
			}
			push(&markup.Text{
				Indent:  im.indent,
				Heading: markup.HeadingLevel(level),
				Content: content,
			}, objects)
		case *ast.Paragraph:
			content, objects := im.inline(child.GetChildren())
			if len(content) == 0 && len(objects) > 0 {
				out = append(out, objects...)
				continue
			}
			push(&markup.Text{Indent: im.indent, Content: content}, objects)
		case *ast.List:
			out = append(out, im.walkList(child, 0)...)
		case *ast.BlockQuote:
			inner := im.walkBlocks(child, true)
			if inQuote {
				out = append(out, inner...)
			} else {
				out = append(out, &markup.Quote{Blocks: inner})
			}
		case *ast.HorizontalRule:
			out = append(out, &markup.HorizontalRule{})
		case *ast.CodeBlock:
			literal := strings.TrimRight(string(child.Literal), "\n")
			for _, line := range strings.Split(literal, "\n") {
				out = append(out, &markup.Text{Indent: im.indent, Content: markup.Plain(line)})
			}
		}
	}
	return out
}

func (im *importer) walkList(list *ast.List, depth int) []markup.BlockNode {
	var out []markup.BlockNode
	ordered := list.ListFlags&ast.ListTypeOrdered != 0
	display := list.Start
	if display < 1 {
		display = 1
	}
	for _, child := range list.GetChildren() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		indent := im.indent + depth
		var nested []markup.BlockNode
		var content []markup.InlineNode
		var objects []markup.BlockNode
		for _, inner := range item.GetChildren() {
			switch inner := inner.(type) {
			case *ast.List:
				nested = append(nested, im.walkList(inner, depth+1)...)
			default:
				c, o := im.inline(inner.GetChildren())
				content = append(content, c...)
				objects = append(objects, o...)
			}
		}
		if checked, rest, ok := splitTask(content); ok {
			out = append(out, &markup.CheckboxItem{Indent: indent, Level: 1, Checked: checked, Content: rest})
		} else if ordered {
			out = append(out, &markup.OrderedItem{Indent: indent, Display: display, Content: content})
			display++
		} else {
			out = append(out, &markup.BulletItem{Indent: indent, Content: content})
		}
		out = append(out, objects...)
		out = append(out, nested...)
	}
	return out
}

// splitTask detects a task-list item by its "[ ] "/"[x] " prefix.
func splitTask(content []markup.InlineNode) (checked bool, rest []markup.InlineNode, ok bool) {
	if len(content) == 0 {
		return false, nil, false
	}
	first, isText := content[0].(*markup.PlainText)
	if !isText {
		return false, nil, false
	}
	switch {
	case strings.HasPrefix(first.Text, "[ ] "):
		checked = false
	case strings.HasPrefix(first.Text, "[x] "), strings.HasPrefix(first.Text, "[X] "):
		checked = true
	default:
		return false, nil, false
	}
	trimmed := &markup.PlainText{Text: first.Text[4:]}
	rest = mergePlain(append([]markup.InlineNode{trimmed}, content[1:]...))
	return checked, rest, true
}

// inline converts an inline subtree. Embedded images surface separately so
// they can become blocks after the owning paragraph, like the markup parser
// does with embedded object tags.
func (im *importer) inline(nodes []ast.Node) ([]markup.InlineNode, []markup.BlockNode) {
	var out []markup.InlineNode
	var objects []markup.BlockNode
	var underline []markup.InlineNode
	inUnderline := false

	push := func(n markup.InlineNode) {
		if inUnderline {
			underline = append(underline, n)
		} else {
			out = append(out, n)
		}
	}

	for _, node := range nodes {
		switch node := node.(type) {
		case *ast.Text:
			if len(node.Literal) > 0 {
				push(&markup.PlainText{Text: string(node.Literal)})
			}
		case *ast.Code:
			push(&markup.PlainText{Text: string(node.Literal)})
		case *ast.Strong:
			content, objs := im.inline(node.GetChildren())
			push(&markup.Bold{Content: content})
			objects = append(objects, objs...)
		case *ast.Emph:
			content, objs := im.inline(node.GetChildren())
			push(&markup.Italic{Content: content})
			objects = append(objects, objs...)
		case *ast.Del:
			content, objs := im.inline(node.GetChildren())
			push(&markup.Strikethrough{Content: content})
			objects = append(objects, objs...)
		case *ast.Link:
			content, objs := im.inline(node.GetChildren())
			push2(push, content)
			objects = append(objects, objs...)
		case *ast.Image:
			img := &markup.Image{FileID: string(node.Destination), Show: true}
			if len(node.GetChildren()) > 0 {
				var desc []markup.InlineNode
				desc, _ = im.inline(node.GetChildren())
				img.Description = markup.InlineText(desc)
			}
			objects = append(objects, img)
		case *ast.HTMLSpan:
			switch strings.ToLower(strings.TrimSpace(string(node.Literal))) {
			case "<u>":
				inUnderline = true
				underline = nil
			case "</u>":
				if inUnderline {
					inUnderline = false
					out = append(out, &markup.Underline{Content: underline})
					underline = nil
				}
			}
		case *ast.Softbreak, *ast.Hardbreak:
			push(&markup.PlainText{Text: " "})
		}
	}
	if inUnderline {
		// Unclosed <u>: keep the collected content unwrapped.
		out = append(out, underline...)
	}
	return mergePlain(out), objects
}

// mergePlain coalesces adjacent plain leaves so an imported tree matches
// what re-parsing its own markup would build.
func mergePlain(nodes []markup.InlineNode) []markup.InlineNode {
	var out []markup.InlineNode
	for _, node := range nodes {
		leaf, isText := node.(*markup.PlainText)
		if isText && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*markup.PlainText); ok {
				prev.Text += leaf.Text
				continue
			}
		}
		out = append(out, node)
	}
	return out
}

func push2(push func(markup.InlineNode), nodes []markup.InlineNode) {
	for _, n := range nodes {
		push(n)
	}
}

// ToMarkdown exports a note tree to Markdown: the title becomes a level-1
// heading, the three font-size classes become levels 2-4, indents map to
// list nesting only, alignment is dropped. Underline and highlight use the
// configured spellings.
func ToMarkdown(doc *markup.Document) string {
	cfg := core.CurrentConfig()
	ex := &exporter{underline: cfg.Markdown.Underline, highlight: cfg.Markdown.Highlight}
	rendered := ex.render(doc.Blocks, false)
	return strings.TrimSpace(text.SquashBlankLines(rendered))
}

type exporter struct {
	underline string
	highlight string
}

func (ex *exporter) render(blocks []markup.BlockNode, tight bool) string {
	var sb strings.Builder
	for i, block := range blocks {
		if i > 0 {
			if tight || (isListBlock(block) && isListBlock(blocks[i-1])) {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(ex.renderBlock(block))
	}
	return sb.String()
}

func isListBlock(block markup.BlockNode) bool {
	switch block.(type) {
	case *markup.BulletItem, *markup.OrderedItem, *markup.CheckboxItem:
		return true
	}
	return false
}

func (ex *exporter) renderBlock(block markup.BlockNode) string {
	switch block := block.(type) {
	case *markup.Title:
		return "# " + ex.inline(block.Content)
	case *markup.Text:
		prefix := ""
		if block.Heading != markup.HeadingNone {
			prefix = strings.Repeat("#", int(block.Heading)+1) + " "
		}
		return prefix + ex.inline(block.Content)
	case *markup.BulletItem:
		return listIndent(block.Indent) + "- " + ex.inline(block.Content)
	case *markup.OrderedItem:
		return fmt.Sprintf("%s%d. %s", listIndent(block.Indent), block.Display, ex.inline(block.Content))
	case *markup.CheckboxItem:
		box := "[ ]"
		if block.Checked {
			box = "[x]"
		}
		return listIndent(block.Indent) + "- " + box + " " + ex.inline(block.Content)
	case *markup.HorizontalRule:
		return "---"
	case *markup.Quote:
		return strings.TrimRight(text.PrefixLines(ex.render(block.Blocks, true), "> "), "\n")
	case *markup.Image:
		return fmt.Sprintf("![%s](%s)", block.Description, block.FileID)
	case *markup.Audio:
		return fmt.Sprintf("[audio](%s)", block.FileID)
	}
	return ""
}

func listIndent(indent int) string {
	if indent <= 1 {
		return ""
	}
	return strings.Repeat("  ", indent-1)
}

func (ex *exporter) inline(nodes []markup.InlineNode) string {
	var sb strings.Builder
	for _, node := range nodes {
		switch node := node.(type) {
		case *markup.PlainText:
			sb.WriteString(node.Text)
		case *markup.Bold:
			sb.WriteString("**" + ex.inline(node.Content) + "**")
		case *markup.Italic:
			sb.WriteString("*" + ex.inline(node.Content) + "*")
		case *markup.Strikethrough:
			sb.WriteString("~~" + ex.inline(node.Content) + "~~")
		case *markup.Underline:
			inner := ex.inline(node.Content)
			if ex.underline == "ignore" {
				sb.WriteString(inner)
			} else {
				sb.WriteString("<u>" + inner + "</u>")
			}
		case *markup.Highlight:
			inner := ex.inline(node.Content)
			switch ex.highlight {
			case "html":
				sb.WriteString("<mark>" + inner + "</mark>")
			case "ignore":
				sb.WriteString(inner)
			default:
				sb.WriteString("==" + inner + "==")
			}
		}
	}
	return sb.String()
}
