package interop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acckion/minotefmt/internal/core"
	"github.com/acckion/minotefmt/internal/interop"
	"github.com/acckion/minotefmt/internal/markup"
)

func TestToMarkdown(t *testing.T) {
	core.SetCurrentConfig(core.DefaultConfig())

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "TitleAndParagraph",
			source:   "<title>My Note</title>\n<text indent=\"1\">body text</text>",
			expected: "# My Note\n\nbody text",
		},
		{
			name:     "HeadingsShiftOneLevel",
			source:   "<text indent=\"1\"><h1>A</h1></text>\n<text indent=\"1\"><h3>B</h3></text>",
			expected: "## A\n\n#### B",
		},
		{
			name:     "FormatsSpelled",
			source:   "<text indent=\"1\"><b>b</b> <i>i</i> <del>s</del> <u>u</u></text>",
			expected: "**b** *i* ~~s~~ <u>u</u>",
		},
		{
			name:     "HighlightDoubleEqual",
			source:   "<text indent=\"1\"><background color=\"#FFF7D1\">hot</background></text>",
			expected: "==hot==",
		},
		{
			name:     "ListsStayTight",
			source:   "<bullet indent=\"1\" />one\n<bullet indent=\"2\" />nested\n<order indent=\"1\" inputNumber=\"4\" />five",
			expected: "- one\n  - nested\n5. five",
		},
		{
			name:     "Checkboxes",
			source:   "<input checked=\"true\" indent=\"1\" level=\"1\" />done\n<input checked=\"false\" indent=\"1\" level=\"1\" />todo",
			expected: "- [x] done\n- [ ] todo",
		},
		{
			name:     "QuotePrefixed",
			source:   "<quote>\n<text indent=\"1\">a</text>\n<text indent=\"1\">b</text>\n</quote>",
			expected: "> a\n> b",
		},
		{
			name:     "RuleImageAudio",
			source:   "<hrule />\n<img fileid=\"cat1\" imgdes=\"a cat\" imgshow=\"true\" />\n<sound fileid=\"rec\" />",
			expected: "---\n\n![a cat](cat1)\n\n[audio](rec)",
		},
		{
			name:     "AlignmentDropped",
			source:   "<text indent=\"1\"><center>mid</center></text>",
			expected: "mid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, interop.ToMarkdown(markup.Parse(tt.source)))
		})
	}
}

func TestToMarkdownSpellings(t *testing.T) {
	defer core.SetCurrentConfig(core.DefaultConfig())

	cfg := core.DefaultConfig()
	cfg.Markdown.Underline = "ignore"
	cfg.Markdown.Highlight = "html"
	core.SetCurrentConfig(cfg)

	doc := markup.Parse("<text indent=\"1\"><u>u</u> <background color=\"#FFF7D1\">h</background></text>")
	assert.Equal(t, "u <mark>h</mark>", interop.ToMarkdown(doc))
}

func TestFromMarkdown(t *testing.T) {
	core.SetCurrentConfig(core.DefaultConfig())

	t.Run("LeadingHeadingBecomesTitle", func(t *testing.T) {
		doc := interop.FromMarkdown("# Top\n\nbody")
		require.Len(t, doc.Blocks, 2)
		title, ok := doc.Blocks[0].(*markup.Title)
		require.True(t, ok)
		assert.Equal(t, "Top", markup.InlineText(title.Content))
		para, ok := doc.Blocks[1].(*markup.Text)
		require.True(t, ok)
		assert.Equal(t, "body", markup.InlineText(para.Content))
	})

	t.Run("NonLeadingHeadingIsText", func(t *testing.T) {
		doc := interop.FromMarkdown("intro\n\n# Not a title")
		require.Len(t, doc.Blocks, 2)
		head, ok := doc.Blocks[1].(*markup.Text)
		require.True(t, ok)
		assert.Equal(t, markup.Heading1, head.Heading)
	})

	t.Run("DeepHeadingClamped", func(t *testing.T) {
		doc := interop.FromMarkdown("intro\n\n###### Deep")
		require.Len(t, doc.Blocks, 2)
		head := doc.Blocks[1].(*markup.Text)
		assert.Equal(t, markup.Heading3, head.Heading)
	})

	t.Run("Lists", func(t *testing.T) {
		doc := interop.FromMarkdown("- a\n- b\n\n1. one\n2. two")
		require.Len(t, doc.Blocks, 4)
		_, ok := doc.Blocks[0].(*markup.BulletItem)
		assert.True(t, ok)
		second, ok := doc.Blocks[3].(*markup.OrderedItem)
		require.True(t, ok)
		assert.Equal(t, 2, second.Display)
	})

	t.Run("TaskListBecomesCheckboxes", func(t *testing.T) {
		doc := interop.FromMarkdown("- [ ] open\n- [x] closed")
		require.Len(t, doc.Blocks, 2)
		open, ok := doc.Blocks[0].(*markup.CheckboxItem)
		require.True(t, ok)
		assert.False(t, open.Checked)
		assert.Equal(t, "open", markup.InlineText(open.Content))
		closed := doc.Blocks[1].(*markup.CheckboxItem)
		assert.True(t, closed.Checked)
	})

	t.Run("NestedListIndents", func(t *testing.T) {
		doc := interop.FromMarkdown("- outer\n  - inner")
		require.Len(t, doc.Blocks, 2)
		outer := doc.Blocks[0].(*markup.BulletItem)
		inner := doc.Blocks[1].(*markup.BulletItem)
		assert.Equal(t, 1, outer.Indent)
		assert.Equal(t, 2, inner.Indent)
	})

	t.Run("BlockQuote", func(t *testing.T) {
		doc := interop.FromMarkdown("> quoted line")
		require.Len(t, doc.Blocks, 1)
		quote, ok := doc.Blocks[0].(*markup.Quote)
		require.True(t, ok)
		require.Len(t, quote.Blocks, 1)
	})

	t.Run("ImageOnlyParagraphBecomesBlock", func(t *testing.T) {
		doc := interop.FromMarkdown("![a cat](cat1)")
		require.Len(t, doc.Blocks, 1)
		img, ok := doc.Blocks[0].(*markup.Image)
		require.True(t, ok)
		assert.Equal(t, "cat1", img.FileID)
		assert.Equal(t, "a cat", img.Description)
		assert.True(t, img.Show)
	})

	t.Run("UnderlineSpan", func(t *testing.T) {
		doc := interop.FromMarkdown("an <u>underlined</u> word")
		require.Len(t, doc.Blocks, 1)
		para := doc.Blocks[0].(*markup.Text)
		require.Len(t, para.Content, 3)
		u, ok := para.Content[1].(*markup.Underline)
		require.True(t, ok)
		assert.Equal(t, "underlined", markup.InlineText(u.Content))
	})

	t.Run("LinkFlattenedToText", func(t *testing.T) {
		doc := interop.FromMarkdown("see [the site](https://example.com) now")
		para := doc.Blocks[0].(*markup.Text)
		assert.Equal(t, "see the site now", markup.InlineText(para.Content))
	})

	t.Run("CodeBlockKeptAsPlainLines", func(t *testing.T) {
		doc := interop.FromMarkdown("```\nline one\nline two\n```")
		require.Len(t, doc.Blocks, 2)
		assert.Equal(t, "line one", markup.InlineText(doc.Blocks[0].(*markup.Text).Content))
		assert.Equal(t, "line two", markup.InlineText(doc.Blocks[1].(*markup.Text).Content))
	})
}

// Importing the export of a note reproduces the tree for everything
// Markdown can express.
func TestMarkdownRoundTrip(t *testing.T) {
	core.SetCurrentConfig(core.DefaultConfig())

	sources := []string{
		"<title>T</title>\n<text indent=\"1\">body</text>",
		"<text indent=\"1\"><b>b</b> and <i>i</i></text>",
		"<bullet indent=\"1\" />one\n<bullet indent=\"1\" />two",
		"<input checked=\"true\" indent=\"1\" level=\"1\" />done",
		"<text indent=\"1\">a</text>\n<hrule />\n<text indent=\"1\">b</text>",
	}
	for _, source := range sources {
		doc := markup.Parse(source)
		back := interop.FromMarkdown(interop.ToMarkdown(doc))
		assert.True(t, markup.StructurallyEqual(doc, back),
			"source %q:\n%s", source, markup.DiffDocuments(doc, back))
	}
}
