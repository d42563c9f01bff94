package markup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acckion/minotefmt/internal/markup"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		doc      *markup.Document
		expected string
	}{
		{
			name:     "EmptyDocumentLaw",
			doc:      &markup.Document{},
			expected: markup.MinimalDocument,
		},
		{
			name: "Paragraph",
			doc: &markup.Document{Blocks: []markup.BlockNode{
				&markup.Text{Indent: 1, Content: markup.Plain("hello")},
			}},
			expected: "<new-format/>\n<text indent=\"1\">hello</text>",
		},
		{
			name: "TitleAndParagraph",
			doc: &markup.Document{Blocks: []markup.BlockNode{
				&markup.Title{Content: markup.Plain("Trip")},
				&markup.Text{Indent: 1, Content: markup.Plain("pack")},
			}},
			expected: "<new-format/>\n<title>Trip</title>\n<text indent=\"1\">pack</text>",
		},
		{
			name: "AlignedHeading",
			doc: &markup.Document{Blocks: []markup.BlockNode{
				&markup.Text{Indent: 1, Align: markup.AlignCenter, Heading: markup.Heading2, Content: markup.Plain("Part")},
			}},
			expected: "<new-format/>\n<text indent=\"1\"><center><h2>Part</h2></center></text>",
		},
		{
			name: "EscapedText",
			doc: &markup.Document{Blocks: []markup.BlockNode{
				&markup.Text{Indent: 1, Content: markup.Plain(`1 < 2 & "ok"`)},
			}},
			expected: "<new-format/>\n<text indent=\"1\">1 &lt; 2 &amp; &quot;ok&quot;</text>",
		},
		{
			name: "Checkbox",
			doc: &markup.Document{Blocks: []markup.BlockNode{
				&markup.CheckboxItem{Indent: 1, Level: 3, Checked: true, Content: markup.Plain("done")},
			}},
			expected: "<new-format/>\n<input checked=\"true\" indent=\"1\" level=\"3\" />done",
		},
		{
			name: "ImageAttributeOrder",
			doc: &markup.Document{Blocks: []markup.BlockNode{
				&markup.Image{FileID: "cat1", Description: "a cat", Show: true, Width: 640, Height: 480},
			}},
			expected: "<new-format/>\n<img fileid=\"cat1\" h=\"480\" imgdes=\"a cat\" imgshow=\"true\" w=\"640\" />",
		},
		{
			name: "AudioTemporary",
			doc: &markup.Document{Blocks: []markup.BlockNode{
				&markup.Audio{FileID: "rec9", Temporary: true},
			}},
			expected: "<new-format/>\n<sound fileid=\"rec9\" temporary=\"true\" />",
		},
		{
			name: "Quote",
			doc: &markup.Document{Blocks: []markup.BlockNode{
				&markup.Quote{Blocks: []markup.BlockNode{
					&markup.Text{Indent: 1, Content: markup.Plain("wise")},
				}},
			}},
			expected: "<new-format/>\n<quote>\n<text indent=\"1\">wise</text>\n</quote>",
		},
		{
			name: "HighlightColor",
			doc: &markup.Document{Blocks: []markup.BlockNode{
				&markup.Text{Indent: 1, Content: []markup.InlineNode{
					&markup.Highlight{
						Color:   markup.RGBA{R: 0xFF, G: 0xF7, B: 0xD1},
						Content: markup.Plain("note"),
					},
				}},
			}},
			expected: "<new-format/>\n<text indent=\"1\"><background color=\"#FFF7D1\">note</background></text>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, markup.Generate(tt.doc))
		})
	}
}

func TestGenerateOrderedNumbering(t *testing.T) {
	t.Run("RunEmitsBaseThenZeros", func(t *testing.T) {
		doc := &markup.Document{Blocks: []markup.BlockNode{
			&markup.OrderedItem{Indent: 1, Display: 100, Content: markup.Plain("a")},
			&markup.OrderedItem{Indent: 1, Display: 101, Content: markup.Plain("b")},
			&markup.OrderedItem{Indent: 1, Display: 102, Content: markup.Plain("c")},
		}}
		expected := "<new-format/>\n" +
			"<order indent=\"1\" inputNumber=\"99\" />a\n" +
			"<order indent=\"1\" inputNumber=\"0\" />b\n" +
			"<order indent=\"1\" inputNumber=\"0\" />c"
		assert.Equal(t, expected, markup.Generate(doc))
	})

	t.Run("InterveningBlockRestartsEncoding", func(t *testing.T) {
		doc := &markup.Document{Blocks: []markup.BlockNode{
			&markup.OrderedItem{Indent: 1, Display: 1, Content: markup.Plain("a")},
			&markup.HorizontalRule{},
			&markup.OrderedItem{Indent: 1, Display: 5, Content: markup.Plain("b")},
		}}
		expected := "<new-format/>\n" +
			"<order indent=\"1\" inputNumber=\"0\" />a\n" +
			"<hrule />\n" +
			"<order indent=\"1\" inputNumber=\"4\" />b"
		assert.Equal(t, expected, markup.Generate(doc))
	})
}

func TestCanonicalNestingOrder(t *testing.T) {
	// However the source interleaves its tags, regeneration always nests
	// highlight > strikethrough > underline > italic > bold.
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "BoldInsideUnderline",
			input:    `<text indent="1"><b><u>x</u></b></text>`,
			expected: `<text indent="1"><u><b>x</b></u></text>`,
		},
		{
			name:     "Interleaved",
			input:    `<text indent="1"><b>a<i>b</b>c</i></text>`,
			expected: `<text indent="1"><b>a</b><i><b>b</b></i><i>c</i></text>`,
		},
		{
			name:     "AllFormats",
			input:    `<text indent="1"><b><i><u><del><background color="#FFF7D1">x</background></del></u></i></b></text>`,
			expected: `<text indent="1"><background color="#FFF7D1"><del><u><i><b>x</b></i></u></del></background></text>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generated := markup.Generate(markup.Parse(tt.input))
			generated = strings.TrimPrefix(generated, markup.FormatMarker+"\n")
			assert.Equal(t, tt.expected, generated)
		})
	}
}
