package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSpans(t *testing.T) {
	t.Run("AdjacentSameStyleCoalesce", func(t *testing.T) {
		merged := MergeSpans([]FormatSpan{
			{Text: "a", Formats: FormatSet(FormatBold)},
			{Text: "b", Formats: FormatSet(FormatBold)},
			{Text: "c"},
		})
		require.Len(t, merged, 2)
		assert.Equal(t, "ab", merged[0].Text)
		assert.Equal(t, "c", merged[1].Text)
	})

	t.Run("EmptySpansDropped", func(t *testing.T) {
		merged := MergeSpans([]FormatSpan{
			{Text: "a"},
			{Text: "", Formats: FormatSet(FormatBold)},
			{Text: "b"},
		})
		require.Len(t, merged, 1)
		assert.Equal(t, "ab", merged[0].Text)
	})

	t.Run("DifferentHighlightColorsStaySplit", func(t *testing.T) {
		merged := MergeSpans([]FormatSpan{
			{Text: "a", Formats: FormatSet(FormatHighlight), Highlight: RGBA{R: 0xFF}},
			{Text: "b", Formats: FormatSet(FormatHighlight), Highlight: RGBA{G: 0xFF}},
		})
		assert.Len(t, merged, 2)
	})

	t.Run("DifferentHeadingsStaySplit", func(t *testing.T) {
		merged := MergeSpans([]FormatSpan{
			{Text: "a", Heading: Heading1},
			{Text: "b", Heading: Heading2},
		})
		assert.Len(t, merged, 2)
	})
}

func TestWrapSpan(t *testing.T) {
	t.Run("BoldIsInnermost", func(t *testing.T) {
		node := wrapSpan(FormatSpan{
			Text:    "x",
			Formats: FormatSet(FormatBold).With(FormatUnderline),
		})
		u, ok := node.(*Underline)
		require.True(t, ok)
		require.Len(t, u.Content, 1)
		b, ok := u.Content[0].(*Bold)
		require.True(t, ok)
		require.Len(t, b.Content, 1)
		leaf, ok := b.Content[0].(*PlainText)
		require.True(t, ok)
		assert.Equal(t, "x", leaf.Text)
	})

	t.Run("HighlightIsOutermost", func(t *testing.T) {
		node := wrapSpan(FormatSpan{
			Text:      "x",
			Formats:   FormatSet(FormatBold).With(FormatHighlight),
			Highlight: RGBA{R: 0xFF},
		})
		h, ok := node.(*Highlight)
		require.True(t, ok)
		assert.Equal(t, RGBA{R: 0xFF}, h.Color)
		_, ok = h.Content[0].(*Bold)
		assert.True(t, ok)
	})

	t.Run("NoFormatsIsBareLeaf", func(t *testing.T) {
		node := wrapSpan(FormatSpan{Text: "x"})
		leaf, ok := node.(*PlainText)
		require.True(t, ok)
		assert.Equal(t, "x", leaf.Text)
	})
}
