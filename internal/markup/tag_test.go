package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "1 &lt; 2 &amp;&amp; a &gt; b, &quot;quoted&quot;", Escape(`1 < 2 && a > b, "quoted"`))
	// Apostrophes are not part of the escape set.
	assert.Equal(t, "it's", Escape("it's"))
	assert.Equal(t, `1 < 2 && a > b, "quoted"`, Unescape("1 &lt; 2 &amp;&amp; a &gt; b, &quot;quoted&quot;"))
	// A double-escaped ampersand decodes one level only.
	assert.Equal(t, "&amp;", Unescape("&amp;amp;"))
}

func TestScanTag(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		tg, ok := scanTag("<quote>", 0)
		require.True(t, ok)
		assert.Equal(t, "quote", tg.name)
		assert.False(t, tg.closing)
		assert.False(t, tg.selfClosed)
		assert.Equal(t, 7, tg.end)
	})

	t.Run("Closing", func(t *testing.T) {
		tg, ok := scanTag("</text>", 0)
		require.True(t, ok)
		assert.Equal(t, "text", tg.name)
		assert.True(t, tg.closing)
	})

	t.Run("SelfClosedWithAttributes", func(t *testing.T) {
		tg, ok := scanTag(`<order indent="1" inputNumber="41" />x`, 0)
		require.True(t, ok)
		assert.Equal(t, "order", tg.name)
		assert.True(t, tg.selfClosed)
		v, found := tg.attr("inputNumber")
		assert.True(t, found)
		assert.Equal(t, "41", v)
		_, found = tg.attr("absent")
		assert.False(t, found)
	})

	t.Run("AttributeValueKeepsSpaces", func(t *testing.T) {
		tg, ok := scanTag(`<img imgdes="a  cat" />`, 0)
		require.True(t, ok)
		v, _ := tg.attr("imgdes")
		assert.Equal(t, "a  cat", v)
	})

	t.Run("Rejections", func(t *testing.T) {
		rejected := []string{
			"< text>",             // space before the name
			"<>",                  // no name
			"<text indent=1>",     // unquoted value
			"<text indent=\"1>",   // unterminated value
			"<text\nindent=\"1\">", // newline inside the tag
			"<textindent=\"1\">",  // no space before the attribute
			"</text indent=\"1\">", // closer with attributes
			"<text",               // unterminated tag
		}
		for _, s := range rejected {
			_, ok := scanTag(s, 0)
			assert.False(t, ok, "input %q", s)
		}
	})
}

func TestFindTag(t *testing.T) {
	s := `a < b <i>x</i> <text indent="1">y</text>`

	tg, ok := findTag(s, 0, "text")
	require.True(t, ok)
	assert.False(t, tg.closing)
	assert.Equal(t, `<text indent="1">`, s[tg.start:tg.end])

	closer, ok := findTag(s, tg.end, "text")
	require.True(t, ok)
	assert.True(t, closer.closing)

	_, ok = findTag(s, 0, "quote")
	assert.False(t, ok)
}
