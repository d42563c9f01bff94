package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIterator(t *testing.T) {
	it := NewLineIterator("a\nb")

	line, ok := it.Peek()
	require.True(t, ok)
	assert.Equal(t, Line{Text: "a", Number: 1}, line)

	// Peek does not advance.
	line, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, Line{Text: "a", Number: 1}, line)

	line, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, Line{Text: "b", Number: 2}, line)

	assert.False(t, it.HasNext())
	_, ok = it.Next()
	assert.False(t, ok)
}
