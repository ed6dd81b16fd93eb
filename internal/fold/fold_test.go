package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonls/internal/lineindex"
	"jsonls/internal/syntax"
)

func TestRangesMultiLineObject(t *testing.T) {
	text := "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2\n  ]\n}"
	tree := syntax.Parse(text)
	lines := lineindex.Build(text)
	ranges := Ranges(text, lines, tree)
	require.NotEmpty(t, ranges)
	assert.Equal(t, 0, ranges[0].StartLine)
}

func TestRangesSkipsSingleLineContainers(t *testing.T) {
	text := `{"a": [1, 2, 3]}`
	tree := syntax.Parse(text)
	lines := lineindex.Build(text)
	assert.Empty(t, Ranges(text, lines, tree))
}

func TestRangesBlockComment(t *testing.T) {
	text := "/*\n * hi\n */\n{}"
	tree := syntax.Parse(text)
	lines := lineindex.Build(text)
	ranges := Ranges(text, lines, tree)
	require.Len(t, ranges, 1)
	assert.Equal(t, "comment", string(ranges[0].Kind))
}
