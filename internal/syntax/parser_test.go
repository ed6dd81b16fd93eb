package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleObject(t *testing.T) {
	tree := Parse(`{"a": 1, "b": [true, false, null]}`)
	require.Len(t, tree.Root.Children, 1)
	obj := tree.Root.Children[0]
	assert.Equal(t, KindObject, obj.Kind)
	require.Len(t, obj.Children, 2)
	assert.Equal(t, "a", obj.Children[0].Key())
	assert.Equal(t, "b", obj.Children[1].Key())

	arr := obj.Children[1].FieldChild(FieldValue)
	assert.Equal(t, KindArray, arr.Kind)
	require.Len(t, arr.Children, 3)
	assert.Equal(t, KindTrue, arr.Children[0].Kind)
	assert.Equal(t, KindFalse, arr.Children[1].Kind)
	assert.Equal(t, KindNull, arr.Children[2].Kind)
}

func TestTrailingCommaAccepted(t *testing.T) {
	tree := Parse(`{"a":1,}`)
	assert.Empty(t, tree.ErrorNodes())
	obj := tree.Root.Children[0]
	assert.True(t, obj.TrailingComma)
}

func TestDoubleCommaIsSyntaxError(t *testing.T) {
	tree := Parse(`{"a":1,,}`)
	assert.NotEmpty(t, tree.ErrorNodes())
}

func TestDuplicateKeyDetected(t *testing.T) {
	tree := Parse(`{"a":1,"a":2}`)
	dups := tree.DuplicateKeys()
	require.Len(t, dups, 1)
	assert.Equal(t, "a", dups[0].Key)
}

func TestLineComment(t *testing.T) {
	tree := Parse("{\n// a comment\n\"a\":1\n}")
	obj := tree.Root.Children[0]
	var sawComment bool
	for _, c := range obj.Children {
		if c.Kind == KindComment {
			sawComment = true
		}
	}
	assert.True(t, sawComment)
}

func TestUnterminatedBlockCommentIsError(t *testing.T) {
	tree := Parse("{\n/* unterminated\n\"a\":1\n}")
	assert.NotEmpty(t, tree.ErrorNodes())
}

func TestMissingValueProducesMissingNode(t *testing.T) {
	tree := Parse(`{"a":}`)
	obj := tree.Root.Children[0]
	pair := obj.Children[0]
	value := pair.FieldChild(FieldValue)
	assert.True(t, value.IsMissing())
}

func TestParseYieldsLeafNodes(t *testing.T) {
	text := `{"a": 1, "b": [2, 3]}`
	tree := Parse(text)
	var leaves []*Node
	tree.Root.Walk(func(n *Node) bool {
		if len(n.Children) == 0 {
			leaves = append(leaves, n)
		}
		return true
	})
	// Punctuation and whitespace are not nodes, so the leaves' source text
	// concatenated is not the full text; this checks only that leaves exist.
	assert.NotEmpty(t, leaves)
}
