package jsonpointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndJoinRoundTrip(t *testing.T) {
	segs, err := Parse("/a~1b/0/c~0d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b", "0", "c~d"}, segs)
	assert.Equal(t, "/a~1b/0/c~0d", Join(segs))
}

func TestParseEmpty(t *testing.T) {
	segs, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestResolve(t *testing.T) {
	root := map[string]any{
		"definitions": map[string]any{
			"A": map[string]any{"type": "integer"},
		},
		"items": []any{"x", "y"},
	}
	v, ok := Resolve(root, []string{"definitions", "A", "type"})
	require.True(t, ok)
	assert.Equal(t, "integer", v)

	v, ok = Resolve(root, []string{"items", "1"})
	require.True(t, ok)
	assert.Equal(t, "y", v)

	_, ok = Resolve(root, []string{"items", "9"})
	assert.False(t, ok)
}
