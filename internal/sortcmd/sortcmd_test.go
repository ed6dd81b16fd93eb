package sortcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
)

func TestEditSortsKeysRecursively(t *testing.T) {
	text := `{"b": 1, "a": {"d": 2, "c": 3}}`
	lines := lineindex.Build(text)
	value := map[string]any{
		"b": float64(1),
		"a": map[string]any{"d": float64(2), "c": float64(3)},
	}
	edit, ok := Edit(lsp.DocumentURI("file:///x.json"), text, lines, value)
	require.True(t, ok)
	assert.Less(t, indexOf(edit.NewText, `"a"`), indexOf(edit.NewText, `"b"`))
	assert.Less(t, indexOf(edit.NewText, `"c"`), indexOf(edit.NewText, `"d"`))
}

func TestWorkspaceEditKeyedByURI(t *testing.T) {
	text := `{"z": 1}`
	lines := lineindex.Build(text)
	uri := lsp.DocumentURI("file:///x.json")
	we, ok := WorkspaceEdit(uri, text, lines, map[string]any{"z": float64(1)})
	require.True(t, ok)
	require.Contains(t, we.Changes, uri)
	assert.Len(t, we.Changes[uri], 1)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
