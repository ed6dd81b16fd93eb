package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
	"jsonls/internal/syntax"
)

func TestBuildObjectSymbols(t *testing.T) {
	text := `{"name": "a", "nested": {"count": 1}}`
	tree := syntax.Parse(text)
	lines := lineindex.Build(text)
	syms := Build(text, lines, tree)
	require.Len(t, syms, 2)
	assert.Equal(t, "name", syms[0].Name)
	assert.Equal(t, lsp.SymbolKindString, syms[0].Kind)
	assert.Equal(t, "nested", syms[1].Name)
	assert.Equal(t, lsp.SymbolKindObject, syms[1].Kind)
	require.Len(t, syms[1].Children, 1)
	assert.Equal(t, "count", syms[1].Children[0].Name)
}

func TestBuildArraySymbolsUseIndex(t *testing.T) {
	text := `[1, 2]`
	tree := syntax.Parse(text)
	lines := lineindex.Build(text)
	syms := Build(text, lines, tree)
	require.Len(t, syms, 2)
	assert.Equal(t, "0", syms[0].Name)
	assert.Equal(t, "1", syms[1].Name)
}
