package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonls/internal/lineindex"
	"jsonls/internal/syntax"
)

func TestChainOrdersInnermostFirst(t *testing.T) {
	text := `{"a": {"b": 1}}`
	tree := syntax.Parse(text)
	lines := lineindex.Build(text)

	off := len(`{"a": {"b": `) // points at the "1"
	chain := Chain(text, lines, tree, off)
	require.NotNil(t, chain)

	// The innermost range must be the narrowest (the number literal),
	// widening monotonically as Parent is followed out to the document.
	var widths []int
	for n := chain; n != nil; n = n.Parent {
		start := lines.PositionToOffset(text, n.Range.Start)
		end := lines.PositionToOffset(text, n.Range.End)
		widths = append(widths, end-start)
	}
	for i := 1; i < len(widths); i++ {
		assert.GreaterOrEqual(t, widths[i], widths[i-1])
	}
	assert.Equal(t, len(text), widths[len(widths)-1])
}
