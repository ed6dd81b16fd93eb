package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
	"jsonls/internal/syntax"
)

func TestParseHex(t *testing.T) {
	c, ok := Parse("#ff0000")
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.Red, 1e-9)
	assert.InDelta(t, 0.0, c.Green, 1e-9)
	assert.Equal(t, 1.0, c.Alpha)

	c, ok = Parse("#ff000080")
	require.True(t, ok)
	assert.InDelta(t, 128.0/255, c.Alpha, 1e-9)

	_, ok = Parse("not-a-color")
	assert.False(t, ok)
}

func TestParseFunctional(t *testing.T) {
	c, ok := Parse("rgba(255, 0, 0, 0.5)")
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.Red, 1e-9)
	assert.InDelta(t, 0.5, c.Alpha, 1e-9)
}

func TestScanFindsColorLiterals(t *testing.T) {
	text := `{"bg": "#00ff00"}`
	tree := syntax.Parse(text)
	lines := lineindex.Build(text)
	infos := Scan(text, lines, tree)
	require.Len(t, infos, 1)
	assert.InDelta(t, 1.0, infos[0].Color.Green, 1e-9)
}

func TestPresentationsOrder(t *testing.T) {
	p := Presentations(lsp.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1})
	require.Len(t, p, 6)
	assert.Equal(t, "#ff0000", p[0].Label)
	assert.Equal(t, "#ff0000ff", p[1].Label)
	assert.Equal(t, "rgb(255,0,0)", p[2].Label)
}
