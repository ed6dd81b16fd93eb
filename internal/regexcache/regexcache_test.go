package regexcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCachesResult(t *testing.T) {
	c := New()
	re1, err := c.Compile("^a+$")
	require.NoError(t, err)
	re2, err := c.Compile("^a+$")
	require.NoError(t, err)
	assert.Same(t, re1, re2)
	assert.Equal(t, 1, c.Len())
}

func TestCompileCachesFailure(t *testing.T) {
	c := New()
	_, err1 := c.Compile("(unclosed")
	_, err2 := c.Compile("(unclosed")
	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, 1, c.Len())
}
