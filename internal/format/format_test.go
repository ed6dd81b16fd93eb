package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jsonls/internal/syntax"
)

func TestPrintPreservesKeyOrderAndComments(t *testing.T) {
	text := `{"b":1,"a":2 /* note */}`
	tree := syntax.Parse(text)
	out := Print(tree, Options{TabSize: 2, InsertSpaces: true})
	assert.Contains(t, out, "\"b\": 1")
	assert.Contains(t, out, "\"a\": 2")
	assert.Contains(t, out, "/* note */")
	// key order preserved: "b" still precedes "a" after formatting.
	assert.Less(t, indexOf(out, `"b"`), indexOf(out, `"a"`))
}

func TestPrintArrayNoTrailingComma(t *testing.T) {
	text := `[1,2,3,]`
	tree := syntax.Parse(text)
	out := Print(tree, Options{TabSize: 2, InsertSpaces: true})
	assert.NotContains(t, out, ",\n]")
	assert.Contains(t, out, "3\n]")
}

func TestPrintUsesTabsWhenRequested(t *testing.T) {
	text := `{"a":1}`
	tree := syntax.Parse(text)
	out := Print(tree, Options{InsertSpaces: false})
	assert.Contains(t, out, "\t\"a\"")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
