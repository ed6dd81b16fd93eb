package validator

import (
	"testing"

	"jsonls/internal/regexcache"
	"jsonls/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw map[string]any) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(any(raw), nil, "file:///root.json")
	require.NoError(t, err)
	return s
}

func newCtx() *Context {
	return NewContext("file:///root.json", regexcache.New(), nil)
}

func TestTypeUnion(t *testing.T) {
	s := mustParse(t, map[string]any{"type": []any{"string", "null"}})
	assert.Empty(t, Validate("a", s, newCtx()))
	assert.Empty(t, Validate(nil, s, newCtx()))
	diags := Validate(float64(0), s, newCtx())
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "string")
	assert.Contains(t, diags[0].Message, "null")
}

func TestOneOfNoMatch(t *testing.T) {
	s := mustParse(t, map[string]any{
		"oneOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "number"},
		},
	})
	assert.Empty(t, Validate("x", s, newCtx()))
	assert.Empty(t, Validate(float64(1), s, newCtx()))
	diags := Validate(true, s, newCtx())
	require.Len(t, diags, 1)
	assert.Equal(t, "oneOf", diags[0].Keyword)
}

func TestOneOfMultipleMatches(t *testing.T) {
	s := mustParse(t, map[string]any{
		"oneOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"type": "integer"},
		},
	})
	diags := Validate(float64(1), s, newCtx())
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "more than one")
}

func TestDraft4ExclusiveBoolFolded(t *testing.T) {
	raw := map[string]any{"minimum": float64(0), "exclusiveMinimum": true}
	s := mustParse(t, raw)
	assert.NotEmpty(t, Validate(float64(0), s, newCtx()))
	assert.Empty(t, Validate(float64(0.0001), s, newCtx()))
}

func TestRefCycleTerminates(t *testing.T) {
	raw := map[string]any{"$ref": "#"}
	s := mustParse(t, raw)
	// A schema that only refers to itself must terminate, not hang or
	// stack-overflow, once the ref has been visited once.
	_ = Validate(map[string]any{}, s, newCtx())
}

func TestRefResolution(t *testing.T) {
	raw := map[string]any{
		"definitions": map[string]any{
			"A": map[string]any{"type": "integer"},
		},
		"$ref": "#/definitions/A",
	}
	s := mustParse(t, raw)
	diags := Validate(1.5, s, newCtx())
	require.Len(t, diags, 1)
	assert.Equal(t, "type", diags[0].Keyword)
}

// fakeResolver stands in for resolver.Resolver in tests: it records the ref
// it was asked to fetch (with any fragment already stripped by the caller)
// and always returns the same pre-parsed document schema.
type fakeResolver struct {
	gotRef  string
	doc     *schema.Schema
	baseURI string
}

func (f *fakeResolver) Resolve(_, ref string) (*schema.Schema, string, error) {
	f.gotRef = ref
	return f.doc, f.baseURI, nil
}

func TestRefResolutionExternalWithFragment(t *testing.T) {
	doc, err := schema.Parse(map[string]any{
		"definitions": map[string]any{
			"Foo": map[string]any{"type": "integer"},
		},
	}, nil, "file:///defs.json")
	require.NoError(t, err)

	resolver := &fakeResolver{doc: doc, baseURI: "file:///defs.json"}
	s := mustParse(t, map[string]any{"$ref": "defs.json#/definitions/Foo"})
	ctx := NewContext("file:///root.json", regexcache.New(), resolver)

	diags := Validate(1.5, s, ctx)

	// The resolver must be asked for the document alone, never the
	// fragment-qualified string.
	assert.Equal(t, "defs.json", resolver.gotRef)
	require.Len(t, diags, 1)
	assert.Equal(t, "type", diags[0].Keyword)
}

func TestUniqueItems(t *testing.T) {
	s := mustParse(t, map[string]any{"uniqueItems": true})
	assert.Empty(t, Validate([]any{float64(1), float64(2)}, s, newCtx()))
	diags := Validate([]any{float64(1), float64(1)}, s, newCtx())
	require.Len(t, diags, 1)
	assert.Equal(t, "uniqueItems", diags[0].Keyword)
}

func TestMultipleOfToleratesFloatError(t *testing.T) {
	s := mustParse(t, map[string]any{"multipleOf": float64(0.1)})
	assert.Empty(t, Validate(float64(0.3), s, newCtx()))
}
