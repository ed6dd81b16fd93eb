package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseRoot(t *testing.T, raw map[string]any, baseURI string) *Schema {
	t.Helper()
	s, err := Parse(any(raw), nil, baseURI)
	require.NoError(t, err)
	return s
}

func TestDerefFollowsSameDocumentFragment(t *testing.T) {
	root := mustParseRoot(t, map[string]any{
		"definitions": map[string]any{
			"Foo": map[string]any{"title": "a foo", "type": "string"},
		},
		"$ref": "#/definitions/Foo",
	}, "file:///root.json")

	target := Deref(root, root.BaseURI, nil)
	require.NotNil(t, target)
	assert.Equal(t, "a foo", target.Title)
	assert.Equal(t, []string{"string"}, target.Type)
}

func TestResolvePathFollowsRefAtRoot(t *testing.T) {
	root := mustParseRoot(t, map[string]any{
		"definitions": map[string]any{
			"Foo": map[string]any{
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
				},
			},
		},
		"$ref": "#/definitions/Foo",
	}, "file:///root.json")

	target := ResolvePath(root, []string{"name"}, nil)
	require.NotNil(t, target)
	assert.Equal(t, []string{"string"}, target.Type)
}

func TestResolvePathFollowsRefOnPropertyValue(t *testing.T) {
	root := mustParseRoot(t, map[string]any{
		"definitions": map[string]any{
			"Foo": map[string]any{"type": "integer"},
		},
		"properties": map[string]any{
			"count": map[string]any{"$ref": "#/definitions/Foo"},
		},
	}, "file:///root.json")

	target := ResolvePath(root, []string{"count"}, nil)
	require.NotNil(t, target)
	assert.Equal(t, []string{"integer"}, target.Type)
}

func TestResolveSegmentFollowsRefOnPropertyValue(t *testing.T) {
	root := mustParseRoot(t, map[string]any{
		"definitions": map[string]any{
			"Foo": map[string]any{"type": "boolean"},
		},
		"properties": map[string]any{
			"flag": map[string]any{"$ref": "#/definitions/Foo"},
		},
	}, "file:///root.json")

	found := ResolveSegment(root, "flag", false, 0, nil)
	require.NotNil(t, found)
	target := Deref(found, root.BaseURI, nil)
	assert.Equal(t, []string{"boolean"}, target.Type)
}

// fakeRefResolver stands in for resolver.Resolver in tests: it records the
// document part it was asked to fetch (fragment already stripped by the
// caller) and always returns the same pre-parsed document schema.
type fakeRefResolver struct {
	gotRef  string
	doc     *Schema
	baseURI string
}

func (f *fakeRefResolver) Resolve(_, ref string) (*Schema, string, error) {
	f.gotRef = ref
	return f.doc, f.baseURI, nil
}

func TestDerefFollowsExternalRefWithFragment(t *testing.T) {
	doc := mustParseRoot(t, map[string]any{
		"definitions": map[string]any{
			"Foo": map[string]any{"type": "number"},
		},
	}, "file:///defs.json")
	resolver := &fakeRefResolver{doc: doc, baseURI: "file:///defs.json"}

	root := mustParseRoot(t, map[string]any{
		"$ref": "defs.json#/definitions/Foo",
	}, "file:///root.json")

	target := Deref(root, root.BaseURI, resolver)

	assert.Equal(t, "defs.json", resolver.gotRef) // fragment must not leak into the fetch
	require.NotNil(t, target)
	assert.Equal(t, []string{"number"}, target.Type)
}

func TestResolvePathDescendsThroughAllOfBranch(t *testing.T) {
	root := mustParseRoot(t, map[string]any{
		"allOf": []any{
			map[string]any{
				"properties": map[string]any{
					"id": map[string]any{"type": "string"},
				},
			},
		},
	}, "file:///root.json")

	target := ResolvePath(root, []string{"id"}, nil)
	require.NotNil(t, target)
	assert.Equal(t, []string{"string"}, target.Type)
}
