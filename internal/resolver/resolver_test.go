package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchFileSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"object"}`), 0o644))

	r := New()
	s, err := r.Fetch(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, []string{"object"}, s.Type)

	// Second fetch hits the cache, not the filesystem.
	require.NoError(t, os.Remove(path))
	s2, err := r.Fetch(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Same(t, s, s2)
}

func TestAssociateDocumentPrefersInlineSchema(t *testing.T) {
	r := New()
	r.SetAssociations([]Association{{FileMatch: []string{"**/*.json"}, SchemaURL: "file:///glob.json"}})
	uri, ok := r.AssociateDocument("file:///a.json", "file:///inline.json")
	require.True(t, ok)
	assert.Equal(t, "file:///inline.json", uri)
}

func TestAssociateDocumentFallsBackToGlob(t *testing.T) {
	r := New()
	r.SetAssociations([]Association{{FileMatch: []string{"**/package.json"}, SchemaURL: "file:///pkg-schema.json"}})
	uri, ok := r.AssociateDocument("file:///repo/package.json", "")
	require.True(t, ok)
	assert.Equal(t, "file:///pkg-schema.json", uri)

	_, ok = r.AssociateDocument("file:///repo/other.json", "")
	assert.False(t, ok)
}

func TestFailureDiagnosticOncePerURI(t *testing.T) {
	r := New()
	_, first := r.FailureDiagnostic("file:///missing.json", assertErr{})
	_, second := r.FailureDiagnostic("file:///missing.json", assertErr{})
	assert.True(t, first)
	assert.False(t, second)
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
