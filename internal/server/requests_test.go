package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonls/internal/document"
	"jsonls/internal/lsp"
)

func writeSchema(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return "file://" + path
}

func TestHoverFollowsRefInSchema(t *testing.T) {
	dir := t.TempDir()
	schemaURI := writeSchema(t, dir, "schema.json", `{
		"definitions": {"Name": {"type": "string", "title": "a name"}},
		"properties": {"name": {"$ref": "#/definitions/Name"}}
	}`)

	s := New(testLogger())
	uri := document.URI("file:///doc.json")
	text := `{"$schema": "` + schemaURI + `", "name": "hi"}`
	s.DidOpen(uri, 1, text)

	snap, ok := s.Store.Snapshot(uri)
	require.True(t, ok)

	off := strings.Index(text, `"hi"`) + 1
	p := snap.Lines.OffsetToPosition(snap.Text, off)

	hover, ok := s.Hover(context.Background(), snap, lsp.Position{Line: p.Line, Character: p.Column})
	require.True(t, ok)
	assert.Contains(t, hover.Contents.Value, "a name")
}

func TestCompletionFollowsRefInSchema(t *testing.T) {
	dir := t.TempDir()
	schemaURI := writeSchema(t, dir, "schema.json", `{
		"definitions": {
			"Inner": {"properties": {"count": {"type": "integer"}}}
		},
		"properties": {"nested": {"$ref": "#/definitions/Inner"}}
	}`)

	s := New(testLogger())
	uri := document.URI("file:///doc.json")
	text := `{"$schema": "` + schemaURI + `", "nested": {"co": 1}}`
	s.DidOpen(uri, 1, text)

	snap, ok := s.Store.Snapshot(uri)
	require.True(t, ok)

	off := strings.Index(text, `"co"`) + 2
	p := snap.Lines.OffsetToPosition(snap.Text, off)

	list := s.Completion(context.Background(), snap, lsp.Position{Line: p.Line, Character: p.Column})
	require.NotEmpty(t, list.Items)
	assert.Equal(t, "count", list.Items[0].Label)
}

func TestDocumentLinkFollowsRefInSchema(t *testing.T) {
	dir := t.TempDir()
	schemaURI := writeSchema(t, dir, "schema.json", `{
		"definitions": {"URL": {"type": "string", "format": "uri"}},
		"properties": {"homepage": {"$ref": "#/definitions/URL"}}
	}`)

	s := New(testLogger())
	uri := document.URI("file:///doc.json")
	text := `{"$schema": "` + schemaURI + `", "homepage": "https://example.com"}`
	s.DidOpen(uri, 1, text)

	snap, ok := s.Store.Snapshot(uri)
	require.True(t, ok)

	links := s.DocumentLink(context.Background(), snap)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com", links[0].Target)
}
