package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonls/internal/document"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDidOpenValidatesImmediatelyAndForgetsCancel(t *testing.T) {
	s := New(testLogger())
	var published []PublishedDiagnostic
	var gotVersion int32
	s.Publish = func(uri document.URI, version int32, diags []PublishedDiagnostic) {
		published = diags
		gotVersion = version
	}

	s.DidOpen("file:///a.json", 1, `{"a": 1,,}`)

	assert.Equal(t, int32(1), gotVersion)
	assert.NotEmpty(t, published) // double comma is a syntax error
	assert.False(t, s.Cancel.IsCancelled(document.URI("file:///a.json")))
}

func TestDidChangeCancelsPriorFlagBeforeDebounceFires(t *testing.T) {
	s := New(testLogger())
	uri := document.URI("file:///b.json")
	s.DidOpen(uri, 1, `{}`)

	// DidChange flags the document cancelled synchronously, before the
	// debounce timer ever fires.
	err := s.DidChange(uri, 2, []document.Change{{HasRange: false, Text: `{"x": 1}`}})
	require.NoError(t, err)
	assert.True(t, s.Cancel.IsCancelled(uri))

	s.clearPending(uri)
}

func TestDidCloseForgetsCancelAndPublishesEmpty(t *testing.T) {
	s := New(testLogger())
	uri := document.URI("file:///c.json")
	var lastDiags []PublishedDiagnostic
	published := false
	s.Publish = func(u document.URI, version int32, diags []PublishedDiagnostic) {
		published = true
		lastDiags = diags
	}
	s.DidOpen(uri, 1, `{}`)

	s.DidClose(uri)

	assert.True(t, published)
	assert.Nil(t, lastDiags)
	assert.False(t, s.Cancel.IsCancelled(uri))
	_, ok := s.Store.Get(uri)
	assert.False(t, ok)
}

func TestValidateSortsDiagnosticsByPosition(t *testing.T) {
	s := New(testLogger())
	uri := document.URI("file:///d.json")
	s.Store.Open(document.Open(uri, 1, "{\n  \"a\": 1,\n  ,\n}"))
	got, ok := s.Store.Snapshot(uri)
	require.True(t, ok)

	diags := s.Validate(context.Background(), got)
	for i := 1; i < len(diags); i++ {
		a, b := diags[i-1].Range, diags[i].Range
		if a.StartLine == b.StartLine {
			assert.LessOrEqual(t, a.StartCol, b.StartCol)
		} else {
			assert.Less(t, a.StartLine, b.StartLine)
		}
	}
}
