package document

import (
	"testing"

	"jsonls/internal/lineindex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBuildsTreeAndLines(t *testing.T) {
	doc := Open("file:///a.json", 1, `{"a":1}`)
	assert.Equal(t, int32(1), doc.Version)
	require.NotNil(t, doc.Tree)
	require.NotNil(t, doc.Lines)
}

func TestApplyChangesFullReplace(t *testing.T) {
	doc := Open("file:///a.json", 1, `{"a":1}`)
	err := doc.ApplyChanges(2, []Change{{Text: `{"b":2}`}})
	require.NoError(t, err)
	assert.Equal(t, `{"b":2}`, doc.Text)
	assert.Equal(t, int32(2), doc.Version)
}

func TestApplyChangesRangeEdit(t *testing.T) {
	doc := Open("file:///a.json", 1, `{"a":1}`)
	// Replace the "1" at offset 5 with "42".
	err := doc.ApplyChanges(2, []Change{{
		HasRange: true,
		StartPos: lineindex.Position{Line: 0, Column: 5},
		EndPos:   lineindex.Position{Line: 0, Column: 6},
		Text:     "42",
	}})
	require.NoError(t, err)
	assert.Equal(t, `{"a":42}`, doc.Text)
}

func TestApplyChangesRejectsOutOfBoundsRange(t *testing.T) {
	doc := Open("file:///a.json", 1, `{"a":1}`)
	original := doc.Text
	err := doc.ApplyChanges(2, []Change{{
		HasRange: true,
		StartPos: lineindex.Position{Line: 5, Column: 0},
		EndPos:   lineindex.Position{Line: 6, Column: 0},
		Text:     "x",
	}})
	require.Error(t, err)
	assert.Equal(t, original, doc.Text)
	assert.Equal(t, int32(1), doc.Version)
}

func TestStoreSnapshotIsolatedFromLaterEdits(t *testing.T) {
	store := NewStore()
	doc := Open("file:///a.json", 1, `{"a":1}`)
	store.Open(doc)

	snap, ok := store.Snapshot("file:///a.json")
	require.True(t, ok)

	require.NoError(t, store.Mutate("file:///a.json", func(d *Document) error {
		return d.ApplyChanges(2, []Change{{Text: `{"b":2}`}})
	}))

	assert.Equal(t, `{"a":1}`, snap.Text)
	live, _ := store.Snapshot("file:///a.json")
	assert.Equal(t, `{"b":2}`, live.Text)
}
