package lineindex

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	li := Build("abc\ndef\nghi")
	assert.Equal(t, 3, li.LineCount())
	assert.Equal(t, 0, li.LineStart(0))
	assert.Equal(t, 4, li.LineStart(1))
	assert.Equal(t, 8, li.LineStart(2))
}

func TestOffsetToPositionRoundTrip(t *testing.T) {
	text := "hello\nwörld\n日本語"
	li := Build(text)
	for off := 0; off <= len(text); {
		pos := li.OffsetToPosition(text, off)
		back := li.PositionToOffset(text, pos)
		require.Equal(t, off, back, "offset %d did not round-trip via %+v", off, pos)
		if off == len(text) {
			break
		}
		_, size := utf8.DecodeRuneInString(text[off:])
		off += size
	}
}

func TestPositionToOffsetSaturatesAtLineEnd(t *testing.T) {
	text := "ab\ncd"
	li := Build(text)
	off := li.PositionToOffset(text, Position{Line: 0, Column: 100})
	assert.Equal(t, 2, off)
}

func TestUpdateMatchesRebuild(t *testing.T) {
	text := "line one\nline two\nline three\n"
	li := Build(text)

	oldStart, oldEnd := 5, 8
	newText := "1\nline 1.5"
	updated := text[:oldStart] + newText + text[oldEnd:]

	li.Update(oldStart, oldEnd, newText)
	rebuilt := Build(updated)

	assert.Equal(t, rebuilt.starts, li.starts)
}
