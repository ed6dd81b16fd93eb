// Package document implements the incremental document model: source text
// kept coherent with a concrete syntax tree and a line index, mutated by
// LSP didChange notifications.
package document

import (
	"errors"
	"fmt"

	"jsonls/internal/lineindex"
	"jsonls/internal/syntax"
)

// URI is an LSP document URI.
type URI string

// Change is one LSP content change: either a full-text replacement
// (HasRange false) or a range edit.
type Change struct {
	HasRange bool
	StartPos lineindex.Position
	EndPos   lineindex.Position
	Text     string
}

// Document pairs source text with its syntax tree and line index. The
// three are always mutually consistent after a successful ApplyChanges.
type Document struct {
	URI     URI
	Version int32
	Text    string
	Tree    *syntax.Tree
	Lines   *lineindex.LineIndex
}

// Open builds a new Document by parsing text in full.
func Open(uri URI, version int32, text string) *Document {
	return &Document{
		URI:     uri,
		Version: version,
		Text:    text,
		Tree:    syntax.Parse(text),
		Lines:   lineindex.Build(text),
	}
}

// ErrRangeOutOfBounds is returned when a change's range does not fit the
// current document; per spec, the whole notification's changes are then
// discarded and the document is left unmodified.
var ErrRangeOutOfBounds = errors.New("document: change range out of bounds")

// ApplyChanges applies every change in order, then advances Version. If any
// change is invalid the document is left completely unmodified and an error
// is returned; the caller is expected to surface it as a warning.
func (d *Document) ApplyChanges(version int32, changes []Change) error {
	text := d.Text
	lines := lineindex.Build(text) // scratch copy; committed only on success
	for _, ch := range changes {
		if !ch.HasRange {
			text = ch.Text
			lines = lineindex.Build(text)
			continue
		}
		if ch.StartPos.Line < 0 || ch.EndPos.Line < 0 || ch.StartPos.Line >= lines.LineCount() || ch.EndPos.Line >= lines.LineCount() {
			return fmt.Errorf("%w: lines %d-%d of %d", ErrRangeOutOfBounds, ch.StartPos.Line, ch.EndPos.Line, lines.LineCount())
		}
		start := lines.PositionToOffset(text, ch.StartPos)
		end := lines.PositionToOffset(text, ch.EndPos)
		if start > end || start < 0 || end > len(text) {
			return fmt.Errorf("%w: start=%d end=%d len=%d", ErrRangeOutOfBounds, start, end, len(text))
		}
		text = text[:start] + ch.Text + text[end:]
		lines.Update(start, end, ch.Text)
	}
	d.Text = text
	d.Lines = lines
	d.Tree = syntax.Edit(d.Tree, text)
	d.Version = version
	return nil
}

// Snapshot returns an immutable-by-convention copy of the fields a
// read-only request needs, taken at call time so later edits to d do not
// affect an in-flight request.
type Snapshot struct {
	URI     URI
	Version int32
	Text    string
	Tree    *syntax.Tree
	Lines   *lineindex.LineIndex
}

// Snapshot captures the document's current text/tree/line-index triple.
// The syntax.Tree and LineIndex values are never mutated in place
// (ApplyChanges always assigns new ones), so holding these references is
// safe even if the Document is edited concurrently afterward.
func (d *Document) Snapshot() Snapshot {
	return Snapshot{
		URI:     d.URI,
		Version: d.Version,
		Text:    d.Text,
		Tree:    d.Tree,
		Lines:   d.Lines,
	}
}
