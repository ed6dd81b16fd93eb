// Package selection implements the selectionRange thin traversal spec §4.8
// calls out: the innermost-node-to-root chain of byte ranges at a cursor
// offset, translated through LineIndex.
package selection

import (
	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
	"jsonls/internal/syntax"
)

// Chain returns the selection range at byte offset off, with Parent links
// from the innermost node out to the document root.
func Chain(text string, lines *lineindex.LineIndex, tree *syntax.Tree, off int) *lsp.SelectionRange {
	path := tree.Root.PathToRoot(off) // path[0] is the root, path[len-1] the innermost node
	var innermost *lsp.SelectionRange
	for _, n := range path {
		start := lines.OffsetToPosition(text, n.Start)
		end := lines.OffsetToPosition(text, n.End)
		innermost = &lsp.SelectionRange{
			Range:  lsp.Range{Start: lsp.Position{Line: start.Line, Character: start.Column}, End: lsp.Position{Line: end.Line, Character: end.Column}},
			Parent: innermost,
		}
	}
	return innermost
}
