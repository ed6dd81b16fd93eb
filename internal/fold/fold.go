// Package fold implements the foldingRange thin traversal spec §4.8 calls
// out: one range per multi-line object/array/block-comment node.
package fold

import (
	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
	"jsonls/internal/syntax"
)

// Ranges returns one lsp.FoldingRange per object, array, or block-comment
// node in tree that spans more than one line.
func Ranges(text string, lines *lineindex.LineIndex, tree *syntax.Tree) []lsp.FoldingRange {
	var out []lsp.FoldingRange
	tree.Root.Walk(func(n *syntax.Node) bool {
		switch n.Kind {
		case syntax.KindObject, syntax.KindArray:
			if r, ok := foldRange(text, lines, n, ""); ok {
				out = append(out, r)
			}
		case syntax.KindComment:
			if n.End-n.Start > 1 && text[n.Start+1] == '*' {
				if r, ok := foldRange(text, lines, n, lsp.FoldingKindComment); ok {
					out = append(out, r)
				}
			}
		}
		return true
	})
	return out
}

func foldRange(text string, lines *lineindex.LineIndex, n *syntax.Node, kind lsp.FoldingRangeKind) (lsp.FoldingRange, bool) {
	start := lines.OffsetToPosition(text, n.Start)
	end := lines.OffsetToPosition(text, n.End)
	if end.Line <= start.Line {
		return lsp.FoldingRange{}, false
	}
	return lsp.FoldingRange{StartLine: start.Line, EndLine: end.Line, Kind: kind}, true
}
