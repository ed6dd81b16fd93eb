// Package symbol implements the documentSymbol thin traversal spec §4.8
// calls out: a recursive walk of object/array/pair nodes into an LSP
// DocumentSymbol tree, using object keys as symbol names.
package symbol

import (
	"strconv"

	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
	"jsonls/internal/syntax"
)

// Build returns the document-symbol tree for tree's single top-level
// value. The root value itself is not wrapped in a synthetic symbol; its
// children (or, for a scalar root, nothing) are returned directly.
func Build(text string, lines *lineindex.LineIndex, tree *syntax.Tree) []lsp.DocumentSymbol {
	for _, c := range tree.Root.Children {
		if c.Kind == syntax.KindComment {
			continue
		}
		return childSymbols(text, lines, c)
	}
	return nil
}

func childSymbols(text string, lines *lineindex.LineIndex, n *syntax.Node) []lsp.DocumentSymbol {
	switch n.Kind {
	case syntax.KindObject:
		var out []lsp.DocumentSymbol
		for _, c := range n.Children {
			if c.Kind != syntax.KindPair {
				continue
			}
			key := c.FieldChild(syntax.FieldKey)
			value := c.FieldChild(syntax.FieldValue)
			if key == nil || value == nil || value.IsMissing() {
				continue
			}
			out = append(out, makeSymbol(text, lines, c.Key(), key, value))
		}
		return out
	case syntax.KindArray:
		var out []lsp.DocumentSymbol
		idx := 0
		for _, c := range n.Children {
			if c.Kind == syntax.KindComment || c.Kind == syntax.KindError {
				continue
			}
			out = append(out, makeSymbol(text, lines, strconv.Itoa(idx), c, c))
			idx++
		}
		return out
	default:
		return nil
	}
}

func makeSymbol(text string, lines *lineindex.LineIndex, name string, nameNode, valueNode *syntax.Node) lsp.DocumentSymbol {
	rangeStart := lines.OffsetToPosition(text, nameNode.Start)
	rangeEnd := lines.OffsetToPosition(text, valueNode.End)
	selStart := lines.OffsetToPosition(text, nameNode.Start)
	selEnd := lines.OffsetToPosition(text, nameNode.End)
	return lsp.DocumentSymbol{
		Name:           name,
		Kind:           kindOf(valueNode),
		Range:          lsp.Range{Start: lsp.Position{Line: rangeStart.Line, Character: rangeStart.Column}, End: lsp.Position{Line: rangeEnd.Line, Character: rangeEnd.Column}},
		SelectionRange: lsp.Range{Start: lsp.Position{Line: selStart.Line, Character: selStart.Column}, End: lsp.Position{Line: selEnd.Line, Character: selEnd.Column}},
		Children:       childSymbols(text, lines, valueNode),
	}
}

func kindOf(n *syntax.Node) lsp.SymbolKind {
	switch n.Kind {
	case syntax.KindObject:
		return lsp.SymbolKindObject
	case syntax.KindArray:
		return lsp.SymbolKindArray
	case syntax.KindString:
		return lsp.SymbolKindString
	case syntax.KindNumber:
		return lsp.SymbolKindNumber
	case syntax.KindTrue, syntax.KindFalse:
		return lsp.SymbolKindBoolean
	default:
		return lsp.SymbolKindNull
	}
}
