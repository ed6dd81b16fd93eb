package server

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"jsonls/internal/color"
	"jsonls/internal/document"
	"jsonls/internal/fold"
	"jsonls/internal/format"
	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
	"jsonls/internal/schema"
	"jsonls/internal/selection"
	"jsonls/internal/symbol"
	"jsonls/internal/syntax"
)

func toLinePos(p lsp.Position) lineindex.Position {
	return lineindex.Position{Line: p.Line, Column: p.Character}
}

// associatedSchema resolves the schema snap's document is currently bound
// to, the same way Validate does, without producing diagnostics. Read-only
// requests use it against the Document snapshot current at entry, per
// spec §4.7's consistent-snapshot requirement.
func (s *Server) associatedSchema(ctx context.Context, snap document.Snapshot) (*schema.Schema, bool) {
	value, ok := document.Value(snap.Tree)
	if !ok {
		return nil, false
	}
	inlineSchema := ""
	if m, ok := value.(map[string]any); ok {
		if v, ok := m["$schema"].(string); ok {
			inlineSchema = v
		}
	}
	uri, found := s.Resolver.AssociateDocument(string(snap.URI), inlineSchema)
	if !found {
		return nil, false
	}
	sch, err := s.Resolver.Fetch(ctx, uri)
	if err != nil {
		return nil, false
	}
	return sch, true
}

// pathAtOffset returns the JSON Pointer segments from the document root
// down to the node at byte offset off, used to locate the sub-schema at a
// cursor position.
func pathAtOffset(tree *syntax.Tree, off int) []string {
	chain := tree.Root.PathToRoot(off)
	var path []string
	for i := 1; i < len(chain); i++ {
		parent, node := chain[i-1], chain[i]
		switch parent.Kind {
		case syntax.KindObject:
			pair := node
			if node.Kind != syntax.KindPair {
				// node is a pair's key or value child; walk up to the pair.
				for _, c := range parent.Children {
					if c.Kind == syntax.KindPair && (c.FieldChild(syntax.FieldKey) == node || c.FieldChild(syntax.FieldValue) == node) {
						pair = c
						break
					}
				}
			}
			if pair.Kind == syntax.KindPair {
				path = append(path, pair.Key())
			}
		case syntax.KindArray:
			idx := 0
			for _, c := range parent.Children {
				if c == node {
					path = append(path, indexSeg(idx))
					break
				}
				if c.Kind != syntax.KindComment && c.Kind != syntax.KindError {
					idx++
				}
			}
		}
	}
	return path
}

func indexSeg(i int) string {
	return strconv.Itoa(i)
}

// derefSchema follows sch's $ref chain (if any) via the server's own
// resolver, per spec §4.4's "always follow $ref first." nil passes through
// unchanged.
func (s *Server) derefSchema(sch *schema.Schema) *schema.Schema {
	if sch == nil {
		return nil
	}
	return schema.Deref(sch, sch.BaseURI, s.Resolver)
}

// Hover implements textDocument/hover: resolve the sub-schema at the
// cursor and return its description, per spec §4.4.
func (s *Server) Hover(ctx context.Context, snap document.Snapshot, pos lsp.Position) (*lsp.Hover, bool) {
	sch, ok := s.associatedSchema(ctx, snap)
	if !ok {
		return nil, false
	}
	off := snap.Lines.PositionToOffset(snap.Text, toLinePos(pos))
	path := pathAtOffset(snap.Tree, off)
	target := schema.ResolvePath(sch, path, s.Resolver)
	if target == nil || target.IsBoolean {
		return nil, false
	}
	text := hoverText(target)
	if text == "" {
		return nil, false
	}
	node := document.NodeAtPath(snap.Tree, path)
	start := snap.Lines.OffsetToPosition(snap.Text, node.Start)
	end := snap.Lines.OffsetToPosition(snap.Text, node.End)
	return &lsp.Hover{
		Contents: lsp.MarkupContent{Kind: "markdown", Value: text},
		Range:    &lsp.Range{Start: lsp.Position{Line: start.Line, Character: start.Column}, End: lsp.Position{Line: end.Line, Character: end.Column}},
	}, true
}

func hoverText(sch *schema.Schema) string {
	var b strings.Builder
	if sch.Title != "" {
		b.WriteString("**" + sch.Title + "**\n\n")
	}
	switch {
	case sch.MarkdownDesc != "":
		b.WriteString(sch.MarkdownDesc)
	case sch.Description != "":
		b.WriteString(sch.Description)
	}
	if sch.Deprecated {
		msg := sch.DeprecationMsg
		if msg == "" {
			msg = "this value is deprecated"
		}
		b.WriteString("\n\n_Deprecated: " + msg + "_")
	}
	return b.String()
}

// Completion implements textDocument/completion: resolve the sub-schema at
// the enclosing object/array and offer its property names or enum
// members. Per spec.md §9's open question, every field a client might
// need is populated eagerly since completionItem/resolve is unsupported.
func (s *Server) Completion(ctx context.Context, snap document.Snapshot, pos lsp.Position) *lsp.CompletionList {
	sch, ok := s.associatedSchema(ctx, snap)
	if !ok {
		return &lsp.CompletionList{}
	}
	off := snap.Lines.PositionToOffset(snap.Text, toLinePos(pos))
	path := pathAtOffset(snap.Tree, off)
	if len(path) > 0 {
		path = path[:len(path)-1]
	}
	target := schema.ResolvePath(sch, path, s.Resolver)
	if target == nil {
		return &lsp.CompletionList{}
	}

	var items []lsp.CompletionItem
	for _, p := range target.Properties {
		items = append(items, lsp.CompletionItem{
			Label:      p.Name,
			Kind:       lsp.CompletionKindProperty,
			Detail:     strings.Join(p.Schema.Type, "|"),
			Documentation: firstNonEmpty(p.Schema.MarkdownDesc, p.Schema.Description),
			InsertText: p.Name,
			Deprecated: p.Schema.Deprecated,
		})
	}
	for _, e := range target.Enum {
		if str, ok := e.(string); ok {
			items = append(items, lsp.CompletionItem{Label: str, Kind: lsp.CompletionKindEnumMember, InsertText: str})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	return &lsp.CompletionList{IsIncomplete: false, Items: items}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Definition implements textDocument/definition for a $ref: resolving the
// schema node at the cursor's enclosing pair, if its value is a `$ref`
// string, is out of the document model's reach (it names a schema
// location, not a document location) so this only supports same-document
// value navigation: jumping from a property's value back to nothing
// further is not meaningful for JSON values, so Definition currently
// reports no locations. Kept as an explicit method so the dispatch table
// in internal/rpc has a stable surface to wire against if schema-side
// go-to-definition is added later.
func (s *Server) Definition(_ context.Context, _ document.Snapshot, _ lsp.Position) []lsp.Location {
	return nil
}

// DocumentSymbol implements textDocument/documentSymbol.
func (s *Server) DocumentSymbol(snap document.Snapshot) []lsp.DocumentSymbol {
	return symbol.Build(snap.Text, snap.Lines, snap.Tree)
}

// DocumentColor implements textDocument/documentColor.
func (s *Server) DocumentColor(snap document.Snapshot) []lsp.ColorInformation {
	return color.Scan(snap.Text, snap.Lines, snap.Tree)
}

// ColorPresentation implements textDocument/colorPresentation.
func (s *Server) ColorPresentation(c lsp.Color) []lsp.ColorPresentation {
	return color.Presentations(c)
}

// FoldingRange implements textDocument/foldingRange.
func (s *Server) FoldingRange(snap document.Snapshot) []lsp.FoldingRange {
	return fold.Ranges(snap.Text, snap.Lines, snap.Tree)
}

// SelectionRange implements textDocument/selectionRange for one position;
// the caller fans this out over every requested position.
func (s *Server) SelectionRange(snap document.Snapshot, pos lsp.Position) *lsp.SelectionRange {
	off := snap.Lines.PositionToOffset(snap.Text, toLinePos(pos))
	return selection.Chain(snap.Text, snap.Lines, snap.Tree, off)
}

// DocumentLink implements textDocument/documentLink: string values
// described by a `format: "uri"` schema node become link targets.
func (s *Server) DocumentLink(ctx context.Context, snap document.Snapshot) []lsp.DocumentLink {
	sch, ok := s.associatedSchema(ctx, snap)
	if !ok {
		return nil
	}
	var out []lsp.DocumentLink
	value, ok := document.Value(snap.Tree)
	if !ok {
		return nil
	}
	var walk func(v any, sub *schema.Schema, path []string)
	walk = func(v any, sub *schema.Schema, path []string) {
		if sub == nil {
			return
		}
		if str, ok := v.(string); ok && sub.Format == "uri" {
			node := document.NodeAtPath(snap.Tree, path)
			start := snap.Lines.OffsetToPosition(snap.Text, node.Start)
			end := snap.Lines.OffsetToPosition(snap.Text, node.End)
			out = append(out, lsp.DocumentLink{
				Range:  lsp.Range{Start: lsp.Position{Line: start.Line, Character: start.Column}, End: lsp.Position{Line: end.Line, Character: end.Column}},
				Target: str,
			})
			return
		}
		switch vv := v.(type) {
		case map[string]any:
			for k, child := range vv {
				walk(child, s.derefSchema(schema.ResolveSegment(sub, k, false, 0, s.Resolver)), append(path, k))
			}
		case []any:
			for i, child := range vv {
				walk(child, s.derefSchema(schema.ResolveSegment(sub, indexSeg(i), true, i, s.Resolver)), append(path, indexSeg(i)))
			}
		}
	}
	walk(value, s.derefSchema(sch), nil)
	return out
}

// Formatting implements textDocument/formatting: a single edit replacing
// the whole document with its pretty-printed form.
func (s *Server) Formatting(snap document.Snapshot, opts lsp.FormattingOptions) []lsp.TextEdit {
	formatted := format.Print(snap.Tree, format.Options{TabSize: opts.TabSize, InsertSpaces: opts.InsertSpaces})
	if formatted == snap.Text {
		return nil
	}
	end := snap.Lines.OffsetToPosition(snap.Text, len(snap.Text))
	return []lsp.TextEdit{{
		Range:   lsp.Range{Start: lsp.Position{Line: 0, Character: 0}, End: lsp.Position{Line: end.Line, Character: end.Column}},
		NewText: formatted,
	}}
}

// RangeFormatting implements textDocument/rangeFormatting: the smallest
// node fully enclosing the requested range is reformatted in place, at
// its own nesting depth, leaving the rest of the document untouched.
func (s *Server) RangeFormatting(snap document.Snapshot, rng lsp.Range, opts lsp.FormattingOptions) []lsp.TextEdit {
	startOff := snap.Lines.PositionToOffset(snap.Text, toLinePos(rng.Start))
	endOff := snap.Lines.PositionToOffset(snap.Text, toLinePos(rng.End))
	node, depth := enclosingNode(snap.Tree, startOff, endOff)
	if node == nil {
		return nil
	}
	formatted := format.PrintNode(node, format.Options{TabSize: opts.TabSize, InsertSpaces: opts.InsertSpaces}, depth)
	if formatted == snap.Text[node.Start:node.End] {
		return nil
	}
	start := snap.Lines.OffsetToPosition(snap.Text, node.Start)
	end := snap.Lines.OffsetToPosition(snap.Text, node.End)
	return []lsp.TextEdit{{
		Range:   lsp.Range{Start: lsp.Position{Line: start.Line, Character: start.Column}, End: lsp.Position{Line: end.Line, Character: end.Column}},
		NewText: formatted,
	}}
}

// enclosingNode walks down from tree's root to the deepest object/array
// node whose byte range fully contains [startOff, endOff), tracking the
// nesting depth that node sits at so it is reformatted with correctly
// indented children.
func enclosingNode(tree *syntax.Tree, startOff, endOff int) (*syntax.Node, int) {
	var best *syntax.Node
	depth := 0
	var walk func(n *syntax.Node, d int)
	walk = func(n *syntax.Node, d int) {
		if n.Start > startOff || n.End < endOff {
			return
		}
		next := d
		if n.Kind == syntax.KindObject || n.Kind == syntax.KindArray {
			best = n
			depth = d
			next = d + 1
		}
		for _, c := range n.Children {
			walk(c, next)
		}
	}
	for _, c := range tree.Root.Children {
		walk(c, 0)
	}
	return best, depth
}
