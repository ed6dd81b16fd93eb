// Package sortcmd implements the json.sort command (spec §6): produce a
// WorkspaceEdit that replaces the whole document with its keys sorted
// alphabetically, recursively, leaving array order untouched.
package sortcmd

import (
	json "github.com/goccy/go-json"

	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
)

// Edit builds the full-document TextEdit replacing text with value
// re-encoded with sorted keys. ok is false if value cannot be marshaled.
// Comments in text are not carried over.
func Edit(uri lsp.DocumentURI, text string, lines *lineindex.LineIndex, value any) (lsp.TextEdit, bool) {
	sorted, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return lsp.TextEdit{}, false
	}
	endPos := lines.OffsetToPosition(text, len(text))
	return lsp.TextEdit{
		Range:   lsp.Range{Start: lsp.Position{Line: 0, Character: 0}, End: lsp.Position{Line: endPos.Line, Character: endPos.Column}},
		NewText: string(sorted) + "\n",
	}, true
}

// WorkspaceEdit wraps Edit's result in the document-keyed shape
// workspace/applyEdit expects.
func WorkspaceEdit(uri lsp.DocumentURI, text string, lines *lineindex.LineIndex, value any) (lsp.WorkspaceEdit, bool) {
	edit, ok := Edit(uri, text, lines, value)
	if !ok {
		return lsp.WorkspaceEdit{}, false
	}
	return lsp.WorkspaceEdit{Changes: map[lsp.DocumentURI][]lsp.TextEdit{uri: {edit}}}, true
}
