// Package lsp defines the wire types for the subset of the Language Server
// Protocol this server implements (spec §4.7, §6). The stdio jsonrpc2
// transport that carries them lives in internal/rpc.
package lsp

// DocumentURI is an LSP document URI, e.g. "file:///a/b.json".
type DocumentURI string

// Position is a zero-based (line, UTF-16 character) pair.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a half-open [Start, End) span expressed as Positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Location names a Range within a document.
type Location struct {
	URI   DocumentURI `json:"uri"`
	Range Range       `json:"range"`
}

// TextDocumentIdentifier names a document by URI.
type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

// VersionedTextDocumentIdentifier additionally carries the client's
// monotonic version counter.
type VersionedTextDocumentIdentifier struct {
	URI     DocumentURI `json:"uri"`
	Version int32       `json:"version"`
}

// TextDocumentItem is the full payload of a didOpen notification.
type TextDocumentItem struct {
	URI        DocumentURI `json:"uri"`
	LanguageID string      `json:"languageId"`
	Version    int32       `json:"version"`
	Text       string      `json:"text"`
}

// TextDocumentPositionParams is the common shape of position-addressed
// requests (hover, completion, definition).
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// DidOpenTextDocumentParams is textDocument/didOpen's payload.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentContentChangeEvent is one entry of didChange's contentChanges
// array: either a full-text replacement (Range nil) or a range edit.
type TextDocumentContentChangeEvent struct {
	Range *Range `json:"range,omitempty"`
	Text  string `json:"text"`
}

// DidChangeTextDocumentParams is textDocument/didChange's payload.
type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier   `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// DidSaveTextDocumentParams is textDocument/didSave's payload.
type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Text         *string                `json:"text,omitempty"`
}

// DidCloseTextDocumentParams is textDocument/didClose's payload.
type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// DiagnosticSeverity mirrors the LSP 1..4 error/warning/info/hint scale.
type DiagnosticSeverity int

const (
	SeverityError       DiagnosticSeverity = 1
	SeverityWarning     DiagnosticSeverity = 2
	SeverityInformation DiagnosticSeverity = 3
	SeverityHint        DiagnosticSeverity = 4
)

// Diagnostic is one published problem marker.
type Diagnostic struct {
	Range    Range              `json:"range"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
	Source   string             `json:"source,omitempty"`
	Message  string             `json:"message"`
}

// PublishDiagnosticsParams is textDocument/publishDiagnostics' payload.
type PublishDiagnosticsParams struct {
	URI     DocumentURI  `json:"uri"`
	Version *int32       `json:"version,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// TextEdit replaces Range with NewText.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// WorkspaceEdit is the result of executeCommand("json.sort"): a plain
// changes map keyed by document URI, matching spec §6's "replaces the
// entire document" requirement with a single full-range TextEdit per URI.
type WorkspaceEdit struct {
	Changes map[DocumentURI][]TextEdit `json:"changes,omitempty"`
}

// CompletionItemKind mirrors the subset of the LSP enum this server uses.
type CompletionItemKind int

const (
	CompletionKindValue    CompletionItemKind = 12 // Value
	CompletionKindProperty CompletionItemKind = 10 // Property
	CompletionKindEnumMember CompletionItemKind = 20
)

// CompletionItem is one entry returned from textDocument/completion.
// Per spec.md §9's open question, completion-item resolve is unsupported,
// so every field a client might need is populated up front rather than
// deferred to completionItem/resolve.
type CompletionItem struct {
	Label            string             `json:"label"`
	Kind             CompletionItemKind `json:"kind,omitempty"`
	Detail           string             `json:"detail,omitempty"`
	Documentation    string             `json:"documentation,omitempty"`
	InsertText       string             `json:"insertText,omitempty"`
	Deprecated       bool               `json:"deprecated,omitempty"`
	SortText         string             `json:"sortText,omitempty"`
}

// CompletionList is textDocument/completion's result.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// MarkupContent is hover's content payload.
type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Hover is textDocument/hover's result.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

// SymbolKind mirrors the subset of the LSP enum this server produces.
type SymbolKind int

const (
	SymbolKindObject SymbolKind = 19
	SymbolKindArray  SymbolKind = 18
	SymbolKindString SymbolKind = 15
	SymbolKindNumber SymbolKind = 16
	SymbolKindBoolean SymbolKind = 17
	SymbolKindNull    SymbolKind = 21
)

// DocumentSymbol is one node of textDocument/documentSymbol's result tree.
type DocumentSymbol struct {
	Name           string           `json:"name"`
	Kind           SymbolKind       `json:"kind"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// ColorInformation is one entry of textDocument/documentColor's result.
type ColorInformation struct {
	Range Range `json:"range"`
	Color Color `json:"color"`
}

// Color is an RGBA color with each channel normalized to [0,1].
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// ColorPresentation is one entry of textDocument/colorPresentation's result.
type ColorPresentation struct {
	Label string `json:"label"`
}

// FoldingRangeKind names the well-known LSP folding categories this server
// produces ("comment" or the zero value for a plain region).
type FoldingRangeKind string

const FoldingKindComment FoldingRangeKind = "comment"

// FoldingRange is one entry of textDocument/foldingRange's result.
type FoldingRange struct {
	StartLine int              `json:"startLine"`
	EndLine   int              `json:"endLine"`
	Kind      FoldingRangeKind `json:"kind,omitempty"`
}

// SelectionRange is one node of the textDocument/selectionRange result
// chain: Parent points from the innermost range outward to the root.
type SelectionRange struct {
	Range  Range           `json:"range"`
	Parent *SelectionRange `json:"parent,omitempty"`
}

// DocumentLink is one entry of textDocument/documentLink's result.
type DocumentLink struct {
	Range  Range  `json:"range"`
	Target string `json:"target,omitempty"`
}

// FormattingOptions is the shared payload of formatting/rangeFormatting.
type FormattingOptions struct {
	TabSize      int  `json:"tabSize"`
	InsertSpaces bool `json:"insertSpaces"`
}

// DocumentFormattingParams is textDocument/formatting's payload.
type DocumentFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Options      FormattingOptions      `json:"options"`
}

// DocumentRangeFormattingParams is textDocument/rangeFormatting's payload.
type DocumentRangeFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Options      FormattingOptions      `json:"options"`
}

// ExecuteCommandParams is workspace/executeCommand's payload.
type ExecuteCommandParams struct {
	Command   string `json:"command"`
	Arguments []any  `json:"arguments,omitempty"`
}

// DidChangeConfigurationParams is workspace/didChangeConfiguration's payload.
type DidChangeConfigurationParams struct {
	Settings map[string]any `json:"settings"`
}

// InitializeParams is the initialize request's payload (only the fields
// this server consults).
type InitializeParams struct {
	ProcessID             *int           `json:"processId,omitempty"`
	RootURI               *string        `json:"rootUri,omitempty"`
	InitializationOptions map[string]any `json:"initializationOptions,omitempty"`
}

// ServerCapabilities advertises the methods this server handles, per
// spec §4.7.
type ServerCapabilities struct {
	TextDocumentSync           int                    `json:"textDocumentSync"`
	CompletionProvider         map[string]any         `json:"completionProvider,omitempty"`
	HoverProvider              bool                   `json:"hoverProvider"`
	DocumentSymbolProvider     bool                   `json:"documentSymbolProvider"`
	ColorProvider              bool                   `json:"colorProvider"`
	DocumentFormattingProvider bool                   `json:"documentFormattingProvider"`
	DocumentRangeFormattingProvider bool              `json:"documentRangeFormattingProvider"`
	DocumentLinkProvider       map[string]any         `json:"documentLinkProvider,omitempty"`
	DefinitionProvider         bool                   `json:"definitionProvider"`
	FoldingRangeProvider       bool                   `json:"foldingRangeProvider"`
	SelectionRangeProvider     bool                   `json:"selectionRangeProvider"`
	ExecuteCommandProvider     map[string]any         `json:"executeCommandProvider,omitempty"`
}

// InitializeResult is the initialize request's response.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
}
