// Package rpc wires the server's request handlers to a stdio jsonrpc2
// connection, grounded on sidedotdev-sidekick's Jsonrpc2LSPClient (the
// same library, used here on the server side of the same protocol).
package rpc

import (
	"context"
	"encoding/json"

	"github.com/sourcegraph/jsonrpc2"

	"jsonls/internal/document"
	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
	"jsonls/internal/server"
)

// Handler dispatches incoming jsonrpc2 requests/notifications to a Server.
type Handler struct {
	Server *server.Server
}

var _ jsonrpc2.Handler = (*Handler)(nil)

// Handle implements jsonrpc2.Handler. Notifications (req.Notif true) never
// reply; requests always do, even on error, per the JSON-RPC contract.
func (h *Handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	switch req.Method {
	case "initialize":
		h.handle(ctx, conn, req, h.initialize)
	case "initialized":
		h.Server.Initialized()
	case "shutdown":
		h.Server.Shutdown()
		if !req.Notif {
			_ = conn.Reply(ctx, req.ID, nil)
		}
	case "exit":
		h.Server.Exit()
		go conn.Close()
	case "$/cancelRequest":
		h.cancelRequest(req)
	case "textDocument/didOpen":
		h.didOpen(req)
	case "textDocument/didChange":
		h.didChange(req)
	case "textDocument/didSave":
		h.didSave(req)
	case "textDocument/didClose":
		h.didClose(req)
	case "workspace/didChangeConfiguration":
		h.didChangeConfiguration(req)
	case "textDocument/hover":
		h.handle(ctx, conn, req, h.hover)
	case "textDocument/completion":
		h.handle(ctx, conn, req, h.completion)
	case "textDocument/definition":
		h.handle(ctx, conn, req, h.definition)
	case "textDocument/documentSymbol":
		h.handle(ctx, conn, req, h.documentSymbol)
	case "textDocument/documentColor":
		h.handle(ctx, conn, req, h.documentColor)
	case "textDocument/colorPresentation":
		h.handle(ctx, conn, req, h.colorPresentation)
	case "textDocument/foldingRange":
		h.handle(ctx, conn, req, h.foldingRange)
	case "textDocument/selectionRange":
		h.handle(ctx, conn, req, h.selectionRange)
	case "textDocument/documentLink":
		h.handle(ctx, conn, req, h.documentLink)
	case "textDocument/formatting":
		h.handle(ctx, conn, req, h.formatting)
	case "textDocument/rangeFormatting":
		h.handle(ctx, conn, req, h.rangeFormatting)
	case "workspace/executeCommand":
		h.handle(ctx, conn, req, h.executeCommand)
	default:
		if !req.Notif {
			_ = conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: "method not found: " + req.Method,
			})
		}
	}
}

// handle decodes req.Params into the shape fn expects, calls fn, and
// replies with either the result or a JSON-RPC error. Every request
// handler below is written against this so errors always surface to the
// client instead of being logged and dropped.
func (h *Handler) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, fn func(ctx context.Context, raw *json.RawMessage) (any, error)) {
	result, err := fn(ctx, req.Params)
	if req.Notif {
		return
	}
	if err != nil {
		_ = conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: err.Error()})
		return
	}
	_ = conn.Reply(ctx, req.ID, result)
}

func decode[T any](raw *json.RawMessage) (T, error) {
	var v T
	if raw == nil {
		return v, nil
	}
	err := json.Unmarshal(*raw, &v)
	return v, err
}

func (h *Handler) initialize(_ context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[lsp.InitializeParams](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.Initialize(context.Background(), params), nil
}

// cancelRequest handles $/cancelRequest. The server's own CancelRegistry is
// keyed by document URI, not JSON-RPC request ID (it exists to let a new
// edit pre-empt that document's own in-flight debounced validation, the
// one long-running operation this server runs outside the request/reply
// cycle); an arbitrary in-flight hover/completion request has no document
// association recorded anywhere a cancel notification could look up, so
// there is nothing productive to do with the ID here.
func (h *Handler) cancelRequest(_ *jsonrpc2.Request) {}

func (h *Handler) didOpen(req *jsonrpc2.Request) {
	params, err := decode[lsp.DidOpenTextDocumentParams](req.Params)
	if err != nil {
		return
	}
	h.Server.DidOpen(document.URI(params.TextDocument.URI), params.TextDocument.Version, params.TextDocument.Text)
}

func (h *Handler) didChange(req *jsonrpc2.Request) {
	params, err := decode[lsp.DidChangeTextDocumentParams](req.Params)
	if err != nil {
		return
	}
	changes := make([]document.Change, len(params.ContentChanges))
	for i, c := range params.ContentChanges {
		if c.Range == nil {
			changes[i] = document.Change{Text: c.Text}
			continue
		}
		changes[i] = document.Change{
			HasRange: true,
			StartPos: lineindex.Position{Line: c.Range.Start.Line, Column: c.Range.Start.Character},
			EndPos:   lineindex.Position{Line: c.Range.End.Line, Column: c.Range.End.Character},
			Text:     c.Text,
		}
	}
	_ = h.Server.DidChange(document.URI(params.TextDocument.URI), params.TextDocument.Version, changes)
}

func (h *Handler) didSave(req *jsonrpc2.Request) {
	params, err := decode[lsp.DidSaveTextDocumentParams](req.Params)
	if err != nil {
		return
	}
	h.Server.DidSave(document.URI(params.TextDocument.URI))
}

func (h *Handler) didClose(req *jsonrpc2.Request) {
	params, err := decode[lsp.DidCloseTextDocumentParams](req.Params)
	if err != nil {
		return
	}
	h.Server.DidClose(document.URI(params.TextDocument.URI))
}

func (h *Handler) didChangeConfiguration(req *jsonrpc2.Request) {
	params, err := decode[lsp.DidChangeConfigurationParams](req.Params)
	if err != nil {
		return
	}
	h.Server.DidChangeConfiguration(params)
}

func (h *Handler) hover(ctx context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[lsp.TextDocumentPositionParams](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.HoverAt(ctx, document.URI(params.TextDocument.URI), params.Position)
}

func (h *Handler) completion(ctx context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[lsp.TextDocumentPositionParams](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.CompletionAt(ctx, document.URI(params.TextDocument.URI), params.Position)
}

func (h *Handler) definition(ctx context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[lsp.TextDocumentPositionParams](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.DefinitionAt(ctx, document.URI(params.TextDocument.URI), params.Position)
}

func (h *Handler) documentSymbol(_ context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[struct {
		TextDocument lsp.TextDocumentIdentifier `json:"textDocument"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.DocumentSymbolAt(document.URI(params.TextDocument.URI))
}

func (h *Handler) documentColor(_ context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[struct {
		TextDocument lsp.TextDocumentIdentifier `json:"textDocument"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.DocumentColorAt(document.URI(params.TextDocument.URI))
}

func (h *Handler) colorPresentation(_ context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[struct {
		TextDocument lsp.TextDocumentIdentifier `json:"textDocument"`
		Color        lsp.Color                  `json:"color"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.ColorPresentation(params.Color), nil
}

func (h *Handler) foldingRange(_ context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[struct {
		TextDocument lsp.TextDocumentIdentifier `json:"textDocument"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.FoldingRangeAt(document.URI(params.TextDocument.URI))
}

func (h *Handler) selectionRange(_ context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[struct {
		TextDocument lsp.TextDocumentIdentifier `json:"textDocument"`
		Positions    []lsp.Position             `json:"positions"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.SelectionRangeAt(document.URI(params.TextDocument.URI), params.Positions)
}

func (h *Handler) documentLink(ctx context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[struct {
		TextDocument lsp.TextDocumentIdentifier `json:"textDocument"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.DocumentLinkAt(ctx, document.URI(params.TextDocument.URI))
}

func (h *Handler) formatting(_ context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[lsp.DocumentFormattingParams](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.FormattingAt(document.URI(params.TextDocument.URI), params.Options)
}

func (h *Handler) rangeFormatting(_ context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[lsp.DocumentRangeFormattingParams](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.RangeFormattingAt(document.URI(params.TextDocument.URI), params.Range, params.Options)
}

func (h *Handler) executeCommand(ctx context.Context, raw *json.RawMessage) (any, error) {
	params, err := decode[lsp.ExecuteCommandParams](raw)
	if err != nil {
		return nil, err
	}
	return h.Server.ExecuteCommand(ctx, params)
}
