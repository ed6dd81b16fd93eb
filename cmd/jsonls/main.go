// Command jsonls runs the JSON/JSONC language server over stdio.
package main

import (
	"context"
	"io"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"jsonls/internal/document"
	"jsonls/internal/logging"
	"jsonls/internal/lsp"
	"jsonls/internal/rpc"
	"jsonls/internal/server"
)

// stdio combines stdin/stdout into the single io.ReadWriteCloser the
// jsonrpc2 stream codec expects, grounded on sidedotdev-sidekick's
// ReadWriteCloser (the same shape, used there on the client side of this
// same stdio transport).
type stdio struct {
	io.Reader
	io.WriteCloser
}

func (s stdio) Close() error {
	return s.WriteCloser.Close()
}

func main() {
	filter, err := logging.ParseRustLog(os.Getenv("RUST_LOG"))
	if err != nil {
		filter, _ = logging.ParseRustLog("")
	}
	log := logging.New(os.Stderr, filter, logging.FormatLogfmt)

	srv := server.New(log)
	handler := &rpc.Handler{Server: srv}

	ctx := context.Background()
	stream := jsonrpc2.NewBufferedStream(stdio{os.Stdin, os.Stdout}, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, handler)

	srv.Publish = func(uri document.URI, version int32, diags []server.PublishedDiagnostic) {
		params := lsp.PublishDiagnosticsParams{
			URI:         lsp.DocumentURI(uri),
			Diagnostics: toLSPDiagnostics(diags),
		}
		if version != 0 {
			v := version
			params.Version = &v
		}
		if err := conn.Notify(ctx, "textDocument/publishDiagnostics", params); err != nil {
			log.Warn("publishDiagnostics notify failed", "uri", uri, "error", err)
		}
	}

	<-conn.DisconnectNotify()
}

func toLSPDiagnostics(diags []server.PublishedDiagnostic) []lsp.Diagnostic {
	out := make([]lsp.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, lsp.Diagnostic{
			Range: lsp.Range{
				Start: lsp.Position{Line: d.Range.StartLine, Character: d.Range.StartCol},
				End:   lsp.Position{Line: d.Range.EndLine, Character: d.Range.EndCol},
			},
			Severity: lsp.DiagnosticSeverity(d.Severity),
			Source:   d.Source,
			Message:  d.Message,
		})
	}
	return out
}
