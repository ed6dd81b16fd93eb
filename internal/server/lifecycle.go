package server

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"jsonls/internal/config"
	"jsonls/internal/document"
	"jsonls/internal/lsp"
	"jsonls/internal/sortcmd"
)

// Initialize advertises the capabilities this server implements, per
// spec §4.7.
func (s *Server) Initialize(_ context.Context, params lsp.InitializeParams) lsp.InitializeResult {
	if params.InitializationOptions != nil {
		s.applySettings(params.InitializationOptions)
	}
	return lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync:                2, // incremental
			CompletionProvider:               map[string]any{},
			HoverProvider:                    true,
			DocumentSymbolProvider:           true,
			ColorProvider:                    true,
			DocumentFormattingProvider:       true,
			DocumentRangeFormattingProvider:  true,
			DocumentLinkProvider:             map[string]any{},
			DefinitionProvider:               true,
			FoldingRangeProvider:             true,
			SelectionRangeProvider:           true,
			ExecuteCommandProvider:           map[string]any{"commands": []string{"json.sort"}},
		},
	}
}

// Initialized is a no-op acknowledgement; nothing in this server's startup
// depends on the client's post-initialize notification.
func (s *Server) Initialized() {}

// Shutdown releases nothing the process needs to give up eagerly; actual
// teardown happens when the transport closes the connection on Exit.
func (s *Server) Shutdown() {}

// Exit does nothing on the server itself; the transport closes the
// connection on exit, which ends the process's main loop.
func (s *Server) Exit() {}

// DidChangeConfiguration refreshes the resolver's schema associations from
// the `json.schemas` section, per spec §4.3.
func (s *Server) DidChangeConfiguration(params lsp.DidChangeConfigurationParams) {
	s.applySettings(params.Settings)
}

func (s *Server) applySettings(settings map[string]any) {
	raw, ok := settings["json"]
	if !ok {
		return
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return
	}
	var section config.Section
	if err := json.Unmarshal(encoded, &section); err != nil {
		return
	}
	s.Resolver.SetAssociations(section.ToAssociations())
}

// ErrUnknownCommand is returned by ExecuteCommand for any command name
// other than json.sort, the only command this server registers.
var ErrUnknownCommand = errors.New("server: unknown command")

// ExecuteCommand implements workspace/executeCommand. The only registered
// command, json.sort, returns a WorkspaceEdit (spec §6); the caller applies
// it via workspace/applyEdit.
func (s *Server) ExecuteCommand(ctx context.Context, params lsp.ExecuteCommandParams) (*lsp.WorkspaceEdit, error) {
	switch params.Command {
	case "json.sort":
		return s.executeSort(params.Arguments)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, params.Command)
	}
}

func (s *Server) executeSort(args []any) (*lsp.WorkspaceEdit, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("server: json.sort requires a document URI argument")
	}
	uriStr, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("server: json.sort argument must be a URI string")
	}
	uri := document.URI(uriStr)
	snap, ok := s.Store.Snapshot(uri)
	if !ok {
		return nil, fmt.Errorf("server: unknown document %s", uriStr)
	}
	value, ok := document.Value(snap.Tree)
	if !ok {
		return nil, fmt.Errorf("server: %s does not currently hold a valid JSON value", uriStr)
	}
	edit, ok := sortcmd.WorkspaceEdit(lsp.DocumentURI(uriStr), snap.Text, snap.Lines, value)
	if !ok {
		return nil, fmt.Errorf("server: failed to build sort edit for %s", uriStr)
	}
	return &edit, nil
}
