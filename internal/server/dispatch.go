package server

import (
	"context"
	"fmt"

	"jsonls/internal/document"
	"jsonls/internal/lsp"
)

// ErrUnknownDocument is returned by the URI-addressed wrappers below when
// the store holds no snapshot for the requested URI (the document was
// never opened, or was already closed).
var ErrUnknownDocument = fmt.Errorf("server: unknown document")

func (s *Server) snapshot(uri document.URI) (document.Snapshot, error) {
	snap, ok := s.Store.Snapshot(uri)
	if !ok {
		return document.Snapshot{}, fmt.Errorf("%w: %s", ErrUnknownDocument, uri)
	}
	return snap, nil
}

// HoverAt wraps Hover for the jsonrpc2 transport, which addresses
// documents by URI rather than holding a live Snapshot.
func (s *Server) HoverAt(ctx context.Context, uri document.URI, pos lsp.Position) (*lsp.Hover, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	h, ok := s.Hover(ctx, snap, pos)
	if !ok {
		return nil, nil
	}
	return h, nil
}

// CompletionAt wraps Completion for the jsonrpc2 transport.
func (s *Server) CompletionAt(ctx context.Context, uri document.URI, pos lsp.Position) (*lsp.CompletionList, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	return s.Completion(ctx, snap, pos), nil
}

// DefinitionAt wraps Definition for the jsonrpc2 transport.
func (s *Server) DefinitionAt(ctx context.Context, uri document.URI, pos lsp.Position) ([]lsp.Location, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	return s.Definition(ctx, snap, pos), nil
}

// DocumentSymbolAt wraps DocumentSymbol for the jsonrpc2 transport.
func (s *Server) DocumentSymbolAt(uri document.URI) ([]lsp.DocumentSymbol, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	return s.DocumentSymbol(snap), nil
}

// DocumentColorAt wraps DocumentColor for the jsonrpc2 transport.
func (s *Server) DocumentColorAt(uri document.URI) ([]lsp.ColorInformation, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	return s.DocumentColor(snap), nil
}

// FoldingRangeAt wraps FoldingRange for the jsonrpc2 transport.
func (s *Server) FoldingRangeAt(uri document.URI) ([]lsp.FoldingRange, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	return s.FoldingRange(snap), nil
}

// SelectionRangeAt wraps SelectionRange for the jsonrpc2 transport, fanning
// a single request out over every requested position per spec §4.7.
func (s *Server) SelectionRangeAt(uri document.URI, positions []lsp.Position) ([]*lsp.SelectionRange, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	out := make([]*lsp.SelectionRange, len(positions))
	for i, pos := range positions {
		out[i] = s.SelectionRange(snap, pos)
	}
	return out, nil
}

// DocumentLinkAt wraps DocumentLink for the jsonrpc2 transport.
func (s *Server) DocumentLinkAt(ctx context.Context, uri document.URI) ([]lsp.DocumentLink, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	return s.DocumentLink(ctx, snap), nil
}

// FormattingAt wraps Formatting for the jsonrpc2 transport.
func (s *Server) FormattingAt(uri document.URI, opts lsp.FormattingOptions) ([]lsp.TextEdit, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	return s.Formatting(snap, opts), nil
}

// RangeFormattingAt wraps RangeFormatting for the jsonrpc2 transport.
func (s *Server) RangeFormattingAt(uri document.URI, rng lsp.Range, opts lsp.FormattingOptions) ([]lsp.TextEdit, error) {
	snap, err := s.snapshot(uri)
	if err != nil {
		return nil, err
	}
	return s.RangeFormatting(snap, rng, opts), nil
}
