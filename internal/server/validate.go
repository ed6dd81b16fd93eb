package server

import (
	"context"
	"sort"

	"jsonls/internal/diag"
	"jsonls/internal/document"
	"jsonls/internal/syntax"
	"jsonls/internal/validator"
)

// Validate runs the full pipeline for one document snapshot: syntax
// diagnostics from the tree, plus (if a schema is associated) a full
// validator.Validate walk, translating every diag.Diagnostic's JSON
// Pointer InstancePath into an LSP Range via the snapshot's tree and line
// index. Per spec §8 property 4, equal snapshots always produce the same
// diagnostics in the same order; the results are sorted by position to
// guarantee that regardless of map-iteration order inside the validator.
func (s *Server) Validate(ctx context.Context, snap document.Snapshot) []PublishedDiagnostic {
	var out []PublishedDiagnostic

	for _, n := range snap.Tree.ErrorNodes() {
		out = append(out, s.rangeDiagnostic(snap, n, diag.SeverityError, "syntax error"))
	}
	for _, dk := range snap.Tree.DuplicateKeys() {
		out = append(out, s.rangeDiagnostic(snap, dk.Node, diag.SeverityWarning, "duplicate key \""+dk.Key+"\""))
	}

	value, ok := document.Value(snap.Tree)
	if ok {
		out = append(out, s.validateAgainstSchema(ctx, snap, value)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Range, out[j].Range
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		if a.StartCol != b.StartCol {
			return a.StartCol < b.StartCol
		}
		return out[i].Message < out[j].Message
	})
	return out
}

func (s *Server) validateAgainstSchema(ctx context.Context, snap document.Snapshot, value any) []PublishedDiagnostic {
	inlineSchema := ""
	if m, ok := value.(map[string]any); ok {
		if v, ok := m["$schema"].(string); ok {
			inlineSchema = v
		}
	}
	schemaURI, found := s.Resolver.AssociateDocument(string(snap.URI), inlineSchema)
	if !found {
		return nil
	}

	sch, err := s.Resolver.Fetch(ctx, schemaURI)
	if err != nil {
		if d, ok := s.Resolver.FailureDiagnostic(schemaURI, err); ok {
			return []PublishedDiagnostic{s.rangeDiagnostic(snap, snap.Tree.Root, d.Severity, d.Message)}
		}
		return nil
	}

	vctx := validator.NewContext(sch.GetSchemaURI(), s.Regex, s.Resolver)
	vctx.Cancelled = s.Cancel.Checker(snap.URI)
	diags := validator.Validate(value, sch, vctx)

	out := make([]PublishedDiagnostic, 0, len(diags))
	for _, d := range diags {
		node := document.NodeAtPath(snap.Tree, d.InstancePath)
		out = append(out, s.rangeDiagnostic(snap, node, d.Severity, d.Message))
	}
	return out
}

func (s *Server) rangeDiagnostic(snap document.Snapshot, n *syntax.Node, sev diag.Severity, message string) PublishedDiagnostic {
	start, end := n.Start, n.End
	sp := snap.Lines.OffsetToPosition(snap.Text, start)
	ep := snap.Lines.OffsetToPosition(snap.Text, end)
	return PublishedDiagnostic{
		Range:    Range{StartLine: sp.Line, StartCol: sp.Column, EndLine: ep.Line, EndCol: ep.Column},
		Severity: int(sev),
		Message:  message,
		Source:   "jsonls",
	}
}
