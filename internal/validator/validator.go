package validator

import (
	"fmt"
	"strings"

	"jsonls/internal/diag"
	"jsonls/internal/jsonpointer"
	"jsonls/internal/schema"
)

// Validate walks value against s, in the order spec §4.5 fixes: $ref,
// type, enum/const, type-specific keywords, composition, conditionals,
// deprecated. It always returns (diagnostics may be empty); it never
// panics.
func Validate(value any, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	if s == nil || ctx.isCancelled() {
		return nil
	}
	if s.IsBoolean {
		if s.BooleanValue {
			return nil
		}
		return []diag.Diagnostic{diag.New(diag.SchemaViolation, ctx.Path, "value matches a false schema")}
	}

	var out []diag.Diagnostic

	// 1. $ref.
	if s.Ref != "" {
		target, nextCtx, err := resolveRef(s, ctx)
		if err != nil {
			// A broken reference is reported once as a schema violation at
			// this location rather than aborting the walk.
			return append(out, diag.New(diag.SchemaViolation, ctx.Path, err.Error()))
		}
		if target == nil {
			// Already-visited cycle: succeed silently, per spec.
			return out
		}
		return Validate(value, target, nextCtx)
	}

	// 2. Type.
	out = append(out, checkType(value, s, ctx)...)

	// 3. enum / const.
	out = append(out, checkEnum(value, s, ctx)...)
	out = append(out, checkConst(value, s, ctx)...)

	if ctx.isCancelled() {
		return out
	}

	// 4. Type-specific keywords.
	switch v := value.(type) {
	case string:
		out = append(out, checkString(v, s, ctx)...)
	case float64:
		out = append(out, checkNumber(v, s, ctx)...)
	case []any:
		out = append(out, checkArray(v, s, ctx)...)
	case map[string]any:
		out = append(out, checkObject(v, s, ctx)...)
	}

	if ctx.isCancelled() {
		return out
	}

	// 5. Composition.
	out = append(out, checkComposition(value, s, ctx)...)

	// 6. Conditionals.
	out = append(out, checkConditional(value, s, ctx)...)

	// 7. deprecated.
	if s.Deprecated {
		msg := "this value is deprecated"
		if s.DeprecationMsg != "" {
			msg = s.DeprecationMsg
		}
		out = append(out, diag.Diagnostic{Kind: diag.Deprecated, Message: msg, InstancePath: ctx.Path, Severity: diag.SeverityWarning})
	}

	return applyCustomMessages(out, s)
}

// resolveRef follows s.Ref, returning (nil, _, nil) when the target URI is
// already in ctx.Visited (a cycle, succeeded silently per spec), or the
// resolved target schema and a Context copied with the new base URI and
// visited set otherwise.
func resolveRef(s *schema.Schema, ctx *Context) (*schema.Schema, *Context, error) {
	ref := s.Ref
	segments, fragOnly := splitFragment(ref)

	if fragOnly {
		root := s.Root()
		uri := ctx.BaseURI + ref
		if _, seen := ctx.Visited[uri]; seen {
			return nil, ctx, nil
		}
		raw, ok := jsonpointer.Resolve(root.Raw, segments)
		if !ok {
			return nil, ctx, fmt.Errorf("$ref %q does not resolve within the document", ref)
		}
		target, err := schema.Parse(raw, root, root.BaseURI)
		if err != nil {
			return nil, ctx, err
		}
		return target, ctx.withVisited(uri), nil
	}

	if ctx.Resolver == nil {
		return nil, ctx, fmt.Errorf("$ref %q requires a schema resolver, none configured", ref)
	}

	// An external ref may itself carry a fragment ("other.json#/definitions/
	// Foo"): the document part is what gets fetched, the fragment is walked
	// against the fetched document's Raw afterward, same as the
	// same-document branch above.
	docPart, fragment := splitExternalRef(ref)
	target, baseURI, err := ctx.Resolver.Resolve(ctx.BaseURI, docPart)
	if err != nil {
		return nil, ctx, err
	}
	visitedKey := baseURI + fragment
	if _, seen := ctx.Visited[visitedKey]; seen {
		return nil, ctx, nil
	}
	if fragment != "" {
		fragSegments, ferr := jsonpointer.Parse(fragment)
		if ferr != nil {
			return nil, ctx, fmt.Errorf("$ref %q has an invalid fragment: %w", ref, ferr)
		}
		raw, ok := jsonpointer.Resolve(target.Raw, fragSegments)
		if !ok {
			return nil, ctx, fmt.Errorf("$ref %q does not resolve within %q", ref, docPart)
		}
		target, err = schema.Parse(raw, target.Root(), baseURI)
		if err != nil {
			return nil, ctx, err
		}
	}
	return target, ctx.withVisited(visitedKey).withBaseURI(baseURI), nil
}

// splitExternalRef splits an external $ref into its document part and
// fragment (fragment includes the leading '#' when present), e.g.
// "other.json#/definitions/Foo" -> ("other.json", "#/definitions/Foo").
func splitExternalRef(ref string) (docPart, fragment string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		return ref[:i], ref[i:]
	}
	return ref, ""
}

// splitFragment reports whether ref is a same-document JSON Pointer
// fragment ("#", "#/a/b") and, if so, its parsed segments.
func splitFragment(ref string) (segments []string, fragOnly bool) {
	if len(ref) == 0 || ref[0] != '#' {
		return nil, false
	}
	segs, err := jsonpointer.Parse(ref)
	if err != nil {
		return nil, true
	}
	return segs, true
}

// applyCustomMessages rewrites SchemaViolation messages with s.ErrorMessage
// when present and the diagnostic's failing keyword has a matching entry,
// per spec §4.5. A bare string ErrorMessage applies to every violation.
func applyCustomMessages(diags []diag.Diagnostic, s *schema.Schema) []diag.Diagnostic {
	if s.ErrorMessage == nil {
		return diags
	}
	switch msg := s.ErrorMessage.(type) {
	case string:
		for i := range diags {
			if diags[i].Kind == diag.SchemaViolation {
				diags[i].Message = msg
			}
		}
	case map[string]any:
		for i := range diags {
			if diags[i].Kind != diag.SchemaViolation {
				continue
			}
			if diags[i].Keyword == "" {
				continue
			}
			if custom, ok := msg[diags[i].Keyword]; ok {
				if s, ok := custom.(string); ok {
					diags[i].Message = s
				}
			}
		}
	}
	return diags
}
