package validator

import (
	"fmt"

	"jsonls/internal/diag"
	"jsonls/internal/schema"
)

// checkComposition implements spec §4.5 step 5: allOf collects every
// branch's errors; anyOf succeeds if any branch succeeds, else reports the
// union of branch errors; oneOf requires exactly one success; not inverts.
func checkComposition(value any, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic

	for _, branch := range s.AllOf {
		out = append(out, Validate(value, branch, ctx)...)
	}

	if len(s.AnyOf) > 0 {
		var branchErrs []diag.Diagnostic
		ok := false
		for _, branch := range s.AnyOf {
			errs := Validate(value, branch, ctx)
			if len(errs) == 0 {
				ok = true
				break
			}
			branchErrs = append(branchErrs, errs...)
		}
		if !ok {
			out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "anyOf", "value does not match any schema in anyOf"))
			out = append(out, branchErrs...)
		}
	}

	if len(s.OneOf) > 0 {
		matches := 0
		for _, branch := range s.OneOf {
			if len(Validate(value, branch, ctx)) == 0 {
				matches++
			}
		}
		switch {
		case matches == 0:
			out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "oneOf", "value does not match any schema in oneOf"))
		case matches > 1:
			out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "oneOf",
				fmt.Sprintf("value matches more than one schema in oneOf (%d matched)", matches)))
		}
	}

	if s.Not != nil {
		if len(Validate(value, s.Not, ctx)) == 0 {
			out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "not", "value must not match the \"not\" schema"))
		}
	}

	return out
}

// checkConditional implements spec §4.5 step 6: evaluate if; errors from
// if itself are never reported, only the chosen branch's.
func checkConditional(value any, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	if s.If == nil {
		return nil
	}
	if len(Validate(value, s.If, ctx)) == 0 {
		if s.Then != nil {
			return Validate(value, s.Then, ctx)
		}
		return nil
	}
	if s.Else != nil {
		return Validate(value, s.Else, ctx)
	}
	return nil
}
