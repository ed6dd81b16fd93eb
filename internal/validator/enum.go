package validator

import (
	"jsonls/internal/diag"
	"jsonls/internal/schema"
)

// checkEnum reports a violation unless value structurally equals one of
// s.Enum's members; numeric equality compares numeric values, not
// representations, per spec §4.5.
func checkEnum(value any, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	if s.Enum == nil {
		return nil
	}
	for _, candidate := range s.Enum {
		if structuralEqual(value, candidate) {
			return nil
		}
	}
	return []diag.Diagnostic{diag.NewKeyword(diag.SchemaViolation, ctx.Path, "enum", "value does not match any allowed enum member")}
}

// checkConst is const's single-element-enum equivalent.
func checkConst(value any, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	if s.Const == nil {
		return nil
	}
	if structuralEqual(value, s.Const.Value) {
		return nil
	}
	return []diag.Diagnostic{diag.NewKeyword(diag.SchemaViolation, ctx.Path, "const", "value does not match the required constant")}
}

// structuralEqual compares decoded JSON values by structural JSON
// semantics: numbers compare by value, objects are unordered, arrays are
// ordered.
func structuralEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !structuralEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !structuralEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
