package validator

import (
	"fmt"
	"strings"

	"jsonls/internal/diag"
	"jsonls/internal/schema"
)

// checkType implements spec §4.5 step 2: a numeric value satisfies
// "integer" iff it has no fractional part; null is its own type; unions
// succeed if any listed type matches.
func checkType(value any, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	if len(s.Type) == 0 {
		return nil
	}
	actual := jsonType(value)
	for _, t := range s.Type {
		if t == actual {
			return nil
		}
		if t == "number" && actual == "integer" {
			return nil
		}
	}
	return []diag.Diagnostic{diag.NewKeyword(diag.SchemaViolation, ctx.Path, "type",
		fmt.Sprintf("value of type %q does not match expected type %s", actual, strings.Join(s.Type, " or ")))}
}

func jsonType(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		if v == float64(int64(v)) {
			return "integer"
		}
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
