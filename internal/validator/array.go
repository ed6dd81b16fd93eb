package validator

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"

	"jsonls/internal/diag"
	"jsonls/internal/schema"
)

func checkArray(value []any, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic

	if s.MinItems != nil && len(value) < *s.MinItems {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "minItems",
			fmt.Sprintf("array has fewer than the minimum of %d items", *s.MinItems)))
	}
	if s.MaxItems != nil && len(value) > *s.MaxItems {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "maxItems",
			fmt.Sprintf("array has more than the maximum of %d items", *s.MaxItems)))
	}

	for i, item := range value {
		if ctx.isCancelled() {
			return out
		}
		var itemSchema *schema.Schema
		switch {
		case i < len(s.PrefixItems):
			itemSchema = s.PrefixItems[i]
		case s.Items != nil:
			itemSchema = s.Items
		default:
			continue
		}
		out = append(out, Validate(item, itemSchema, ctx.withPath(indexSeg(i)))...)
	}

	if s.Contains != nil {
		out = append(out, checkContains(value, s, ctx)...)
	}

	if s.UniqueItems {
		out = append(out, checkUniqueItems(value, ctx)...)
	}

	return out
}

func indexSeg(i int) string {
	return fmt.Sprintf("%d", i)
}

func checkContains(value []any, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	minContains := 1
	if s.MinContains != nil {
		minContains = *s.MinContains
	}
	matches := 0
	for i, item := range value {
		if len(Validate(item, s.Contains, ctx.withPath(indexSeg(i)))) == 0 {
			matches++
		}
	}
	var out []diag.Diagnostic
	if matches < minContains {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "contains",
			fmt.Sprintf("array must contain at least %d matching item(s), found %d", minContains, matches)))
	}
	if s.MaxContains != nil && matches > *s.MaxContains {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "contains",
			fmt.Sprintf("array must contain at most %d matching item(s), found %d", *s.MaxContains, matches)))
	}
	return out
}

// checkUniqueItems uses a canonicalized hash of each element's structural
// value to get expected O(n) behavior, confirming collisions by structural
// equality per spec §4.5.
func checkUniqueItems(value []any, ctx *Context) []diag.Diagnostic {
	seen := make(map[string][]any, len(value))
	for _, item := range value {
		key := canonicalKey(item)
		for _, prior := range seen[key] {
			if structuralEqual(item, prior) {
				return []diag.Diagnostic{diag.NewKeyword(diag.SchemaViolation, ctx.Path, "uniqueItems", "array items must be unique")}
			}
		}
		seen[key] = append(seen[key], item)
	}
	return nil
}

// canonicalKey renders value into a stable string: object keys sorted,
// so structurally-equal values always hash the same way regardless of key
// order.
func canonicalKey(value any) string {
	b, err := json.Marshal(canonicalize(value))
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}

func canonicalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ordered := make([]any, 0, len(keys)*2)
		for _, k := range keys {
			ordered = append(ordered, k, canonicalize(v[k]))
		}
		return ordered
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = canonicalize(item)
		}
		return out
	default:
		return v
	}
}
