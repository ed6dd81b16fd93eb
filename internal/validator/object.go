package validator

import (
	"fmt"
	"sort"

	"jsonls/internal/diag"
	"jsonls/internal/schema"
)

func checkObject(value map[string]any, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic

	if s.MinProperties != nil && len(value) < *s.MinProperties {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "minProperties",
			fmt.Sprintf("object has fewer than the minimum of %d properties", *s.MinProperties)))
	}
	if s.MaxProperties != nil && len(value) > *s.MaxProperties {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "maxProperties",
			fmt.Sprintf("object has more than the maximum of %d properties", *s.MaxProperties)))
	}

	if len(s.Required) > 0 {
		var missing []string
		for _, req := range s.Required {
			if _, ok := value[req]; !ok {
				missing = append(missing, req)
			}
		}
		if len(missing) == 1 {
			out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "required",
				fmt.Sprintf("missing required property %q", missing[0])))
		} else if len(missing) > 1 {
			sort.Strings(missing)
			out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "required",
				fmt.Sprintf("missing required properties: %v", missing)))
		}
	}

	matched := make(map[string]bool, len(value))
	for _, p := range s.Properties {
		if v, ok := value[p.Name]; ok {
			matched[p.Name] = true
			if ctx.isCancelled() {
				return out
			}
			out = append(out, Validate(v, p.Schema, ctx.withPath(p.Name))...)
		}
	}
	for _, pp := range s.PatternProperties {
		re, err := ctx.Regex.Compile(pp.Name)
		if err != nil {
			out = append(out, diag.New(diag.RegexCompileFailure, ctx.Path, fmt.Sprintf("invalid patternProperties key %q: %v", pp.Name, err)))
			continue
		}
		for key, v := range value {
			if re.MatchString(key) {
				matched[key] = true
				out = append(out, Validate(v, pp.Schema, ctx.withPath(key))...)
			}
		}
	}
	if s.AdditionalProperties != nil {
		if s.AdditionalProperties.Never() {
			var extra []string
			for key := range value {
				if !matched[key] {
					extra = append(extra, key)
				}
			}
			if len(extra) > 0 {
				sort.Strings(extra)
				out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "additionalProperties",
					fmt.Sprintf("unexpected additional propert(ies): %v", extra)))
			}
		} else if !s.AdditionalProperties.IsBool {
			for key, v := range value {
				if !matched[key] {
					out = append(out, Validate(v, s.AdditionalProperties.Schema, ctx.withPath(key))...)
				}
			}
		}
	}

	if s.PropertyNames != nil {
		for key := range value {
			out = append(out, Validate(key, s.PropertyNames, ctx.withPath(key))...)
		}
	}

	for propName, required := range s.DependentRequired {
		if _, present := value[propName]; !present {
			continue
		}
		for _, req := range required {
			if _, ok := value[req]; !ok {
				out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "dependentRequired",
					fmt.Sprintf("property %q requires %q to also be present", propName, req)))
			}
		}
	}
	for _, dep := range s.DependentSchemas {
		if _, present := value[dep.Name]; !present {
			continue
		}
		out = append(out, Validate(value, dep.Schema, ctx)...)
	}

	return out
}
