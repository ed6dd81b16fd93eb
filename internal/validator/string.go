package validator

import (
	"fmt"
	"unicode/utf8"

	"jsonls/internal/diag"
	"jsonls/internal/schema"
)

// checkString implements minLength/maxLength (counted in Unicode scalar
// values per spec §4.5, not bytes), pattern, and format.
func checkString(value string, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	length := utf8.RuneCountInString(value)

	if s.MinLength != nil && length < *s.MinLength {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "minLength",
			fmt.Sprintf("string is shorter than the minimum length of %d", *s.MinLength)))
	}
	if s.MaxLength != nil && length > *s.MaxLength {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "maxLength",
			fmt.Sprintf("string is longer than the maximum length of %d", *s.MaxLength)))
	}

	if s.Pattern != "" {
		re, err := ctx.Regex.Compile(s.Pattern)
		if err != nil {
			out = append(out, diag.New(diag.RegexCompileFailure, ctx.Path, fmt.Sprintf("invalid pattern %q: %v", s.Pattern, err)))
		} else if !re.MatchString(value) {
			msg := fmt.Sprintf("string does not match pattern %q", s.Pattern)
			if s.PatternErrorMsg != "" {
				msg = s.PatternErrorMsg
			}
			out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "pattern", msg))
		}
	}

	if s.Format != "" {
		if fn, ok := formats[s.Format]; ok {
			if !fn(value, ctx) {
				out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "format",
					fmt.Sprintf("string does not match format %q", s.Format)))
			}
		}
	}

	return out
}
