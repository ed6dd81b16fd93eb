package validator

import (
	"fmt"
	"math"
	"math/big"

	"jsonls/internal/diag"
	"jsonls/internal/schema"
)

// multipleOfEpsilon tolerates float64 representation error per spec §4.5:
// abs(x - round(x/m)*m) < epsilon*max(1,|x|).
const multipleOfEpsilon = 1e-10

func checkNumber(value float64, s *schema.Schema, ctx *Context) []diag.Diagnostic {
	var out []diag.Diagnostic
	r := new(big.Rat).SetFloat64(value)

	if s.Minimum != nil && r.Cmp(s.Minimum.Rat) < 0 {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "minimum",
			fmt.Sprintf("%v is less than the minimum of %s", value, s.Minimum.Format())))
	}
	if s.Maximum != nil && r.Cmp(s.Maximum.Rat) > 0 {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "maximum",
			fmt.Sprintf("%v is greater than the maximum of %s", value, s.Maximum.Format())))
	}
	if s.ExclusiveMinimum != nil && r.Cmp(s.ExclusiveMinimum.Rat) <= 0 {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "exclusiveMinimum",
			fmt.Sprintf("%v is not strictly greater than %s", value, s.ExclusiveMinimum.Format())))
	}
	if s.ExclusiveMaximum != nil && r.Cmp(s.ExclusiveMaximum.Rat) >= 0 {
		out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "exclusiveMaximum",
			fmt.Sprintf("%v is not strictly less than %s", value, s.ExclusiveMaximum.Format())))
	}
	if s.MultipleOf != nil {
		m, _ := s.MultipleOf.Float64()
		if m != 0 {
			quotient := value / m
			remainder := math.Abs(value - math.Round(quotient)*m)
			tolerance := multipleOfEpsilon * math.Max(1, math.Abs(value))
			if remainder >= tolerance {
				out = append(out, diag.NewKeyword(diag.SchemaViolation, ctx.Path, "multipleOf",
					fmt.Sprintf("%v is not a multiple of %s", value, s.MultipleOf.Format())))
			}
		}
	}
	return out
}
