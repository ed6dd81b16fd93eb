package schema

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrUnsupportedNumericValue is returned when a numeric keyword's raw JSON
// value is neither a number nor a numeric string.
var ErrUnsupportedNumericValue = errors.New("schema: unsupported value for numeric keyword")

// Rat wraps big.Rat so numeric keywords (multipleOf, minimum, maximum,
// exclusiveMinimum, exclusiveMaximum) compare exactly rather than through
// float64, which would let representation error leak into bound checks.
type Rat struct {
	*big.Rat
}

// NewRat builds a Rat from a decoded JSON scalar (float64, the integer
// kinds, or a numeric string).
func NewRat(value any) (*Rat, error) {
	var str string
	switch v := value.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedNumericValue
	}
	r := new(big.Rat)
	if _, ok := r.SetString(str); !ok {
		return nil, fmt.Errorf("schema: cannot parse %q as a number", str)
	}
	return &Rat{r}, nil
}

// Format renders r the way a schema author wrote it: a plain integer when
// exact, otherwise a trimmed decimal.
func (r *Rat) Format() string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(10)
	dec = strings.TrimRight(dec, "0")
	dec = strings.TrimRight(dec, ".")
	if dec == "" {
		return "0"
	}
	return dec
}
