package validator

import (
	"fmt"
	"math"
)

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMin,
			Message: fmt.Sprintf("must be at least %v", min),
			Params:  map[string]any{"min": min},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMax,
			Message: fmt.Sprintf("must be at most %v", max),
			Params:  map[string]any{"max": max},
		},
	}
}

// Integer validates that a float carries no fractional part.
func Integer(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsInf(value, 0) && value == math.Trunc(value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeInteger,
			Message: "must be a whole number",
		},
	}
}
