package validator

import "fmt"

func MinLenSlice[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMinItems,
			Message: fmt.Sprintf("must have at least %d items", min),
			Params:  map[string]any{"min": min},
		},
	}
}

func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMaxItems,
			Message: fmt.Sprintf("must have at most %d items", max),
			Params:  map[string]any{"max": max},
		},
	}
}
