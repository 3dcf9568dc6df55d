package validator

import (
	"fmt"
	"unicode/utf8"
)

func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMinLength,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Params:  map[string]any{"min": min},
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMaxLength,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Params:  map[string]any{"max": max},
		},
	}
}
