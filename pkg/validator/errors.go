package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")
)

// Error codes attached to ValidationError.Code.
const (
	CodeRequired  = "required"
	CodeType      = "type"
	CodeMinItems  = "min_items"
	CodeMaxItems  = "max_items"
	CodeMinLength = "min_length"
	CodeMaxLength = "max_length"
	CodeMin       = "min"
	CodeMax       = "max"
	CodeInteger   = "integer"
)
