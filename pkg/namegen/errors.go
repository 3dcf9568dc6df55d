package namegen

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/namekit/pkg/validator"
)

var (
	ErrInvalidRequest    = errors.New("invalid request data")
	ErrGenerationFailure = errors.New("failed to generate domain suggestions")
	ErrRegistryDegraded  = errors.New("registry lookup failed")
)

// Field names a request property that can carry violations.
type Field string

const (
	FieldKeywords     Field = "keywords"
	FieldDescription  Field = "description"
	FieldDomainLength Field = "domainLength"
	FieldDomainStyle  Field = "domainStyle"
	FieldTLDs         Field = "tlds"
)

// Violation is one failed constraint on a request field.
type Violation struct {
	Field   Field
	Index   *int // position within keywords or tlds
	Code    string
	Message string
}

// InvalidRequestError lists every violation found in a request.
type InvalidRequestError struct {
	Violations []Violation

	cause validator.ValidationErrors
}

func (e *InvalidRequestError) Error() string {
	if len(e.Violations) == 0 {
		return ErrInvalidRequest.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.path()+": "+v.Message)
	}
	return ErrInvalidRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func (e *InvalidRequestError) Unwrap() error {
	if len(e.cause) == 0 {
		return nil
	}
	return e.cause
}

// ByField groups violations by field, keeping their order.
func (e *InvalidRequestError) ByField() map[Field][]Violation {
	out := make(map[Field][]Violation, len(e.Violations))
	for _, v := range e.Violations {
		out[v.Field] = append(out[v.Field], v)
	}
	return out
}

// Has reports whether any violation names the field.
func (e *InvalidRequestError) Has(field Field) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func (v Violation) path() string {
	return validator.ValidationError{Field: string(v.Field), Index: v.Index}.Path()
}

func newInvalidRequestError(errs validator.ValidationErrors) *InvalidRequestError {
	out := &InvalidRequestError{
		Violations: make([]Violation, 0, len(errs)),
		cause:      errs,
	}
	for _, e := range errs {
		out.Violations = append(out.Violations, Violation{
			Field:   Field(e.Field),
			Index:   e.Index,
			Code:    e.Code,
			Message: e.Message,
		})
	}
	return out
}
