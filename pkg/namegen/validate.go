package namegen

import (
	"encoding/json"
	"math"

	"github.com/dmitrymomot/namekit/pkg/validator"
)

const (
	MinKeywords          = 1
	MaxKeywords          = 5
	MaxKeywordLength     = 30
	MaxDescriptionLength = 300
	MinDomainLength      = 3
	MaxDomainLength      = 20
)

// Validate checks decoded request JSON and returns the typed request.
// All violations are collected; on failure the error is an
// *InvalidRequestError matching ErrInvalidRequest.
//
// A null description or tlds is treated as absent.
func Validate(raw map[string]any) (GenerationRequest, error) {
	var (
		req   GenerationRequest
		rules []validator.Rule
	)

	req.Keywords, rules = stringList(raw, FieldKeywords, true, rules)
	if req.Keywords != nil {
		rules = append(rules,
			validator.MinLenSlice(string(FieldKeywords), req.Keywords, MinKeywords),
			validator.MaxLenSlice(string(FieldKeywords), req.Keywords, MaxKeywords),
		)
		for i, kw := range req.Keywords {
			rules = append(rules, validator.AtIndex(validator.MaxLenString(string(FieldKeywords), kw, MaxKeywordLength), i))
		}
	}

	switch v := raw[string(FieldDescription)].(type) {
	case nil:
	case string:
		req.Description = v
		rules = append(rules, validator.MaxLenString(string(FieldDescription), v, MaxDescriptionLength))
	default:
		rules = append(rules, validator.Fail(string(FieldDescription), validator.CodeType, "must be a string"))
	}

	if v, ok := raw[string(FieldDomainLength)]; !ok || v == nil {
		rules = append(rules, validator.Fail(string(FieldDomainLength), validator.CodeRequired, "is required"))
	} else if n, ok := toFloat(v); !ok {
		rules = append(rules, validator.Fail(string(FieldDomainLength), validator.CodeType, "must be a number"))
	} else {
		rules = append(rules,
			validator.Integer(string(FieldDomainLength), n),
			validator.MinNum(string(FieldDomainLength), n, MinDomainLength),
			validator.MaxNum(string(FieldDomainLength), n, MaxDomainLength),
		)
		if n >= MinDomainLength && n <= MaxDomainLength {
			req.DomainLength = int(n)
		}
	}

	switch v := raw[string(FieldDomainStyle)].(type) {
	case nil:
		rules = append(rules, validator.Fail(string(FieldDomainStyle), validator.CodeRequired, "is required"))
	case string:
		req.DomainStyle = Style(v)
		rules = append(rules, validator.MinLenString(string(FieldDomainStyle), v, 1))
	default:
		rules = append(rules, validator.Fail(string(FieldDomainStyle), validator.CodeType, "must be a string"))
	}

	req.TLDs, rules = stringList(raw, FieldTLDs, false, rules)

	if err := validator.Apply(rules...); err != nil {
		return GenerationRequest{}, newInvalidRequestError(validator.ExtractValidationErrors(err))
	}
	return req, nil
}

// stringList reads an array of strings, appending shape violations to rules.
// Non-string elements are reported at their index and left as empty
// placeholders so the size rules still see every item.
func stringList(raw map[string]any, field Field, required bool, rules []validator.Rule) ([]string, []validator.Rule) {
	v, ok := raw[string(field)]
	if !ok || v == nil {
		if required {
			rules = append(rules, validator.Fail(string(field), validator.CodeRequired, "is required"))
		}
		return nil, rules
	}

	switch items := v.(type) {
	case []string:
		return items, rules
	case []any:
		out := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				rules = append(rules, validator.AtIndex(validator.Fail(string(field), validator.CodeType, "must be a string"), i))
			}
			out = append(out, s)
		}
		return out, rules
	default:
		rules = append(rules, validator.Fail(string(field), validator.CodeType, "must be an array of strings"))
		return nil, rules
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
