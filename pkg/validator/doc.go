// Package validator provides small, composable validation rules that report
// every failure at once instead of stopping at the first one.
//
// A Rule pairs a Check function with the ValidationError it produces when the
// check fails. Apply evaluates a list of rules and joins all failures into a
// ValidationErrors value which implements error.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MinLenSlice("keywords", keywords, 1),
//	    validator.MaxLenSlice("keywords", keywords, 5),
//	    validator.MaxLenString("description", description, 300),
//	    validator.MinNum("domainLength", length, 3),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// Rules for sequence elements are scoped with AtIndex so callers can tell
// which item failed:
//
//	for i, kw := range keywords {
//	    rules = append(rules, validator.AtIndex(validator.MaxLenString("keywords", kw, 30), i))
//	}
//
// String lengths are measured in characters (runes), not bytes.
//
// The package is stateless and safe for concurrent use.
package validator
