package generate

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/namekit/handler"
	"github.com/dmitrymomot/namekit/pkg/namegen"
)

const (
	invalidRequestMessage   = "Invalid request data"
	generationFailedMessage = "Failed to generate domain suggestions"
)

// ViolationDetail is one entry of the 400 details map.
type ViolationDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Index   *int   `json:"index,omitempty"`
}

// MapError turns namegen failures into responses. Invalid requests become
// 400 with per-field details; generation failures become a generic 500.
func MapError(err error) (int, any, bool) {
	var invalid *namegen.InvalidRequestError
	if errors.As(err, &invalid) {
		details := make(map[namegen.Field][]ViolationDetail)
		for field, vs := range invalid.ByField() {
			for _, v := range vs {
				details[field] = append(details[field], ViolationDetail{Code: v.Code, Message: v.Message, Index: v.Index})
			}
		}
		return http.StatusBadRequest, handler.ErrorBody{Error: invalidRequestMessage, Details: details}, true
	}

	if errors.Is(err, namegen.ErrGenerationFailure) {
		return http.StatusInternalServerError, handler.ErrorBody{Error: generationFailedMessage}, true
	}
	return 0, nil, false
}
