package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/namekit/handler"
	"github.com/dmitrymomot/namekit/pkg/binder"
	"github.com/dmitrymomot/namekit/pkg/logger"
)

var errDomain = errors.New("domain failure")

func domainMapper(err error) (int, any, bool) {
	if errors.Is(err, errDomain) {
		return http.StatusTeapot, handler.ErrorBody{Error: "mapped", Details: map[string]int{"n": 1}}, true
	}
	return 0, nil, false
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"mapped domain error", fmt.Errorf("wrap: %w", errDomain), http.StatusTeapot, `{"error":"mapped","details":{"n":1}}`},
		{"unsupported media", binder.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, `{"error":"Content-Type must be application/json"}`},
		{"missing content type", binder.ErrMissingContentType, http.StatusUnsupportedMediaType, `{"error":"Content-Type must be application/json"}`},
		{"too large", binder.ErrBodyTooLarge, http.StatusRequestEntityTooLarge, `{"error":"Request body too large"}`},
		{"malformed json", binder.ErrFailedToParseJSON, http.StatusBadRequest, `{"error":"Invalid request body"}`},
		{"http error", handler.NewHTTPError(http.StatusConflict, ""), http.StatusConflict, `{"error":"Conflict"}`},
		{"unknown", errors.New("db exploded"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			eh := handler.NewErrorHandler(logger.New(logger.WithOutput(&buf)), domainMapper)

			w := httptest.NewRecorder()
			eh(handler.NewContext(w, httptest.NewRequest(http.MethodPost, "/api/generate", nil)), tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
			assert.Contains(t, buf.String(), "request error")
			assert.Contains(t, buf.String(), "/api/generate")
		})
	}
}

func TestNewErrorHandler_NoInternalLeak(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	handler.NewErrorHandler(logger.Discard())(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("password=hunter2"))
	assert.NotContains(t, w.Body.String(), "hunter2")
}
