package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status code and a client-facing message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError uses the standard status text when message is empty.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest            = NewHTTPError(http.StatusBadRequest, "Invalid request body")
	ErrRequestEntityTooLarge = NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large")
	ErrUnsupportedMediaType  = NewHTTPError(http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	ErrInternalServerError   = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)
