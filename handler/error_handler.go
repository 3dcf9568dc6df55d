package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/namekit/pkg/binder"
	"github.com/dmitrymomot/namekit/pkg/logger"
	"github.com/dmitrymomot/namekit/pkg/requestid"
)

// ErrorMapper translates an error into a status and body. It reports false
// for errors it does not recognise.
type ErrorMapper func(err error) (status int, body any, ok bool)

// classify runs mappers first, then binder errors and HTTPError. Anything
// else is a 500 with a generic message.
func classify(err error, mappers []ErrorMapper) (int, any) {
	for _, m := range mappers {
		if status, body, ok := m(err); ok {
			return status, body
		}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType.Code, ErrorBody{Error: ErrUnsupportedMediaType.Message}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrRequestEntityTooLarge.Code, ErrorBody{Error: ErrRequestEntityTooLarge.Message}
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrNotAnObject):
		return ErrBadRequest.Code, ErrorBody{Error: ErrBadRequest.Message}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorBody{Error: httpErr.Message}
	}
	return ErrInternalServerError.Code, ErrorBody{Error: ErrInternalServerError.Message}
}

func logLevel(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler logs the error with request metadata and writes the JSON
// envelope. Client errors log at warn, server errors at error.
func NewErrorHandler(log *slog.Logger, mappers ...ErrorMapper) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, body := classify(err, mappers)

		log.LogAttrs(r.Context(), logLevel(status), "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSON(body, WithStatus(status)).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
