package generate

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/namekit/handler"
	"github.com/dmitrymomot/namekit/pkg/binder"
	"github.com/dmitrymomot/namekit/pkg/namegen"
)

// Pipeline runs domain generation for a decoded request body.
type Pipeline interface {
	GenerateRaw(ctx context.Context, raw map[string]any) (*namegen.Response, error)
}

type Service struct {
	pipeline     Pipeline
	bind         binder.ObjectBinder
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService falls back to NewErrorHandler with MapError when errorHandler is nil.
func NewService(pipeline Pipeline, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(nil, MapError)
	}
	return &Service{
		pipeline:     pipeline,
		bind:         binder.JSON(),
		errorHandler: errorHandler,
	}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(s.generate,
		handler.WithBinder[handler.Context](s.bind),
		handler.WithErrorHandler[handler.Context, map[string]any](s.errorHandler),
	))

	return r
}

func (s *Service) generate(ctx handler.Context, body map[string]any) handler.Response {
	resp, err := s.pipeline.GenerateRaw(ctx, body)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(resp)
}
