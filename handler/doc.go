// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap turns it into an http.HandlerFunc, running the binder
// and routing any binding or render error through an ErrorHandler.
//
//	h := handler.HandlerFunc[handler.Context, map[string]any](
//		func(ctx handler.Context, body map[string]any) handler.Response {
//			return handler.JSON(result)
//		},
//	)
//	r.Post("/api/generate", handler.Wrap(h,
//		handler.WithBinder[handler.Context](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, map[string]any](errHandler),
//	))
//
// Error bodies share one envelope: {"error": "...", "details": ...}.
// NewErrorHandler maps binder errors and HTTPError values to statuses and
// accepts ErrorMapper functions for domain errors.
package handler
