package handler

import (
	"context"
	"net/http"
)

// Context is the request context handed to a HandlerFunc. It cancels with
// the underlying request.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

type requestContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &requestContext{Context: r.Context(), w: w, r: r}
}

func (c *requestContext) Request() *http.Request              { return c.r }
func (c *requestContext) ResponseWriter() http.ResponseWriter { return c.w }
