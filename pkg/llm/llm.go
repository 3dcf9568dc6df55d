// Package llm defines the narrow text-completion capability namekit needs
// from a generative model provider, plus adapters for OpenAI, Anthropic and
// Gemini in sub-packages.
//
// A Request is always a two-message exchange: a system instruction and one
// user prompt. Providers that support a structured-output mode enable it when
// Request.JSON is set; the others are asked for JSON in the system message.
package llm

import (
	"context"
	"errors"
)

var (
	ErrAPIKeyRequired    = errors.New("API key is required")
	ErrEmptyCompletion   = errors.New("model returned no content")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrProviderError     = errors.New("model provider error")
)

// Request is a single completion call.
type Request struct {
	// Model overrides the provider default when non-empty.
	Model       string
	System      string
	Prompt      string
	Temperature float64
	// JSON asks the provider for a JSON object response.
	JSON bool
}

// Completer produces the raw text of one model reply.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	// Name identifies the provider in logs.
	Name() string
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

func (f CompleterFunc) Name() string { return "func" }
