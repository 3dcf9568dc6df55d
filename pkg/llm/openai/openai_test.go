package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/llm"
	"github.com/dmitrymomot/namekit/pkg/llm/openai"
)

func newProvider(t *testing.T, h http.HandlerFunc) *openai.Provider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	p, err := openai.New(openai.Config{APIKey: "sk-test", Model: "test-model", BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	return p
}

func TestNew(t *testing.T) {
	_, err := openai.New(openai.Config{})
	assert.ErrorIs(t, err, llm.ErrAPIKeyRequired)

	p, err := openai.New(openai.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestComplete(t *testing.T) {
	t.Run("sends two messages with json mode", func(t *testing.T) {
		var got map[string]any
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"domains\":[]}"}}]}`))
		})

		out, err := p.Complete(context.Background(), llm.Request{
			System:      "sys",
			Prompt:      "user prompt",
			Temperature: 0.7,
			JSON:        true,
		})
		require.NoError(t, err)
		assert.Equal(t, `{"domains":[]}`, out)

		assert.Equal(t, "test-model", got["model"])
		assert.Equal(t, 0.7, got["temperature"])
		assert.Equal(t, map[string]any{"type": "json_object"}, got["response_format"])
		msgs := got["messages"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, map[string]any{"role": "system", "content": "sys"}, msgs[0])
		assert.Equal(t, map[string]any{"role": "user", "content": "user prompt"}, msgs[1])
	})

	t.Run("request model overrides default", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "other", body["model"])
			assert.NotContains(t, body, "response_format")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
		})
		_, err := p.Complete(context.Background(), llm.Request{Model: "other"})
		require.NoError(t, err)
	})

	t.Run("api error", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"bad model","type":"invalid_request_error"}}`))
		})
		_, err := p.Complete(context.Background(), llm.Request{})
		assert.ErrorIs(t, err, llm.ErrProviderError)
		assert.Contains(t, err.Error(), "bad model")
	})

	t.Run("rate limited", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
		})
		_, err := p.Complete(context.Background(), llm.Request{})
		assert.ErrorIs(t, err, llm.ErrRateLimitExceeded)
	})

	t.Run("non json error body", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := p.Complete(context.Background(), llm.Request{})
		assert.ErrorIs(t, err, llm.ErrProviderError)
	})

	t.Run("no choices", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})
		_, err := p.Complete(context.Background(), llm.Request{})
		assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
	})
}
