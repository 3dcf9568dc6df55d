package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// ObjectBinder reads a request body into a JSON object.
type ObjectBinder func(r *http.Request) (map[string]any, error)

type options struct {
	maxSize int64
}

type Option func(*options)

// WithMaxSize overrides DefaultMaxJSONSize.
func WithMaxSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// JSON returns a binder for JSON object bodies. Numbers decode as
// json.Number and strings have NUL bytes removed.
func JSON(opts ...Option) ObjectBinder {
	o := options{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&o)
	}

	return func(r *http.Request) (map[string]any, error) {
		if err := r.Context().Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, o.maxSize+1))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > o.maxSize {
			return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, o.maxSize)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()

		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		obj, ok := v.(map[string]any)
		if !ok {
			return nil, ErrNotAnObject
		}
		sanitize(obj)
		return obj, nil
	}
}

// sanitize strips NUL bytes from every string in place.
func sanitize(v any) any {
	switch val := v.(type) {
	case string:
		return strings.ReplaceAll(val, "\x00", "")
	case map[string]any:
		for k, item := range val {
			val[k] = sanitize(item)
		}
	case []any:
		for i, item := range val {
			val[i] = sanitize(item)
		}
	}
	return v
}
