// Package binder decodes HTTP request bodies into untyped JSON objects for
// handlers that validate field shapes themselves.
//
// JSON enforces an application/json content type, a body size limit, a
// single top-level object and number preservation via json.Number.
//
//	raw, err := binder.JSON()(r)
//	if err != nil {
//		// errors.Is(err, binder.ErrUnsupportedMediaType) -> 415
//		// errors.Is(err, binder.ErrFailedToParseJSON)    -> 400
//	}
package binder
