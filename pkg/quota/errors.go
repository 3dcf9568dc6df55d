package quota

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid quota configuration")
	ErrStoreUnavailable = errors.New("quota store unavailable")
	ErrQuotaExhausted   = errors.New("free usage limit reached")
)
