package quota

import (
	"context"
	"time"
)

// Store keeps per-key usage counters that expire with their window. Both
// operations must be atomic per key.
type Store interface {
	// Increment adds one use, starting a new window of the given length when
	// the key has none. It returns the count including this use.
	Increment(ctx context.Context, key string, window time.Duration) (used int, resetAt time.Time, err error)
	// Decrement hands one use back. It never drops a counter below zero and
	// never extends its window.
	Decrement(ctx context.Context, key string) error
}
