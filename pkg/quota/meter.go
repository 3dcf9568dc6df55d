package quota

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Status is a snapshot of one client's usage.
type Status struct {
	Limit     int
	Used      int
	Remaining int
	ResetAt   time.Time
}

// Meter is a fixed-window usage counter.
type Meter struct {
	store  Store
	limit  int
	window time.Duration
	prefix string
}

type MeterOption func(*Meter)

// WithKeyPrefix namespaces store keys.
func WithKeyPrefix(prefix string) MeterOption {
	return func(m *Meter) {
		m.prefix = prefix
	}
}

func NewMeter(store Store, limit int, window time.Duration, opts ...MeterOption) (*Meter, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidConfig)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidConfig)
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive", ErrInvalidConfig)
	}

	m := &Meter{store: store, limit: limit, window: window}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Reserve takes one use before the work runs. Over the limit the use is
// handed straight back and the error matches ErrQuotaExhausted; a failed
// hand-back is joined to it with ErrStoreUnavailable.
func (m *Meter) Reserve(ctx context.Context, key string) (Status, error) {
	used, resetAt, err := m.store.Increment(ctx, m.prefix+key, m.window)
	if err != nil {
		return Status{}, errors.Join(ErrStoreUnavailable, err)
	}
	if used > m.limit {
		st := m.status(m.limit, resetAt)
		if err := m.store.Decrement(ctx, m.prefix+key); err != nil {
			return st, errors.Join(ErrQuotaExhausted, ErrStoreUnavailable, err)
		}
		return st, ErrQuotaExhausted
	}
	return m.status(used, resetAt), nil
}

// Release returns a reserved use, for work that did not succeed.
func (m *Meter) Release(ctx context.Context, key string) error {
	if err := m.store.Decrement(ctx, m.prefix+key); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (m *Meter) status(used int, resetAt time.Time) Status {
	return Status{
		Limit:     m.limit,
		Used:      used,
		Remaining: max(m.limit-used, 0),
		ResetAt:   resetAt,
	}
}
