package quota

import (
	"context"
	"sync"
	"time"
)

type counter struct {
	used    int
	resetAt time.Time
}

// MemoryStore keeps counters in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time

	stopCleanup chan struct{}
	closeOnce   sync.Once
}

type MemoryStoreOption func(*MemoryStore)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.now = now
	}
}

// NewMemoryStore starts a background sweep of expired counters when
// cleanupInterval is positive. Call Close to stop it.
func NewMemoryStore(cleanupInterval time.Duration, opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		counters:    make(map[string]*counter),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}
	if cleanupInterval > 0 {
		go ms.cleanup(cleanupInterval)
	}
	return ms
}

func (ms *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	c, ok := ms.counters[key]
	if !ok || !now.Before(c.resetAt) {
		c = &counter{resetAt: now.Add(window)}
		ms.counters[key] = c
	}
	c.used++
	return c.used, c.resetAt, nil
}

func (ms *MemoryStore) Decrement(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if c, ok := ms.counters[key]; ok && ms.now().Before(c.resetAt) && c.used > 0 {
		c.used--
	}
	return nil
}

func (ms *MemoryStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeExpired()
		case <-ms.stopCleanup:
			return
		}
	}
}

func (ms *MemoryStore) removeExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, c := range ms.counters {
		if !now.Before(c.resetAt) {
			delete(ms.counters, key)
		}
	}
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	ms.closeOnce.Do(func() { close(ms.stopCleanup) })
}
