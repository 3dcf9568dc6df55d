package quota_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/clientip"
	"github.com/dmitrymomot/namekit/pkg/logger"
	"github.com/dmitrymomot/namekit/pkg/quota"
)

const signup = "https://example.com/signup"

func newGate(t *testing.T, limit int, status int) (http.Handler, *int) {
	t.Helper()

	store := quota.NewMemoryStore(0)
	t.Cleanup(store.Close)
	m, err := quota.NewMeter(store, limit, time.Hour)
	require.NoError(t, err)

	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
	})
	return quota.Middleware(m, clientip.GetIP, signup, logger.Discard())(next), &calls
}

func serve(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.RemoteAddr = ip + ":5000"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestMiddleware_Exhausts(t *testing.T) {
	t.Parallel()

	h, calls := newGate(t, 2, http.StatusOK)

	w := serve(h, "10.0.0.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-Quota-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-Quota-Remaining"))

	w = serve(h, "10.0.0.1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-Quota-Remaining"))

	w = serve(h, "10.0.0.1")
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.JSONEq(t, `{"error":"Free usage limit reached","signupUrl":"https://example.com/signup"}`, w.Body.String())
	assert.Equal(t, 2, *calls)

	w = serve(h, "10.0.0.2")
	assert.Equal(t, http.StatusOK, w.Code, "other clients keep their own quota")
}

func TestMiddleware_FailuresAreFree(t *testing.T) {
	t.Parallel()

	h, calls := newGate(t, 1, http.StatusInternalServerError)
	for range 3 {
		w := serve(h, "10.0.0.3")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
	assert.Equal(t, 3, *calls)
}

type brokenStore struct{}

func (brokenStore) Increment(context.Context, string, time.Duration) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("down")
}

func (brokenStore) Decrement(context.Context, string) error {
	return errors.New("down")
}

// overLimitStore counts fine but cannot hand uses back.
type overLimitStore struct{ used int }

func (s *overLimitStore) Increment(context.Context, string, time.Duration) (int, time.Time, error) {
	s.used++
	return s.used, time.Time{}, nil
}

func (s *overLimitStore) Decrement(context.Context, string) error {
	return errors.New("down")
}

func TestMiddleware_FailOpen(t *testing.T) {
	t.Parallel()

	m, err := quota.NewMeter(brokenStore{}, 1, time.Hour)
	require.NoError(t, err)

	calls := 0
	h := quota.Middleware(m, clientip.GetIP, signup, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for range 3 {
		assert.Equal(t, http.StatusOK, serve(h, "10.0.0.4").Code)
	}
	assert.Equal(t, 3, calls)
}

func TestMiddleware_ExhaustedWhenRefundFails(t *testing.T) {
	t.Parallel()

	m, err := quota.NewMeter(&overLimitStore{used: 1}, 1, time.Hour)
	require.NoError(t, err)

	calls := 0
	h := quota.Middleware(m, clientip.GetIP, signup, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	assert.Equal(t, http.StatusPaymentRequired, serve(h, "10.0.0.5").Code)
	assert.Zero(t, calls)
}

func TestMiddleware_RefundAfterFailure(t *testing.T) {
	t.Parallel()

	store := quota.NewMemoryStore(0)
	t.Cleanup(store.Close)
	m, err := quota.NewMeter(store, 1, time.Hour)
	require.NoError(t, err)

	fail := true
	h := quota.Middleware(m, clientip.GetIP, signup, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	assert.Equal(t, http.StatusInternalServerError, serve(h, "10.0.0.6").Code)
	fail = false
	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.6").Code)
	assert.Equal(t, http.StatusPaymentRequired, serve(h, "10.0.0.6").Code)
}

func TestMiddleware_ConcurrentRequestsRespectLimit(t *testing.T) {
	t.Parallel()

	store := quota.NewMemoryStore(0)
	t.Cleanup(store.Close)
	m, err := quota.NewMeter(store, 1, time.Hour)
	require.NoError(t, err)

	var runs atomic.Int32
	h := quota.Middleware(m, clientip.GetIP, signup, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runs.Add(1)
		time.Sleep(50 * time.Millisecond)
	}))

	const n = 10
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = serve(h, "10.0.0.7").Code
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
	denied := 0
	for _, c := range codes {
		if c == http.StatusPaymentRequired {
			denied++
		}
	}
	assert.Equal(t, n-1, denied)
}
