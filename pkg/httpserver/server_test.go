package httpserver_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/httpserver"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRunAndShutdown(t *testing.T) {
	addr := freeAddr(t)
	srv := httpserver.New(httpserver.Config{ShutdownTimeout: 100 * time.Millisecond}, httpserver.WithAddr(addr))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
	}()
	<-srv.Started()

	var resp *http.Response
	var err error
	for range 50 {
		resp, err = http.Get("http://" + addr)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestRunTwice(t *testing.T) {
	srv := httpserver.New(httpserver.Config{}, httpserver.WithAddr(freeAddr(t)))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()
	<-srv.Started()

	err := srv.Run(ctx, nil)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	require.NoError(t, <-done)
}

func TestShutdownBeforeRun(t *testing.T) {
	srv := httpserver.New(httpserver.Config{})
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestHealthCheckHandler(t *testing.T) {
	t.Run("liveness", func(t *testing.T) {
		w := httptest.NewRecorder()
		httpserver.HealthCheckHandler(nil)(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ALIVE", w.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		w := httptest.NewRecorder()
		ok := func(context.Context) error { return nil }
		httpserver.HealthCheckHandler(nil, ok, ok)(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		w := httptest.NewRecorder()
		fail := func(context.Context) error { return errors.New("db down") }
		httpserver.HealthCheckHandler(nil, fail)(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "NOT_READY", w.Body.String())
	})
}
