package quota

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/namekit/handler"
	"github.com/dmitrymomot/namekit/pkg/logger"
)

// KeyFunc extracts the metering key, usually the client IP.
type KeyFunc func(r *http.Request) string

// ExhaustedBody is the 402 response payload.
type ExhaustedBody struct {
	Error     string `json:"error"`
	SignupURL string `json:"signupUrl"`
}

const exhaustedMessage = "Free usage limit reached"

// Middleware reserves one use before calling next and hands it back when
// the response is not 2xx, so failed generations are free. Clients over the
// limit get 402 with signupURL. Store failures are logged and let through.
func Middleware(m *Meter, keyFunc KeyFunc, signupURL string, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			status, err := m.Reserve(r.Context(), key)
			switch {
			case errors.Is(err, ErrQuotaExhausted):
				if errors.Is(err, ErrStoreUnavailable) {
					log.WarnContext(r.Context(), "quota refund failed",
						logger.Component("quota"),
						logger.Error(err),
					)
				}
				resp := handler.JSON(ExhaustedBody{Error: exhaustedMessage, SignupURL: signupURL},
					handler.WithStatus(http.StatusPaymentRequired),
					handler.WithHeader("X-Quota-Limit", strconv.Itoa(status.Limit)),
					handler.WithHeader("X-Quota-Remaining", "0"),
				)
				_ = resp.Render(w, r)
				return
			case err != nil:
				log.WarnContext(r.Context(), "quota check failed, allowing request",
					logger.Component("quota"),
					logger.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-Quota-Limit", strconv.Itoa(status.Limit))
			w.Header().Set("X-Quota-Remaining", strconv.Itoa(status.Remaining))

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status >= 200 && rec.status < 300 {
				return
			}
			// the client may be gone; the refund must still land
			if err := m.Release(context.WithoutCancel(r.Context()), key); err != nil {
				log.WarnContext(r.Context(), "quota release failed",
					logger.Component("quota"),
					logger.Error(err),
				)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
