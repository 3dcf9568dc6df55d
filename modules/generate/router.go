package generate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/namekit/pkg/httpserver"
	"github.com/dmitrymomot/namekit/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the HTTP surface.
type RouterOptions struct {
	Generate Mountable
	// Quota gates the generate endpoint when set.
	Quota func(http.Handler) http.Handler
	// ReadinessChecks back /readyz, typically the registry ping.
	ReadinessChecks []func(context.Context) error
	Logger          *slog.Logger
}

// Router mounts /healthz, /readyz and POST /api/generate.
//
//	r := generate.Router(generate.RouterOptions{
//	    Generate:        generate.NewService(svc, errHandler),
//	    ReadinessChecks: []func(context.Context) error{pg.Healthcheck(pool)},
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(opts.Logger))
	r.Get("/readyz", readiness(opts))

	if opts.Generate != nil {
		r.Route("/api", func(api chi.Router) {
			if opts.Quota != nil {
				api.Use(opts.Quota)
			}
			api.Mount("/generate", opts.Generate.Handle())
		})
	}

	return r
}

func readiness(opts RouterOptions) http.HandlerFunc {
	if len(opts.ReadinessChecks) == 0 {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("READY"))
		}
	}
	return httpserver.HealthCheckHandler(opts.Logger, opts.ReadinessChecks...)
}
