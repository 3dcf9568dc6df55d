package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namekit/handler"
	"github.com/dmitrymomot/namekit/modules/generate"
	"github.com/dmitrymomot/namekit/pkg/clientip"
	"github.com/dmitrymomot/namekit/pkg/httpserver"
	"github.com/dmitrymomot/namekit/pkg/quota"
	"github.com/dmitrymomot/namekit/pkg/redis"
)

const (
	QuotaStoreMemory = "memory"
	QuotaStoreRedis  = "redis"

	memoryQuotaCleanup = time.Minute
)

func serveCmd(debug *bool) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, log, reg, svc, err := bootstrap(ctx, *debug)
			if err != nil {
				return err
			}
			defer reg.Close()

			gate, closeQuota, err := newQuota(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer closeQuota()

			router := generate.Router(generate.RouterOptions{
				Generate:        generate.NewService(svc, handler.NewErrorHandler(log, generate.MapError)),
				Quota:           gate,
				ReadinessChecks: []func(context.Context) error{reg.Healthcheck},
				Logger:          log,
			})

			opts := []httpserver.Option{httpserver.WithLogger(log)}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			return httpserver.New(cfg.HTTP, opts...).Run(ctx, router)
		},
	}

	c.Flags().StringVarP(&addr, "addr", "a", "", "listen address, overrides HTTP_ADDR")
	return c
}

// newQuota builds the free-usage gate. It returns a nil middleware when
// QUOTA_ENABLED is false.
func newQuota(ctx context.Context, cfg AppConfig, log *slog.Logger) (func(http.Handler) http.Handler, func(), error) {
	if !cfg.Quota.Enabled {
		return nil, func() {}, nil
	}

	var (
		store   quota.Store
		closeFn func()
	)
	switch strings.ToLower(cfg.Quota.Store) {
	case QuotaStoreMemory, "":
		ms := quota.NewMemoryStore(memoryQuotaCleanup)
		store, closeFn = ms, ms.Close
	case QuotaStoreRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store, closeFn = quota.NewRedisStore(client), func() { _ = client.Close() }
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Quota.Store)
	}

	meter, err := quota.NewMeter(store, cfg.Quota.Limit, cfg.Quota.Window, quota.WithKeyPrefix(cfg.Quota.KeyPrefix))
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return quota.Middleware(meter, quotaKey(cfg.Quota), cfg.Quota.SignupURL, log), closeFn, nil
}

// quotaKey trusts forwarding headers only when QUOTA_TRUST_PROXY is set.
func quotaKey(cfg quota.Config) quota.KeyFunc {
	if cfg.TrustProxy {
		return clientip.GetIP
	}
	return clientip.RemoteIP
}
