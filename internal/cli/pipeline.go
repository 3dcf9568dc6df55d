package cli

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/namekit/pkg/llm"
	"github.com/dmitrymomot/namekit/pkg/namegen"
)

// newPipeline wires the generation service around a completer and an open
// registry connection.
func newPipeline(cfg AppConfig, completer llm.Completer, reg namegen.Registry, log *slog.Logger) *namegen.Service {
	gen := namegen.NewModelGenerator(completer,
		namegen.WithTemperature(cfg.Temperature),
		namegen.WithGeneratorLogger(log),
	)
	return namegen.NewService(gen,
		namegen.NewResolver(reg, namegen.WithResolverLogger(log)),
		namegen.WithLinkBuilder(namegen.LinkBuilder{NamecheapRedirect: cfg.NamecheapRedirect}),
		namegen.WithLogger(log),
	)
}

// bootstrap loads config, the logger, the model provider and the registry.
// The caller closes the returned registry connection.
func bootstrap(ctx context.Context, debug bool) (AppConfig, *slog.Logger, *registryConn, *namegen.Service, error) {
	cfg, log, err := setup(debug)
	if err != nil {
		return AppConfig{}, nil, nil, nil, err
	}

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		return AppConfig{}, nil, nil, nil, err
	}

	reg, err := openRegistry(ctx, cfg, log)
	if err != nil {
		return AppConfig{}, nil, nil, nil, err
	}

	return cfg, log, reg, newPipeline(cfg, completer, reg.Store, log), nil
}

func setup(debug bool) (AppConfig, *slog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return AppConfig{}, nil, err
	}
	log, err := newLogger(cfg, debug)
	if err != nil {
		return AppConfig{}, nil, err
	}
	return cfg, log, nil
}
