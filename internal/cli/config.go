package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/namekit/pkg/config"
	"github.com/dmitrymomot/namekit/pkg/httpserver"
	"github.com/dmitrymomot/namekit/pkg/llm"
	"github.com/dmitrymomot/namekit/pkg/llm/anthropic"
	"github.com/dmitrymomot/namekit/pkg/llm/gemini"
	"github.com/dmitrymomot/namekit/pkg/llm/openai"
	"github.com/dmitrymomot/namekit/pkg/logger"
	"github.com/dmitrymomot/namekit/pkg/pg"
	"github.com/dmitrymomot/namekit/pkg/quota"
	"github.com/dmitrymomot/namekit/pkg/redis"
	"github.com/dmitrymomot/namekit/pkg/registry"
	"github.com/dmitrymomot/namekit/pkg/requestid"
	"github.com/dmitrymomot/namekit/pkg/sqlite"
)

var (
	ErrUnknownProvider = errors.New("unknown LLM_PROVIDER")
	ErrUnknownDriver   = errors.New("unknown REGISTRY_DRIVER")
	ErrUnknownStore    = errors.New("unknown QUOTA_STORE")
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// AppConfig is the full process configuration. Nested configs keep their own
// variable names.
type AppConfig struct {
	Env               string  `env:"APP_ENV" envDefault:"development"`
	Name              string  `env:"APP_NAME" envDefault:"namekit"`
	LogLevel          string  `env:"LOG_LEVEL"`
	LogFormat         string  `env:"LOG_FORMAT"`
	LLMProvider       string  `env:"LLM_PROVIDER" envDefault:"openai"`
	Temperature       float64 `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	RegistryDriver    string  `env:"REGISTRY_DRIVER" envDefault:"postgres"`
	NamecheapRedirect string  `env:"LINKS_NAMECHEAP_REDIRECT"`

	HTTP      httpserver.Config
	Postgres  pg.Config
	SQLite    sqlite.Config
	Redis     redis.Config
	Quota     quota.Config
	OpenAI    openai.Config
	Anthropic anthropic.Config
	Gemini    gemini.Config
}

func loadConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. LOG_LEVEL and LOG_FORMAT override the
// APP_ENV defaults; debug forces the debug level.
func newLogger(cfg AppConfig, debug bool) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	switch f := logger.Format(strings.ToLower(cfg.LogFormat)); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	if debug {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	return logger.New(opts...), nil
}

// newCompleter returns the completion provider named by LLM_PROVIDER.
func newCompleter(ctx context.Context, cfg AppConfig) (llm.Completer, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case ProviderOpenAI, "":
		return openai.New(cfg.OpenAI)
	case ProviderAnthropic:
		return anthropic.New(cfg.Anthropic)
	case ProviderGemini:
		return gemini.New(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.LLMProvider)
	}
}

// registryConn is an open registry store with its readiness check.
type registryConn struct {
	Store       registry.Store
	Healthcheck func(context.Context) error
	migrate     func(context.Context) error
	closeFn     func()
}

func (c *registryConn) Migrate(ctx context.Context) error { return c.migrate(ctx) }

func (c *registryConn) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// openRegistry connects to the store named by REGISTRY_DRIVER.
func openRegistry(ctx context.Context, cfg AppConfig, log *slog.Logger) (*registryConn, error) {
	switch strings.ToLower(cfg.RegistryDriver) {
	case DriverPostgres, "":
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return &registryConn{
			Store:       registry.NewPGStore(pool),
			Healthcheck: pg.Healthcheck(pool),
			migrate: func(ctx context.Context) error {
				return pg.Migrate(ctx, pool, registry.PostgresMigrations(), log)
			},
			closeFn: pool.Close,
		}, nil
	case DriverSQLite:
		db, err := sqlite.Open(cfg.SQLite)
		if err != nil {
			return nil, err
		}
		return &registryConn{
			Store:       registry.NewSQLiteStore(db),
			Healthcheck: sqlite.Healthcheck(db),
			migrate: func(ctx context.Context) error {
				return sqlite.Migrate(ctx, db, registry.SQLiteMigrations())
			},
			closeFn: func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.RegistryDriver)
	}
}
