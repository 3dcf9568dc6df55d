package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/config"
)

type serverConfig struct {
	Addr    string        `env:"NAMEKIT_TEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"NAMEKIT_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Key string `env:"NAMEKIT_TEST_REQUIRED_KEY,required"`
}

func TestLoad(t *testing.T) {
	t.Cleanup(config.Reset)

	t.Run("defaults and overrides", func(t *testing.T) {
		config.Reset()
		t.Setenv("NAMEKIT_TEST_ADDR", ":9090")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("NAMEKIT_TEST_ADDR", ":1111")

		var first serverConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("NAMEKIT_TEST_ADDR", ":2222")
		var second serverConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, ":1111", second.Addr)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *serverConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}
