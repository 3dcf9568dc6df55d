// Package config loads env-tagged structs from the process environment.
//
// A .env file in the working directory is loaded once, before the first
// parse, and never overrides variables already set. Each config type is
// parsed once and cached, so repeated Load calls across packages agree.
//
//	var cfg struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> value
	parseMu    sync.Mutex
)

// Load populates v from the environment. The first successful parse of a
// type is cached and copied into later callers.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// a missing .env is fine
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	parseMu.Lock()
	defer parseMu.Unlock()

	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.Store(key, *v)
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops cached values. Intended for tests.
func Reset() {
	cache.Clear()
}
