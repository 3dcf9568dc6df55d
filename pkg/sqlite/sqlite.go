// Package sqlite opens a pure-Go SQLite database through sqlx and applies
// goose migrations to it. It backs the local and test registry store.
package sqlite

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	sqlitedrv "modernc.org/sqlite"
)

// LowerFunc names a deterministic SQL function that lower-cases the full
// Unicode range. The built-in lower() only folds ASCII.
const LowerFunc = "unicode_lower"

func init() {
	sqlitedrv.MustRegisterDeterministicScalarFunction(LowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlitedrv.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

var (
	ErrEmptyPath               = errors.New("sqlite path is empty, set SQLITE_PATH")
	ErrFailedToApplyMigrations = errors.New("failed to apply sqlite migrations")
	ErrHealthcheckFailed       = errors.New("sqlite healthcheck failed")
)

type Config struct {
	Path string `env:"SQLITE_PATH" envDefault:"namekit.db"` // Path is the database file, or ":memory:".
}

// Open connects to the database file at cfg.Path with WAL journaling and a
// busy timeout, then enables foreign keys.
func Open(cfg Config) (*sqlx.DB, error) {
	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	db, err := sqlx.Connect("sqlite", fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}

	// one writer avoids SQLITE_BUSY under concurrent imports
	db.SetMaxOpenConns(1)
	return db, nil
}

// Migrate applies goose migrations found at the root of migrations.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db.DB, migrations)
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// Healthcheck returns a readiness check that pings the database.
func Healthcheck(db *sqlx.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
