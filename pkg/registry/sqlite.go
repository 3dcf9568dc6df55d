package registry

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/dmitrymomot/namekit/pkg/sqlite"
)

// SQLiteStore is a registry on a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Existing(ctx context.Context, names []string) ([]string, error) {
	names = normalize(names)
	if len(names) == 0 {
		return []string{}, nil
	}

	query, args, err := sqlx.In(`SELECT domain FROM domains WHERE `+sqlite.LowerFunc+`(domain) IN (?)`, names)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	var found []string
	if err := s.db.SelectContext(ctx, &found, s.db.Rebind(query), args...); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return found, nil
}

func (s *SQLiteStore) Import(ctx context.Context, names []string) (int64, error) {
	names = normalize(names)
	if len(names) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.Join(ErrImportFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, `INSERT OR IGNORE INTO domains (domain) VALUES (?)`)
	if err != nil {
		return 0, errors.Join(ErrImportFailed, err)
	}
	defer func() { _ = stmt.Close() }()

	var inserted int64
	for _, name := range names {
		res, err := stmt.ExecContext(ctx, name)
		if err != nil {
			return 0, errors.Join(ErrImportFailed, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, errors.Join(ErrImportFailed, err)
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Join(ErrImportFailed, err)
	}
	return inserted, nil
}
