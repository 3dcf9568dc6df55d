package registry

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PGQuerier is the subset of *pgxpool.Pool used by PGStore.
type PGQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PGStore is a Postgres backed registry.
type PGStore struct {
	db PGQuerier
}

func NewPGStore(db PGQuerier) *PGStore {
	return &PGStore{db: db}
}

const (
	pgExistingQuery = `SELECT domain FROM domains WHERE lower(domain) = ANY($1)`

	pgCreateStaging = `CREATE TEMP TABLE domains_import (domain TEXT NOT NULL) ON COMMIT DROP`
	pgMergeStaging  = `INSERT INTO domains (domain) SELECT DISTINCT domain FROM domains_import ON CONFLICT (domain) DO NOTHING`
)

// Existing runs one ANY($1) query for the whole batch.
func (s *PGStore) Existing(ctx context.Context, names []string) ([]string, error) {
	names = normalize(names)
	if len(names) == 0 {
		return []string{}, nil
	}

	rows, err := s.db.Query(ctx, pgExistingQuery, names)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return found, nil
}

// Import streams names into a temporary table with COPY and merges them.
func (s *PGStore) Import(ctx context.Context, names []string) (int64, error) {
	names = normalize(names)
	if len(names) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, errors.Join(ErrImportFailed, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, pgCreateStaging); err != nil {
		return 0, errors.Join(ErrImportFailed, err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"domains_import"}, []string{"domain"},
		pgx.CopyFromSlice(len(names), func(i int) ([]any, error) {
			return []any{names[i]}, nil
		}),
	)
	if err != nil {
		return 0, errors.Join(ErrImportFailed, err)
	}

	var tag pgconn.CommandTag
	if tag, err = tx.Exec(ctx, pgMergeStaging); err != nil {
		return 0, errors.Join(ErrImportFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errors.Join(ErrImportFailed, err)
	}
	return tag.RowsAffected(), nil
}
