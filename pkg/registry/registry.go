package registry

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"strings"
)

var (
	ErrQueryFailed  = errors.New("registry query failed")
	ErrImportFailed = errors.New("registry import failed")
)

// Store is a registry backend.
type Store interface {
	// Existing returns the subset of names present in the registry.
	Existing(ctx context.Context, names []string) ([]string, error)
	// Import adds names, ignoring ones already present, and returns how
	// many rows were inserted.
	Import(ctx context.Context, names []string) (int64, error)
}

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

func PostgresMigrations() fs.FS { return mustSub("migrations/postgres") }

func SQLiteMigrations() fs.FS { return mustSub("migrations/sqlite") }

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(migrations, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// normalize lower-cases names and drops blanks and duplicates.
func normalize(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
