// Package registry stores the set of registered domain names and answers
// batch membership queries against it.
//
// Two stores are provided. PGStore runs on a pgx pool and is the production
// backend. SQLiteStore runs on a local file through sqlx and suits single
// node setups and tests. Import lower-cases every name. Lookups fold the
// stored column as well, so rows written by other tools match regardless of
// case: PGStore uses lower(), which covers non-ASCII letters under a UTF-8
// locale or ICU collation, and SQLiteStore uses the unicode_lower function
// registered by pkg/sqlite, since SQLite's own lower() folds ASCII only.
//
// Schema migrations for each backend are embedded and exposed through
// PostgresMigrations and SQLiteMigrations.
package registry
