// Package pg bootstraps a PostgreSQL connection pool with pgx/v5.
//
// Connect opens a *pgxpool.Pool from Config and retries with a linear
// back-off until the database answers a ping. Migrate applies goose
// migrations from any fs.FS, usually an embed.FS owned by the package that
// defines the schema. Healthcheck returns a readiness check.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, registry.PostgresMigrations(), log); err != nil {
//	    return err
//	}
package pg
