package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/StrideShop_Go/migrations"
)

// Migrate applies every pending goose migration using the embedded SQL files.
// Returns the schema version after the run.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	return MigrateFS(ctx, pool, migrations.FS)
}

// MigrateFS applies migrations from an arbitrary filesystem. Tests use it to
// run a subset of migrations.
func MigrateFS(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) (int64, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadVersion, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied, "applied", len(results), "version", version)
	return version, nil
}
