package db

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"estate-marketplace/migrations"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MigrationsTable records which embedded files have been applied.
const MigrationsTable = "schema_migrations"

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS ` + MigrationsTable + ` (
    version    text PRIMARY KEY,
    applied_at timestamptz NOT NULL DEFAULT now()
)`

// Serialises concurrent starters against the same database.
const migrationLockKey int64 = 0x65737461_7465

// ApplyMigrations runs the embedded .sql files that are not yet recorded, in
// lexical order, each in its own transaction.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	return applyFS(ctx, pool, migrations.Files)
}

func applyFS(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		applied := false
		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockKey); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, createMigrationsTable); err != nil {
				return err
			}
			var done bool
			err := tx.QueryRow(ctx,
				"SELECT EXISTS (SELECT 1 FROM "+MigrationsTable+" WHERE version = $1)", name).Scan(&done)
			if err != nil || done {
				return err
			}
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, "INSERT INTO "+MigrationsTable+" (version) VALUES ($1)", name); err != nil {
				return err
			}
			applied = true
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", name, err)
		}
		if applied {
			slog.Info("migration applied", "file", name)
		}
	}
	return nil
}
