package postgres

import (
	"context"
	"database/sql"
	"embed"

	"radiusmgr/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

func prepareGoose() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose set dialect")
	}

	return nil
}

// MigrateUp applies every pending migration.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	if err := prepareGoose(); err != nil {
		return err
	}

	return errors.Wrap(goose.UpContext(ctx, db, migrationsDir), "goose up")
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	if err := prepareGoose(); err != nil {
		return err
	}

	return errors.Wrap(goose.DownContext(ctx, db, migrationsDir), "goose down")
}

// MigrateStatus prints the applied state of every migration through goose's logger.
func MigrateStatus(ctx context.Context, db *sql.DB) error {
	if err := prepareGoose(); err != nil {
		return err
	}

	return errors.Wrap(goose.StatusContext(ctx, db, migrationsDir), "goose status")
}
