package main

import (
	"context"
	"database/sql"

	"radiusmgr/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the credential store schema",
	}

	migrateCmd.AddCommand(
		newMigrateStepCmd("up", "Apply all pending migrations", postgres.MigrateUp),
		newMigrateStepCmd("down", "Roll back the most recent migration", postgres.MigrateDown),
		newMigrateStepCmd("status", "Show the state of every migration", postgres.MigrateStatus),
	)

	return migrateCmd
}

func newMigrateStepCmd(use, short string, step func(ctx context.Context, db *sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, s *storeSession) error {
				return step(ctx, s.sqlDB)
			})
		},
	}
}
