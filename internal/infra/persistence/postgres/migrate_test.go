package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(embedMigrations, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		body, err := fs.ReadFile(embedMigrations, migrationsDir+"/"+entry.Name())
		require.NoError(t, err)

		content := string(body)
		assert.True(t, strings.HasPrefix(entry.Name(), "0"), entry.Name())
		assert.Contains(t, content, "-- +goose Up", entry.Name())
		assert.Contains(t, content, "-- +goose Down", entry.Name())
	}

	schema, err := fs.ReadFile(embedMigrations, migrationsDir+"/00001_auth_schema.sql")
	require.NoError(t, err)
	for _, table := range []string{"users", "operators", "password_reset_codes"} {
		assert.Contains(t, string(schema), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}

	attempts, err := fs.ReadFile(embedMigrations, migrationsDir+"/00002_reset_code_attempts.sql")
	require.NoError(t, err)
	assert.Contains(t, string(attempts), "ADD COLUMN IF NOT EXISTS failed_attempts INTEGER NOT NULL DEFAULT 0")
}
