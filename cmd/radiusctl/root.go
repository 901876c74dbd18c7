package main

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"

	"radiusmgr/config"
	"radiusmgr/internal/errors"
	logs "radiusmgr/internal/infra/log"
	"radiusmgr/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "radiusctl",
		Short:         "Administrative tool for the RADIUS management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newHashPasswordCmd(),
		newCreateOperatorCmd(),
	)

	return rootCmd
}

// storeSession bundles everything a command needs to talk to the credential store.
type storeSession struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
	sqlDB  *sql.DB
}

func openStore() (*storeSession, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return &storeSession{cfg: cfg, logger: logger, db: db, sqlDB: sqlDB}, nil
}

func (s *storeSession) Close() error {
	return errors.WithStack(s.sqlDB.Close())
}

// withStore opens the store, runs fn and always closes the pool.
func withStore(ctx context.Context, fn func(ctx context.Context, s *storeSession) error) (err error) {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(ctx, s)
}

// readSecret reads a single line from r. Trailing CR/LF are removed, other whitespace is kept.
func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read password from stdin")
	}

	secret := strings.TrimRight(line, "\r\n")
	if secret == "" {
		return "", errors.New("empty password on stdin")
	}

	return secret, nil
}
