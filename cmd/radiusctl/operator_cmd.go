package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"radiusmgr/internal/domain/entity"
	"radiusmgr/internal/errors"
	"radiusmgr/internal/infra/auth"
	"radiusmgr/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

type createOperatorOptions struct {
	username  string
	email     string
	firstName string
	lastName  string
}

func newCreateOperatorCmd() *cobra.Command {
	var opts createOperatorOptions

	cmd := &cobra.Command{
		Use:   "create-operator",
		Short: "Create an operator account; the password is read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.username = strings.TrimSpace(opts.username)
			if opts.username == "" {
				return errors.New("--username is required")
			}

			password, err := readSecret(cmd.InOrStdin())
			if err != nil {
				return err
			}

			return withStore(cmd.Context(), func(ctx context.Context, s *storeSession) error {
				operator, err := createOperator(ctx, s, opts, password)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "created operator %q with id %d\n", operator.Username, operator.ID)

				return err
			})
		},
	}

	cmd.Flags().StringVar(&opts.username, "username", "", "operator login name")
	cmd.Flags().StringVar(&opts.email, "email", "", "operator email address")
	cmd.Flags().StringVar(&opts.firstName, "first-name", "", "operator first name")
	cmd.Flags().StringVar(&opts.lastName, "last-name", "", "operator last name")

	return cmd
}

func createOperator(ctx context.Context, s *storeSession, opts createOperatorOptions, password string) (*entity.Operator, error) {
	hasher, err := auth.NewBcryptHasher(s.cfg)
	if err != nil {
		return nil, err
	}

	if err := hasher.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	operator := &entity.Operator{
		Username:     opts.username,
		FirstName:    opts.firstName,
		LastName:     opts.lastName,
		Email:        strings.ToLower(strings.TrimSpace(opts.email)),
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := postgres.NewRepositoryFactory(s.db).OperatorRepo().Create(ctx, operator); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Operator created",
		slog.Int64("operatorID", operator.ID),
		slog.String("username", operator.Username),
	)

	return operator, nil
}
