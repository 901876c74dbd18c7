package main

import (
	"fmt"

	"radiusmgr/internal/infra/auth"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func newHashPasswordCmd() *cobra.Command {
	var (
		cost         int
		skipStrength bool
	)

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Read a password from stdin and print its bcrypt hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readSecret(cmd.InOrStdin())
			if err != nil {
				return err
			}

			hasher, err := auth.NewBcryptHasherWithCost(cost)
			if err != nil {
				return err
			}

			if !skipStrength {
				if err := hasher.ValidatePasswordStrength(password); err != nil {
					return err
				}
			}

			hash, err := hasher.Hash(password)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

			return err
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt work factor")
	cmd.Flags().BoolVar(&skipStrength, "skip-strength-check", false, "hash the password even if it fails the strength policy")

	return cmd
}
