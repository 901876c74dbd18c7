// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"radiusmgr/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the subscriber half of the credential store.
type UserRepository interface {
	// FindByID retrieves a single user by primary key.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateLastLogin touches only the last_login column.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	// UpdatePassword replaces the stored hash. Returns ErrUserNotFound when no row was updated.
	UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error
}
