package repository

import (
	"context"
	"errors"
	"time"

	"radiusmgr/internal/domain/entity"
)

// ErrOperatorNotFound is returned when an operator is not found.
var ErrOperatorNotFound = errors.New("operator not found")

// OperatorRepository is the administrator half of the credential store.
type OperatorRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Operator, error)
	FindByUsername(ctx context.Context, username string) (*entity.Operator, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	// UpdatePassword replaces the stored hash. Returns ErrOperatorNotFound when no row was updated.
	UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error

	// Create inserts a new operator and fills in its generated ID and timestamps.
	Create(ctx context.Context, operator *entity.Operator) error
}
