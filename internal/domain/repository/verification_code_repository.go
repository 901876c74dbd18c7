package repository

import (
	"context"
	"errors"
	"time"

	"radiusmgr/internal/domain/entity"
)

// ErrCodeNotFound is returned when no usable verification code matches.
var ErrCodeNotFound = errors.New("verification code not found")

// VerificationCodeRepository persists password reset codes.
type VerificationCodeRepository interface {
	// Create stores a new code record.
	Create(ctx context.Context, code *entity.VerificationCode) error

	// InvalidateByEmail marks every unused code for email as used at the given time.
	InvalidateByEmail(ctx context.Context, email string, at time.Time) error

	// Consume marks the matching unused, unexpired code as used in a single conditional update.
	// Returns ErrCodeNotFound when nothing matched.
	Consume(ctx context.Context, email, codeHash string, now time.Time) error

	// RecordFailedAttempt counts a wrong guess against every live code for email and marks
	// a code used once its count reaches maxAttempts.
	RecordFailedAttempt(ctx context.Context, email string, maxAttempts int, now time.Time) error
}
