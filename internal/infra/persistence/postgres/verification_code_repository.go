package postgres

import (
	"context"
	"time"

	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/domain/repository"
	"radiusmgr/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type verificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository is the constructor for verificationCodeRepository.
func NewVerificationCodeRepository(db *gorm.DB) repository.VerificationCodeRepository {
	return &verificationCodeRepository{db: db}
}

func (repo *verificationCodeRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	codeM := &model.VerificationCodeModel{
		Email:     code.Email,
		CodeHash:  code.CodeHash,
		ExpiresAt: code.ExpiresAt,
		UsedAt:    code.UsedAt,
		CreatedAt: code.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store verification code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

func (repo *verificationCodeRepository) InvalidateByEmail(ctx context.Context, email string, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.VerificationCodeModel{}).
		Where("LOWER(email) = LOWER(?) AND used_at IS NULL", email).
		UpdateColumn("used_at", at).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to invalidate verification codes")
	}

	return nil
}

// Consume claims the code with one conditional UPDATE so two concurrent resets cannot both win.
func (repo *verificationCodeRepository) Consume(ctx context.Context, email, codeHash string, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VerificationCodeModel{}).
		Where("LOWER(email) = LOWER(?) AND code_hash = ? AND used_at IS NULL AND expires_at > ?", email, codeHash, now).
		UpdateColumn("used_at", now)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume verification code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// RecordFailedAttempt bumps failed_attempts on live codes and burns any that hit maxAttempts.
// Both SET expressions read the pre-update row.
func (repo *verificationCodeRepository) RecordFailedAttempt(ctx context.Context, email string, maxAttempts int, now time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.VerificationCodeModel{}).
		Where("LOWER(email) = LOWER(?) AND used_at IS NULL AND expires_at > ?", email, now).
		UpdateColumns(map[string]any{
			"failed_attempts": gorm.Expr("failed_attempts + 1"),
			"used_at":         gorm.Expr("CASE WHEN failed_attempts + 1 >= ? THEN ?::timestamptz ELSE NULL END", maxAttempts, now),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record verification attempt")
	}

	return nil
}
