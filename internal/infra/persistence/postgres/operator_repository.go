package postgres

import (
	"context"
	"time"

	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/domain/repository"
	"radiusmgr/internal/errors"
	"radiusmgr/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository is the constructor for operatorRepository.
func NewOperatorRepository(db *gorm.DB) repository.OperatorRepository {
	return &operatorRepository{db: db}
}

func (repo *operatorRepository) FindByID(ctx context.Context, id int64) (*entity.Operator, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *operatorRepository) FindByUsername(ctx context.Context, username string) (*entity.Operator, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *operatorRepository) findOne(ctx context.Context, query string, arg any) (*entity.Operator, error) {
	var opM model.OperatorModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(query, arg).
		Take(&opM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOperatorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find operator")
	}

	return toOperatorDomain(&opM), nil
}

func (repo *operatorRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OperatorModel{}).
		Where("id = ?", id).
		UpdateColumn("last_login", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update operator last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOperatorNotFound
	}

	return nil
}

func (repo *operatorRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OperatorModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash":       passwordHash,
			"password_changed_at": changedAt,
			"updated_at":          changedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update operator password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOperatorNotFound
	}

	return nil
}

// Create inserts a new operator and copies the generated ID and timestamps back.
func (repo *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	opM := fromOperatorDomain(operator)

	if err := repo.db.WithContext(ctx).Create(opM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrConflict, "operator username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "missing required operator information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create operator")
	}

	operator.ID = opM.ID
	operator.CreatedAt = opM.CreatedAt
	operator.UpdatedAt = opM.UpdatedAt

	return nil
}

func toOperatorDomain(data *model.OperatorModel) *entity.Operator {
	if data == nil {
		return nil
	}

	return &entity.Operator{
		ID:                data.ID,
		Username:          data.Username,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		Email:             derefString(data.Email),
		PasswordHash:      data.PasswordHash,
		IsActive:          data.IsActive,
		LastLogin:         data.LastLogin,
		PasswordChangedAt: data.PasswordChangedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromOperatorDomain(data *entity.Operator) *model.OperatorModel {
	return &model.OperatorModel{
		ID:                data.ID,
		Username:          data.Username,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		Email:             nullableString(data.Email),
		PasswordHash:      data.PasswordHash,
		IsActive:          data.IsActive,
		LastLogin:         data.LastLogin,
		PasswordChangedAt: data.PasswordChangedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
