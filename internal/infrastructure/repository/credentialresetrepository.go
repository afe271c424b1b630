package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/infrastructure/persistence/mappers"
	"adaptivegame/internal/infrastructure/persistence/models"
	"adaptivegame/internal/shared/constants"
	"adaptivegame/internal/shared/logger"
)

// CredentialResetRepository stores password-reset attempts on gorm
type CredentialResetRepository struct {
	db     *gorm.DB
	mapper mappers.CredentialResetMapper
	logger logger.Interface
}

// NewCredentialResetRepository creates a new credential reset repository
func NewCredentialResetRepository(db *gorm.DB, logger logger.Interface) user.CredentialResetRepository {
	return &CredentialResetRepository{
		db:     db,
		mapper: mappers.NewCredentialResetMapper(),
		logger: logger,
	}
}

// Create records one reset attempt
func (r *CredentialResetRepository) Create(ctx context.Context, reset *user.CredentialReset) error {
	model := r.mapper.ToModel(reset)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create credential reset", "error", err)
		return fmt.Errorf("failed to create credential reset: %w", err)
	}

	reset.ID = model.ID
	return nil
}

// GetActiveByHash returns the reset row matching the hash if it has not been
// consumed yet, (nil, nil) otherwise
func (r *CredentialResetRepository) GetActiveByHash(ctx context.Context, hash string) (*user.CredentialReset, error) {
	var model models.ResetPasswordModel

	err := r.db.WithContext(ctx).
		Where("hash = ? AND status = ?", hash, constants.RowStatusActive).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get credential reset by hash", "error", err)
		return nil, fmt.Errorf("failed to get credential reset: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// MarkUsed moves the reset row to inactive so the hash cannot be replayed
func (r *CredentialResetRepository) MarkUsed(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.ResetPasswordModel{}).
		Where("id = ?", id).
		Update("status", constants.RowStatusInactive)
	if result.Error != nil {
		r.logger.Errorw("failed to mark credential reset used", "id", id, "error", result.Error)
		return fmt.Errorf("failed to mark credential reset used: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrResetNotFound
	}

	return nil
}
