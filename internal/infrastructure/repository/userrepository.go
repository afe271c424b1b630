package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/infrastructure/persistence/mappers"
	"adaptivegame/internal/infrastructure/persistence/models"
	"adaptivegame/internal/shared/logger"
)

// UserRepository implements the user repository interface on gorm
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// GetByEmail retrieves a user by normalized email, (nil, nil) when no row matches
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).
		Where("email = ?", user.NormalizeEmail(email)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// GetByID retrieves a user by ID, (nil, nil) when no row matches
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "email", entity.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	entity.ID = model.ID
	r.logger.Infow("user created successfully", "id", model.ID, "email", model.Email)
	return nil
}

// UpdatePasswordHash replaces the stored credential hash for one user
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	if result.Error != nil {
		r.logger.Errorw("failed to update password hash", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update password hash: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	r.logger.Infow("password hash updated", "id", id)
	return nil
}
