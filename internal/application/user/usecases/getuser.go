package usecases

import (
	"context"
	"fmt"

	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/shared/logger"
)

// GetUserUseCase loads the user behind a session cookie. Protected pages run
// it on every request to re-validate the session against the store.
type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*user.User, error) {
	existingUser, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, user.ErrUserNotFound
	}
	if !existingUser.IsActive() {
		return nil, user.ErrUserInactive
	}
	return existingUser, nil
}
