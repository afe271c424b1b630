package usecases

import (
	"context"
	"fmt"

	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordResult struct {
	User *user.User
}

// LoginWithPasswordUseCase authenticates a facilitator by email and password.
// Unknown email, wrong password and inactive account all surface as
// ErrInvalidCredentials so responses cannot reveal which emails exist.
type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if existingUser == nil {
		return nil, user.ErrInvalidCredentials
	}

	if !existingUser.IsActive() {
		uc.logger.Warnw("login attempt on inactive account", "user_id", existingUser.ID)
		return nil, user.ErrInvalidCredentials
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID)
	return &LoginWithPasswordResult{User: existingUser}, nil
}
