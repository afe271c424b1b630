package usecases

import (
	"context"
	"fmt"

	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/infrastructure/email"
	"adaptivegame/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

// ResetPasswordUseCase completes the credential-reset flow. The token must
// verify, its hash must match an unconsumed reset row, and the row is marked
// used before the caller learns the outcome, so a token works exactly once.
type ResetPasswordUseCase struct {
	userRepo       user.Repository
	resetRepo      user.CredentialResetRepository
	tokenIssuer    ResetTokenIssuer
	passwordHasher user.PasswordHasher
	emailSender    email.Sender
	logger         logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	resetRepo user.CredentialResetRepository,
	tokenIssuer ResetTokenIssuer,
	hasher user.PasswordHasher,
	emailSender email.Sender,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:       userRepo,
		resetRepo:      resetRepo,
		tokenIssuer:    tokenIssuer,
		passwordHasher: hasher,
		emailSender:    emailSender,
		logger:         logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if len(cmd.NewPassword) < 8 {
		return user.ErrPasswordTooShort
	}

	tokenEmail, err := uc.tokenIssuer.Verify(cmd.Token)
	if err != nil {
		uc.logger.Warnw("reset token failed verification", "error", err)
		return user.ErrResetNotFound
	}

	reset, err := uc.resetRepo.GetActiveByHash(ctx, uc.tokenIssuer.HashToken(cmd.Token))
	if err != nil {
		return fmt.Errorf("failed to look up reset attempt: %w", err)
	}
	if reset == nil || reset.Email != tokenEmail {
		return user.ErrResetNotFound
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, tokenEmail)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return user.ErrResetNotFound
	}

	if err := uc.resetRepo.MarkUsed(ctx, reset.ID); err != nil {
		return fmt.Errorf("failed to consume reset attempt: %w", err)
	}

	hash, err := uc.passwordHasher.Hash(cmd.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := uc.userRepo.UpdatePasswordHash(ctx, existingUser.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := uc.emailSender.SendPasswordChangedEmail(existingUser.Email); err != nil {
		uc.logger.Warnw("failed to send password changed email", "error", err)
	}

	uc.logger.Infow("password reset completed", "user_id", existingUser.ID)
	return nil
}
