package usecases

import (
	"context"
	"fmt"

	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/infrastructure/email"
	"adaptivegame/internal/shared/logger"
)

// ResetTokenIssuer signs and verifies the token embedded in a password-reset
// link, and produces the digest stored in place of the token itself.
type ResetTokenIssuer interface {
	Generate(email string) (string, error)
	Verify(token string) (string, error)
	HashToken(token string) string
}

type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetUseCase starts the credential-reset flow: it records a
// reset attempt keyed by the token's hash and mails out the token. Unknown
// emails complete silently so the endpoint cannot be used to probe accounts.
type RequestPasswordResetUseCase struct {
	userRepo    user.Repository
	resetRepo   user.CredentialResetRepository
	tokenIssuer ResetTokenIssuer
	emailSender email.Sender
	logger      logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	resetRepo user.CredentialResetRepository,
	tokenIssuer ResetTokenIssuer,
	emailSender email.Sender,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		tokenIssuer: tokenIssuer,
		emailSender: emailSender,
		logger:      logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	normalized := user.NormalizeEmail(cmd.Email)

	existingUser, err := uc.userRepo.GetByEmail(ctx, normalized)
	if err != nil {
		uc.logger.Errorw("failed to get user for password reset", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil || !existingUser.IsActive() {
		uc.logger.Infow("password reset requested for unknown or inactive email")
		return nil
	}

	token, err := uc.tokenIssuer.Generate(normalized)
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err)
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	reset := &user.CredentialReset{
		Email: normalized,
		Hash:  uc.tokenIssuer.HashToken(token),
	}
	if err := uc.resetRepo.Create(ctx, reset); err != nil {
		return fmt.Errorf("failed to record reset attempt: %w", err)
	}

	if err := uc.emailSender.SendPasswordResetEmail(normalized, token); err != nil {
		uc.logger.Errorw("failed to send reset email", "error", err)
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	uc.logger.Infow("password reset requested", "user_id", existingUser.ID)
	return nil
}
